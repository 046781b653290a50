// Package models - CalendarEntry thuộc domain CalendarEntry.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một entry trên lịch
const (
	EntryStatusScheduled = "scheduled"
	EntryStatusPublished = "published"
	EntryStatusCancelled = "cancelled"
)

// CalendarEntry - Một sự kiện đăng bài cụ thể: ngày, giờ, một nền tảng.
// Scheduler tạo theo lô; convert/regenerate xóa toàn bộ entry của plan rồi tạo lại.
type CalendarEntry struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PlanID        primitive.ObjectID `json:"planId" bson:"planId" index:"single:1"`
	ContentItemID primitive.ObjectID `json:"contentItemId" bson:"contentItemId"` // _id của content item nhúng trong Plan
	BrandID       primitive.ObjectID `json:"brandId" bson:"brandId" index:"compound:calendar_brand_date"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`

	// UnixMilli tại 00:00 UTC của ngày đăng
	ScheduledDate int64  `json:"scheduledDate" bson:"scheduledDate" index:"compound:calendar_brand_date"`
	ScheduledTime string `json:"scheduledTime" bson:"scheduledTime" default:"12:00"` // "HH:MM"
	Platform      string `json:"platform" bson:"platform"`

	Status string `json:"status" bson:"status" default:"scheduled"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// PublishMoment ghép scheduledDate và scheduledTime thành thời điểm đăng (UTC).
// scheduledTime rỗng hoặc sai định dạng được coi là 00:00.
func (e *CalendarEntry) PublishMoment() time.Time {
	day := time.UnixMilli(e.ScheduledDate).UTC()
	clock, err := time.Parse("15:04", e.ScheduledTime)
	if err != nil {
		return day
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
}
