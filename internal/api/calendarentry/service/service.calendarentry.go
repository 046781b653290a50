// Package calsvc chứa service cho domain CalendarEntry.
// File: service.calendarentry.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package calsvc

import (
	"context"
	"fmt"

	basesvc "campaign_planner/internal/api/base/service"
	calmodels "campaign_planner/internal/api/calendarentry/models"
	"campaign_planner/internal/common"
	"campaign_planner/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CalendarEntryService là service quản lý CalendarEntry.
type CalendarEntryService struct {
	*basesvc.BaseServiceMongoImpl[calmodels.CalendarEntry]
}

// NewCalendarEntryService tạo mới CalendarEntryService
func NewCalendarEntryService() (*CalendarEntryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CalendarEntries)
	if !exist {
		return nil, fmt.Errorf("failed to get calendar_entries collection: %v", common.ErrNotFound)
	}

	return &CalendarEntryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[calmodels.CalendarEntry](collection),
	}, nil
}

// FindByPlan trả về toàn bộ entry của một plan, sắp xếp theo ngày rồi đến giờ.
func (s *CalendarEntryService) FindByPlan(ctx context.Context, planID primitive.ObjectID) ([]calmodels.CalendarEntry, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "scheduledDate", Value: 1},
		{Key: "scheduledTime", Value: 1},
	})
	return s.Find(ctx, bson.M{"planId": planID}, opts)
}

// DeleteByPlan xóa toàn bộ entry của một plan. Trả về số entry đã xóa.
func (s *CalendarEntryService) DeleteByPlan(ctx context.Context, planID primitive.ObjectID) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"planId": planID})
}

// FindScheduledByBrand trả về các entry còn ở trạng thái scheduled của một brand.
func (s *CalendarEntryService) FindScheduledByBrand(ctx context.Context, brandID, userID primitive.ObjectID) ([]calmodels.CalendarEntry, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "scheduledDate", Value: 1},
		{Key: "scheduledTime", Value: 1},
	})
	return s.Find(ctx, bson.M{
		"brandId": brandID,
		"userId":  userID,
		"status":  calmodels.EntryStatusScheduled,
	}, opts)
}
