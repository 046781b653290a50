// Package calsvc - Test phân loại entry cho dashboard.
package calsvc

import (
	"testing"
	"time"

	calmodels "campaign_planner/internal/api/calendarentry/models"
)

func entryAt(date time.Time, clock, status string) calmodels.CalendarEntry {
	return calmodels.CalendarEntry{
		ScheduledDate: date.UnixMilli(),
		ScheduledTime: clock,
		Status:        status,
	}
}

func TestClassifyEntries(t *testing.T) {
	at := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	dayOf := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	entries := []calmodels.CalendarEntry{
		entryAt(dayOf(9), "18:00", calmodels.EntryStatusScheduled),  // đã qua hạn
		entryAt(dayOf(10), "12:00", calmodels.EntryStatusScheduled), // trong 48h
		entryAt(dayOf(11), "09:00", calmodels.EntryStatusScheduled), // trong 48h
		entryAt(dayOf(13), "12:00", calmodels.EntryStatusScheduled), // ngoài 48h
		entryAt(dayOf(9), "18:00", calmodels.EntryStatusPublished),  // đã đăng, bỏ qua
		entryAt(dayOf(10), "12:00", calmodels.EntryStatusCancelled), // đã hủy, bỏ qua
	}

	report := ClassifyEntries(entries, at)

	if len(report.Missed) != 1 {
		t.Errorf("muốn 1 entry trễ hạn, nhận %d", len(report.Missed))
	}
	if len(report.Upcoming) != 2 {
		t.Errorf("muốn 2 entry sắp đến hạn, nhận %d", len(report.Upcoming))
	}
	if !report.At.Equal(at) {
		t.Errorf("report phải giữ nguyên mốc thời gian của caller, nhận %s", report.At)
	}
}

// Entry đúng biên 48h không tính là upcoming (so sánh Before, không inclusive).
func TestClassifyEntries_WindowBoundary(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	boundary := entryAt(time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC), "12:00", calmodels.EntryStatusScheduled)

	report := ClassifyEntries([]calmodels.CalendarEntry{boundary}, at)
	if len(report.Upcoming) != 0 || len(report.Missed) != 0 {
		t.Errorf("entry đúng biên 48h phải nằm ngoài cả hai nhóm: %+v", report)
	}
}

func TestClassifyEntries_Empty(t *testing.T) {
	report := ClassifyEntries(nil, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	if report.Upcoming == nil || report.Missed == nil {
		t.Error("danh sách kết quả phải là slice rỗng, không phải nil")
	}
}
