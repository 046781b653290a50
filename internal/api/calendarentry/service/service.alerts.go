// File: service.alerts.go - phân loại entry cho dashboard, thuần tính toán.
package calsvc

import (
	"time"

	calmodels "campaign_planner/internal/api/calendarentry/models"
)

// UpcomingWindow là khoảng nhìn trước cho nhóm "sắp đến hạn".
const UpcomingWindow = 48 * time.Hour

// AlertReport gom kết quả phân loại entry theo một mốc thời gian do client cung cấp.
type AlertReport struct {
	At       time.Time                  `json:"at"`
	Upcoming []calmodels.CalendarEntry  `json:"upcoming"` // đến hạn trong vòng 48h kể từ at
	Missed   []calmodels.CalendarEntry  `json:"missed"`   // đã qua hạn mà vẫn ở scheduled
}

// ClassifyEntries phân loại entry theo mốc at. Chỉ entry còn scheduled được xét;
// không đọc đồng hồ hệ thống, mốc thời gian hoàn toàn do caller quyết định.
func ClassifyEntries(entries []calmodels.CalendarEntry, at time.Time) AlertReport {
	report := AlertReport{
		At:       at,
		Upcoming: []calmodels.CalendarEntry{},
		Missed:   []calmodels.CalendarEntry{},
	}
	horizon := at.Add(UpcomingWindow)

	for _, entry := range entries {
		if entry.Status != calmodels.EntryStatusScheduled {
			continue
		}
		moment := entry.PublishMoment()
		switch {
		case moment.Before(at):
			report.Missed = append(report.Missed, entry)
		case moment.Before(horizon):
			report.Upcoming = append(report.Upcoming, entry)
		}
	}
	return report
}
