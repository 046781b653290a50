// File: scheduler.go - thuật toán dựng lịch từ phases của plan.
// Thuần tính toán, không I/O: caller nạp plan và rotation policy, nhận về danh sách entry.
package plansvc

import (
	"sort"
	"time"

	brandmodels "campaign_planner/internal/api/brand/models"
	calmodels "campaign_planner/internal/api/calendarentry/models"
	planmodels "campaign_planner/internal/api/plan/models"
)

// DefaultPublishTime dùng khi content item không có recommendedTime.
const DefaultPublishTime = "12:00"

// ScheduledItem là một content item đã được chốt ngày đăng sau khi đi qua rotation.
type ScheduledItem struct {
	Item planmodels.ContentItem
	Date time.Time // 00:00 UTC của ngày đăng
}

// BuildSchedule duyệt các phase theo weekNumber tăng dần, trong mỗi phase duyệt
// content item theo recommendedDayOffset tăng dần, và áp rotation policy:
//
//   - Bài không quảng bá: reset bộ đếm liên tiếp, giữ nguyên ngày dự kiến
//     (startDate + (weekNumber-1)*7 + dayOffset).
//   - Bài quảng bá khi bộ đếm đã chạm maxConsecutivePromoPosts: loại bỏ hẳn,
//     không lùi lịch, và reset bộ đếm.
//   - Bài quảng bá cách bài quảng bá trước chưa đủ minGapBetweenPromotions ngày:
//     đẩy ngày đăng tới lastPromoDate + minGap, giữ nguyên recommendedTime.
//
// Thứ tự tuần/offset là thứ tự duy nhất thuật toán xét, không tối ưu sắp xếp lại.
func BuildSchedule(phases []planmodels.Phase, startDate time.Time, policy brandmodels.RotationPolicy) []ScheduledItem {
	ordered := make([]planmodels.Phase, len(phases))
	copy(ordered, phases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].WeekNumber < ordered[j].WeekNumber
	})

	start := startDate.UTC().Truncate(24 * time.Hour)

	var result []ScheduledItem
	consecutivePromo := 0
	var lastPromoDate *time.Time

	for _, phase := range ordered {
		items := make([]planmodels.ContentItem, len(phase.ContentItems))
		copy(items, phase.ContentItems)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].RecommendedDayOffset < items[j].RecommendedDayOffset
		})

		for _, item := range items {
			date := start.AddDate(0, 0, (phase.WeekNumber-1)*7+item.RecommendedDayOffset)

			if !item.IsPromotional() {
				consecutivePromo = 0
				result = append(result, ScheduledItem{Item: item, Date: date})
				continue
			}

			if consecutivePromo >= policy.MaxConsecutivePromoPosts {
				// Vượt trần liên tiếp: bỏ bài, không dời lịch
				consecutivePromo = 0
				continue
			}

			if lastPromoDate != nil {
				gap := daysBetween(date, *lastPromoDate)
				if gap < policy.MinGapBetweenPromotions {
					date = lastPromoDate.AddDate(0, 0, policy.MinGapBetweenPromotions)
				}
			}

			consecutivePromo++
			promoDate := date
			lastPromoDate = &promoDate
			result = append(result, ScheduledItem{Item: item, Date: date})
		}
	}

	return result
}

// BuildCalendarEntries chạy BuildSchedule rồi nhân bản mỗi item thành một entry
// cho từng platform của plan, cùng ngày giờ. Plan không có platform nào thì
// không entry nào được tạo.
func BuildCalendarEntries(plan *planmodels.Plan, policy brandmodels.RotationPolicy) []calmodels.CalendarEntry {
	scheduled := BuildSchedule(plan.Phases, time.UnixMilli(plan.StartDate).UTC(), policy)

	entries := make([]calmodels.CalendarEntry, 0, len(scheduled)*len(plan.Platforms))
	for _, s := range scheduled {
		publishTime := s.Item.RecommendedTime
		if publishTime == "" {
			publishTime = DefaultPublishTime
		}
		for _, platform := range plan.Platforms {
			entries = append(entries, calmodels.CalendarEntry{
				PlanID:        plan.ID,
				ContentItemID: s.Item.ID,
				BrandID:       plan.BrandID,
				UserID:        plan.UserID,
				ScheduledDate: s.Date.UnixMilli(),
				ScheduledTime: publishTime,
				Platform:      platform,
				Status:        calmodels.EntryStatusScheduled,
			})
		}
	}
	return entries
}

// daysBetween trả về số ngày chênh lệch tuyệt đối giữa hai mốc 00:00 UTC.
func daysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}
