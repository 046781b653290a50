// Package plansvc - Test thuật toán dựng lịch: rotation policy, fan-out platform.
package plansvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	brandmodels "campaign_planner/internal/api/brand/models"
	planmodels "campaign_planner/internal/api/plan/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func item(ctaType string, offset int) planmodels.ContentItem {
	return planmodels.ContentItem{
		ID:                   primitive.NewObjectID(),
		Title:                ctaType,
		CtaType:              ctaType,
		Format:               planmodels.ItemFormatPost,
		RecommendedDayOffset: offset,
	}
}

func defaultPolicy() brandmodels.RotationPolicy {
	return brandmodels.RotationPolicy{
		MaxConsecutivePromoPosts: 2,
		MinGapBetweenPromotions:  3,
	}
}

// Kịch bản chuẩn: 6 item [soft, hard, hard, hard, soft, hard] trong tuần 1,
// rotation {max:2, gap:3}. Item hard thứ 3 bị loại vì chạm trần liên tiếp,
// các item hard còn lại bị đẩy ngày cho đủ gap.
func TestBuildSchedule_RotationScenario(t *testing.T) {
	phases := []planmodels.Phase{{
		ID:         primitive.NewObjectID(),
		Name:       "Week 1",
		WeekNumber: 1,
		ContentItems: []planmodels.ContentItem{
			item(planmodels.CtaTypeSoft, 0),
			item(planmodels.CtaTypeHard, 1),
			item(planmodels.CtaTypeHard, 2),
			item(planmodels.CtaTypeHard, 3),
			item(planmodels.CtaTypeSoft, 4),
			item(planmodels.CtaTypeHard, 5),
		},
	}}

	start := day(2026, time.March, 1)
	result := BuildSchedule(phases, start, defaultPolicy())

	if len(result) != 5 {
		t.Fatalf("muốn 5 item sau rotation, nhận %d", len(result))
	}

	// item 1 (soft): giữ nguyên ngày dự kiến
	if !result[0].Date.Equal(day(2026, time.March, 1)) {
		t.Errorf("item 1: muốn 2026-03-01, nhận %s", result[0].Date)
	}
	// item 2 (hard đầu tiên): chưa có promo trước, giữ nguyên
	if !result[1].Date.Equal(day(2026, time.March, 2)) {
		t.Errorf("item 2: muốn 2026-03-02, nhận %s", result[1].Date)
	}
	// item 3 (hard): cách promo trước 1 ngày < gap 3, đẩy tới 03-02 + 3
	if !result[2].Date.Equal(day(2026, time.March, 5)) {
		t.Errorf("item 3: muốn 2026-03-05 (bị đẩy gap), nhận %s", result[2].Date)
	}
	// item 4 (hard) bị loại: result[3] phải là item soft thứ hai
	if result[3].Item.CtaType != planmodels.CtaTypeSoft {
		t.Errorf("item hard thứ 3 phải bị loại, nhận ctaType=%s", result[3].Item.CtaType)
	}
	if !result[3].Date.Equal(day(2026, time.March, 5)) {
		t.Errorf("item 5: muốn 2026-03-05, nhận %s", result[3].Date)
	}
	// item 6 (hard): cách promo trước (03-05) 1 ngày, đẩy tới 03-05 + 3
	if !result[4].Date.Equal(day(2026, time.March, 8)) {
		t.Errorf("item 6: muốn 2026-03-08 (bị đẩy gap), nhận %s", result[4].Date)
	}
}

// Hai promo sống sót liên tiếp luôn cách nhau >= minGapBetweenPromotions ngày.
func TestBuildSchedule_GapPropertyHolds(t *testing.T) {
	phases := []planmodels.Phase{{
		WeekNumber: 1,
		ContentItems: []planmodels.ContentItem{
			item(planmodels.CtaTypeHard, 0),
			item(planmodels.CtaTypeHard, 1),
			item(planmodels.CtaTypeSoft, 2),
			item(planmodels.CtaTypeHard, 3),
			item(planmodels.CtaTypeHard, 6),
		},
	}}

	policy := defaultPolicy()
	result := BuildSchedule(phases, day(2026, time.January, 5), policy)

	var lastPromo *time.Time
	for _, s := range result {
		if !s.Item.IsPromotional() {
			continue
		}
		if lastPromo != nil {
			gap := int(s.Date.Sub(*lastPromo) / (24 * time.Hour))
			if gap < policy.MinGapBetweenPromotions {
				t.Errorf("gap giữa hai promo là %d ngày, muốn >= %d", gap, policy.MinGapBetweenPromotions)
			}
		}
		d := s.Date
		lastPromo = &d
	}
}

// Promo vượt trần liên tiếp bị loại hẳn, không dời lịch.
func TestBuildSchedule_DropsOverCap(t *testing.T) {
	phases := []planmodels.Phase{{
		WeekNumber: 1,
		ContentItems: []planmodels.ContentItem{
			item(planmodels.CtaTypeHard, 0),
			item(planmodels.CtaTypeHard, 1),
			item(planmodels.CtaTypeHard, 2),
		},
	}}

	result := BuildSchedule(phases, day(2026, time.March, 1), defaultPolicy())
	if len(result) != 2 {
		t.Fatalf("muốn 2 promo sống sót (trần = 2), nhận %d", len(result))
	}
}

// Phase tuần 2 bắt đầu từ start + 7 ngày, thứ tự duyệt theo weekNumber dù input đảo.
func TestBuildSchedule_WeekOrdering(t *testing.T) {
	phases := []planmodels.Phase{
		{WeekNumber: 2, ContentItems: []planmodels.ContentItem{item(planmodels.CtaTypeSoft, 0)}},
		{WeekNumber: 1, ContentItems: []planmodels.ContentItem{item(planmodels.CtaTypeSoft, 3)}},
	}

	result := BuildSchedule(phases, day(2026, time.March, 1), defaultPolicy())
	if len(result) != 2 {
		t.Fatalf("muốn 2 item, nhận %d", len(result))
	}
	if !result[0].Date.Equal(day(2026, time.March, 4)) {
		t.Errorf("item tuần 1 offset 3: muốn 2026-03-04, nhận %s", result[0].Date)
	}
	if !result[1].Date.Equal(day(2026, time.March, 8)) {
		t.Errorf("item tuần 2 offset 0: muốn 2026-03-08, nhận %s", result[1].Date)
	}
}

// Mỗi item sống sót sinh một entry cho mỗi platform của plan.
func TestBuildCalendarEntries_PlatformFanOut(t *testing.T) {
	plan := &planmodels.Plan{
		ID:        primitive.NewObjectID(),
		BrandID:   primitive.NewObjectID(),
		UserID:    primitive.NewObjectID(),
		StartDate: day(2026, time.March, 1).UnixMilli(),
		Platforms: []string{"instagram", "tiktok"},
		Phases: []planmodels.Phase{{
			WeekNumber: 1,
			ContentItems: []planmodels.ContentItem{
				item(planmodels.CtaTypeSoft, 0),
				item(planmodels.CtaTypeSoft, 1),
			},
		}},
	}

	entries := BuildCalendarEntries(plan, defaultPolicy())
	if len(entries) != 4 {
		t.Fatalf("2 item x 2 platform: muốn 4 entry, nhận %d", len(entries))
	}
	for _, e := range entries {
		if e.PlanID != plan.ID || e.BrandID != plan.BrandID || e.UserID != plan.UserID {
			t.Errorf("entry không mang đúng planId/brandId/userId: %+v", e)
		}
		if e.ScheduledTime != DefaultPublishTime {
			t.Errorf("item không có recommendedTime phải mặc định %s, nhận %s", DefaultPublishTime, e.ScheduledTime)
		}
	}
}

// Item có recommendedTime thì entry giữ nguyên giờ đó.
func TestBuildCalendarEntries_KeepsRecommendedTime(t *testing.T) {
	it := item(planmodels.CtaTypeSoft, 0)
	it.RecommendedTime = "18:30"
	plan := &planmodels.Plan{
		StartDate: day(2026, time.March, 1).UnixMilli(),
		Platforms: []string{"instagram"},
		Phases:    []planmodels.Phase{{WeekNumber: 1, ContentItems: []planmodels.ContentItem{it}}},
	}

	entries := BuildCalendarEntries(plan, defaultPolicy())
	if len(entries) != 1 {
		t.Fatalf("muốn 1 entry, nhận %d", len(entries))
	}
	if entries[0].ScheduledTime != "18:30" {
		t.Errorf("muốn giữ recommendedTime 18:30, nhận %s", entries[0].ScheduledTime)
	}
}

// Plan không có platform nào thì không entry nào được tạo.
func TestBuildCalendarEntries_NoPlatforms(t *testing.T) {
	plan := &planmodels.Plan{
		StartDate: day(2026, time.March, 1).UnixMilli(),
		Phases: []planmodels.Phase{{
			WeekNumber:   1,
			ContentItems: []planmodels.ContentItem{item(planmodels.CtaTypeSoft, 0)},
		}},
	}

	entries := BuildCalendarEntries(plan, defaultPolicy())
	if len(entries) != 0 {
		t.Errorf("plan không có platform: muốn 0 entry, nhận %d", len(entries))
	}
}
