// Package models - Test các helper của Plan.
package models

import (
	"testing"
	"time"
)

func TestComputeEndDate(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := ComputeEndDate(start, 4)
	want := time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("4 tuần từ 2026-03-01: muốn %s, nhận %s", want, end)
	}
}

func TestHasContent(t *testing.T) {
	p := &Plan{Phases: []Phase{{WeekNumber: 1}}}
	if p.HasContent() {
		t.Error("phase rỗng không tính là có nội dung")
	}

	p.Phases[0].ContentItems = []ContentItem{{Title: "Hook video"}}
	if !p.HasContent() {
		t.Error("plan có item phải trả về true")
	}

	empty := &Plan{}
	if empty.HasContent() {
		t.Error("plan không có phase phải trả về false")
	}
}

func TestMissingWeeks(t *testing.T) {
	p := &Plan{
		DurationWeeks: 4,
		Phases: []Phase{
			{WeekNumber: 1},
			{WeekNumber: 3},
		},
	}
	missing := p.MissingWeeks()
	if len(missing) != 2 || missing[0] != 2 || missing[1] != 4 {
		t.Errorf("muốn tuần thiếu [2 4], nhận %v", missing)
	}

	full := &Plan{DurationWeeks: 2, Phases: []Phase{{WeekNumber: 1}, {WeekNumber: 2}}}
	if got := full.MissingWeeks(); len(got) != 0 {
		t.Errorf("plan phủ đủ tuần: muốn rỗng, nhận %v", got)
	}
}

func TestContentItemIsPromotional(t *testing.T) {
	hard := &ContentItem{CtaType: CtaTypeHard}
	if !hard.IsPromotional() {
		t.Error("ctaType hard phải là promotional")
	}
	for _, cta := range []string{CtaTypeSoft, CtaTypeEducational, ""} {
		it := &ContentItem{CtaType: cta}
		if it.IsPromotional() {
			t.Errorf("ctaType %q không được tính là promotional", cta)
		}
	}
}
