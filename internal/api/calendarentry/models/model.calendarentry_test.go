// Package models - Test ghép thời điểm đăng của CalendarEntry.
package models

import (
	"testing"
	"time"
)

func TestPublishMoment(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	e := &CalendarEntry{ScheduledDate: date.UnixMilli(), ScheduledTime: "18:30"}
	want := time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC)
	if got := e.PublishMoment(); !got.Equal(want) {
		t.Errorf("muốn %s, nhận %s", want, got)
	}
}

func TestPublishMoment_BadTimeFallsBackToMidnight(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	for _, clock := range []string{"", "25:99", "6pm"} {
		e := &CalendarEntry{ScheduledDate: date.UnixMilli(), ScheduledTime: clock}
		if got := e.PublishMoment(); !got.Equal(date) {
			t.Errorf("scheduledTime %q phải về 00:00, nhận %s", clock, got)
		}
	}
}
