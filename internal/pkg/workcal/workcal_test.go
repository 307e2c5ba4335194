package workcal

import (
	"testing"
	"time"
)

func TestWeekdayIndex(t *testing.T) {
	cases := []struct {
		day  time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Wednesday, 2},
		{time.Thursday, 3},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}
	for _, c := range cases {
		if got := WeekdayIndex(c.day); got != c.want {
			t.Errorf("WeekdayIndex(%v) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestIsDayOff(t *testing.T) {
	week := Week{true, true, true, true, true, false, false} // weekends off

	saturday := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)
	if !IsDayOff(saturday, week, time.UTC) {
		t.Error("Saturday should be a day off")
	}

	monday := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	if IsDayOff(monday, week, time.UTC) {
		t.Error("Monday should be a working day")
	}
}

func TestIsDayOffUsesLocalWeekday(t *testing.T) {
	week := Week{true, true, true, true, true, false, false}

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Fatal(err)
	}

	// 23:00 UTC Friday is already Saturday in Kyiv.
	fridayLateUTC := time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)
	if !IsDayOff(fridayLateUTC, week, kyiv) {
		t.Error("Friday 23:00 UTC should read as Saturday in Kyiv")
	}
	if IsDayOff(fridayLateUTC, week, time.UTC) {
		t.Error("Friday 23:00 UTC is a working day in UTC")
	}
}

func TestHasWorkingDay(t *testing.T) {
	if (Week{}).HasWorkingDay() {
		t.Error("empty week should have no working day")
	}
	if !AllWorking.HasWorkingDay() {
		t.Error("AllWorking should have a working day")
	}
	if !(Week{false, false, false, true, false, false, false}).HasWorkingDay() {
		t.Error("single working day should count")
	}
}