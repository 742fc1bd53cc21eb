package model

import (
	"fmt"
	"time"
)

// DaysBetween 回傳兩個日期之間的天數，只看年月日，忽略時間與時區
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// TimeOfDay 航班起飛時刻
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	var hour, minute int
	if _, err := fmt.Sscanf(string(text), "%d:%d", &hour, &minute); err != nil {
		return fmt.Errorf("invalid time of day %q: %w", text, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid time of day %q", text)
	}
	t.Hour, t.Minute = hour, minute
	return nil
}
