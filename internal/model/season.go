package model

import "time"

// Season 旅遊季節；SeasonAny 表示全年適用
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonAny    Season = "any"
)

var seasonLabels = map[Season]string{
	SeasonWinter: "зима",
	SeasonSpring: "весна",
	SeasonSummer: "лето",
	SeasonAutumn: "осень",
	SeasonAny:    "все",
}

func (s Season) IsValid() bool {
	_, ok := seasonLabels[s]
	return ok
}

// Label 目錄語系的顯示名稱
func (s Season) Label() string {
	if label, ok := seasonLabels[s]; ok {
		return label
	}
	return string(s)
}

// Matches 檢查行程季節是否涵蓋指定季節
func (s Season) Matches(season Season) bool {
	return s == SeasonAny || s == season
}

// SeasonOf 依月份決定季節：12-2 冬、3-5 春、6-8 夏、9-11 秋
func SeasonOf(date time.Time) Season {
	switch date.Month() {
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	default:
		return SeasonAutumn
	}
}
