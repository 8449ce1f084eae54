package domain

import "time"

// DayReport summarises one advance of the inventory by a single day
type DayReport struct {
	Day          int              `json:"day"`
	AdvancedAt   time.Time        `json:"advanced_at"`
	Duration     time.Duration    `json:"duration_ns"`
	ItemsUpdated int              `json:"items_updated"`
	ItemsExpired int              `json:"items_expired"`
	ByCategory   map[Category]int `json:"by_category"`
}

// NewDayReport tallies the items after an update
func NewDayReport(day int, advancedAt time.Time, items []*Item) *DayReport {
	report := &DayReport{
		Day:        day,
		AdvancedAt: advancedAt,
		ByCategory: make(map[Category]int, len(Categories)),
	}
	for _, item := range items {
		report.ByCategory[item.Category]++
		if !item.Category.IsLegendary() {
			report.ItemsUpdated++
		}
		if item.IsExpired() {
			report.ItemsExpired++
		}
	}
	return report
}
