package inventory

import "github.com/osse101/GildedRose_Go/internal/domain"

// adjustment is the raw outcome of a category rule for one day.
// A reset is a terminal assignment to QualityMin and bypasses the clamp.
type adjustment struct {
	delta int
	reset bool
}

// apply turns the adjustment into the next quality value
func (a adjustment) apply(quality int) int {
	if a.reset {
		return domain.QualityMin
	}
	return clampQuality(quality + a.delta)
}

// rule computes a day's adjustment from the sellIn value before the decrement
type rule func(sellIn int) adjustment

// rules maps each updatable category to its rule. Legendary items have no rule.
var rules = map[domain.Category]rule{
	domain.CategoryOrdinary:    ordinaryRule,
	domain.CategoryAged:        agedRule,
	domain.CategoryEventTicket: eventTicketRule,
}

func ordinaryRule(sellIn int) adjustment {
	if sellIn <= 0 {
		return adjustment{delta: -2 * DailyRate}
	}
	return adjustment{delta: -DailyRate}
}

func agedRule(sellIn int) adjustment {
	if sellIn <= 0 {
		return adjustment{delta: 2 * DailyRate}
	}
	return adjustment{delta: DailyRate}
}

func eventTicketRule(sellIn int) adjustment {
	switch {
	case sellIn <= 0:
		return adjustment{reset: true}
	case sellIn <= domain.TicketNearThreshold:
		return adjustment{delta: 3 * DailyRate}
	case sellIn <= domain.TicketFarThreshold:
		return adjustment{delta: 2 * DailyRate}
	default:
		return adjustment{delta: DailyRate}
	}
}

// clampQuality bounds quality to [QualityMin, QualityMax]
func clampQuality(quality int) int {
	if quality < domain.QualityMin {
		return domain.QualityMin
	}
	if quality > domain.QualityMax {
		return domain.QualityMax
	}
	return quality
}

// advanceItem moves one well-formed item forward by a single day
func advanceItem(item *domain.Item) {
	update, ok := rules[item.Category]
	if !ok {
		// Legendary items never change
		return
	}
	item.Quality = update(item.SellIn).apply(item.Quality)
	item.SellIn--
}
