package domain

// Item names that select a category by exact, case-sensitive match
const (
	NameSulfuras        = "Sulfuras, Hand of Ragnaros"
	NameAgedBrie        = "Aged Brie"
	NameBackstagePasses = "Backstage passes to a TAFKAL80ETC concert"
)

// Quality bounds
const (
	QualityMin = 0
	QualityMax = 50

	// LegendaryQuality is the fixed quality of legendary items; it sits outside [QualityMin, QualityMax]
	LegendaryQuality = 80
)

// Event ticket tiers, evaluated on the sellIn value before the daily decrement
const (
	TicketFarThreshold  = 10 // sellIn > 10: +1
	TicketNearThreshold = 5  // 5 < sellIn <= 10: +2, 0 < sellIn <= 5: +3
)

// Category text values used in JSON payloads, seed files and storage
const (
	CategoryTextUnclassified = "unclassified"
	CategoryTextOrdinary     = "ordinary"
	CategoryTextAged         = "aged"
	CategoryTextEventTicket  = "event_ticket"
	CategoryTextLegendary    = "legendary"
)
