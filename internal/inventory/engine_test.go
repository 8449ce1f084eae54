package inventory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func advanceSingle(t *testing.T, item *domain.Item) {
	t.Helper()
	require.NoError(t, NewEngine().AdvanceOneDay([]*domain.Item{item}))
}

func TestAdvanceOneDay_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		sellIn      int
		quality     int
		wantSellIn  int
		wantQuality int
		desc        string
	}{
		{"ordinary", "Generic Item", 10, 20, 9, 19, "At the end of each day our system lowers both values for every item"},
		{"ordinary past sell date", "Generic Item", 0, 20, -1, 18, "Once the sell by date has passed, Quality degrades twice as fast"},
		{"ordinary never negative", "Generic Item", 10, 0, 9, 0, "The Quality of an item is never negative"},
		{"ordinary never negative past sell date", "Generic Item", 0, 0, -1, 0, "The Quality of an item is never negative"},
		{"ordinary one left past sell date", "Generic Item", -4, 1, -5, 0, "A decrease of two from one stops at zero"},
		{"aged brie", "Aged Brie", 10, 20, 9, 21, "Aged Brie increases in Quality the older it gets"},
		{"aged brie past sell date", "Aged Brie", 0, 20, -1, 22, "Aged Brie increases twice as fast once expired"},
		{"aged brie capped", "Aged Brie", 10, 50, 9, 50, "The Quality of an item is never more than 50"},
		{"aged brie capped past sell date", "Aged Brie", 0, 50, -1, 50, "The Quality of an item is never more than 50"},
		{"aged brie doubled into cap", "Aged Brie", 0, 49, -1, 50, "49 plus two is clamped to 50"},
		{"sulfuras", "Sulfuras, Hand of Ragnaros", 10, 80, 10, 80, "Legendary items never change"},
		{"sulfuras past sell date", "Sulfuras, Hand of Ragnaros", 0, 80, 0, 80, "Legendary items never change"},
		{"sulfuras long expired", "Sulfuras, Hand of Ragnaros", -1, 80, -1, 80, "Legendary items never change"},
		{"backstage far", "Backstage passes to a TAFKAL80ETC concert", 11, 20, 10, 21, "More than 10 days out: +1"},
		{"backstage ten days", "Backstage passes to a TAFKAL80ETC concert", 10, 20, 9, 22, "10 days or less: +2"},
		{"backstage six days", "Backstage passes to a TAFKAL80ETC concert", 6, 20, 5, 22, "10 days or less: +2"},
		{"backstage five days", "Backstage passes to a TAFKAL80ETC concert", 5, 20, 4, 23, "5 days or less: +3"},
		{"backstage last day", "Backstage passes to a TAFKAL80ETC concert", 1, 20, 0, 23, "5 days or less: +3"},
		{"backstage after concert", "Backstage passes to a TAFKAL80ETC concert", 0, 20, -1, 0, "Quality drops to 0 after the concert"},
		{"backstage after concert from zero", "Backstage passes to a TAFKAL80ETC concert", 0, 0, -1, 0, "Drop to zero is an assignment"},
		{"backstage after concert from cap", "Backstage passes to a TAFKAL80ETC concert", -3, 50, -4, 0, "Drop to zero is an assignment"},
		{"backstage capped far", "Backstage passes to a TAFKAL80ETC concert", 15, 50, 14, 50, "Never more than 50"},
		{"backstage capped near", "Backstage passes to a TAFKAL80ETC concert", 10, 49, 9, 50, "Never more than 50"},
		{"backstage capped last days", "Backstage passes to a TAFKAL80ETC concert", 5, 49, 4, 50, "Never more than 50"},
		{"conjured is ordinary", "Conjured Mana Cake", 3, 6, 2, 5, "No conjured category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.NewItem(tt.itemName, tt.sellIn, tt.quality)
			advanceSingle(t, item)
			assert.Equal(t, tt.wantSellIn, item.SellIn, "SellIn: "+tt.desc)
			assert.Equal(t, tt.wantQuality, item.Quality, "Quality: "+tt.desc)
		})
	}
}

func TestAdvanceOneDay_Empty(t *testing.T) {
	engine := NewEngine()
	assert.NoError(t, engine.AdvanceOneDay(nil))
	assert.NoError(t, engine.AdvanceOneDay([]*domain.Item{}))
}

func TestAdvanceOneDay_DispatchesOnCategoryNotName(t *testing.T) {
	// An explicitly categorised item follows its tag even when the name says otherwise
	item := domain.NewItemWithCategory("Aged Brie", 5, 10, domain.CategoryOrdinary)
	advanceSingle(t, item)
	assert.Equal(t, 9, item.Quality)

	cheese := domain.NewItemWithCategory("Vintage Cheddar", 5, 10, domain.CategoryAged)
	advanceSingle(t, cheese)
	assert.Equal(t, 11, cheese.Quality)
}

func TestAdvanceOneDay_RejectsMalformedWithoutMutating(t *testing.T) {
	tests := []struct {
		name    string
		bad     *domain.Item
		wantErr error
	}{
		{"nil item", nil, domain.ErrNilItem},
		{"unclassified item", &domain.Item{Name: "Mystery", SellIn: 3, Quality: 3}, domain.ErrUnclassifiedItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good := domain.NewItem("Generic Item", 10, 20)
			items := []*domain.Item{good, tt.bad}

			err := NewEngine().AdvanceOneDay(items)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "index 1")

			assert.Equal(t, 10, good.SellIn, "no item is touched when the batch is rejected")
			assert.Equal(t, 20, good.Quality)
		})
	}
}

func TestAdvanceOneDay_RejectsSharedItem(t *testing.T) {
	item := domain.NewItem("Generic Item", 10, 20)

	err := NewEngine().AdvanceOneDay([]*domain.Item{item, item})
	require.ErrorIs(t, err, domain.ErrInvalidItem)
	assert.Equal(t, 20, item.Quality)
}

func TestAdvanceOneDay_OrderIndependent(t *testing.T) {
	build := func() []*domain.Item {
		return []*domain.Item{
			domain.NewItem("+5 Dexterity Vest", 10, 20),
			domain.NewItem("Aged Brie", 2, 0),
			domain.NewItem("Sulfuras, Hand of Ragnaros", -1, 80),
			domain.NewItem("Backstage passes to a TAFKAL80ETC concert", 5, 49),
		}
	}
	forward := build()
	reversed := build()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	engine := NewEngine()
	require.NoError(t, engine.AdvanceDays(forward, 7))
	require.NoError(t, engine.AdvanceDays(reversed, 7))

	for i, item := range forward {
		other := reversed[len(reversed)-1-i]
		assert.Equal(t, item.SellIn, other.SellIn, item.Name)
		assert.Equal(t, item.Quality, other.Quality, item.Name)
	}
}

func TestAdvanceDays_TicketWalksThroughTiers(t *testing.T) {
	item := domain.NewItem("Backstage passes to a TAFKAL80ETC concert", 12, 10)
	engine := NewEngine()

	// 12,11 -> +1 each; 10..6 -> +2 each; 5..1 -> +3 each; 0 -> reset
	want := []int{11, 12, 14, 16, 18, 20, 22, 25, 28, 31, 34, 37, 0, 0}
	for day, quality := range want {
		require.NoError(t, engine.AdvanceOneDay([]*domain.Item{item}))
		assert.Equal(t, quality, item.Quality, "day %d", day+1)
	}
	assert.Equal(t, 12-len(want), item.SellIn)
}

func TestAdvanceDays_InvalidCount(t *testing.T) {
	err := NewEngine().AdvanceDays(nil, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidDayCount)
}

func TestAdvanceDays_ZeroIsNoop(t *testing.T) {
	item := domain.NewItem("Generic Item", 3, 3)
	require.NoError(t, NewEngine().AdvanceDays([]*domain.Item{item}, 0))
	assert.Equal(t, 3, item.SellIn)
	assert.Equal(t, 3, item.Quality)
}

// legacyUpdate is the classic nested-conditional update, kept as a reference oracle
func legacyUpdate(item *domain.Item) {
	if item.Name != domain.NameAgedBrie && item.Name != domain.NameBackstagePasses {
		if item.Quality > 0 && item.Name != domain.NameSulfuras {
			item.Quality--
		}
	} else if item.Quality < 50 {
		item.Quality++
		if item.Name == domain.NameBackstagePasses {
			if item.SellIn < 11 && item.Quality < 50 {
				item.Quality++
			}
			if item.SellIn < 6 && item.Quality < 50 {
				item.Quality++
			}
		}
	}

	if item.Name != domain.NameSulfuras {
		item.SellIn--
	}

	if item.SellIn < 0 {
		switch item.Name {
		case domain.NameAgedBrie:
			if item.Quality < 50 {
				item.Quality++
			}
		case domain.NameBackstagePasses:
			item.Quality = 0
		default:
			if item.Quality > 0 && item.Name != domain.NameSulfuras {
				item.Quality--
			}
		}
	}
}

var propertyNames = []string{
	"Generic Item",
	domain.NameAgedBrie,
	domain.NameBackstagePasses,
	domain.NameSulfuras,
	"Conjured Mana Cake",
}

func randomItem(rng *rand.Rand) *domain.Item {
	name := propertyNames[rng.Intn(len(propertyNames))]
	sellIn := rng.Intn(41) - 10
	quality := rng.Intn(domain.QualityMax + 1)
	if name == domain.NameSulfuras {
		quality = domain.LegendaryQuality
	}
	return domain.NewItem(name, sellIn, quality)
}

func TestAdvanceOneDay_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	engine := NewEngine()

	for trial := 0; trial < 500; trial++ {
		item := randomItem(rng)
		initialSellIn := item.SellIn
		oracle := *item

		days := rng.Intn(60) + 1
		for day := 1; day <= days; day++ {
			prevSellIn := item.SellIn
			require.NoError(t, engine.AdvanceOneDay([]*domain.Item{item}))
			legacyUpdate(&oracle)

			assert.Equal(t, oracle.SellIn, item.SellIn, "trial %d day %d %s", trial, day, item.Name)
			assert.Equal(t, oracle.Quality, item.Quality, "trial %d day %d %s", trial, day, item.Name)

			if item.Category.IsLegendary() {
				assert.Equal(t, domain.LegendaryQuality, item.Quality)
				assert.Equal(t, initialSellIn, item.SellIn)
				continue
			}
			assert.Equal(t, prevSellIn-1, item.SellIn, "sellIn drops by exactly one per day")
			assert.GreaterOrEqual(t, item.Quality, domain.QualityMin)
			assert.LessOrEqual(t, item.Quality, domain.QualityMax)
		}
	}
}

func TestAdvanceDays_EqualsRepeatedSingleDays(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	engine := NewEngine()

	batch := make([]*domain.Item, 0, 50)
	stepped := make([]*domain.Item, 0, 50)
	for i := 0; i < 50; i++ {
		item := randomItem(rng)
		clone := *item
		batch = append(batch, item)
		stepped = append(stepped, &clone)
	}

	require.NoError(t, engine.AdvanceDays(batch, 30))
	for day := 0; day < 30; day++ {
		require.NoError(t, engine.AdvanceOneDay(stepped))
	}

	for i := range batch {
		assert.Equal(t, stepped[i].SellIn, batch[i].SellIn)
		assert.Equal(t, stepped[i].Quality, batch[i].Quality)
	}
}

func TestAdvanceOneDay_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const count = 1000

	sequential := make([]*domain.Item, 0, count)
	parallel := make([]*domain.Item, 0, count)
	for i := 0; i < count; i++ {
		item := randomItem(rng)
		clone := *item
		sequential = append(sequential, item)
		parallel = append(parallel, &clone)
	}

	parallelEngine := NewEngine(WithWorkers(8))
	assert.Greater(t, parallelEngine.partitions(count), 1)

	require.NoError(t, NewEngine().AdvanceDays(sequential, 20))
	require.NoError(t, parallelEngine.AdvanceDays(parallel, 20))

	for i := range sequential {
		assert.Equal(t, *sequential[i], *parallel[i])
	}
}

func TestEngine_Partitions(t *testing.T) {
	assert.Equal(t, 1, NewEngine().partitions(10000))
	assert.Equal(t, 1, NewEngine(WithWorkers(4)).partitions(2*MinItemsPerWorker-1))
	assert.Equal(t, 2, NewEngine(WithWorkers(4)).partitions(2*MinItemsPerWorker))
	assert.Equal(t, 4, NewEngine(WithWorkers(4)).partitions(100*MinItemsPerWorker))
	assert.Equal(t, 1, NewEngine(WithWorkers(0)).partitions(10000), "non-positive workers are ignored")
}
