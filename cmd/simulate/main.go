// Command simulate prints the stock of the Gilded Rose day by day.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

const (
	defaultDays      = 2
	defaultSeedPath  = "configs/items/items.json"
	defaultSchemaRel = "configs/schemas/items.schema.json"
)

func main() {
	days := flag.Int("days", defaultDays, "Number of days to print, starting with day 0")
	seedPath := flag.String("seed", defaultSeedPath, "Path to the items seed file")
	builtin := flag.Bool("builtin", false, "Use the built-in fixture instead of a seed file")
	workers := flag.Int("workers", 1, "Engine goroutines")
	flag.Parse()

	var items []*domain.Item
	if *builtin {
		items = fixtureItems()
	} else {
		loaded, err := loadSeed(*seedPath)
		if err != nil {
			log.Fatalf("Failed to load seed: %v", err)
		}
		items = loaded
	}

	engine := inventory.NewEngine(inventory.WithWorkers(*workers))
	if err := run(os.Stdout, engine, items, *days); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}

func loadSeed(path string) ([]*domain.Item, error) {
	resolved, err := validation.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	schema, err := validation.ResolvePath(defaultSchemaRel)
	if err != nil {
		return nil, err
	}
	return item.LoadItems(item.NewLoaderWithSchema(schema), resolved)
}

// run prints the stock for days 0..days-1, advancing one day after each block
func run(w io.Writer, engine *inventory.Engine, items []*domain.Item, days int) error {
	if _, err := fmt.Fprintln(w, "OMGHAI!"); err != nil {
		return err
	}
	for day := 0; day < days; day++ {
		fmt.Fprintf(w, "-------- day %d --------\n", day)
		fmt.Fprintln(w, "name, sellIn, quality")
		for _, it := range items {
			fmt.Fprintln(w, it.String())
		}
		fmt.Fprintln(w)

		if err := engine.AdvanceOneDay(items); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
	}
	return nil
}

// fixtureItems is the classic opening stock
func fixtureItems() []*domain.Item {
	return []*domain.Item{
		domain.NewItem("+5 Dexterity Vest", 10, 20),
		domain.NewItem(domain.NameAgedBrie, 2, 0),
		domain.NewItem("Elixir of the Mongoose", 5, 7),
		domain.NewItem(domain.NameSulfuras, 0, 80),
		domain.NewItem(domain.NameSulfuras, -1, 80),
		domain.NewItem(domain.NameBackstagePasses, 15, 20),
		domain.NewItem(domain.NameBackstagePasses, 10, 49),
		domain.NewItem(domain.NameBackstagePasses, 5, 49),
		domain.NewItem("Conjured Mana Cake", 3, 6),
	}
}
