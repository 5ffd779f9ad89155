// ABOUTME: Embedded catalog of structures: categories, items and complexity sheets
// ABOUTME: Supports lookup by id and fuzzy search over names for the picker

package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/mauromedda/dsviz/pkg/tui/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Cost is the time complexity of one operation.
type Cost struct {
	Operation string `yaml:"operation"`
	Cost      string `yaml:"cost"`
}

// Sheet is the reference card shown next to a visualizer.
type Sheet struct {
	Summary  string   `yaml:"summary"`
	Time     []Cost   `yaml:"time"`
	Space    string   `yaml:"space"`
	UseCases []string `yaml:"use_cases"`
	Example  string   `yaml:"example"`
}

// Item is one structure or algorithm.
type Item struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
	Available   bool   `yaml:"available"`
	Sheet       *Sheet `yaml:"sheet"`
	// Category is the owning category id, filled in on load.
	Category string `yaml:"-"`
}

// Category groups related items.
type Category struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Items       []Item `yaml:"items"`
}

// Catalog is the parsed document with an id index.
type Catalog struct {
	Categories []Category `yaml:"categories"`
	byID       map[string]int
	items      []Item
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates a catalog document. Items without a name
// get one derived from their id ("quick-sort" becomes "Quick Sort").
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	title := cases.Title(language.English)
	c.byID = make(map[string]int)
	for ci := range c.Categories {
		cat := &c.Categories[ci]
		if cat.ID == "" {
			return nil, fmt.Errorf("category %d has no id", ci)
		}
		if cat.Name == "" {
			cat.Name = title.String(cat.ID)
		}
		for ii := range cat.Items {
			it := &cat.Items[ii]
			if it.ID == "" {
				return nil, fmt.Errorf("category %s: item %d has no id", cat.ID, ii)
			}
			if _, dup := c.byID[it.ID]; dup {
				return nil, fmt.Errorf("duplicate item id %q", it.ID)
			}
			if it.Available && it.Sheet == nil {
				return nil, fmt.Errorf("item %s is available but has no sheet", it.ID)
			}
			if it.Name == "" {
				it.Name = title.String(strings.ReplaceAll(it.ID, "-", " "))
			}
			it.Category = cat.ID
			c.byID[it.ID] = len(c.items)
			c.items = append(c.items, *it)
		}
	}
	return &c, nil
}

// Items returns every item in document order.
func (c *Catalog) Items() []Item {
	return c.items
}

// Available returns the items that have a visualizer.
func (c *Catalog) Available() []Item {
	var out []Item
	for _, it := range c.items {
		if it.Available {
			out = append(out, it)
		}
	}
	return out
}

// Lookup returns the item with id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Result is a search hit with the matched positions in Item.Name.
type Result struct {
	Item    Item
	Matched []int
}

// Search ranks items whose name fuzzily matches query, best first. An
// empty query returns every item in document order.
func (c *Catalog) Search(query string) []Result {
	matches := fuzzy.Filter(strings.TrimSpace(query), c.items, func(it Item) string { return it.Name })
	out := make([]Result, len(matches))
	for i, m := range matches {
		out[i] = Result{Item: m.Item, Matched: m.MatchedIndexes}
	}
	return out
}
