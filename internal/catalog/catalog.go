package catalog

import (
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

// Catalog is the immutable table of trait rules, grouped by category
type Catalog struct {
	rules map[traits.Category][]Rule
	total int
}

// Skip records a configured rule that was dropped
type Skip struct {
	Category traits.Category
	Index    int
	Reason   SkipReason
}

// Report summarizes a catalog build. Bad configuration only ever shows up
// here, never as an error.
type Report struct {
	Loaded  int
	Skipped []Skip
	// Unknown lists configuration keys that name no category
	Unknown []string
	// Unreadable lists categories whose payload could not be parsed at all
	Unreadable []string
}

// Clean reports whether every configured rule was loaded
func (r *Report) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Unknown) == 0 && len(r.Unreadable) == 0
}

// New decodes records into a catalog. Records that fail validation are
// dropped and listed in the report; the build itself always succeeds.
func New(records RecordSet) (*Catalog, *Report) {
	c := &Catalog{rules: make(map[traits.Category][]Rule)}
	report := &Report{}

	for _, category := range traits.Categories() {
		for i, record := range records[category] {
			outcome := Decode(category, record)
			if !outcome.OK() {
				report.Skipped = append(report.Skipped, Skip{
					Category: category,
					Index:    i,
					Reason:   outcome.Reason,
				})
				continue
			}
			c.rules[category] = append(c.rules[category], *outcome.Rule)
			c.total++
		}
	}

	report.Loaded = c.total
	return c, report
}

// FromDocument builds a catalog from a parsed configuration document
func FromDocument(doc *Document) (*Catalog, *Report) {
	if doc == nil {
		return New(nil)
	}

	c, report := New(doc.Records)
	report.Unknown = append(report.Unknown, doc.Unknown...)
	report.Unreadable = append(report.Unreadable, doc.Unreadable...)
	return c, report
}

// Len returns the number of loaded rules
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Rules returns a copy of one category's rules in configured order
func (c *Catalog) Rules(category traits.Category) []Rule {
	if c == nil {
		return nil
	}
	src := c.rules[category]
	out := make([]Rule, 0, len(src))
	for _, rule := range src {
		out = append(out, rule.clone())
	}
	return out
}

// Each walks every rule in resolution order: categories in their fixed
// order, then rules in configured order
func (c *Catalog) Each(fn func(Rule)) {
	if c == nil {
		return
	}
	for _, category := range traits.Categories() {
		for _, rule := range c.rules[category] {
			fn(rule.clone())
		}
	}
}
