package analytics

import (
	"fmt"
	"sort"
)

// Tier is a qualitative intensity bucket starting at Min percent.
type Tier struct {
	Label string  `json:"label" toml:"label"`
	Min   float64 `json:"min" toml:"min"`
}

// TierTable holds tiers sorted by Min. A value belongs to the last tier whose Min
// is lower or equal to it, so every tier covers [Min, next.Min).
type TierTable []Tier

var DefaultTiers = TierTable{
	{Label: "low", Min: 0},
	{Label: "moderate", Min: 30},
	{Label: "high", Min: 60},
	{Label: "very high", Min: 85},
}

// NewTierTable returns a sorted copy of tiers, or a copy of DefaultTiers when empty.
func NewTierTable(tiers []Tier) (TierTable, error) {
	if len(tiers) == 0 {
		tiers = DefaultTiers
	}
	table := make(TierTable, len(tiers))
	copy(table, tiers)
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Min < table[j].Min
	})
	for i := 1; i < len(table); i++ {
		if table[i].Min == table[i-1].Min {
			return nil, fmt.Errorf("tiers %q and %q share min %v", table[i-1].Label, table[i].Label, table[i].Min)
		}
	}
	return table, nil
}

// Tier returns the label for the intensity percentage. Values under the first
// tier minimum get the first tier.
func (t TierTable) Tier(intensity float64) string {
	if len(t) == 0 {
		return ""
	}
	label := t[0].Label
	for _, tier := range t {
		if intensity < tier.Min {
			break
		}
		label = tier.Label
	}
	return label
}
