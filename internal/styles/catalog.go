// Package styles holds the immutable catalog of writing styles: one prompt
// template and one temperature policy per style id. The catalog is built
// once at process start and is safe to share across sessions.
package styles

import (
	"sort"

	"github.com/valpere/restyle/internal"
)

// LengthAdjustment nudges the sampling temperature when the requested
// output length diverges from the original length. A zero threshold
// disables that side of the rule.
type LengthAdjustment struct {
	// RatioBelow applies Delta when targetLength/originalLength < RatioBelow.
	RatioBelow float64
	// RatioAbove applies Delta when targetLength/originalLength > RatioAbove.
	RatioAbove float64
	// Delta is added to the base temperature; may be negative.
	Delta float64
}

// StyleProfile bundles the generation policy for one named style.
// Profiles are read-only after the catalog is built.
type StyleProfile struct {
	ID       string
	Category string
	// Prompt is the style instruction sent to the provider.
	Prompt            string
	BaseTemperature   float64
	MinTemperature    float64
	MaxTemperature    float64
	LengthAdjustments []LengthAdjustment
}

// Catalog is a pure lookup table from style id to profile.
type Catalog struct {
	profiles map[string]*StyleProfile
	ids      []string
}

// NewCatalog builds a catalog from the builtin profile table.
func NewCatalog() *Catalog {
	return newCatalog(builtinProfiles)
}

func newCatalog(profiles []StyleProfile) *Catalog {
	c := &Catalog{profiles: make(map[string]*StyleProfile, len(profiles))}
	for i := range profiles {
		p := &profiles[i]
		c.profiles[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	sort.Strings(c.ids)
	return c
}

// Resolve returns the profile for styleID. Unknown ids fail with an
// unsupported-style error; this check is the first gate for any request.
func (c *Catalog) Resolve(styleID string) (*StyleProfile, error) {
	p, ok := c.profiles[styleID]
	if !ok {
		return nil, internal.NewError(internal.KindUnsupportedStyle, "unsupported style: %s", styleID)
	}
	return p, nil
}

// IDs returns all supported style ids in sorted order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Profiles returns all profiles in sorted id order.
func (c *Catalog) Profiles() []*StyleProfile {
	out := make([]*StyleProfile, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.profiles[id])
	}
	return out
}
