// Package license answers whether a licensed feature is enabled.
//
// The host stores its license as a comma-separated feature list under a
// settings key. An empty or absent value means the install carries no
// license restrictions, and the wildcard "all" enables everything.
package license

import (
	"slices"
	"strings"
)

// Wildcard enables every feature.
const Wildcard = "all"

// FeatureSet is a parsed license feature list.
type FeatureSet struct {
	unrestricted bool
	names        map[string]struct{}
}

// Parse reads a comma-separated feature list. Names are case-insensitive.
func Parse(raw string) FeatureSet {
	set := FeatureSet{names: make(map[string]struct{})}
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if name == Wildcard {
			set.unrestricted = true
		}
		set.names[name] = struct{}{}
	}
	if len(set.names) == 0 {
		set.unrestricted = true
	}
	return set
}

// Has reports whether feature is enabled.
func (f FeatureSet) Has(feature string) bool {
	if f.unrestricted {
		return true
	}
	_, ok := f.names[strings.ToLower(strings.TrimSpace(feature))]
	return ok
}

// Unrestricted reports whether the set enables every feature.
func (f FeatureSet) Unrestricted() bool {
	return f.unrestricted
}

// Names returns the listed feature names, sorted.
func (f FeatureSet) Names() []string {
	out := make([]string, 0, len(f.names))
	for name := range f.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
