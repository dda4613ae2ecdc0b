package planner

import (
	"sort"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// Selection is one collection chosen for distribution on this planning run.
type Selection struct {
	Collection string
	Mode       domain.Mode
}

// Classify decides which collections to schedule on a full-audit run.
//
// Collections below the growth threshold are selected on every run.
// Mature collections rotate: they are sorted by identifier and collection i
// is selected only when i mod 7 equals day, so each one lands on a fixed
// weekday and the weekly load spreads evenly. day is the UTC weekday,
// 0 = Sunday.
func Classify(stats []domain.CollectionStat, threshold, day int) []Selection {
	sorted := append([]domain.CollectionStat(nil), stats...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Identifier < sorted[j].Identifier
	})

	var selected []Selection
	var maintenance []string
	for _, s := range sorted {
		if s.PublishedCount < threshold {
			selected = append(selected, Selection{Collection: s.Identifier, Mode: domain.ModeGrowth})
		} else {
			maintenance = append(maintenance, s.Identifier)
		}
	}

	for i, name := range maintenance {
		if i%7 == day%7 {
			selected = append(selected, Selection{Collection: name, Mode: domain.ModeMaintenance})
		}
	}
	return selected
}

// FromManifests selects every collection that produced new content in the
// most recent generation cycle. Fresh content is reason enough to promote,
// so the growth threshold is not consulted. Duplicate manifests for one
// collection yield a single selection: collections are unique within a plan.
func FromManifests(manifests []domain.RunManifest) []Selection {
	var selected []Selection
	seen := map[string]struct{}{}
	for _, m := range manifests {
		if m.CreatedCount() == 0 {
			continue
		}
		if _, dup := seen[m.Collection]; dup {
			continue
		}
		seen[m.Collection] = struct{}{}
		selected = append(selected, Selection{Collection: m.Collection, Mode: domain.ModeGrowth})
	}
	return selected
}
