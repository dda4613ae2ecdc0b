package domain

import (
	"fmt"
	"strings"
)

// CollectionStat is the per-collection input to full-audit classification.
// Computed fresh on every planning run; never persisted.
type CollectionStat struct {
	Identifier     string
	PublishedCount int
}

// RunManifest records what a generation run produced for one collection.
// Success-gated planning selects only collections whose manifest lists
// freshly created entries.
type RunManifest struct {
	Collection string   `json:"collection"`
	Created    []string `json:"created"`
}

func (m RunManifest) CreatedCount() int { return len(m.Created) }

// BoardName derives the human-readable distribution board name for a
// collection: "snow-leopards" becomes "Snow Leopards Coloring Pages".
func BoardName(collection string) string {
	words := strings.Split(collection, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ") + " Coloring Pages"
}

// FeedURL builds the per-collection syndication endpoint handed to the
// distribution channel.
func FeedURL(baseURL, section, collection string) string {
	return fmt.Sprintf("%s/%s/%s/index.xml", strings.TrimRight(baseURL, "/"), section, collection)
}
