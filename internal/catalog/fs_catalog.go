package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FSCatalog reads the catalog straight off the content tree: one directory
// per collection, one Markdown file per entry. An entry is published unless
// its frontmatter says draft: true.
type FSCatalog struct {
	root string
}

// NewFSCatalog takes the section root, e.g. content/animals.
func NewFSCatalog(root string) *FSCatalog {
	return &FSCatalog{root: root}
}

func (c *FSCatalog) Collections() ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, fmt.Errorf("read content root: %w", err)
	}

	var collections []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		collections = append(collections, e.Name())
	}
	return collections, nil
}

func (c *FSCatalog) PublishedCount(collection string) (int, error) {
	dir := filepath.Join(c.root, collection)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read collection %s: %w", collection, err)
	}

	count := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		if name == "index.md" || name == "_index.md" {
			continue
		}
		draft, err := isDraft(filepath.Join(dir, name))
		if err != nil {
			return 0, err
		}
		if !draft {
			count++
		}
	}
	return count, nil
}

type frontmatter struct {
	Draft bool `yaml:"draft"`
}

// isDraft parses the entry's leading YAML frontmatter block. Entries with no
// frontmatter, or frontmatter that does not parse, count as published:
// drafts are opt-in.
func isDraft(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read entry: %w", err)
	}

	const delim = "---"
	if !bytes.HasPrefix(data, []byte(delim+"\n")) {
		return false, nil
	}
	rest := data[len(delim)+1:]
	end := bytes.Index(rest, []byte("\n"+delim))
	if end < 0 {
		return false, nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return false, nil
	}
	return fm.Draft, nil
}

// compile-time check that FSCatalog implements Catalog
var _ Catalog = (*FSCatalog)(nil)
