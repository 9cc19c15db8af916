package document

import (
	"fmt"
)

// migration upgrades a document from exactly one version to the next.
type migration struct {
	from  string
	to    string
	apply func(map[string]any) (map[string]any, error)
}

// migrations is the ordered upgrade chain. Each step's from must be the
// previous step's to.
var migrations = []migration{
	{from: "0.1", to: "0.2", apply: migrateV01toV02},
	{from: "0.2", to: "0.3", apply: migrateV02toV03},
}

// Migrate applies the migration chain until raw is at CurrentVersion.
// raw is not modified. Each intermediate document is validated against its
// own version's schema before the next step runs.
func Migrate(raw map[string]any) (map[string]any, error) {
	var doc map[string]any
	if err := convert(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	for {
		version, ok := doc["version"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: missing version", ErrInvalidDocument)
		}
		if version == CurrentVersion {
			return doc, nil
		}

		step, found := findMigration(version)
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
		}
		if err := validateVersion(doc, version); err != nil {
			return nil, err
		}

		next, err := step.apply(doc)
		if err != nil {
			return nil, fmt.Errorf("migrate %s to %s: %w", step.from, step.to, err)
		}
		next["version"] = step.to
		doc = next
	}
}

func findMigration(version string) (migration, bool) {
	for _, m := range migrations {
		if m.from == version {
			return m, true
		}
	}
	return migration{}, false
}

// migrateV01toV02 replaces name-addressed entries with index-addressed ones.
// The old per-column position, stored in categoryIdx, becomes orderInCategory.
func migrateV01toV02(doc map[string]any) (map[string]any, error) {
	categories, _ := doc["categories"].([]any)
	indexByName := make(map[string]int, len(categories))
	for i, c := range categories {
		name, _ := c.(string)
		if _, dup := indexByName[name]; !dup {
			indexByName[name] = i
		}
	}

	oldEntries, _ := doc["entries"].([]any)
	entries := make([]any, 0, len(oldEntries))
	for _, e := range oldEntries {
		old, _ := e.(map[string]any)
		name, _ := old["category"].(string)

		// unknown column names land in the first column
		idx := indexByName[name]

		entry := map[string]any{
			"categoryIdx":     float64(idx),
			"orderInCategory": old["categoryIdx"],
			"title":           old["title"],
		}
		if desc, ok := old["description"]; ok {
			entry["description"] = desc
		}
		entries = append(entries, entry)
	}

	return map[string]any{
		"version":    "0.2",
		"categories": categories,
		"entries":    entries,
	}, nil
}

// migrateV02toV03 turns column names into {title, isCollapsed} objects.
func migrateV02toV03(doc map[string]any) (map[string]any, error) {
	oldCategories, _ := doc["categories"].([]any)
	categories := make([]any, 0, len(oldCategories))
	for _, c := range oldCategories {
		categories = append(categories, map[string]any{
			"isCollapsed": false,
			"title":       c,
		})
	}

	return map[string]any{
		"version":    "0.3",
		"categories": categories,
		"entries":    doc["entries"],
	}, nil
}
