package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// builtinCategories maps the bookstore's free-text category values onto
// the importer's taxonomy paths. Source values are matched after
// trimming, case-sensitively; the export is known to carry the same
// category under several historical spellings.
var builtinCategories = map[string]string{
	"AUTOBIOGRAPHY / BIOGRAPHY":             "Default Category/Books/Biographical",
	"EXPLORATION AND TRAVEL":                "Default Category/Books/Travel",
	"GOLD":                                  "Default Category/Books/Gold",
	"HISTORICAL NOVEL":                      "Default Category/Books/Historical Novel",
	"INDIGENOUS HISTORY   [ABORIGINES]":     "Default Category/Books/Indigenous History",
	"INDIGENOUS HISTORY (Aborigines)":       "Default Category/Books/Indigenous History",
	"LOCAL AND REGIONAL HISTORY":            "Default Category/Books/Local History",
	"MARITIME HISTORY":                      "Default Category/Books/Maritime",
	"MILITARY":                              "Default Category/Books/Military",
	"RAILWAYS AND TRANSPORT":                "Default Category/Books/Railways & Transport",
	"SOCIAL HISTORY":                        "Default Category/Books/Social History",
	"STATEWIDE":                             "Default Category/Books/State History",
	"STUDIES IN WESTERN AUSTRALIAN HISTORY": "Default Category/Books/State History",
	"WA HISTORY - STATEWIDE":                "Default Category/Books/State History",
	"YOUTH AND CHILDREN":                    "Default Category/Books/Youth & Children",
}

// CategoryMapper translates source category text into taxonomy paths.
// The table is fixed per run; there is no error path, unknown values
// land in the default bucket.
type CategoryMapper struct {
	table        map[string]string
	defaultValue string
}

func NewCategoryMapper(defaultValue string, overrides map[string]string) *CategoryMapper {
	table := make(map[string]string, len(builtinCategories)+len(overrides))
	for k, v := range builtinCategories {
		table[k] = v
	}
	for k, v := range overrides {
		table[k] = v
	}
	return &CategoryMapper{table: table, defaultValue: defaultValue}
}

func (m *CategoryMapper) Map(raw string) string {
	if path, ok := m.table[strings.TrimSpace(raw)]; ok {
		return path
	}
	return m.defaultValue
}

// Leaf returns the last segment of a taxonomy path.
func Leaf(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// LoadCategoryOverrides reads a two-column CSV of source value →
// taxonomy path pairs that layer over the builtin table.
func LoadCategoryOverrides(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open category map %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	out := map[string]string{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read category map %s: %w", path, err)
		}
		if len(row) < 2 {
			continue
		}
		source := strings.TrimSpace(row[0])
		target := strings.TrimSpace(row[1])
		if source == "" || target == "" {
			continue
		}
		out[source] = target
	}
	return out, nil
}
