package catalog

import (
	"strings"

	"bookbridge/internal"
)

// AuthorIndex maps an author identifier to a display name. Built once
// per run, read-only afterwards.
type AuthorIndex map[string]string

// BuildAuthorIndex folds the authors table into an index. Rows whose
// combined name trims to nothing are dropped; duplicate identifiers
// overwrite earlier entries.
func BuildAuthorIndex(authors []internal.AuthorRecord) AuthorIndex {
	idx := make(AuthorIndex, len(authors))
	for _, a := range authors {
		name := strings.TrimSpace(a.FirstName + " " + a.LastName)
		if name == "" {
			continue
		}
		idx[a.ID] = name
	}
	return idx
}
