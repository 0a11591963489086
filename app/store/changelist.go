package store

import "strings"

// Changelist describes an atomic set of file changes under version control,
// identified by a numeric id and carrying a free-text description.
type Changelist struct {
	ID          string
	Description string
	Files       []string // depot paths, possibly revision-pinned
}

// SplitRevision splits a revision-pinned depot path into the bare path and
// the revision identifier. The identifier is empty for unpinned paths.
func SplitRevision(depotPath string) (path, revision string) {
	if idx := strings.Index(depotPath, "@"); idx >= 0 {
		return depotPath[:idx], depotPath[idx+1:]
	}
	return depotPath, ""
}
