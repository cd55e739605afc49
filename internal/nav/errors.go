package nav

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

var (
	ErrInvalidTopicID   = errors.New("invalid topic id")
	ErrInvalidSectionID = errors.New("invalid section id")
)

// unknownID wraps sentinel with the closest candidate when one is near
// enough to be a likely typo.
func unknownID(sentinel error, id string, candidates []string) error {
	if s := suggest(id, candidates); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", sentinel, id, s)
	}
	return fmt.Errorf("%w %q", sentinel, id)
}

func suggest(id string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(id, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(id)/3) {
		return ""
	}
	return best
}
