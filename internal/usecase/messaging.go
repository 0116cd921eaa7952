package usecase

import (
	"sort"

	"github.com/google/uuid"
)

// NormalizeParticipants builds the canonical participant set for a
// conversation: the caller is always included, duplicates collapse, and the
// result is sorted so two requests naming the same people compare equal.
func NormalizeParticipants(callerID uuid.UUID, ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{callerID: {}}
	normalized := []uuid.UUID{callerID}

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}

	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].String() < normalized[j].String()
	})
	return normalized
}

// SameParticipants reports whether two participant sets are identical,
// ignoring order.
func SameParticipants(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[uuid.UUID]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}
