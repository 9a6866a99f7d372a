package domain

import (
	"fmt"

	"github.com/alimikegami/catalog-service/pkg/errs"
)

// ValidatePermutation checks that ordered holds every id of current exactly
// once and nothing else.
func ValidatePermutation(current []int64, ordered []int64) error {
	if len(ordered) == 0 {
		return errs.Validation("orderedIds must not be empty")
	}

	members := make(map[int64]bool, len(current))
	for _, id := range current {
		members[id] = false
	}

	for _, id := range ordered {
		seen, ok := members[id]
		if !ok {
			return errs.Validation(fmt.Sprintf("id %d is not part of this set", id))
		}
		if seen {
			return errs.Validation(fmt.Sprintf("id %d appears more than once", id))
		}
		members[id] = true
	}

	if len(ordered) != len(current) {
		return errs.Validation(fmt.Sprintf("expected %d ids, got %d", len(current), len(ordered)))
	}

	return nil
}

// DisplayOrders maps each id to its 1-based position in ordered.
func DisplayOrders(ordered []int64) map[int64]int {
	res := make(map[int64]int, len(ordered))
	for i, id := range ordered {
		res[id] = i + 1
	}
	return res
}
