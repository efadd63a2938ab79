package dentalcase

import (
	"errors"
	"sort"

	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

// Universal Numbering System bounds for adult dentition.
const (
	minToothNumber = 1
	maxToothNumber = 32
)

// ErrToothNumbersAreNotConstructed is returned when a ToothNumbers value was
// not created via NewToothNumbers.
var ErrToothNumbersAreNotConstructed = errors.New(
	"ToothNumbers must be created via NewToothNumbers constructor",
)

// ToothNumbers is the ordered set of teeth a case covers, in Universal
// Numbering System values (1-32). The set is non-empty, deduplicated, and
// stored in ascending order.
type ToothNumbers struct {
	values []int

	guard guard.ConstructorGuard
}

// NewToothNumbers validates and normalizes a collection of tooth numbers.
// The input must be non-empty and every value must lie in [1,32]; a single
// out-of-range value rejects the whole collection. Duplicates are silently
// removed and the result is sorted ascending.
func NewToothNumbers(values []int) (ToothNumbers, error) {
	if len(values) == 0 {
		return ToothNumbers{}, errs.NewValueIsRequiredError("toothNumbers")
	}

	seen := make(map[int]struct{}, len(values))
	normalized := make([]int, 0, len(values))
	for _, v := range values {
		if v < minToothNumber || v > maxToothNumber {
			return ToothNumbers{}, errs.NewValueIsOutOfRangeError(
				"toothNumber", v, minToothNumber, maxToothNumber,
			)
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		normalized = append(normalized, v)
	}
	sort.Ints(normalized)

	return ToothNumbers{
		values: normalized,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the value was created via NewToothNumbers.
func (t ToothNumbers) Validate() error {
	return t.guard.Validate(ErrToothNumbersAreNotConstructed)
}

// Values returns a copy of the normalized tooth numbers in ascending order.
func (t ToothNumbers) Values() []int {
	out := make([]int, len(t.values))
	copy(out, t.values)
	return out
}

// Count returns the number of distinct teeth in the set.
func (t ToothNumbers) Count() int {
	return len(t.values)
}
