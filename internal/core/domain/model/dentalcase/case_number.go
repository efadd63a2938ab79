package dentalcase

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

// Sequence bounds per (tenant, month). The three-digit zero-padded counter
// starts at 001.
const (
	minCaseSequence = 1
	maxCaseSequence = 999
)

// ErrCaseNumberIsNotConstructed is returned when a CaseNumber was not
// created via NewCaseNumber or ParseCaseNumber.
var ErrCaseNumberIsNotConstructed = errors.New(
	"CaseNumber must be created via NewCaseNumber or ParseCaseNumber",
)

var caseNumberPattern = regexp.MustCompile(`^([A-Z]+)(\d{6})(\d{3})$`)

// CaseNumber is the human-readable external identifier of a case, formatted
// as {LAB_CODE}{YYYYMM}{SEQ} where LAB_CODE is the tenant's short code,
// YYYYMM is the allocation month, and SEQ is a zero-padded three-digit
// counter scoped to (tenant, month). Example: GLW202411001.
//
// A case number is immutable once assigned.
type CaseNumber struct {
	labCode   string
	yearMonth string
	sequence  int

	guard guard.ConstructorGuard
}

// NewCaseNumber creates a case number for the given lab code, allocation
// month, and sequence value. The lab code is normalized to uppercase and
// must be non-empty letters; the sequence must lie in [1,999].
func NewCaseNumber(labCode string, month time.Time, sequence int) (CaseNumber, error) {
	normalized := strings.ToUpper(strings.TrimSpace(labCode))
	if normalized == "" {
		return CaseNumber{}, errs.NewValueIsRequiredError("labCode")
	}
	for _, r := range normalized {
		if r < 'A' || r > 'Z' {
			return CaseNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"labCode",
				fmt.Errorf("%q contains non-letter characters", labCode),
			)
		}
	}
	if sequence < minCaseSequence || sequence > maxCaseSequence {
		return CaseNumber{}, errs.NewValueIsOutOfRangeError(
			"sequence", sequence, minCaseSequence, maxCaseSequence,
		)
	}

	return CaseNumber{
		labCode:   normalized,
		yearMonth: month.UTC().Format("200601"),
		sequence:  sequence,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ParseCaseNumber reconstructs a CaseNumber from its string form, typically
// when rehydrating a case from persistence.
func ParseCaseNumber(raw string) (CaseNumber, error) {
	match := caseNumberPattern.FindStringSubmatch(raw)
	if match == nil {
		return CaseNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"caseNumber",
			fmt.Errorf("%q does not match the {LAB_CODE}{YYYYMM}{SEQ} format", raw),
		)
	}

	sequence, err := strconv.Atoi(match[3])
	if err != nil {
		return CaseNumber{}, errs.NewValueIsInvalidErrorWithCause("caseNumber", err)
	}
	if sequence < minCaseSequence || sequence > maxCaseSequence {
		return CaseNumber{}, errs.NewValueIsOutOfRangeError(
			"sequence", sequence, minCaseSequence, maxCaseSequence,
		)
	}

	return CaseNumber{
		labCode:   match[1],
		yearMonth: match[2],
		sequence:  sequence,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CaseNumberPrefix returns the {LAB_CODE}{YYYYMM} prefix shared by every
// case number a tenant allocates in the given month. The allocator uses it
// to find the highest persisted sequence value.
func CaseNumberPrefix(labCode string, month time.Time) string {
	return strings.ToUpper(strings.TrimSpace(labCode)) + month.UTC().Format("200601")
}

// Validate ensures the value was created via a constructor.
func (n CaseNumber) Validate() error {
	return n.guard.Validate(ErrCaseNumberIsNotConstructed)
}

// String returns the formatted case number, e.g. GLW202411001.
func (n CaseNumber) String() string {
	return fmt.Sprintf("%s%s%03d", n.labCode, n.yearMonth, n.sequence)
}

// LabCode returns the tenant's short code component.
func (n CaseNumber) LabCode() string {
	return n.labCode
}

// YearMonth returns the allocation month component in YYYYMM form.
func (n CaseNumber) YearMonth() string {
	return n.yearMonth
}

// Sequence returns the per-(tenant, month) counter component.
func (n CaseNumber) Sequence() int {
	return n.sequence
}

// Next returns the case number with the following sequence value. The
// allocator uses it to retry after a uniqueness-constraint collision.
// Returns an error when the sequence space for the month is exhausted.
func (n CaseNumber) Next() (CaseNumber, error) {
	if err := n.Validate(); err != nil {
		return CaseNumber{}, err
	}
	if n.sequence >= maxCaseSequence {
		return CaseNumber{}, errs.NewValueIsOutOfRangeError(
			"sequence", n.sequence+1, minCaseSequence, maxCaseSequence,
		)
	}

	next := n
	next.sequence++
	return next, nil
}

// IsEqual compares two case numbers by value.
func (n CaseNumber) IsEqual(other CaseNumber) bool {
	return n.labCode == other.labCode &&
		n.yearMonth == other.yearMonth &&
		n.sequence == other.sequence
}
