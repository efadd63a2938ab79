package dentalcase

import (
	"fmt"
	"strings"

	"casetrack/internal/pkg/errs"
)

// ProcedureType identifies the kind of laboratory work a case requires.
// The catalog is closed; parsing is case-insensitive and normalizes to the
// lowercase names below.
type ProcedureType string

const (
	ProcedureCrown          ProcedureType = "crown"
	ProcedureBridge         ProcedureType = "bridge"
	ProcedureImplantCrown   ProcedureType = "implant_crown"
	ProcedurePartialDenture ProcedureType = "partial_denture"
	ProcedureFullDenture    ProcedureType = "full_denture"
	ProcedureInlay          ProcedureType = "inlay"
	ProcedureOnlay          ProcedureType = "onlay"
	ProcedureVeneer         ProcedureType = "veneer"
)

// defaultMinLeadDays applies to procedure types without a catalog entry.
const defaultMinLeadDays = 5

// getProcedureLeadTimes returns the minimum production lead time per
// procedure type, in business days.
func getProcedureLeadTimes() map[ProcedureType]int {
	return map[ProcedureType]int{
		ProcedureCrown:          5,
		ProcedureBridge:         7,
		ProcedureImplantCrown:   10,
		ProcedurePartialDenture: 14,
		ProcedureFullDenture:    21,
		ProcedureInlay:          3,
		ProcedureOnlay:          3,
		ProcedureVeneer:         7,
	}
}

// ParseProcedureType converts a raw procedure name to a ProcedureType.
// The comparison is case-insensitive; the accepted value is normalized to
// lowercase. Names outside the catalog return a ValueIsInvalidError.
func ParseProcedureType(raw string) (ProcedureType, error) {
	normalized := ProcedureType(strings.ToLower(strings.TrimSpace(raw)))
	if err := normalized.Validate(); err != nil {
		return "", err
	}
	return normalized, nil
}

// Validate checks the ProcedureType is a member of the catalog.
func (p ProcedureType) Validate() error {
	if _, ok := getProcedureLeadTimes()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"procedure",
			fmt.Errorf("%q is not a valid procedure type", string(p)),
		)
	}
	return nil
}

// MinLeadDays returns the minimum lead time in business days for the
// procedure type. Types outside the catalog fall back to the default.
func (p ProcedureType) MinLeadDays() int {
	if days, ok := getProcedureLeadTimes()[p]; ok {
		return days
	}
	return defaultMinLeadDays
}

// String returns the lowercase catalog name.
func (p ProcedureType) String() string {
	return string(p)
}
