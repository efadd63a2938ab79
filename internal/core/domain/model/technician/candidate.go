// Package technician contains the read-only technician candidate supplied
// by the eligibility collaborator at scoring time. Technicians are not owned
// by this core; a candidate is an identifier plus four externally computed
// scoring inputs.
package technician

import (
	"errors"

	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

// ErrCandidateIsNotConstructed is returned when a Candidate was not created
// via NewCandidate.
var ErrCandidateIsNotConstructed = errors.New(
	"Candidate must be created via NewCandidate constructor",
)

// Candidate is an eligible technician with normalized scoring inputs.
// Every input is supplied by a collaborator (skill-match calculator,
// workload tracker, performance history, availability checker) and must lie
// in [0,1].
type Candidate struct {
	id           string
	skill        float64
	workload     float64
	performance  float64
	availability float64

	guard guard.ConstructorGuard
}

// NewCandidate creates a scoring candidate. The identifier must be
// non-empty and each input must lie in [0,1].
func NewCandidate(id string, skill, workload, performance, availability float64) (Candidate, error) {
	if id == "" {
		return Candidate{}, errs.NewValueIsRequiredError("technicianID")
	}

	inputs := []struct {
		name  string
		value float64
	}{
		{"skill", skill},
		{"workload", workload},
		{"performance", performance},
		{"availability", availability},
	}
	for _, input := range inputs {
		if input.value < 0 || input.value > 1 {
			return Candidate{}, errs.NewValueIsOutOfRangeError(input.name, input.value, 0.0, 1.0)
		}
	}

	return Candidate{
		id:           id,
		skill:        skill,
		workload:     workload,
		performance:  performance,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the candidate was created via NewCandidate.
func (c Candidate) Validate() error {
	return c.guard.Validate(ErrCandidateIsNotConstructed)
}

// ID returns the technician's identifier.
func (c Candidate) ID() string {
	return c.id
}

// Skill returns the normalized skill-match input.
func (c Candidate) Skill() float64 {
	return c.skill
}

// Workload returns the normalized workload input (1 = fully available).
func (c Candidate) Workload() float64 {
	return c.workload
}

// Performance returns the normalized historical-performance input.
func (c Candidate) Performance() float64 {
	return c.performance
}

// Availability returns the normalized availability-window input.
func (c Candidate) Availability() float64 {
	return c.availability
}
