package commands

import (
	"errors"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/guard"
)

var ErrCompleteQualityCheckCommandIsNotConstructed = errors.New(
	"CompleteQualityCheckCommand must be created via NewCompleteQualityCheckCommand constructor",
)

// CompleteQualityCheckCommand represents a request to record checkpoint
// results and resolve an open quality check. An empty result map is allowed
// here; the domain model rejects it when checkpoints remain unanswered.
type CompleteQualityCheckCommand struct { //nolint:recvcheck //using for validation
	qualityCheckID kernel.UUID
	results        map[string]bool

	guard guard.ConstructorGuard
}

// NewCompleteQualityCheckCommand creates a command to complete the given
// quality check with per-checkpoint pass/fail results.
func NewCompleteQualityCheckCommand(
	qualityCheckID kernel.UUID,
	results map[string]bool,
) (CompleteQualityCheckCommand, error) {
	command := CompleteQualityCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setQualityCheckID(qualityCheckID); err != nil {
		return CompleteQualityCheckCommand{}, err
	}
	command.setResults(results)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteQualityCheckCommand) Validate() error {
	return c.guard.Validate(ErrCompleteQualityCheckCommandIsNotConstructed)
}

// QualityCheckID returns the identifier of the quality check to complete.
func (c CompleteQualityCheckCommand) QualityCheckID() kernel.UUID {
	return c.qualityCheckID
}

// Results returns a copy of the per-checkpoint results.
func (c CompleteQualityCheckCommand) Results() map[string]bool {
	results := make(map[string]bool, len(c.results))
	for name, passed := range c.results {
		results[name] = passed
	}
	return results
}

func (c *CompleteQualityCheckCommand) setQualityCheckID(qualityCheckID kernel.UUID) error {
	if err := qualityCheckID.Validate(); err != nil {
		return err
	}

	c.qualityCheckID = qualityCheckID
	return nil
}

func (c *CompleteQualityCheckCommand) setResults(results map[string]bool) {
	copied := make(map[string]bool, len(results))
	for name, passed := range results {
		copied[name] = passed
	}
	c.results = copied
}
