package ports

import (
	"context"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/technician"
)

// LabDirectory resolves the short per-tenant lab code used as the case
// number prefix. Backed by an external tenant service; calls are assumed
// synchronous-but-fast and are not retried by this core.
type LabDirectory interface {
	LabCode(ctx context.Context, tenantID string) (string, error)
}

// TechnicianDirectory supplies the eligible technician candidates for a
// case, with their scoring inputs pre-computed. Eligibility filtering
// happens inside the collaborator; the core only scores what it receives.
type TechnicianDirectory interface {
	EligibleTechnicians(ctx context.Context, c *dentalcase.Case) ([]technician.Candidate, error)
}
