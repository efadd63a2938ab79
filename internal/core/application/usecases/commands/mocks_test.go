package commands_test

import (
	"context"
	"testing"
	"time"

	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/domain/model/qualitycheck"
	"casetrack/internal/core/domain/model/technician"
	"casetrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCaseRepository struct{ mock.Mock }

func (m *MockCaseRepository) Add(ctx context.Context, c *dentalcase.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepository) Update(ctx context.Context, c *dentalcase.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepository) Get(ctx context.Context, id kernel.UUID) (*dentalcase.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dentalcase.Case), args.Error(1)
}

func (m *MockCaseRepository) LastSequence(ctx context.Context, tenantID, numberPrefix string) (int, error) {
	args := m.Called(ctx, tenantID, numberPrefix)
	return args.Int(0), args.Error(1)
}

func (m *MockCaseRepository) CompareAndSwapStatus(
	ctx context.Context,
	id kernel.UUID,
	from, to dentalcase.Status,
) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockCaseRepository) GetFirstUnassigned(ctx context.Context) (*dentalcase.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dentalcase.Case), args.Error(1)
}

func (m *MockCaseRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*dentalcase.Case, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dentalcase.Case), args.Error(1)
}

type MockQualityCheckRepository struct{ mock.Mock }

func (m *MockQualityCheckRepository) Add(ctx context.Context, q *qualitycheck.QualityCheck) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQualityCheckRepository) Update(ctx context.Context, q *qualitycheck.QualityCheck) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQualityCheckRepository) Get(ctx context.Context, id kernel.UUID) (*qualitycheck.QualityCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qualitycheck.QualityCheck), args.Error(1)
}

// MockCaseUoW implements commands.CaseUoW for case-only handlers.
type MockCaseUoW struct{ mock.Mock }

func (m *MockCaseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCaseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCaseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCaseUoW) CaseRepository() ports.CaseRepository {
	args := m.Called()
	return args.Get(0).(ports.CaseRepository)
}

// MockUoW implements commands.UoW for the cross-aggregate quality handlers.
type MockUoW struct{ MockCaseUoW }

func (m *MockUoW) QualityCheckRepository() ports.QualityCheckRepository {
	args := m.Called()
	return args.Get(0).(ports.QualityCheckRepository)
}

type MockCaseUoWFactory struct{ mock.Mock }

func (m *MockCaseUoWFactory) Create() commands.CaseUoW {
	args := m.Called()
	return args.Get(0).(commands.CaseUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLabDirectory struct{ mock.Mock }

func (m *MockLabDirectory) LabCode(ctx context.Context, tenantID string) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

type MockTechnicianDirectory struct{ mock.Mock }

func (m *MockTechnicianDirectory) EligibleTechnicians(
	ctx context.Context,
	c *dentalcase.Case,
) ([]technician.Candidate, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]technician.Candidate), args.Error(1)
}

// restoreTestCase rebuilds a persisted-looking case in the given status.
// Restore skips the clock-relative intake rules, so fixtures stay stable.
func restoreTestCase(t *testing.T, status dentalcase.Status) *dentalcase.Case {
	t.Helper()

	teeth, err := dentalcase.NewToothNumbers([]int{3, 14})
	require.NoError(t, err)

	intake, err := dentalcase.RestoreIntake(
		"patient-001", "dr-smith",
		dentalcase.ProcedureCrown, dentalcase.PriorityNormal,
		false, teeth, "shade A2",
		time.Date(2024, time.November, 29, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	number, err := dentalcase.ParseCaseNumber("GLW202411001")
	require.NoError(t, err)

	var inspectorID *string
	if status == dentalcase.QualityCheck {
		inspector := "inspector-1"
		inspectorID = &inspector
	}

	c, err := dentalcase.RestoreCase(
		kernel.NewUUID(), "lab-42", number, intake,
		time.Date(2024, time.November, 4, 9, 0, 0, 0, time.UTC),
		status, nil, inspectorID, false, nil,
	)
	require.NoError(t, err)
	return c
}

func mustTestCandidate(t *testing.T, id string, score float64) technician.Candidate {
	t.Helper()

	candidate, err := technician.NewCandidate(id, score, score, score, score)
	require.NoError(t, err)
	return candidate
}
