package services_test

import (
	"testing"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/domain/model/technician"
	"casetrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScoringCase(t *testing.T) *dentalcase.Case {
	t.Helper()

	now := time.Date(2024, time.November, 4, 9, 0, 0, 0, time.UTC)
	intake, err := dentalcase.NewIntake(dentalcase.IntakeRequest{
		PatientRef:   "patient-001",
		ProviderRef:  "dr-smith",
		Procedure:    "crown",
		ToothNumbers: []int{3},
		DueDate:      time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
	}, now)
	require.NoError(t, err)

	number, err := dentalcase.NewCaseNumber("GLW", now, 1)
	require.NoError(t, err)

	c, err := dentalcase.NewCase(kernel.NewUUID(), "lab-42", number, intake, now)
	require.NoError(t, err)
	return c
}

func mustCandidate(t *testing.T, id string, skill, workload, performance, availability float64) technician.Candidate {
	t.Helper()

	candidate, err := technician.NewCandidate(id, skill, workload, performance, availability)
	require.NoError(t, err)
	return candidate
}

func TestAssignmentScorer_Rank(t *testing.T) {
	scorer := services.NewAssignmentScorer()

	t.Run("should weight the inputs 0.4, 0.3, 0.2, 0.1", func(t *testing.T) {
		ranking, err := scorer.Rank([]technician.Candidate{
			mustCandidate(t, "tech-1", 1.0, 0.5, 0.25, 0.0),
		})

		require.NoError(t, err)
		require.Len(t, ranking, 1)
		// 0.4*1.0 + 0.3*0.5 + 0.2*0.25 + 0.1*0.0 = 0.6
		assert.InDelta(t, 0.6, ranking[0].Total, 0.0001)
		assert.InDelta(t, 1.0, ranking[0].Skill, 0.0001)
		assert.InDelta(t, 0.5, ranking[0].Workload, 0.0001)
	})

	t.Run("should order by descending total score", func(t *testing.T) {
		ranking, err := scorer.Rank([]technician.Candidate{
			mustCandidate(t, "tech-low", 0.2, 0.2, 0.2, 0.2),
			mustCandidate(t, "tech-high", 0.9, 0.9, 0.9, 0.9),
			mustCandidate(t, "tech-mid", 0.5, 0.5, 0.5, 0.5),
		})

		require.NoError(t, err)
		require.Len(t, ranking, 3)
		assert.Equal(t, "tech-high", ranking[0].TechnicianID)
		assert.Equal(t, "tech-mid", ranking[1].TechnicianID)
		assert.Equal(t, "tech-low", ranking[2].TechnicianID)
	})

	t.Run("should break ties by ascending identifier", func(t *testing.T) {
		candidates := []technician.Candidate{
			mustCandidate(t, "tech-b", 0.5, 0.5, 0.5, 0.5),
			mustCandidate(t, "tech-a", 0.5, 0.5, 0.5, 0.5),
		}

		ranking, err := scorer.Rank(candidates)

		require.NoError(t, err)
		assert.Equal(t, "tech-a", ranking[0].TechnicianID)
		assert.Equal(t, "tech-b", ranking[1].TechnicianID)
	})

	t.Run("should fail on an empty candidate set", func(t *testing.T) {
		_, err := scorer.Rank(nil)

		assert.ErrorIs(t, err, services.ErrNoEligibleTechnicians)
	})

	t.Run("should reject unconstructed candidates", func(t *testing.T) {
		_, err := scorer.Rank([]technician.Candidate{{}})

		assert.ErrorIs(t, err, technician.ErrCandidateIsNotConstructed)
	})
}

func TestAssignmentScorer_Assign(t *testing.T) {
	scorer := services.NewAssignmentScorer()

	t.Run("should write the top-ranked technician onto the case", func(t *testing.T) {
		c := newScoringCase(t)

		ranking, err := scorer.Assign(c, []technician.Candidate{
			mustCandidate(t, "tech-1", 0.3, 0.3, 0.3, 0.3),
			mustCandidate(t, "tech-2", 0.8, 0.8, 0.8, 0.8),
		})

		require.NoError(t, err)
		require.NotNil(t, c.TechnicianID())
		assert.Equal(t, "tech-2", *c.TechnicianID())
		assert.Equal(t, "tech-2", ranking[0].TechnicianID)
		assert.Equal(t, dentalcase.Received, c.Status())
	})

	t.Run("should leave the case unassigned when no candidates exist", func(t *testing.T) {
		c := newScoringCase(t)

		_, err := scorer.Assign(c, nil)

		assert.ErrorIs(t, err, services.ErrNoEligibleTechnicians)
		assert.Nil(t, c.TechnicianID())
	})

	t.Run("should reject assignment onto a terminal case", func(t *testing.T) {
		c := newScoringCase(t)
		require.NoError(t, c.TransitionTo(dentalcase.Cancelled))

		_, err := scorer.Assign(c, []technician.Candidate{
			mustCandidate(t, "tech-1", 0.5, 0.5, 0.5, 0.5),
		})

		assert.ErrorIs(t, err, dentalcase.ErrInvalidTransition)
	})
}
