package services

import (
	"errors"
	"sort"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/technician"
)

// Scoring weights for the four normalized inputs. The weighted sum is the
// candidate's total score.
const (
	skillWeight        = 0.4
	workloadWeight     = 0.3
	performanceWeight  = 0.2
	availabilityWeight = 0.1
)

// ErrNoEligibleTechnicians is returned when the eligible candidate set is
// empty. Assignment is a best-effort scheduling step, not a hard
// precondition: callers treat this as "no assignment", leave the case
// unassigned, and may retry later.
var ErrNoEligibleTechnicians = errors.New("no eligible technicians")

// ScoreBreakdown retains the full weighted score of one candidate for audit
// and debugging.
type ScoreBreakdown struct {
	TechnicianID string
	Skill        float64
	Workload     float64
	Performance  float64
	Availability float64
	Total        float64
}

// AssignmentScorer is a domain service that selects the best technician for
// a case from a pre-filtered eligible set.
//
// Score per candidate:
//
//	0.4*skill + 0.3*workload + 0.2*performance + 0.1*availability
//
// Candidates are ordered by descending total score; ties are broken by
// ascending candidate identifier so selection is deterministic and
// reproducible across runs. Eligibility filtering happens upstream; this
// service only scores and selects.
type AssignmentScorer struct{}

// NewAssignmentScorer creates a new AssignmentScorer instance.
func NewAssignmentScorer() AssignmentScorer {
	return AssignmentScorer{}
}

// Assign scores the candidates, writes the winner onto the case, and
// returns the full ranking with the selected candidate first. Returns
// ErrNoEligibleTechnicians when the candidate set is empty.
func (s AssignmentScorer) Assign(
	c *dentalcase.Case,
	candidates []technician.Candidate,
) ([]ScoreBreakdown, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ranking, err := s.Rank(candidates)
	if err != nil {
		return nil, err
	}

	if err := c.AssignTechnician(ranking[0].TechnicianID); err != nil {
		return nil, err
	}

	return ranking, nil
}

// Rank validates and scores the candidates, returning the breakdowns sorted
// by descending total score with identifier ascending as the tie-break.
func (s AssignmentScorer) Rank(candidates []technician.Candidate) ([]ScoreBreakdown, error) {
	if len(candidates) == 0 {
		return nil, ErrNoEligibleTechnicians
	}

	ranking := make([]ScoreBreakdown, 0, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		ranking = append(ranking, scoreCandidate(candidate))
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Total != ranking[j].Total {
			return ranking[i].Total > ranking[j].Total
		}
		return ranking[i].TechnicianID < ranking[j].TechnicianID
	})

	return ranking, nil
}

func scoreCandidate(candidate technician.Candidate) ScoreBreakdown {
	return ScoreBreakdown{
		TechnicianID: candidate.ID(),
		Skill:        candidate.Skill(),
		Workload:     candidate.Workload(),
		Performance:  candidate.Performance(),
		Availability: candidate.Availability(),
		Total: skillWeight*candidate.Skill() +
			workloadWeight*candidate.Workload() +
			performanceWeight*candidate.Performance() +
			availabilityWeight*candidate.Availability(),
	}
}
