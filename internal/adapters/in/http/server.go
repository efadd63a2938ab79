// Package http exposes the case lifecycle engine over a JSON REST API.
// It coordinates between HTTP handlers and application use cases, mapping
// domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/application/usecases/queries"
	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/domain/model/qualitycheck"
	"casetrack/internal/core/domain/services"
	"casetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform JSON error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCaseRequest is the body of POST /api/v1/cases.
type NewCaseRequest struct {
	TenantID     string `json:"tenantId"`
	PatientRef   string `json:"patientRef"`
	ProviderRef  string `json:"providerRef"`
	Procedure    string `json:"procedure"`
	Priority     string `json:"priority"`
	Rush         bool   `json:"rush"`
	ToothNumbers []int  `json:"toothNumbers"`
	Instructions string `json:"instructions"`
	DueDate      string `json:"dueDate"`
}

// CaseResponse is the JSON representation of a case.
type CaseResponse struct {
	ID             string  `json:"id"`
	CaseNumber     string  `json:"caseNumber"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	Procedure      string  `json:"procedure"`
	ToothNumbers   []int   `json:"toothNumbers"`
	Rush           bool    `json:"rush"`
	DueDate        string  `json:"dueDate"`
	TechnicianID   *string `json:"technicianId,omitempty"`
	ReworkRequired bool    `json:"reworkRequired"`
}

// TransitionRequest is the body of POST /api/v1/cases/:id/status.
type TransitionRequest struct {
	Status string `json:"status"`
}

// AssignmentResponse reports the outcome of an assignment attempt. When no
// technician is eligible, Assigned is false and the ranking is empty.
type AssignmentResponse struct {
	Assigned bool            `json:"assigned"`
	Case     *CaseResponse   `json:"case,omitempty"`
	Ranking  []ScoreResponse `json:"ranking,omitempty"`
}

// ScoreResponse is one candidate's weighted score breakdown.
type ScoreResponse struct {
	TechnicianID string  `json:"technicianId"`
	Skill        float64 `json:"skill"`
	Workload     float64 `json:"workload"`
	Performance  float64 `json:"performance"`
	Availability float64 `json:"availability"`
	Total        float64 `json:"total"`
}

// OpenQualityCheckRequest is the body of POST /api/v1/cases/:id/quality-checks.
type OpenQualityCheckRequest struct {
	InspectorID string `json:"inspectorId"`
}

// CompleteQualityCheckRequest is the body of
// POST /api/v1/quality-checks/:id/complete.
type CompleteQualityCheckRequest struct {
	Results map[string]bool `json:"results"`
}

// QualityCheckResponse is the JSON representation of a quality check.
type QualityCheckResponse struct {
	ID          string   `json:"id"`
	CaseID      string   `json:"caseId"`
	InspectorID string   `json:"inspectorId"`
	Checkpoints []string `json:"checkpoints"`
	PassRate    float64  `json:"passRate"`
	Outcome     string   `json:"outcome"`
	CompletedAt *string  `json:"completedAt,omitempty"`
}

// Server wires the HTTP routes to the application's command and query
// handlers.
type Server struct {
	// Command handlers
	createCaseHandler           commands.CreateCaseCommandHandler
	transitionHandler           commands.TransitionCaseStatusCommandHandler
	assignTechnicianHandler     commands.AssignTechnicianCommandHandler
	softDeleteCaseHandler       commands.SoftDeleteCaseCommandHandler
	openQualityCheckHandler     commands.OpenQualityCheckCommandHandler
	completeQualityCheckHandler commands.CompleteQualityCheckCommandHandler

	// Query handlers
	getActiveCasesHandler       queries.GetActiveCasesQueryHandler
	getCaseQualityChecksHandler queries.GetCaseQualityChecksQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createCaseHandler commands.CreateCaseCommandHandler,
	transitionHandler commands.TransitionCaseStatusCommandHandler,
	assignTechnicianHandler commands.AssignTechnicianCommandHandler,
	softDeleteCaseHandler commands.SoftDeleteCaseCommandHandler,
	openQualityCheckHandler commands.OpenQualityCheckCommandHandler,
	completeQualityCheckHandler commands.CompleteQualityCheckCommandHandler,
	getActiveCasesHandler queries.GetActiveCasesQueryHandler,
	getCaseQualityChecksHandler queries.GetCaseQualityChecksQueryHandler,
) *Server {
	return &Server{
		createCaseHandler:           createCaseHandler,
		transitionHandler:           transitionHandler,
		assignTechnicianHandler:     assignTechnicianHandler,
		softDeleteCaseHandler:       softDeleteCaseHandler,
		openQualityCheckHandler:     openQualityCheckHandler,
		completeQualityCheckHandler: completeQualityCheckHandler,
		getActiveCasesHandler:       getActiveCasesHandler,
		getCaseQualityChecksHandler: getCaseQualityChecksHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/cases", s.CreateCase)
	api.GET("/cases/active", s.GetActiveCases)
	api.POST("/cases/:id/status", s.TransitionCaseStatus)
	api.POST("/cases/:id/assign", s.AssignTechnician)
	api.DELETE("/cases/:id", s.SoftDeleteCase)
	api.POST("/cases/:id/quality-checks", s.OpenQualityCheck)
	api.GET("/cases/:id/quality-checks", s.GetCaseQualityChecks)
	api.POST("/quality-checks/:id/complete", s.CompleteQualityCheck)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCase handles POST /api/v1/cases - registers a new case.
func (s *Server) CreateCase(ctx echo.Context) error {
	var req NewCaseRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", req.DueDate)
			if err != nil {
				return writeError(ctx, http.StatusBadRequest, "Invalid due date: "+req.DueDate)
			}
		}
		dueDate = parsed
	}

	cmd, err := commands.NewCreateCaseCommand(req.TenantID, dentalcase.IntakeRequest{
		PatientRef:   req.PatientRef,
		ProviderRef:  req.ProviderRef,
		Procedure:    req.Procedure,
		Priority:     req.Priority,
		Rush:         req.Rush,
		ToothNumbers: req.ToothNumbers,
		Instructions: req.Instructions,
		DueDate:      dueDate,
	})
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid case data: "+err.Error())
	}

	createdCase, err := s.createCaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCaseResponse(createdCase))
}

// TransitionCaseStatus handles POST /api/v1/cases/:id/status.
func (s *Server) TransitionCaseStatus(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid case id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewTransitionCaseStatusCommand(caseID, req.Status)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	updatedCase, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCaseResponse(updatedCase))
}

// AssignTechnician handles POST /api/v1/cases/:id/assign.
func (s *Server) AssignTechnician(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid case id")
	}

	cmd, err := commands.NewAssignTechnicianCommand(caseID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
	}

	assignedCase, ranking, err := s.assignTechnicianHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, services.ErrNoEligibleTechnicians) {
		// Not an error condition: the case stays unassigned for a later sweep.
		return ctx.JSON(http.StatusOK, AssignmentResponse{Assigned: false})
	}
	if err != nil {
		return writeDomainError(ctx, err)
	}

	caseResp := toCaseResponse(assignedCase)
	scores := make([]ScoreResponse, len(ranking))
	for i, breakdown := range ranking {
		scores[i] = ScoreResponse{
			TechnicianID: breakdown.TechnicianID,
			Skill:        breakdown.Skill,
			Workload:     breakdown.Workload,
			Performance:  breakdown.Performance,
			Availability: breakdown.Availability,
			Total:        breakdown.Total,
		}
	}

	return ctx.JSON(http.StatusOK, AssignmentResponse{
		Assigned: true,
		Case:     &caseResp,
		Ranking:  scores,
	})
}

// SoftDeleteCase handles DELETE /api/v1/cases/:id - tombstones a case. The
// record is retained for audit but excluded from all reads.
func (s *Server) SoftDeleteCase(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid case id")
	}

	cmd, err := commands.NewSoftDeleteCaseCommand(caseID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid deletion data: "+err.Error())
	}

	if err = s.softDeleteCaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenQualityCheck handles POST /api/v1/cases/:id/quality-checks.
func (s *Server) OpenQualityCheck(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid case id")
	}

	var req OpenQualityCheckRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewOpenQualityCheckCommand(caseID, req.InspectorID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid quality check data: "+err.Error())
	}

	check, err := s.openQualityCheckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toQualityCheckResponse(check))
}

// CompleteQualityCheck handles POST /api/v1/quality-checks/:id/complete.
func (s *Server) CompleteQualityCheck(ctx echo.Context) error {
	checkID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid quality check id")
	}

	var req CompleteQualityCheckRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCompleteQualityCheckCommand(checkID, req.Results)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid completion data: "+err.Error())
	}

	check, err := s.completeQualityCheckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQualityCheckResponse(check))
}

// GetActiveCases handles GET /api/v1/cases/active?tenantId=... - retrieves a
// tenant's in-flight cases.
func (s *Server) GetActiveCases(ctx echo.Context) error {
	query, err := queries.NewGetActiveCasesQuery(ctx.QueryParam("tenantId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	activeCases, err := s.getActiveCasesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve cases")
	}

	response := make([]CaseResponse, len(activeCases))
	for i, activeCase := range activeCases {
		response[i] = CaseResponse{
			ID:           activeCase.ID.String(),
			CaseNumber:   activeCase.CaseNumber,
			Status:       activeCase.Status,
			Priority:     activeCase.Priority,
			Procedure:    activeCase.Procedure,
			DueDate:      activeCase.DueDate.UTC().Format(time.RFC3339),
			TechnicianID: activeCase.TechnicianID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCaseQualityChecks handles GET /api/v1/cases/:id/quality-checks -
// retrieves the quality-check history of a case.
func (s *Server) GetCaseQualityChecks(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid case id")
	}

	query, err := queries.NewGetCaseQualityChecksQuery(caseID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	checks, err := s.getCaseQualityChecksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve quality checks")
	}

	response := make([]QualityCheckResponse, len(checks))
	for i, check := range checks {
		var completedAt *string
		if check.CompletedAt != nil {
			formatted := check.CompletedAt.UTC().Format(time.RFC3339)
			completedAt = &formatted
		}

		response[i] = QualityCheckResponse{
			ID:          check.ID.String(),
			CaseID:      caseID.String(),
			InspectorID: check.InspectorID,
			PassRate:    check.PassRate,
			Outcome:     check.Outcome,
			CompletedAt: completedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeDomainError maps domain and application errors onto HTTP status
// codes: validation failures are 400, missing objects 404, rejected
// transitions and lost races 409, and an exhausted number allocator 503.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, dentalcase.ErrInvalidTransition),
		errors.Is(err, dentalcase.ErrCaseIsDeleted),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, qualitycheck.ErrQualityCheckAlreadyCompleted),
		errors.Is(err, commands.ErrCaseConcurrentlyModified):
		return writeError(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, commands.ErrCaseNumberAllocationFailed):
		return writeError(ctx, http.StatusServiceUnavailable, err.Error())

	default:
		return writeError(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func toCaseResponse(c *dentalcase.Case) CaseResponse {
	intake := c.Intake()
	return CaseResponse{
		ID:             c.ID().String(),
		CaseNumber:     c.CaseNumber().String(),
		Status:         c.Status().String(),
		Priority:       intake.Priority().String(),
		Procedure:      intake.Procedure().String(),
		ToothNumbers:   intake.ToothNumbers().Values(),
		Rush:           intake.Rush(),
		DueDate:        intake.DueDate().UTC().Format(time.RFC3339),
		TechnicianID:   c.TechnicianID(),
		ReworkRequired: c.ReworkRequired(),
	}
}

func toQualityCheckResponse(check *qualitycheck.QualityCheck) QualityCheckResponse {
	var completedAt *string
	if check.CompletedAt() != nil {
		formatted := check.CompletedAt().UTC().Format(time.RFC3339)
		completedAt = &formatted
	}

	return QualityCheckResponse{
		ID:          check.ID().String(),
		CaseID:      check.CaseID().String(),
		InspectorID: check.InspectorID(),
		Checkpoints: check.Checkpoints(),
		PassRate:    check.PassRate(),
		Outcome:     check.Outcome().String(),
		CompletedAt: completedAt,
	}
}
