package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledger/internal/errors"
	"ledger/internal/models"
	"ledger/internal/pagination"
	"ledger/internal/services"
)

// ObjectiveHandler handles objective-related requests.
type ObjectiveHandler struct {
	objectiveService services.ObjectiveServicer
	auditService     services.AuditServicer
}

// NewObjectiveHandler creates a new ObjectiveHandler.
func NewObjectiveHandler(objectiveService services.ObjectiveServicer, auditService services.AuditServicer) *ObjectiveHandler {
	return &ObjectiveHandler{objectiveService: objectiveService, auditService: auditService}
}

// ObjectivePlanRequest is one month of an objective plan.
type ObjectivePlanRequest struct {
	Month       string `json:"month" binding:"required,month"`
	Amount      *int64 `json:"amount" binding:"required"`
	Kind        string `json:"kind" binding:"omitempty,plan_kind"`
	IsLastMonth bool   `json:"is_last_month"`
}

// CreateObjectiveRequest represents the request payload for creating an objective.
type CreateObjectiveRequest struct {
	Name        string                 `json:"name" binding:"required,min=1,max=100"`
	CategoryID  *string                `json:"category_id" binding:"omitempty,uuid"`
	Currency    *string                `json:"currency" binding:"omitempty,iso4217"`
	TotalAmount *int64                 `json:"total_amount"`
	Plans       []ObjectivePlanRequest `json:"plans" binding:"omitempty,dive"`
}

// UpdateObjectiveRequest represents the request payload for updating an
// objective. A plans list, even an empty one, replaces the whole plan.
type UpdateObjectiveRequest struct {
	Name        *string                 `json:"name" binding:"omitempty,min=1,max=100"`
	CategoryID  *string                 `json:"category_id" binding:"omitempty,uuid"`
	Currency    *string                 `json:"currency" binding:"omitempty,iso4217"`
	TotalAmount *int64                  `json:"total_amount"`
	Status      *string                 `json:"status" binding:"omitempty,objective_status"`
	Plans       *[]ObjectivePlanRequest `json:"plans" binding:"omitempty,dive"`
}

func toPlanInputs(in []ObjectivePlanRequest) []services.PlanInput {
	plans := make([]services.PlanInput, len(in))
	for i, p := range in {
		plans[i] = services.PlanInput{
			Month:       p.Month,
			Amount:      p.Amount,
			Kind:        models.PlanKind(p.Kind),
			IsLastMonth: p.IsLastMonth,
		}
	}
	return plans
}

// CreateObjective handles the creation of a new objective.
// @Summary     Create an objective
// @Description Create an objective and the budgets of its month plan. Existing budgets in the plan months are reported as conflicts unless force is set, in which case they are replaced.
// @Tags        objectives
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       force   query bool                   false "Replace conflicting budgets"
// @Param       request body  CreateObjectiveRequest true  "Objective details"
// @Success     201 {object} models.Objective "Objective created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Budget conflicts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /objectives [post]
func (h *ObjectiveHandler) CreateObjective(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	force, err := queryBool(c, "force", false)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	objective, err := h.objectiveService.CreateObjective(c.Request.Context(), userID, services.CreateObjectiveInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Currency:    req.Currency,
		TotalAmount: req.TotalAmount,
		Plans:       toPlanInputs(req.Plans),
	}, force)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "CREATE_OBJECTIVE", "objective", objective.ID, c.ClientIP(),
		map[string]interface{}{"name": objective.Name, "plans": len(objective.Plans), "force": force})

	c.JSON(http.StatusCreated, gin.H{"objective": objective})
}

// GetObjectives handles listing objectives for the authenticated user.
// @Summary     Get objectives
// @Description Get a paginated list of objectives with their plans
// @Tags        objectives
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Filter by status (ACTIVE, COMPLETED, ARCHIVED)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Objective] "Paginated objectives"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /objectives [get]
func (h *ObjectiveHandler) GetObjectives(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.ObjectiveStatus
	if v := c.Query("status"); v != "" {
		s := models.ObjectiveStatus(v)
		status = &s
	}

	result, err := h.objectiveService.GetUserObjectives(c.Request.Context(), userID, status, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetObjective handles retrieving a specific objective.
// @Summary     Get objective by ID
// @Tags        objectives
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Objective ID"
// @Success     200 {object} models.Objective "Objective details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Objective not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /objectives/{id} [get]
func (h *ObjectiveHandler) GetObjective(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	objective, err := h.objectiveService.GetObjectiveByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"objective": objective})
}

// UpdateObjective handles updating an objective.
// @Summary     Update an objective
// @Description Update objective fields. A plans list replaces the whole plan and its budgets; conflicts are handled as on create.
// @Tags        objectives
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path  string                 true  "Objective ID"
// @Param       force   query bool                   false "Replace conflicting budgets"
// @Param       request body  UpdateObjectiveRequest true  "Fields to update"
// @Success     200 {object} models.Objective "Updated objective"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Objective not found"
// @Failure     409 {object} ErrorResponse "Budget conflicts or objective archived"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /objectives/{id} [patch]
func (h *ObjectiveHandler) UpdateObjective(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	force, err := queryBool(c, "force", false)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.UpdateObjectiveInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Currency:    req.Currency,
		TotalAmount: req.TotalAmount,
	}
	if req.Status != nil {
		s := models.ObjectiveStatus(*req.Status)
		input.Status = &s
	}
	if req.Plans != nil {
		plans := toPlanInputs(*req.Plans)
		input.Plans = &plans
	}

	objective, err := h.objectiveService.UpdateObjective(c.Request.Context(), userID, c.Param("id"), input, force)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "UPDATE_OBJECTIVE", "objective", objective.ID, c.ClientIP(),
		map[string]interface{}{"replaced_plans": req.Plans != nil, "force": force})

	c.JSON(http.StatusOK, gin.H{"objective": objective})
}

// CompleteObjective handles marking an objective completed.
// @Summary     Complete an objective
// @Description Mark an objective COMPLETED. Its budgets are kept.
// @Tags        objectives
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Objective ID"
// @Success     200 {object} models.Objective "Completed objective"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Objective not found"
// @Failure     409 {object} ErrorResponse "Objective archived"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /objectives/{id}/complete [post]
func (h *ObjectiveHandler) CompleteObjective(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	objective, err := h.objectiveService.CompleteObjective(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "COMPLETE_OBJECTIVE", "objective", objective.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"objective": objective})
}

// ArchiveObjective handles archiving an objective.
// @Summary     Archive an objective
// @Description Remove the objective's budgets and mark it ARCHIVED. The objective and its plans stay queryable.
// @Tags        objectives
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Objective ID"
// @Success     200 {object} DeletedResponse "Archived"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Objective not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /objectives/{id} [delete]
func (h *ObjectiveHandler) ArchiveObjective(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	objective, err := h.objectiveService.ArchiveObjective(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "ARCHIVE_OBJECTIVE", "objective", objective.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, DeletedResponse{Deleted: true})
}
