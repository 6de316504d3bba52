package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledger/internal/errors"
	"ledger/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// UpsertBudgetRequest represents the request payload for writing a budget.
// Absent fields keep their stored value on an existing budget.
type UpsertBudgetRequest struct {
	Limit                    *int64  `json:"limit" binding:"omitempty,min=0"`
	Currency                 *string `json:"currency" binding:"omitempty,iso4217"`
	Rollover                 *bool   `json:"rollover"`
	RolloverTargetCategoryID *string `json:"rollover_target_category_id" binding:"omitempty,uuid"`
	CopiedFromMonth          *string `json:"copied_from_month" binding:"omitempty,month"`
	Purpose                  *string `json:"purpose" binding:"omitempty,max=200"`
	CarryForwardEnabled      *bool   `json:"carry_forward_enabled"`
	IsTerminal               *bool   `json:"is_terminal"`
}

// DeleteBudgetsQuery holds the query parameters of a scoped delete.
type DeleteBudgetsQuery struct {
	Scope      string `form:"scope" binding:"required,delete_scope"`
	CategoryID string `form:"category_id" binding:"required,uuid"`
	Month      string `form:"month" binding:"omitempty,month"`
}

// ListBudgets handles listing the budgets visible in a month.
// @Summary     List effective budgets
// @Description List the budgets visible in a month, including limits carried forward from earlier months. Without month, every explicit budget is returned.
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM)"
// @Success     200 {object} map[string][]models.Budget "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.ListEffective(c.Request.Context(), userID, optionalQuery(c, "month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// UpsertBudget handles creating or updating the budget of a category in a month.
// @Summary     Create or update a budget
// @Description Write the budget at (month, category). Editing an existing budget also updates later explicit budgets of the category unless apply_future is false.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month        path  string              true  "Month (YYYY-MM)"
// @Param       category_id  path  string              true  "Category ID"
// @Param       apply_future query bool                false "Propagate to later months (default true)"
// @Param       request      body  UpsertBudgetRequest true  "Budget fields"
// @Success     200 {object} models.Budget "Budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Budget is managed by an objective"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/{category_id} [put]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	applyFuture, err := queryBool(c, "apply_future", true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month, categoryID := c.Param("month"), c.Param("category_id")
	budget, err := h.budgetService.Upsert(c.Request.Context(), userID, month, categoryID, services.BudgetInput{
		Limit:                    req.Limit,
		Currency:                 req.Currency,
		Rollover:                 req.Rollover,
		RolloverTargetCategoryID: req.RolloverTargetCategoryID,
		CopiedFromMonth:          req.CopiedFromMonth,
		Purpose:                  req.Purpose,
		CarryForwardEnabled:      req.CarryForwardEnabled,
		IsTerminal:               req.IsTerminal,
	}, applyFuture)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "UPSERT_BUDGET", "budget", month+"/"+categoryID, c.ClientIP(),
		map[string]interface{}{"limit": budget.Limit, "apply_future": applyFuture})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting the budget of a category in one month.
// @Summary     Delete a budget
// @Description Delete the explicit budget at (month, category)
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month       path string true "Month (YYYY-MM)"
// @Param       category_id path string true "Category ID"
// @Success     200 {object} DeletedResponse "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/{category_id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, categoryID := c.Param("month"), c.Param("category_id")
	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, month, categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "DELETE_BUDGET", "budget", month+"/"+categoryID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, DeletedResponse{Deleted: true, Count: 1})
}

// DeleteBudgets handles scoped deletion of a category's budgets.
// @Summary     Delete budgets by scope
// @Description Delete a category's budgets in one month (this_month), from a month onward (from_month) or entirely (all)
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       scope       query string true  "this_month, from_month or all"
// @Param       category_id query string true  "Category ID"
// @Param       month       query string false "Month (YYYY-MM), required unless scope is all"
// @Success     200 {object} DeletedResponse "Deleted count"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [delete]
func (h *BudgetHandler) DeleteBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q DeleteBudgetsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var month *string
	if q.Month != "" {
		month = &q.Month
	}

	count, err := h.budgetService.DeleteScoped(c.Request.Context(), userID, q.CategoryID, services.DeleteScope(q.Scope), month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "DELETE_BUDGETS", "budget", q.CategoryID, c.ClientIP(),
		map[string]interface{}{"scope": q.Scope, "month": q.Month, "count": count})

	c.JSON(http.StatusOK, gin.H{"deleted": true, "count": count})
}

// CopyBudgets handles copying one month's budgets into another.
// @Summary     Copy budgets between months
// @Description Clone every budget of source_month into month for categories that have no budget there yet
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month        path string true "Target month (YYYY-MM)"
// @Param       source_month path string true "Source month (YYYY-MM)"
// @Success     201 {object} map[string][]models.Budget "Created budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{month}/copy-from/{source_month} [post]
func (h *BudgetHandler) CopyBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	target, source := c.Param("month"), c.Param("source_month")
	created, err := h.budgetService.CopyMonth(c.Request.Context(), userID, source, target)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "COPY_BUDGETS", "budget", target, c.ClientIP(),
		map[string]interface{}{"source_month": source, "count": len(created)})

	c.JSON(http.StatusCreated, gin.H{"budgets": created})
}
