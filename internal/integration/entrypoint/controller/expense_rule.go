package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/usecase/rule"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// ExpenseRuleController handles expense rule endpoints, including the rule
// evaluation engine.
type ExpenseRuleController struct {
	listUseCase       *rule.ListRulesUseCase
	createUseCase     *rule.CreateRuleUseCase
	updateUseCase     *rule.UpdateRuleUseCase
	deleteUseCase     *rule.DeleteRuleUseCase
	evaluateUseCase   *rule.EvaluateExpenseUseCase
	initializeUseCase *rule.InitializeDefaultRulesUseCase
}

// NewExpenseRuleController creates a new expense rule controller instance.
func NewExpenseRuleController(
	listUseCase *rule.ListRulesUseCase,
	createUseCase *rule.CreateRuleUseCase,
	updateUseCase *rule.UpdateRuleUseCase,
	deleteUseCase *rule.DeleteRuleUseCase,
	evaluateUseCase *rule.EvaluateExpenseUseCase,
	initializeUseCase *rule.InitializeDefaultRulesUseCase,
) *ExpenseRuleController {
	return &ExpenseRuleController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		evaluateUseCase:   evaluateUseCase,
		initializeUseCase: initializeUseCase,
	}
}

// List handles GET /rules requests. Rules come back oldest first, the order
// the evaluation engine applies them in.
func (c *ExpenseRuleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), rule.ListRulesInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expense rules",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRuleListResponse(output.Rules))
}

// Create handles POST /rules requests.
func (c *ExpenseRuleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRuleFields),
		})
		return
	}

	input := rule.CreateRuleInput{
		UserID:         userID,
		Name:           req.Name,
		Category:       req.Category,
		Frequency:      entity.RuleFrequency(req.Frequency),
		MaxAmountCents: req.MaxAmountCents,
		Description:    req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRuleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRuleResponse(output.Rule))
}

// Update handles PATCH /rules/:id requests.
func (c *ExpenseRuleController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rule ID format",
		})
		return
	}

	var req dto.UpdateRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := rule.UpdateRuleInput{
		RuleID:         ruleID,
		UserID:         userID,
		Name:           req.Name,
		Category:       req.Category,
		MaxAmountCents: req.MaxAmountCents,
		Description:    req.Description,
		IsActive:       req.IsActive,
	}
	if req.Frequency != nil {
		frequency := entity.RuleFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRuleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRuleResponse(output.Rule))
}

// Delete handles DELETE /rules/:id requests.
func (c *ExpenseRuleController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rule ID format",
		})
		return
	}

	input := rule.DeleteRuleInput{
		RuleID: ruleID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleRuleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Evaluate handles POST /rules/evaluate requests. The expense is judged but
// never recorded.
func (c *ExpenseRuleController) Evaluate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.EvaluateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRuleFields),
		})
		return
	}

	input := rule.EvaluateExpenseInput{
		UserID:      userID,
		Category:    req.Category,
		AmountCents: req.AmountCents,
		Date:        req.Date,
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRuleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvaluationResponse(output.Approved, output.Reason, output.MatchedRule))
}

// InitializeDefaults handles POST /rules/initialize-defaults requests. Not
// idempotent; calling twice duplicates the seed rules.
func (c *ExpenseRuleController) InitializeDefaults(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.initializeUseCase.Execute(ctx.Request.Context(), rule.InitializeDefaultRulesInput{UserID: userID})
	if err != nil {
		c.handleRuleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRuleListResponse(output.Rules))
}

// handleRuleError maps rule errors to HTTP responses.
func (c *ExpenseRuleController) handleRuleError(ctx *gin.Context, err error) {
	var ruleErr *domainerror.RuleError
	if errors.As(err, &ruleErr) {
		ctx.JSON(c.getStatusCodeForRuleError(ruleErr.Code), dto.ErrorResponse{
			Error: ruleErr.Message,
			Code:  string(ruleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRuleError maps rule error codes to HTTP status codes.
func (c *ExpenseRuleController) getStatusCodeForRuleError(code domainerror.RuleErrorCode) int {
	switch code {
	case domainerror.ErrCodeRuleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedRuleAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidRuleFrequency,
		domainerror.ErrCodeInvalidRuleAmount,
		domainerror.ErrCodeMissingRuleFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
