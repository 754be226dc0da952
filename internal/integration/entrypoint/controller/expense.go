package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/usecase/expense"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	statsUseCase  *expense.GetExpenseStatsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	statsUseCase *expense.GetExpenseStatsUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		statsUseCase:  statsUseCase,
	}
}

// List handles GET /expenses requests. Optional start/end query parameters
// bound the listing (RFC 3339).
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := expense.ListExpensesInput{UserID: userID}

	if raw := ctx.Query("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected RFC 3339",
			})
			return
		}
		input.StartDate = &start
	}
	if raw := ctx.Query("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected RFC 3339",
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:      userID,
		CategoryID:  categoryID,
		AmountCents: req.AmountCents,
		Description: req.Description,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		UserID:      userID,
		AmountCents: req.AmountCents,
		Description: req.Description,
		Date:        req.Date,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	input := expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Stats handles GET /expenses/stats requests. Defaults to the trailing 30
// days when no bounds are given.
func (c *ExpenseController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	end := time.Now().UTC()
	start := end.AddDate(0, -1, 0)

	if raw := ctx.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected RFC 3339",
			})
			return
		}
		start = parsed
	}
	if raw := ctx.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected RFC 3339",
			})
			return
		}
		end = parsed
	}

	input := expense.GetExpenseStatsInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute expense stats",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseStatsResponse(output.TotalCents, output.Count, output.ByCategory))
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound, domainerror.ErrCodeExpenseCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedExpenseAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidExpenseAmount, domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
