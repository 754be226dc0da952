package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/usecase/reminder"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// ReminderController handles payment reminder endpoints.
type ReminderController struct {
	listUseCase   *reminder.ListRemindersUseCase
	createUseCase *reminder.CreateReminderUseCase
	updateUseCase *reminder.UpdateReminderUseCase
	deleteUseCase *reminder.DeleteReminderUseCase
}

// NewReminderController creates a new reminder controller instance.
func NewReminderController(
	listUseCase *reminder.ListRemindersUseCase,
	createUseCase *reminder.CreateReminderUseCase,
	updateUseCase *reminder.UpdateReminderUseCase,
	deleteUseCase *reminder.DeleteReminderUseCase,
) *ReminderController {
	return &ReminderController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /reminders requests.
func (c *ReminderController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), reminder.ListRemindersInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve reminders",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderListResponse(output.Reminders))
}

// Create handles POST /reminders requests.
func (c *ReminderController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingReminderFields),
		})
		return
	}

	input := reminder.CreateReminderInput{
		UserID:             userID,
		Name:               req.Name,
		Category:           req.Category,
		AmountCents:        req.AmountCents,
		DueDate:            req.DueDate,
		OptimalPaymentDate: req.OptimalPaymentDate,
		Recurrence:         entity.ReminderRecurrence(req.Recurrence),
		Notes:              req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReminderResponse(output.Reminder))
}

// Update handles PATCH /reminders/:id requests.
func (c *ReminderController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	reminderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reminder ID format",
		})
		return
	}

	var req dto.UpdateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := reminder.UpdateReminderInput{
		ReminderID:         reminderID,
		UserID:             userID,
		Name:               req.Name,
		Category:           req.Category,
		AmountCents:        req.AmountCents,
		DueDate:            req.DueDate,
		OptimalPaymentDate: req.OptimalPaymentDate,
		Notes:              req.Notes,
		IsPaid:             req.IsPaid,
	}
	if req.Recurrence != nil {
		recurrence := entity.ReminderRecurrence(*req.Recurrence)
		input.Recurrence = &recurrence
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(output.Reminder))
}

// Delete handles DELETE /reminders/:id requests.
func (c *ReminderController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	reminderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reminder ID format",
		})
		return
	}

	input := reminder.DeleteReminderInput{
		ReminderID: reminderID,
		UserID:     userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleReminderError maps reminder errors to HTTP responses.
func (c *ReminderController) handleReminderError(ctx *gin.Context, err error) {
	var remErr *domainerror.ReminderError
	if errors.As(err, &remErr) {
		ctx.JSON(c.getStatusCodeForReminderError(remErr.Code), dto.ErrorResponse{
			Error: remErr.Message,
			Code:  string(remErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReminderError maps reminder error codes to HTTP status codes.
func (c *ReminderController) getStatusCodeForReminderError(code domainerror.ReminderErrorCode) int {
	switch code {
	case domainerror.ErrCodeReminderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedReminderAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidRecurrence, domainerror.ErrCodeMissingReminderFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
