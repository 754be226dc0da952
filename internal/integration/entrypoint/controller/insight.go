package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/usecase/insight"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles insight endpoints.
type InsightController struct {
	listUseCase     *insight.ListInsightsUseCase
	generateUseCase *insight.GenerateInsightUseCase
	markReadUseCase *insight.MarkInsightReadUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	listUseCase *insight.ListInsightsUseCase,
	generateUseCase *insight.GenerateInsightUseCase,
	markReadUseCase *insight.MarkInsightReadUseCase,
) *InsightController {
	return &InsightController{
		listUseCase:     listUseCase,
		generateUseCase: generateUseCase,
		markReadUseCase: markReadUseCase,
	}
}

// List handles GET /insights requests. The limit query parameter caps the
// result count.
func (c *InsightController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := insight.ListInsightsInput{UserID: userID}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit parameter",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve insights",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// Generate handles POST /insights/generate requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Body is optional; an empty body means no extra context.
	var req dto.GenerateInsightRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	input := insight.GenerateInsightInput{
		UserID:  userID,
		Context: req.Context,
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GeneratedInsightResponse{
		Insight: dto.ToInsightResponse(output.Insight),
		Cached:  output.Cached,
	})
}

// MarkRead handles POST /insights/:id/read requests.
func (c *InsightController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	insightID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid insight ID format",
		})
		return
	}

	input := insight.MarkInsightReadInput{
		InsightID: insightID,
		UserID:    userID,
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "insight marked as read"})
}

// handleInsightError maps insight errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insErr *domainerror.InsightError
	if errors.As(err, &insErr) {
		ctx.JSON(c.getStatusCodeForInsightError(insErr.Code), dto.ErrorResponse{
			Error: insErr.Message,
			Code:  string(insErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrInsightNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Insight not found",
			Code:  string(domainerror.ErrCodeInsightNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func (c *InsightController) getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsightNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingInsightFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeAdviceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
