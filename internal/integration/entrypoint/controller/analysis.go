package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/analysis"
	"github.com/spendwise/backend/internal/application/usecase/rule"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// AnalysisController handles the combined pre-purchase analysis endpoint:
// price reasonableness and goal impact, rule evaluation, and, for durable
// goods, a replacement check.
type AnalysisController struct {
	analyzeUseCase     *analysis.AnalyzeExpenseUseCase
	evaluateUseCase    *rule.EvaluateExpenseUseCase
	replacementUseCase *analysis.CheckAssetReplacementUseCase
}

// NewAnalysisController creates a new analysis controller instance.
func NewAnalysisController(
	analyzeUseCase *analysis.AnalyzeExpenseUseCase,
	evaluateUseCase *rule.EvaluateExpenseUseCase,
	replacementUseCase *analysis.CheckAssetReplacementUseCase,
) *AnalysisController {
	return &AnalysisController{
		analyzeUseCase:     analyzeUseCase,
		evaluateUseCase:    evaluateUseCase,
		replacementUseCase: replacementUseCase,
	}
}

// Analyze handles POST /analysis/expense requests. The prospective expense
// is judged but never recorded.
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AnalyzeExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	analyzed, err := c.analyzeUseCase.Execute(ctx.Request.Context(), analysis.AnalyzeExpenseInput{
		UserID:      userID,
		Category:    req.Category,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to analyze expense",
		})
		return
	}

	response := dto.ToAnalysisResponse(analyzed)

	evaluated, err := c.evaluateUseCase.Execute(ctx.Request.Context(), rule.EvaluateExpenseInput{
		UserID:      userID,
		Category:    req.Category,
		AmountCents: req.AmountCents,
		Date:        req.Date,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to evaluate expense rules",
		})
		return
	}
	evaluation := dto.ToEvaluationResponse(evaluated.Approved, evaluated.Reason, evaluated.MatchedRule)
	response.RuleEvaluation = &evaluation

	// Replacement advice only makes sense for tracked durable goods.
	if valueobject.IsAssetCategory(req.Category) {
		checked, err := c.replacementUseCase.Execute(ctx.Request.Context(), analysis.CheckAssetReplacementInput{
			UserID:   userID,
			Category: req.Category,
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to check asset replacement",
			})
			return
		}
		check := dto.ReplacementCheckResponse{
			ShouldReplace: checked.ShouldReplace,
			Reason:        checked.Reason,
		}
		if checked.ExistingAsset != nil {
			existing := dto.ToAssetResponse(checked.ExistingAsset)
			check.ExistingAsset = &existing
		}
		response.ReplacementCheck = &check
	}

	ctx.JSON(http.StatusOK, response)
}
