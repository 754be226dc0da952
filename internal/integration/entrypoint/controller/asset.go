package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/analysis"
	"github.com/spendwise/backend/internal/application/usecase/asset"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// AssetController handles asset endpoints.
type AssetController struct {
	listUseCase        *asset.ListAssetsUseCase
	createUseCase      *asset.CreateAssetUseCase
	replacementUseCase *analysis.CheckAssetReplacementUseCase
}

// NewAssetController creates a new asset controller instance.
func NewAssetController(
	listUseCase *asset.ListAssetsUseCase,
	createUseCase *asset.CreateAssetUseCase,
	replacementUseCase *analysis.CheckAssetReplacementUseCase,
) *AssetController {
	return &AssetController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		replacementUseCase: replacementUseCase,
	}
}

// List handles GET /assets requests.
func (c *AssetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), asset.ListAssetsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve assets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetListResponse(output.Assets))
}

// Create handles POST /assets requests.
func (c *AssetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAssetFields),
		})
		return
	}

	input := asset.CreateAssetInput{
		UserID:                 userID,
		Name:                   req.Name,
		Category:               req.Category,
		PurchasePriceCents:     req.PurchasePriceCents,
		PurchaseDate:           req.PurchaseDate,
		ExpectedLifespanMonths: req.ExpectedLifespanMonths,
		Notes:                  req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(output.Asset))
}

// CheckReplacement handles GET /assets/check-replacement requests. The
// category query parameter names the asset category to check.
func (c *AssetController) CheckReplacement(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	category := ctx.Query("category")
	if category == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "category query parameter is required",
			Code:  string(domainerror.ErrCodeMissingAssetFields),
		})
		return
	}

	input := analysis.CheckAssetReplacementInput{
		UserID:   userID,
		Category: category,
	}

	output, err := c.replacementUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	response := dto.ReplacementCheckResponse{
		ShouldReplace: output.ShouldReplace,
		Reason:        output.Reason,
	}
	if output.ExistingAsset != nil {
		existing := dto.ToAssetResponse(output.ExistingAsset)
		response.ExistingAsset = &existing
	}
	ctx.JSON(http.StatusOK, response)
}

// handleAssetError maps asset errors to HTTP responses.
func (c *AssetController) handleAssetError(ctx *gin.Context, err error) {
	var assetErr *domainerror.AssetError
	if errors.As(err, &assetErr) {
		ctx.JSON(c.getStatusCodeForAssetError(assetErr.Code), dto.ErrorResponse{
			Error: assetErr.Message,
			Code:  string(assetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAssetError maps asset error codes to HTTP status codes.
func (c *AssetController) getStatusCodeForAssetError(code domainerror.AssetErrorCode) int {
	switch code {
	case domainerror.ErrCodeAssetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedAssetAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidLifespan, domainerror.ErrCodeMissingAssetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
