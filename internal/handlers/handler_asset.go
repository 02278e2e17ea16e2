package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// assetHandler handles HTTP requests for the fixed asset lifecycle.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{
		assetService: as,
	}
}

// RegisterAssetRoutes registers the asset posting routes.
func RegisterAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("/depreciations/generate", h.generateDepreciation)
		assets.DELETE("/depreciations/:depreciationID", h.reverseDepreciation)
		assets.POST("/:assetID/acquisition", h.postAcquisition)
		assets.POST("/:assetID/depreciations", h.postDepreciation)
		assets.POST("/:assetID/disposal", h.postDisposal)
	}
}

func postingStatus(result *domain.PostingResult) int {
	if result.Status == domain.PostingSkipped {
		return http.StatusOK
	}
	return http.StatusCreated
}

// postAcquisition godoc
// @Summary Capitalize an asset
// @Description Debits the asset account and credits the funding account with the purchase cost.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param acquisition body dto.AcquisitionRequest true "Acquisition"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Already capitalized"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post acquisition"
// @Security BearerAuth
// @Router /assets/{assetID}/acquisition [post]
func (h *assetHandler) postAcquisition(c *gin.Context) {
	assetID := c.Param("assetID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("asset_id", assetID))

	var req dto.AcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind acquisition JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	result, err := h.assetService.PostAcquisition(c.Request.Context(), req.ToDomain(assetID, userID))
	if err != nil {
		respondError(c, logger, err, "Failed to post acquisition")
		return
	}

	logger.Info("Acquisition posted", slog.String("status", string(result.Status)))
	c.JSON(postingStatus(result), dto.ToPostingResponse(result))
}

// postDepreciation godoc
// @Summary Post one month of depreciation for an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param depreciation body dto.DepreciationRequest true "Depreciation date"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Month already depreciated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post depreciation"
// @Security BearerAuth
// @Router /assets/{assetID}/depreciations [post]
func (h *assetHandler) postDepreciation(c *gin.Context) {
	assetID := c.Param("assetID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("asset_id", assetID))

	var req dto.DepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind depreciation JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	result, err := h.assetService.PostDepreciation(c.Request.Context(), domain.DepreciationRequest{
		AssetID:   assetID,
		Date:      req.Date,
		CreatedBy: userID,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to post depreciation")
		return
	}

	logger.Info("Depreciation posted", slog.String("status", string(result.Status)))
	c.JSON(postingStatus(result), dto.ToPostingResponse(result))
}

// reverseDepreciation godoc
// @Summary Reverse a recorded depreciation
// @Description Soft-deletes the depreciation entries and recomputes the asset's accumulated depreciation and book value.
// @Tags assets
// @Produce json
// @Param depreciationID path string true "Depreciation ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Depreciation not found"
// @Failure 422 {object} map[string]string "Depreciation already reversed"
// @Failure 500 {object} map[string]string "Failed to reverse depreciation"
// @Security BearerAuth
// @Router /assets/depreciations/{depreciationID} [delete]
func (h *assetHandler) reverseDepreciation(c *gin.Context) {
	depreciationID := c.Param("depreciationID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("depreciation_id", depreciationID))

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	asset, err := h.assetService.ReverseDepreciation(c.Request.Context(), depreciationID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reverse depreciation")
		return
	}

	logger.Info("Depreciation reversed", slog.String("asset_id", asset.ID))
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// generateDepreciation godoc
// @Summary Run monthly depreciation for every active asset
// @Description One failing asset never stops the batch; failures are listed in the result.
// @Tags assets
// @Accept json
// @Produce json
// @Param batch body dto.GenerateDepreciationRequest true "Period (YYYY-MM)"
// @Success 200 {object} domain.DepreciationBatchResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate depreciation"
// @Security BearerAuth
// @Router /assets/depreciations/generate [post]
func (h *assetHandler) generateDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind depreciation batch JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "period is required in YYYY-MM format"})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	result, err := h.assetService.GenerateMonthlyDepreciation(c.Request.Context(), req.Period, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate depreciation")
		return
	}

	logger.Info("Depreciation batch finished",
		slog.String("period", result.Period),
		slog.Int("success", result.Success),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))
	c.JSON(http.StatusOK, result)
}

// postDisposal godoc
// @Summary Dispose of an asset
// @Description Removes cost and accumulated depreciation from the books and recognizes the gain or loss.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param disposal body dto.DisposalRequest true "Disposal"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Already disposed"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post disposal"
// @Security BearerAuth
// @Router /assets/{assetID}/disposal [post]
func (h *assetHandler) postDisposal(c *gin.Context) {
	assetID := c.Param("assetID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("asset_id", assetID))

	var req dto.DisposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind disposal JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	result, err := h.assetService.PostDisposal(c.Request.Context(), req.ToDomain(assetID, userID))
	if err != nil {
		respondError(c, logger, err, "Failed to post disposal")
		return
	}

	logger.Info("Disposal posted", slog.String("status", string(result.Status)), slog.String("disposal_id", req.ID))
	c.JSON(postingStatus(result), dto.ToPostingResponse(result))
}
