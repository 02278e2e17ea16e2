package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and writes the JSON error body.
// Unexpected errors are logged and hidden behind failMsg.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	var (
		validationErr *apperrors.ValidationError
		configErr     *apperrors.ConfigurationError
		unbalancedErr *apperrors.UnbalancedEntryError
		appErr        *apperrors.AppError
	)
	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &configErr):
		logger.Warn("Ledger configuration incomplete", slog.String("capability", configErr.Capability))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": configErr.Error(), "capability": configErr.Capability})
	case errors.As(err, &unbalancedErr):
		logger.Error("Entry group does not balance",
			slog.String("debit", unbalancedErr.Debit.StringFixed(2)),
			slog.String("credit", unbalancedErr.Credit.StringFixed(2)))
		c.JSON(http.StatusConflict, gin.H{"error": unbalancedErr.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// requireUser returns the authenticated user or writes 401.
func requireUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}
