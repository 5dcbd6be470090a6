package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.thiday/internal/middleware"
	models "io.winapps.thiday/internal/models/word"
)

type wordService interface {
	Create(ctx context.Context, ownerID string, text *string) (string, error)
	GetByDate(ctx context.Context, ownerID, date string) (models.Word, bool, error)
	DeleteAllGlobal(ctx context.Context) error
}

type WordHandler struct {
	words  wordService
	logger *zap.SugaredLogger
}

// NewWordHandler creates a new word handler
func NewWordHandler(words wordService, logger *zap.SugaredLogger) *WordHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &WordHandler{
		words:  words,
		logger: logger,
	}
}

// currentOwner reads the identity OwnerMiddleware resolved. It writes the
// error response itself when there is none.
func (h *WordHandler) currentOwner(c *gin.Context) (string, bool) {
	uid, exists := c.Get(middleware.OwnerKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Caller identity is missing"})
		return "", false
	}

	ownerID, ok := uid.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid caller context"})
		return "", false
	}

	return ownerID, true
}
