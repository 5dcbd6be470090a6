package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

// DeleteAllWords wipes the words of every owner. Admin only, irreversible.
func (h *WordHandler) DeleteAllWords(c *gin.Context) {
	if err := h.words.DeleteAllGlobal(c.Request.Context()); err != nil {
		h.logError(c, err, "failed to delete all words")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete words"})
		return
	}

	// Audit trail for the purge
	logWithContext(h.logger, c, zapcore.WarnLevel, "all words deleted through admin endpoint")
	c.Status(http.StatusNoContent)
}
