package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	postwordmodels "io.winapps.thiday/internal/models/post_word"
	"io.winapps.thiday/internal/store"
)

// PostWord stores the caller's word for today. Any text is accepted, blank
// included; only a malformed body is rejected.
func (h *WordHandler) PostWord(c *gin.Context) {
	var req postwordmodels.PostWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Get owner from context
	ownerID, ok := h.currentOwner(c)
	if !ok {
		return
	}

	id, err := h.words.Create(c.Request.Context(), ownerID, req.Text)
	if err != nil {
		// First word of the day stands
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A word has already been posted today"})
			return
		}
		h.logError(c, err, "failed to create word")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create word"})
		return
	}

	c.JSON(http.StatusCreated, postwordmodels.PostWordResponse{ID: id})
}
