package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.thiday/internal/service"
)

// GetWord returns the caller's word for the :date path parameter
func (h *WordHandler) GetWord(c *gin.Context) {
	ownerID, ok := h.currentOwner(c)
	if !ok {
		return
	}

	// Date comes from the path, validated by the service
	date := c.Param("date")

	word, found, err := h.words.GetByDate(c.Request.Context(), ownerID, date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Anything else is a storage failure
		h.logError(c, err, "failed to get word", "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch word"})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
		return
	}

	c.JSON(http.StatusOK, word)
}
