package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueToken signs whatever JSON object the client sends, usually {"email": ...},
// into a one-hour access token.
func (h *Handler) IssueToken(c *gin.Context) {
	payload, err := bindDocument(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Tokens.GenerateJWT(payload)
	if err != nil {
		serverError(c, "Could not generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
