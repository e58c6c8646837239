package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgInternalError = "Internal server error"
	msgInvalidBody   = "Invalid request body"
	msgUserNotFound  = "User not found!"
	msgWrongPassword = "Incorrect password!"
	msgEmailTaken    = "Email already exists!"
	itemNotFoundFmt  = `No items with ID "%s"`
)

type errorResponse struct {
	Error string `json:"error"`
}

// internalError logs err in full and answers with a generic plain-text 500.
func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.Error(c.Request.Context(), err.Error(), "request_id", requestID(c))
	c.String(http.StatusInternalServerError, msgInternalError)
}

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
}
