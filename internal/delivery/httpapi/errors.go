package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

// writeError maps a service error onto an HTTP status and a JSON body.
// Unrecognized errors are logged and reported as 500 without leaking
// internals to the client.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrPackNotFound),
		errors.Is(err, entities.ErrQuestionNotFound),
		errors.Is(err, entities.ErrVariantNotFound),
		errors.Is(err, entities.ErrPlayerNotFound),
		errors.Is(err, entities.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, entities.ErrSessionNotWaiting),
		errors.Is(err, entities.ErrSessionAlreadyFinished),
		errors.Is(err, entities.ErrSessionNotActive),
		errors.Is(err, entities.ErrAnswerAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, entities.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	default:
		h.log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
