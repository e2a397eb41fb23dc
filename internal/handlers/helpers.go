package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail_admin/internal/providers"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

// parseID reads a uuid path parameter and answers 400 itself on garbage.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// handleError maps repository errors onto HTTP statuses. Anything not
// recognized is a 500 with a generic body; details go to the server log
// via gin's error list.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schemas.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
	case errors.Is(err, providers.ErrCompositeKey):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, providers.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Retailer account not found"})
	case errors.Is(err, providers.ErrInsufficientCoins):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient coins"})
	case errors.Is(err, repository.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
