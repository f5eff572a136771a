package handlers

import (
	"errors"
	"net/http"
	"strings"

	"taskshelf/internal/domain"
	"taskshelf/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// detail writes the error body shape shared by every endpoint.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// bindingDetail flattens a gin binding failure into a client-readable
// message, listing the offending fields when the validator produced them.
func bindingDetail(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		detail(c, http.StatusBadRequest, "validation failed on field(s): "+strings.Join(fields, ", "))
		return
	}
	detail(c, http.StatusBadRequest, "invalid request body")
}

// storeError maps storage-layer errors to responses. Expected conditions
// (not found, bad id, empty update) surface verbatim; anything else is a
// logged opaque 500.
func storeError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		detail(c, http.StatusNotFound, "record not found")
	case errors.Is(err, domain.ErrInvalidID):
		detail(c, http.StatusBadRequest, "invalid id format")
	case errors.Is(err, domain.ErrEmptyUpdate):
		detail(c, http.StatusBadRequest, "no valid fields to update")
	default:
		logger.Error("storage operation failed", "op", op, "error", err)
		detail(c, http.StatusInternalServerError, "internal server error")
	}
}
