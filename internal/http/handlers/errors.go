package handlers

import (
	"net/http"

	"medsales/internal/domain"
	"medsales/internal/http/middleware"
	"medsales/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Store errors keep
// their driver detail in the server log only; the client sees a generic
// message.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondFail(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondFail(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		respondFail(c, http.StatusConflict, err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		respondFail(c, http.StatusInternalServerError, "internal server error")
	}
}
