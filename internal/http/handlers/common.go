package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"medsales/internal/domain"
	"medsales/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondOK sends the standard success envelope with request_id included.
func RespondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success":    true,
		"data":       data,
		"request_id": middleware.GetRequestID(c),
	})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success":    false,
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondFail(c, http.StatusBadRequest, "request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}

// pageRequest reads page/pageSize query params. Absent params fall back to
// the defaults; present values go through the [1,100] clamp.
func pageRequest(c *gin.Context) domain.PageRequest {
	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	pageSize := domain.DefaultPageSize
	if raw := strings.TrimSpace(c.Query("pageSize")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			pageSize = n
		}
	}
	return domain.NewPageRequest(page, pageSize)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
