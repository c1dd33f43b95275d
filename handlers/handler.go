package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"gorm.io/gorm"
)

// respondError maps the failure taxonomy onto HTTP statuses: validation
// 400, not found 404, invariant/reference/state 409, everything else 500.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrorRecordNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": "not_found"})
		return
	}
	if kind, ok := utils.KindOf(err); ok {
		status := http.StatusConflict
		if kind == utils.FailureValidation {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
		return
	}
	logger := config.GetLogger()
	username, _ := utils.GetUsernameFromContext(c.Request.Context())
	correlationId, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
	config.LogError(logger, "handlers", "respondError", c.FullPath(),
		gin.H{"username": username, "correlation_id": correlationId}, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		fields := utils.ProcessValidationErrors(err)
		if len(fields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "kind": "validation", "fields": fields})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
		}
		return false
	}
	return true
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "kind": "validation"})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required", "kind": "validation"})
		return 0, false
	}
	return value, true
}

func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	t, err := utils.ParseDateString(c.Query(name))
	if err != nil {
		respondError(c, err)
		return time.Time{}, false
	}
	return t, true
}

func optionalDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := utils.ParseDateString(raw)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return &t, true
}
