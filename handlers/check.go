package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateCheck(c *gin.Context) {
	var input models.NewCheck
	if !bindJSON(c, &input) {
		return
	}
	check, err := models.CreateCheck(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": check.ID})
}

func UpdateCheck(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewCheck
	if !bindJSON(c, &input) {
		return
	}
	check, err := models.UpdateCheck(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

type setCheckStatusRequest struct {
	Status models.CheckStatus `json:"status" binding:"required"`
}

func SetCheckStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req setCheckStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	check, err := models.SetCheckStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func DeleteCheck(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteCheck(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetCheck(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	check, err := models.GetCheck(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func GetChecks(c *gin.Context) {
	var checkType *models.CheckType
	if raw := c.Query("type"); raw != "" {
		t := models.CheckType(raw)
		checkType = &t
	}
	var status *models.CheckStatus
	if raw := c.Query("status"); raw != "" {
		s := models.CheckStatus(raw)
		status = &s
	}
	checks, err := models.GetChecks(c.Request.Context(), checkType, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checks)
}
