package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateFiscalYear(c *gin.Context) {
	var input models.NewFiscalYear
	if !bindJSON(c, &input) {
		return
	}
	year, err := models.CreateFiscalYear(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": year.ID})
}

func UpdateFiscalYear(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewFiscalYear
	if !bindJSON(c, &input) {
		return
	}
	year, err := models.UpdateFiscalYear(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, year)
}

func DeleteFiscalYear(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteFiscalYear(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetFiscalYear(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	year, err := models.GetFiscalYear(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, year)
}

func GetFiscalYears(c *gin.Context) {
	years, err := models.GetFiscalYears(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

func GetActiveFiscalYear(c *gin.Context) {
	year, err := models.GetActiveFiscalYear(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, year)
}
