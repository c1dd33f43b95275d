package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateChartAccount(c *gin.Context) {
	var input models.NewChartAccount
	if !bindJSON(c, &input) {
		return
	}
	account, err := models.CreateChartAccount(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": account.ID})
}

func UpdateChartAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewChartAccount
	if !bindJSON(c, &input) {
		return
	}
	account, err := models.UpdateChartAccount(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func DeleteChartAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteChartAccount(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetChartAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	account, err := models.GetChartAccount(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func GetChartTree(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	accounts, err := models.GetChartTree(c.Request.Context(), fiscalYearId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func GetChartChildren(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	parentId, ok := intQuery(c, "parent_id")
	if !ok {
		return
	}
	accounts, err := models.GetChartChildren(c.Request.Context(), parentId, fiscalYearId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func SeedChartOfAccounts(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	created, err := models.SeedChartOfAccounts(c.Request.Context(), fiscalYearId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
