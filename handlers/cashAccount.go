package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateCashAccount(c *gin.Context) {
	var input models.NewCashAccount
	if !bindJSON(c, &input) {
		return
	}
	account, err := models.CreateCashAccount(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": account.ID})
}

func UpdateCashAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewCashAccount
	if !bindJSON(c, &input) {
		return
	}
	account, err := models.UpdateCashAccount(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func DeleteCashAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteCashAccount(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetCashAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	account, err := models.GetCashAccount(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func GetCashAccounts(c *gin.Context) {
	accounts, err := models.GetCashAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}
