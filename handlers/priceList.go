package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreatePriceList(c *gin.Context) {
	var input models.NewPriceList
	if !bindJSON(c, &input) {
		return
	}
	list, err := models.CreatePriceList(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": list.ID})
}

func UpdatePriceList(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewPriceList
	if !bindJSON(c, &input) {
		return
	}
	list, err := models.UpdatePriceList(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func DeletePriceList(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeletePriceList(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetPriceList(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	list, err := models.GetPriceList(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetPriceLists(c *gin.Context) {
	lists, err := models.GetPriceLists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func SaveUserDefaults(c *gin.Context) {
	var input models.NewUserDefaults
	if !bindJSON(c, &input) {
		return
	}
	defaults, err := models.SaveUserDefaults(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, defaults)
}

func GetUserDefaults(c *gin.Context) {
	defaults, err := models.GetUserDefaults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, defaults)
}
