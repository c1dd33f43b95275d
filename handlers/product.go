package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateProduct(c *gin.Context) {
	var input models.NewProduct
	if !bindJSON(c, &input) {
		return
	}
	product, err := models.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": product.ID})
}

func UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewProduct
	if !bindJSON(c, &input) {
		return
	}
	product, err := models.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := models.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func GetProducts(c *gin.Context) {
	var name, code *string
	if raw := c.Query("name"); raw != "" {
		name = &raw
	}
	if raw := c.Query("code"); raw != "" {
		code = &raw
	}
	products, err := models.GetProducts(c.Request.Context(), name, code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func CreateProductCategory(c *gin.Context) {
	var input models.NewProductCategory
	if !bindJSON(c, &input) {
		return
	}
	category, err := models.CreateProductCategory(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": category.ID})
}

func UpdateProductCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewProductCategory
	if !bindJSON(c, &input) {
		return
	}
	category, err := models.UpdateProductCategory(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func DeleteProductCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteProductCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetProductCategories(c *gin.Context) {
	categories, err := models.GetProductCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func CreateUnit(c *gin.Context) {
	var input models.NewUnit
	if !bindJSON(c, &input) {
		return
	}
	unit, err := models.CreateUnit(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": unit.ID})
}

func UpdateUnit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewUnit
	if !bindJSON(c, &input) {
		return
	}
	unit, err := models.UpdateUnit(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

func DeleteUnit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteUnit(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetUnits(c *gin.Context) {
	units, err := models.GetUnits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}
