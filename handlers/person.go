package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreatePerson(c *gin.Context) {
	var input models.NewPerson
	if !bindJSON(c, &input) {
		return
	}
	person, err := models.CreatePerson(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": person.ID})
}

func UpdatePerson(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewPerson
	if !bindJSON(c, &input) {
		return
	}
	person, err := models.UpdatePerson(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func DeletePerson(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeletePerson(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetPerson(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	person, err := models.GetPerson(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func GetPersons(c *gin.Context) {
	var name *string
	if raw := c.Query("name"); raw != "" {
		name = &raw
	}
	var personType *models.PersonType
	if raw := c.Query("person_type"); raw != "" {
		t := models.PersonType(raw)
		personType = &t
	}
	persons, err := models.GetPersons(c.Request.Context(), name, personType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func CreatePersonCategory(c *gin.Context) {
	var input models.NewPersonCategory
	if !bindJSON(c, &input) {
		return
	}
	category, err := models.CreatePersonCategory(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": category.ID})
}

func UpdatePersonCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewPersonCategory
	if !bindJSON(c, &input) {
		return
	}
	category, err := models.UpdatePersonCategory(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func DeletePersonCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeletePersonCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetPersonCategories(c *gin.Context) {
	categories, err := models.GetPersonCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
