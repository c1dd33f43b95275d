package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateJournalEntry(c *gin.Context) {
	var input models.NewJournalEntry
	if !bindJSON(c, &input) {
		return
	}
	entry, err := models.CreateJournalEntry(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": entry.ID, "voucher_no": entry.VoucherNo})
}

func UpdateJournalEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewJournalEntry
	if !bindJSON(c, &input) {
		return
	}
	entry, err := models.UpdateJournalEntry(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func PostJournalEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	entry, err := models.PostJournalEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteJournalEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteJournalEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetJournalEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	entry, err := models.GetJournalEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func GetJournalEntries(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	dateFrom, ok := optionalDateQuery(c, "date_from")
	if !ok {
		return
	}
	dateTo, ok := optionalDateQuery(c, "date_to")
	if !ok {
		return
	}
	entries, err := models.GetJournalEntries(c.Request.Context(), fiscalYearId, dateFrom, dateTo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
