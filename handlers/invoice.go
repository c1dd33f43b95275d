package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateInvoice(c *gin.Context) {
	var input models.NewInvoice
	if !bindJSON(c, &input) {
		return
	}
	invoice, err := models.CreateInvoice(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": invoice.ID, "invoice_no": invoice.InvoiceNo})
}

func UpdateInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewInvoice
	if !bindJSON(c, &input) {
		return
	}
	invoice, err := models.UpdateInvoice(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

type saveInvoiceLinesRequest struct {
	Lines []models.NewInvoiceLine `json:"lines" binding:"required"`
}

func SaveInvoiceLines(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req saveInvoiceLinesRequest
	if !bindJSON(c, &req) {
		return
	}
	invoice, err := models.SaveInvoiceLines(c.Request.Context(), id, req.Lines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func ConfirmInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	invoice, err := models.ConfirmInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func DeleteInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	invoice, err := models.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func GetInvoices(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	var invoiceType *models.InvoiceType
	if raw := c.Query("invoice_type"); raw != "" {
		t := models.InvoiceType(raw)
		invoiceType = &t
	}
	var status *models.InvoiceStatus
	if raw := c.Query("status"); raw != "" {
		s := models.InvoiceStatus(raw)
		status = &s
	}
	invoices, err := models.GetInvoices(c.Request.Context(), fiscalYearId, invoiceType, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func GetNextInvoiceNumber(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	invoiceType := models.InvoiceType(c.Query("invoice_type"))
	number, err := models.GetNextInvoiceNumber(c.Request.Context(), fiscalYearId, invoiceType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice_no": number})
}
