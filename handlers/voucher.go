package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func CreateReceiptVoucher(c *gin.Context) {
	var input models.NewReceiptVoucher
	if !bindJSON(c, &input) {
		return
	}
	voucher, err := models.CreateReceiptVoucher(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": voucher.ID, "voucher_no": voucher.VoucherNo})
}

func UpdateReceiptVoucher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewReceiptVoucher
	if !bindJSON(c, &input) {
		return
	}
	voucher, err := models.UpdateReceiptVoucher(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voucher)
}

func PostReceiptVoucher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	voucher, err := models.PostReceiptVoucher(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voucher)
}

func DeleteReceiptVoucher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.DeleteReceiptVoucher(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func GetReceiptVoucher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	voucher, err := models.GetReceiptVoucher(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voucher)
}

func GetReceiptVouchers(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	var voucherType *models.VoucherType
	if raw := c.Query("type"); raw != "" {
		t := models.VoucherType(raw)
		voucherType = &t
	}
	dateFrom, ok := optionalDateQuery(c, "date_from")
	if !ok {
		return
	}
	dateTo, ok := optionalDateQuery(c, "date_to")
	if !ok {
		return
	}
	vouchers, err := models.GetReceiptVouchers(c.Request.Context(), fiscalYearId, voucherType, dateFrom, dateTo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vouchers)
}
