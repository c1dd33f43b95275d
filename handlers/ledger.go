package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/models"
)

func GetAccountTurnover(c *gin.Context) {
	accountId, ok := intQuery(c, "account_id")
	if !ok {
		return
	}
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	dateFrom, ok := dateQuery(c, "date_from")
	if !ok {
		return
	}
	dateTo, ok := dateQuery(c, "date_to")
	if !ok {
		return
	}
	turnover, err := models.GetAccountTurnover(c.Request.Context(), accountId, fiscalYearId, dateFrom, dateTo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turnover)
}

func GetOpeningBalance(c *gin.Context) {
	accountId, ok := intQuery(c, "account_id")
	if !ok {
		return
	}
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	beforeDate, ok := dateQuery(c, "before_date")
	if !ok {
		return
	}
	opening, err := models.GetOpeningBalance(c.Request.Context(), accountId, fiscalYearId, beforeDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opening)
}
