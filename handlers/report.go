package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/models"
	"github.com/sabaerp/saba_backend/models/reports"
)

func GetTrialBalance(c *gin.Context) {
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
	rows, err := models.GetTrialBalance(c.Request.Context(), fiscalYearId, dateFrom, dateTo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetBalanceSheet(c *gin.Context) {
	fiscalYearId, ok := intQuery(c, "fiscal_year_id")
	if !ok {
		return
	}
	asOfDate, ok := dateQuery(c, "as_of_date")
	if !ok {
		return
	}
	report, err := reports.GetBalanceSheetReport(c.Request.Context(), fiscalYearId, asOfDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func GetProfitAndLoss(c *gin.Context) {
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
	report, err := reports.GetProfitAndLossReport(c.Request.Context(), fiscalYearId, dateFrom, dateTo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func ExportTrialBalance(c *gin.Context) {
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
	f, err := reports.ExportTrialBalanceExcel(c.Request.Context(), fiscalYearId, dateFrom, dateTo)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=trial_balance.xlsx")
	if err := f.Write(c.Writer); err != nil {
		logger := config.GetLogger()
		config.LogError(logger, "handlers", "ExportTrialBalance", "write workbook", nil, err)
	}
}
