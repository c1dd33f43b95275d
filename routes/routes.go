package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sabaerp/saba_backend/handlers"
)

// Register wires every handler under /api/v1.
func Register(r *gin.Engine) {
	api := r.Group("/api/v1")

	fiscalYears := api.Group("/fiscal-years")
	fiscalYears.POST("", handlers.CreateFiscalYear)
	fiscalYears.GET("", handlers.GetFiscalYears)
	fiscalYears.GET("/active", handlers.GetActiveFiscalYear)
	fiscalYears.GET("/:id", handlers.GetFiscalYear)
	fiscalYears.PUT("/:id", handlers.UpdateFiscalYear)
	fiscalYears.DELETE("/:id", handlers.DeleteFiscalYear)

	chart := api.Group("/chart-accounts")
	chart.POST("", handlers.CreateChartAccount)
	chart.POST("/seed", handlers.SeedChartOfAccounts)
	chart.GET("/tree", handlers.GetChartTree)
	chart.GET("/children", handlers.GetChartChildren)
	chart.GET("/:id", handlers.GetChartAccount)
	chart.PUT("/:id", handlers.UpdateChartAccount)
	chart.DELETE("/:id", handlers.DeleteChartAccount)

	journals := api.Group("/journal-entries")
	journals.POST("", handlers.CreateJournalEntry)
	journals.GET("", handlers.GetJournalEntries)
	journals.GET("/:id", handlers.GetJournalEntry)
	journals.PUT("/:id", handlers.UpdateJournalEntry)
	journals.POST("/:id/post", handlers.PostJournalEntry)
	journals.DELETE("/:id", handlers.DeleteJournalEntry)

	ledger := api.Group("/ledger")
	ledger.GET("/turnover", handlers.GetAccountTurnover)
	ledger.GET("/opening-balance", handlers.GetOpeningBalance)

	reports := api.Group("/reports")
	reports.GET("/trial-balance", handlers.GetTrialBalance)
	reports.GET("/trial-balance/export", handlers.ExportTrialBalance)
	reports.GET("/balance-sheet", handlers.GetBalanceSheet)
	reports.GET("/profit-and-loss", handlers.GetProfitAndLoss)

	invoices := api.Group("/invoices")
	invoices.POST("", handlers.CreateInvoice)
	invoices.GET("", handlers.GetInvoices)
	invoices.GET("/next-number", handlers.GetNextInvoiceNumber)
	invoices.GET("/:id", handlers.GetInvoice)
	invoices.PUT("/:id", handlers.UpdateInvoice)
	invoices.PUT("/:id/lines", handlers.SaveInvoiceLines)
	invoices.POST("/:id/confirm", handlers.ConfirmInvoice)
	invoices.DELETE("/:id", handlers.DeleteInvoice)

	vouchers := api.Group("/vouchers")
	vouchers.POST("", handlers.CreateReceiptVoucher)
	vouchers.GET("", handlers.GetReceiptVouchers)
	vouchers.GET("/:id", handlers.GetReceiptVoucher)
	vouchers.PUT("/:id", handlers.UpdateReceiptVoucher)
	vouchers.POST("/:id/post", handlers.PostReceiptVoucher)
	vouchers.DELETE("/:id", handlers.DeleteReceiptVoucher)

	checks := api.Group("/checks")
	checks.POST("", handlers.CreateCheck)
	checks.GET("", handlers.GetChecks)
	checks.GET("/:id", handlers.GetCheck)
	checks.PUT("/:id", handlers.UpdateCheck)
	checks.PUT("/:id/status", handlers.SetCheckStatus)
	checks.DELETE("/:id", handlers.DeleteCheck)

	cashAccounts := api.Group("/cash-accounts")
	cashAccounts.POST("", handlers.CreateCashAccount)
	cashAccounts.GET("", handlers.GetCashAccounts)
	cashAccounts.GET("/:id", handlers.GetCashAccount)
	cashAccounts.PUT("/:id", handlers.UpdateCashAccount)
	cashAccounts.DELETE("/:id", handlers.DeleteCashAccount)

	persons := api.Group("/persons")
	persons.POST("", handlers.CreatePerson)
	persons.GET("", handlers.GetPersons)
	persons.GET("/:id", handlers.GetPerson)
	persons.PUT("/:id", handlers.UpdatePerson)
	persons.DELETE("/:id", handlers.DeletePerson)

	personCategories := api.Group("/person-categories")
	personCategories.POST("", handlers.CreatePersonCategory)
	personCategories.GET("", handlers.GetPersonCategories)
	personCategories.PUT("/:id", handlers.UpdatePersonCategory)
	personCategories.DELETE("/:id", handlers.DeletePersonCategory)

	products := api.Group("/products")
	products.POST("", handlers.CreateProduct)
	products.GET("", handlers.GetProducts)
	products.GET("/:id", handlers.GetProduct)
	products.PUT("/:id", handlers.UpdateProduct)
	products.DELETE("/:id", handlers.DeleteProduct)

	productCategories := api.Group("/product-categories")
	productCategories.POST("", handlers.CreateProductCategory)
	productCategories.GET("", handlers.GetProductCategories)
	productCategories.PUT("/:id", handlers.UpdateProductCategory)
	productCategories.DELETE("/:id", handlers.DeleteProductCategory)

	units := api.Group("/units")
	units.POST("", handlers.CreateUnit)
	units.GET("", handlers.GetUnits)
	units.PUT("/:id", handlers.UpdateUnit)
	units.DELETE("/:id", handlers.DeleteUnit)

	priceLists := api.Group("/price-lists")
	priceLists.POST("", handlers.CreatePriceList)
	priceLists.GET("", handlers.GetPriceLists)
	priceLists.GET("/:id", handlers.GetPriceList)
	priceLists.PUT("/:id", handlers.UpdatePriceList)
	priceLists.DELETE("/:id", handlers.DeletePriceList)

	userDefaults := api.Group("/user-defaults")
	userDefaults.GET("", handlers.GetUserDefaults)
	userDefaults.PUT("", handlers.SaveUserDefaults)
}
