package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/models"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
)

// Each test opens its own named in-memory database so state never leaks
// between tests.
func setupTest(t *testing.T, name string) context.Context {
	t.Helper()
	if err := config.ConnectTestDatabase(name); err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := models.MigrateTable(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx := utils.SetUserIdInContext(context.Background(), 1)
	ctx = utils.SetUsernameInContext(ctx, "tester")
	return ctx
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func createActiveYear(t *testing.T, ctx context.Context, name string) *models.FiscalYear {
	t.Helper()
	year, err := models.CreateFiscalYear(ctx, &models.NewFiscalYear{
		Name:      name,
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 12, 31),
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create fiscal year %q: %v", name, err)
	}
	return year
}

func seedChart(t *testing.T, ctx context.Context, fiscalYearId int) {
	t.Helper()
	if _, err := models.SeedChartOfAccounts(ctx, fiscalYearId); err != nil {
		t.Fatalf("seed chart: %v", err)
	}
}

func accountByCode(t *testing.T, ctx context.Context, fiscalYearId int, code string) *models.ChartAccount {
	t.Helper()
	accounts, err := models.GetChartTree(ctx, fiscalYearId)
	if err != nil {
		t.Fatalf("get chart tree: %v", err)
	}
	for _, a := range accounts {
		if a.Code == code {
			return a
		}
	}
	t.Fatalf("account %q not found in fiscal year %d", code, fiscalYearId)
	return nil
}

func assertKind(t *testing.T, err error, want utils.FailureKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s failure, got nil", want)
	}
	kind, ok := utils.KindOf(err)
	if !ok {
		t.Fatalf("expected %s failure, got untyped error: %v", want, err)
	}
	if kind != want {
		t.Fatalf("expected %s failure, got %s: %v", want, kind, err)
	}
}

func createPerson(t *testing.T, ctx context.Context, code string) *models.Person {
	t.Helper()
	person, err := models.CreatePerson(ctx, &models.NewPerson{
		Name:       "Person " + code,
		Code:       code,
		PersonType: models.PersonTypeCustomer,
	})
	if err != nil {
		t.Fatalf("create person %q: %v", code, err)
	}
	return person
}

func createUnit(t *testing.T, ctx context.Context, name string) *models.Unit {
	t.Helper()
	unit, err := models.CreateUnit(ctx, &models.NewUnit{Name: name, IsMain: true})
	if err != nil {
		t.Fatalf("create unit %q: %v", name, err)
	}
	return unit
}

func createProduct(t *testing.T, ctx context.Context, code string, unitId int) *models.Product {
	t.Helper()
	product, err := models.CreateProduct(ctx, &models.NewProduct{
		Code:       code,
		Name:       "Product " + code,
		MainUnitId: unitId,
	})
	if err != nil {
		t.Fatalf("create product %q: %v", code, err)
	}
	return product
}

func createCashAccount(t *testing.T, ctx context.Context, name string) *models.CashAccount {
	t.Helper()
	account, err := models.CreateCashAccount(ctx, &models.NewCashAccount{
		Name: name,
		Type: models.CashAccountTypeBank,
	})
	if err != nil {
		t.Fatalf("create cash account %q: %v", name, err)
	}
	return account
}
