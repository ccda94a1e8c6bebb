package reconcile_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tamaleria-api/internal/application/reconcile"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/testutil"
)

var costoUnitario = decimal.NewFromInt(22)

func dia(d int) time.Time {
	return time.Date(2026, 3, d, 10, 0, 0, 0, time.Local)
}

func repos() (*testutil.ProductionRepo, *testutil.SaleRepo, *testutil.CashRegisterRepo) {
	products := testutil.NewProductRepo()
	return testutil.NewProductionRepo(), testutil.NewSaleRepo(products), testutil.NewCashRegisterRepo()
}

func addProduction(t *testing.T, repo *testutil.ProductionRepo, variety string, qty int, day time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.ProductionEntry{
		ID: variety + day.Format("2006-01-02"), Variety: variety, Quantity: qty, Date: day,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estrategia production: esperado = producción total × costo unitario
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_EstrategiaProduction_ActualizaSnapshot(t *testing.T) {
	prodRepo, saleRepo, registerRepo := repos()
	addProduction(t, prodRepo, entity.VarietyRojo, 30, dia(15))
	addProduction(t, prodRepo, entity.VarietyVerde, 20, dia(15))

	require.NoError(t, registerRepo.Create(&entity.CashRegister{ID: "corte-1", Date: dia(15)}))

	svc := reconcile.NewService(reconcile.ProductionStrategy{UnitCost: costoUnitario})
	require.NoError(t, svc.Reconcile(prodRepo, saleRepo, registerRepo, dia(15)))

	register, err := registerRepo.GetByID("corte-1")
	require.NoError(t, err)
	assert.Equal(t, 50, register.TotalProduction)
	assert.True(t, decimal.NewFromInt(1100).Equal(register.ExpectedAmount),
		"esperado = 50 × 22 = 1100, fue %s", register.ExpectedAmount)
}

func TestReconcile_SinCorteDelDia_NoEscribeNada(t *testing.T) {
	prodRepo, saleRepo, registerRepo := repos()
	addProduction(t, prodRepo, entity.VarietyRojo, 30, dia(15))

	// corte de otro día: no debe tocarse
	require.NoError(t, registerRepo.Create(&entity.CashRegister{ID: "corte-otro", Date: dia(14), TotalProduction: 99}))

	svc := reconcile.NewService(reconcile.ProductionStrategy{UnitCost: costoUnitario})
	require.NoError(t, svc.Reconcile(prodRepo, saleRepo, registerRepo, dia(15)))

	otro, err := registerRepo.GetByID("corte-otro")
	require.NoError(t, err)
	assert.Equal(t, 99, otro.TotalProduction, "el corte de otro día debe quedar intacto")
}

func TestReconcile_DiaSinProduccion_SnapshotEnCero(t *testing.T) {
	prodRepo, saleRepo, registerRepo := repos()
	require.NoError(t, registerRepo.Create(&entity.CashRegister{
		ID: "corte-1", Date: dia(15), TotalProduction: 40, ExpectedAmount: decimal.NewFromInt(880),
	}))

	svc := reconcile.NewService(reconcile.ProductionStrategy{UnitCost: costoUnitario})
	require.NoError(t, svc.Reconcile(prodRepo, saleRepo, registerRepo, dia(15)))

	register, _ := registerRepo.GetByID("corte-1")
	assert.Equal(t, 0, register.TotalProduction)
	assert.True(t, register.ExpectedAmount.IsZero(), "sin producción el esperado es cero")
}

func TestReconcile_EsIdempotente(t *testing.T) {
	prodRepo, saleRepo, registerRepo := repos()
	addProduction(t, prodRepo, entity.VarietyDulce, 12, dia(15))
	require.NoError(t, registerRepo.Create(&entity.CashRegister{ID: "corte-1", Date: dia(15)}))

	svc := reconcile.NewService(reconcile.ProductionStrategy{UnitCost: costoUnitario})
	require.NoError(t, svc.Reconcile(prodRepo, saleRepo, registerRepo, dia(15)))
	require.NoError(t, svc.Reconcile(prodRepo, saleRepo, registerRepo, dia(15)))

	register, _ := registerRepo.GetByID("corte-1")
	assert.Equal(t, 12, register.TotalProduction)
	assert.True(t, decimal.NewFromInt(264).Equal(register.ExpectedAmount))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estrategia sales: esperado = Σ(precio × cantidad) de las ventas del día
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_EstrategiaSales_SumaVentasDelDia(t *testing.T) {
	prodRepo, saleRepo, registerRepo := repos()
	addProduction(t, prodRepo, entity.VarietyRojo, 30, dia(15))

	precio := decimal.NewFromInt(25)
	require.NoError(t, saleRepo.Products.Create(&entity.Product{ID: "p1", Name: "Tamal rojo", Price: precio}))
	require.NoError(t, saleRepo.Create(&entity.SaleEntry{ID: "v1", ProductID: "p1", Quantity: 4, Date: dia(15)}))
	require.NoError(t, saleRepo.Create(&entity.SaleEntry{ID: "v2", ProductID: "p1", Quantity: 2, Date: dia(15)}))
	// venta de otro día: fuera del corte
	require.NoError(t, saleRepo.Create(&entity.SaleEntry{ID: "v3", ProductID: "p1", Quantity: 10, Date: dia(14)}))

	require.NoError(t, registerRepo.Create(&entity.CashRegister{ID: "corte-1", Date: dia(15)}))

	svc := reconcile.NewService(reconcile.SalesStrategy{})
	require.NoError(t, svc.Reconcile(prodRepo, saleRepo, registerRepo, dia(15)))

	register, _ := registerRepo.GetByID("corte-1")
	assert.Equal(t, 30, register.TotalProduction, "la producción total se recalcula con cualquier estrategia")
	assert.True(t, decimal.NewFromInt(150).Equal(register.ExpectedAmount),
		"esperado = (4+2) × 25 = 150, fue %s", register.ExpectedAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección de estrategia
// ──────────────────────────────────────────────────────────────────────────────

func TestNewStrategy_ResuelvePorNombre(t *testing.T) {
	prod, err := reconcile.NewStrategy(reconcile.StrategyProduction, costoUnitario)
	require.NoError(t, err)
	assert.Equal(t, "production", prod.Name())

	sales, err := reconcile.NewStrategy(reconcile.StrategySales, costoUnitario)
	require.NoError(t, err)
	assert.Equal(t, "sales", sales.Name())
}

func TestNewStrategy_NombreDesconocidoEsError(t *testing.T) {
	for _, nombre := range []string{"", "ventas", "PRODUCTION", "hybrid"} {
		_, err := reconcile.NewStrategy(nombre, costoUnitario)
		assert.Error(t, err, "el nombre %q debe rechazarse", nombre)
	}
}

func TestProductionStrategy_MontoEsProduccionPorCosto(t *testing.T) {
	s := reconcile.ProductionStrategy{UnitCost: costoUnitario}
	got, err := s.ExpectedAmount(nil, dia(15), 80)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1760).Equal(got), "80 × 22 = 1760, fue %s", got)
}
