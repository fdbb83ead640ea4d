package sales_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-demo/internal/application/dto"
	"github.com/jhoicas/panaderia-demo/internal/application/sales"
	"github.com/jhoicas/panaderia-demo/internal/domain"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// cashierStub resuelve siempre el mismo cajero.
type cashierStub struct{ id int64 }

func (c cashierStub) CurrentCashierID() int64 { return c.id }

type testEnv struct {
	products *localstore.ProductRepository
	sales    *localstore.SaleRepository
	uc       *sales.UseCase
}

// newTestEnv arma el caso de uso sobre un almacén real en un directorio
// temporal, con el catálogo indicado ya sembrado.
func newTestEnv(t *testing.T, catalog []entity.Product) testEnv {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	productRepo := localstore.NewProductRepository(store)
	saleRepo := localstore.NewSaleRepository(store)
	require.NoError(t, productRepo.Replace(catalog))

	return testEnv{
		products: productRepo,
		sales:    saleRepo,
		uc:       sales.NewUseCase(store, productRepo, saleRepo, cashierStub{id: 7}),
	}
}

func testCatalog(now time.Time) []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Pan campesino", PriceCents: 350, Quantity: 5, Category: entity.CategoryBread, Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Croissant", PriceCents: 280, Quantity: 10, Category: entity.CategoryBread, Active: true, CreatedAt: now, UpdatedAt: now},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Venta de 2 unidades a 350 con descuento 100: subtotal 700, total 600,
// paid igual al total y el stock baja de 5 a 3.
func TestCreate_VentaValidaDescuentaStock(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	out, err := env.uc.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: 1, Quantity: 2}},
		DiscountCents: 100,
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(1), out.ID, "primera venta debe tener id 1")
	assert.Equal(t, int64(7), out.CashierID)
	assert.Equal(t, int64(600), out.TotalCents)
	assert.Equal(t, int64(600), out.PaidCents, "paid siempre igual al total")
	assert.Equal(t, int64(100), out.DiscountCents)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].ID, "ids de ítem base 1")
	assert.Equal(t, int64(350), out.Items[0].UnitPriceCents, "precio congelado al momento de la venta")
	assert.Equal(t, int64(700), out.Items[0].SubtotalCents)

	assert.True(t, strings.HasPrefix(out.ReceiptCode, "PAN-"))
	assert.Len(t, out.ReceiptCode, len("PAN-")+6)

	p := env.products.GetByID(1)
	require.NotNil(t, p)
	assert.Equal(t, int64(3), p.Quantity, "stock descontado tras la venta")
}

// Si una línea pide más de lo disponible, no se escribe nada: ni la venta
// ni el descuento de stock de las líneas válidas.
func TestCreate_StockInsuficienteNoEscribeNada(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	_, err := env.uc.Create(dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: 2, Quantity: 1}, // válida
			{ProductID: 1, Quantity: 6}, // stock es 5
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, env.sales.List(), "no debe quedar venta parcial")
	assert.Equal(t, int64(5), env.products.GetByID(1).Quantity)
	assert.Equal(t, int64(10), env.products.GetByID(2).Quantity, "la línea válida tampoco se aplica")
}

func TestCreate_ProductoInexistente(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	_, err := env.uc.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: 99, Quantity: 1}},
		PaymentMethod: entity.PaymentCard,
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, env.sales.List())
}

// Dos líneas sobre el mismo producto consumen el stock de forma acumulada:
// 3 + 3 sobre stock 5 debe rechazarse aunque cada línea por sí sola quepa.
func TestCreate_LineasRepetidasConsumenAcumulado(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	_, err := env.uc.Create(dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: 1, Quantity: 3},
			{ProductID: 1, Quantity: 3},
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), env.products.GetByID(1).Quantity)
}

// El descuento nunca deja el total negativo.
func TestCreate_DescuentoMayorQueLaSuma(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	out, err := env.uc.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: 2, Quantity: 1}},
		DiscountCents: 10_000,
		PaymentMethod: entity.PaymentTransfer,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalCents)
	assert.Equal(t, int64(0), out.PaidCents)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	cases := map[string]dto.CreateSaleRequest{
		"sin líneas":          {PaymentMethod: entity.PaymentCash},
		"descuento negativo":  {Items: []dto.SaleLineRequest{{ProductID: 1, Quantity: 1}}, DiscountCents: -1, PaymentMethod: entity.PaymentCash},
		"método desconocido":  {Items: []dto.SaleLineRequest{{ProductID: 1, Quantity: 1}}, PaymentMethod: "bitcoin"},
		"cantidad cero":       {Items: []dto.SaleLineRequest{{ProductID: 1, Quantity: 0}}, PaymentMethod: entity.PaymentCash},
		"cantidad negativa":   {Items: []dto.SaleLineRequest{{ProductID: 1, Quantity: -2}}, PaymentMethod: entity.PaymentCash},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.uc.Create(in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, env.sales.List())
}

// Ids de venta monotónicos e ids de ítem secuenciales en orden de entrada.
func TestCreate_IdsSecuenciales(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	first, err := env.uc.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: 1, Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	second, err := env.uc.Create(dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: 2, Quantity: 1},
			{ProductID: 1, Quantity: 1},
		},
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	require.Len(t, second.Items, 2)
	assert.Equal(t, int64(1), second.Items[0].ID)
	assert.Equal(t, int64(2), second.Items[1].ID)
	assert.Equal(t, int64(2), second.Items[0].ProductID, "ítems en orden de entrada")
}

// Los observadores se notifican después del commit, con la venta completa.
func TestCreate_NotificaObservadores(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	var got []entity.Sale
	env.uc.Subscribe(func(s entity.Sale) {
		got = append(got, s)
	})

	out, err := env.uc.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: 1, Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, out.ID, got[0].ID)
	assert.Equal(t, out.ReceiptCode, got[0].ReceiptCode)
}

// Una venta fallida no debe notificar a nadie.
func TestCreate_FallaNoNotifica(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	notified := false
	env.uc.Subscribe(func(entity.Sale) { notified = true })

	_, err := env.uc.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: 1, Quantity: 99}},
		PaymentMethod: entity.PaymentCash,
	})
	require.Error(t, err)
	assert.False(t, notified)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_VentaInexistente(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))
	assert.Nil(t, env.uc.GetByID(42))
}

func TestList_DevuelveVentasRegistradas(t *testing.T) {
	env := newTestEnv(t, testCatalog(time.Now()))

	_, err := env.uc.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: 1, Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	list := env.uc.List()
	require.Len(t, list, 1)
	assert.NotNil(t, env.uc.GetByID(list[0].ID))
}
