package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
	"github.com/jhoicas/tamaleria-api/internal/application/usecase"
	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/testutil"
)

func newProductEnv() (*usecase.ProductUseCase, *testutil.ProductRepo) {
	repo := testutil.NewProductRepo()
	return usecase.NewProductUseCase(repo), repo
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_Create_NombreYPrecioRequeridos(t *testing.T) {
	uc, repo := newProductEnv()

	casos := map[string]dto.CreateProductRequest{
		"sin nombre":      {Price: dec(25)},
		"sin precio":      {Name: "Tamal rojo"},
		"precio negativo": {Name: "Tamal rojo", Price: dec(-1)},
	}
	for nombre, in := range casos {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
	}
	assert.Empty(t, repo.Products)
}

func TestProduct_Create_PrecioCeroEsValido(t *testing.T) {
	uc, _ := newProductEnv()

	out, err := uc.Create(dto.CreateProductRequest{Name: "Degustación", Price: dec(0)})
	require.NoError(t, err)
	assert.True(t, out.Price.IsZero())
}

func TestProduct_Create_ConCategoria(t *testing.T) {
	uc, _ := newProductEnv()

	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Champurrado", Price: dec(20), Category: str("Bebidas"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Category)
	assert.Equal(t, "Bebidas", *out.Category)
	assert.NotEmpty(t, out.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_List_OrdenAlfabetico(t *testing.T) {
	uc, _ := newProductEnv()

	for _, nombre := range []string{"Tamal verde", "Atole", "Champurrado"} {
		_, err := uc.Create(dto.CreateProductRequest{Name: nombre, Price: dec(20)})
		require.NoError(t, err)
	}

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Atole", out[0].Name)
	assert.Equal(t, "Champurrado", out[1].Name)
	assert.Equal(t, "Tamal verde", out[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_Update_CamposParciales(t *testing.T) {
	uc, _ := newProductEnv()

	creado, err := uc.Create(dto.CreateProductRequest{Name: "Tamal rojo", Price: dec(25)})
	require.NoError(t, err)

	out, err := uc.Update(creado.ID, dto.UpdateProductRequest{Price: dec(28)})
	require.NoError(t, err)
	assert.Equal(t, "Tamal rojo", out.Name, "el nombre no cambia si no se envía")
	assert.True(t, decimal.NewFromInt(28).Equal(out.Price))
}

func TestProduct_Update_ProductoInexistenteDevuelveNil(t *testing.T) {
	uc, _ := newProductEnv()

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Price: dec(28)})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProduct_Update_ValoresInvalidos(t *testing.T) {
	uc, _ := newProductEnv()

	creado, err := uc.Create(dto.CreateProductRequest{Name: "Tamal rojo", Price: dec(25)})
	require.NoError(t, err)

	_, err = uc.Update(creado.ID, dto.UpdateProductRequest{Name: str("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Update(creado.ID, dto.UpdateProductRequest{Price: dec(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_Delete_EliminaDelCatalogo(t *testing.T) {
	uc, repo := newProductEnv()

	creado, err := uc.Create(dto.CreateProductRequest{Name: "Tamal rojo", Price: dec(25)})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creado.ID))
	assert.Empty(t, repo.Products)
}

func TestProduct_Delete_ProductoInexistente(t *testing.T) {
	uc, _ := newProductEnv()
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
