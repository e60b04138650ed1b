package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/application/usecase"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/infrastructure/memory"
)

func ptr(s string) *string { return &s }

func newCategoryUC(t *testing.T) (*usecase.CategoryUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	return usecase.NewCategoryUseCase(memory.NewCategoryRepository(store)), store
}

// Crear con solo el nombre: la descripción queda nil y el ID lo asigna la fuente.
func TestCategoryUseCase_Create_SoloNombre(t *testing.T) {
	uc, _ := newCategoryUC(t)

	out, err := uc.Create("empresa-001", dto.CategoryPayload{Nombre: "Bebidas Calientes"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.ID)
	assert.Equal(t, "Bebidas Calientes", out.Nombre)
	assert.Nil(t, out.Descripcion)
	require.NotNil(t, out.CreatedAt)
}

// El nombre se recorta y una descripción en blanco se normaliza a nil.
func TestCategoryUseCase_Create_NormalizaEntrada(t *testing.T) {
	uc, _ := newCategoryUC(t)

	out, err := uc.Create("empresa-001", dto.CategoryPayload{
		Nombre:      "  Sopas  ",
		Descripcion: ptr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sopas", out.Nombre)
	assert.Nil(t, out.Descripcion, "descripción en blanco equivale a ausente")
}

// Nombre vacío o demasiado largo: ErrValidation, sin tocar la fuente de datos.
func TestCategoryUseCase_Create_NombreInvalido(t *testing.T) {
	uc, store := newCategoryUC(t)

	_, err := uc.Create("empresa-001", dto.CategoryPayload{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	largo := make([]byte, 101)
	for i := range largo {
		largo[i] = 'x'
	}
	_, err = uc.Create("empresa-001", dto.CategoryPayload{Nombre: string(largo)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Len(t, store.Categories(), 3, "las altas inválidas no deben persistir")
}

// Update reemplaza el registro completo: si no viene descripción, se pierde la anterior.
func TestCategoryUseCase_Update_ReemplazoCompleto(t *testing.T) {
	uc, _ := newCategoryUC(t)

	out, err := uc.Update(1, dto.CategoryPayload{Nombre: "Entradas Frías"})
	require.NoError(t, err)
	assert.Equal(t, "Entradas Frías", out.Nombre)
	assert.Nil(t, out.Descripcion, "el update no hace merge: la descripción anterior se descarta")
}

// Update de un ID inexistente devuelve ErrNotFound.
func TestCategoryUseCase_Update_IDInexistente(t *testing.T) {
	uc, _ := newCategoryUC(t)

	_, err := uc.Update(999, dto.CategoryPayload{Nombre: "Fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La validación de entrada corre antes de consultar la fuente de datos.
func TestCategoryUseCase_Update_ValidaAntesDeBuscar(t *testing.T) {
	uc, _ := newCategoryUC(t)

	_, err := uc.Update(999, dto.CategoryPayload{Nombre: ""})
	assert.ErrorIs(t, err, domain.ErrValidation, "con nombre inválido gana la validación, no el not found")
}

// Delete no es idempotente: repetirlo produce ErrNotFound.
func TestCategoryUseCase_Delete_SegundaVezFalla(t *testing.T) {
	uc, _ := newCategoryUC(t)

	require.NoError(t, uc.Delete(3))
	assert.ErrorIs(t, uc.Delete(3), domain.ErrNotFound)
}

// List con empresa aplica el filtro en la fuente de datos.
func TestCategoryUseCase_List_PorEmpresa(t *testing.T) {
	uc, _ := newCategoryUC(t)

	items, err := uc.List("empresa-001")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Entradas", items[0].Nombre)
	assert.Equal(t, "Bebidas", items[1].Nombre)
}
