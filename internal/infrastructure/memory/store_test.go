package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store: asignación de IDs y orden
// ──────────────────────────────────────────────────────────────────────────────

// Un alta con ID 0 recibe el siguiente ID secuencial y se añade al final.
func TestStore_UpsertCategoria_AsignaIDSecuencial(t *testing.T) {
	store := memory.NewStore()
	store.Seed()

	nueva := store.UpsertCategory(entity.Category{Nombre: "Sopas", CompanyID: "empresa-001"})
	assert.Equal(t, int64(4), nueva.ID, "el seed termina en ID 3; la siguiente debe ser 4")

	cats := store.Categories()
	require.Len(t, cats, 4)
	assert.Equal(t, "Sopas", cats[3].Nombre, "el alta va al final, sin reordenar")
}

// Un upsert de un ID existente reemplaza el registro conservando su posición.
func TestStore_UpsertCategoria_ConservaPosicion(t *testing.T) {
	store := memory.NewStore()
	store.Seed()

	store.UpsertCategory(entity.Category{ID: 2, Nombre: "Bebidas Frías", CompanyID: "empresa-001"})

	cats := store.Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, "Bebidas Frías", cats[1].Nombre, "el registro actualizado mantiene su posición")
	assert.Equal(t, "Entradas", cats[0].Nombre)
	assert.Equal(t, "Postres", cats[2].Nombre)
}

// Las lecturas devuelven copias: mutar el resultado no altera el Store.
func TestStore_Lecturas_DevuelvenCopias(t *testing.T) {
	store := memory.NewStore()
	store.Seed()

	cats := store.Categories()
	cats[0].Nombre = "Hackeada"
	*cats[0].Descripcion = "mutada desde fuera"

	fresh := store.Categories()
	assert.Equal(t, "Entradas", fresh[0].Nombre, "el Store no debe verse afectado por mutaciones externas")
	assert.Equal(t, "Para abrir el apetito", *fresh[0].Descripcion, "los punteros internos también se copian")

	prods := store.Products()
	prods[1].MenuIDs[0] = "menu-falso"
	assert.Equal(t, "menu-desayunos", store.Products()[1].MenuIDs[0], "los slices internos también se copian")
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria: semántica de los puertos
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar dos veces el mismo ID: el primero funciona, el segundo es ErrNotFound.
func TestCategoryRepo_Delete_NoEsIdempotente(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	repo := memory.NewCategoryRepository(store)

	require.NoError(t, repo.Delete(2))
	err := repo.Delete(2)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el segundo delete del mismo ID debe fallar")
}

// Update de un ID inexistente devuelve ErrNotFound sin crear el registro.
func TestCategoryRepo_Update_IDInexistente(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	repo := memory.NewCategoryRepository(store)

	err := repo.Update(&entity.Category{ID: 999, Nombre: "Fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, store.Categories(), 3, "el update fallido no debe insertar nada")
}

// GetByID sin resultado devuelve (nil, nil), igual que el adaptador de PostgreSQL.
func TestCategoryRepo_GetByID_SinResultado(t *testing.T) {
	repo := memory.NewCategoryRepository(memory.NewStore())

	cat, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, cat)
}

// List con empresa filtra en la fuente de datos.
func TestCategoryRepo_List_FiltraPorEmpresa(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	repo := memory.NewCategoryRepository(store)

	list, err := repo.List("empresa-002")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Postres", list[0].Nombre)

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3, "companyID vacío devuelve todas")
}

// Username duplicado dentro de la misma empresa produce ErrDuplicate.
func TestUserRepo_Create_UsernameDuplicado(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	repo := memory.NewUserRepository(store)

	err := repo.Create(&entity.User{
		ID:        "user-nuevo",
		Username:  "admin@saboresdelmar.com",
		CompanyID: "empresa-001",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard: conteos derivados
// ──────────────────────────────────────────────────────────────────────────────

// Los conteos se recalculan en cada lectura, nunca se cachean.
func TestDashboardRepo_Counts_SeRecalculan(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	repo := memory.NewDashboardRepository(store)

	counts, err := repo.Counts("")
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Companies)
	assert.Equal(t, 3, counts.Menus)
	assert.Equal(t, 3, counts.Categories)
	assert.Equal(t, 3, counts.Products)

	store.UpsertProduct(entity.Product{
		Name:       "Nuevo",
		Price:      decimal.NewFromInt(5),
		CategoryID: 1,
		CompanyID:  "empresa-001",
		CreatedAt:  time.Now(),
	})

	counts, err = repo.Counts("")
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Products, "el conteo refleja el alta inmediatamente")
}

// Counts con empresa limita todos los totales a esa empresa.
func TestDashboardRepo_Counts_PorEmpresa(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	repo := memory.NewDashboardRepository(store)

	counts, err := repo.Counts("empresa-002")
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Menus)
	assert.Equal(t, 1, counts.Categories)
	assert.Equal(t, 1, counts.Products)
}
