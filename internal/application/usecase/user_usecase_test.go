package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/application/usecase"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/infrastructure/memory"
)

func newUserUC(t *testing.T) (*usecase.UserUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	return usecase.NewUserUseCase(memory.NewUserRepository(store)), store
}

func validUserPayload() dto.UserPayload {
	return dto.UserPayload{
		Username:  "mesero@saboresdelmar.com",
		FullName:  "Mesero Uno",
		Role:      "USER",
		CompanyID: "empresa-001",
		Active:    true,
		Password:  "secreto123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla de contraseñas: obligatoria al crear, opcional al actualizar
// ──────────────────────────────────────────────────────────────────────────────

// Crear sin contraseña (o con una corta) es inválido.
func TestUserUseCase_Create_ContrasenaObligatoria(t *testing.T) {
	uc, _ := newUserUC(t)

	in := validUserPayload()
	in.Password = ""
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in.Password = "corta1"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrValidation, "menos de 8 caracteres no pasa")
}

// Crear con contraseña válida: se persiste el hash bcrypt, nunca el texto plano.
func TestUserUseCase_Create_GuardaHashBcrypt(t *testing.T) {
	uc, store := newUserUC(t)

	out, err := uc.Create(validUserPayload())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)

	var hash string
	for _, u := range store.Users() {
		if u.ID == out.ID {
			hash = u.PasswordHash
		}
	}
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secreto123", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secreto123")))
}

// Actualizar con contraseña vacía conserva el hash anterior.
func TestUserUseCase_Update_ContrasenaVaciaConservaHash(t *testing.T) {
	uc, store := newUserUC(t)

	created, err := uc.Create(validUserPayload())
	require.NoError(t, err)

	hashBefore := findHash(store, created.ID)

	in := validUserPayload()
	in.FullName = "Mesero Renombrado"
	in.Password = ""
	out, err := uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Mesero Renombrado", out.FullName)
	assert.Equal(t, hashBefore, findHash(store, created.ID), "sin contraseña nueva, el hash no cambia")
}

// Actualizar con contraseña nueva válida reemplaza el hash.
func TestUserUseCase_Update_ContrasenaNuevaReemplazaHash(t *testing.T) {
	uc, store := newUserUC(t)

	created, err := uc.Create(validUserPayload())
	require.NoError(t, err)
	hashBefore := findHash(store, created.ID)

	in := validUserPayload()
	in.Password = "nuevaclave99"
	_, err = uc.Update(created.ID, in)
	require.NoError(t, err)

	hashAfter := findHash(store, created.ID)
	assert.NotEqual(t, hashBefore, hashAfter)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashAfter), []byte("nuevaclave99")))
}

// Actualizar con contraseña corta es inválido aunque sea opcional.
func TestUserUseCase_Update_ContrasenaCortaFalla(t *testing.T) {
	uc, _ := newUserUC(t)

	created, err := uc.Create(validUserPayload())
	require.NoError(t, err)

	in := validUserPayload()
	in.Password = "corta1"
	_, err = uc.Update(created.ID, in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Otras reglas
// ──────────────────────────────────────────────────────────────────────────────

// Rol desconocido es inválido.
func TestUserUseCase_Create_RolInvalido(t *testing.T) {
	uc, _ := newUserUC(t)

	in := validUserPayload()
	in.Role = "SUPERADMIN"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Username repetido dentro de la misma empresa produce ErrDuplicate.
func TestUserUseCase_Create_UsernameDuplicado(t *testing.T) {
	uc, _ := newUserUC(t)

	in := validUserPayload()
	in.Username = "admin@saboresdelmar.com"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Las respuestas nunca exponen contraseña ni hash.
func TestUserUseCase_RespuestaSinContrasena(t *testing.T) {
	uc, _ := newUserUC(t)

	out, err := uc.Create(validUserPayload())
	require.NoError(t, err)

	// El DTO de salida ni siquiera tiene el campo; verificamos los valores visibles.
	assert.Equal(t, "mesero@saboresdelmar.com", out.Username)
	assert.Equal(t, "USER", out.Role)
}

func findHash(store *memory.Store, id string) string {
	for _, u := range store.Users() {
		if u.ID == id {
			return u.PasswordHash
		}
	}
	return ""
}
