package adminclient_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bm16036/TestQRMenuDigital/internal/adminclient"
	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/infrastructure/memory"
)

func newMockSession(t *testing.T) (*adminclient.SessionManager, *adminclient.MemoryStorage) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	storage := adminclient.NewMemoryStorage()
	client := adminclient.NewClient("http://localhost:0")
	return adminclient.NewMockSessionManager(client, storage, store), storage
}

func adminLogin() dto.LoginRequest {
	return dto.LoginRequest{
		Username:  "admin@saboresdelmar.com",
		Password:  memory.DevPassword,
		CompanyID: "empresa-001",
	}
}

// Login en modo mock: acepta la contraseña de desarrollo y persiste las dos claves.
func TestSession_LoginMock_PersisteSesion(t *testing.T) {
	session, storage := newMockSession(t)

	require.NoError(t, session.Login(adminLogin()))
	assert.True(t, session.Authenticated())
	require.NotNil(t, session.User())
	assert.Equal(t, "admin@saboresdelmar.com", session.User().Username)

	token, err := storage.Get(adminclient.StorageKeyToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	rawUser, err := storage.Get(adminclient.StorageKeyUser)
	require.NoError(t, err)
	assert.Contains(t, rawUser, "admin@saboresdelmar.com")
	assert.NotContains(t, rawUser, memory.DevPassword, "la contraseña nunca se persiste")
}

// Credenciales que no coinciden (cualquier campo) → ErrInvalidCredentials.
func TestSession_LoginMock_CredencialesInvalidas(t *testing.T) {
	session, storage := newMockSession(t)

	casos := map[string]dto.LoginRequest{
		"contraseña distinta a la de desarrollo": {
			Username: "admin@saboresdelmar.com", Password: "otra", CompanyID: "empresa-001",
		},
		"empresa equivocada": {
			Username: "admin@saboresdelmar.com", Password: memory.DevPassword, CompanyID: "empresa-002",
		},
		"usuario inexistente": {
			Username: "nadie@saboresdelmar.com", Password: memory.DevPassword, CompanyID: "empresa-001",
		},
	}
	for nombre, in := range casos {
		t.Run(nombre, func(t *testing.T) {
			err := session.Login(in)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.False(t, session.Authenticated())

			token, _ := storage.Get(adminclient.StorageKeyToken)
			assert.Empty(t, token, "un login fallido no deja rastro en storage")
		})
	}
}

// Restore reconstruye la sesión persistida.
func TestSession_Restore(t *testing.T) {
	store := memory.NewStore()
	store.Seed()
	storage := adminclient.NewMemoryStorage()

	primera := adminclient.NewMockSessionManager(adminclient.NewClient("http://localhost:0"), storage, store)
	require.NoError(t, primera.Login(adminLogin()))

	// Proceso nuevo, mismo storage.
	segunda := adminclient.NewMockSessionManager(adminclient.NewClient("http://localhost:0"), storage, store)
	require.NoError(t, segunda.Restore())
	assert.True(t, segunda.Authenticated())
	assert.Equal(t, "admin@saboresdelmar.com", segunda.User().Username)
}

// Un usuario corrupto en storage se limpia en silencio: sesión cerrada, sin error.
func TestSession_Restore_UsuarioCorrupto(t *testing.T) {
	session, storage := newMockSession(t)

	require.NoError(t, storage.Set(adminclient.StorageKeyToken, "token-viejo"))
	require.NoError(t, storage.Set(adminclient.StorageKeyUser, "{esto no es json"))

	require.NoError(t, session.Restore())
	assert.False(t, session.Authenticated())

	token, _ := storage.Get(adminclient.StorageKeyToken)
	user, _ := storage.Get(adminclient.StorageKeyUser)
	assert.Empty(t, token, "las claves corruptas se limpian")
	assert.Empty(t, user)
}

// Sin token persistido la sesión queda cerrada.
func TestSession_Restore_SinSesion(t *testing.T) {
	session, _ := newMockSession(t)

	require.NoError(t, session.Restore())
	assert.False(t, session.Authenticated())
}

// Logout limpia storage y notifica para redirigir al login.
func TestSession_Logout(t *testing.T) {
	session, storage := newMockSession(t)
	require.NoError(t, session.Login(adminLogin()))

	redirigido := false
	session.OnLogout = func() { redirigido = true }

	require.NoError(t, session.Logout())
	assert.False(t, session.Authenticated())
	assert.True(t, redirigido, "OnLogout debe dispararse")

	token, _ := storage.Get(adminclient.StorageKeyToken)
	user, _ := storage.Get(adminclient.StorageKeyUser)
	assert.Empty(t, token)
	assert.Empty(t, user)
}

// ──────────────────────────────────────────────────────────────────────────────
// FileStorage
// ──────────────────────────────────────────────────────────────────────────────

// El FileStorage sobrevive entre instancias (mismo archivo).
func TestFileStorage_Persiste(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s1 := adminclient.NewFileStorage(path)
	require.NoError(t, s1.Set(adminclient.StorageKeyToken, "abc123"))

	s2 := adminclient.NewFileStorage(path)
	token, err := s2.Get(adminclient.StorageKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, s2.Remove(adminclient.StorageKeyToken))
	token, err = s2.Get(adminclient.StorageKeyToken)
	require.NoError(t, err)
	assert.Empty(t, token)
}

// Un archivo corrupto no bloquea: se parte de un storage vacío.
func TestFileStorage_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	s := adminclient.NewFileStorage(path)
	val, err := s.Get("clave")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, s.Set("clave", "valor"))
	val, err = s.Get("clave")
	require.NoError(t, err)
	assert.Equal(t, "valor", val)
}
