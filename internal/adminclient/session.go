package adminclient

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/infrastructure/memory"
)

// SessionManager mantiene la sesión del panel: login, persistencia en Storage
// y restauración al arrancar. En modo mock autentica contra el Store en
// memoria sin tocar la red, igual que el resto de la app en ese modo.
type SessionManager struct {
	client  *Client
	storage Storage
	store   *memory.Store // nil fuera del modo mock

	user *dto.UserResponse

	// OnLogout se invoca al cerrar sesión (o al expirar), para que la capa de
	// presentación redirija a la pantalla de login.
	OnLogout func()
}

// NewSessionManager construye el manager en modo normal (login contra el API).
func NewSessionManager(client *Client, storage Storage) *SessionManager {
	return &SessionManager{client: client, storage: storage}
}

// NewMockSessionManager construye el manager en modo mock: el login se valida
// contra los usuarios sembrados en store con la contraseña de desarrollo.
func NewMockSessionManager(client *Client, storage Storage, store *memory.Store) *SessionManager {
	return &SessionManager{client: client, storage: storage, store: store}
}

// Authenticated indica si hay sesión activa.
func (m *SessionManager) Authenticated() bool { return m.user != nil }

// User devuelve el usuario de la sesión activa, o nil.
func (m *SessionManager) User() *dto.UserResponse { return m.user }

// Login autentica y persiste la sesión. Cualquier credencial que no coincida
// produce domain.ErrInvalidCredentials sin distinguir la causa.
func (m *SessionManager) Login(in dto.LoginRequest) error {
	var resp *dto.LoginResponse
	var err error
	if m.store != nil {
		resp, err = m.mockLogin(in)
	} else {
		resp, err = m.client.Login(in)
	}
	if err != nil {
		if IsUnauthorized(err) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	m.client.SetToken(resp.Token)
	m.user = &resp.User

	if err := m.storage.Set(StorageKeyToken, resp.Token); err != nil {
		return fmt.Errorf("persistir token: %w", err)
	}
	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("serializar usuario: %w", err)
	}
	if err := m.storage.Set(StorageKeyUser, string(rawUser)); err != nil {
		return fmt.Errorf("persistir usuario: %w", err)
	}
	return nil
}

// mockLogin valida contra los usuarios del Store con la contraseña de
// desarrollo y emite un token ficticio local.
func (m *SessionManager) mockLogin(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Password != memory.DevPassword {
		return nil, domain.ErrInvalidCredentials
	}
	for _, u := range m.store.Users() {
		if u.Username == in.Username && u.CompanyID == in.CompanyID && u.Active {
			return &dto.LoginResponse{
				Token: "mock-" + uuid.New().String(),
				User: dto.UserResponse{
					ID:        u.ID,
					Username:  u.Username,
					FullName:  u.FullName,
					Role:      u.Role,
					CompanyID: u.CompanyID,
					Active:    u.Active,
					CreatedAt: u.CreatedAt,
					UpdatedAt: u.UpdatedAt,
				},
			}, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Restore reconstruye la sesión desde Storage al arrancar. Si falta el token o
// el usuario guardado está corrupto, limpia ambas claves y deja la sesión
// cerrada, sin devolver error: el usuario simplemente vuelve a loguearse.
func (m *SessionManager) Restore() error {
	token, err := m.storage.Get(StorageKeyToken)
	if err != nil {
		return err
	}
	rawUser, err := m.storage.Get(StorageKeyUser)
	if err != nil {
		return err
	}
	if token == "" || rawUser == "" {
		return m.clear()
	}
	var user dto.UserResponse
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == "" {
		return m.clear()
	}
	m.client.SetToken(token)
	m.user = &user
	return nil
}

// Logout cierra la sesión: limpia Storage, quita el token del cliente y
// notifica OnLogout para que la UI redirija al login.
func (m *SessionManager) Logout() error {
	if err := m.clear(); err != nil {
		return err
	}
	if m.OnLogout != nil {
		m.OnLogout()
	}
	return nil
}

func (m *SessionManager) clear() error {
	m.user = nil
	m.client.SetToken("")
	if err := m.storage.Remove(StorageKeyToken); err != nil {
		return err
	}
	return m.storage.Remove(StorageKeyUser)
}
