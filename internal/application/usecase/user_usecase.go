package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// MinPasswordLength longitud mínima de la contraseña de un usuario.
const MinPasswordLength = 8

// UserUseCase casos de uso CRUD para usuarios del panel administrativo.
//
// Regla de contraseñas heredada del sistema original, a conservar tal cual:
// al crear es obligatoria con mínimo 8 caracteres; al actualizar es opcional,
// pero si se envía debe cumplir el mismo mínimo y reemplaza a la anterior.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con contraseña obligatoria.
func (uc *UserUseCase) Create(in dto.UserPayload) (*dto.UserResponse, error) {
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrValidation
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.ErrValidation
	}
	existing, _ := uc.repo.GetByUsernameAndCompany(in.Username, in.CompanyID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		FullName:     in.FullName,
		Role:         in.Role,
		CompanyID:    in.CompanyID,
		Active:       in.Active,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update reemplaza los campos mutables del usuario. La contraseña solo cambia
// si viene en el payload; vacía significa "conservar la actual".
func (uc *UserUseCase) Update(id string, in dto.UserPayload) (*dto.UserResponse, error) {
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrValidation
	}
	if in.Password != "" && len(in.Password) < MinPasswordLength {
		return nil, domain.ErrValidation
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Username = in.Username
	existing.FullName = in.FullName
	existing.Role = in.Role
	existing.CompanyID = in.CompanyID
	existing.Active = in.Active
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hash)
	}
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toUserResponse(existing), nil
}

// List devuelve los usuarios; con companyID filtra por empresa.
func (uc *UserUseCase) List(companyID string) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Delete elimina el usuario. No es idempotente.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
