package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
)

// DevPassword contraseña fija aceptada para cualquier usuario en modo mock.
const DevPassword = "admin123"

func ptr(s string) *string { return &s }

// Seed carga el juego de datos de desarrollo: dos empresas con sus menús,
// categorías, productos y usuarios. Todos los usuarios aceptan DevPassword.
func (s *Store) Seed() {
	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte(DevPassword), bcrypt.DefaultCost)

	s.SetCompanies([]entity.Company{
		{
			ID:             "empresa-001",
			TaxID:          "RUC-001",
			BusinessName:   "Restaurante S.A.",
			CommercialName: "Sabores del Mar",
			Email:          "contacto@saboresdelmar.com",
			Phone:          "+503 7890 1111",
			LogoURL:        "https://placehold.co/120x120?text=Sabores",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             "empresa-002",
			TaxID:          "RUC-002",
			BusinessName:   "Cafetería S.R.L.",
			CommercialName: "Aroma Andino",
			Email:          "hola@aromaandino.com",
			Phone:          "+503 7456 3344",
			LogoURL:        "https://placehold.co/120x120?text=Aroma",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	})

	s.SetMenus([]entity.Menu{
		{ID: "menu-desayunos", Name: "Desayunos", Active: true, CompanyID: "empresa-001", CreatedAt: now, UpdatedAt: now},
		{ID: "menu-almuerzos", Name: "Almuerzos", Active: true, CompanyID: "empresa-001", CreatedAt: now, UpdatedAt: now},
		{ID: "menu-meriendas", Name: "Meriendas", Active: false, CompanyID: "empresa-002", CreatedAt: now, UpdatedAt: now},
	})

	s.SetCategories([]entity.Category{
		{ID: 1, Nombre: "Entradas", Descripcion: ptr("Para abrir el apetito"), CompanyID: "empresa-001", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Nombre: "Bebidas", Descripcion: nil, CompanyID: "empresa-001", CreatedAt: now, UpdatedAt: now},
		{ID: 3, Nombre: "Postres", Descripcion: ptr("Dulces de la casa"), CompanyID: "empresa-002", CreatedAt: now, UpdatedAt: now},
	})

	s.SetProducts([]entity.Product{
		{
			ID:          1,
			Name:        "Ceviche Clásico",
			Description: "Pescado fresco marinado en limón con camote y canchita.",
			Price:       decimal.NewFromFloat(36.5),
			ImageURL:    "https://placehold.co/300x200?text=Ceviche",
			CategoryID:  1,
			MenuIDs:     []string{"menu-almuerzos"},
			CompanyID:   "empresa-001",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			Name:        "Limonada de Hierbabuena",
			Description: "Bebida refrescante preparada al momento.",
			Price:       decimal.NewFromFloat(10.9),
			ImageURL:    "https://placehold.co/300x200?text=Limonada",
			CategoryID:  2,
			MenuIDs:     []string{"menu-desayunos", "menu-almuerzos"},
			CompanyID:   "empresa-001",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          3,
			Name:        "Tiramisú",
			Description: "Postre italiano con queso mascarpone y café.",
			Price:       decimal.NewFromInt(18),
			ImageURL:    "https://placehold.co/300x200?text=Tiramisu",
			CategoryID:  3,
			MenuIDs:     []string{"menu-meriendas"},
			CompanyID:   "empresa-002",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	})

	s.SetUsers([]entity.User{
		{
			ID:           "user-admin-001",
			Username:     "admin@saboresdelmar.com",
			FullName:     "Administrador Sabores",
			Role:         entity.RoleAdmin,
			CompanyID:    "empresa-001",
			Active:       true,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "user-001",
			Username:     "caja@saboresdelmar.com",
			FullName:     "Usuario Caja",
			Role:         entity.RoleUser,
			CompanyID:    "empresa-001",
			Active:       true,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "user-admin-002",
			Username:     "admin@aromaandino.com",
			FullName:     "Administrador Aroma",
			Role:         entity.RoleAdmin,
			CompanyID:    "empresa-002",
			Active:       true,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	})
}
