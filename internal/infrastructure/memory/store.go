// Package memory implementa la fuente de datos simulada que reemplaza a
// PostgreSQL cuando USE_MOCK_DATA está activo. Permite ver el panel completo
// sin backend real; al conectar la base basta con apagar el flag.
package memory

import (
	"sync"

	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
)

// Store mantiene colecciones ordenadas de cada entidad. Todas las lecturas
// devuelven copias profundas y todas las escrituras copian la entrada, de modo
// que ningún caller comparte memoria con la colección interna.
type Store struct {
	mu sync.RWMutex

	companies  []entity.Company
	menus      []entity.Menu
	categories []entity.Category
	products   []entity.Product
	users      []entity.User

	nextCategoryID int64
	nextProductID  int64
}

// NewStore crea un Store vacío. Usar Seed() para cargar los datos de desarrollo.
func NewStore() *Store {
	return &Store{nextCategoryID: 1, nextProductID: 1}
}

// ── Copias profundas ──────────────────────────────────────────────────────────

func cloneCategory(c entity.Category) entity.Category {
	if c.Descripcion != nil {
		d := *c.Descripcion
		c.Descripcion = &d
	}
	return c
}

func cloneProduct(p entity.Product) entity.Product {
	if p.MenuIDs != nil {
		ids := make([]string, len(p.MenuIDs))
		copy(ids, p.MenuIDs)
		p.MenuIDs = ids
	}
	return p
}

// ── Companies ─────────────────────────────────────────────────────────────────

// Companies devuelve la colección de empresas en orden de inserción.
func (s *Store) Companies() []entity.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// SetCompanies reemplaza la colección completa.
func (s *Store) SetCompanies(companies []entity.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = make([]entity.Company, len(companies))
	copy(s.companies, companies)
}

// UpsertCompany inserta la empresa o reemplaza la existente con el mismo ID
// conservando la posición del resto de registros.
func (s *Store) UpsertCompany(company entity.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.companies {
		if s.companies[i].ID == company.ID {
			s.companies[i] = company
			return
		}
	}
	s.companies = append(s.companies, company)
}

// RemoveCompany elimina la empresa con ese ID. Devuelve false si no existía.
func (s *Store) RemoveCompany(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			return true
		}
	}
	return false
}

// ── Menus ─────────────────────────────────────────────────────────────────────

// Menus devuelve la colección de menús en orden de inserción.
func (s *Store) Menus() []entity.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Menu, len(s.menus))
	copy(out, s.menus)
	return out
}

// SetMenus reemplaza la colección completa.
func (s *Store) SetMenus(menus []entity.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus = make([]entity.Menu, len(menus))
	copy(s.menus, menus)
}

// UpsertMenu inserta o reemplaza conservando el orden.
func (s *Store) UpsertMenu(menu entity.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menus {
		if s.menus[i].ID == menu.ID {
			s.menus[i] = menu
			return
		}
	}
	s.menus = append(s.menus, menu)
}

// RemoveMenu elimina el menú con ese ID. Devuelve false si no existía.
func (s *Store) RemoveMenu(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menus {
		if s.menus[i].ID == id {
			s.menus = append(s.menus[:i], s.menus[i+1:]...)
			return true
		}
	}
	return false
}

// ── Categories ────────────────────────────────────────────────────────────────

// Categories devuelve la colección de categorías en orden de inserción.
func (s *Store) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, cloneCategory(c))
	}
	return out
}

// SetCategories reemplaza la colección completa y ajusta la secuencia de IDs.
func (s *Store) SetCategories(categories []entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = make([]entity.Category, 0, len(categories))
	for _, c := range categories {
		s.categories = append(s.categories, cloneCategory(c))
		if c.ID >= s.nextCategoryID {
			s.nextCategoryID = c.ID + 1
		}
	}
}

// UpsertCategory inserta o reemplaza conservando el orden. Si el ID es cero
// asigna el siguiente de la secuencia y devuelve la categoría resultante.
func (s *Store) UpsertCategory(category entity.Category) entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if category.ID == 0 {
		category.ID = s.nextCategoryID
		s.nextCategoryID++
	} else if category.ID >= s.nextCategoryID {
		s.nextCategoryID = category.ID + 1
	}
	stored := cloneCategory(category)
	for i := range s.categories {
		if s.categories[i].ID == stored.ID {
			s.categories[i] = stored
			return cloneCategory(stored)
		}
	}
	s.categories = append(s.categories, stored)
	return cloneCategory(stored)
}

// RemoveCategory elimina la categoría con ese ID. Devuelve false si no existía.
func (s *Store) RemoveCategory(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}
	return false
}

// ── Products ──────────────────────────────────────────────────────────────────

// Products devuelve la colección de productos en orden de inserción.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, cloneProduct(p))
	}
	return out
}

// SetProducts reemplaza la colección completa y ajusta la secuencia de IDs.
func (s *Store) SetProducts(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]entity.Product, 0, len(products))
	for _, p := range products {
		s.products = append(s.products, cloneProduct(p))
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
	}
}

// UpsertProduct inserta o reemplaza conservando el orden. Si el ID es cero
// asigna el siguiente de la secuencia y devuelve el producto resultante.
func (s *Store) UpsertProduct(product entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID == 0 {
		product.ID = s.nextProductID
		s.nextProductID++
	} else if product.ID >= s.nextProductID {
		s.nextProductID = product.ID + 1
	}
	stored := cloneProduct(product)
	for i := range s.products {
		if s.products[i].ID == stored.ID {
			s.products[i] = stored
			return cloneProduct(stored)
		}
	}
	s.products = append(s.products, stored)
	return cloneProduct(stored)
}

// RemoveProduct elimina el producto con ese ID. Devuelve false si no existía.
func (s *Store) RemoveProduct(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// ── Users ─────────────────────────────────────────────────────────────────────

// Users devuelve la colección de usuarios en orden de inserción.
func (s *Store) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// SetUsers reemplaza la colección completa.
func (s *Store) SetUsers(users []entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]entity.User, len(users))
	copy(s.users, users)
}

// UpsertUser inserta o reemplaza conservando el orden.
func (s *Store) UpsertUser(user entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user
			return
		}
	}
	s.users = append(s.users, user)
}

// RemoveUser elimina el usuario con ese ID. Devuelve false si no existía.
func (s *Store) RemoveUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// ── Conteos derivados ─────────────────────────────────────────────────────────
// Se recalculan desde las colecciones en cada llamada; no hay caché que invalidar.

// CompanyCount total de empresas.
func (s *Store) CompanyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies)
}

// MenuCount total de menús.
func (s *Store) MenuCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.menus)
}

// CategoryCount total de categorías.
func (s *Store) CategoryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories)
}

// ProductCount total de productos.
func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// ActiveUserCount total de usuarios activos.
func (s *Store) ActiveUserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if u.Active {
			n++
		}
	}
	return n
}
