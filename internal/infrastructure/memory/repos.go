package memory

import (
	"github.com/bm16036/TestQRMenuDigital/internal/domain"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/entity"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
)

// Adaptadores que implementan los puertos de repository sobre el Store,
// con la misma semántica que los adaptadores de PostgreSQL: lecturas sin
// resultado devuelven (nil, nil); update/delete de un ID inexistente
// devuelven domain.ErrNotFound.

var (
	_ repository.CategoryRepository  = (*CategoryRepo)(nil)
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.UserRepository      = (*UserRepo)(nil)
	_ repository.CompanyRepository   = (*CompanyRepo)(nil)
	_ repository.MenuRepository      = (*MenuRepo)(nil)
	_ repository.DashboardRepository = (*DashboardRepo)(nil)
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryRepo adaptador de categorías sobre el Store.
type CategoryRepo struct{ store *Store }

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	stored := r.store.UpsertCategory(*category)
	*category = stored
	return nil
}

func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	for _, c := range r.store.Categories() {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Update(category *entity.Category) error {
	existing, _ := r.GetByID(category.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	r.store.UpsertCategory(*category)
	return nil
}

func (r *CategoryRepo) List(companyID string) ([]*entity.Category, error) {
	all := r.store.Categories()
	list := make([]*entity.Category, 0, len(all))
	for i := range all {
		if companyID != "" && all[i].CompanyID != companyID {
			continue
		}
		list = append(list, &all[i])
	}
	return list, nil
}

func (r *CategoryRepo) Delete(id int64) error {
	if !r.store.RemoveCategory(id) {
		return domain.ErrNotFound
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRepo adaptador de productos sobre el Store.
type ProductRepo struct{ store *Store }

// NewProductRepository construye el adaptador.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	stored := r.store.UpsertProduct(*product)
	*product = stored
	return nil
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.store.Products() {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	existing, _ := r.GetByID(product.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	r.store.UpsertProduct(*product)
	return nil
}

func (r *ProductRepo) List(companyID string) ([]*entity.Product, error) {
	all := r.store.Products()
	list := make([]*entity.Product, 0, len(all))
	for i := range all {
		if companyID != "" && all[i].CompanyID != companyID {
			continue
		}
		list = append(list, &all[i])
	}
	return list, nil
}

func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	all := r.store.Products()
	list := make([]*entity.Product, 0, len(all))
	for i := range all {
		if all[i].CategoryID == categoryID {
			list = append(list, &all[i])
		}
	}
	return list, nil
}

func (r *ProductRepo) Delete(id int64) error {
	if !r.store.RemoveProduct(id) {
		return domain.ErrNotFound
	}
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepo adaptador de usuarios sobre el Store.
type UserRepo struct{ store *Store }

// NewUserRepository construye el adaptador.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(user *entity.User) error {
	existing, _ := r.GetByUsernameAndCompany(user.Username, user.CompanyID)
	if existing != nil {
		return domain.ErrDuplicate
	}
	r.store.UpsertUser(*user)
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.store.Users() {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByUsernameAndCompany(username, companyID string) (*entity.User, error) {
	for _, u := range r.store.Users() {
		if u.Username == username && u.CompanyID == companyID {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(user *entity.User) error {
	existing, _ := r.GetByID(user.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	r.store.UpsertUser(*user)
	return nil
}

func (r *UserRepo) List(companyID string) ([]*entity.User, error) {
	all := r.store.Users()
	list := make([]*entity.User, 0, len(all))
	for i := range all {
		if companyID != "" && all[i].CompanyID != companyID {
			continue
		}
		list = append(list, &all[i])
	}
	return list, nil
}

func (r *UserRepo) Delete(id string) error {
	if !r.store.RemoveUser(id) {
		return domain.ErrNotFound
	}
	return nil
}

// ── Empresas ──────────────────────────────────────────────────────────────────

// CompanyRepo adaptador de empresas sobre el Store.
type CompanyRepo struct{ store *Store }

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(store *Store) *CompanyRepo {
	return &CompanyRepo{store: store}
}

func (r *CompanyRepo) Create(company *entity.Company) error {
	existing, _ := r.GetByTaxID(company.TaxID)
	if existing != nil {
		return domain.ErrDuplicate
	}
	r.store.UpsertCompany(*company)
	return nil
}

func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, c := range r.store.Companies() {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *CompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	for _, c := range r.store.Companies() {
		if c.TaxID == taxID {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *CompanyRepo) Update(company *entity.Company) error {
	existing, _ := r.GetByID(company.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	r.store.UpsertCompany(*company)
	return nil
}

func (r *CompanyRepo) List() ([]*entity.Company, error) {
	all := r.store.Companies()
	list := make([]*entity.Company, 0, len(all))
	for i := range all {
		list = append(list, &all[i])
	}
	return list, nil
}

func (r *CompanyRepo) Delete(id string) error {
	if !r.store.RemoveCompany(id) {
		return domain.ErrNotFound
	}
	return nil
}

// ── Menús ─────────────────────────────────────────────────────────────────────

// MenuRepo adaptador de menús sobre el Store.
type MenuRepo struct{ store *Store }

// NewMenuRepository construye el adaptador.
func NewMenuRepository(store *Store) *MenuRepo {
	return &MenuRepo{store: store}
}

func (r *MenuRepo) Create(menu *entity.Menu) error {
	r.store.UpsertMenu(*menu)
	return nil
}

func (r *MenuRepo) GetByID(id string) (*entity.Menu, error) {
	for _, m := range r.store.Menus() {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MenuRepo) Update(menu *entity.Menu) error {
	existing, _ := r.GetByID(menu.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	r.store.UpsertMenu(*menu)
	return nil
}

func (r *MenuRepo) List(companyID string) ([]*entity.Menu, error) {
	all := r.store.Menus()
	list := make([]*entity.Menu, 0, len(all))
	for i := range all {
		if companyID != "" && all[i].CompanyID != companyID {
			continue
		}
		list = append(list, &all[i])
	}
	return list, nil
}

func (r *MenuRepo) Delete(id string) error {
	if !r.store.RemoveMenu(id) {
		return domain.ErrNotFound
	}
	return nil
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardRepo calcula los conteos del panel desde el Store.
type DashboardRepo struct{ store *Store }

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(store *Store) *DashboardRepo {
	return &DashboardRepo{store: store}
}

// Counts recalcula los totales en cada llamada. Con companyID vacío devuelve
// los totales globales; con companyID filtra cada colección por empresa.
func (r *DashboardRepo) Counts(companyID string) (*repository.DashboardCounts, error) {
	if companyID == "" {
		return &repository.DashboardCounts{
			Companies:   r.store.CompanyCount(),
			Menus:       r.store.MenuCount(),
			Categories:  r.store.CategoryCount(),
			Products:    r.store.ProductCount(),
			ActiveUsers: r.store.ActiveUserCount(),
		}, nil
	}
	counts := &repository.DashboardCounts{Companies: 1}
	for _, m := range r.store.Menus() {
		if m.CompanyID == companyID {
			counts.Menus++
		}
	}
	for _, c := range r.store.Categories() {
		if c.CompanyID == companyID {
			counts.Categories++
		}
	}
	for _, p := range r.store.Products() {
		if p.CompanyID == companyID {
			counts.Products++
		}
	}
	for _, u := range r.store.Users() {
		if u.CompanyID == companyID && u.Active {
			counts.ActiveUsers++
		}
	}
	return counts, nil
}
