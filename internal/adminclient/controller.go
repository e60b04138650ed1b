package adminclient

import (
	"strconv"
	"sync"
	"time"

	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
)

// DefaultSuccessDelay tiempo que un mensaje de éxito permanece visible antes
// de limpiarse solo.
const DefaultSuccessDelay = 3500 * time.Millisecond

// ControllerState snapshot del estado de una pantalla de administración.
type ControllerState struct {
	Loading    bool
	Saving     bool
	DeletingID string // id del registro cuyo borrado está en curso; vacío si ninguno
	Editing    bool   // hay un registro en modo edición
	Error      string
	Success    string
}

// base estado compartido de los controladores: banderas de operación en
// curso, mensajes y el hook de notificación a la UI.
type base struct {
	mu           sync.Mutex
	state        ControllerState
	successDelay time.Duration
	successTimer *time.Timer

	// OnChange se invoca tras cada mutación de estado para que la UI repinte.
	OnChange func()
}

func (b *base) notify() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// State devuelve una copia del estado actual.
func (b *base) State() ControllerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SetSuccessDelay ajusta cuánto dura el mensaje de éxito (para pruebas).
func (b *base) SetSuccessDelay(d time.Duration) {
	b.mu.Lock()
	b.successDelay = d
	b.mu.Unlock()
}

// setSuccess publica un mensaje de éxito que se limpia solo pasado el delay.
// Un éxito nuevo reinicia el temporizador del anterior.
func (b *base) setSuccess(msg string) {
	b.mu.Lock()
	b.state.Success = msg
	b.state.Error = ""
	if b.successTimer != nil {
		b.successTimer.Stop()
	}
	delay := b.successDelay
	if delay <= 0 {
		delay = DefaultSuccessDelay
	}
	b.successTimer = time.AfterFunc(delay, func() {
		b.mu.Lock()
		if b.state.Success == msg {
			b.state.Success = ""
		}
		b.mu.Unlock()
		b.notify()
	})
	b.mu.Unlock()
	b.notify()
}

func (b *base) setError(msg string) {
	b.mu.Lock()
	b.state.Error = msg
	b.state.Success = ""
	b.mu.Unlock()
	b.notify()
}

// clearMessages borra error y éxito sin notificar (al entrar en edición).
func (b *base) clearMessages() {
	b.mu.Lock()
	b.state.Error = ""
	b.state.Success = ""
	if b.successTimer != nil {
		b.successTimer.Stop()
	}
	b.mu.Unlock()
}

// beginLoad marca la carga en curso; devuelve false si ya había una.
func (b *base) beginLoad() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state.Loading {
		return false
	}
	b.state.Loading = true
	b.state.Error = ""
	return true
}

func (b *base) endLoad() {
	b.mu.Lock()
	b.state.Loading = false
	b.mu.Unlock()
}

// beginSave marca el guardado en curso; devuelve false si ya había uno.
// Mientras dura, los envíos adicionales del formulario se ignoran.
func (b *base) beginSave() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state.Saving {
		return false
	}
	b.state.Saving = true
	b.state.Error = ""
	return true
}

func (b *base) endSave() {
	b.mu.Lock()
	b.state.Saving = false
	b.mu.Unlock()
}

// beginDelete marca el borrado del registro id; devuelve false si ya hay un
// borrado en curso (de cualquier registro).
func (b *base) beginDelete(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state.DeletingID != "" {
		return false
	}
	b.state.DeletingID = id
	b.state.Error = ""
	return true
}

func (b *base) endDelete() {
	b.mu.Lock()
	b.state.DeletingID = ""
	b.mu.Unlock()
}

func (b *base) setEditing(on bool) {
	b.mu.Lock()
	b.state.Editing = on
	b.mu.Unlock()
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

// CategoryController estado de la pantalla de categorías: la lista, el
// registro en edición y las banderas de operación en curso.
type CategoryController struct {
	base
	api       *CategoryAPI
	companyID string

	itemsMu   sync.RWMutex
	items     []dto.CategoryResponse
	editing   *dto.CategoryPayload
	editingID int64

	// Confirm se consulta antes de eliminar; nil equivale a confirmar siempre.
	Confirm func(item dto.CategoryResponse) bool
}

// NewCategoryController construye el controlador para la empresa indicada.
func NewCategoryController(client *Client, companyID string) *CategoryController {
	c := &CategoryController{api: client.Categories(), companyID: companyID}
	c.successDelay = DefaultSuccessDelay
	return c
}

// Items devuelve una copia de la lista actual.
func (c *CategoryController) Items() []dto.CategoryResponse {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	out := make([]dto.CategoryResponse, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CategoryController) itemByID(id int64) (dto.CategoryResponse, bool) {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	for i := range c.items {
		if c.items[i].ID == id {
			return c.items[i], true
		}
	}
	return dto.CategoryResponse{}, false
}

// StartEdit entra en modo edición copiando los campos del registro al
// formulario. Limpia los mensajes pendientes. Devuelve false si el ID no está
// en la lista local.
func (c *CategoryController) StartEdit(id int64) bool {
	item, ok := c.itemByID(id)
	if !ok {
		return false
	}
	payload := dto.CategoryPayload{Nombre: item.Nombre}
	if item.Descripcion != nil {
		d := *item.Descripcion
		payload.Descripcion = &d
	}
	c.itemsMu.Lock()
	c.editing = &payload
	c.editingID = id
	c.itemsMu.Unlock()
	c.setEditing(true)
	c.clearMessages()
	c.notify()
	return true
}

// CancelEdit sale del modo edición y descarta el formulario. Sin edición en
// curso no hace nada.
func (c *CategoryController) CancelEdit() {
	if !c.State().Editing {
		return
	}
	c.resetEdit()
	c.notify()
}

// EditingRecord devuelve una copia del formulario en edición, o nil.
func (c *CategoryController) EditingRecord() *dto.CategoryPayload {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	if c.editing == nil {
		return nil
	}
	out := *c.editing
	if c.editing.Descripcion != nil {
		d := *c.editing.Descripcion
		out.Descripcion = &d
	}
	return &out
}

// EditingID devuelve el ID del registro en edición, o cero.
func (c *CategoryController) EditingID() int64 {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	return c.editingID
}

// resetEdit descarta la selección de edición sin notificar.
func (c *CategoryController) resetEdit() {
	c.itemsMu.Lock()
	c.editing = nil
	c.editingID = 0
	c.itemsMu.Unlock()
	c.setEditing(false)
}

// Load trae la lista del servidor. Si ya hay una carga en curso no hace nada.
// Ante error la lista previa se conserva.
func (c *CategoryController) Load() {
	if !c.beginLoad() {
		return
	}
	defer c.endLoad()
	items, err := c.api.List(c.companyID)
	if err != nil {
		c.setError("No se pudieron cargar las categorías")
		return
	}
	c.itemsMu.Lock()
	c.items = items
	c.itemsMu.Unlock()
	c.notify()
}

// Create crea una categoría y la añade a la lista local con el ID que asignó
// el servidor. El éxito descarta el formulario. Se ignora si hay otro
// guardado en curso.
func (c *CategoryController) Create(in dto.CategoryPayload) {
	if !c.beginSave() {
		return
	}
	defer c.endSave()
	created, err := c.api.Create(in)
	if err != nil {
		c.setError("No se pudo crear la categoría")
		return
	}
	c.itemsMu.Lock()
	c.items = append(c.items, *created)
	c.itemsMu.Unlock()
	c.resetEdit()
	c.setSuccess("Categoría creada correctamente")
}

// Update reemplaza la categoría y reconcilia la lista local con la respuesta
// del servidor. El éxito sale del modo edición; ante error la lista y la
// edición quedan como estaban.
func (c *CategoryController) Update(id int64, in dto.CategoryPayload) {
	if !c.beginSave() {
		return
	}
	defer c.endSave()
	updated, err := c.api.Update(id, in)
	if err != nil {
		if IsNotFound(err) {
			c.setError("La categoría ya no existe")
		} else {
			c.setError("No se pudo actualizar la categoría")
		}
		return
	}
	c.itemsMu.Lock()
	for i := range c.items {
		if c.items[i].ID == updated.ID {
			c.items[i] = *updated
			break
		}
	}
	c.itemsMu.Unlock()
	c.resetEdit()
	c.setSuccess("Categoría actualizada correctamente")
}

// Delete pide confirmación (también cuando el registro no está en la copia
// local), elimina en el servidor y quita el registro de la lista. Repetir el
// borrado del mismo ID produce error de no encontrado.
func (c *CategoryController) Delete(id int64) {
	item, _ := c.itemByID(id)
	if c.Confirm != nil && !c.Confirm(item) {
		return
	}
	if !c.beginDelete(strconv.FormatInt(id, 10)) {
		return
	}
	defer c.endDelete()
	if err := c.api.Delete(id); err != nil {
		if IsNotFound(err) {
			c.setError("La categoría ya no existe")
		} else {
			c.setError("No se pudo eliminar la categoría")
		}
		return
	}
	c.itemsMu.Lock()
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.itemsMu.Unlock()
	if c.EditingID() == id {
		c.resetEdit()
	}
	c.setSuccess("Categoría eliminada correctamente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

// ProductController estado de la pantalla de productos.
type ProductController struct {
	base
	api       *ProductAPI
	companyID string

	itemsMu   sync.RWMutex
	items     []dto.ProductResponse
	editing   *dto.ProductPayload
	editingID int64

	Confirm func(item dto.ProductResponse) bool
}

// NewProductController construye el controlador para la empresa indicada.
func NewProductController(client *Client, companyID string) *ProductController {
	c := &ProductController{api: client.Products(), companyID: companyID}
	c.successDelay = DefaultSuccessDelay
	return c
}

// Items devuelve una copia de la lista actual.
func (c *ProductController) Items() []dto.ProductResponse {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	out := make([]dto.ProductResponse, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ProductController) itemByID(id int64) (dto.ProductResponse, bool) {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	for i := range c.items {
		if c.items[i].ID == id {
			return c.items[i], true
		}
	}
	return dto.ProductResponse{}, false
}

// StartEdit entra en modo edición copiando los campos del registro,
// incluida la lista de menús.
func (c *ProductController) StartEdit(id int64) bool {
	item, ok := c.itemByID(id)
	if !ok {
		return false
	}
	payload := dto.ProductPayload{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		CategoryID:  item.CategoryID,
		MenuIDs:     append([]string(nil), item.MenuIDs...),
		CompanyID:   item.CompanyID,
	}
	c.itemsMu.Lock()
	c.editing = &payload
	c.editingID = id
	c.itemsMu.Unlock()
	c.setEditing(true)
	c.clearMessages()
	c.notify()
	return true
}

// CancelEdit sale del modo edición y descarta el formulario.
func (c *ProductController) CancelEdit() {
	if !c.State().Editing {
		return
	}
	c.resetEdit()
	c.notify()
}

// EditingRecord devuelve una copia del formulario en edición, o nil.
func (c *ProductController) EditingRecord() *dto.ProductPayload {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	if c.editing == nil {
		return nil
	}
	out := *c.editing
	out.MenuIDs = append([]string(nil), c.editing.MenuIDs...)
	return &out
}

// EditingID devuelve el ID del registro en edición, o cero.
func (c *ProductController) EditingID() int64 {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	return c.editingID
}

func (c *ProductController) resetEdit() {
	c.itemsMu.Lock()
	c.editing = nil
	c.editingID = 0
	c.itemsMu.Unlock()
	c.setEditing(false)
}

// Load trae la lista del servidor, con la misma semántica que en categorías.
func (c *ProductController) Load() {
	if !c.beginLoad() {
		return
	}
	defer c.endLoad()
	items, err := c.api.List(c.companyID)
	if err != nil {
		c.setError("No se pudieron cargar los productos")
		return
	}
	c.itemsMu.Lock()
	c.items = items
	c.itemsMu.Unlock()
	c.notify()
}

// Create crea un producto y lo añade a la lista local. El éxito descarta el formulario.
func (c *ProductController) Create(in dto.ProductPayload) {
	if !c.beginSave() {
		return
	}
	defer c.endSave()
	created, err := c.api.Create(in)
	if err != nil {
		if IsValidation(err) {
			c.setError("Datos del producto inválidos")
		} else {
			c.setError("No se pudo crear el producto")
		}
		return
	}
	c.itemsMu.Lock()
	c.items = append(c.items, *created)
	c.itemsMu.Unlock()
	c.resetEdit()
	c.setSuccess("Producto creado correctamente")
}

// Update reemplaza el producto y reconcilia la lista local. El éxito sale del
// modo edición.
func (c *ProductController) Update(id int64, in dto.ProductPayload) {
	if !c.beginSave() {
		return
	}
	defer c.endSave()
	updated, err := c.api.Update(id, in)
	if err != nil {
		if IsNotFound(err) {
			c.setError("El producto ya no existe")
		} else {
			c.setError("No se pudo actualizar el producto")
		}
		return
	}
	c.itemsMu.Lock()
	for i := range c.items {
		if c.items[i].ID == updated.ID {
			c.items[i] = *updated
			break
		}
	}
	c.itemsMu.Unlock()
	c.resetEdit()
	c.setSuccess("Producto actualizado correctamente")
}

// Delete pide confirmación (siempre, aun sin copia local del registro),
// elimina en el servidor y quita el registro local.
func (c *ProductController) Delete(id int64) {
	item, _ := c.itemByID(id)
	if c.Confirm != nil && !c.Confirm(item) {
		return
	}
	if !c.beginDelete(strconv.FormatInt(id, 10)) {
		return
	}
	defer c.endDelete()
	if err := c.api.Delete(id); err != nil {
		if IsNotFound(err) {
			c.setError("El producto ya no existe")
		} else {
			c.setError("No se pudo eliminar el producto")
		}
		return
	}
	c.itemsMu.Lock()
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.itemsMu.Unlock()
	if c.EditingID() == id {
		c.resetEdit()
	}
	c.setSuccess("Producto eliminado correctamente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

// UserController estado de la pantalla de usuarios (solo visible para ADMIN).
type UserController struct {
	base
	api       *UserAPI
	companyID string

	itemsMu   sync.RWMutex
	items     []dto.UserResponse
	editing   *dto.UserPayload
	editingID string

	Confirm func(item dto.UserResponse) bool
}

// NewUserController construye el controlador para la empresa indicada.
func NewUserController(client *Client, companyID string) *UserController {
	c := &UserController{api: client.Users(), companyID: companyID}
	c.successDelay = DefaultSuccessDelay
	return c
}

// Items devuelve una copia de la lista actual.
func (c *UserController) Items() []dto.UserResponse {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	out := make([]dto.UserResponse, len(c.items))
	copy(out, c.items)
	return out
}

func (c *UserController) itemByID(id string) (dto.UserResponse, bool) {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	for i := range c.items {
		if c.items[i].ID == id {
			return c.items[i], true
		}
	}
	return dto.UserResponse{}, false
}

// StartEdit entra en modo edición copiando los campos del registro.
// La contraseña nunca se precarga: vacía significa "conservar la actual".
func (c *UserController) StartEdit(id string) bool {
	item, ok := c.itemByID(id)
	if !ok {
		return false
	}
	payload := dto.UserPayload{
		Username:  item.Username,
		FullName:  item.FullName,
		Role:      item.Role,
		CompanyID: item.CompanyID,
		Active:    item.Active,
	}
	c.itemsMu.Lock()
	c.editing = &payload
	c.editingID = id
	c.itemsMu.Unlock()
	c.setEditing(true)
	c.clearMessages()
	c.notify()
	return true
}

// CancelEdit sale del modo edición y descarta el formulario.
func (c *UserController) CancelEdit() {
	if !c.State().Editing {
		return
	}
	c.resetEdit()
	c.notify()
}

// EditingRecord devuelve una copia del formulario en edición, o nil.
func (c *UserController) EditingRecord() *dto.UserPayload {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	if c.editing == nil {
		return nil
	}
	out := *c.editing
	return &out
}

// EditingID devuelve el ID del registro en edición, o vacío.
func (c *UserController) EditingID() string {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	return c.editingID
}

func (c *UserController) resetEdit() {
	c.itemsMu.Lock()
	c.editing = nil
	c.editingID = ""
	c.itemsMu.Unlock()
	c.setEditing(false)
}

// Load trae la lista del servidor.
func (c *UserController) Load() {
	if !c.beginLoad() {
		return
	}
	defer c.endLoad()
	items, err := c.api.List(c.companyID)
	if err != nil {
		c.setError("No se pudieron cargar los usuarios")
		return
	}
	c.itemsMu.Lock()
	c.items = items
	c.itemsMu.Unlock()
	c.notify()
}

// Create crea un usuario; la contraseña es obligatoria en esta operación.
// El éxito descarta el formulario.
func (c *UserController) Create(in dto.UserPayload) {
	if !c.beginSave() {
		return
	}
	defer c.endSave()
	created, err := c.api.Create(in)
	if err != nil {
		if IsValidation(err) {
			c.setError("Datos del usuario inválidos")
		} else {
			c.setError("No se pudo crear el usuario")
		}
		return
	}
	c.itemsMu.Lock()
	c.items = append(c.items, *created)
	c.itemsMu.Unlock()
	c.resetEdit()
	c.setSuccess("Usuario creado correctamente")
}

// Update reemplaza el usuario; contraseña vacía conserva la actual.
// El éxito sale del modo edición.
func (c *UserController) Update(id string, in dto.UserPayload) {
	if !c.beginSave() {
		return
	}
	defer c.endSave()
	updated, err := c.api.Update(id, in)
	if err != nil {
		if IsNotFound(err) {
			c.setError("El usuario ya no existe")
		} else {
			c.setError("No se pudo actualizar el usuario")
		}
		return
	}
	c.itemsMu.Lock()
	for i := range c.items {
		if c.items[i].ID == updated.ID {
			c.items[i] = *updated
			break
		}
	}
	c.itemsMu.Unlock()
	c.resetEdit()
	c.setSuccess("Usuario actualizado correctamente")
}

// Delete pide confirmación (siempre, aun sin copia local del registro),
// elimina en el servidor y quita el registro local.
func (c *UserController) Delete(id string) {
	item, _ := c.itemByID(id)
	if c.Confirm != nil && !c.Confirm(item) {
		return
	}
	if !c.beginDelete(id) {
		return
	}
	defer c.endDelete()
	if err := c.api.Delete(id); err != nil {
		if IsNotFound(err) {
			c.setError("El usuario ya no existe")
		} else {
			c.setError("No se pudo eliminar el usuario")
		}
		return
	}
	c.itemsMu.Lock()
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.itemsMu.Unlock()
	if c.EditingID() == id {
		c.resetEdit()
	}
	c.setSuccess("Usuario eliminado correctamente")
}
