package adminclient_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bm16036/TestQRMenuDigital/internal/adminclient"
	"github.com/bm16036/TestQRMenuDigital/internal/application/dto"
)

// fakeCategoriesServer servidor HTTP mínimo que imita /api/categorias,
// con la misma semántica que el backend real (delete no idempotente incluido).
type fakeCategoriesServer struct {
	mu     sync.Mutex
	items  []dto.CategoryResponse
	nextID int64
}

func newFakeCategoriesServer() *fakeCategoriesServer {
	desc := "Para compartir"
	return &fakeCategoriesServer{
		items: []dto.CategoryResponse{
			{ID: 1, Nombre: "Entradas", Descripcion: &desc},
			{ID: 2, Nombre: "Bebidas"},
		},
		nextID: 3,
	}
}

func (s *fakeCategoriesServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categorias", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(s.items)
		case http.MethodPost:
			var in dto.CategoryPayload
			json.NewDecoder(r.Body).Decode(&in)
			if strings.TrimSpace(in.Nombre) == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
				return
			}
			item := dto.CategoryResponse{ID: s.nextID, Nombre: in.Nombre, Descripcion: in.Descripcion}
			s.nextID++
			s.items = append(s.items, item)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(item)
		}
	})
	mux.HandleFunc("/api/categorias/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/categorias/"), 10, 64)
		idx := -1
		for i := range s.items {
			if s.items[i].ID == id {
				idx = i
			}
		}
		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
			return
		}
		switch r.Method {
		case http.MethodPut:
			var in dto.CategoryPayload
			json.NewDecoder(r.Body).Decode(&in)
			s.items[idx].Nombre = in.Nombre
			s.items[idx].Descripcion = in.Descripcion
			json.NewEncoder(w).Encode(s.items[idx])
		case http.MethodDelete:
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			json.NewEncoder(w).Encode(dto.MensajeResponse{Mensaje: "Categoría eliminada correctamente"})
		}
	})
	return mux
}

func newTestController(t *testing.T) (*adminclient.CategoryController, *fakeCategoriesServer) {
	t.Helper()
	srv := newFakeCategoriesServer()
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	ctrl := adminclient.NewCategoryController(adminclient.NewClient(ts.URL), "")
	return ctrl, srv
}

// esperarNotificacion espera a que cond se cumpla, repintando como lo haría la UI.
func esperarCondicion(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("la condición esperada no se cumplió a tiempo")
}

// Load trae la lista del servidor.
func TestCategoryController_Load(t *testing.T) {
	ctrl, _ := newTestController(t)

	ctrl.Load()

	items := ctrl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Entradas", items[0].Nombre)
	assert.Empty(t, ctrl.State().Error)
}

// Mientras hay una carga en curso, las cargas adicionales se ignoran.
func TestCategoryController_Load_IgnoraCargaDuplicada(t *testing.T) {
	var hits int64
	var mu sync.Mutex
	bloqueo := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/categorias", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		<-bloqueo
		json.NewEncoder(w).Encode([]dto.CategoryResponse{})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctrl := adminclient.NewCategoryController(adminclient.NewClient(ts.URL), "")

	done := make(chan struct{})
	go func() {
		ctrl.Load()
		close(done)
	}()
	esperarCondicion(t, func() bool { return ctrl.State().Loading })

	ctrl.Load() // debe ignorarse: ya hay una carga en curso
	close(bloqueo)
	<-done

	mu.Lock()
	assert.Equal(t, int64(1), hits, "solo la primera carga llega al servidor")
	mu.Unlock()
}

// Create añade a la lista local el registro con el ID que asignó el servidor
// y publica un mensaje de éxito.
func TestCategoryController_Create(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()

	ctrl.Create(dto.CategoryPayload{Nombre: "Postres"})

	items := ctrl.Items()
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[2].ID, "el ID viene del servidor, no se inventa en el cliente")
	assert.Equal(t, "Categoría creada correctamente", ctrl.State().Success)
}

// El mensaje de éxito se limpia solo pasado el delay configurado.
func TestCategoryController_ExitoSeLimpiaSolo(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()
	ctrl.SetSuccessDelay(20 * time.Millisecond)

	ctrl.Create(dto.CategoryPayload{Nombre: "Postres"})
	require.NotEmpty(t, ctrl.State().Success)

	esperarCondicion(t, func() bool { return ctrl.State().Success == "" })
}

// Un update fallido publica error y deja la lista local intacta.
func TestCategoryController_Update_FalloNoTocaLista(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()
	antes := ctrl.Items()

	ctrl.Update(999, dto.CategoryPayload{Nombre: "Fantasma"})

	assert.Equal(t, antes, ctrl.Items(), "ante error la lista no cambia")
	assert.NotEmpty(t, ctrl.State().Error)
	assert.Empty(t, ctrl.State().Success)
}

// Update correcto reconcilia el registro en su posición.
func TestCategoryController_Update(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()

	ctrl.Update(1, dto.CategoryPayload{Nombre: "Entradas Frías"})

	items := ctrl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Entradas Frías", items[0].Nombre)
	assert.Equal(t, "Bebidas", items[1].Nombre)
}

// Delete sin confirmación no llama al servidor ni toca la lista.
func TestCategoryController_Delete_Cancelado(t *testing.T) {
	ctrl, srv := newTestController(t)
	ctrl.Load()
	ctrl.Confirm = func(dto.CategoryResponse) bool { return false }

	ctrl.Delete(1)

	assert.Len(t, ctrl.Items(), 2)
	srv.mu.Lock()
	assert.Len(t, srv.items, 2, "el servidor no debe recibir el delete cancelado")
	srv.mu.Unlock()
}

// Delete confirmado elimina en el servidor y en la lista local.
func TestCategoryController_Delete(t *testing.T) {
	ctrl, srv := newTestController(t)
	ctrl.Load()
	ctrl.Confirm = func(item dto.CategoryResponse) bool { return item.ID == 1 }

	ctrl.Delete(1)

	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Bebidas", items[0].Nombre)
	srv.mu.Lock()
	assert.Len(t, srv.items, 1)
	srv.mu.Unlock()
	assert.Equal(t, "Categoría eliminada correctamente", ctrl.State().Success)
}

// Repetir el delete del mismo ID: el servidor responde 404 y se publica error.
func TestCategoryController_Delete_SegundaVezError(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()

	ctrl.Delete(2)
	require.Len(t, ctrl.Items(), 1)

	ctrl.Delete(2)
	assert.Equal(t, "La categoría ya no existe", ctrl.State().Error)
	assert.Len(t, ctrl.Items(), 1, "el segundo delete no altera la lista")
}

// StartEdit copia los campos del registro al formulario (la descripción se
// copia por valor, no por puntero) y limpia los mensajes pendientes.
func TestCategoryController_StartEdit(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()
	ctrl.Create(dto.CategoryPayload{Nombre: "Postres"})
	require.NotEmpty(t, ctrl.State().Success)

	require.True(t, ctrl.StartEdit(1))

	assert.True(t, ctrl.State().Editing)
	assert.Equal(t, int64(1), ctrl.EditingID())
	assert.Empty(t, ctrl.State().Success, "entrar en edición limpia el mensaje de éxito")

	form := ctrl.EditingRecord()
	require.NotNil(t, form)
	assert.Equal(t, "Entradas", form.Nombre)
	require.NotNil(t, form.Descripcion)
	assert.Equal(t, "Para compartir", *form.Descripcion)

	*form.Descripcion = "mutada"
	otra := ctrl.EditingRecord()
	assert.Equal(t, "Para compartir", *otra.Descripcion, "el formulario entregado es una copia")
}

// StartEdit de un ID que no está en la lista local no entra en edición.
func TestCategoryController_StartEdit_IDInexistente(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()

	assert.False(t, ctrl.StartEdit(999))
	assert.False(t, ctrl.State().Editing)
	assert.Nil(t, ctrl.EditingRecord())
}

// CancelEdit descarta el formulario y sale del modo edición.
func TestCategoryController_CancelEdit(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()
	require.True(t, ctrl.StartEdit(1))

	ctrl.CancelEdit()

	assert.False(t, ctrl.State().Editing)
	assert.Nil(t, ctrl.EditingRecord())
	assert.Zero(t, ctrl.EditingID())
}

// Un update correcto sale del modo edición; un create correcto también.
func TestCategoryController_Update_ExitoSaleDeEdicion(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()
	require.True(t, ctrl.StartEdit(1))

	ctrl.Update(1, dto.CategoryPayload{Nombre: "Entradas Frías"})

	assert.False(t, ctrl.State().Editing)
	assert.Nil(t, ctrl.EditingRecord())
	assert.Equal(t, "Categoría actualizada correctamente", ctrl.State().Success)
}

// Un update fallido conserva el modo edición para que el usuario reintente.
func TestCategoryController_Update_FalloConservaEdicion(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()
	require.True(t, ctrl.StartEdit(1))

	ctrl.Update(999, dto.CategoryPayload{Nombre: "Fantasma"})

	assert.True(t, ctrl.State().Editing)
	assert.NotNil(t, ctrl.EditingRecord())
}

// Mientras hay un guardado en curso, los envíos adicionales se ignoran.
func TestCategoryController_Create_IgnoraEnvioDuplicado(t *testing.T) {
	var hits int64
	var mu sync.Mutex
	bloqueo := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/categorias", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		<-bloqueo
		json.NewEncoder(w).Encode(dto.CategoryResponse{ID: 1, Nombre: "Postres"})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctrl := adminclient.NewCategoryController(adminclient.NewClient(ts.URL), "")

	done := make(chan struct{})
	go func() {
		ctrl.Create(dto.CategoryPayload{Nombre: "Postres"})
		close(done)
	}()
	esperarCondicion(t, func() bool { return ctrl.State().Saving })

	ctrl.Create(dto.CategoryPayload{Nombre: "Postres"}) // debe ignorarse: ya hay un guardado en curso
	close(bloqueo)
	<-done

	mu.Lock()
	assert.Equal(t, int64(1), hits, "solo el primer envío llega al servidor")
	mu.Unlock()
}

// Durante el borrado el estado expone el ID en curso y los borrados
// adicionales se ignoran hasta que termine.
func TestCategoryController_Delete_ExponeIDEnCurso(t *testing.T) {
	var hits int64
	var mu sync.Mutex
	bloqueo := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/categorias", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]dto.CategoryResponse{{ID: 1, Nombre: "Entradas"}})
	})
	mux.HandleFunc("/api/categorias/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		<-bloqueo
		json.NewEncoder(w).Encode(dto.MensajeResponse{Mensaje: "Categoría eliminada correctamente"})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctrl := adminclient.NewCategoryController(adminclient.NewClient(ts.URL), "")
	ctrl.Load()

	done := make(chan struct{})
	go func() {
		ctrl.Delete(1)
		close(done)
	}()
	esperarCondicion(t, func() bool { return ctrl.State().DeletingID == "1" })

	ctrl.Delete(1) // debe ignorarse: ya hay un borrado en curso
	close(bloqueo)
	<-done

	mu.Lock()
	assert.Equal(t, int64(1), hits, "solo el primer borrado llega al servidor")
	mu.Unlock()
	assert.Empty(t, ctrl.State().DeletingID, "al terminar no queda borrado en curso")
}

// La confirmación se consulta también cuando el registro no está en la copia
// local: rechazarla evita que el delete llegue al servidor.
func TestCategoryController_Delete_SinCopiaLocalPideConfirmacion(t *testing.T) {
	ctrl, srv := newTestController(t)
	ctrl.Load()

	consultado := false
	ctrl.Confirm = func(item dto.CategoryResponse) bool {
		consultado = true
		assert.Zero(t, item.ID, "sin copia local se confirma con un registro vacío")
		return false
	}

	ctrl.Delete(999)

	assert.True(t, consultado, "la confirmación debe consultarse aunque el ID sea desconocido")
	assert.Empty(t, ctrl.State().Error, "un delete rechazado no publica error")
	srv.mu.Lock()
	assert.Len(t, srv.items, 2, "el servidor no debe recibir el delete rechazado")
	srv.mu.Unlock()
}

// Eliminar el registro que estaba en edición también sale del modo edición.
func TestCategoryController_Delete_RegistroEnEdicion(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Load()
	require.True(t, ctrl.StartEdit(1))

	ctrl.Delete(1)

	assert.False(t, ctrl.State().Editing)
	assert.Nil(t, ctrl.EditingRecord())
}

// StartEdit de un usuario nunca precarga la contraseña: vacía significa
// "conservar la actual".
func TestUserController_StartEdit_NoPrecargaPassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/usuarios", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]dto.UserResponse{{
			ID:        "user-001",
			Username:  "caja@saboresdelmar.com",
			FullName:  "Cajero Principal",
			Role:      "USER",
			CompanyID: "empresa-001",
			Active:    true,
		}})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctrl := adminclient.NewUserController(adminclient.NewClient(ts.URL), "")
	ctrl.Load()

	require.True(t, ctrl.StartEdit("user-001"))

	form := ctrl.EditingRecord()
	require.NotNil(t, form)
	assert.Equal(t, "caja@saboresdelmar.com", form.Username)
	assert.Equal(t, "Cajero Principal", form.FullName)
	assert.Empty(t, form.Password)
}
