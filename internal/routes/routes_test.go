package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/config"
	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/memory"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	r := gin.New()

	RegisterRoutes(r, Repositories{
		Clients:      memory.NewClientRepo(store),
		Pets:         memory.NewPetRepo(store),
		Services:     memory.NewServiceRepo(store),
		Appointments: memory.NewAppointmentRepo(store),
		Dashboard:    memory.NewDashboardRepo(store),
		AuditLogs:    memory.NewAuditLog(),
	}, Options{
		Config: &config.Config{
			JWTSecret:  "test-secret",
			CORSOrigin: "*",
		},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Location: time.UTC,
	})

	return r
}

func do(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return out
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, w.Code, w.Body.String())
	}
	if got := decode(t, w)["error"]; got != msg {
		t.Fatalf("expected error %q, got %v", msg, got)
	}
}

func createClient(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()
	w := do(r, http.MethodPost, "/api/clientes", map[string]any{
		"nome":     "Ana",
		"email":    email,
		"telefone": "11999990000",
		"senha":    "segredo",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: %d %s", w.Code, w.Body.String())
	}
	return uint(decode(t, w)["id"].(float64))
}

func createPet(t *testing.T, r *gin.Engine, clientID uint) uint {
	t.Helper()
	w := do(r, http.MethodPost, "/api/pets", map[string]any{
		"nome":      "Rex",
		"especie":   "Cachorro",
		"raca":      "Vira-lata",
		"idade":     3,
		"peso":      12.5,
		"clienteId": clientID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create pet: %d %s", w.Code, w.Body.String())
	}
	return uint(decode(t, w)["id"].(float64))
}

func login(t *testing.T, r *gin.Engine, email string) *http.Cookie {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/login", map[string]any{"email": email, "senha": "segredo"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "token" && ck.Value != "" {
			return ck
		}
	}
	t.Fatalf("login did not set token cookie")
	return nil
}

// ======================================================
// CLIENTES
// ======================================================

func TestClients_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	createClient(t, r, "ana@example.com")

	w := do(r, http.MethodPost, "/api/clientes", map[string]any{
		"nome":     "Outra Ana",
		"email":    "ANA@example.com",
		"telefone": "11988887777",
	})
	expectError(t, w, http.StatusBadRequest, "Já existe um cliente com este e-mail")
}

func TestClients_InvalidID(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/clientes/abc", nil)
	expectError(t, w, http.StatusBadRequest, "ID inválido")

	w = do(r, http.MethodGet, "/api/clientes/42", nil)
	expectError(t, w, http.StatusNotFound, "Cliente não encontrado")
}

func TestClients_UpdateRequiresAuth(t *testing.T) {
	r := newTestRouter(t)
	createClient(t, r, "ana@example.com")

	w := do(r, http.MethodDelete, "/api/clientes/1", nil)
	expectError(t, w, http.StatusUnauthorized, "Token não fornecido")

	w = do(r, http.MethodPut, "/api/clientes/1", map[string]any{"nome": "Ana"}, &http.Cookie{Name: "token", Value: "lixo"})
	expectError(t, w, http.StatusUnauthorized, "Token inválido")
}

// ======================================================
// PETS
// ======================================================

func TestPets_UnknownClient(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/pets", map[string]any{
		"nome":      "Rex",
		"especie":   "Cachorro",
		"raca":      "Vira-lata",
		"idade":     3,
		"peso":      12.5,
		"clienteId": 99,
	})
	expectError(t, w, http.StatusBadRequest, "Cliente não encontrado")
}

func TestPets_ByClientLookup(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/pets/cliente/77", nil)
	expectError(t, w, http.StatusNotFound, "Cliente não encontrado")

	clientID := createClient(t, r, "ana@example.com")
	createPet(t, r, clientID)

	w = do(r, http.MethodGet, "/api/pets/cliente/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var pets []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &pets); err != nil || len(pets) != 1 {
		t.Fatalf("expected one pet, got %s", w.Body.String())
	}
}

// ======================================================
// AGENDAMENTOS
// ======================================================

func TestAppointments_ConflictSameHour(t *testing.T) {
	r := newTestRouter(t)
	petID := createPet(t, r, createClient(t, r, "ana@example.com"))

	w := do(r, http.MethodPost, "/api/agendamentos", map[string]any{
		"petId":  petID,
		"data":   "2024-01-01T10:30:00Z",
		"status": "AGENDADO",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/agendamentos", map[string]any{
		"petId":  petID,
		"data":   "2024-01-01T10:45:00Z",
		"status": "AGENDADO",
	})
	expectError(t, w, http.StatusBadRequest, "Já existe um agendamento nesta data e horário")
}

func TestProjections_RenderEmptyRelations(t *testing.T) {
	r := newTestRouter(t)
	clientID := createClient(t, r, "ana@example.com")

	w := do(r, http.MethodGet, "/api/clientes/1/pets", nil)
	if !strings.Contains(w.Body.String(), `"pets":[]`) {
		t.Fatalf("expected empty pets list, got %s", w.Body.String())
	}

	petID := createPet(t, r, clientID)

	w = do(r, http.MethodGet, "/api/pets/1/agendamentos", nil)
	if !strings.Contains(w.Body.String(), `"agendamentos":[]`) {
		t.Fatalf("expected empty appointments list, got %s", w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/agendamentos", map[string]any{
		"petId":  petID,
		"data":   "2024-01-01T09:00:00Z",
		"status": "AGENDADO",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create appointment: %d %s", w.Code, w.Body.String())
	}

	for _, path := range []string{"/api/agendamentos/1/servicos", "/api/agendamentos"} {
		w = do(r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"servicos":[]`) {
			t.Fatalf("%s: expected empty servicos list, got %d %s", path, w.Code, w.Body.String())
		}
	}
}

func TestAppointments_DeleteMissing(t *testing.T) {
	r := newTestRouter(t)
	createClient(t, r, "ana@example.com")
	token := login(t, r, "ana@example.com")

	w := do(r, http.MethodDelete, "/api/agendamentos/999", nil, token)
	expectError(t, w, http.StatusNotFound, "Agendamento não encontrado")
}

func TestAppointments_ServicesLinking(t *testing.T) {
	r := newTestRouter(t)
	petID := createPet(t, r, createClient(t, r, "ana@example.com"))
	token := login(t, r, "ana@example.com")

	w := do(r, http.MethodPost, "/api/servicos", map[string]any{
		"nome":      "Banho",
		"descricao": "Banho completo",
		"preco":     50.0,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create service: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/agendamentos", map[string]any{
		"petId":  petID,
		"data":   "2024-01-01T10:00:00Z",
		"status": "AGENDADO",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create appointment: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/agendamentos/1/servicos", map[string]any{"servicoId": 1}, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/agendamentos/1/servicos", map[string]any{"servicoId": 1}, token)
	expectError(t, w, http.StatusBadRequest, "Serviço já vinculado a este agendamento")

	w = do(r, http.MethodGet, "/api/servicos/agendamento/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = do(r, http.MethodDelete, "/api/agendamentos/1/servicos/1", nil, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodDelete, "/api/agendamentos/1/servicos/1", nil, token)
	expectError(t, w, http.StatusNotFound, "Serviço não vinculado a este agendamento")
}

// ======================================================
// AUTH
// ======================================================

func TestAuth_LoginAndMe(t *testing.T) {
	r := newTestRouter(t)
	createClient(t, r, "ana@example.com")

	w := do(r, http.MethodPost, "/api/auth/login", map[string]any{"email": "ana@example.com", "senha": "errada"})
	expectError(t, w, http.StatusUnauthorized, "Credenciais inválidas")

	token := login(t, r, "ana@example.com")

	w = do(r, http.MethodGet, "/api/auth/me", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	user, ok := decode(t, w)["usuario"].(map[string]any)
	if !ok || user["email"] != "ana@example.com" {
		t.Fatalf("unexpected /me body: %s", w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/auth/me", nil)
	expectError(t, w, http.StatusUnauthorized, "Token não fornecido")
}

func TestHealth_MemoryMode(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDashboard_Empty(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
