package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	Respond(c, err)
	return w
}

func TestRespond_MapsKindToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("missing_fields", "Campos obrigatórios"), http.StatusBadRequest},
		{Conflict("scheduling_conflict", "Conflito"), http.StatusBadRequest},
		{NotFoundErr("pet_not_found", "Pet não encontrado"), http.StatusNotFound},
		{UnauthorizedErr("invalid_credentials", "Credenciais inválidas"), http.StatusUnauthorized},
		{errors.New("connection reset"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFoundErr("x", "y")), http.StatusNotFound},
	}

	for _, tc := range cases {
		w := respond(tc.err)
		if w.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
		}
	}
}

func TestRespond_DoesNotLeakInternalErrors(t *testing.T) {
	w := respond(errors.New("pq: password authentication failed"))

	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Message != "Erro interno do servidor" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestRespond_UsesBusinessMessage(t *testing.T) {
	w := respond(Conflict("duplicate_email", "Já existe um cliente com este e-mail"))

	var body HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != "Já existe um cliente com este e-mail" || body.Code != "duplicate_email" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRespond_WrappedBusinessError(t *testing.T) {
	w := respond(fmt.Errorf("create client: %w", Conflict("duplicate_email", "Já existe um cliente com este e-mail")))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRespond_InternalKindHidesMessage(t *testing.T) {
	w := respond(New(KindInternal, "db_down", "connection refused"))

	var body HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusInternalServerError || body.Message != "Erro interno do servidor" {
		t.Fatalf("unexpected response %d %+v", w.Code, body)
	}
}
