package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/usecase/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authFixture struct {
	router *gin.Engine
	svc    *auth.Service
	repo   *memory.ClientRepo
	client *models.Client
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	repo := memory.NewClientRepo(memory.NewStore())
	c := &models.Client{Name: "Ana", Email: "ana@x.com", Phone: "11", Status: "ATIVO"}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	svc := auth.NewService(repo, "segredo")

	r := gin.New()
	r.GET("/me", AuthMiddleware(svc), func(c *gin.Context) {
		u, _ := CurrentUser(c)
		actor := audit.ActorFrom(c.Request.Context())
		if actor == nil || *actor != u.ID {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"usuario": u})
	})

	return authFixture{router: r, svc: svc, repo: repo, client: c}
}

func (f authFixture) get(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body %q", w.Body.String())
	}
	msg, _ := body["error"].(string)
	return msg
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	f := newAuthFixture(t)
	token, _ := f.svc.GenerateToken(f.client)

	w := f.get(token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Usuario AuthUser `json:"usuario"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Usuario.ID != f.client.ID || body.Usuario.Phone != "11" || body.Usuario.Status != "ATIVO" {
		t.Fatalf("unexpected user: %+v", body.Usuario)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	f := newAuthFixture(t)

	cases := []struct {
		name  string
		token string
		want  string
	}{
		{"missing", "", "Token não fornecido"},
		{"garbage", "abc.def.ghi", "Token inválido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := f.get(tc.token)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if got := errorOf(t, w); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAuthMiddleware_UserGone(t *testing.T) {
	f := newAuthFixture(t)
	token, _ := f.svc.GenerateToken(f.client)
	_ = f.repo.Delete(context.Background(), f.client.ID)

	w := f.get(token)
	if w.Code != http.StatusUnauthorized || errorOf(t, w) != "Usuário não encontrado" {
		t.Fatalf("expected 401 user not found, got %d %s", w.Code, w.Body.String())
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("http://localhost:3001, https://painel.x.com"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3001")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3001" ||
		w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("unexpected cors headers: %v", w.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unknown origin should not be allowed")
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if id := w.Header().Get(HeaderRequestID); id == "" || id != w.Body.String() {
		t.Fatalf("expected generated request id, got %q / %q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc" {
		t.Fatalf("expected propagated id, got %q", w.Body.String())
	}
}
