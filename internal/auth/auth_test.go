package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	tok, err := GerarToken(42, true)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := ValidarToken(tok)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}
	if claims.UserID != 42 || !claims.IsAdmin {
		t.Errorf("claims inesperadas: %+v", claims)
	}
}

func TestValidarTokenAdulterado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	tok, _ := GerarToken(1, false)

	t.Setenv("JWT_SECRET", "outro-segredo")
	if _, err := ValidarToken(tok); err == nil {
		t.Fatal("token assinado com outro segredo deveria ser rejeitado")
	}
}

func TestMiddlewareAutenticacao(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	tok, err := GerarToken(7, false)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	var visto uint
	handler := MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto = UsuarioID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	casos := []struct {
		nome    string
		montar  func(r *http.Request)
		quer    int
		querUID uint
	}{
		{
			nome:    "bearer",
			montar:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) },
			quer:    http.StatusOK,
			querUID: 7,
		},
		{
			nome:    "cookie",
			montar:  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieSessao, Value: tok}) },
			quer:    http.StatusOK,
			querUID: 7,
		},
		{
			nome:   "sem token",
			montar: func(r *http.Request) {},
			quer:   http.StatusUnauthorized,
		},
		{
			nome:   "token inválido",
			montar: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc.def.ghi") },
			quer:   http.StatusUnauthorized,
		},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			visto = 0
			req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
			c.montar(req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != c.quer {
				t.Fatalf("status %d, esperado %d", rec.Code, c.quer)
			}
			if visto != c.querUID {
				t.Errorf("UsuarioID no contexto = %d, esperado %d", visto, c.querUID)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	handler := MiddlewareAutenticacao(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	tokAdmin, _ := GerarToken(1, true)
	tokComum, _ := GerarToken(2, false)

	casos := []struct {
		nome string
		tok  string
		quer int
	}{
		{"admin passa", tokAdmin, http.StatusOK},
		{"comum barrado", tokComum, http.StatusForbidden},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/clientes/1", nil)
			req.Header.Set("Authorization", "Bearer "+c.tok)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != c.quer {
				t.Fatalf("status %d, esperado %d", rec.Code, c.quer)
			}
		})
	}
}
