package handler_test

import (
	"net/http"
	"testing"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
)

func TestBitacora_RegistraMutaciones(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/insertaCategoria/adi", map[string]string{
		"nombre": "Motor",
	})
	env.do(t, http.MethodGet, "/muestraCategoria", nil)

	var entradas []models.Bitacora
	if err := env.db.Find(&entradas).Error; err != nil {
		t.Fatal(err)
	}
	if len(entradas) != 1 {
		t.Fatalf("bitacora rows = %d, want 1 (GET not logged)", len(entradas))
	}
	if entradas[0].Metodo != http.MethodPost || entradas[0].Ruta != "/insertaCategoria/adi" {
		t.Errorf("unexpected entry: %+v", entradas[0])
	}
}

// Login bodies carry credentials and must not land in the log.
func TestBitacora_IgnoraLogin(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/login", map[string]string{
		"email": "x@x.com", "password": "secreto",
	})

	var n int64
	env.db.Model(&models.Bitacora{}).Count(&n)
	if n != 0 {
		t.Errorf("login attempt logged, rows = %d", n)
	}
}

func TestBitacora_Lista(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		env.do(t, http.MethodPost, "/insertaCategoria/adi", map[string]string{
			"nombre": "Motor",
		})
	}

	w := env.do(t, http.MethodGet, "/bitacora?page=1&page_size=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Items []models.Bitacora `json:"items"`
		Total int64             `json:"total"`
		Page  int               `json:"page"`
		Size  int               `json:"size"`
	}
	decodeJSON(t, w, &resp)
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}
	if len(resp.Items) != 2 {
		t.Errorf("items = %d, want 2 (paginated)", len(resp.Items))
	}
	// newest first
	if len(resp.Items) == 2 && resp.Items[0].ID < resp.Items[1].ID {
		t.Error("entries not ordered newest first")
	}
}
