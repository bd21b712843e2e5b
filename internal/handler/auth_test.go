package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/captcha"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
)

type captchaResp struct {
	CaptchaID   string `json:"captchaId"`
	CaptchaText string `json:"captchaText"`
}

type loginResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *struct {
		ID     uint   `json:"id"`
		Nombre string `json:"nombre"`
		Email  string `json:"email"`
		Rol    string `json:"rol"`
	} `json:"user"`
}

func (e *testEnv) issueCaptcha(t *testing.T) captchaResp {
	t.Helper()
	w := e.do(t, http.MethodGet, "/captcha", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /captcha status = %d, want 200", w.Code)
	}
	var resp captchaResp
	decodeJSON(t, w, &resp)
	return resp
}

func TestGeneraCaptcha(t *testing.T) {
	env := newTestEnv(t)

	resp := env.issueCaptcha(t)
	if resp.CaptchaID == "" {
		t.Error("captchaId is empty")
	}
	if len(resp.CaptchaText) != captcha.DefaultTextLength {
		t.Errorf("captchaText length = %d, want %d",
			len(resp.CaptchaText), captcha.DefaultTextLength)
	}
	if resp.CaptchaText != strings.ToUpper(resp.CaptchaText) {
		t.Errorf("captchaText %q is not uppercase", resp.CaptchaText)
	}
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	env.seedUsuario(t, "Freddy", "freddy@taller.com", "ClaveSegura1", "admin")

	ch := env.issueCaptcha(t)
	w := env.do(t, http.MethodPost, "/login", map[string]string{
		"email":       "freddy@taller.com",
		"password":    "ClaveSegura1",
		"captchaId":   ch.CaptchaID,
		"captchaText": ch.CaptchaText,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	var resp loginResp
	decodeJSON(t, w, &resp)
	if !resp.Success {
		t.Fatalf("success = false, message = %q", resp.Message)
	}
	if resp.Message != "Login exitoso" {
		t.Errorf("message = %q, want %q", resp.Message, "Login exitoso")
	}
	if resp.User == nil {
		t.Fatal("user profile missing from response")
	}
	if resp.User.Email != "freddy@taller.com" || resp.User.Rol != "admin" || resp.User.Nombre != "Freddy" {
		t.Errorf("unexpected profile: %+v", resp.User)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("response leaks a password field")
	}
}

// The submitted text is case-insensitive: the challenge is uppercase but a
// lowercase answer must pass.
func TestLogin_CaptchaLowercase(t *testing.T) {
	env := newTestEnv(t)
	env.seedUsuario(t, "Freddy", "freddy@taller.com", "ClaveSegura1", "admin")

	ch := env.issueCaptcha(t)
	w := env.do(t, http.MethodPost, "/login", map[string]string{
		"email":       "freddy@taller.com",
		"password":    "ClaveSegura1",
		"captchaId":   ch.CaptchaID,
		"captchaText": strings.ToLower(ch.CaptchaText),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
}

func TestLogin_CaptchaIncorrect(t *testing.T) {
	env := newTestEnv(t)
	env.seedUsuario(t, "Freddy", "freddy@taller.com", "ClaveSegura1", "admin")

	ch := env.issueCaptcha(t)
	w := env.do(t, http.MethodPost, "/login", map[string]string{
		"email":       "freddy@taller.com",
		"password":    "ClaveSegura1",
		"captchaId":   ch.CaptchaID,
		"captchaText": "WRONG9",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var resp loginResp
	decodeJSON(t, w, &resp)
	if resp.Success {
		t.Error("success = true with a wrong captcha")
	}
	if resp.Message != captcha.ReasonIncorrect {
		t.Errorf("message = %q, want %q", resp.Message, captcha.ReasonIncorrect)
	}
}

func TestLogin_CaptchaExpired(t *testing.T) {
	env := newTestEnv(t)
	env.seedUsuario(t, "Freddy", "freddy@taller.com", "ClaveSegura1", "admin")

	ch := env.issueCaptcha(t)
	env.clock.Advance(captcha.DefaultTTL + time.Minute)

	w := env.do(t, http.MethodPost, "/login", map[string]string{
		"email":       "freddy@taller.com",
		"password":    "ClaveSegura1",
		"captchaId":   ch.CaptchaID,
		"captchaText": ch.CaptchaText,
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var resp loginResp
	decodeJSON(t, w, &resp)
	if resp.Message != captcha.ReasonExpired {
		t.Errorf("message = %q, want %q", resp.Message, captcha.ReasonExpired)
	}
}

// A captcha is consumed by its first use: replaying the same id after a
// successful login must fail.
func TestLogin_CaptchaSingleUse(t *testing.T) {
	env := newTestEnv(t)
	env.seedUsuario(t, "Freddy", "freddy@taller.com", "ClaveSegura1", "admin")

	ch := env.issueCaptcha(t)
	body := map[string]string{
		"email":       "freddy@taller.com",
		"password":    "ClaveSegura1",
		"captchaId":   ch.CaptchaID,
		"captchaText": ch.CaptchaText,
	}

	if w := env.do(t, http.MethodPost, "/login", body); w.Code != http.StatusOK {
		t.Fatalf("first login status = %d, want 200", w.Code)
	}
	w := env.do(t, http.MethodPost, "/login", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("replayed login status = %d, want 401", w.Code)
	}
	var resp loginResp
	decodeJSON(t, w, &resp)
	if resp.Message != captcha.ReasonExpired {
		t.Errorf("message = %q, want %q", resp.Message, captcha.ReasonExpired)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_GenericCredentialError(t *testing.T) {
	env := newTestEnv(t)
	env.seedUsuario(t, "Freddy", "freddy@taller.com", "ClaveSegura1", "admin")

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"unknown email", "nadie@taller.com", "ClaveSegura1"},
		{"wrong password", "freddy@taller.com", "ClaveMala99"},
	}

	var messages []string
	for _, tc := range cases {
		ch := env.issueCaptcha(t)
		w := env.do(t, http.MethodPost, "/login", map[string]string{
			"email":       tc.email,
			"password":    tc.pass,
			"captchaId":   ch.CaptchaID,
			"captchaText": ch.CaptchaText,
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, w.Code)
		}
		var resp loginResp
		decodeJSON(t, w, &resp)
		if resp.Message != "Credenciales incorrectas" {
			t.Errorf("%s: message = %q, want %q", tc.name, resp.Message, "Credenciales incorrectas")
		}
		messages = append(messages, resp.Message)
	}

	if messages[0] != messages[1] {
		t.Errorf("messages differ: %q vs %q", messages[0], messages[1])
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUsuario(t, "Freddy", "freddy@taller.com", "ClaveSegura1", "admin")
	if err := env.db.Model(&models.Usuario{}).Where("id = ?", u.ID).
		Update("activo", false).Error; err != nil {
		t.Fatalf("deactivate usuario: %v", err)
	}

	ch := env.issueCaptcha(t)
	w := env.do(t, http.MethodPost, "/login", map[string]string{
		"email":       "freddy@taller.com",
		"password":    "ClaveSegura1",
		"captchaId":   ch.CaptchaID,
		"captchaText": ch.CaptchaText,
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var resp loginResp
	decodeJSON(t, w, &resp)
	if resp.Message != "Credenciales incorrectas" {
		t.Errorf("message = %q, want %q", resp.Message, "Credenciales incorrectas")
	}
}
