package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/captcha"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/config"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/database"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/router"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the real router against an in-memory database.
type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	captchas *captcha.Store
	clock    *fakeClock
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// a single connection keeps every query on the same :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	clock := &fakeClock{now: time.Now()}
	captchas := captcha.NewStore(captcha.WithClock(clock.Now))

	cfg := &config.Config{}
	cfg.App.PageSize = 20

	return &testEnv{
		router:   router.SetupRouter(cfg, db, captchas),
		db:       db,
		captchas: captchas,
		clock:    clock,
	}
}

// do performs a request against the test router. A non-nil body is sent as JSON.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// seedUsuario inserts an active user with a hashed password.
func (e *testEnv) seedUsuario(t *testing.T, nombre, email, password, rol string) models.Usuario {
	t.Helper()
	hash, err := util.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := models.Usuario{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: hash,
		Rol:          rol,
		Activo:       true,
	}
	if err := e.db.Create(&u).Error; err != nil {
		t.Fatalf("seed usuario: %v", err)
	}
	return u
}
