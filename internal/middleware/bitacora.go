package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxDetalle = 2000

// Bitacora records mutating requests in the activity log. Reads are not
// logged; neither are login attempts (the body carries credentials).
func Bitacora(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}
		if c.Request.URL.Path == "/login" {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		detalle := ""
		if len(bodyBytes) > 0 && len(bodyBytes) < maxDetalle {
			detalle = string(bodyBytes)
		}

		entrada := models.Bitacora{
			Metodo:    c.Request.Method,
			Ruta:      c.Request.URL.Path,
			Detalle:   detalle,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entrada).Error
	}
}
