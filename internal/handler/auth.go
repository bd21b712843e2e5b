package handler

import (
	"errors"
	"net/http"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/captcha"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves the captcha challenge and the login gate.
type AuthHandler struct {
	DB       *gorm.DB
	Captchas *captcha.Store
}

func NewAuthHandler(db *gorm.DB, captchas *captcha.Store) *AuthHandler {
	return &AuthHandler{
		DB:       db,
		Captchas: captchas,
	}
}

// GeneraCaptcha issues a new challenge. The text is returned to the client,
// which renders it locally; the id is the only thing echoed back on login.
func (h *AuthHandler) GeneraCaptcha(c *gin.Context) {
	id, text := h.Captchas.Issue()
	c.JSON(http.StatusOK, gin.H{
		"captchaId":   id,
		"captchaText": text,
	})
}

type loginReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CaptchaID   string `json:"captchaId"`
	CaptchaText string `json:"captchaText"`
}

type perfilUsuario struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// Login runs the two-gate check: captcha first, credentials second.
// Failures carry success=false with a message; the credential message is
// deliberately generic so the response never reveals whether the email or
// the password was the wrong half.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Solicitud inválida",
		})
		return
	}

	if ok, reason := h.Captchas.Verify(req.CaptchaID, req.CaptchaText); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": reason,
		})
		return
	}

	var usuario models.Usuario
	err := h.DB.Where("email = ? AND activo = ?", req.Email, true).
		First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Credenciales incorrectas",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error del servidor",
			})
		}
		return
	}

	if !util.CheckPassword(req.Password, usuario.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Credenciales incorrectas",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login exitoso",
		"user": perfilUsuario{
			ID:     usuario.ID,
			Nombre: usuario.Nombre,
			Email:  usuario.Email,
			Rol:    usuario.Rol,
		},
	})
}
