package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UsuarioHandler exposes CRUD for usuarios. Passwords arrive in plain text
// and are stored as PBKDF2 hashes; they are never serialized back.
type UsuarioHandler struct {
	DB *gorm.DB
}

func NewUsuarioHandler(db *gorm.DB) *UsuarioHandler {
	return &UsuarioHandler{DB: db}
}

type creaUsuarioReq struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Rol      string `json:"rol"`
}

type actualizaUsuarioReq struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"` // empty keeps the current password
	Rol      string `json:"rol"`
	Activo   *bool  `json:"activo"`
}

func (h *UsuarioHandler) Lista(c *gin.Context) {
	var usuarios []models.Usuario
	if err := h.DB.Find(&usuarios).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuarioHandler) Obtiene(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var usuario models.Usuario
	if err := h.DB.Where("id = ? AND activo = ?", id, true).
		First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Usuario no encontrado")
		} else {
			util.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Crea(c *gin.Context) {
	var req creaUsuarioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de usuario inválidos")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, "Email inválido")
		return
	}
	if !util.IsStrongPassword(req.Password) {
		util.Error(c, http.StatusBadRequest,
			"La contraseña debe tener 8-32 caracteres con mayúsculas, minúsculas y números")
		return
	}
	if req.Rol == "" {
		req.Rol = "usuario"
	}
	if err := util.ValidateRol(req.Rol); err != nil {
		util.Error(c, http.StatusBadRequest, "Rol inválido")
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		util.ServerError(c, err)
		return
	}

	usuario := models.Usuario{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: hash,
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := h.DB.Create(&usuario).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usuario)
}

func (h *UsuarioHandler) Actualiza(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req actualizaUsuarioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de usuario inválidos")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, "Email inválido")
		return
	}

	var usuario models.Usuario
	if err := h.DB.First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Usuario no encontrado")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	usuario.Nombre = req.Nombre
	usuario.Email = req.Email
	if req.Rol != "" {
		if err := util.ValidateRol(req.Rol); err != nil {
			util.Error(c, http.StatusBadRequest, "Rol inválido")
			return
		}
		usuario.Rol = req.Rol
	}
	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}
	if req.Password != "" {
		if !util.IsStrongPassword(req.Password) {
			util.Error(c, http.StatusBadRequest,
				"La contraseña debe tener 8-32 caracteres con mayúsculas, minúsculas y números")
			return
		}
		hash, err := util.HashPassword(req.Password)
		if err != nil {
			util.ServerError(c, err)
			return
		}
		usuario.PasswordHash = hash
	}

	if err := h.DB.Save(&usuario).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Elimina(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.DB.Delete(&models.Usuario{}, id).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado correctamente"})
}
