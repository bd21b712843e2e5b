package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProveedorHandler exposes CRUD for proveedores. Unlike productos and
// categorias, deletes here are soft: the row stays with activo=false.
type ProveedorHandler struct {
	DB *gorm.DB
}

func NewProveedorHandler(db *gorm.DB) *ProveedorHandler {
	return &ProveedorHandler{DB: db}
}

type proveedorReq struct {
	Nombre    string `json:"nombre" binding:"required"`
	Empresa   string `json:"empresa"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}

func (h *ProveedorHandler) Lista(c *gin.Context) {
	var proveedores []models.Proveedor
	if err := h.DB.Where("activo = ?", true).
		Order("nombre").
		Find(&proveedores).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedores)
}

func (h *ProveedorHandler) Obtiene(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var proveedor models.Proveedor
	if err := h.DB.Where("id = ? AND activo = ?", id, true).
		First(&proveedor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Proveedor no encontrado")
		} else {
			util.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, proveedor)
}

func (h *ProveedorHandler) Crea(c *gin.Context) {
	var req proveedorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de proveedor inválidos")
		return
	}

	proveedor := models.Proveedor{
		Nombre:    req.Nombre,
		Empresa:   req.Empresa,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if err := h.DB.Create(&proveedor).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proveedor)
}

func (h *ProveedorHandler) Actualiza(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req proveedorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de proveedor inválidos")
		return
	}

	var proveedor models.Proveedor
	if err := h.DB.Where("id = ? AND activo = ?", id, true).
		First(&proveedor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Proveedor no encontrado")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	proveedor.Nombre = req.Nombre
	proveedor.Empresa = req.Empresa
	proveedor.Telefono = req.Telefono
	proveedor.Email = req.Email
	proveedor.Direccion = req.Direccion

	if err := h.DB.Save(&proveedor).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedor)
}

// Elimina flips activo to false instead of removing the row, so historic
// purchases keep pointing at a real supplier.
func (h *ProveedorHandler) Elimina(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.DB.Model(&models.Proveedor{}).
		Where("id = ?", id).
		Update("activo", false).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proveedor eliminado correctamente"})
}
