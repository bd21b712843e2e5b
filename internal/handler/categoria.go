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

// CategoriaHandler exposes CRUD for categorias. Deleting a category also
// removes its products (two statements, matching the original behavior).
type CategoriaHandler struct {
	DB *gorm.DB
}

func NewCategoriaHandler(db *gorm.DB) *CategoriaHandler {
	return &CategoriaHandler{DB: db}
}

type categoriaReq struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
}

func (h *CategoriaHandler) Lista(c *gin.Context) {
	var categorias []models.Categoria
	if err := h.DB.Find(&categorias).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *CategoriaHandler) Obtiene(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var categoria models.Categoria
	if err := h.DB.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Categoría no encontrada")
		} else {
			util.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) Crea(c *gin.Context) {
	var req categoriaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de categoría inválidos")
		return
	}

	categoria := models.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	}
	if err := h.DB.Create(&categoria).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

func (h *CategoriaHandler) Actualiza(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req categoriaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de categoría inválidos")
		return
	}

	var categoria models.Categoria
	if err := h.DB.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Categoría no encontrada")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	categoria.Nombre = req.Nombre
	categoria.Descripcion = req.Descripcion
	if err := h.DB.Save(&categoria).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

// Elimina removes the category's products first, then the category itself.
// The two deletes are sequential, not transactional: a failure after the
// first statement leaves the products gone and the category in place.
func (h *CategoriaHandler) Elimina(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var categoria models.Categoria
	if err := h.DB.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Categoría no encontrada")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	if err := h.DB.Where("categoria = ?", categoria.Nombre).
		Delete(&models.Producto{}).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	if err := h.DB.Delete(&categoria).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada correctamente"})
}
