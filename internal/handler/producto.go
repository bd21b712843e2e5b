package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductoHandler exposes CRUD plus stock adjustment for productos.
// Deletes are hard deletes.
type ProductoHandler struct {
	DB *gorm.DB
}

func NewProductoHandler(db *gorm.DB) *ProductoHandler {
	return &ProductoHandler{DB: db}
}

type productoReq struct {
	Nombre           string  `json:"nombre" binding:"required"`
	Descripcion      string  `json:"descripcion"`
	UnidadMedida     string  `json:"unidad_medida"`
	PrecioCosto      float64 `json:"precio_costo"`
	PrecioVenta      float64 `json:"precio_venta"`
	Categoria        string  `json:"categoria"`
	Marca            string  `json:"marca"`
	CodigoReferencia string  `json:"codigo_referencia"`
	Stock            int     `json:"stock"`
	StockMinimo      int     `json:"stock_minimo"`
}

func (h *ProductoHandler) Lista(c *gin.Context) {
	var productos []models.Producto
	if err := h.DB.Find(&productos).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

func (h *ProductoHandler) Obtiene(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var producto models.Producto
	if err := h.DB.First(&producto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Producto no encontrado")
		} else {
			util.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, producto)
}

func (h *ProductoHandler) Crea(c *gin.Context) {
	var req productoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de producto inválidos")
		return
	}

	producto := models.Producto{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		UnidadMedida:     req.UnidadMedida,
		PrecioCosto:      req.PrecioCosto,
		PrecioVenta:      req.PrecioVenta,
		Categoria:        req.Categoria,
		Marca:            req.Marca,
		CodigoReferencia: req.CodigoReferencia,
		Stock:            req.Stock,
		StockMinimo:      req.StockMinimo,
	}
	if err := h.DB.Create(&producto).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, producto)
}

func (h *ProductoHandler) Actualiza(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req productoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Datos de producto inválidos")
		return
	}

	var producto models.Producto
	if err := h.DB.First(&producto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Producto no encontrado")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	producto.Nombre = req.Nombre
	producto.Descripcion = req.Descripcion
	producto.UnidadMedida = req.UnidadMedida
	producto.PrecioCosto = req.PrecioCosto
	producto.PrecioVenta = req.PrecioVenta
	producto.Categoria = req.Categoria
	producto.Marca = req.Marca
	producto.CodigoReferencia = req.CodigoReferencia
	producto.Stock = req.Stock
	producto.StockMinimo = req.StockMinimo

	if err := h.DB.Save(&producto).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

func (h *ProductoHandler) Elimina(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.DB.Delete(&models.Producto{}, id).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado correctamente"})
}

type ajusteStockReq struct {
	Cantidad *int `json:"cantidad"`
}

// AjustaStock adds (or subtracts, if negative) cantidad to the product's
// stock. A missing, zero or non-numeric cantidad is rejected before any
// database write happens.
func (h *ProductoHandler) AjustaStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req ajusteStockReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Cantidad == nil {
		util.Error(c, http.StatusBadRequest,
			"Debe enviar una 'cantidad' numérica para sumar o restar al stock")
		return
	}
	if err := util.ValidateStockDelta(*req.Cantidad); err != nil {
		util.Error(c, http.StatusBadRequest,
			"Debe enviar una 'cantidad' numérica para sumar o restar al stock")
		return
	}

	var producto models.Producto
	if err := h.DB.First(&producto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Producto no encontrado")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	producto.Stock += *req.Cantidad
	if err := h.DB.Save(&producto).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje":  fmt.Sprintf("Stock del producto %d actualizado correctamente", producto.ID),
		"producto": producto,
	})
}
