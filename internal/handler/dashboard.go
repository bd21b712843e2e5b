package handler

import (
	"net/http"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler builds the summary shown on the dashboard page.
type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// Resumen returns entity counts and the products at or below their minimum
// stock, so the front end can flag what needs reordering.
func (h *DashboardHandler) Resumen(c *gin.Context) {
	var totalProductos, totalCategorias, totalProveedores, totalUsuarios int64

	counts := []struct {
		model interface{}
		dest  *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&models.Producto{}, &totalProductos, nil},
		{&models.Categoria{}, &totalCategorias, nil},
		{&models.Proveedor{}, &totalProveedores, func(db *gorm.DB) *gorm.DB {
			return db.Where("activo = ?", true)
		}},
		{&models.Usuario{}, &totalUsuarios, func(db *gorm.DB) *gorm.DB {
			return db.Where("activo = ?", true)
		}},
	}
	for _, cnt := range counts {
		q := h.DB.Model(cnt.model)
		if cnt.scope != nil {
			q = cnt.scope(q)
		}
		if err := q.Count(cnt.dest).Error; err != nil {
			util.ServerError(c, err)
			return
		}
	}

	var stockBajo []models.Producto
	if err := h.DB.Where("stock <= stock_minimo").
		Order("stock").
		Find(&stockBajo).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	type valorRow struct {
		Valor float64
	}
	var valor valorRow
	if err := h.DB.Model(&models.Producto{}).
		Select("COALESCE(SUM(stock * precio_costo), 0) AS valor").
		Scan(&valor).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_productos":   totalProductos,
		"total_categorias":  totalCategorias,
		"total_proveedores": totalProveedores,
		"total_usuarios":    totalUsuarios,
		"valor_inventario":  valor.Valor,
		"stock_bajo":        stockBajo,
	})
}
