package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReporteHandler exports the product inventory for the Reportes page.
type ReporteHandler struct {
	DB *gorm.DB
}

func NewReporteHandler(db *gorm.DB) *ReporteHandler {
	return &ReporteHandler{DB: db}
}

var reporteHeaders = []string{
	"Código", "Nombre", "Categoría", "Marca", "Unidad",
	"Precio costo", "Precio venta", "Stock", "Stock mínimo",
}

func (h *ReporteHandler) productos() ([]models.Producto, error) {
	var productos []models.Producto
	err := h.DB.Order("categoria, nombre").Find(&productos).Error
	return productos, err
}

// InventarioCSV streams the inventory as CSV.
func (h *ReporteHandler) InventarioCSV(c *gin.Context) {
	productos, err := h.productos()
	if err != nil {
		util.ServerError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"inventario_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel reads accented characters correctly
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(reporteHeaders)
	for _, p := range productos {
		writer.Write([]string{
			p.CodigoReferencia,
			p.Nombre,
			p.Categoria,
			p.Marca,
			p.UnidadMedida,
			strconv.FormatFloat(p.PrecioCosto, 'f', 2, 64),
			strconv.FormatFloat(p.PrecioVenta, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.StockMinimo),
		})
	}
}

// InventarioXLSX streams the inventory as an Excel workbook.
func (h *ReporteHandler) InventarioXLSX(c *gin.Context) {
	productos, err := h.productos()
	if err != nil {
		util.ServerError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Inventario"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.ServerError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, hdr := range reporteHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, hdr)
	}

	for idx, p := range productos {
		row := idx + 2
		values := []interface{}{
			p.CodigoReferencia,
			p.Nombre,
			p.Categoria,
			p.Marca,
			p.UnidadMedida,
			p.PrecioCosto,
			p.PrecioVenta,
			p.Stock,
			p.StockMinimo,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "E", 14)
	f.SetColWidth(sheetName, "F", "G", 12)
	f.SetColWidth(sheetName, "H", "I", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"inventario_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "No se pudo generar el reporte")
	}
}
