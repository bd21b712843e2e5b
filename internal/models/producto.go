package models

import "time"

// Producto represents an automotive part in stock.
// La categoría se guarda por nombre, igual que en el esquema original.
type Producto struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Nombre           string    `gorm:"size:128;not null" json:"nombre"`
	Descripcion      string    `gorm:"size:255" json:"descripcion"`
	UnidadMedida     string    `gorm:"size:32" json:"unidad_medida"`
	PrecioCosto      float64   `json:"precio_costo"`
	PrecioVenta      float64   `json:"precio_venta"`
	Categoria        string    `gorm:"size:64;index" json:"categoria"`
	Marca            string    `gorm:"size:64" json:"marca"`
	CodigoReferencia string    `gorm:"size:64;index" json:"codigo_referencia"`
	Stock            int       `json:"stock"`
	StockMinimo      int       `json:"stock_minimo"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
