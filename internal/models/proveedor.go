package models

import "time"

// Proveedor represents a parts supplier. Deletes are soft: the row keeps
// existing with Activo=false so purchase history stays consistent.
type Proveedor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:64;not null" json:"nombre"`
	Empresa   string    `gorm:"size:128" json:"empresa"`
	Telefono  string    `gorm:"size:32" json:"telefono"`
	Email     string    `gorm:"size:128" json:"email"`
	Direccion string    `gorm:"size:255" json:"direccion"`
	Activo    bool      `gorm:"default:true;index" json:"activo"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
