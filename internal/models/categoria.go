package models

import "time"

// Categoria groups products (e.g. Motor, Frenos, Suspensión).
type Categoria struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"size:64;not null" json:"nombre"`
	Descripcion string    `gorm:"size:255" json:"descripcion"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
