package models

import "time"

// Usuario represents an application user (vendedor / admin).
type Usuario struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nombre       string    `gorm:"size:64;not null" json:"nombre"`
	Email        string    `gorm:"size:128;index;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Rol          string    `gorm:"size:32;default:usuario" json:"rol"` // admin / usuario / vendedor
	Activo       bool      `gorm:"default:true" json:"activo"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
