package models

import "time"

// Bitacora records mutating requests for auditing.
type Bitacora struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Metodo    string    `gorm:"size:16" json:"metodo"`
	Ruta      string    `gorm:"size:255" json:"ruta"`
	Detalle   string    `gorm:"size:2048" json:"detalle"` // request body excerpt
	IP        string    `gorm:"size:64" json:"ip"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	CreatedAt time.Time `json:"fecha"`
}
