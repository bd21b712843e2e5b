package database

import (
	"fmt"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/config"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Producto{},
		&models.Categoria{},
		&models.Proveedor{},
		&models.Bitacora{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed creates the initial admin user when the usuarios table is empty,
// so a fresh install can pass the login gate.
func Seed(db *gorm.DB, cfg config.SecurityConfig) error {
	var count int64
	if err := db.Model(&models.Usuario{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	hash, err := util.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.Usuario{
		Nombre:       cfg.AdminNombre,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Rol:          "admin",
		Activo:       true,
	}
	if admin.Nombre == "" {
		admin.Nombre = "Administrador"
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
