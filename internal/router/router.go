package router

import (
	"time"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/captcha"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/config"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/handler"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the full route table. Route
// names follow the original API, which the SPA front end already consumes.
func SetupRouter(cfg *config.Config, db *gorm.DB, captchas *captcha.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// the SPA runs on its own dev server, so everything is CORS-open
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	r.Use(middleware.Bitacora(db))

	// login gate
	authHandler := handler.NewAuthHandler(db, captchas)
	r.GET("/captcha", authHandler.GeneraCaptcha)
	r.POST("/login", authHandler.Login)

	// productos (hard delete)
	productoHandler := handler.NewProductoHandler(db)
	r.GET("/muestraProductos", productoHandler.Lista)
	r.GET("/muestraProductos/:id", productoHandler.Obtiene)
	r.POST("/insertaProductos/adi", productoHandler.Crea)
	r.PUT("/actualizaProductos/:id", productoHandler.Actualiza)
	r.DELETE("/eliminaProductos/:id", productoHandler.Elimina)
	r.PATCH("/productos/:id/stock", productoHandler.AjustaStock)

	// categorias (hard delete, cascades over productos)
	categoriaHandler := handler.NewCategoriaHandler(db)
	r.GET("/muestraCategoria", categoriaHandler.Lista)
	r.GET("/muestraCategoria/:id", categoriaHandler.Obtiene)
	r.POST("/insertaCategoria/adi", categoriaHandler.Crea)
	r.PUT("/actualizaCategoria/:id", categoriaHandler.Actualiza)
	r.DELETE("/eliminaCategoria/:id", categoriaHandler.Elimina)

	// proveedores (soft delete)
	proveedorHandler := handler.NewProveedorHandler(db)
	r.GET("/proveedores", proveedorHandler.Lista)
	r.GET("/proveedores/:id", proveedorHandler.Obtiene)
	r.POST("/proveedores", proveedorHandler.Crea)
	r.PUT("/proveedores/:id", proveedorHandler.Actualiza)
	r.DELETE("/proveedores/:id", proveedorHandler.Elimina)

	// usuarios (hard delete)
	usuarioHandler := handler.NewUsuarioHandler(db)
	r.GET("/verusuario", usuarioHandler.Lista)
	r.GET("/verusuario/:id", usuarioHandler.Obtiene)
	r.POST("/insertausuario/adi", usuarioHandler.Crea)
	r.PUT("/actusuario/:id", usuarioHandler.Actualiza)
	r.DELETE("/eliusuario/:id", usuarioHandler.Elimina)

	// dashboard y reportes
	dashboardHandler := handler.NewDashboardHandler(db)
	r.GET("/dashboard/resumen", dashboardHandler.Resumen)

	reporteHandler := handler.NewReporteHandler(db)
	r.GET("/reportes/inventario.csv", reporteHandler.InventarioCSV)
	r.GET("/reportes/inventario.xlsx", reporteHandler.InventarioXLSX)

	bitacoraHandler := handler.NewBitacoraHandler(db, cfg.App.PageSize)
	r.GET("/bitacora", bitacoraHandler.Lista)

	return r
}
