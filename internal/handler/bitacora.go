package handler

import (
	"net/http"
	"strconv"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/models"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BitacoraHandler lists the activity log.
type BitacoraHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewBitacoraHandler(db *gorm.DB, pageSize int) *BitacoraHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &BitacoraHandler{DB: db, PageSize: pageSize}
}

func (h *BitacoraHandler) Lista(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}

	var total int64
	if err := h.DB.Model(&models.Bitacora{}).Count(&total).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	var entradas []models.Bitacora
	if err := h.DB.Order("id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&entradas).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": entradas,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
