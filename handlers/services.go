package handlers

import (
	"net/http"

	"carexyz/services/booking"
	"carexyz/services/catalog"
	"carexyz/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public catalog and platform figures.
type CatalogHandler struct {
	BookingSvc booking.BookingService
}

func NewCatalogHandler(svc booking.BookingService) *CatalogHandler {
	return &CatalogHandler{BookingSvc: svc}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.All()})
}

// GetService handles GET /api/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, ok := catalog.Lookup(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Service not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, svc)
}

// PublicStats handles GET /api/stats. It always answers 200.
func (h *CatalogHandler) PublicStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.BookingSvc.PublicStats(c.Request.Context()))
}
