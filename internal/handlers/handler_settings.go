package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accuflow/accuflow/internal/dto"
	"github.com/accuflow/accuflow/internal/platform/config"
)

// registerSettingsRoutes registers the read-only company settings endpoint.
func registerSettingsRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	rg.GET("/settings/company", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.CompanySettingsResponse{
			CompanyName:    cfg.Company.CompanyName,
			Tagline:        cfg.Company.Tagline,
			CurrencySymbol: cfg.Company.CurrencySymbol,
		})
	})
}
