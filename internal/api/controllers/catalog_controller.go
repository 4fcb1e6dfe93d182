package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	log            logger.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, log logger.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		log:            log,
	}
}

// Reload godoc
// @Summary Reload the place catalog
// @Description Re-read the catalog from its source. Requires an admin token.
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response_models.CatalogReloadResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admin/catalog/reload [post]
func (cc *CatalogController) Reload(c *gin.Context) {
	resp, err := cc.catalogService.Reload(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	cc.log.Info("catalog reloaded via api", map[string]interface{}{
		"user_id": c.GetString("user_id"),
		"version": resp.Version,
	})
	utils.RespondSuccess(c, resp, "Catalog reloaded successfully")
}
