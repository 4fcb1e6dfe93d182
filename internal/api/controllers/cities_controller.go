package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type CitiesController struct {
	catalogService services.CatalogServiceInterface
	log            logger.Logger
}

func NewCitiesController(catalogService services.CatalogServiceInterface, log logger.Logger) *CitiesController {
	return &CitiesController{
		catalogService: catalogService,
		log:            log,
	}
}

// ListCities godoc
// @Summary List cities
// @Description Fetch every city in the active catalog
// @Tags Cities
// @Produce json
// @Success 200 {array} response_models.CityResponse
// @Failure 503 {object} utils.APIResponse
// @Router /cities [get]
func (cc *CitiesController) ListCities(c *gin.Context) {
	cities, err := cc.catalogService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCityPlaces godoc
// @Summary Get the places of a city
// @Tags Cities
// @Produce json
// @Param city path string true "City name, case-insensitive"
// @Success 200 {object} response_models.CityPlacesResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{city}/places [get]
func (cc *CitiesController) GetCityPlaces(c *gin.Context) {
	places, err := cc.catalogService.CityPlaces(c.Request.Context(), c.Param("city"))
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}
