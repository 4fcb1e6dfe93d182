package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	log              logger.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, log logger.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		log:              log,
	}
}

// GenerateItinerary godoc
// @Summary Generate a trip itinerary
// @Description Build a day-by-day plan for a city within a budget
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Trip request"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /itineraries [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	itinerary, err := ic.itineraryService.Generate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
