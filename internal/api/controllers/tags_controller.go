package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
	log        logger.Logger
}

func NewTagController(tagService services.TagServiceInterface, log logger.Logger) *TagController {
	return &TagController{
		tagService: tagService,
		log:        log,
	}
}

// ListAllTagsHandler godoc
// @Summary List interest tags
// @Description Fetch the interest vocabulary with place counts
// @Tags Tags
// @Produce json
// @Success 200 {array} response_models.TagResponse
// @Router /tags [get]
func (tc *TagController) ListAllTagsHandler(c *gin.Context) {
	tags, err := tc.tagService.GetAllTags(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, tc.log, err)
		return
	}

	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}
