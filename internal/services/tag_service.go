package services

import (
	"context"

	"tripplanner/internal/models/response_models"
)

type TagServiceInterface interface {
	GetAllTags(ctx context.Context) ([]response_models.TagResponse, error)
}

type TagService struct {
	catalogs CatalogProvider
}

// GetAllTags lists the interest vocabulary with how many places carry each
// tag in the active catalog.
func (t *TagService) GetAllTags(ctx context.Context) ([]response_models.TagResponse, error) {
	c, err := t.catalogs.Current()
	if err != nil {
		return nil, wrapUnavailable(err)
	}

	counts := c.CategoryCounts()
	tags := make([]response_models.TagResponse, 0, len(counts))
	for _, cc := range counts {
		tags = append(tags, response_models.TagResponse{
			Name:   string(cc.Category),
			Label:  titleCase(string(cc.Category)),
			Places: cc.Places,
		})
	}
	return tags, nil
}

func NewTagService(catalogs CatalogProvider) TagServiceInterface {
	return &TagService{
		catalogs: catalogs,
	}
}
