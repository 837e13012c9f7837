package securefin

import (
	"context"

	"github.com/pkg/errors"
)

const categoriesPath = "/categories/"

// categoryService implements the CategoryService interface
type categoryService struct {
	client *Client
}

// List retrieves all categories
func (s *categoryService) List(ctx context.Context) ([]*Category, error) {
	var categories []*Category
	if err := s.client.getList(ctx, categoriesPath, &categories); err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	return categories, nil
}
