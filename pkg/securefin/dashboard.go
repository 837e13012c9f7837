package securefin

import (
	"context"

	"github.com/pkg/errors"
)

const dashboardPath = "/expenses/dashboard/"

// dashboardService implements the DashboardService interface
type dashboardService struct {
	client *Client
}

// Get retrieves a fresh dashboard snapshot. The aggregate is recomputed
// wholesale by the backend on every call; nothing is merged client-side.
func (s *dashboardService) Get(ctx context.Context) (*DashboardSnapshot, error) {
	var snapshot DashboardSnapshot
	if err := s.client.get(ctx, dashboardPath, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to get dashboard")
	}
	return &snapshot, nil
}
