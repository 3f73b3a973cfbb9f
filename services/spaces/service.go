package spaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogRepo "workhub/database/repository/catalog"
	"workhub/models"
	"workhub/services/notification"
	"workhub/utils"

	"go.uber.org/zap"
)

var (
	ErrWorkspaceNotFound    = errors.New("workspace not found")
	ErrWorkspaceUnavailable = errors.New("workspace is not available")
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusReserved    = "reserved"
	StatusMaintenance = "maintenance"
)

// SpaceService answers the floor plan view.
type SpaceService interface {
	List(ctx context.Context, f WorkspaceFilter) ([]models.WorkspaceView, error)
	Get(ctx context.Context, id string) (*models.WorkspaceView, error)
	Stats(ctx context.Context) (*models.SpaceStats, error)
	BookNow(ctx context.Context, id string) (*models.WorkspaceView, error)
}

// WorkspaceFilter narrows the floor plan. Empty fields match everything.
type WorkspaceFilter struct {
	Type   string `form:"type"`
	Status string `form:"status"`
}

type DefaultSpaceService struct {
	Catalog  catalogRepo.Catalog
	Notifier notification.Notifier
	Logger   *zap.Logger
}

func (s *DefaultSpaceService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// StatusAffordance maps a workspace status to its badge variant.
func StatusAffordance(status string) models.Affordance {
	switch status {
	case StatusAvailable:
		return models.AffordanceDefault
	case StatusOccupied:
		return models.AffordanceDestructive
	case StatusReserved:
		return models.AffordanceSecondary
	default:
		return models.AffordanceOutline
	}
}

func view(w models.Workspace) models.WorkspaceView {
	return models.WorkspaceView{
		Workspace:  w,
		Affordance: StatusAffordance(w.Status),
		Bookable:   w.Status == StatusAvailable,
	}
}

func (s *DefaultSpaceService) List(ctx context.Context, f WorkspaceFilter) ([]models.WorkspaceView, error) {
	workspaces, err := s.Catalog.Workspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspaces: %w", err)
	}
	out := make([]models.WorkspaceView, 0, len(workspaces))
	for _, w := range workspaces {
		if f.Type != "" && !strings.EqualFold(f.Type, w.Type) {
			continue
		}
		if f.Status != "" && !strings.EqualFold(f.Status, w.Status) {
			continue
		}
		out = append(out, view(w))
	}
	return out, nil
}

func (s *DefaultSpaceService) Get(ctx context.Context, id string) (*models.WorkspaceView, error) {
	workspaces, err := s.Catalog.Workspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspaces: %w", err)
	}
	for _, w := range workspaces {
		if w.ID == id {
			v := view(w)
			return &v, nil
		}
	}
	return nil, ErrWorkspaceNotFound
}

func (s *DefaultSpaceService) Stats(ctx context.Context) (*models.SpaceStats, error) {
	workspaces, err := s.Catalog.Workspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspaces: %w", err)
	}
	stats := &models.SpaceStats{Total: len(workspaces)}
	for _, w := range workspaces {
		switch w.Status {
		case StatusAvailable:
			stats.Available++
		case StatusOccupied:
			stats.Occupied++
		case StatusReserved:
			stats.Reserved++
		case StatusMaintenance:
			stats.Maintenance++
		}
	}
	return stats, nil
}

// BookNow starts a booking on an available workspace. Like the calendar's
// book action it only announces the intent; the catalog is unchanged.
func (s *DefaultSpaceService) BookNow(ctx context.Context, id string) (*models.WorkspaceView, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !w.Bookable {
		return nil, fmt.Errorf("%w: %s is %s", ErrWorkspaceUnavailable, w.Name, w.Status)
	}

	s.logger().Info("Workspace booking initiated", zap.String("workspaceId", w.ID))
	notification.Send(ctx, s.Notifier, notification.Message{
		Title:       "Booking Initiated",
		Description: fmt.Sprintf("Booking %s. Please fill out the booking form.", w.Name),
	}, s.logger())
	return w, nil
}
