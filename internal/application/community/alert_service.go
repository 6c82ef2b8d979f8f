package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// AlertService handles community alerts
type AlertService struct {
	alertRepo community.AlertRepository
}

// NewAlertService creates a new AlertService
func NewAlertService(alertRepo community.AlertRepository) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

// Create raises an active alert in the actor's village
func (s *AlertService) Create(ctx context.Context, actor policy.Actor, req CreateAlertRequest) (*AlertResponse, error) {
	villageID, err := resolveVillage(actor, req.VillageID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionCreate, policy.Resource{
		Type: "alert", VillageID: villageID,
	}); err != nil {
		return nil, err
	}

	alert, err := community.NewCommunityAlert(villageID, actor.UserID, req.AlertType, req.Description, req.Urgency)
	if err != nil {
		return nil, err
	}

	if err := s.alertRepo.Save(ctx, alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// GetByID returns a single alert
func (s *AlertService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*AlertResponse, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "alert", VillageID: alert.VillageID, OwnerID: alert.AddedBy,
	}); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// List returns alerts visible to the actor
func (s *AlertService) List(ctx context.Context, actor policy.Actor, filter shared.Filter) (*shared.Paginated[AlertResponse], error) {
	scope := policy.Scope(actor, "alert")
	items, total, err := s.alertRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	out := make([]AlertResponse, len(items))
	for i := range items {
		out[i] = *toAlertResponse(&items[i])
	}
	result := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Close marks an alert as no longer relevant (leader or admin)
func (s *AlertService) Close(ctx context.Context, actor policy.Actor, id uuid.UUID) (*AlertResponse, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionChangeStatus, policy.Resource{
		Type: "alert", VillageID: alert.VillageID,
	}); err != nil {
		return nil, err
	}

	if err := alert.Close(); err != nil {
		return nil, err
	}
	if err := s.alertRepo.Save(ctx, alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// Delete removes an alert
func (s *AlertService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Type: "alert", VillageID: alert.VillageID, OwnerID: alert.AddedBy,
	}); err != nil {
		return err
	}
	return s.alertRepo.Delete(ctx, alert.ID)
}
