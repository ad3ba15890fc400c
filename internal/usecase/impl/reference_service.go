package impl

import (
	"strings"

	"shopseva/config"
	"shopseva/internal/domain/entity"
	"shopseva/internal/usecase"
)

type referenceService struct {
	categories []entity.ReferenceItem
	states     []entity.ReferenceItem
	districts  []entity.ReferenceItem
}

// NewReferenceService serves the lookup lists loaded from configuration.
func NewReferenceService(cfg *config.Config) usecase.ReferenceUsecase {
	return &referenceService{
		categories: toReferenceItems(cfg.Reference.Categories),
		states:     toReferenceItems(cfg.Reference.States),
		districts:  toReferenceItems(cfg.Reference.Districts),
	}
}

func (srv *referenceService) Categories() []entity.ReferenceItem {
	return srv.categories
}

func (srv *referenceService) States() []entity.ReferenceItem {
	return srv.states
}

func (srv *referenceService) Districts(stateID string) []entity.ReferenceItem {
	stateID = strings.TrimSpace(stateID)
	if stateID == "" {
		return srv.districts
	}

	filtered := make([]entity.ReferenceItem, 0, len(srv.districts))
	for _, d := range srv.districts {
		if strings.EqualFold(d.StateID, stateID) {
			filtered = append(filtered, d)
		}
	}

	return filtered
}

func toReferenceItems(items []config.ReferenceItem) []entity.ReferenceItem {
	out := make([]entity.ReferenceItem, len(items))
	for i, item := range items {
		out[i] = entity.ReferenceItem{
			ID:      item.ID,
			Name:    item.Name,
			Icon:    item.Icon,
			StateID: item.StateID,
		}
	}

	return out
}
