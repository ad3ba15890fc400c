package usecase

import "shopseva/internal/domain/entity"

// ReferenceUsecase serves the static lookup lists used by filters and forms
type ReferenceUsecase interface {
	Categories() []entity.ReferenceItem
	States() []entity.ReferenceItem
	// Districts returns every district, or those of one state when stateID is set
	Districts(stateID string) []entity.ReferenceItem
}
