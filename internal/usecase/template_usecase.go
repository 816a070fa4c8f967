package usecase

import "linkvault/internal/domain/entity"

// TemplateUsecase serves the profile presets.
type TemplateUsecase interface {
	List() []entity.ProfileTemplate
	Get(id string) (*entity.ProfileTemplate, error)

	// Apply seeds the theme and links of p from the template when p leaves them unset.
	Apply(id string, p *entity.Profile) error
}
