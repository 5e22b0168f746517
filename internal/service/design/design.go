package design

import (
	"context"
	"fmt"
	"strings"

	"boutique/internal/entities"
)

type Design struct {
	repository Repository
}

func New(repository Repository) *Design {
	return &Design{
		repository: repository,
	}
}

// ListDesigns фильтрует по категории без учета регистра, если она задана.
func (s *Design) ListDesigns(ctx context.Context, category string) ([]entities.Design, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}

	designs := s.repository.ListDesigns()
	category = strings.TrimSpace(category)
	if category == "" {
		return designs, nil
	}

	filtered := make([]entities.Design, 0, len(designs))
	for _, d := range designs {
		if strings.EqualFold(d.Category, category) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *Design) GetDesign(ctx context.Context, id string) (*entities.Design, error) {
	if !isValidText(id) {
		return nil, ErrInvalidDesignID
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get design: %w", err)
	}

	design, ok := s.repository.GetDesign(id)
	if !ok {
		return nil, ErrDesignNotFound
	}
	return design, nil
}

func (s *Design) CreateDesign(ctx context.Context, designModify entities.DesignModify) (*entities.Design, error) {
	if designModify.Name == nil ||
		designModify.Category == nil ||
		designModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}
	if err := validateModify(designModify); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create design: %w", err)
	}

	design := s.repository.CreateDesign(designModify)
	return &design, nil
}

func (s *Design) UpdateDesign(ctx context.Context, id string, designModify entities.DesignModify) (*entities.Design, error) {
	if !isValidText(id) {
		return nil, ErrInvalidDesignID
	}
	if err := validateModify(designModify); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("update design: %w", err)
	}

	design, ok := s.repository.UpdateDesign(id, designModify)
	if !ok {
		return nil, ErrDesignNotFound
	}
	return design, nil
}

func (s *Design) DeleteDesign(ctx context.Context, id string) error {
	if !isValidText(id) {
		return ErrInvalidDesignID
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete design: %w", err)
	}

	if !s.repository.DeleteDesign(id) {
		return ErrDesignNotFound
	}
	return nil
}

func (s *Design) DesignStats(ctx context.Context) (*entities.DesignStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("design stats: %w", err)
	}

	designs := s.repository.ListDesigns()
	categories := make(map[string]struct{}, len(designs))
	stats := entities.DesignStats{TotalDesigns: len(designs)}
	for _, d := range designs {
		if d.IsNew {
			stats.NewDesigns++
		}
		if d.IsPopular {
			stats.PopularDesigns++
		}
		categories[d.Category] = struct{}{}
	}
	stats.Categories = len(categories)
	return &stats, nil
}

func validateModify(designModify entities.DesignModify) error {
	if designModify.Name != nil && !isValidText(*designModify.Name) {
		return ErrInvalidName
	}
	if designModify.Category != nil && !isValidText(*designModify.Category) {
		return ErrInvalidCategory
	}
	if designModify.Price != nil && !isValidPrice(*designModify.Price) {
		return ErrInvalidPrice
	}
	return nil
}
