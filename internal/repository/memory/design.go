package memory

import (
	"boutique/internal/entities"
)

type designRecord struct {
	entities.Design
}

func (r designRecord) toEntity() entities.Design {
	d := r.Design
	d.Description = cloneString(r.Description)
	d.ImageURL = cloneString(r.ImageURL)
	return d
}

func (s *Store) ListDesigns() []entities.Design {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Design, 0, len(s.designOrder))
	for _, id := range s.designOrder {
		result = append(result, s.designs[id].toEntity())
	}
	return result
}

func (s *Store) GetDesign(id string) (*entities.Design, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.designs[id]
	if !ok {
		return nil, false
	}
	d := record.toEntity()
	return &d, true
}

func (s *Store) CreateDesign(modify entities.DesignModify) entities.Design {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := designRecord{Design: entities.Design{
		ID:          s.newID(),
		Description: normalizeText(modify.Description),
		ImageURL:    normalizeText(modify.ImageURL),
		CreatedAt:   s.now(),
	}}
	applyDesign(&record, entities.DesignModify{
		Name:      modify.Name,
		Category:  modify.Category,
		Price:     modify.Price,
		IsNew:     modify.IsNew,
		IsPopular: modify.IsPopular,
	})

	s.designs[record.ID] = record
	s.designOrder = append(s.designOrder, record.ID)

	return record.toEntity()
}

func (s *Store) UpdateDesign(id string, modify entities.DesignModify) (*entities.Design, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.designs[id]
	if !ok {
		return nil, false
	}
	applyDesign(&record, modify)
	s.designs[id] = record

	d := record.toEntity()
	return &d, true
}

func (s *Store) DeleteDesign(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.designs[id]; !ok {
		return false
	}
	delete(s.designs, id)
	s.designOrder = removeID(s.designOrder, id)
	return true
}

func applyDesign(record *designRecord, modify entities.DesignModify) {
	if modify.Name != nil {
		record.Name = *modify.Name
	}
	if modify.Category != nil {
		record.Category = *modify.Category
	}
	if modify.Price != nil {
		record.Price = *modify.Price
	}
	if modify.Description != nil {
		record.Description = normalizeText(modify.Description)
	}
	if modify.ImageURL != nil {
		record.ImageURL = normalizeText(modify.ImageURL)
	}
	if modify.IsNew != nil {
		record.IsNew = *modify.IsNew
	}
	if modify.IsPopular != nil {
		record.IsPopular = *modify.IsPopular
	}
}
