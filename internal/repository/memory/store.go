package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store хранит покупателей, заказы и дизайны в памяти процесса.
// Все коллекции отдаются в порядке добавления.
type Store struct {
	mu sync.RWMutex

	customers     map[string]customerRecord
	customerOrder []string

	orders     map[string]orderRecord
	orderOrder []string

	designs     map[string]designRecord
	designOrder []string

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		customers: make(map[string]customerRecord),
		orders:    make(map[string]orderRecord),
		designs:   make(map[string]designRecord),
		now: func() time.Time {
			return time.Now().UTC()
		},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func removeID(ids []string, id string) []string {
	idx := slices.Index(ids, id)
	if idx < 0 {
		return ids
	}
	return slices.Delete(ids, idx, idx+1)
}

// normalizeText превращает пустую строку в nil и копирует значение.
func normalizeText(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	v := *value
	return &v
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
