package menu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"menu-service/internal/nutrition"
	"menu-service/internal/search"
)

// ErrNotFound — меню нет в кэше (не загружалось или вытеснено).
var ErrNotFound = errors.New("menu not found")

// Entry — загруженное меню в нормализованном виде.
type Entry struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Source     string           `json:"source"`
	CreatedAt  time.Time        `json:"createdAt"`
	Categories []string         `json:"categories"`
	Dishes     []nutrition.Dish `json:"dishes"`

	index *search.Index
}

// NewEntry нормализует меню и строит индекс подсказок.
func NewEntry(name, source string, menu map[string]any) *Entry {
	dishes := nutrition.FlattenMenuDishes(menu)
	if name == "" {
		name, _ = menu["name"].(string)
	}
	e := &Entry{
		ID:         uuid.NewString(),
		Name:       name,
		Source:     source,
		CreatedAt:  time.Now().UTC(),
		Categories: make([]string, 0),
		Dishes:     dishes,
	}
	names := make([]string, 0, len(dishes))
	seen := make(map[string]struct{})
	for _, d := range dishes {
		names = append(names, d.Name())
		if c := d.Category(); c != "" {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				e.Categories = append(e.Categories, c)
			}
		}
	}
	e.index = search.NewIndex(names)
	return e
}

// Search фильтрует блюда по запросу и (если задана) категории без учёта регистра.
func (e *Entry) Search(query, category string) []nutrition.Dish {
	out := make([]nutrition.Dish, 0)
	for _, d := range e.Dishes {
		if category != "" && !strings.EqualFold(d.Category(), category) {
			continue
		}
		if search.MatchesSearchQuery(d.Name(), query) {
			out = append(out, d)
		}
	}
	return out
}

// Suggest — ближайшие по написанию названия для запроса, который ничего не нашёл.
func (e *Entry) Suggest(query string, limit int, threshold float64) []search.Suggestion {
	if e.index == nil {
		return nil
	}
	return e.index.Suggest(query, limit, threshold)
}

// Store — ограниченный LRU-кэш меню. Безопасен для конкурентного использования.
type Store struct {
	cache *lru.Cache[string, *Entry]
}

func NewStore(size int) (*Store, error) {
	c, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, fmt.Errorf("menu store: %w", err)
	}
	return &Store{cache: c}, nil
}

// Put сохраняет запись; true — если при этом вытеснена самая старая.
func (s *Store) Put(e *Entry) bool {
	return s.cache.Add(e.ID, e)
}

func (s *Store) Get(id string) (*Entry, error) {
	e, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

func (s *Store) Len() int { return s.cache.Len() }
