package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrOptionNotFound      = errors.New("option not found")
	ErrOptionExists        = errors.New("option already exists")
	ErrOptionNameRequired  = errors.New("name is required")
	ErrOptionLabelRequired = errors.New("label and value are required")
)

// Options are the choices offered on the task form.
type Options struct {
	ContentTypes []models.ContentType `json:"content_types"`
	Platforms    []models.Platform    `json:"platforms"`
	Durations    []models.Duration    `json:"durations"`
	Dimensions   []models.Dimension   `json:"dimensions"`
}

// OptionService manages the admin-maintained option lists.
type OptionService struct {
	contentTypes repository.OptionRepository[models.ContentType]
	platforms    repository.OptionRepository[models.Platform]
	durations    repository.OptionRepository[models.Duration]
	dimensions   repository.OptionRepository[models.Dimension]
	logger       *slog.Logger
}

// NewOptionService creates a new OptionService.
func NewOptionService(repos repository.OptionRepositories, logger *slog.Logger) *OptionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OptionService{
		contentTypes: repos.ContentTypes,
		platforms:    repos.Platforms,
		durations:    repos.Durations,
		dimensions:   repos.Dimensions,
		logger:       logger,
	}
}

// LoadAll fetches the four lists concurrently. A list that fails to load is
// logged and returned empty.
func (s *OptionService) LoadAll() Options {
	var (
		opts Options
		g    errgroup.Group
	)

	g.Go(func() error {
		opts.ContentTypes = listOrEmpty(s.logger, "content_types", s.contentTypes)
		return nil
	})
	g.Go(func() error {
		opts.Platforms = listOrEmpty(s.logger, "platforms", s.platforms)
		return nil
	})
	g.Go(func() error {
		opts.Durations = listOrEmpty(s.logger, "durations", s.durations)
		return nil
	})
	g.Go(func() error {
		opts.Dimensions = listOrEmpty(s.logger, "dimensions", s.dimensions)
		return nil
	})

	_ = g.Wait()
	return opts
}

func listOrEmpty[T repository.Option](logger *slog.Logger, table string, repo repository.OptionRepository[T]) []T {
	items, err := repo.List()
	if err != nil {
		logger.Error("failed to load options", "table", table, "error", err)
		return []T{}
	}
	return items
}

func (s *OptionService) CreateContentType(name string) (*models.ContentType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrOptionNameRequired
	}
	items, err := s.contentTypes.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	for _, it := range items {
		if strings.EqualFold(it.Name, name) {
			return nil, ErrOptionExists
		}
	}
	item := &models.ContentType{Name: name}
	if err := s.contentTypes.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create content type: %w", err)
	}
	return item, nil
}

func (s *OptionService) UpdateContentType(id, name string) (*models.ContentType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrOptionNameRequired
	}
	item, err := findOption(s.contentTypes, id)
	if err != nil {
		return nil, err
	}
	item.Name = name
	if err := s.contentTypes.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update content type: %w", err)
	}
	return item, nil
}

func (s *OptionService) DeleteContentType(id string) error {
	return deleteOption(s.contentTypes, id)
}

func (s *OptionService) CreatePlatform(name string) (*models.Platform, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrOptionNameRequired
	}
	items, err := s.platforms.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	for _, it := range items {
		if strings.EqualFold(it.Name, name) {
			return nil, ErrOptionExists
		}
	}
	item := &models.Platform{Name: name}
	if err := s.platforms.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}
	return item, nil
}

func (s *OptionService) UpdatePlatform(id, name string) (*models.Platform, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrOptionNameRequired
	}
	item, err := findOption(s.platforms, id)
	if err != nil {
		return nil, err
	}
	item.Name = name
	if err := s.platforms.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update platform: %w", err)
	}
	return item, nil
}

func (s *OptionService) DeletePlatform(id string) error {
	return deleteOption(s.platforms, id)
}

func (s *OptionService) CreateDuration(label string, seconds int) (*models.Duration, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrOptionLabelRequired
	}
	if seconds <= 0 {
		return nil, ErrInvalidDuration
	}
	items, err := s.durations.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list durations: %w", err)
	}
	for _, it := range items {
		if it.Seconds == seconds {
			return nil, ErrOptionExists
		}
	}
	item := &models.Duration{Label: label, Seconds: seconds}
	if err := s.durations.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create duration: %w", err)
	}
	return item, nil
}

func (s *OptionService) UpdateDuration(id, label string, seconds int) (*models.Duration, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrOptionLabelRequired
	}
	if seconds <= 0 {
		return nil, ErrInvalidDuration
	}
	item, err := findOption(s.durations, id)
	if err != nil {
		return nil, err
	}
	item.Label = label
	item.Seconds = seconds
	if err := s.durations.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update duration: %w", err)
	}
	return item, nil
}

func (s *OptionService) DeleteDuration(id string) error {
	return deleteOption(s.durations, id)
}

func (s *OptionService) CreateDimension(label, value string) (*models.Dimension, error) {
	label, value = strings.TrimSpace(label), strings.TrimSpace(value)
	if label == "" || value == "" {
		return nil, ErrOptionLabelRequired
	}
	items, err := s.dimensions.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list dimensions: %w", err)
	}
	for _, it := range items {
		if strings.EqualFold(it.Value, value) {
			return nil, ErrOptionExists
		}
	}
	item := &models.Dimension{Label: label, Value: value}
	if err := s.dimensions.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create dimension: %w", err)
	}
	return item, nil
}

func (s *OptionService) UpdateDimension(id, label, value string) (*models.Dimension, error) {
	label, value = strings.TrimSpace(label), strings.TrimSpace(value)
	if label == "" || value == "" {
		return nil, ErrOptionLabelRequired
	}
	item, err := findOption(s.dimensions, id)
	if err != nil {
		return nil, err
	}
	item.Label = label
	item.Value = value
	if err := s.dimensions.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update dimension: %w", err)
	}
	return item, nil
}

func (s *OptionService) DeleteDimension(id string) error {
	return deleteOption(s.dimensions, id)
}

func findOption[T repository.Option](repo repository.OptionRepository[T], id string) (*T, error) {
	item, err := repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, fmt.Errorf("failed to find option: %w", err)
	}
	return item, nil
}

func deleteOption[T repository.Option](repo repository.OptionRepository[T], id string) error {
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOptionNotFound
		}
		return fmt.Errorf("failed to delete option: %w", err)
	}
	return nil
}

// OptionSeed is the operator-maintained list of options to ensure exist.
type OptionSeed struct {
	ContentTypes []string        `yaml:"content_types"`
	Platforms    []string        `yaml:"platforms"`
	Durations    []DurationSeed  `yaml:"durations"`
	Dimensions   []DimensionSeed `yaml:"dimensions"`
}

type DurationSeed struct {
	Label   string `yaml:"label"`
	Seconds int    `yaml:"seconds"`
}

type DimensionSeed struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Seed creates every option in seed that does not exist yet, matching content
// types and platforms by name, durations by seconds and dimensions by value.
// It returns the number of entries processed.
func (s *OptionService) Seed(seed OptionSeed) (int, error) {
	n := 0
	for _, name := range seed.ContentTypes {
		name = strings.TrimSpace(name)
		if name == "" {
			return n, ErrOptionNameRequired
		}
		if err := s.contentTypes.Ensure(map[string]any{"name": name}, &models.ContentType{Name: name}); err != nil {
			return n, fmt.Errorf("failed to seed content type %q: %w", name, err)
		}
		n++
	}
	for _, name := range seed.Platforms {
		name = strings.TrimSpace(name)
		if name == "" {
			return n, ErrOptionNameRequired
		}
		if err := s.platforms.Ensure(map[string]any{"name": name}, &models.Platform{Name: name}); err != nil {
			return n, fmt.Errorf("failed to seed platform %q: %w", name, err)
		}
		n++
	}
	for _, d := range seed.Durations {
		if strings.TrimSpace(d.Label) == "" {
			return n, ErrOptionLabelRequired
		}
		if d.Seconds <= 0 {
			return n, ErrInvalidDuration
		}
		item := &models.Duration{Label: strings.TrimSpace(d.Label), Seconds: d.Seconds}
		if err := s.durations.Ensure(map[string]any{"seconds": d.Seconds}, item); err != nil {
			return n, fmt.Errorf("failed to seed duration %q: %w", d.Label, err)
		}
		n++
	}
	for _, d := range seed.Dimensions {
		label, value := strings.TrimSpace(d.Label), strings.TrimSpace(d.Value)
		if label == "" || value == "" {
			return n, ErrOptionLabelRequired
		}
		if err := s.dimensions.Ensure(map[string]any{"value": value}, &models.Dimension{Label: label, Value: value}); err != nil {
			return n, fmt.Errorf("failed to seed dimension %q: %w", value, err)
		}
		n++
	}
	s.logger.Info("options seeded", "entries", n)
	return n, nil
}
