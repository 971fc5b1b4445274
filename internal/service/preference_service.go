package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/repository"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PreferenceService holds the UI theme, loaded once at startup.
type PreferenceService struct {
	store repository.Store
	log   *zap.Logger

	mu    sync.RWMutex
	theme string
}

func NewPreferenceService(store repository.Store, log *zap.Logger) *PreferenceService {
	return &PreferenceService{store: store, log: log, theme: ThemeLight}
}

// Initialize reads the stored theme. Missing or unknown values fall back to light.
func (s *PreferenceService) Initialize(ctx context.Context) string {
	theme := ThemeLight
	if stored, ok := s.store.LoadPreference(ctx, repository.PrefTheme); ok {
		if normalized, valid := normalizeTheme(stored); valid {
			theme = normalized
		} else {
			s.log.Warn("ignoring unknown stored theme", zap.String("theme", stored))
		}
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return theme
}

func (s *PreferenceService) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme switches the theme and persists it.
func (s *PreferenceService) SetTheme(ctx context.Context, theme string) (string, error) {
	normalized, ok := normalizeTheme(theme)
	if !ok {
		return "", fmt.Errorf("%w: theme must be %q or %q", app_errors.ErrValidation, ThemeLight, ThemeDark)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SavePreference(ctx, repository.PrefTheme, normalized); err != nil {
		return "", fmt.Errorf("failed to save theme: %w", err)
	}
	s.theme = normalized
	return normalized, nil
}

func normalizeTheme(theme string) (string, bool) {
	switch t := strings.ToLower(strings.TrimSpace(theme)); t {
	case ThemeLight, ThemeDark:
		return t, true
	default:
		return "", false
	}
}
