package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"esg-assistant/internal/model"
)

// Well-known preference names. They are stored under "<prefix>-<name>".
const (
	PrefTheme         = "theme"
	PrefCurrent       = "current"
	conversationsName = "conversations"
)

// Store persists the whole conversation collection and a few scalar preferences.
// The collection is always written as one value; there are no partial updates.
type Store interface {
	// Load returns the stored collection. Missing or malformed data yields an empty
	// slice; errors are logged, never returned.
	Load(ctx context.Context) []model.Conversation
	// Save overwrites the stored collection.
	Save(ctx context.Context, conversations []model.Conversation) error
	LoadPreference(ctx context.Context, name string) (string, bool)
	SavePreference(ctx context.Context, name, value string) error
}

// kvBackend is the raw key/value access both stores are built on.
type kvBackend interface {
	get(ctx context.Context, key string) (string, error)
	set(ctx context.Context, key, value string) error
}

// kvStore implements Store on top of a kvBackend.
type kvStore struct {
	backend kvBackend
	prefix  string
	log     *zap.Logger
}

func (s *kvStore) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "-" + name
}

func (s *kvStore) Load(ctx context.Context) []model.Conversation {
	key := s.key(conversationsName)
	raw, err := s.backend.get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("could not read conversations, starting empty", zap.String("key", key), zap.Error(err))
		}
		return []model.Conversation{}
	}

	var conversations []model.Conversation
	if err := json.Unmarshal([]byte(raw), &conversations); err != nil {
		s.log.Warn("stored conversations are malformed, starting empty", zap.String("key", key), zap.Error(err))
		return []model.Conversation{}
	}
	if conversations == nil {
		return []model.Conversation{}
	}
	return conversations
}

func (s *kvStore) Save(ctx context.Context, conversations []model.Conversation) error {
	if conversations == nil {
		conversations = []model.Conversation{}
	}
	data, err := json.Marshal(conversations)
	if err != nil {
		return err
	}
	return s.backend.set(ctx, s.key(conversationsName), string(data))
}

func (s *kvStore) LoadPreference(ctx context.Context, name string) (string, bool) {
	value, err := s.backend.get(ctx, s.key(name))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("could not read preference", zap.String("name", name), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

func (s *kvStore) SavePreference(ctx context.Context, name, value string) error {
	return s.backend.set(ctx, s.key(name), value)
}
