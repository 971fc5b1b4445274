package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/model"
	"esg-assistant/internal/repository"
	"esg-assistant/pkg/metrics"
)

// SessionService is the in-memory authority over the conversation collection.
// Every mutation rewrites the whole collection to the store before returning.
// Store write failures are logged and counted; the in-memory state stays
// authoritative for the running session.
type SessionService struct {
	store       repository.Store
	log         *zap.Logger
	now         func() time.Time
	placeholder string

	mu            sync.Mutex
	conversations []model.Conversation // newest first
	activeID      string
}

// SessionOption customizes a SessionService.
type SessionOption func(*SessionService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

func NewSessionService(store repository.Store, log *zap.Logger, placeholderTitle string, opts ...SessionOption) *SessionService {
	s := &SessionService{
		store:         store,
		log:           log,
		now:           time.Now,
		placeholder:   placeholderTitle,
		conversations: []model.Conversation{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the collection and restores the last active conversation. When
// the remembered id is gone, the most recently created conversation becomes
// active; with no conversations nothing is active.
func (s *SessionService) Initialize(ctx context.Context) {
	conversations := s.store.Load(ctx)
	if conversations == nil {
		conversations = []model.Conversation{}
	}
	lastActive, _ := s.store.LoadPreference(ctx, repository.PrefCurrent)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = conversations
	s.activeID = ""
	if lastActive != "" && s.indexLocked(lastActive) >= 0 {
		s.activeID = lastActive
	} else if newest := newestCreated(conversations); newest >= 0 {
		s.activeID = conversations[newest].ID
	}

	s.log.Info("conversation session initialized",
		zap.Int("conversations", len(s.conversations)),
		zap.String("active_id", s.activeID))
}

// Create starts an empty conversation, makes it active and clears the visible
// message list.
func (s *SessionService) Create(ctx context.Context) model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.createLocked("explicit")
	s.persistLocked(ctx)
	return conv.Clone()
}

// Select makes id the active conversation. Unknown ids are ignored and reported
// with false.
func (s *SessionService) Select(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(id) < 0 {
		return false
	}
	s.activeID = id
	s.persistActiveLocked(ctx)
	return true
}

// Delete removes a conversation and its messages. When it was active, the first
// remaining conversation takes over, or nothing is active.
func (s *SessionService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return false
	}
	s.conversations = append(s.conversations[:idx], s.conversations[idx+1:]...)

	if s.activeID == id {
		s.activeID = ""
		if len(s.conversations) > 0 {
			s.activeID = s.conversations[0].ID
		}
	}
	s.log.Info("conversation deleted", zap.String("conversation_id", id), zap.String("active_id", s.activeID))
	s.persistLocked(ctx)
	return true
}

// Rename sets a custom title. Custom titles are never replaced by derived ones.
// A blank title is discarded without touching the store.
func (s *SessionService) Rename(ctx context.Context, id, title string) (model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Conversation{}, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id)
	}
	conv := &s.conversations[idx]

	title = strings.TrimSpace(title)
	if title == "" {
		return conv.Clone(), nil
	}
	conv.Title = title
	conv.TitleCustomized = true
	conv.UpdatedAt = s.timestamp(conv)
	s.persistLocked(ctx)
	return conv.Clone(), nil
}

// AppendMessage adds msg to the end of the conversation. The first message of a
// conversation without a custom title names it.
func (s *SessionService) AppendMessage(ctx context.Context, conversationID string, msg model.Message) (model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(conversationID)
	if idx < 0 {
		return model.Conversation{}, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, conversationID)
	}
	s.appendLocked(idx, msg)
	s.persistLocked(ctx)
	return s.conversations[idx].Clone(), nil
}

// AppendUserMessage appends msg to the given conversation, or to the active one
// when conversationID is empty. If nothing is active a conversation is created
// first, so creation and the first append happen under one lock.
func (s *SessionService) AppendUserMessage(ctx context.Context, conversationID string, msg model.Message) (model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.resolveLocked(conversationID, "implicit")
	if err != nil {
		return model.Conversation{}, err
	}
	s.appendLocked(idx, msg)
	s.persistLocked(ctx)
	return s.conversations[idx].Clone(), nil
}

// EnsureConversation returns the id of the target conversation, creating one when
// conversationID is empty and nothing is active.
func (s *SessionService) EnsureConversation(ctx context.Context, conversationID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.conversations)
	idx, err := s.resolveLocked(conversationID, "implicit")
	if err != nil {
		return "", err
	}
	if len(s.conversations) != before {
		s.persistLocked(ctx)
	}
	return s.conversations[idx].ID, nil
}

// AttachDocument records an analyzed document and its notice message. A
// conversation still carrying the placeholder title is renamed after the document.
func (s *SessionService) AttachDocument(ctx context.Context, conversationID string, doc model.UploadedPDF, notice model.Message) (model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(conversationID)
	if idx < 0 {
		return model.Conversation{}, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, conversationID)
	}
	conv := &s.conversations[idx]
	untitled := len(conv.Messages) == 0 || conv.Title == s.placeholder

	conv.UploadedPDFs = append(conv.UploadedPDFs, doc)
	s.appendLocked(idx, notice)
	if untitled && !conv.TitleCustomized {
		conv.Title = "Analysis: " + doc.Name
	}
	s.persistLocked(ctx)
	return conv.Clone(), nil
}

// Import parses an exported conversation and inserts it under a fresh id as the
// active conversation. Nothing is inserted when the data cannot be parsed.
func (s *SessionService) Import(ctx context.Context, data []byte) (model.Conversation, error) {
	var conv model.Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return model.Conversation{}, fmt.Errorf("%w: invalid conversation file: %s", app_errors.ErrValidation, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	conv.ID = model.NewID()
	conv.ImportedAt = &now
	conv.UpdatedAt = now
	if conv.CreatedAt.IsZero() || conv.CreatedAt.After(now) {
		conv.CreatedAt = now
	}
	if strings.TrimSpace(conv.Title) == "" {
		conv.Title = s.placeholder
	}

	s.conversations = append([]model.Conversation{conv}, s.conversations...)
	s.activeID = conv.ID
	metrics.ConversationsTotal.WithLabelValues("import").Inc()
	s.log.Info("conversation imported", zap.String("conversation_id", conv.ID), zap.Int("messages", len(conv.Messages)))
	s.persistLocked(ctx)
	return conv.Clone(), nil
}

// Export returns the conversation stamped with the export time.
func (s *SessionService) Export(id string) (model.ConversationExport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.ConversationExport{}, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id)
	}
	return model.ConversationExport{
		Conversation: s.conversations[idx].Clone(),
		ExportedAt:   s.now().UTC(),
	}, nil
}

// List returns the conversations newest first.
func (s *SessionService) List() []model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Conversation, len(s.conversations))
	for i := range s.conversations {
		out[i] = s.conversations[i].Clone()
	}
	return out
}

func (s *SessionService) Get(id string) (model.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Conversation{}, false
	}
	return s.conversations[idx].Clone(), true
}

// Active returns the active conversation, if any.
func (s *SessionService) Active() (model.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(s.activeID)
	if idx < 0 {
		return model.Conversation{}, false
	}
	return s.conversations[idx].Clone(), true
}

func (s *SessionService) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// VisibleMessages is the message list of the active conversation; empty when
// nothing is active.
func (s *SessionService) VisibleMessages() []model.Message {
	if conv, ok := s.Active(); ok {
		return conv.Messages
	}
	return []model.Message{}
}

func (s *SessionService) createLocked(origin string) *model.Conversation {
	now := s.now().UTC()
	conv := model.Conversation{
		ID:        model.NewID(),
		Title:     s.placeholder,
		Messages:  []model.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.conversations = append([]model.Conversation{conv}, s.conversations...)
	s.activeID = conv.ID
	metrics.ConversationsTotal.WithLabelValues(origin).Inc()
	s.log.Info("conversation created", zap.String("conversation_id", conv.ID), zap.String("origin", origin))
	return &s.conversations[0]
}

func (s *SessionService) resolveLocked(conversationID, origin string) (int, error) {
	if conversationID == "" {
		conversationID = s.activeID
	}
	if conversationID == "" {
		s.createLocked(origin)
		return 0, nil
	}
	idx := s.indexLocked(conversationID)
	if idx < 0 {
		return -1, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, conversationID)
	}
	return idx, nil
}

func (s *SessionService) appendLocked(idx int, msg model.Message) {
	conv := &s.conversations[idx]
	if len(conv.Messages) == 0 && !conv.TitleCustomized {
		if title := model.DeriveTitle(msg.Content); title != "" {
			conv.Title = title
		}
	}
	conv.Messages = append(conv.Messages, msg)
	conv.UpdatedAt = s.timestamp(conv)
	metrics.MessagesTotal.WithLabelValues(string(msg.Role)).Inc()
}

// timestamp returns the current time, never earlier than the conversation's
// creation time.
func (s *SessionService) timestamp(conv *model.Conversation) time.Time {
	now := s.now().UTC()
	if now.Before(conv.CreatedAt) {
		return conv.CreatedAt
	}
	return now
}

func (s *SessionService) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *SessionService) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.conversations); err != nil {
		metrics.StoreWriteFailures.Inc()
		s.log.Error("failed to save conversations", zap.Int("conversations", len(s.conversations)), zap.Error(err))
	}
	s.persistActiveLocked(ctx)
}

func (s *SessionService) persistActiveLocked(ctx context.Context) {
	if err := s.store.SavePreference(ctx, repository.PrefCurrent, s.activeID); err != nil {
		metrics.StoreWriteFailures.Inc()
		s.log.Error("failed to save active conversation", zap.String("active_id", s.activeID), zap.Error(err))
	}
}

func newestCreated(conversations []model.Conversation) int {
	newest := -1
	for i := range conversations {
		if newest < 0 || conversations[i].CreatedAt.After(conversations[newest].CreatedAt) {
			newest = i
		}
	}
	return newest
}
