package interfaces

import (
	"context"

	"esg-assistant/internal/model"
	"esg-assistant/internal/service"
)

// The API layer depends on these contracts rather than on the concrete services.

// SessionService manages the conversation collection and the active conversation.
type SessionService interface {
	List() []model.Conversation
	Get(id string) (model.Conversation, bool)
	Active() (model.Conversation, bool)
	Create(ctx context.Context) model.Conversation
	Select(ctx context.Context, id string) bool
	Delete(ctx context.Context, id string) bool
	Rename(ctx context.Context, id, title string) (model.Conversation, error)
	Import(ctx context.Context, data []byte) (model.Conversation, error)
	Export(id string) (model.ConversationExport, error)
}

// ExchangeService sends a user message and records the reply.
type ExchangeService interface {
	SendMessage(ctx context.Context, req *service.SendRequest) (*service.ExchangeResult, error)
}

// DocumentService submits reports for indicator extraction.
type DocumentService interface {
	Analyze(ctx context.Context, upload *service.DocumentUpload) (*service.DocumentResult, error)
}

// PreferenceService holds UI preferences.
type PreferenceService interface {
	Theme() string
	SetTheme(ctx context.Context, theme string) (string, error)
}

// CompanyDirectory lists the companies the chat can be filtered by.
type CompanyDirectory interface {
	ListCompanies(ctx context.Context) ([]string, error)
}
