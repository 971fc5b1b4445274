package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"esg-assistant/internal/chatapi"
	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/model"
	"esg-assistant/pkg/metrics"
)

// ApologyMessage is the reply shown when the remote service cannot answer.
const ApologyMessage = "Sorry, an error occurred. Please try again."

// SendRequest is a user message submitted from the client.
type SendRequest struct {
	Text           string `json:"text" validate:"required,max=20000"`
	ConversationID string `json:"conversation_id,omitempty"`
	CompanyFilter  string `json:"company_filter,omitempty" validate:"max=200"`
}

// ExchangeResult holds both messages of a finished exchange and the conversation
// as it stands afterwards.
type ExchangeResult struct {
	Conversation model.Conversation `json:"conversation"`
	UserMessage  model.Message      `json:"user_message"`
	Reply        model.Message      `json:"reply"`
}

// ExchangeService runs one request/response round trip with the remote chat
// endpoint at a time.
type ExchangeService struct {
	sessions *SessionService
	client   chatapi.Client
	timeout  time.Duration
	log      *zap.Logger
	now      func() time.Time

	inFlight atomic.Bool
}

func NewExchangeService(sessions *SessionService, client chatapi.Client, timeout time.Duration, log *zap.Logger) *ExchangeService {
	return &ExchangeService{
		sessions: sessions,
		client:   client,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}
}

// InFlight reports whether an exchange is currently awaiting its reply.
func (s *ExchangeService) InFlight() bool {
	return s.inFlight.Load()
}

// SendMessage appends the user message, calls the remote endpoint and appends
// the reply. A failed call still yields an assistant reply, flagged as an error;
// the user message is never rolled back. Blank text and concurrent sends are
// rejected without touching any conversation.
func (s *ExchangeService) SendMessage(ctx context.Context, req *SendRequest) (*ExchangeResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is empty", app_errors.ErrValidation)
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		metrics.ExchangesRejected.Inc()
		return nil, fmt.Errorf("%w: another message is awaiting its reply", app_errors.ErrConflict)
	}
	defer s.inFlight.Store(false)

	userMsg := model.NewMessage(model.RoleUser, text, s.now().UTC())
	conv, err := s.sessions.AppendUserMessage(ctx, req.ConversationID, userMsg)
	if err != nil {
		return nil, err
	}

	chatReq := &chatapi.ChatRequest{
		Message:        text,
		CompanyFilter:  strings.TrimSpace(req.CompanyFilter),
		ConversationID: conv.ID,
	}
	if doc, ok := conv.LatestDocument(); ok {
		chatReq.AttachedDocumentData = doc.ExtractedData
	}

	// The exchange outlives a dropped client connection; only the timeout ends it.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	start := time.Now()
	reply := s.callChat(callCtx, chatReq)
	outcome := "success"
	if reply.IsError {
		outcome = "error"
	}
	metrics.RecordExchange(outcome, time.Since(start).Seconds())

	conv, err = s.sessions.AppendMessage(context.WithoutCancel(ctx), conv.ID, reply)
	if err != nil {
		// Only possible when the conversation was deleted mid-exchange.
		s.log.Warn("dropping reply for missing conversation",
			zap.String("conversation_id", chatReq.ConversationID), zap.Error(err))
		return nil, err
	}

	return &ExchangeResult{Conversation: conv, UserMessage: userMsg, Reply: reply}, nil
}

func (s *ExchangeService) callChat(ctx context.Context, req *chatapi.ChatRequest) model.Message {
	resp, err := s.client.Chat(ctx, req)
	if err == nil && strings.TrimSpace(resp.Response) == "" {
		err = fmt.Errorf("empty response from chat api")
	}
	if err != nil {
		s.log.Error("chat exchange failed",
			zap.String("conversation_id", req.ConversationID),
			zap.Bool("document_attached", len(req.AttachedDocumentData) > 0),
			zap.Error(err))
		reply := model.NewMessage(model.RoleAssistant, ApologyMessage, s.now().UTC())
		reply.IsError = true
		return reply
	}

	reply := model.NewMessage(model.RoleAssistant, resp.Response, s.now().UTC())
	reply.Metadata = &model.MessageMetadata{
		Company:         resp.Company,
		AIUsed:          resp.AIUsed,
		PDFDataIncluded: resp.PDFDataIncluded,
	}
	return reply
}
