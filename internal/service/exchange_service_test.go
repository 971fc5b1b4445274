package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esg-assistant/internal/chatapi"
	mock_chatapi "esg-assistant/internal/chatapi/mocks"
	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/model"
	"esg-assistant/internal/service"
)

func setupExchange(t *testing.T, existing []model.Conversation, lastActive string) (*service.ExchangeService, *service.SessionService, *mock_chatapi.MockClient) {
	sessions, _ := setupSession(t, existing, lastActive)
	client := mock_chatapi.NewMockClient(t)
	return service.NewExchangeService(sessions, client, time.Second, zap.NewNop()), sessions, client
}

func TestExchangeService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - first message creates and names a conversation", func(t *testing.T) {
		exchange, sessions, client := setupExchange(t, nil, "")

		client.On("Chat", mock.Anything, mock.MatchedBy(func(req *chatapi.ChatRequest) bool {
			return req.Message == "What is Scope 3?" && req.CompanyFilter == "Orange" && req.ConversationID != "" &&
				len(req.AttachedDocumentData) == 0
		})).Return(&chatapi.ChatResponse{Response: "Indirect emissions.", Company: "Orange", AIUsed: true}, nil).Once()

		result, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "  What is Scope 3?  ", CompanyFilter: "Orange"})
		require.NoError(t, err)

		assert.Equal(t, "What is Scope 3?", result.Conversation.Title)
		require.Len(t, result.Conversation.Messages, 2)
		assert.Equal(t, model.RoleUser, result.UserMessage.Role)
		assert.Equal(t, "What is Scope 3?", result.UserMessage.Content)
		assert.Equal(t, model.RoleAssistant, result.Reply.Role)
		assert.Equal(t, "Indirect emissions.", result.Reply.Content)
		assert.False(t, result.Reply.IsError)
		require.NotNil(t, result.Reply.Metadata)
		assert.Equal(t, "Orange", result.Reply.Metadata.Company)
		assert.True(t, result.Reply.Metadata.AIUsed)

		assert.Equal(t, result.Conversation.ID, sessions.ActiveID())
		assert.Equal(t, result.Conversation.Messages, sessions.VisibleMessages())
		assert.False(t, exchange.InFlight())
	})

	t.Run("Failure - apology reply and the user message is kept", func(t *testing.T) {
		exchange, sessions, client := setupExchange(t, nil, "")
		client.On("Chat", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

		result, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "Hello"})
		require.NoError(t, err)

		assert.True(t, result.Reply.IsError)
		assert.Equal(t, service.ApologyMessage, result.Reply.Content)
		assert.Equal(t, model.RoleAssistant, result.Reply.Role)

		visible := sessions.VisibleMessages()
		require.Len(t, visible, 2)
		assert.Equal(t, "Hello", visible[0].Content)
		assert.True(t, visible[1].IsError)
		assert.False(t, exchange.InFlight())
	})

	t.Run("Failure - blank reply", func(t *testing.T) {
		exchange, _, client := setupExchange(t, nil, "")
		client.On("Chat", mock.Anything, mock.Anything).Return(&chatapi.ChatResponse{Response: "  "}, nil).Once()

		result, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "Hello"})
		require.NoError(t, err)
		assert.True(t, result.Reply.IsError)
	})

	t.Run("Failure - timeout", func(t *testing.T) {
		sessions, _ := setupSession(t, nil, "")
		client := mock_chatapi.NewMockClient(t)
		exchange := service.NewExchangeService(sessions, client, 20*time.Millisecond, zap.NewNop())

		client.On("Chat", mock.Anything, mock.Anything).Return(
			func(ctx context.Context, _ *chatapi.ChatRequest) (*chatapi.ChatResponse, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}).Once()

		result, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "Hello"})
		require.NoError(t, err)
		assert.True(t, result.Reply.IsError)
		assert.Equal(t, service.ApologyMessage, result.Reply.Content)
	})

	t.Run("Cancelled caller does not abort the exchange", func(t *testing.T) {
		exchange, _, client := setupExchange(t, nil, "")
		client.On("Chat", mock.Anything, mock.Anything).Return(
			func(ctx context.Context, _ *chatapi.ChatRequest) (*chatapi.ChatResponse, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return &chatapi.ChatResponse{Response: "Still here"}, nil
			}).Once()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		result, err := exchange.SendMessage(cancelled, &service.SendRequest{Text: "Hello"})
		require.NoError(t, err)
		assert.Equal(t, "Still here", result.Reply.Content)
	})

	t.Run("Attaches the latest analyzed document", func(t *testing.T) {
		existing := []model.Conversation{{
			ID: "c1", Title: "Analysis: report.pdf", Messages: []model.Message{},
			CreatedAt: baseTime, UpdatedAt: baseTime,
			UploadedPDFs: []model.UploadedPDF{
				{Name: "old.pdf", ExtractedData: json.RawMessage(`[{"kpi":"old"}]`)},
				{Name: "report.pdf", ExtractedData: json.RawMessage(`[{"kpi":"co2"}]`)},
			},
		}}
		exchange, _, client := setupExchange(t, existing, "c1")

		client.On("Chat", mock.Anything, mock.MatchedBy(func(req *chatapi.ChatRequest) bool {
			return req.ConversationID == "c1" && string(req.AttachedDocumentData) == `[{"kpi":"co2"}]`
		})).Return(&chatapi.ChatResponse{Response: "Based on the report...", PDFDataIncluded: true}, nil).Once()

		result, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "Summarize", ConversationID: "c1"})
		require.NoError(t, err)
		assert.True(t, result.Reply.Metadata.PDFDataIncluded)
	})

	t.Run("Blank text is rejected without side effects", func(t *testing.T) {
		exchange, sessions, _ := setupExchange(t, nil, "")

		_, err := exchange.SendMessage(ctx, &service.SendRequest{Text: " \n\t "})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		assert.Empty(t, sessions.List())
	})

	t.Run("Unknown conversation", func(t *testing.T) {
		exchange, _, _ := setupExchange(t, nil, "")
		_, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "Hello", ConversationID: "missing"})
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
		assert.False(t, exchange.InFlight())
	})
}

func TestExchangeService_RejectsConcurrentSend(t *testing.T) {
	ctx := context.Background()
	exchange, sessions, client := setupExchange(t, nil, "")

	started := make(chan struct{})
	release := make(chan struct{})
	client.On("Chat", mock.Anything, mock.Anything).Return(
		func(context.Context, *chatapi.ChatRequest) (*chatapi.ChatResponse, error) {
			close(started)
			<-release
			return &chatapi.ChatResponse{Response: "First answer"}, nil
		}).Once()

	done := make(chan *service.ExchangeResult)
	go func() {
		result, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "First"})
		assert.NoError(t, err)
		done <- result
	}()

	<-started
	assert.True(t, exchange.InFlight())

	_, err := exchange.SendMessage(ctx, &service.SendRequest{Text: "Second"})
	assert.ErrorIs(t, err, app_errors.ErrConflict)
	require.Len(t, sessions.VisibleMessages(), 1, "rejected send must not append")

	close(release)
	result := <-done
	require.NotNil(t, result)
	assert.Equal(t, "First answer", result.Reply.Content)
	assert.Len(t, sessions.VisibleMessages(), 2)
	assert.False(t, exchange.InFlight())
}
