package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esg-assistant/internal/model"
)

// TestFullConversationWorkflow drives the complete HTTP surface against a fake
// analysis service, the way the chat UI does.
func TestFullConversationWorkflow(t *testing.T) {
	var failChat atomic.Bool
	analysis := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/chat":
			if failChat.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			var req struct {
				Message string `json:"message"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			_, _ = w.Write([]byte(`{"response": "You asked: ` + req.Message + `", "aiUsed": true}`))
		case "/api/companies":
			_, _ = w.Write([]byte(`["Orange"]`))
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer analysis.Close()

	app, err := NewApp(context.Background(), testConfig(t, analysis.URL), zap.NewNop())
	require.NoError(t, err)
	defer app.Close()

	server := httptest.NewServer(app.Server.Handler)
	defer server.Close()
	baseURL := server.URL + "/api/v1"

	var conversationID string

	t.Run("SendFirstMessage", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, baseURL+"/messages", `{"text": "What are the Scope 3 emissions of Orange?"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Conversation model.Conversation `json:"conversation"`
			Reply        model.Message      `json:"reply"`
		}
		decode(t, resp, &result)
		conversationID = result.Conversation.ID
		assert.Equal(t, "What are the Scope 3 emissions...", result.Conversation.Title)
		assert.Equal(t, "You asked: What are the Scope 3 emissions of Orange?", result.Reply.Content)
	})

	t.Run("ListConversations", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, baseURL+"/conversations", "")
		var conversations []model.Conversation
		decode(t, resp, &conversations)
		require.Len(t, conversations, 1)
		assert.Equal(t, conversationID, conversations[0].ID)
	})

	t.Run("FailedExchangeKeepsUserMessage", func(t *testing.T) {
		failChat.Store(true)
		defer failChat.Store(false)

		resp := doJSON(t, http.MethodPost, baseURL+"/messages", `{"text": "And water usage?"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Reply model.Message `json:"reply"`
		}
		decode(t, resp, &result)
		assert.True(t, result.Reply.IsError)
		assert.Equal(t, "Sorry, an error occurred. Please try again.", result.Reply.Content)
	})

	t.Run("GetConversationByID", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, baseURL+"/conversations/"+conversationID, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var conv model.Conversation
		decode(t, resp, &conv)
		assert.Len(t, conv.Messages, 4)
	})

	t.Run("UpdateTitle", func(t *testing.T) {
		resp := doJSON(t, http.MethodPut, baseURL+"/conversations/"+conversationID+"/title", `{"title": "Orange footprint"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var conv model.Conversation
		decode(t, resp, &conv)
		assert.Equal(t, "Orange footprint", conv.Title)
	})

	var exported []byte
	t.Run("Export", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, baseURL+"/conversations/"+conversationID+"/export", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "conversation-esg-orange_footprint.json")
		exported, err = io.ReadAll(resp.Body)
		require.NoError(t, err)
		_ = resp.Body.Close()
	})

	t.Run("Import", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, baseURL+"/conversations/import", string(exported))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var conv model.Conversation
		decode(t, resp, &conv)
		assert.NotEqual(t, conversationID, conv.ID)
		assert.Equal(t, "Orange footprint", conv.Title)
		assert.NotNil(t, conv.ImportedAt)
		assert.Len(t, conv.Messages, 4)
	})

	t.Run("DeleteConversation", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, baseURL+"/conversations/"+conversationID, "")
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("VerifyDeletion", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, baseURL+"/conversations", "")
		var conversations []model.Conversation
		decode(t, resp, &conversations)
		require.Len(t, conversations, 1, "only the imported copy remains")
		assert.NotEqual(t, conversationID, conversations[0].ID)

		resp = doJSON(t, http.MethodGet, baseURL+"/conversations/"+conversationID, "")
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Companies", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, baseURL+"/companies", "")
		var body struct {
			Companies []string `json:"companies"`
		}
		decode(t, resp, &body)
		assert.Equal(t, []string{"Orange"}, body.Companies)
	})
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
