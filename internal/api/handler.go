package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/interfaces"
	"esg-assistant/internal/model"
	"esg-assistant/internal/service"
)

const (
	maxJSONBytes     = 1 << 20
	maxImportBytes   = 10 << 20
	maxDocumentBytes = 50 << 20
)

// ChatHandler serves the conversation list, message exchange and document upload.
type ChatHandler struct {
	sessions  interfaces.SessionService
	exchange  interfaces.ExchangeService
	documents interfaces.DocumentService
	log       *zap.Logger
}

func NewChatHandler(
	sessions interfaces.SessionService,
	exchange interfaces.ExchangeService,
	documents interfaces.DocumentService,
	log *zap.Logger,
) *ChatHandler {
	return &ChatHandler{sessions: sessions, exchange: exchange, documents: documents, log: log}
}

// ListConversations godoc
// @Summary      List conversations
// @Description  Returns every conversation, newest first.
// @Tags         Conversations
// @Produce      json
// @Success      200  {array}   model.Conversation
// @Router       /v1/conversations [get]
func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, h.log, http.StatusOK, h.sessions.List())
}

// CreateConversation godoc
// @Summary      Start a conversation
// @Description  Creates an empty conversation and makes it active.
// @Tags         Conversations
// @Produce      json
// @Success      201  {object}  model.Conversation
// @Router       /v1/conversations [post]
func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, h.log, http.StatusCreated, h.sessions.Create(r.Context()))
}

// GetActiveConversation godoc
// @Summary      Active conversation
// @Description  Returns the active conversation and its visible messages. The conversation is null when none is active.
// @Tags         Conversations
// @Produce      json
// @Success      200  {object}  ActiveConversationResponse
// @Router       /v1/conversations/active [get]
func (h *ChatHandler) GetActiveConversation(w http.ResponseWriter, r *http.Request) {
	resp := ActiveConversationResponse{Messages: []model.Message{}}
	if conv, ok := h.sessions.Active(); ok {
		resp.Conversation = &conv
		resp.Messages = conv.Messages
	}
	respondWithJSON(w, h.log, http.StatusOK, resp)
}

// GetConversation godoc
// @Summary      Get a conversation
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      string  true  "Conversation ID"
// @Success      200             {object}  model.Conversation
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID} [get]
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	conv, ok := h.sessions.Get(id)
	if !ok {
		respondWithError(w, h.log, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id))
		return
	}
	respondWithJSON(w, h.log, http.StatusOK, conv)
}

// SelectConversation godoc
// @Summary      Switch conversation
// @Description  Makes the conversation active.
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      string  true  "Conversation ID"
// @Success      200             {object}  ActiveConversationResponse
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/select [post]
func (h *ChatHandler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	if !h.sessions.Select(r.Context(), id) {
		respondWithError(w, h.log, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id))
		return
	}
	h.GetActiveConversation(w, r)
}

// UpdateConversationTitle godoc
// @Summary      Rename a conversation
// @Description  Sets a custom title. A blank title leaves the conversation unchanged.
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path      string              true  "Conversation ID"
// @Param        title           body      UpdateTitleRequest  true  "New title"
// @Success      200             {object}  model.Conversation
// @Failure      400             {object}  ErrorResponse
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/title [put]
func (h *ChatHandler) UpdateConversationTitle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	var req UpdateTitleRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, h.log, err)
		return
	}

	conv, err := h.sessions.Rename(r.Context(), id, req.Title)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	respondWithJSON(w, h.log, http.StatusOK, conv)
}

// DeleteConversation godoc
// @Summary      Delete a conversation
// @Description  Deletes the conversation and its messages. If it was active, the first remaining conversation becomes active.
// @Tags         Conversations
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID} [delete]
func (h *ChatHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	if !h.sessions.Delete(r.Context(), id) {
		respondWithError(w, h.log, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportConversation godoc
// @Summary      Export a conversation
// @Description  Downloads the conversation as a JSON file.
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      string  true  "Conversation ID"
// @Success      200             {object}  model.ConversationExport
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/export [get]
func (h *ChatHandler) ExportConversation(w http.ResponseWriter, r *http.Request) {
	export, err := h.sessions.Export(chi.URLParam(r, "conversationID"))
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}

	body, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": model.ExportFileName(export.Title),
	}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.log.Error("failed to write export", zap.Error(err))
	}
}

// ImportConversation godoc
// @Summary      Import a conversation
// @Description  Adds a previously exported conversation under a new id and makes it active. Accepts the JSON file as the request body or as the multipart field "file".
// @Tags         Conversations
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  false  "Exported conversation"
// @Success      201   {object}  model.Conversation
// @Failure      400   {object}  ErrorResponse
// @Router       /v1/conversations/import [post]
func (h *ChatHandler) ImportConversation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	var data []byte
	var err error
	if isMultipart(r) {
		data, err = readFormFile(r, "file", maxImportBytes)
	} else {
		data, err = io.ReadAll(r.Body)
	}
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}

	conv, err := h.sessions.Import(r.Context(), data)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	respondWithJSON(w, h.log, http.StatusCreated, conv)
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Appends the user message, waits for the assistant reply and appends it. When the analysis service fails, the reply is an apology flagged with isError. Only one exchange runs at a time.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        message  body      service.SendRequest  true  "User message"
// @Success      200      {object}  service.ExchangeResult
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, h.log, err)
		return
	}

	result, err := h.exchange.SendMessage(r.Context(), &req)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	respondWithJSON(w, h.log, http.StatusOK, result)
}

// UploadDocument godoc
// @Summary      Analyze a report
// @Description  Sends a PDF report and its KPI reference file for indicator extraction. The outcome is recorded in the conversation as a system notice.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        pdf_file         formData  file    true   "PDF report"
// @Param        kpi_file         formData  file    true   "KPI reference file"
// @Param        conversation_id  formData  string  false  "Target conversation; defaults to the active one"
// @Success      200              {object}  service.DocumentResult
// @Failure      400              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Failure      413              {object}  ErrorResponse
// @Router       /v1/documents [post]
func (h *ChatHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)
	if !isMultipart(r) {
		respondWithError(w, h.log, fmt.Errorf("%w: expected multipart/form-data", app_errors.ErrValidation))
		return
	}
	if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
		respondWithError(w, h.log, wrapFormError(err))
		return
	}

	upload := &service.DocumentUpload{ConversationID: r.FormValue("conversation_id")}
	var err error
	if upload.PDF, upload.PDFName, err = formFile(r, "pdf_file"); err != nil {
		respondWithError(w, h.log, err)
		return
	}
	if upload.KPI, upload.KPIName, err = formFile(r, "kpi_file"); err != nil {
		respondWithError(w, h.log, err)
		return
	}

	result, err := h.documents.Analyze(r.Context(), upload)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	respondWithJSON(w, h.log, http.StatusOK, result)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func readFormFile(r *http.Request, field string, maxMemory int64) ([]byte, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, wrapFormError(err)
	}
	data, _, err := formFile(r, field)
	return data, err
}

// formFile returns the content and client file name of a multipart field.
func formFile(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", fmt.Errorf("%w: missing file field %q", app_errors.ErrValidation, field)
		}
		return nil, "", wrapFormError(err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("could not read %s: %w", field, err)
	}
	return data, header.Filename, nil
}

func wrapFormError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: invalid multipart form: %s", app_errors.ErrValidation, err.Error())
}
