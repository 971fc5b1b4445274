package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Client talks to the remote ESG analysis service: answer generation, document
// analysis and the company list used by the chat filter.
type Client interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	AnalyzeDocument(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error)
	ListCompanies(ctx context.Context) ([]string, error)
	Health(ctx context.Context) error
}

// Paths holds the routes of the remote service, relative to its base URL.
type Paths struct {
	Chat      string
	Upload    string
	Companies string
	Health    string
}

// DefaultPaths are the routes exposed by the analysis backend.
var DefaultPaths = Paths{
	Chat:      "/api/chat",
	Upload:    "/api/chat-upload-pdf",
	Companies: "/api/companies",
	Health:    "/api/health",
}

// ChatRequest is the payload of one exchange.
type ChatRequest struct {
	Message              string          `json:"message"`
	CompanyFilter        string          `json:"companyFilter,omitempty"`
	AttachedDocumentData json.RawMessage `json:"attachedDocumentData,omitempty"`
	ConversationID       string          `json:"conversationId,omitempty"`
}

// ChatResponse is the generated answer and what the backend reports about it.
type ChatResponse struct {
	Response        string `json:"response"`
	Company         string `json:"company,omitempty"`
	AIUsed          bool   `json:"aiUsed,omitempty"`
	PDFDataIncluded bool   `json:"pdfDataIncluded,omitempty"`
}

// AnalyzeRequest carries the report to analyze and the reference KPI file.
type AnalyzeRequest struct {
	PDFName string
	PDF     io.Reader
	KPIName string
	KPI     io.Reader
}

// AnalyzeResponse is the result of a document analysis. ExtractedData is kept
// opaque; it is only ever sent back as chat context.
type AnalyzeResponse struct {
	Success       bool            `json:"success"`
	PDFName       string          `json:"pdf_name"`
	KPIsExtracted int             `json:"kpis_extracted"`
	ExtractedData json.RawMessage `json:"extracted_data"`
	Summary       AnalyzeSummary  `json:"summary"`
}

type AnalyzeSummary struct {
	TotalKPIs      int      `json:"total_kpis"`
	HighConfidence int      `json:"high_confidence"`
	Domains        []string `json:"domains"`
}

// APIError is returned when the remote service answers with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat api returned status %d: %s", e.Status, e.Message)
}

type httpClient struct {
	client  *http.Client
	baseURL string
	paths   Paths
}

// NewClient returns a Client for the service at baseURL. Timeouts are applied per
// call through the context, so hc normally has none.
func NewClient(baseURL string, paths Paths, hc *http.Client) Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &httpClient{
		client:  hc,
		baseURL: strings.TrimRight(baseURL, "/"),
		paths:   paths,
	}
}

func (c *httpClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.paths.Chat, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// The backend has answered in both camelCase and snake_case over time.
	var wire struct {
		ChatResponse
		AIUsedLegacy          bool `json:"ai_used"`
		PDFDataIncludedLegacy bool `json:"pdf_data_included"`
	}
	if err := c.do(httpReq, &wire); err != nil {
		return nil, err
	}

	resp := wire.ChatResponse
	resp.AIUsed = resp.AIUsed || wire.AIUsedLegacy
	resp.PDFDataIncluded = resp.PDFDataIncluded || wire.PDFDataIncludedLegacy
	return &resp, nil
}

func (c *httpClient) AnalyzeDocument(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := addFile(form, "pdf_file", req.PDFName, req.PDF); err != nil {
		return nil, err
	}
	if err := addFile(form, "kpi_file", req.KPIName, req.KPI); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("could not finish multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.paths.Upload, &body)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())

	var resp AnalyzeResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("analysis of %q did not succeed", req.PDFName)
	}
	return &resp, nil
}

func (c *httpClient) ListCompanies(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.paths.Companies, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	companies := []string{}
	if err := c.do(httpReq, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *httpClient) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.paths.Health, nil)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	return c.do(httpReq, nil)
}

func (c *httpClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(bodyBytes, &errResp)
		msg := errResp.Error
		if msg == "" {
			msg = strings.TrimSpace(string(bodyBytes))
		}
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func addFile(form *multipart.Writer, field, name string, r io.Reader) error {
	if r == nil {
		return fmt.Errorf("missing %s", field)
	}
	part, err := form.CreateFormFile(field, name)
	if err != nil {
		return fmt.Errorf("could not create %s part: %w", field, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("could not write %s part: %w", field, err)
	}
	return nil
}
