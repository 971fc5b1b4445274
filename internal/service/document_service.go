package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"esg-assistant/internal/chatapi"
	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/model"
	"esg-assistant/pkg/metrics"
)

// AnalysisFailedMessage is the notice appended when the analysis service fails.
const AnalysisFailedMessage = "Error while analyzing the document. Please try again."

// DocumentUpload is a report and its reference KPI file, uploaded for analysis.
type DocumentUpload struct {
	ConversationID string
	PDFName        string
	PDF            []byte
	KPIName        string
	KPI            []byte
}

// DocumentResult is the outcome of an upload: the notice appended to the
// conversation and, on success, the recorded document.
type DocumentResult struct {
	Conversation model.Conversation `json:"conversation"`
	Notice       model.Message      `json:"notice"`
	Document     *model.UploadedPDF `json:"document,omitempty"`
}

// DocumentService forwards reports to the analysis service and keeps the
// extracted indicators on the conversation, where later exchanges pick them up.
type DocumentService struct {
	sessions *SessionService
	client   chatapi.Client
	timeout  time.Duration
	log      *zap.Logger
	now      func() time.Time

	inFlight atomic.Bool
}

func NewDocumentService(sessions *SessionService, client chatapi.Client, timeout time.Duration, log *zap.Logger) *DocumentService {
	return &DocumentService{
		sessions: sessions,
		client:   client,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}
}

// Analyze validates the upload, sends it to the analysis service and records the
// outcome on the target conversation. A failure from the service is reported in
// the conversation as an error notice, not as a returned error.
func (s *DocumentService) Analyze(ctx context.Context, upload *DocumentUpload) (*DocumentResult, error) {
	if upload.PDFName == "" || len(upload.PDF) == 0 {
		return nil, fmt.Errorf("%w: a PDF report is required", app_errors.ErrValidation)
	}
	if upload.KPIName == "" || len(upload.KPI) == 0 {
		return nil, fmt.Errorf("%w: a KPI reference file is required", app_errors.ErrValidation)
	}
	pages, err := countPages(upload.PDF)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a readable PDF: %s", app_errors.ErrValidation, upload.PDFName, err.Error())
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: a document is already being analyzed", app_errors.ErrConflict)
	}
	defer s.inFlight.Store(false)

	convID, err := s.sessions.EnsureConversation(ctx, upload.ConversationID)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	s.log.Info("analyzing document",
		zap.String("conversation_id", convID),
		zap.String("pdf_name", upload.PDFName),
		zap.Int("pages", pages),
		zap.Int("size", len(upload.PDF)))

	resp, err := s.client.AnalyzeDocument(callCtx, &chatapi.AnalyzeRequest{
		PDFName: upload.PDFName,
		PDF:     bytes.NewReader(upload.PDF),
		KPIName: upload.KPIName,
		KPI:     bytes.NewReader(upload.KPI),
	})
	persistCtx := context.WithoutCancel(ctx)
	if err != nil {
		metrics.DocumentAnalyses.WithLabelValues("error").Inc()
		s.log.Error("document analysis failed",
			zap.String("conversation_id", convID), zap.String("pdf_name", upload.PDFName), zap.Error(err))

		notice := model.NewMessage(model.RoleSystem, AnalysisFailedMessage, s.now().UTC())
		notice.IsError = true
		conv, err := s.sessions.AppendMessage(persistCtx, convID, notice)
		if err != nil {
			return nil, err
		}
		return &DocumentResult{Conversation: conv, Notice: notice}, nil
	}
	metrics.DocumentAnalyses.WithLabelValues("success").Inc()

	kpis := resp.KPIsExtracted
	if kpis == 0 {
		kpis = resp.Summary.TotalKPIs
	}
	doc := model.UploadedPDF{
		Name:          upload.PDFName,
		Pages:         pages,
		KPIsExtracted: kpis,
		Domains:       resp.Summary.Domains,
		ExtractedData: resp.ExtractedData,
		AnalyzedAt:    s.now().UTC(),
	}
	notice := model.NewMessage(model.RoleSystem,
		fmt.Sprintf("Document \"%s\" analyzed successfully. %d ESG indicators extracted.", upload.PDFName, kpis),
		doc.AnalyzedAt)
	notice.Metadata = &model.MessageMetadata{
		PDFName:       upload.PDFName,
		KPIsExtracted: kpis,
		Domains:       resp.Summary.Domains,
	}

	conv, err := s.sessions.AttachDocument(persistCtx, convID, doc, notice)
	if err != nil {
		return nil, err
	}
	return &DocumentResult{Conversation: conv, Notice: notice, Document: &doc}, nil
}

// countPages parses the document enough to know it is a PDF. The parser panics on
// some malformed inputs, so a panic is reported as an error.
func countPages(data []byte) (pages int, err error) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), []byte("%PDF-")) {
		return 0, errors.New("missing %PDF header")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed document: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}
