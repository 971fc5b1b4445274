package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TitleMaxRunes is the length a derived title is cut to before the ellipsis.
const TitleMaxRunes = 30

// Conversation is a titled, ordered thread of messages.
type Conversation struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	TitleCustomized bool          `json:"titleCustomized,omitempty"`
	Messages        []Message     `json:"messages"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	ImportedAt      *time.Time    `json:"importedAt,omitempty"`
	Tags            []string      `json:"tags,omitempty"`
	UploadedPDFs    []UploadedPDF `json:"uploadedPdfs,omitempty"`
}

// UploadedPDF describes a document analyzed in the context of a conversation.
// ExtractedData is the opaque KPI payload returned by the analysis service; it is
// sent back as context with later chat requests.
type UploadedPDF struct {
	Name          string          `json:"name"`
	Pages         int             `json:"pages,omitempty"`
	KPIsExtracted int             `json:"kpisExtracted"`
	Domains       []string        `json:"domains,omitempty"`
	ExtractedData json.RawMessage `json:"extractedData,omitempty"`
	AnalyzedAt    time.Time       `json:"analyzedAt"`
}

// ConversationExport is the downloadable form of a conversation.
type ConversationExport struct {
	Conversation
	ExportedAt time.Time `json:"exportedAt"`
}

// UnmarshalJSON tolerates numeric ids and a missing message list.
func (c *Conversation) UnmarshalJSON(data []byte) error {
	type alias Conversation
	aux := struct {
		*alias
		ID json.RawMessage `json:"id"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	id, err := decodeID(aux.ID)
	if err != nil {
		return fmt.Errorf("conversation id: %w", err)
	}
	c.ID = id
	if c.Messages == nil {
		c.Messages = []Message{}
	}
	return nil
}

// LatestDocument returns the most recently analyzed document, if any.
func (c *Conversation) LatestDocument() (UploadedPDF, bool) {
	if len(c.UploadedPDFs) == 0 {
		return UploadedPDF{}, false
	}
	return c.UploadedPDFs[len(c.UploadedPDFs)-1], true
}

// Clone returns a deep copy that shares no slices with c.
func (c Conversation) Clone() Conversation {
	out := c
	out.Messages = make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		out.Messages[i] = m.clone()
	}
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.UploadedPDFs != nil {
		out.UploadedPDFs = make([]UploadedPDF, len(c.UploadedPDFs))
		for i, d := range c.UploadedPDFs {
			d.Domains = append([]string(nil), d.Domains...)
			d.ExtractedData = append(json.RawMessage(nil), d.ExtractedData...)
			out.UploadedPDFs[i] = d
		}
	}
	if c.ImportedAt != nil {
		t := *c.ImportedAt
		out.ImportedAt = &t
	}
	return out
}

func (m Message) clone() Message {
	if m.Metadata != nil {
		md := *m.Metadata
		md.Domains = append([]string(nil), md.Domains...)
		md.Tags = append([]string(nil), md.Tags...)
		m.Metadata = &md
	}
	return m
}

// DeriveTitle builds a conversation title from the first message.
func DeriveTitle(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= TitleMaxRunes {
		return content
	}
	return string(runes[:TitleMaxRunes]) + "..."
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]`)

// ExportFileName returns the attachment name used when a conversation is downloaded.
func ExportFileName(title string) string {
	return "conversation-esg-" + unsafeFileChars.ReplaceAllString(strings.ToLower(title), "_") + ".json"
}
