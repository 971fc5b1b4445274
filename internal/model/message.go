package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message. The set is closed.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ParseRole maps a stored role name onto the closed Role set. Older clients wrote
// "bot" for assistant replies.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return RoleUser, nil
	case "assistant", "bot":
		return RoleAssistant, nil
	case "system":
		return RoleSystem, nil
	default:
		return "", fmt.Errorf("unknown message role %q", s)
	}
}

// MessageMetadata carries optional attributes of assistant and system messages.
type MessageMetadata struct {
	Company         string   `json:"company,omitempty"`
	AIUsed          bool     `json:"aiUsed,omitempty"`
	PDFDataIncluded bool     `json:"pdfDataIncluded,omitempty"`
	PDFName         string   `json:"pdfName,omitempty"`
	KPIsExtracted   int      `json:"kpisExtracted,omitempty"`
	Domains         []string `json:"domains,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// Message is one turn of a conversation. It is immutable once appended.
type Message struct {
	ID        string           `json:"id"`
	Role      Role             `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	IsError   bool             `json:"isError,omitempty"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

// NewMessage builds a message with a fresh id.
func NewMessage(role Role, content string, at time.Time) Message {
	return Message{
		ID:        NewID(),
		Role:      role,
		Content:   content,
		Timestamp: at,
	}
}

// UnmarshalJSON accepts the legacy shapes found in exported files: numeric ids and a
// "type" field in place of "role".
func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	aux := struct {
		*alias
		ID   json.RawMessage `json:"id"`
		Role string          `json:"role"`
		Type string          `json:"type"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeID(aux.ID)
	if err != nil {
		return fmt.Errorf("message id: %w", err)
	}
	m.ID = id

	name := aux.Role
	if name == "" {
		name = aux.Type
	}
	role, err := ParseRole(name)
	if err != nil {
		return err
	}
	m.Role = role
	return nil
}

// NewID returns a time-ordered identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// decodeID accepts either a JSON string or a JSON number.
func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
