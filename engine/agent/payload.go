package agent

import (
	"encoding/json"
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Payload
// -----------------------------------------------------------------------------

// Payload is the type-specific data bag of an agent instance. Each agent type
// has exactly one payload variant, so construction can be checked exhaustively
// instead of relying on runtime shape assumptions. The lifecycle never
// inspects payload contents when deciding transitions.
type Payload interface {
	AgentType() Type
}

// SearchResult is one entry produced by a web-search run.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type WebSearchPayload struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

func (WebSearchPayload) AgentType() Type { return TypeWebSearch }

type VoicePayload struct {
	Transcript string   `json:"transcript"`
	Summary    []string `json:"summary"`
}

func (VoicePayload) AgentType() Type { return TypeVoice }

// EmailRecord is one message in an email agent's thread history.
type EmailRecord struct {
	From       string    `json:"from"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	ReceivedAt time.Time `json:"received_at"`
}

type EmailPayload struct {
	Subject string        `json:"subject"`
	Content string        `json:"content"`
	History []EmailRecord `json:"history"`
}

func (EmailPayload) AgentType() Type { return TypeEmail }

type SpreadsheetPayload struct {
	Rows [][]string `json:"rows"`
}

func (SpreadsheetPayload) AgentType() Type { return TypeSpreadsheet }

type DocumentationPayload struct {
	Document string `json:"document"`
}

func (DocumentationPayload) AgentType() Type { return TypeDocumentation }

type ComputerUsePayload struct {
	Steps []string `json:"steps"`
}

func (ComputerUsePayload) AgentType() Type { return TypeComputerUse }

// UnmarshalJSON decodes an instance, resolving the payload variant from the
// agent type tag so the union round-trips through JSON.
func (a *Instance) UnmarshalJSON(data []byte) error {
	type alias Instance
	aux := struct {
		*alias
		Payload json.RawMessage `json:"payload"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Payload) == 0 || string(aux.Payload) == "null" {
		return nil
	}
	payload := defaultPayload(a.Type)
	if payload == nil {
		return fmt.Errorf("cannot decode payload for unknown agent type %q", a.Type)
	}
	if err := json.Unmarshal(aux.Payload, payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", a.Type, err)
	}
	a.Payload = payload
	return nil
}
