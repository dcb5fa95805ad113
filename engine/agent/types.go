package agent

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
)

// -----------------------------------------------------------------------------
// Agent Type
// -----------------------------------------------------------------------------

// Type identifies the task unit an agent node automates. The values are the
// wire tokens carried by drag-and-drop events.
type Type string

const (
	TypeWebSearch     Type = "webSearch"
	TypeVoice         Type = "voice"
	TypeEmail         Type = "email"
	TypeSpreadsheet   Type = "spreadsheet"
	TypeDocumentation Type = "documentation"
	TypeComputerUse   Type = "computerUse"
)

func (t Type) String() string {
	return string(t)
}

// Label derives the display label from the type token: camelCase words are
// split, title-cased, and suffixed with " Agent", e.g.
// webSearch -> "Web Search Agent".
func (t Type) Label() string {
	words := splitCamel(string(t))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ") + " Agent"
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	return append(words, s[start:])
}

// Types lists every known agent type in catalog order.
func Types() []Type {
	return []Type{
		TypeWebSearch,
		TypeVoice,
		TypeEmail,
		TypeSpreadsheet,
		TypeDocumentation,
		TypeComputerUse,
	}
}

// ParseType validates a wire token against the known agent types.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !slices.Contains(Types(), t) {
		return "", fmt.Errorf("unknown agent type: %q", s)
	}
	return t, nil
}

// -----------------------------------------------------------------------------
// Instance
// -----------------------------------------------------------------------------

// Instance is the mutable data of one agent node on the canvas.
type Instance struct {
	InstanceID string   `json:"instance_id"`
	// Type is fixed at creation and never reassigned afterwards.
	Type     Type      `json:"agent_type"`
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Status   Status    `json:"status"`
	Prompt   string    `json:"prompt"`
	Model    string    `json:"model"`
	Files    []FileRef `json:"files"`
	Feedback Feedback  `json:"feedback"`
	Payload  Payload   `json:"payload"`

	// Progress, Summary, LastRunAt, and FailureReason are only meaningful in
	// the states documented on Status; consumers must not display them
	// elsewhere.
	Progress      *int       `json:"progress,omitempty"`
	Summary       string     `json:"summary,omitempty"`
	LastRunAt     *time.Time `json:"last_run_at,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
}

// -----------------------------------------------------------------------------
// Models
// -----------------------------------------------------------------------------

// modelCatalog is the fixed allow-list offered by the model picker. The core
// accepts any non-empty model identifier on an instance; the list is
// reference data for the UI, not an enforcement point.
var modelCatalog = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"claude-sonnet-4",
	"gemini-2.0-flash",
	"o3-mini",
}

// Models returns a copy of the model allow-list.
func Models() []string {
	return slices.Clone(modelCatalog)
}

// DefaultModel is the model assigned to freshly created instances.
func DefaultModel() string {
	return modelCatalog[0]
}
