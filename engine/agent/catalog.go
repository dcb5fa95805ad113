package agent

import "fmt"

// defaultPrompts holds the canonical starter prompt per agent type.
var defaultPrompts = map[Type]string{
	TypeWebSearch:     "Search the web for the topic below and collect the most relevant sources.",
	TypeVoice:         "Place the call described below and transcribe the conversation.",
	TypeEmail:         "Draft and send the email described below.",
	TypeSpreadsheet:   "Fill in the spreadsheet according to the instructions below.",
	TypeDocumentation: "Write documentation covering the topic below.",
	TypeComputerUse:   "Complete the on-screen task described below step by step.",
}

// defaultPayload returns the canonical empty payload shape for the type.
func defaultPayload(t Type) Payload {
	switch t {
	case TypeWebSearch:
		return &WebSearchPayload{Results: []SearchResult{}}
	case TypeVoice:
		return &VoicePayload{Summary: []string{}}
	case TypeEmail:
		return &EmailPayload{History: []EmailRecord{}}
	case TypeSpreadsheet:
		return &SpreadsheetPayload{Rows: [][]string{}}
	case TypeDocumentation:
		return &DocumentationPayload{}
	case TypeComputerUse:
		return &ComputerUsePayload{Steps: []string{}}
	default:
		return nil
	}
}

// NewInstance builds a fresh agent instance for the given type: pending
// status, no files, all feedback sentiments reset, and the type's default
// prompt and payload shape. The catalog is a pure lookup; instances it
// produced earlier are never touched.
func NewInstance(t Type, id string) (*Instance, error) {
	payload := defaultPayload(t)
	if payload == nil {
		return nil, fmt.Errorf("unknown agent type: %q", t)
	}
	label := t.Label()
	return &Instance{
		InstanceID: id,
		Type:       t,
		Name:       label,
		Label:      label,
		Status:     StatusPending,
		Prompt:     defaultPrompts[t],
		Model:      DefaultModel(),
		Files:      []FileRef{},
		Feedback:   NewFeedback(),
		Payload:    payload,
	}, nil
}
