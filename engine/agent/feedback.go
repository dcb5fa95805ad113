package agent

import "fmt"

// -----------------------------------------------------------------------------
// Feedback
// -----------------------------------------------------------------------------

// Sentiment is a three-valued rating attached to an aspect of an agent.
type Sentiment string

const (
	SentimentNone     Sentiment = "none"
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// FeedbackKind names the rated aspect.
type FeedbackKind string

const (
	FeedbackAgent     FeedbackKind = "agent"
	FeedbackExecution FeedbackKind = "execution"
	FeedbackPrompt    FeedbackKind = "prompt"
)

// Feedback holds the per-aspect sentiments. It is orthogonal to the
// lifecycle: any state may set it, though it only carries meaning once the
// agent has reached SUCCESS at least once.
type Feedback struct {
	Agent     Sentiment `json:"agent"`
	Execution Sentiment `json:"execution"`
	Prompt    Sentiment `json:"prompt"`
}

func NewFeedback() Feedback {
	return Feedback{
		Agent:     SentimentNone,
		Execution: SentimentNone,
		Prompt:    SentimentNone,
	}
}

// Toggle applies one feedback-button click: clicking the currently selected
// sentiment resets the aspect to none, clicking the other sentiment
// overwrites it unconditionally.
func (f *Feedback) Toggle(kind FeedbackKind, positive bool) error {
	switch kind {
	case FeedbackAgent:
		f.Agent = toggled(f.Agent, positive)
	case FeedbackExecution:
		f.Execution = toggled(f.Execution, positive)
	case FeedbackPrompt:
		f.Prompt = toggled(f.Prompt, positive)
	default:
		return fmt.Errorf("unknown feedback kind: %q", kind)
	}
	return nil
}

func toggled(current Sentiment, positive bool) Sentiment {
	clicked := SentimentNegative
	if positive {
		clicked = SentimentPositive
	}
	if current == clicked {
		return SentimentNone
	}
	return clicked
}
