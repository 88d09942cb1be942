package newsdesk

import "context"

// Analysis is the editorial analysis of an article.
type Analysis struct {
	// Captions are lower-third captions for broadcast graphics.
	Captions []string

	// Questions are panel discussion questions.
	Questions []string

	Commentary Commentary
}

// Commentary holds free-text editorial notes about an analysis.
type Commentary struct {
	SelectionRationale string `json:"lt_selection"`
	QuestionRationale  string `json:"question_importance"`
	Observations       string `json:"observations"`
	StandardsNote      string `json:"professional_standards"`
}

// Generator produces an analysis for an article.
type Generator interface {
	Generate(ctx context.Context, article *Article) (*Analysis, error)
}

// Prompt is a request to a text-completion service.
type Prompt struct {
	System string
	User   string
}

// Completer sends prompts to a text-completion service.
type Completer interface {
	// Complete returns the free-text reply for the prompt.
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
