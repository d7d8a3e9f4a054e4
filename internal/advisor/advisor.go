// Package advisor produces a natural-language financial summary and a
// short list of action items from a generative text service, degrading to
// a fixed fallback payload on any failure.
package advisor

import "context"

// Advisory is the strict output contract of the text-generation service:
// a summary string and an ordered list of suggestions. Exactly three
// suggestions are requested, but consumers must render whatever length
// comes back.
type Advisory struct {
	Summary string   `json:"summary"`
	Advice  []string `json:"advice"`
}

// Result is what callers of the advisory service receive. Fallback is true
// when the generated advisory could not be obtained and the fixed payload
// was substituted; no error is ever propagated past this type.
type Result struct {
	Summary  string   `json:"summary"`
	Advice   []string `json:"advice"`
	Fallback bool     `json:"fallback"`
}

// Generator produces an advisory for a prepared prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Advisory, error)
}

// Fallback returns the fixed advisory used whenever generation fails:
// a static "advisor unavailable" summary and three generic tips.
func Fallback() Result {
	return Result{
		Summary: "The AI advisor is temporarily unavailable. Please review your financial records or try again later.",
		Advice: []string{
			"Review your bills and statements regularly",
			"Cut back on non-essential spending",
			"Plan for more than one source of income",
		},
		Fallback: true,
	}
}
