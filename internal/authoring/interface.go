// Package authoring talks to remote language models that write the notes.
package authoring

import "context"

// Author completes a prompt with a remote model.
// Failures are reported as a Failed result, never as a panic or error return.
type Author interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) Result
	Name() string
}

// Result is either Authored or Failed
type Result interface {
	isResult()
}

// Authored carries the text returned by the model
type Authored struct {
	Text string
}

// Failed carries the reason the call did not produce text
type Failed struct {
	Reason error
}

func (Authored) isResult() {}
func (Failed) isResult()   {}
