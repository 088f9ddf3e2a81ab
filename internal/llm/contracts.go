package llm

import "context"

// TextGenerator is the boundary to the external text-understanding service.
// Implementations give no guarantees about the returned text: it may be
// fenced in markdown, malformed, or schema-divergent. Everything past this
// interface treats the response as untrusted input.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
