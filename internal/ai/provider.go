// Package ai wraps the generative model behind a small interface so the
// services can be tested with a fake and the vendor SDK stays in one place.
package ai

import "context"

// TextModel is a single text-in/text-out generation plus an embedding
// lookup. A call failure means the upstream was unreachable and is
// surfaced as an external-service error; malformed output from a
// reachable model is not an error here, the extract package absorbs it.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Config struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	Temperature    float32
}
