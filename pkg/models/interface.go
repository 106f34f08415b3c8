package models

import (
	"context"
)

// Generator is the single capability the summarization core needs from a
// language model backend: prompt in, text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
