package models

import "context"

type Interface interface {
	Respond(ctx context.Context, messages []Message) (string, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
