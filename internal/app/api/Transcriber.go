package api

import "context"

// Transcriber converts an audio file held in external storage to text.
type Transcriber interface {
	Convert(ctx context.Context, fileName string) (string, error)
}

// Summarizer condenses a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Executor runs one transcription request end to end.
type Executor interface {
	Execute(ctx context.Context, req Request) (Result, error)
}
