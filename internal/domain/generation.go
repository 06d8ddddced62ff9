package domain

import "context"

// GenerationStatus is the lifecycle of a generation job.
type GenerationStatus string

const (
	GenerationIdle       GenerationStatus = "idle"
	GenerationGenerating GenerationStatus = "generating"
	GenerationCompleted  GenerationStatus = "completed"
)

// GenerationJob is the result of a generate request. The real prompt
// generator is not implemented yet; until it is, jobs complete after a
// placeholder delay and carry no output.
type GenerationJob struct {
	ID        string           `json:"job_id"`
	Status    GenerationStatus `json:"status"`
	WordCount int              `json:"word_count"`
}

// GenerationService gates and runs generation requests. Generate re-validates
// the text and the caller's entitlement before doing any work; rejections are
// returned as *GateError. The underlying generator is an extension point --
// the current implementation is a fixed-delay stub.
type GenerationService interface {
	Generate(ctx context.Context, userID string, token string, text string) (*GenerationJob, error)
	Preview(userID string, token string, text string) GateDecision
}
