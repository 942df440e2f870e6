package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServicePort is the detect service surface
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (DetectResp, error)
	Probabilities(ctx context.Context, in DetectInput) (ProbabilitiesResp, error)
	Languages(ctx context.Context) (LanguagesResp, error)
}

// Event is one recorded detection
type Event struct {
	ID        uuid.UUID
	At        time.Time
	RequestID string
	Lang      string
	Prob      float64
	Runes     int
	Seeded    bool
	Cached    bool
	Outcome   string
}

// EventSink records detections, never blocking the caller
type EventSink interface {
	Record(ev Event)
}
