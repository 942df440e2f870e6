// Package repo records detections to clickhouse
package repo

import (
	"context"
	"sync/atomic"
	"time"

	"langdetect/internal/platform/logger"
	"langdetect/internal/platform/store"
	"langdetect/internal/services/api/detect/domain"
)

// Table receives one row per detection
const Table = "detections"

// Schema creates Table when missing
const Schema = `
CREATE TABLE IF NOT EXISTS detections (
	id         UUID,
	at         DateTime64(3, 'UTC'),
	request_id String,
	lang       LowCardinality(String),
	prob       Float64,
	runes      UInt32,
	seeded     UInt8,
	cached     UInt8,
	outcome    LowCardinality(String)
) ENGINE = MergeTree
ORDER BY (at, id)
TTL toDateTime(at) + INTERVAL 90 DAY`

// SinkOptions bound the in-memory queue and flush cadence
type SinkOptions struct {
	Buffer int
	Batch  int
	Every  time.Duration
}

// Sink batches detections into clickhouse from a single goroutine
// Record never blocks; events are dropped when the queue is full
type Sink struct {
	ch      store.Clickhouse
	events  chan domain.Event
	batch   int
	every   time.Duration
	dropped atomic.Int64
}

// NewSink returns a sink writing to ch; call Run to start flushing
func NewSink(ch store.Clickhouse, o SinkOptions) *Sink {
	if o.Buffer <= 0 {
		o.Buffer = 4096
	}
	if o.Batch <= 0 {
		o.Batch = 512
	}
	if o.Every <= 0 {
		o.Every = 2 * time.Second
	}
	return &Sink{ch: ch, events: make(chan domain.Event, o.Buffer), batch: o.Batch, every: o.Every}
}

// Migrate creates the detections table
func (s *Sink) Migrate(ctx context.Context) error {
	return s.ch.Exec(ctx, Schema)
}

// Record implements domain.EventSink
func (s *Sink) Record(ev domain.Event) {
	select {
	case s.events <- ev:
	default:
		s.dropped.Add(1)
	}
}

// Dropped counts events lost to a full queue
func (s *Sink) Dropped() int64 { return s.dropped.Load() }

// Run flushes every Every or Batch events until ctx ends, then drains what is queued
func (s *Sink) Run(ctx context.Context) error {
	log := logger.Named("detections-sink")
	ticker := time.NewTicker(s.every)
	defer ticker.Stop()

	buf := make([]domain.Event, 0, s.batch)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		if err := s.ch.Insert(ctx, Table, rows(buf)); err != nil {
			log.Error().Err(err).Int("events", len(buf)).Msg("insert detections failed")
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
		drain:
			for {
				select {
				case ev := <-s.events:
					buf = append(buf, ev)
				default:
					break drain
				}
			}
			drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			flush(drainCtx)
			cancel()
			return ctx.Err()
		case ev := <-s.events:
			buf = append(buf, ev)
			if len(buf) >= s.batch {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

func rows(evs []domain.Event) [][]any {
	out := make([][]any, len(evs))
	for i, ev := range evs {
		out[i] = []any{
			ev.ID, ev.At.UTC(), ev.RequestID, ev.Lang, ev.Prob,
			uint32(ev.Runes), boolU8(ev.Seeded), boolU8(ev.Cached), ev.Outcome,
		}
	}
	return out
}

func boolU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
