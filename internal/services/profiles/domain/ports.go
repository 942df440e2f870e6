// Package domain holds the profile source contracts
package domain

import (
	"context"

	"langdetect/internal/core/detector"
	"langdetect/internal/core/profile"
)

// Source loads every stored profile
type Source interface {
	Name() string
	Load(ctx context.Context) ([]*profile.Profile, error)
}

// Writer is implemented by sources that accept edits
type Writer interface {
	Upsert(ctx context.Context, p *profile.Profile) error
	Delete(ctx context.Context, lang string) error
}

// FactoryPort hands out the active detector factory, nil until the first load
type FactoryPort interface {
	Current() *detector.Factory
}

// ReloadPort rebuilds the active registry from the source
type ReloadPort interface {
	Reload(ctx context.Context) error
}
