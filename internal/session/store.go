// Package session persists quiz sessions as JSON snapshots keyed by id.
// Handlers load a snapshot, apply one state-machine transition, and save it
// back; the stores never interpret the snapshot themselves.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cloudprep/ccpquiz/internal/quiz"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Save(ctx context.Context, id string, s *quiz.Session) error
	Load(ctx context.Context, id string) (*quiz.Session, error)
	Delete(ctx context.Context, id string) error
}

// NewID mints a session id.
func NewID() string { return uuid.New().String() }
