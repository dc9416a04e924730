// Package domain defines the time-boxed store for externally submitted
// facility sets. The engine itself never touches this store; the HTTP layer
// resolves a session into a plain facility slice before calling the engine.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/haneul-labs/haneul/internal/facility"
)

var (
	ErrNotFound   = errors.New("session_not_found")
	ErrEmptySet   = errors.New("empty_facility_set")
	ErrInvalidID  = errors.New("invalid_session_id")
	ErrTooManyFac = errors.New("facility_set_too_large")
)

// MaxFacilities bounds a submitted set.
const MaxFacilities = 500

// FacilitySet is the persistence model. Facilities are stored as a JSON
// payload; the set is garbage-collected after ExpiresAt.
type FacilitySet struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	Payload   string       `gorm:"type:text;not null"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	ExpiresAt time.Time    `gorm:"not null;index"`
}

// TableName sets the database table name.
func (FacilitySet) TableName() string { return "facility_sets" }

// Service owns submitted facility sets. An expired set behaves exactly like
// a missing one.
type Service interface {
	Create(ctx context.Context, facilities []facility.Facility) (string, time.Time, error)
	Resolve(ctx context.Context, id string) ([]facility.Facility, error)
	PurgeExpired(ctx context.Context) (int64, error)
}
