// Package service implements the gorm-backed facility set store.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/haneul-labs/haneul/internal/clock"
	"github.com/haneul-labs/haneul/internal/config"
	"github.com/haneul-labs/haneul/internal/facility"
	sessiondomain "github.com/haneul-labs/haneul/internal/session/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	ttl   time.Duration
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Cfg   config.Config
}

func NewService(p ServiceParam) (sessiondomain.Service, error) {
	if err := p.DB.AutoMigrate(&sessiondomain.FacilitySet{}); err != nil {
		return nil, err
	}
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("session.service"),
		genID: p.GenID,
		clock: p.Clock,
		ttl:   p.Cfg.SessionTTL,
	}, nil
}

func (s *Service) Create(ctx context.Context, facilities []facility.Facility) (string, time.Time, error) {
	if len(facilities) == 0 {
		return "", time.Time{}, sessiondomain.ErrEmptySet
	}
	if len(facilities) > sessiondomain.MaxFacilities {
		return "", time.Time{}, sessiondomain.ErrTooManyFac
	}

	payload, err := json.Marshal(facilities)
	if err != nil {
		return "", time.Time{}, err
	}

	now := s.clock.Now()
	set := sessiondomain.FacilitySet{
		ID:        s.genID.Generate(),
		Payload:   string(payload),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&set).Error; err != nil {
		return "", time.Time{}, err
	}

	s.log.Info("facility set stored",
		zap.String("session_id", set.ID.String()),
		zap.Int("facilities", len(facilities)),
		zap.Time("expires_at", set.ExpiresAt),
	)
	return set.ID.String(), set.ExpiresAt, nil
}

func (s *Service) Resolve(ctx context.Context, id string) ([]facility.Facility, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, sessiondomain.ErrInvalidID
	}

	var set sessiondomain.FacilitySet
	err = s.db.WithContext(ctx).First(&set, "id = ?", parsed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, sessiondomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !s.clock.Now().Before(set.ExpiresAt) {
		// Expired sets behave exactly like missing ones.
		return nil, sessiondomain.ErrNotFound
	}

	var facilities []facility.Facility
	if err := json.Unmarshal([]byte(set.Payload), &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.clock.Now()).
		Delete(&sessiondomain.FacilitySet{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		s.log.Info("expired facility sets purged", zap.Int64("count", res.RowsAffected))
	}
	return res.RowsAffected, nil
}
