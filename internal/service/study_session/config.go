package study_session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/flipwise/flipwise/internal/config"
	"github.com/flipwise/flipwise/internal/domain/study"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultSessionTTL    = 2 * time.Hour
	DefaultSweepInterval = time.Minute
	DefaultMaxActive     = 1000
)

// Config tunes schedulers and the session registry. Zero values fall back
// to the defaults.
type Config struct {
	RecencyWindow int
	// GapPolicy defaults to study.DefaultGapPolicy when nil. A non-nil
	// all-zero policy is kept as is.
	GapPolicy     *study.GapPolicy
	SessionTTL    time.Duration
	SweepInterval time.Duration
	MaxActive     int

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// RandomSource returns the random source for a new session. Defaults
	// to a PCG source with a random seed.
	RandomSource func() study.Random
}

// ConfigFromSettings converts the study section of the application
// configuration. Every gap bound is taken as given; config.Load supplies
// defaults for unset keys, so a zero here is an explicit zero.
func ConfigFromSettings(s config.StudyConfig) (Config, error) {
	policy := study.GapPolicy{
		Struggled: study.GapRange{Min: s.StruggledGapMin, Max: s.StruggledGapMax},
		Easy:      study.GapRange{Min: s.EasyGapMin, Max: s.EasyGapMax},
	}
	if err := policy.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid gap policy: %w", err)
	}

	return Config{
		RecencyWindow: s.RecencyWindow,
		GapPolicy:     &policy,
		SessionTTL:    time.Duration(s.SessionTTLMinutes) * time.Minute,
		SweepInterval: time.Duration(s.SweepIntervalSeconds) * time.Second,
		MaxActive:     s.MaxActiveSessions,
	}, nil
}

func (c Config) withDefaults() Config {
	if c.RecencyWindow < 1 {
		c.RecencyWindow = study.DefaultRecencyWindow
	}
	if c.GapPolicy == nil {
		policy := study.DefaultGapPolicy()
		c.GapPolicy = &policy
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = DefaultSweepInterval
	}
	if c.MaxActive <= 0 {
		c.MaxActive = DefaultMaxActive
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.RandomSource == nil {
		c.RandomSource = func() study.Random {
			return study.NewRandom(rand.Uint64())
		}
	}
	return c
}
