package study_session

import (
	"testing"
	"time"

	"github.com/flipwise/flipwise/internal/config"
	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromSettings(t *testing.T) {
	cfg, err := ConfigFromSettings(config.StudyConfig{
		RecencyWindow:        4,
		StruggledGapMin:      2,
		StruggledGapMax:      5,
		EasyGapMin:           20,
		EasyGapMax:           40,
		SessionTTLMinutes:    15,
		SweepIntervalSeconds: 30,
		MaxActiveSessions:    50,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.RecencyWindow)
	assert.Equal(t, study.GapRange{Min: 2, Max: 5}, cfg.GapPolicy.Struggled)
	assert.Equal(t, study.GapRange{Min: 20, Max: 40}, cfg.GapPolicy.Easy)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, 50, cfg.MaxActive)
}

func TestConfigFromSettings_InvalidGap(t *testing.T) {
	_, err := ConfigFromSettings(config.StudyConfig{StruggledGapMin: 9, StruggledGapMax: 3})
	assert.ErrorIs(t, err, study.ErrInvalidGapRange)
}

func TestConfigFromSettings_ZeroGapBounds(t *testing.T) {
	tests := []struct {
		name      string
		settings  config.StudyConfig
		struggled study.GapRange
		easy      study.GapRange
	}{
		{
			name: "zero struggled minimum",
			settings: config.StudyConfig{
				StruggledGapMin: 0, StruggledGapMax: 10,
				EasyGapMin: 25, EasyGapMax: 60,
			},
			struggled: study.GapRange{Min: 0, Max: 10},
			easy:      study.GapRange{Min: 25, Max: 60},
		},
		{
			name: "zero minimum below default",
			settings: config.StudyConfig{
				StruggledGapMin: 0, StruggledGapMax: 2,
				EasyGapMin: 0, EasyGapMax: 5,
			},
			struggled: study.GapRange{Min: 0, Max: 2},
			easy:      study.GapRange{Min: 0, Max: 5},
		},
		{
			name:      "all zero",
			settings:  config.StudyConfig{},
			struggled: study.GapRange{},
			easy:      study.GapRange{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ConfigFromSettings(tc.settings)
			require.NoError(t, err)
			require.NotNil(t, cfg.GapPolicy)
			assert.Equal(t, tc.struggled, cfg.GapPolicy.Struggled)
			assert.Equal(t, tc.easy, cfg.GapPolicy.Easy)

			// withDefaults must not replace explicit zero bounds.
			assert.Equal(t, *cfg.GapPolicy, *cfg.withDefaults().GapPolicy)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, study.DefaultRecencyWindow, cfg.RecencyWindow)
	require.NotNil(t, cfg.GapPolicy)
	assert.Equal(t, study.DefaultGapPolicy(), *cfg.GapPolicy)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, DefaultSweepInterval, cfg.SweepInterval)
	assert.Equal(t, DefaultMaxActive, cfg.MaxActive)
	assert.NotNil(t, cfg.Clock)
	assert.NotNil(t, cfg.RandomSource())
}
