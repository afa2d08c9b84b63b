package cfd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
)

func TestGranularityStride(t *testing.T) {
	assert.Equal(t, 24*time.Hour, Daily.Stride())
	assert.Equal(t, 7*24*time.Hour, Weekly.Stride())
	assert.Equal(t, 30*24*time.Hour, Monthly.Stride())
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, Daily, ParseGranularity("daily", logger.Nop{}))
	assert.Equal(t, Weekly, ParseGranularity("weekly", logger.Nop{}))
	assert.Equal(t, Monthly, ParseGranularity("monthly", logger.Nop{}))
}

func TestParseGranularityLenientDefault(t *testing.T) {
	assert.Equal(t, Daily, ParseGranularity("hourly", logger.Nop{}))
	assert.Equal(t, Daily, ParseGranularity("", logger.Nop{}))
	assert.Equal(t, Daily, ParseGranularity("Weekly", logger.Nop{}))
}
