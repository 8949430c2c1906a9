package logger

import (
	"testing"

	"github.com/retail/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{
			name: "console format",
			cfg:  config.LogConfig{Level: "info", Format: "console", Output: "stdout"},
		},
		{
			name: "json format",
			cfg:  config.LogConfig{Level: "info", Format: "json", Output: "stdout"},
		},
		{
			name: "debug level",
			cfg:  config.LogConfig{Level: "debug", Format: "console", Output: "stderr"},
		},
		{
			name: "unknown level falls back to info",
			cfg:  config.LogConfig{Level: "chatty", Format: "console", Output: "stdout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, log)

			log.Info("test message")
		})
	}
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotNil(t, log)
	log.Info("dropped")
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("chatty"))
}
