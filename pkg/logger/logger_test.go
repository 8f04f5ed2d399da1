package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithLevel(t *testing.T) {
	testCases := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "warn", level: "warn"},
		{name: "garbage", level: "loud", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewWithLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestNewWarnHidesInfo(t *testing.T) {
	log, err := NewWithLevel("warn")
	require.NoError(t, err)
	assert.Nil(t, log.Check(zap.InfoLevel, "hidden"))
	assert.NotNil(t, log.Check(zap.ErrorLevel, "shown"))
}
