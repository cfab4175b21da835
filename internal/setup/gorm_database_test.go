package setup

import (
	"log/slog"
	"testing"

	"gorm.io/gorm/logger"
)

func TestGormLogLevel(t *testing.T) {
	type testCase struct {
		Level    slog.Level
		Expected logger.LogLevel
	}

	testCases := []testCase{
		{Level: slog.LevelDebug, Expected: logger.Info},
		{Level: slog.LevelInfo, Expected: logger.Info},
		{Level: slog.LevelWarn, Expected: logger.Warn},
		{Level: slog.LevelError, Expected: logger.Error},
		{Level: slog.LevelError + 4, Expected: logger.Error},
	}

	for _, tc := range testCases {
		t.Run(tc.Level.String(), func(t *testing.T) {
			if e, g := tc.Expected, gormLogLevel(tc.Level); e != g {
				t.Errorf("gormLogLevel(%v): expected '%v', got '%v'", tc.Level, e, g)
			}
		})
	}
}
