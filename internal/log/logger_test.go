package log

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level Level
		want  zerolog.Level
	}{
		{LevelTrace, zerolog.TraceLevel},
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{LevelFatal, zerolog.FatalLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			l, err := NewLogger(&Config{Level: tt.level, Format: FormatJSON})
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if l.GetLevel() != tt.want {
				t.Errorf("GetLevel() = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(&Config{Level: "verbose", Format: FormatConsole}); err == nil {
		t.Error("unknown level accepted")
	}
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	l, err := NewLogger(&Config{Level: LevelInfo, Format: FormatConsole})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if l.GetLevel() != zerolog.InfoLevel {
		t.Errorf("GetLevel() = %v, want info", l.GetLevel())
	}
}
