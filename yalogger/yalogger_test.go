package yalogger_test

import (
	"testing"

	"github.com/YaCodeDev/GoYaStateUtils/yalogger"
	"github.com/google/uuid"
)

func TestLevel_StringRoundTrip(t *testing.T) {
	levels := []yalogger.Level{
		yalogger.PanicLevel,
		yalogger.FatalLevel,
		yalogger.ErrorLevel,
		yalogger.WarnLevel,
		yalogger.InfoLevel,
		yalogger.DebugLevel,
		yalogger.TraceLevel,
	}

	for _, level := range levels {
		var parsed yalogger.Level

		if err := parsed.Unmarshal(level.String()); err != nil {
			t.Fatalf("Unmarshal failed for %q: %v", level.String(), err)
		}

		if parsed != level {
			t.Fatalf("round trip mismatch: want %v, got %v", level, parsed)
		}
	}
}

func TestLevel_UnmarshalInvalid(t *testing.T) {
	var level yalogger.Level

	if err := level.Unmarshal("loud"); err != yalogger.ErrInvalidLogLevel {
		t.Fatalf("expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestLogger_Fields(t *testing.T) {
	log := yalogger.NewBaseLogger(nil).NewLogger()

	withFields := log.WithFields(map[string]any{"schedule": "update", "system": "spawn"})

	if got := withFields.GetField("schedule"); got != "update" {
		t.Fatalf("GetField returned %v, want update", got)
	}

	if fields := withFields.GetFields(); len(fields) != 2 {
		t.Fatalf("GetFields returned %d fields, want 2", len(fields))
	}

	if fields := log.GetFields(); len(fields) != 0 {
		t.Fatalf("parent logger gained fields: %+v", fields)
	}
}

func TestLogger_RequestID(t *testing.T) {
	log := yalogger.NewBaseLogger(nil).NewLogger()

	id := uuid.New()

	withID := log.WithRequestUUID(id)
	if got := withID.GetField(yalogger.KeyRequestID); got != id.String() {
		t.Fatalf("request id field is %v, want %s", got, id)
	}

	random := log.WithRandomRequestID()
	if random.GetField(yalogger.KeyRequestID) == nil {
		t.Fatalf("random request id was not set")
	}
}
