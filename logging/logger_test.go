package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dlshle/timeit/timer"
)

type captureWriter struct {
	entities []*LogEntity
}

func (w *captureWriter) Write(entity *LogEntity) {
	w.entities = append(w.entities, entity)
}

func TestLoggerWaterMarkFiltering(t *testing.T) {
	writer := &captureWriter{}
	l := CreateLevelLogger(writer, "test", WARN)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept")

	if len(writer.entities) != 2 {
		t.Fatalf("Expected 2 records above the watermark, got %d", len(writer.entities))
	}
	if writer.entities[0].Level != WARN || writer.entities[1].Level != ERROR {
		t.Errorf("Expected WARN then ERROR, got %d then %d",
			writer.entities[0].Level, writer.entities[1].Level)
	}
}

func TestLoggerEntityFields(t *testing.T) {
	writer := &captureWriter{}
	l := CreateLevelLogger(writer, "bench", LogAllWaterMark)

	l.Infof("ran %d loops", 10)

	if len(writer.entities) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(writer.entities))
	}
	entity := writer.entities[0]
	if entity.Message != "ran 10 loops" {
		t.Errorf("Expected formatted message, got %q", entity.Message)
	}
	if entity.Prefix != "bench" {
		t.Errorf("Expected prefix 'bench', got %q", entity.Prefix)
	}
	if entity.GoroutineID <= 0 {
		t.Errorf("Expected a positive goroutine id, got %d", entity.GoroutineID)
	}
	if entity.Timestamp.IsZero() {
		t.Error("Expected a non-zero timestamp")
	}
}

func TestLoggerWithPrefix(t *testing.T) {
	writer := &captureWriter{}
	l := CreateLevelLogger(writer, "parent", LogAllWaterMark)

	l.WithPrefix("child").Info("hello")
	l.Info("hello")

	if writer.entities[0].Prefix != "child" {
		t.Errorf("Expected child prefix, got %q", writer.entities[0].Prefix)
	}
	if writer.entities[1].Prefix != "parent" {
		t.Errorf("Expected parent prefix untouched, got %q", writer.entities[1].Prefix)
	}
}

func TestConsoleWriterFormat(t *testing.T) {
	var out bytes.Buffer
	writer := NewConsoleWriter(&out)

	writer.Write(&LogEntity{
		Level:       INFO,
		Prefix:      "timer",
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		GoroutineID: 7,
		Message:     "Executed in: 1.5 msec",
	})

	line := out.String()
	if !strings.HasPrefix(line, "2024-05-01T12:00:00Z [") {
		t.Errorf("Expected RFC3339 timestamp prefix, got %q", line)
	}
	if !strings.Contains(line, "INFO") {
		t.Errorf("Expected level name in output, got %q", line)
	}
	if !strings.Contains(line, "timer (gr-7) Executed in: 1.5 msec") {
		t.Errorf("Expected prefix, goroutine id and message, got %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("Expected newline-terminated line, got %q", line)
	}
}

func TestSinkRoutesTimerReports(t *testing.T) {
	writer := &captureWriter{}
	l := CreateLevelLogger(writer, "perf", LogAllWaterMark)

	err := timer.Time(func() error {
		return nil
	}, timer.WithLabel("query"), timer.WithSink(Sink(l, DEBUG)))

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(writer.entities) != 1 {
		t.Fatalf("Expected exactly one report record, got %d", len(writer.entities))
	}
	if writer.entities[0].Level != DEBUG {
		t.Errorf("Expected DEBUG record, got level %d", writer.entities[0].Level)
	}
	if !strings.Contains(writer.entities[0].Message, "Executed 'query' in: ") {
		t.Errorf("Expected timing report message, got %q", writer.entities[0].Message)
	}
}
