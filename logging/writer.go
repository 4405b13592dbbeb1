package logging

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
)

type LogWriter interface {
	Write(entity *LogEntity)
}

type consoleWriter struct {
	out         io.Writer
	levelColors map[int]*color.Color
}

// NewConsoleWriter writes human-readable lines with the level colored per
// severity.
func NewConsoleWriter(out io.Writer) LogWriter {
	return &consoleWriter{
		out: out,
		levelColors: map[int]*color.Color{
			DEBUG: color.New(color.FgCyan),
			INFO:  color.New(color.FgGreen),
			WARN:  color.New(color.FgYellow),
			ERROR: color.New(color.FgRed),
		},
	}
}

func (w *consoleWriter) Write(entity *LogEntity) {
	var builder bytes.Buffer
	builder.WriteString(entity.Timestamp.Format(time.RFC3339))
	builder.WriteRune(' ')
	builder.WriteRune('[')
	builder.WriteString(w.levelColors[entity.Level].Sprint(levelPrefixMap[entity.Level]))
	builder.WriteRune(']')
	builder.WriteRune(' ')
	if entity.Prefix != "" {
		builder.WriteString(entity.Prefix)
		builder.WriteRune(' ')
	}
	builder.WriteString("(gr-")
	builder.WriteString(strconv.FormatInt(entity.GoroutineID, 10))
	builder.WriteString(") ")
	builder.WriteString(entity.Message)
	builder.WriteRune('\n')
	w.out.Write(builder.Bytes())
}

type NoopWriter struct{}

func NewNoopWriter() NoopWriter {
	return NoopWriter{}
}

func (w NoopWriter) Write(entity *LogEntity) {}
