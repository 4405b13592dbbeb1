package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/petermattis/goid"

	"github.com/dlshle/timeit/timer"
)

const (
	DEBUG = iota
	INFO
	WARN
	ERROR
)

// LogAllWaterMark lets every level through.
const LogAllWaterMark = -1

var levelPrefixMap = map[int]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

type Logger interface {
	Debug(records ...string)
	Info(records ...string)
	Warn(records ...string)
	Error(records ...string)

	Debugf(format string, records ...interface{})
	Infof(format string, records ...interface{})
	Warnf(format string, records ...interface{})
	Errorf(format string, records ...interface{})

	Writer(writer LogWriter)
	WithPrefix(prefix string) Logger
}

// LogEntity is one record handed to a LogWriter. The goroutine id is
// captured at log time so timing reports from concurrent code paths can be
// told apart.
type LogEntity struct {
	Level       int
	Prefix      string
	Timestamp   time.Time
	GoroutineID int64
	Message     string
}

type levelLogger struct {
	writer    LogWriter
	prefix    string
	waterMark int
}

// StdOutLevelLogger builds a logger that writes every level to stdout.
func StdOutLevelLogger(prefix string) Logger {
	return CreateLevelLogger(NewConsoleWriter(os.Stdout), prefix, LogAllWaterMark)
}

func CreateLevelLogger(writer LogWriter, prefix string, waterMark int) Logger {
	return &levelLogger{
		writer:    writer,
		prefix:    prefix,
		waterMark: waterMark,
	}
}

func (l *levelLogger) output(level int, message string) {
	if level < l.waterMark {
		return
	}
	l.writer.Write(&LogEntity{
		Level:       level,
		Prefix:      l.prefix,
		Timestamp:   time.Now(),
		GoroutineID: goid.Get(),
		Message:     message,
	})
}

func (l *levelLogger) Debug(records ...string) {
	l.output(DEBUG, strings.Join(records, ""))
}

func (l *levelLogger) Info(records ...string) {
	l.output(INFO, strings.Join(records, ""))
}

func (l *levelLogger) Warn(records ...string) {
	l.output(WARN, strings.Join(records, ""))
}

func (l *levelLogger) Error(records ...string) {
	l.output(ERROR, strings.Join(records, ""))
}

func (l *levelLogger) Debugf(format string, records ...interface{}) {
	l.output(DEBUG, fmt.Sprintf(format, records...))
}

func (l *levelLogger) Infof(format string, records ...interface{}) {
	l.output(INFO, fmt.Sprintf(format, records...))
}

func (l *levelLogger) Warnf(format string, records ...interface{}) {
	l.output(WARN, fmt.Sprintf(format, records...))
}

func (l *levelLogger) Errorf(format string, records ...interface{}) {
	l.output(ERROR, fmt.Sprintf(format, records...))
}

func (l *levelLogger) Writer(writer LogWriter) {
	l.writer = writer
}

func (l *levelLogger) WithPrefix(prefix string) Logger {
	return &levelLogger{
		writer:    l.writer,
		prefix:    prefix,
		waterMark: l.waterMark,
	}
}

// Sink adapts a logger into a timer report sink at the given level, so
// timing reports flow through the logging stack like any other record.
func Sink(l Logger, level int) timer.Sink {
	return func(message string) {
		switch level {
		case DEBUG:
			l.Debug(message)
		case WARN:
			l.Warn(message)
		case ERROR:
			l.Error(message)
		default:
			l.Info(message)
		}
	}
}
