package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const (
	White = iota
	Black = iota + 30
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	Grey
)

// Level is the minimum severity a Logger will write.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelOff
)

var colors = map[int]string{
	White:  "\033[0m",
	Black:  "\033[30m",
	Red:    "\033[31m",
	Green:  "\033[32m",
	Yellow: "\033[33m",
	Blue:   "\033[34m",
	Purple: "\033[35m",
	Cyan:   "\033[36m",
	Grey:   "\033[37m",
}

type tag struct {
	color string
	name  string
}

var tags = map[Level]tag{
	LevelTrace: {colors[Grey], "TRCE"},
	LevelDebug: {colors[Grey], "DBUG"},
	LevelInfo:  {colors[Blue], "INFO"},
	LevelWarn:  {colors[Yellow], "WARN"},
	LevelError: {colors[Red], "EROR"},
	LevelFatal: {colors[Red], "FATL"},
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "Level=Trace"
	case LevelDebug:
		return "Level=Debug"
	case LevelInfo:
		return "Level=Info"
	case LevelWarn:
		return "Level=Warn"
	case LevelError:
		return "Level=Error"
	case LevelFatal:
		return "Level=Fatal"
	case LevelOff:
		return "Level=Off"
	default:
		return "Level=Unknown"
	}
}

// DefaultLogger writes warnings and above to stderr.
var DefaultLogger = NewLogger(LevelWarn)

type Logger struct {
	lock      sync.Mutex
	log       *log.Logger
	buf       *bytes.Buffer
	level     Level
	color     bool
	printFunc bool
	printFile bool
	dep       int // call depth
}

func NewLogger(level Level) *Logger {
	return &Logger{
		log:   log.New(os.Stderr, "", log.LstdFlags),
		buf:   new(bytes.Buffer),
		level: level,
		color: true,
		dep:   4,
	}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	l := NewLogger(LevelOff)
	l.log.SetOutput(io.Discard)
	return l
}

func (l *Logger) logInternal(level Level, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.level == LevelOff || level < l.level {
		return
	}
	t := tags[level]
	l.buf.Reset()
	l.buf.WriteString("| ")
	if l.color {
		l.buf.WriteString(t.color)
	}
	l.buf.WriteString(t.name)
	if l.color {
		l.buf.WriteString(colors[White])
	}
	l.buf.WriteString(" | ")
	if l.printFunc || l.printFile {
		fn, file := trace(l.dep)
		if l.printFunc {
			l.buf.WriteByte('[')
			l.buf.WriteString(fn)
			l.buf.WriteByte(']')
		}
		if l.printFunc && l.printFile {
			l.buf.WriteByte(' ')
		}
		if l.printFile {
			l.buf.WriteString(file)
		}
		l.buf.WriteString(" - ")
	}
	if len(args) == 0 {
		l.buf.WriteString(format)
	} else {
		fmt.Fprintf(l.buf, format, args...)
	}
	l.log.Print(l.buf.String())
}

func (l *Logger) SetLevel(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.level = level
}

func (l *Logger) Level() Level {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.level
}

// SetOutput redirects the logger. Color codes are dropped for anything
// other than stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetOutput(w)
	l.color = w == os.Stderr
}

func (l *Logger) SetPrefix(prefix string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetPrefix(prefix)
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) Trace(message string) {
	l.logInternal(LevelTrace, message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(LevelDebug, message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(LevelInfo, message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(LevelWarn, message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(LevelError, message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(LevelFatal, message)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, format, args...)
	os.Exit(1)
}

// ParseLevel maps a name such as "debug" or "warn" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "off", "none":
		return LevelOff, nil
	}
	return LevelOff, fmt.Errorf("logger: unknown level %q", s)
}

func trace(calldepth int) (string, string) {
	pc := make([]uintptr, 1)
	n := runtime.Callers(calldepth, pc)
	if n == 0 {
		return "?", "?:0"
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	return filepath.Base(frame.Function), fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
