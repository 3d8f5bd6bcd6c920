// Package debug builds the zerolog loggers used by the command line tools.
package debug

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/gotsg/pkg/funcname"
)

var skippedPackages = map[string]bool{
	"github.com/rs/zerolog":             true,
	"github.com/walteh/gotsg/pkg/debug": true,
}

// caller returns the first frame outside of zerolog and this package.
func caller() (runtime.Frame, bool) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !skippedPackages[funcname.Parse(f.Function).Package] {
			return f, true
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}

type CustomTimeHook struct {
	Format string
}

func (t CustomTimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if t.Format == "" {
		// millisecond precision with no timezone
		e.Str("time", time.Now().Format("2006-01-02T15:04:05.0000Z"))
	} else {
		e.Str("time", time.Now().Format(t.Format))
	}
}

type CustomCallerHook struct {
	WithColor bool
}

func (c CustomCallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	f, ok := caller()
	if !ok {
		return
	}

	e.Str("caller", FormatCaller(funcname.Parse(f.Function).Package, f.File, f.Line, c.WithColor))
}

func FormatCaller(pkg, path string, number int, colorize bool) string {
	p := funcname.FileNameOfPath(path)
	if colorize {
		p = color.New(color.Bold).Sprint(p)
		num := color.New(color.FgHiRed, color.Bold).Sprintf("%d", number)
		sep := color.New(color.Faint).Sprint(":")

		return fmt.Sprintf("%s%s%s%s%s", pkg, sep, p, sep, num)
	}

	return fmt.Sprintf("%s:%s:%d", pkg, p, number)
}

// NewConsoleLogger writes human readable logs at level to w.
func NewConsoleLogger(w io.Writer, level zerolog.Level, colorize bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !colorize,
	}

	return zerolog.New(out).
		Level(level).
		Hook(CustomTimeHook{}).
		Hook(CustomCallerHook{WithColor: colorize})
}
