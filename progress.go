package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// glogLogger forwards raytracer progress to the verbose glog stream
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.V(1).Infof(strings.TrimSuffix(format, "\n"), args...)
}

// terminalLogger redraws a single status line in place
type terminalLogger struct {
	w io.Writer
}

func (l terminalLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "\r%s ", strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
	glogLogger{}.Printf(format, args...)
}

// newProgressLogger draws a status line when f is a terminal and otherwise
// leaves progress to glog
func newProgressLogger(f *os.File) core.Logger {
	if term.IsTerminal(int(f.Fd())) {
		return terminalLogger{w: f}
	}
	return glogLogger{}
}
