package render

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown output format")

// NewError wraps err with the format being rendered and the caller's frame.
func NewError(format Format, err error) error {
	if err == nil {
		return nil
	}
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("render %s: %w", format, err)
	}
	frame := newStackFrame(pc)
	return fmt.Errorf("render %s: %w on %s", format, err, frame.String())
}

// CheckError converts a panic raised while rendering into *err.
func CheckError(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("render panic: %+v", v)
	}
}

type stackFrame struct {
	function string
	file     string
	line     int
}

func newStackFrame(pc uintptr) stackFrame {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	return stackFrame{
		function: frame.Function,
		file:     frame.File,
		line:     frame.Line,
	}
}

func (f stackFrame) String() string {
	fn := f.function
	if idx := strings.LastIndexByte(fn, '/'); idx >= 0 {
		fn = fn[idx+1:]
	}
	return fmt.Sprintf("%s (%s:%d)", fn, f.file, f.line)
}
