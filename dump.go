package recipescaler

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

// Dump writes v to stderr, prefixed with the caller's file and line.
func Dump(v ...any) {
	dump(os.Stderr, 2, v...)
}

// Fdump is Dump to an arbitrary writer.
func Fdump(w io.Writer, v ...any) {
	dump(w, 2, v...)
}

func dump(w io.Writer, skip int, v ...any) {
	_, file, line, _ := runtime.Caller(skip)
	args := append([]any{fmt.Sprintf("%s:%d:", file, line)}, v...)
	spew.Fdump(w, args...)
}
