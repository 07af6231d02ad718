package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"itw/internal/theme"
)

const fileTimeFormat = "2006-01-02_15-04-05.000"

// fileSink appends records to one file per launcher run. The file is
// created on first write; each record is written with its own
// open-for-append so concurrent launchers never interleave partial lines.
type fileSink struct {
	dir    string
	stderr io.Writer

	once sync.Once
	path string
	err  error
}

func newFileSink(dir string, stderr io.Writer) *fileSink {
	return &fileSink{dir: dir, stderr: stderr}
}

func (f *fileSink) init() {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		f.err = err
	} else {
		f.path = filepath.Join(f.dir, "itw-launcher-"+time.Now().Format(fileTimeFormat)+".log")
		fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			f.err = err
		} else {
			f.err = fh.Close()
		}
	}
	if f.err != nil {
		_, _ = fmt.Fprintln(f.stderr, theme.WarningMessage("log file disabled: "+f.err.Error()))
	}
}

func (f *fileSink) write(level log.Level, msg string, keyvals []any) {
	f.once.Do(f.init)
	if f.err != nil {
		return
	}
	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer fh.Close()

	l := log.NewWithOptions(fh, log.Options{
		Level:           log.DebugLevel,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	l.Log(level, msg, keyvals...)
}

// Path returns the log file of this run, or "" before the first write.
func (f *fileSink) Path() string {
	return f.path
}
