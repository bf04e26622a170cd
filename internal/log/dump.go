package log

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// DumpLogger records intermediate artifacts, such as generated source
// before formatting, so a failing generator run can be inspected.
type DumpLogger interface {
	Dump(stage string, data []byte)
}

// dumpLogger implements DumpLogger with thread-safe output.
type dumpLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewDump creates a new DumpLogger. If w is nil, dumps are discarded.
func NewDump(w io.Writer) DumpLogger {
	return &dumpLogger{w: w}
}

// Dump emits a header line with timestamp, stage and size followed by data
// with line numbers, matching the line:col positions gofmt errors report.
func (d *dumpLogger) Dump(stage string, data []byte) {
	if d.w == nil {
		return
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s: %d bytes\n",
		time.Now().Format("2006/01/02 15:04:05"),
		stage,
		len(data))

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for line := 1; sc.Scan(); line++ {
		fmt.Fprintf(&buf, "%5d  %s\n", line, sc.Bytes())
	}

	d.mu.Lock()
	_, _ = d.w.Write(buf.Bytes())
	d.mu.Unlock()
}
