package editor

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/kilo/terminal"
)

// Row is one line of the loaded file without its trailing newline
// bytes. Rows are never mutated after insertion.
type Row struct {
	bytes []byte
}

// Len returns the stored byte count.
func (r Row) Len() int { return len(r.bytes) }

// AppendRow copies line into a new row at the end of the store.
func (e *Editor) AppendRow(line []byte) {
	row := Row{bytes: make([]byte, len(line))}
	copy(row.bytes, line)
	e.rows = append(e.rows, row)
}

// NumRows returns the number of loaded rows.
func (e *Editor) NumRows() int { return len(e.rows) }

// OpenFile reads path line by line into the row store. Trailing LF and
// CR bytes are stripped in any combination before a row is stored, so
// Unix and DOS line endings load identically.
func (e *Editor) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &terminal.OpError{Op: "fopen", Err: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return &terminal.OpError{Op: "fread", Err: err}
		}
		eof := errors.Is(err, io.EOF)
		if eof && len(line) == 0 {
			break
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.AppendRow(line)
		if eof {
			break
		}
	}

	log.Printf("Loaded %d row(s) from %s", len(e.rows), path)
	return nil
}
