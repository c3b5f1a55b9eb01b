// Package editor implements the screen-sized file viewer: the row
// store, frame rendering, and the keystroke-to-cursor-motion loop.
package editor

import (
	"log"

	"github.com/lixenwraith/kilo/terminal"
)

// Editor holds the viewer state for one session. Screen dimensions are
// discovered once at startup and stay fixed for the life of the
// process; the cursor is confined to that viewport.
type Editor struct {
	term *terminal.Terminal

	screenRows int
	screenCols int

	// Cursor position in screen space, zero-based
	cursorX int
	cursorY int

	rows    []Row
	frame   *terminal.FrameBuffer
	decoder terminal.Decoder
}

// New discovers the terminal dimensions and returns a ready editor.
func New(term *terminal.Terminal) (*Editor, error) {
	rows, cols, err := term.Size()
	if err != nil {
		return nil, err
	}
	log.Printf("Screen size %dx%d", cols, rows)
	return &Editor{
		term:       term,
		screenRows: rows,
		screenCols: cols,
		frame:      terminal.NewFrameBuffer(frameCapacity(rows, cols)),
	}, nil
}

// Run paints a frame and consumes one keystroke per iteration until
// the quit key arrives or the terminal fails. On quit the screen is
// cleared so the shell prompt returns to a blank terminal.
func (e *Editor) Run() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return err
		}
		key, err := e.decoder.ReadKey(e.term)
		if err != nil {
			return err
		}
		if !e.processKey(key) {
			return e.term.Clear()
		}
	}
}

// processKey applies one decoded key to the editor state and reports
// whether the session continues.
func (e *Editor) processKey(key terminal.Key) bool {
	if !key.IsNamed() {
		if key.Byte == terminal.Ctrl('q') {
			return false
		}
		return true
	}

	switch key.Named {
	case terminal.KeyHome:
		e.cursorX = 0
	case terminal.KeyEnd:
		e.cursorX = e.screenCols - 1
	case terminal.KeyPageUp, terminal.KeyPageDown:
		// A page is a full screen of single-row steps, so the edge
		// clamp in moveCursor stays the only bounds authority
		move := terminal.KeyArrowUp
		if key.Named == terminal.KeyPageDown {
			move = terminal.KeyArrowDown
		}
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(move)
		}
	case terminal.KeyArrowUp, terminal.KeyArrowDown, terminal.KeyArrowLeft, terminal.KeyArrowRight:
		e.moveCursor(key.Named)
	}
	return true
}

// moveCursor shifts the cursor one cell, clamped to the viewport.
func (e *Editor) moveCursor(key terminal.NamedKey) {
	switch key {
	case terminal.KeyArrowLeft:
		if e.cursorX > 0 {
			e.cursorX--
		}
	case terminal.KeyArrowRight:
		if e.cursorX < e.screenCols-1 {
			e.cursorX++
		}
	case terminal.KeyArrowUp:
		if e.cursorY > 0 {
			e.cursorY--
		}
	case terminal.KeyArrowDown:
		if e.cursorY < e.screenRows-1 {
			e.cursorY++
		}
	}
}
