// @focus: #sys { io } #input { keys }
package terminal

import "fmt"

// NamedKey identifies keys that arrive as escape sequences rather than
// single bytes
type NamedKey uint8

const (
	KeyNone NamedKey = iota

	// Navigation
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// Key is one decoded input token: a named key when Named is set, otherwise
// the raw byte in Byte. Escape sequences that match no known shape decode
// to the plain ESC byte.
type Key struct {
	Named NamedKey
	Byte  byte
}

// IsNamed reports whether the key is a semantic token rather than a byte
func (k Key) IsNamed() bool {
	return k.Named != KeyNone
}

func (k Key) String() string {
	switch k.Named {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyDelete:
		return "Delete"
	}
	if k.Byte >= 0x20 && k.Byte < 0x7f {
		return fmt.Sprintf("%q", k.Byte)
	}
	return fmt.Sprintf("0x%02x", k.Byte)
}

// Ctrl returns the control byte for a letter (Ctrl('q') = 0x11)
func Ctrl(b byte) byte {
	return b & 0x1f
}

// escapeSequence maps the byte suffix after ESC [ or ESC O to a key
type escapeSequence struct {
	seq string
	key NamedKey
}

// Known CSI sequences (ESC [ ...). Terminals disagree on Home/End: some
// emit the letter form, others the digit-tilde form, so both are listed.
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", KeyArrowUp},
	{"B", KeyArrowDown},
	{"C", KeyArrowRight},
	{"D", KeyArrowLeft},

	// Navigation
	{"H", KeyHome},
	{"F", KeyEnd},
	{"1~", KeyHome},
	{"3~", KeyDelete},
	{"4~", KeyEnd},
	{"5~", KeyPageUp},
	{"6~", KeyPageDown},
	{"7~", KeyHome},
	{"8~", KeyEnd},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"H", KeyHome},
	{"F", KeyEnd},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]escapeSequence {
	m := make(map[string]escapeSequence, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (NamedKey, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, true
	}
	return KeyNone, false
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (NamedKey, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return s.key, true
	}
	return KeyNone, false
}
