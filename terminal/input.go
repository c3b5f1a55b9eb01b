package terminal

// escByte is the escape introducer
const escByte = 0x1b

// decodeState tracks progress through a possible escape sequence
type decodeState uint8

const (
	stateGround decodeState = iota
	stateEsc                // ESC seen
	stateCsi                // ESC [ seen
	stateCsiParam           // ESC [ digit seen
	stateSs3                // ESC O seen
)

// ByteSource yields one input byte per call. ok is false when the read
// timed out with no data pending.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder turns a raw terminal byte stream into Keys. The zero value is
// ready to use. Sequences that match no known shape, and sequences cut
// short by a timeout, decode to the plain ESC byte.
type Decoder struct {
	state decodeState
	seq   [2]byte
}

// Feed advances the decoder by one byte. done reports that a complete key
// was produced.
func (d *Decoder) Feed(b byte) (key Key, done bool) {
	switch d.state {
	case stateGround:
		if b == escByte {
			d.state = stateEsc
			return Key{}, false
		}
		return Key{Byte: b}, true

	case stateEsc:
		switch b {
		case '[':
			d.state = stateCsi
			return Key{}, false
		case 'O':
			d.state = stateSs3
			return Key{}, false
		}
		// Not a sequence introducer; the byte after ESC is consumed
		d.state = stateGround
		return Key{Byte: escByte}, true

	case stateCsi:
		if b >= '0' && b <= '9' {
			d.seq[0] = b
			d.state = stateCsiParam
			return Key{}, false
		}
		d.state = stateGround
		d.seq[0] = b
		if named, ok := lookupCSI(d.seq[:1]); ok {
			return Key{Named: named}, true
		}
		return Key{Byte: escByte}, true

	case stateCsiParam:
		d.state = stateGround
		if b == '~' {
			d.seq[1] = '~'
			if named, ok := lookupCSI(d.seq[:2]); ok {
				return Key{Named: named}, true
			}
		}
		return Key{Byte: escByte}, true

	case stateSs3:
		d.state = stateGround
		d.seq[0] = b
		if named, ok := lookupSS3(d.seq[:1]); ok {
			return Key{Named: named}, true
		}
		return Key{Byte: escByte}, true
	}

	d.state = stateGround
	return Key{}, false
}

// Timeout resolves a pending escape prefix after the input goes silent:
// a lone ESC press is indistinguishable from a sequence start until no
// continuation bytes arrive.
func (d *Decoder) Timeout() (key Key, done bool) {
	if d.state == stateGround {
		return Key{}, false
	}
	d.state = stateGround
	return Key{Byte: escByte}, true
}

// ReadKey blocks until one complete key is decoded from src. Timeouts in
// ground state keep waiting; timeouts mid-sequence resolve to ESC.
func (d *Decoder) ReadKey(src ByteSource) (Key, error) {
	for {
		b, ok, err := src.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			if key, done := d.Timeout(); done {
				return key, nil
			}
			continue
		}
		if key, done := d.Feed(b); done {
			return key, nil
		}
	}
}
