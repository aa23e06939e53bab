package cpu

// Keypad is the read-only view of the 16 key hex keypad.
type Keypad interface {
	Pressed(key uint8) bool
}

// Keys is a snapshot of the keypad, index 0x0-0xF.
type Keys [16]bool

func (k Keys) Pressed(key uint8) bool {
	if int(key) >= len(k) {
		return false
	}
	return k[key]
}

//first returns the lowest pressed key
func (k Keys) first() (uint8, bool) {
	for i, down := range k {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}
