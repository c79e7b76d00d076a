package apu

// lengthTable maps a 5-bit register field to a starting length-counter
// value, the fixed table every pulse/triangle/noise channel shares.
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// lengthCounter silences a channel once it reaches zero. While the
// channel's halt flag (doubling as the envelope/linear loop flag) is
// set, the counter does not count down.
type lengthCounter struct {
	halt    bool
	value   uint8
	enabled bool
}

func (l *lengthCounter) setEnabled(v bool) {
	l.enabled = v
	if !v {
		l.value = 0
	}
}

func (l *lengthCounter) load(index uint8) {
	if l.enabled {
		l.value = lengthTable[index&0x1F]
	}
}

func (l *lengthCounter) clockHalfFrame() {
	if !l.halt && l.value > 0 {
		l.value--
	}
}

func (l *lengthCounter) isZero() bool { return l.value == 0 }
