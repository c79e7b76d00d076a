package ppu

// loopy is the 15-bit v/t scroll register shared by PPUSCROLL and
// PPUADDR, named for Loopy's documented bit layout:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy struct {
	data uint16 // only 15 bits used
}

const (
	loopyCoarseXMask = 0x001F
	loopyCoarseYMask = 0x03E0
	loopyNametableX  = 0x0400
	loopyNametableY  = 0x0800
	loopyFineYMask   = 0x7000
	loopyHorizontal  = 0x041F // coarse X + nametable X
	loopyVertical    = 0x7BE0 // fine Y + coarse Y + nametable Y
)

func (l *loopy) coarseX() uint16 { return l.data & loopyCoarseXMask }
func (l *loopy) coarseY() uint16 { return (l.data & loopyCoarseYMask) >> 5 }
func (l *loopy) fineY() uint16   { return (l.data & loopyFineYMask) >> 12 }

func (l *loopy) setCoarseX(n uint16) {
	l.data = (l.data &^ loopyCoarseXMask) | (n & 0x1F)
}

func (l *loopy) setCoarseY(n uint16) {
	l.data = (l.data &^ loopyCoarseYMask) | ((n & 0x1F) << 5)
}

func (l *loopy) setFineY(n uint16) {
	l.data = (l.data &^ loopyFineYMask) | ((n & 0x7) << 12)
}

// incrementCoarseX wraps 31 -> 0 and toggles horizontal nametable
// select on wrap, per the documented dot-8 increment.
func (l *loopy) incrementCoarseX() {
	if l.coarseX() == 31 {
		l.data &^= loopyCoarseXMask
		l.data ^= loopyNametableX
	} else {
		l.data++
	}
}

// incrementFineY rolls fine Y over into coarse Y with the documented
// special wrap at 29 (toggles vertical nametable select) versus the
// raw 31 -> 0 wrap with no toggle (the two unused attribute rows).
func (l *loopy) incrementFineY() {
	if l.fineY() < 7 {
		l.setFineY(l.fineY() + 1)
		return
	}
	l.setFineY(0)
	switch l.coarseY() {
	case 29:
		l.setCoarseY(0)
		l.data ^= loopyNametableY
	case 31:
		l.setCoarseY(0)
	default:
		l.setCoarseY(l.coarseY() + 1)
	}
}

func (l *loopy) copyHorizontalFrom(t loopy) {
	l.data = (l.data &^ loopyHorizontal) | (t.data & loopyHorizontal)
}

func (l *loopy) copyVerticalFrom(t loopy) {
	l.data = (l.data &^ loopyVertical) | (t.data & loopyVertical)
}
