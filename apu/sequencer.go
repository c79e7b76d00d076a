package apu

// Frame sequencer cycle counts, in CPU cycles since the last write to
// $4017 or power-on reset. Both modes share the first three steps;
// four-step mode asserts the frame IRQ on its last step, while
// five-step mode leaves its fourth step silent and clocks the quarter
// and half frame on a fifth step before wrapping.
var fourStepCycles = [4]int{7457, 14913, 22371, 29829}
var fiveStepCycles = [5]int{7457, 14913, 22371, 29829, 37281}

// frameSequencer is the APU's $4017 clock divider: it doesn't
// generate audio itself, only the quarter-frame (envelope/linear) and
// half-frame (length/sweep) clock edges the channels consume, plus
// the frame-IRQ level in four-step mode.
type frameSequencer struct {
	fiveStep   bool
	irqInhibit bool
	cycle      int
	irqFlag    bool
}

func (f *frameSequencer) write(val uint8) (immediateQuarter, immediateHalf bool) {
	f.fiveStep = val&0x80 != 0
	f.irqInhibit = val&0x40 != 0
	f.cycle = 0
	if f.irqInhibit {
		f.irqFlag = false
	}
	return f.fiveStep, f.fiveStep
}

// tick advances one CPU cycle and reports which clock edges fire.
func (f *frameSequencer) tick() (quarter, half, irq bool) {
	f.cycle++
	if f.fiveStep {
		switch f.cycle {
		case fiveStepCycles[0], fiveStepCycles[2]:
			quarter = true
		case fiveStepCycles[1]:
			quarter, half = true, true
		case fiveStepCycles[4]:
			quarter, half = true, true
			f.cycle = 0
		}
		return
	}
	switch f.cycle {
	case fourStepCycles[0], fourStepCycles[2]:
		quarter = true
	case fourStepCycles[1]:
		quarter, half = true, true
	case fourStepCycles[3]:
		quarter, half = true, true
		if !f.irqInhibit {
			f.irqFlag = true
			irq = true
		}
		f.cycle = 0
	}
	return
}
