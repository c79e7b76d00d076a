package apu

// dutyTable holds the four 8-step pulse waveforms selected by each
// channel's duty-cycle register field.
var dutyTable = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

// pulseChannel is one of the APU's two square-wave generators,
// register-compatible with $4000-$4003/$4004-$4007.
type pulseChannel struct {
	enabled bool

	duty    uint8
	dutyPos uint8

	timerPeriod  uint16
	timerCounter uint16

	envelope envelope
	length   lengthCounter
	sweep    sweep
}

func newPulseChannel(onPulse2 bool) *pulseChannel {
	p := &pulseChannel{}
	p.sweep.onPulse2 = onPulse2
	return p
}

func (p *pulseChannel) writeReg0(val uint8) {
	p.duty = val >> 6
	p.length.halt = val&0x20 != 0
	p.envelope.write(val)
}

func (p *pulseChannel) writeReg1(val uint8) { p.sweep.write(val) }

func (p *pulseChannel) writeReg2(val uint8) {
	p.timerPeriod = (p.timerPeriod &^ 0x00FF) | uint16(val)
}

func (p *pulseChannel) writeReg3(val uint8) {
	p.timerPeriod = (p.timerPeriod & 0x00FF) | (uint16(val&0x07) << 8)
	p.length.load(val >> 3)
	p.envelope.restart()
	p.dutyPos = 0
}

func (p *pulseChannel) setEnabled(v bool) {
	p.enabled = v
	p.length.setEnabled(v)
}

// tickTimer runs at the APU (half-CPU) clock rate.
func (p *pulseChannel) tickTimer() {
	if p.timerCounter == 0 {
		p.timerCounter = p.timerPeriod
		p.dutyPos = (p.dutyPos + 1) % 8
	} else {
		p.timerCounter--
	}
}

func (p *pulseChannel) clockQuarterFrame() { p.envelope.clockQuarterFrame() }

func (p *pulseChannel) clockHalfFrame() {
	p.length.clockHalfFrame()
	p.sweep.clockHalfFrame(&p.timerPeriod)
}

func (p *pulseChannel) output() uint8 {
	if !p.enabled || p.length.isZero() || p.sweep.muted(p.timerPeriod) {
		return 0
	}
	if dutyTable[p.duty][p.dutyPos] == 0 {
		return 0
	}
	return p.envelope.volume()
}
