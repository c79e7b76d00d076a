// Package apu implements the Ricoh 2A03's audio processing unit: two
// pulse channels, a triangle channel, a noise channel, a delta-
// modulation (DMC) sample player, the shared frame sequencer that
// clocks their envelopes/sweeps/length counters, and the linear
// mixer that combines them into a PCM sample stream.
package apu

import "sync"

const sampleBufferCapacity = 4096

// register offsets relative to $4000, the base of the APU's register
// window on the CPU bus.
const (
	regPulse1Ctrl uint8 = iota
	regPulse1Sweep
	regPulse1TimerLo
	regPulse1TimerHi

	regPulse2Ctrl
	regPulse2Sweep
	regPulse2TimerLo
	regPulse2TimerHi

	regTriangleCtrl
	regTriangleUnused
	regTriangleTimerLo
	regTriangleTimerHi

	regNoiseCtrl
	regNoiseUnused
	regNoisePeriod
	regNoiseLength

	regDMCCtrl
	regDMCLevel
	regDMCSampleAddr
	regDMCSampleLength
)

// RegStatus and RegFrameCounter sit outside the contiguous $4000-
// $4013 block, at $4015 and $4017.
const (
	RegStatus       = 0x15
	RegFrameCounter = 0x17
)

// Bus is the APU's view of CPU address space, needed only to fetch
// DMC sample bytes.
type Bus interface {
	Read(addr uint16) uint8
}

// APU is the complete 5-channel audio pipeline.
type APU struct {
	bus Bus

	pulse1   *pulseChannel
	pulse2   *pulseChannel
	triangle triangleChannel
	noise    *noiseChannel
	dmc      *dmcChannel

	seq frameSequencer

	cycles uint64

	cyclesPerSample float64
	sampleAccum     float64

	ring     *ringBuffer
	sampleCh chan int16
	notify   chan struct{}
	pumpOnce sync.Once
}

// New constructs an APU wired to bus, producing samples at
// sampleRate Hz from the fixed NTSC CPU clock of 1789773 Hz.
func New(bus Bus, sampleRate int) *APU {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	a := &APU{
		bus:             bus,
		pulse1:          newPulseChannel(false),
		pulse2:          newPulseChannel(true),
		noise:           newNoiseChannel(),
		dmc:             newDMCChannel(),
		cyclesPerSample: 1789773.0 / float64(sampleRate),
		ring:            newRingBuffer(sampleBufferCapacity),
	}
	return a
}

// WriteRegister services a CPU write to $4000+reg, reg in [0x00,0x17].
func (a *APU) WriteRegister(reg uint8, val uint8) {
	switch reg {
	case regPulse1Ctrl:
		a.pulse1.writeReg0(val)
	case regPulse1Sweep:
		a.pulse1.writeReg1(val)
	case regPulse1TimerLo:
		a.pulse1.writeReg2(val)
	case regPulse1TimerHi:
		a.pulse1.writeReg3(val)

	case regPulse2Ctrl:
		a.pulse2.writeReg0(val)
	case regPulse2Sweep:
		a.pulse2.writeReg1(val)
	case regPulse2TimerLo:
		a.pulse2.writeReg2(val)
	case regPulse2TimerHi:
		a.pulse2.writeReg3(val)

	case regTriangleCtrl:
		a.triangle.writeReg0(val)
	case regTriangleTimerLo:
		a.triangle.writeReg2(val)
	case regTriangleTimerHi:
		a.triangle.writeReg3(val)

	case regNoiseCtrl:
		a.noise.writeReg0(val)
	case regNoisePeriod:
		a.noise.writeReg2(val)
	case regNoiseLength:
		a.noise.writeReg3(val)

	case regDMCCtrl:
		a.dmc.writeReg0(val)
	case regDMCLevel:
		a.dmc.writeReg1(val)
	case regDMCSampleAddr:
		a.dmc.writeReg2(val)
	case regDMCSampleLength:
		a.dmc.writeReg3(val)

	case RegStatus:
		a.pulse1.setEnabled(val&0x01 != 0)
		a.pulse2.setEnabled(val&0x02 != 0)
		a.triangle.setEnabled(val&0x04 != 0)
		a.noise.setEnabled(val&0x08 != 0)
		a.dmc.setEnabled(val&0x10 != 0)
		a.dmc.irqFlag = false

	case RegFrameCounter:
		immQuarter, immHalf := a.seq.write(val)
		if immQuarter {
			a.clockQuarterFrame()
		}
		if immHalf {
			a.clockHalfFrame()
		}
	}
}

// ReadRegister services a CPU read of $4015; every other APU register
// is write-only and reads as 0. No open-bus value is modeled for them.
func (a *APU) ReadRegister(reg uint8) uint8 {
	if reg != RegStatus {
		return 0
	}
	var v uint8
	if !a.pulse1.length.isZero() {
		v |= 0x01
	}
	if !a.pulse2.length.isZero() {
		v |= 0x02
	}
	if !a.triangle.length.isZero() {
		v |= 0x04
	}
	if !a.noise.length.isZero() {
		v |= 0x08
	}
	if a.dmc.isActive() {
		v |= 0x10
	}
	if a.seq.irqFlag {
		v |= 0x40
	}
	if a.dmc.irqFlag {
		v |= 0x80
	}
	a.seq.irqFlag = false
	return v
}

// IRQ reports the level of the APU's combined frame/DMC interrupt
// line, which the nes package ORs into the CPU's IRQ input.
func (a *APU) IRQ() bool { return a.seq.irqFlag || a.dmc.irqFlag }

func (a *APU) clockQuarterFrame() {
	a.pulse1.clockQuarterFrame()
	a.pulse2.clockQuarterFrame()
	a.triangle.clockQuarterFrame()
	a.noise.clockQuarterFrame()
}

func (a *APU) clockHalfFrame() {
	a.pulse1.clockHalfFrame()
	a.pulse2.clockHalfFrame()
	a.triangle.clockHalfFrame()
	a.noise.clockHalfFrame()
}

// Tick advances the APU by one CPU cycle. The triangle timer and the
// frame sequencer run at CPU rate; the pulse, noise, and DMC timers
// run at half that rate, matching the real APU's internal /2 divider.
func (a *APU) Tick() {
	a.cycles++

	a.triangle.tickTimer()

	if a.cycles%2 == 0 {
		a.pulse1.tickTimer()
		a.pulse2.tickTimer()
		a.noise.tickTimer()
		if a.dmc.tickTimer() {
			a.dmc.clockOutputUnit()
		}
	}

	if a.dmc.needsFetch() {
		a.dmc.loadSample(a.bus.Read(a.dmc.fetchAddr()))
	}

	quarter, half, _ := a.seq.tick()
	if quarter {
		a.clockQuarterFrame()
	}
	if half {
		a.clockHalfFrame()
	}

	a.sampleAccum++
	if a.sampleAccum >= a.cyclesPerSample {
		a.sampleAccum -= a.cyclesPerSample
		a.pushSample(a.mix())
	}
}

// mix combines the five channel outputs using the standard NES
// non-linear mixer approximation.
func (a *APU) mix() int16 {
	p1 := float64(a.pulse1.output())
	p2 := float64(a.pulse2.output())
	t := float64(a.triangle.output())
	n := float64(a.noise.output())
	d := float64(a.dmc.output)

	var pulseOut float64
	if p1+p2 > 0 {
		pulseOut = 95.88 / (8128/(p1+p2) + 100)
	}

	var tndOut float64
	if t+n+d > 0 {
		tndOut = 159.79 / (1/(t/8227+n/12241+d/22638) + 100)
	}

	out := pulseOut + tndOut // in [0, ~1.0]
	return int16((out - 0.5) * 2 * 32767)
}

func (a *APU) pushSample(s int16) {
	a.ring.push(s)
	if a.notify != nil {
		select {
		case a.notify <- struct{}{}:
		default:
		}
	}
}

// Samples returns the channel the host drains for playback. The
// first call starts a goroutine that pumps the internal ring buffer
// into the channel; before that, samples simply accumulate (with
// oldest-first eviction) in the ring.
func (a *APU) Samples() <-chan int16 {
	a.pumpOnce.Do(func() {
		a.sampleCh = make(chan int16, sampleBufferCapacity)
		a.notify = make(chan struct{}, 1)
		go a.pump()
	})
	return a.sampleCh
}

func (a *APU) pump() {
	for range a.notify {
		for {
			s, ok := a.ring.pop()
			if !ok {
				break
			}
			a.sampleCh <- s
		}
	}
}
