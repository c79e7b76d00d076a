// Package nes ties the CPU, PPU, APU, and cartridge mapper together
// into a runnable machine: the CPU-bus address decoder, the master
// clock dividers coupling CPU/PPU/APU rates, OAM-DMA, and controller
// I/O.
package nes

import (
	"github.com/bwatkins/gones/apu"
	"github.com/bwatkins/gones/cartridge"
	"github.com/bwatkins/gones/mos6502"
	"github.com/bwatkins/gones/ppu"
)

const (
	ramSize  = 0x0800 // 2KiB built-in work RAM
	oamDMA   = 0x4014
	joypad1  = 0x4016
	joypad2  = 0x4017
)

// Console is the complete NES machine: CPU, PPU, APU, cartridge
// mapper, and the address decoding and clock-division logic that
// couples them. All state is created once at construction and
// mutated only through Tick and Reset.
type Console struct {
	cpu    *mos6502.CPU
	ppu    *ppu.PPU
	apu    *apu.APU
	mapper cartridge.Mapper

	ram [ramSize]uint8

	controller1 controller
	controller2 controller

	masterTick   uint64
	cpuRemaining int
	ppuRemaining int
	cpuCycles    uint64
}

// New constructs a Console around mapper, producing audio samples at
// sampleRate Hz.
func New(mapper cartridge.Mapper, sampleRate int) *Console {
	c := &Console{mapper: mapper, cpuRemaining: 12, ppuRemaining: 4}
	c.cpu = mos6502.New(c)
	c.apu = apu.New(c, sampleRate)
	c.ppu = ppu.New(c)
	return c
}

// SetControllers wires a button-state source (typically a host input
// poller) to each controller port. Either may be nil.
func (c *Console) SetControllers(p1, p2 ButtonSource) {
	c.controller1.source = p1
	c.controller2.source = p2
}

// Reset performs CPU reset semantics and advances the PPU the 21 dots
// (7 CPU cycles worth) real hardware takes before the first visible
// frame, matching the boot sequence's timing.
func (c *Console) Reset() {
	c.cpu.Reset()
	for i := 0; i < 21; i++ {
		c.ppu.Tick()
	}
	c.cpuRemaining = 12
	c.ppuRemaining = 4
	c.masterTick = 7 * 12
}

// Tick advances the master clock by one tick (~21.477 MHz on NTSC).
// The CPU divider fires every 12 ticks, the PPU divider every 4,
// giving the fixed 3 PPU dots per CPU cycle. When both fire on the
// same master tick the CPU step runs first, per the documented
// ordering that keeps NMI detection between instructions rather than
// mid-instruction.
func (c *Console) Tick() {
	c.cpuRemaining--
	if c.cpuRemaining <= 0 {
		c.stepCPU()
	}

	c.ppuRemaining--
	if c.ppuRemaining <= 0 {
		c.ppu.Tick()
		c.ppuRemaining = 4
	}

	c.masterTick++
}

func (c *Console) stepCPU() {
	cycles := c.cpu.Step()
	for i := 0; i < cycles; i++ {
		c.apu.Tick()
	}
	c.cpu.SetIRQLine(c.apu.IRQ())
	c.cpuCycles += uint64(cycles)
	c.cpuRemaining = cycles * 12
	if c.cpuRemaining <= 0 {
		c.cpuRemaining = 12
	}
}

// Frame returns the most recently rendered 256x240 buffer of 6-bit
// palette indices.
func (c *Console) Frame() []uint8 { return c.ppu.Frame() }

// CPU exposes the CPU core for tooling (trace logging, the debugger)
// that needs register-level visibility the Bus contract doesn't carry.
func (c *Console) CPU() *mos6502.CPU { return c.cpu }

// StepInstruction runs the master clock until exactly one CPU
// instruction (or stalled cycle) has retired, for single-step
// debugging.
func (c *Console) StepInstruction() {
	before := c.cpuCycles
	for c.cpuCycles == before {
		c.Tick()
	}
}

// Samples returns the channel the host drains for audio playback.
func (c *Console) Samples() <-chan int16 { return c.apu.Samples() }

// TriggerNMI satisfies ppu.Bus; the PPU calls this synchronously from
// within Tick when it detects the VBlank/NMI-enable edge.
func (c *Console) TriggerNMI() { c.cpu.TriggerNMI() }

// ClearNMI satisfies ppu.Bus; the PPU calls this once VBlank ends
// (pre-render dot 1, and on a PPUSTATUS read that clears the VBlank
// flag) so the next TriggerNMI call produces a fresh edge.
func (c *Console) ClearNMI() { c.cpu.ClearNMILine() }

// ChrRead/ChrWrite/MirrorMode satisfy ppu.Bus by delegating to the
// cartridge mapper.
func (c *Console) ChrRead(addr uint16) uint8       { return c.mapper.ChrRead(addr) }
func (c *Console) ChrWrite(addr uint16, val uint8) { c.mapper.ChrWrite(addr, val) }
func (c *Console) MirrorMode() uint8               { return c.mapper.MirroringMode() }

// Read services the CPU (and, for DMC sample fetches, the APU) bus.
// https://www.nesdev.org/wiki/CPU_memory_map
func (c *Console) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return c.ram[addr&0x07FF]
	case addr < 0x4000:
		return c.ppu.ReadRegister(uint8(addr & 7))
	case addr == joypad1:
		return c.controller1.read()
	case addr == joypad2:
		return c.controller2.read()
	case addr <= 0x4013:
		return c.apu.ReadRegister(uint8(addr - 0x4000))
	case addr == 0x4015:
		return c.apu.ReadRegister(apu.RegStatus)
	case addr < 0x4020:
		return 0 // unused APU/IO test registers
	default:
		return c.mapper.PrgRead(addr)
	}
}

// Write services the CPU bus.
func (c *Console) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		c.ram[addr&0x07FF] = val
	case addr < 0x4000:
		c.ppu.WriteRegister(uint8(addr&7), val)
	case addr <= 0x4013:
		c.apu.WriteRegister(uint8(addr-0x4000), val)
	case addr == oamDMA:
		c.doOAMDMA(val)
	case addr == 0x4015:
		c.apu.WriteRegister(apu.RegStatus, val)
	case addr == joypad1:
		c.controller1.write(val)
		c.controller2.write(val)
	case addr == joypad2:
		c.apu.WriteRegister(apu.RegFrameCounter, val)
	case addr < 0x4020:
		// unused APU/IO test registers
	default:
		c.mapper.PrgWrite(addr, val)
	}
}

// doOAMDMA performs the 256-byte RAM-to-OAM copy a write to $4014
// triggers, then stalls the CPU 513 cycles (514 if the write landed
// on an odd CPU cycle), matching the documented hardware parity rule.
func (c *Console) doOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		c.ppu.WriteRegister(ppu.OAMDATA, c.Read(base+uint16(i)))
	}
	stall := 513
	if c.cpuCycles%2 == 1 {
		stall = 514
	}
	c.cpu.AddStallCycles(stall)
}
