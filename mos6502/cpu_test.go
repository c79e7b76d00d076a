package mos6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBus is a flat 64KiB RAM used to drive the CPU in isolation from
// the rest of the console.
type fakeBus struct {
	mem [65536]uint8
}

func (b *fakeBus) Read(addr uint16) uint8        { return b.mem[addr] }
func (b *fakeBus) Write(addr uint16, val uint8)  { b.mem[addr] = val }

func (b *fakeBus) loadAt(addr uint16, bytes ...uint8) {
	for i, v := range bytes {
		b.mem[int(addr)+i] = v
	}
}

func newTestCPU(resetVector uint16, program ...uint8) (*CPU, *fakeBus) {
	bus := &fakeBus{}
	bus.mem[0xFFFC] = uint8(resetVector)
	bus.mem[0xFFFD] = uint8(resetVector >> 8)
	bus.loadAt(resetVector, program...)
	return New(bus), bus
}

func TestResetVectorAndPowerOnState(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.NotZero(t, c.Status&FlagInterruptDisable)
	assert.NotZero(t, c.Status&FlagUnused)
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xA9, 0x00)
	c.Step()
	assert.Zero(t, c.A)
	assert.NotZero(t, c.Status&FlagZero)

	c2, _ := newTestCPU(0x8000, 0xA9, 0x80)
	c2.Step()
	assert.Equal(t, uint8(0x80), c2.A)
	assert.NotZero(t, c2.Status&FlagNegative)
}

func TestPCAdvancesByInstructionLength(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xA9, 0x42, 0xA2, 0x01)
	c.Step()
	assert.Equal(t, uint16(0x8002), c.PC)
	c.Step()
	assert.Equal(t, uint16(0x8004), c.PC)
}

func TestADCSetsOverflowWithoutCarry(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xA9, 0x7F, 0x69, 0x01) // LDA #$7F; ADC #$01
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0x80), c.A)
	assert.NotZero(t, c.Status&FlagOverflow, "signed overflow crossing 0x7F->0x80")
	assert.Zero(t, c.Status&FlagCarry)
}

func TestSBCBorrowClearsCarry(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x38, 0xA9, 0x00, 0xE9, 0x01) // SEC; LDA #0; SBC #1
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0xFF), c.A)
	assert.Zero(t, c.Status&FlagCarry, "borrow occurred")
}

func TestBranchTakenCyclesAndPageCross(t *testing.T) {
	// BEQ forward across a page boundary from 0x80F0 (next PC 0x80F2).
	c, _ := newTestCPU(0x80F0, 0xF0, 0x10) // BEQ +16 -> 0x8102
	c.Status |= FlagZero
	cycles := c.Step()
	assert.Equal(t, uint16(0x8102), c.PC)
	assert.Equal(t, 4, cycles, "base 2 + taken 1 + page-cross 1")
}

func TestBranchNotTakenCostsBaseCycles(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xF0, 0x10)
	cycles := c.Step()
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.Equal(t, 2, cycles)
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	bus.loadAt(0x02FF, 0x34)
	bus.loadAt(0x0200, 0x12) // high byte fetched from $0200, not $0300
	c.Step()
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	c.Step()
	assert.Equal(t, uint16(0x9000), c.PC)

	c.bus.Write(0x9000, 0x60) // RTS
	c.Step()
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestStackFramingOfBRK(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0x00, 0x00) // BRK
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0x90
	sp := c.SP
	c.Step()
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, sp-3, c.SP)
	assert.NotZero(t, c.Status&FlagInterruptDisable)
}

func TestNMIEdgeTriggered(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0xEA) // NOP
	bus.mem[0xFFFA] = 0x00
	bus.mem[0xFFFB] = 0xA0
	c.TriggerNMI()
	cycles := c.Step()
	assert.Equal(t, uint16(0xA000), c.PC)
	assert.Equal(t, 7, cycles)

	// Re-triggering without clearing the line produces no new edge.
	c.PC = 0x8000
	c.TriggerNMI()
	c.Step()
	assert.Equal(t, uint16(0x8001), c.PC, "no edge, NOP just executes")
}

func TestIllegalOpcodeCountsAndDoesNotAdvance(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x02) // JAM
	c.Step()
	assert.Equal(t, uint64(1), c.IllegalOpcodeCount)
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestUnofficialLAXLoadsBothRegisters(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0xA7, 0x10) // LAX $10
	bus.mem[0x10] = 0x42
	c.Step()
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint8(0x42), c.X)
}

func TestUnofficialSAXStoresAndMask(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0x87, 0x10) // SAX $10
	c.A = 0xF0
	c.X = 0x0F
	c.Step()
	require.Equal(t, uint8(0x00), bus.mem[0x10])
}

func TestCompareSetsCarryWhenRegisterGE(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xC9, 0x10) // CMP #$10
	c.A = 0x10
	c.Step()
	assert.NotZero(t, c.Status&FlagCarry)
	assert.NotZero(t, c.Status&FlagZero)
}
