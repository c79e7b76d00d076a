package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsNROMForMapperZero(t *testing.T) {
	raw := buildROM(1, 1, 0, 0x11, 0x22)
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	m, err := Get(rom)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), m.ID())
	assert.Equal(t, "NROM", m.Name())
}

func TestGetReportsUnsupportedMapper(t *testing.T) {
	raw := buildROM(1, 1, 0x10, 0x11, 0x22) // mapper nibble 1, unregistered
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	_, err = Get(rom)
	require.Error(t, err)
	var unsupported *ErrUnsupportedMapper
	assert.ErrorAs(t, err, &unsupported)
	assert.EqualValues(t, 1, unsupported.ID)
}

func TestNROMSingleBankMirrors(t *testing.T) {
	raw := buildROM(1, 1, 0, 0x42, 0x11)
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	m, err := Get(rom)
	require.NoError(t, err)

	assert.Equal(t, uint8(0x42), m.PrgRead(0x8000))
	assert.Equal(t, uint8(0x42), m.PrgRead(0xC000), "second half must mirror the only bank")
	assert.Equal(t, uint8(0x42), m.PrgRead(0xFFFF))
}

func TestNROMTwoBanksSpanFullWindow(t *testing.T) {
	raw := buildROM(1, 1, 0, 0, 0)
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)
	rom.prg = append(bytes.Repeat([]byte{0x01}, prgBankSize), bytes.Repeat([]byte{0x02}, prgBankSize)...)

	m, err := Get(rom)
	require.NoError(t, err)

	assert.Equal(t, uint8(0x01), m.PrgRead(0x8000))
	assert.Equal(t, uint8(0x02), m.PrgRead(0xC000))
}

func TestNROMPRGRAMReadWrite(t *testing.T) {
	raw := buildROM(1, 1, 0, 0, 0)
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	m, err := Get(rom)
	require.NoError(t, err)

	m.PrgWrite(0x6000, 0x99)
	assert.Equal(t, uint8(0x99), m.PrgRead(0x6000))
}

func TestNROMWritesToROMAreDropped(t *testing.T) {
	raw := buildROM(1, 1, 0, 0x55, 0)
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	m, err := Get(rom)
	require.NoError(t, err)

	m.PrgWrite(0x8000, 0xFF)
	assert.Equal(t, uint8(0x55), m.PrgRead(0x8000))
}

func TestNROMCHRRAMIsWritable(t *testing.T) {
	raw := buildROM(1, 0, 0, 0, 0)
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	m, err := Get(rom)
	require.NoError(t, err)

	m.ChrWrite(0x0010, 0x7E)
	assert.Equal(t, uint8(0x7E), m.ChrRead(0x0010))
}

func TestNROMCHRROMIgnoresWrites(t *testing.T) {
	raw := buildROM(1, 1, 0, 0, 0x33)
	rom, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	m, err := Get(rom)
	require.NoError(t, err)

	m.ChrWrite(0x0000, 0xFF)
	assert.Equal(t, uint8(0x33), m.ChrRead(0x0000))
}
