package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawHeader(prgSize, chrSize, flags6, flags7 uint8, pad [5]byte) []byte {
	h := make([]byte, 16)
	copy(h[0:4], magic[:])
	h[4] = prgSize
	h[5] = chrSize
	h[6] = flags6
	h[7] = flags7
	copy(h[11:16], pad[:])
	return h
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	raw := rawHeader(1, 1, 0, 0, [5]byte{})
	raw[0] = 'X'
	_, err := parseHeader(raw)
	assert.Error(t, err)
}

func TestParseHeaderRejectsShortInput(t *testing.T) {
	_, err := parseHeader([]byte{'N', 'E', 'S', 0x1A})
	assert.Error(t, err)
}

func TestMapperNumberCombinesNibbles(t *testing.T) {
	// mapper 0x21: low nibble 1 from flags6, high nibble 2 from flags7.
	raw := rawHeader(1, 1, 0x10, 0x20, [5]byte{})
	h, err := parseHeader(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 0x21, h.mapperNumber())
}

func TestIgnoreHighNibbleWhenPaddingIsDirty(t *testing.T) {
	raw := rawHeader(1, 1, 0x10, 0x20, [5]byte{'D', 'I', 'S', 'K', 0})
	h, err := parseHeader(raw)
	require.NoError(t, err)
	assert.True(t, h.ignoreHighNibble())
	assert.EqualValues(t, 1, h.mapperNumber())
}

func TestMirroringModeBits(t *testing.T) {
	horiz, err := parseHeader(rawHeader(1, 1, 0, 0, [5]byte{}))
	require.NoError(t, err)
	assert.EqualValues(t, MirrorHorizontal, horiz.mirroringMode())

	vert, err := parseHeader(rawHeader(1, 1, flag6Mirroring, 0, [5]byte{}))
	require.NoError(t, err)
	assert.EqualValues(t, MirrorVertical, vert.mirroringMode())

	four, err := parseHeader(rawHeader(1, 1, flag6FourWay, 0, [5]byte{}))
	require.NoError(t, err)
	assert.EqualValues(t, MirrorFourScreen, four.mirroringMode())
}

func TestHasTrainerAndBattery(t *testing.T) {
	h, err := parseHeader(rawHeader(1, 1, flag6Trainer|flag6Battery, 0, [5]byte{}))
	require.NoError(t, err)
	assert.True(t, h.hasTrainer())
	assert.True(t, h.hasBattery())
}

func TestPRGRAMSizeZeroMeansOne(t *testing.T) {
	raw := rawHeader(1, 1, 0, 0, [5]byte{})
	h, err := parseHeader(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 1, h.prgRAMSize())
}
