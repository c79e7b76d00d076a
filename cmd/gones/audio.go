package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// sampleStream adapts the APU's mono int16 sample channel into the
// io.Reader ebiten/v2/audio.Player expects: signed 16-bit
// little-endian stereo PCM. When the channel has nothing buffered it
// emits silence rather than blocking, since the audio backend reads
// on its own schedule independent of the emulator's.
type sampleStream struct {
	samples <-chan int16
}

func (s *sampleStream) Read(p []byte) (int, error) {
	n := 0
	for n+4 <= len(p) {
		select {
		case v, ok := <-s.samples:
			if !ok {
				return n, nil
			}
			lo, hi := byte(v), byte(v>>8)
			p[n], p[n+1] = lo, hi
			p[n+2], p[n+3] = lo, hi
			n += 4
		default:
			p[n], p[n+1], p[n+2], p[n+3] = 0, 0, 0, 0
			n += 4
		}
	}
	return n, nil
}

func newSamplePlayer(ctx *audio.Context, samples <-chan int16) *audio.Player {
	player, err := ctx.NewPlayer(&sampleStream{samples: samples})
	if err != nil {
		panic(err)
	}
	return player
}
