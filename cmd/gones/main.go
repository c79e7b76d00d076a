// Command gones runs an iNES ROM: either on-screen through ebiten, or
// under the interactive terminal debugger.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/draw"

	"github.com/bwatkins/gones/cartridge"
	"github.com/bwatkins/gones/debug"
	"github.com/bwatkins/gones/nes"
	"github.com/bwatkins/gones/ppu"
)

const (
	screenWidth  = 256
	screenHeight = 240
	displayScale = 3
	sampleRate   = 44100
)

var (
	romFile   = flag.String("rom", "", "path to the .nes ROM to run")
	debugMode = flag.Bool("debug", false, "start the interactive terminal debugger instead of the display")
)

func main() {
	flag.Parse()
	if *romFile == "" {
		log.Fatal("-rom is required")
	}

	f, err := os.Open(*romFile)
	if err != nil {
		log.Fatalf("opening ROM: %v", err)
	}
	defer f.Close()

	rom, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	mapper, err := cartridge.Get(rom)
	if err != nil {
		log.Fatalf("selecting mapper: %v", err)
	}

	console := nes.New(mapper, sampleRate)
	console.Reset()

	if *debugMode {
		if err := debug.Run(console); err != nil {
			log.Fatal(err)
		}
		return
	}

	console.SetControllers(newEbitenButtons(), nil)

	audioCtx := audio.NewContext(sampleRate)
	player := newSamplePlayer(audioCtx, console.Samples())
	player.Play()

	g := newGame(console)

	ebiten.SetWindowSize(screenWidth*displayScale, screenHeight*displayScale)
	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// nesPalette builds an image/color.Palette from ppu.SystemPalette so
// the framebuffer's 6-bit indices can be decoded into an
// *image.Paletted without a per-pixel lookup table of our own.
func nesPalette() color.Palette {
	pal := make(color.Palette, len(ppu.SystemPalette))
	for i, rgb := range ppu.SystemPalette {
		pal[i] = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
	}
	return pal
}

// game implements ebiten.Game: Update drives the console for one
// display frame's worth of master ticks, Draw blits the resulting
// framebuffer upscaled by displayScale.
type game struct {
	console *nes.Console
	pal     color.Palette
	scaled  *image.RGBA
	rgbaBuf *ebiten.Image
}

func newGame(console *nes.Console) *game {
	return &game{
		console: console,
		pal:     nesPalette(),
		scaled:  image.NewRGBA(image.Rect(0, 0, screenWidth*displayScale, screenHeight*displayScale)),
		rgbaBuf: ebiten.NewImage(screenWidth*displayScale, screenHeight*displayScale),
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth * displayScale, screenHeight * displayScale
}

// ticksPerFrame approximates the NTSC master clock (~21.477 MHz)
// divided by 60 frames/sec; real-time pacing beyond that is the
// host's concern, not the core's.
const ticksPerFrame = 21477270 / 60

func (g *game) Update() error {
	for i := 0; i < ticksPerFrame; i++ {
		g.console.Tick()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	src := &image.Paletted{
		Pix:     g.console.Frame(),
		Stride:  screenWidth,
		Rect:    image.Rect(0, 0, screenWidth, screenHeight),
		Palette: g.pal,
	}
	draw.NearestNeighbor.Scale(g.scaled, g.scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
	g.rgbaBuf.WritePixels(g.scaled.Pix)
	screen.DrawImage(g.rgbaBuf, nil)
}
