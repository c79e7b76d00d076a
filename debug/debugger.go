// Package debug implements an interactive terminal inspector for a
// running nes.Console: CPU registers and flags, a scrollable memory
// page table, and the decoded instruction at PC.
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/bwatkins/gones/mos6502"
	"github.com/bwatkins/gones/nes"
)

type model struct {
	console *nes.Console
	prevPC  uint16
	running bool
	err     error
}

// New builds a debugger model attached to console.
func New(console *nes.Console) tea.Model {
	return model{console: console}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			m.prevPC = m.console.CPU().PC
			m.console.StepInstruction()
		case "r":
			m.running = !m.running
		case "e":
			m.console.Reset()
		}
	}
	if m.running {
		m.prevPC = m.console.CPU().PC
		m.console.StepInstruction()
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	pc := m.console.CPU().PC
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.console.Read(addr)
		if addr == pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	pc := m.console.CPU().PC
	base := pc &^ 0x000F
	lines := []string{header}
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	cpu := m.console.CPU()
	flags := []struct {
		name string
		set  bool
	}{
		{"N", cpu.Status&mos6502.FlagNegative != 0},
		{"V", cpu.Status&mos6502.FlagOverflow != 0},
		{"-", cpu.Status&mos6502.FlagUnused != 0},
		{"B", cpu.Status&mos6502.FlagBreak != 0},
		{"D", cpu.Status&mos6502.FlagDecimal != 0},
		{"I", cpu.Status&mos6502.FlagInterruptDisable != 0},
		{"Z", cpu.Status&mos6502.FlagZero != 0},
		{"C", cpu.Status&mos6502.FlagCarry != 0},
	}
	var labels, marks string
	for _, f := range flags {
		labels += f.name + " "
		if f.set {
			marks += "/ "
		} else {
			marks += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
%s
%s
illegal ops: %d
`,
		cpu.PC, m.prevPC,
		cpu.A, cpu.X, cpu.Y, cpu.SP,
		labels, marks,
		cpu.IllegalOpcodeCount,
	)
}

func (m model) View() string {
	cpu := m.console.CPU()
	text, _ := mos6502.Disassemble(m.console.Read(cpu.PC))
	help := "space/s: step   r: toggle run   e: reset   q: quit"
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(text),
		help,
	)
}

// Run starts the interactive TUI and blocks until the user quits.
func Run(console *nes.Console) error {
	_, err := tea.NewProgram(New(console)).Run()
	return err
}
