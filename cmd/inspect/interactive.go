package main

import (
	"encoding/hex"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/unic/errors"
	"github.com/wippyai/unic/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	scalarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	unitsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inputMode int

const (
	modeText inputMode = iota
	modeHex
)

type codePointRow struct {
	pos   int
	bytes string
	cp    rune
	units string
}

type inspection struct {
	rows      []codePointRow
	faultMsg  string
	faultPos  int
	cpCount   int
	unitCount int
	byteCount int
}

type inspectModel struct {
	input   textinput.Model
	result  *inspection
	mode    inputMode
	lastErr error
}

func newInspectModel() *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "type text to inspect"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &inspectModel{input: ti}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.mode == modeText {
				m.mode = modeHex
				m.input.Placeholder = "hex bytes, e.g. C2 20"
			} else {
				m.mode = modeText
				m.input.Placeholder = "type text to inspect"
			}
			m.result = nil
			m.lastErr = nil

		case "enter":
			m.inspect()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) inspect() {
	m.result = nil
	m.lastErr = nil

	var src []byte
	if m.mode == modeHex {
		cleaned := strings.ReplaceAll(m.input.Value(), " ", "")
		data, err := hex.DecodeString(cleaned)
		if err != nil {
			m.lastErr = fmt.Errorf("bad hex input: %w", err)
			return
		}
		src = data
	} else {
		src = []byte(m.input.Value())
	}

	ins := &inspection{byteCount: len(src), faultPos: errors.NoPosition}

	for pos := 0; pos < len(src); {
		cp, next, err := transcoder.DecodeNext(src, pos)
		if err != nil {
			ins.faultMsg = err.Error()
			var terr *errors.Error
			if goerrors.As(err, &terr) {
				ins.faultPos = terr.Position
			}
			break
		}

		var sink transcoder.SliceSink
		unitsCol := "not representable"
		if _, encErr := transcoder.EncodeCodePoints([]rune{cp}, &sink); encErr == nil {
			parts := make([]string, len(sink.Units))
			for i, u := range sink.Units {
				parts[i] = fmt.Sprintf("%04X", u)
			}
			unitsCol = strings.Join(parts, " ")
			ins.unitCount += len(sink.Units)
		}

		ins.rows = append(ins.rows, codePointRow{
			pos:   pos,
			bytes: hexSpan(src[pos:next]),
			cp:    cp,
			units: unitsCol,
		})
		ins.cpCount++
		pos = next
	}

	m.result = ins
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF Inspector"))
	if m.mode == modeHex {
		b.WriteString(" hex input")
	} else {
		b.WriteString(" text input")
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if r := m.result; r != nil {
		b.WriteString(summaryStyle.Render(fmt.Sprintf(
			"%d bytes → %d code points → %d UTF-16 units",
			r.byteCount, r.cpCount, r.unitCount)))
		b.WriteString("\n\n")

		for _, row := range r.rows {
			b.WriteString(offsetStyle.Render(fmt.Sprintf("%4d  ", row.pos)))
			b.WriteString(bytesStyle.Render(fmt.Sprintf("%-12s", row.bytes)))
			b.WriteString(scalarStyle.Render(fmt.Sprintf("  U+%06X  ", row.cp)))
			b.WriteString(unitsStyle.Render(row.units))
			b.WriteString("\n")
		}

		if r.faultMsg != "" {
			b.WriteString("\n")
			if r.faultPos != errors.NoPosition {
				b.WriteString(errorStyle.Render(fmt.Sprintf("✗ byte %d: %s", r.faultPos, r.faultMsg)))
			} else {
				b.WriteString(errorStyle.Render("✗ " + r.faultMsg))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter inspect • tab toggle text/hex • esc quit"))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
