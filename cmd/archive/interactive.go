package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/archive/codec"
	"github.com/wippyai/archive/config"
	"github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/shape"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxDump bounds the hex dump shown after encoding.
const maxDump = 256

type modelState int

const (
	stateBrowse modelState = iota
	stateEncode
)

type interactiveModel struct {
	err      error
	cfg      *config.Config
	shape    *shape.Shape
	codec    codec.Codec[any]
	input    textinput.Model
	files    []string
	roots    []*node
	dump     string
	selected int
	state    modelState
	loaded   bool
}

func newInteractiveModel(cfg *config.Config, s *shape.Shape, files []string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "JSON value"
	ti.Prompt = "value: "
	ti.Width = 60

	return &interactiveModel{
		cfg:   cfg,
		shape: s,
		files: files,
		input: ti,
		state: stateBrowse,
	}
}

type loadedMsg struct {
	err   error
	codec codec.Codec[any]
	roots []*node
}

type encodedMsg struct {
	err  error
	root *node
	dump string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	c, err := shape.Compile(m.shape, m.cfg.CodecOptions()...)
	if err != nil {
		return loadedMsg{err: err}
	}

	results, err := decodeFiles(context.Background(), m.cfg, codec.Logger(), m.shape, m.files)
	if err != nil {
		return loadedMsg{err: err}
	}

	roots := make([]*node, len(results))
	for i, r := range results {
		roots[i] = buildTree(m.shape, r.value, r.file)
		if r.err != nil {
			roots[i].err = r.err
		}
	}
	return loadedMsg{codec: c, roots: roots}
}

func (m *interactiveModel) encode() tea.Msg {
	v, err := shape.ParseJSON(m.shape, []byte(m.input.Value()))
	if err != nil {
		return encodedMsg{err: err}
	}
	data, err := encodeValue(m.cfg, m.codec, v)
	if err != nil {
		return encodedMsg{err: err}
	}

	// Decode what was just written so the browser shows the archived value.
	back, err := decodeValue(m.cfg, m.codec, data)
	if err != nil {
		return encodedMsg{err: err}
	}

	dump := hex.Dump(data[:min(len(data), maxDump)])
	if len(data) > maxDump {
		dump += fmt.Sprintf("... %d more bytes\n", len(data)-maxDump)
	}
	return encodedMsg{root: buildTree(m.shape, back, "input"), dump: dump}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(visible(m.roots))-1 {
				m.selected++
			}

		case "enter", " ":
			switch m.state {
			case stateBrowse:
				rows := visible(m.roots)
				if m.selected < len(rows) {
					n := rows[m.selected].node
					n.expanded = !n.expanded && len(n.children) > 0
				}
			case stateEncode:
				if msg.String() == "enter" {
					return m, m.encode
				}
			}

		case "e":
			if m.state == stateBrowse && m.codec != nil {
				m.state = stateEncode
				m.err = nil
				m.input.Focus()
				return m, textinput.Blink
			}

		case "esc":
			if m.state == stateEncode {
				m.state = stateBrowse
				m.input.Blur()
			}
		}

	case loadedMsg:
		m.loaded = true
		m.err = msg.err
		m.codec = msg.codec
		m.roots = msg.roots

	case encodedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.dump = msg.dump
			m.roots = append(m.roots, msg.root)
			m.state = stateBrowse
			m.input.Blur()
			m.selected = len(visible(m.roots)) - 1
		}
	}

	if m.state == stateEncode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if !m.loaded {
		return "Decoding archives..."
	}
	if m.err != nil && m.codec == nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Archive Browser"))
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(m.shape.String()))
	b.WriteString("\n\n")

	rows := visible(m.roots)
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("No archives loaded. Press e to encode a value."))
		b.WriteString("\n")
	}
	for i, r := range rows {
		line := m.formatRow(r)
		if i == m.selected && m.state == stateBrowse {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.dump != "" {
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.dump))
	}

	b.WriteString("\n")
	switch m.state {
	case stateBrowse:
		b.WriteString(helpStyle.Render("↑/↓ select • enter expand • e encode • q quit"))
	case stateEncode:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error (status %d): %v", errors.Status(m.err), m.err)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter encode • esc back"))
	}

	return b.String()
}

func (m *interactiveModel) formatRow(r row) string {
	n := r.node
	marker := "  "
	if len(n.children) > 0 {
		marker = "▸ "
		if n.expanded {
			marker = "▾ "
		}
	}

	line := strings.Repeat("  ", r.depth) + marker + labelStyle.Render(n.label) + " "
	if n.err != nil {
		return line + errorStyle.Render(fmt.Sprintf("status %d: %v", errors.Status(n.err), n.err))
	}
	return line + n.summary
}

func runInteractive(cfg *config.Config, s *shape.Shape, files []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal on stdout")
	}
	codec.Logger().Debug("starting browser", zap.Strings("files", files))

	p := tea.NewProgram(newInteractiveModel(cfg, s, files), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
