// Package tui provides the tabbed Bubble Tea toolkit interface.
package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkraev/toolbelt/internal/export"
	"github.com/mkraev/toolbelt/internal/model"
	"github.com/mkraev/toolbelt/internal/password"
	"github.com/mkraev/toolbelt/internal/store"
	"github.com/mkraev/toolbelt/internal/tools/b64"
	"github.com/mkraev/toolbelt/internal/tools/colorconv"
	"github.com/mkraev/toolbelt/internal/tools/dateconv"
	"github.com/mkraev/toolbelt/internal/tools/hashes"
	"github.com/mkraev/toolbelt/internal/tools/numbase"
	"github.com/mkraev/toolbelt/internal/tools/qrgen"
	"github.com/mkraev/toolbelt/internal/tools/uuidgen"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// uuidMaxCount bounds the UUID batch counter.
const uuidMaxCount = 100

// Model implements the tabbed Bubble Tea UI over all tools.
type Model struct {
	store     *store.Store
	exportDir string

	active model.Tool
	width  int
	height int

	inputs map[model.Tool]textinput.Model

	b64Encoded string
	b64Decoded string

	colorConv colorconv.Conversions
	colorErr  string

	dateConv dateconv.Conversions
	dateErr  string

	hashSums hashes.Sums
	hasSums  bool

	numConv numbase.Conversions
	hasNum  bool

	qrText string
	qrErr  string

	uuidV4    []string
	uuidV7    []string
	uuidCount int

	pwConfig  password.Config
	passwords []string

	status string
}

// NewModel constructs the toolkit UI model. The store may be nil, in which
// case no history is recorded.
func NewModel(st *store.Store, pwConfig password.Config, exportDir string) *Model {
	m := &Model{
		store:     st,
		exportDir: exportDir,
		active:    model.ToolBase64,
		inputs:    make(map[model.Tool]textinput.Model),
		uuidCount: 1,
		pwConfig:  pwConfig,
	}
	for _, tool := range inputTools() {
		input := textinput.New()
		input.Prompt = "> "
		input.Placeholder = placeholderFor(tool)
		m.inputs[tool] = input
	}
	m.focusActive()
	return m
}

func inputTools() []model.Tool {
	return []model.Tool{
		model.ToolBase64,
		model.ToolColorConverter,
		model.ToolDateConverter,
		model.ToolHashGenerator,
		model.ToolNumberBaseConverter,
		model.ToolQRCodeGenerator,
	}
}

func placeholderFor(tool model.Tool) string {
	switch tool {
	case model.ToolBase64:
		return "text or base64"
	case model.ToolColorConverter:
		return "#RRGGBB, r, g, b, c%, m%, y%, k% or h°, s%, l%"
	case model.ToolDateConverter:
		return "2024-03-22 10:00:00 or unix timestamp"
	case model.ToolHashGenerator:
		return "text to hash"
	case model.ToolNumberBaseConverter:
		return "number (binary, decimal, or hex)"
	case model.ToolQRCodeGenerator:
		return "text or URL to encode"
	default:
		return ""
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			return m, m.switchTool(m.active.Next())
		case tea.KeyShiftTab:
			return m, m.switchTool(m.active.Prev())
		}
		return m.handleToolKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) switchTool(next model.Tool) tea.Cmd {
	m.active = next
	m.status = ""
	return m.focusActive()
}

func (m *Model) focusActive() tea.Cmd {
	var cmd tea.Cmd
	for tool, input := range m.inputs {
		if tool == m.active {
			cmd = input.Focus()
		} else {
			input.Blur()
		}
		m.inputs[tool] = input
	}
	return cmd
}

func (m *Model) handleToolKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.active {
	case model.ToolPasswordGenerator:
		m.handlePasswordKey(msg)
		return m, nil
	case model.ToolUUIDGenerator:
		m.handleUUIDKey(msg)
		return m, nil
	default:
		return m.handleInputKey(msg)
	}
}

// handleInputKey drives the text-input tools: Enter converts, Ctrl+X
// exports, Ctrl+Y copies, anything else edits the input field.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.runConversion()
		return m, nil
	case tea.KeyCtrlX:
		m.exportActive()
		return m, nil
	case tea.KeyCtrlY:
		m.copyActive()
		return m, nil
	}
	input := m.inputs[m.active]
	input, cmd := input.Update(msg)
	m.inputs[m.active] = input
	return m, cmd
}

func (m *Model) runConversion() {
	value := m.inputs[m.active].Value()
	switch m.active {
	case model.ToolBase64:
		m.b64Encoded = b64.Encode(value)
		decoded, err := b64.Decode(value)
		if err != nil {
			m.b64Decoded = "provided input is not a valid base64 string"
		} else {
			m.b64Decoded = decoded
		}
	case model.ToolColorConverter:
		c, err := colorconv.Parse(value)
		if err != nil {
			m.colorErr = err.Error()
			m.colorConv = colorconv.Conversions{}
			return
		}
		m.colorErr = ""
		m.colorConv = colorconv.Convert(c)
	case model.ToolDateConverter:
		conv, err := dateconv.Convert(value)
		if err != nil {
			m.dateErr = err.Error()
			m.dateConv = dateconv.Conversions{}
			return
		}
		m.dateErr = ""
		m.dateConv = conv
	case model.ToolHashGenerator:
		m.hashSums = hashes.Compute(value)
		m.hasSums = true
	case model.ToolNumberBaseConverter:
		m.numConv = numbase.All(value)
		m.hasNum = true
	case model.ToolQRCodeGenerator:
		text, err := qrgen.Text(value)
		if err != nil {
			m.qrErr = err.Error()
			m.qrText = ""
			return
		}
		m.qrErr = ""
		m.qrText = text
	}
}

func (m *Model) handlePasswordKey(msg tea.KeyMsg) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return
	}
	switch msg.Runes[0] {
	case 'g':
		m.generatePasswords(1)
	case 'm':
		m.generatePasswords(m.pwConfig.Count)
	case 'i':
		m.pwConfig.IncreaseLength()
	case 'd':
		m.pwConfig.DecreaseLength()
	case 'k':
		m.pwConfig.IncreaseCount()
	case 'j':
		m.pwConfig.DecreaseCount()
	case 'u':
		m.pwConfig.ToggleUppercase()
	case 'l':
		m.pwConfig.ToggleLowercase()
	case 'n':
		m.pwConfig.ToggleNumbers()
	case 's':
		m.pwConfig.ToggleSymbols()
	case 'z':
		m.pwConfig.ToggleAvoidSimilar()
	case 'q':
		m.pwConfig.ToggleAllowDuplicates()
	case 'v':
		m.pwConfig.ToggleAvoidSequential()
	case 'c':
		m.passwords = nil
		m.status = ""
	case 'x':
		m.exportActive()
	case 'y':
		m.copyActive()
	}
}

func (m *Model) generatePasswords(count int) {
	cfg := m.pwConfig
	cfg.Count = count
	passwords, err := password.Generate(cfg)
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}
	m.passwords = passwords
	if count == 1 {
		m.status = "generated 1 password"
	} else {
		m.status = fmt.Sprintf("generated %d passwords", count)
	}
	m.recordEvent("generated %d passwords (length %d)", count, cfg.Length)
}

func (m *Model) handleUUIDKey(msg tea.KeyMsg) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return
	}
	switch msg.Runes[0] {
	case '4':
		m.uuidV4 = uuidgen.V4(m.uuidCount)
		m.status = fmt.Sprintf("generated %d v4 UUIDs", m.uuidCount)
		m.recordEvent("generated %d v4 UUIDs", m.uuidCount)
	case '7':
		ids, err := uuidgen.V7(m.uuidCount)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return
		}
		m.uuidV7 = ids
		m.status = fmt.Sprintf("generated %d v7 UUIDs", m.uuidCount)
		m.recordEvent("generated %d v7 UUIDs", m.uuidCount)
	case 'k':
		if m.uuidCount < uuidMaxCount {
			m.uuidCount++
		}
	case 'j':
		if m.uuidCount > 1 {
			m.uuidCount--
		}
	case 'c':
		m.uuidV4 = nil
		m.uuidV7 = nil
		m.uuidCount = 1
		m.status = ""
	case 'x':
		m.exportActive()
	case 'y':
		m.copyActive()
	}
}

func (m *Model) exportActive() {
	lines, name := m.exportPayload()
	if len(lines) == 0 {
		m.status = errorStyle.Render("nothing to export yet")
		return
	}
	if m.active == model.ToolQRCodeGenerator {
		path, err := export.QRPNG(m.exportDir, m.inputs[m.active].Value())
		if err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("failed to export: %v", err))
			return
		}
		m.status = fmt.Sprintf("exported to %s", path)
		m.recordEvent("exported QR code to %s", path)
		return
	}
	path, err := export.Text(m.exportDir, name, lines)
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("failed to export: %v", err))
		return
	}
	m.status = fmt.Sprintf("exported to %s", path)
	m.recordEvent("exported to %s", path)
}

func (m *Model) copyActive() {
	text := m.copyPayload()
	if text == "" {
		m.status = errorStyle.Render("nothing to copy yet")
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("failed to copy: %v", err))
		return
	}
	m.status = "copied to clipboard"
}

// recordEvent inserts a history event; password text never goes through
// here, only settings summaries.
func (m *Model) recordEvent(format string, args ...any) {
	if m.store == nil {
		return
	}
	event := model.Event{
		Tool:   m.active.Name(),
		Detail: fmt.Sprintf(format, args...),
	}
	if _, err := m.store.InsertEvent(context.Background(), event); err != nil {
		logErrf("failed to record history: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
