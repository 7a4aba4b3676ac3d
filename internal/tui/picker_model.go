package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Ho-67/colorpick/internal/color"
	"github.com/Ho-67/colorpick/internal/palette"
)

// Focus targets, top to bottom in the layout
const (
	focusRed = iota
	focusGreen
	focusBlue
	focusHex
	focusCount
)

// How long the copy confirmation stays on screen before reverting
const copyFeedbackDuration = 800 * time.Millisecond

// Slider step sizes for plain and shifted arrow keys
const (
	sliderStep     = 1
	sliderStepBig  = 16
	sliderBarWidth = 32
)

// PickerModel is the TUI model for the interactive picker. It owns the
// color state; every mutation goes through a channel set or a hex parse so
// sliders and the hex field never disagree once input settles.
type PickerModel struct {
	width  int
	height int

	current color.Color
	focus   int

	// Hex field state
	hexInput textinput.Model
	verdict  color.Verdict

	// Copy feedback state
	copied  bool
	copyErr error

	rng *rand.Rand

	quitting bool
}

// copyResultMsg reports the outcome of an async clipboard write
type copyResultMsg struct {
	err error
}

// copyRevertMsg reverts the transient copy confirmation
type copyRevertMsg struct{}

// NewPickerModel creates a picker starting from the given color.
func NewPickerModel(start color.Color, rng *rand.Rand) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 16 // over-long input is flagged, not blocked
	ti.Width = 12
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	ti.SetValue(start.Hex())

	return PickerModel{
		current:  start,
		focus:    focusRed,
		hexInput: ti,
		verdict:  color.VerdictOK,
		rng:      rng,
	}
}

// Color returns the current color state.
func (m PickerModel) Color() color.Color {
	return m.current
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.copyErr = fmt.Errorf("clipboard write failed: %w", msg.err)
			return m, nil
		}
		m.copied = true
		m.copyErr = nil
		// A second copy inside the window restarts feedback; the stale
		// timer's revert is harmless (last timer wins).
		return m, tea.Tick(copyFeedbackDuration, func(time.Time) tea.Msg {
			return copyRevertMsg{}
		})

	case copyRevertMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)
		}

		if m.focus == focusHex {
			return m.updateHexInput(msg)
		}
		return m.handleSliderKey(msg)
	}

	if m.focus == focusHex {
		return m.updateHexInput(msg)
	}
	return m, nil
}

// moveFocus shifts focus by delta, wrapping around the four targets.
func (m PickerModel) moveFocus(delta int) (PickerModel, tea.Cmd) {
	leaving := m.focus
	m.focus = (m.focus + delta + focusCount) % focusCount

	if leaving == focusHex && m.focus != focusHex {
		// Leaving the hex field settles it: the text snaps back to the
		// canonical encoding of whatever the channels hold.
		m.hexInput.Blur()
		m.syncHexField()
	}
	if m.focus == focusHex {
		m.hexInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// handleSliderKey processes keys while one of the three sliders is focused.
func (m PickerModel) handleSliderKey(msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "left":
		return m.adjustChannel(m.focus, -sliderStep), nil
	case "right":
		return m.adjustChannel(m.focus, sliderStep), nil
	case "shift+left":
		return m.adjustChannel(m.focus, -sliderStepBig), nil
	case "shift+right":
		return m.adjustChannel(m.focus, sliderStepBig), nil

	case "r":
		m.current = m.current.SetChannel(m.focus, color.RandomChannel(m.rng))
		m.syncHexField()
		return m, nil

	case "R":
		// All three channels change before the single hex recompute.
		m.current = color.Random(m.rng)
		m.syncHexField()
		return m, nil

	case "c":
		return m, copyHexCmd(m.current.Hex())
	}
	return m, nil
}

// adjustChannel nudges the focused channel by delta, clamped to [0,255].
func (m PickerModel) adjustChannel(channel, delta int) PickerModel {
	m.current = m.current.SetChannel(channel, m.current.Channel(channel)+delta)
	m.syncHexField()
	return m
}

// syncHexField rewrites the hex field to the canonical encoding of the
// current channels and clears any error state.
func (m *PickerModel) syncHexField() {
	m.hexInput.SetValue(m.current.Hex())
	m.hexInput.CursorEnd()
	m.verdict = color.VerdictOK
}

// updateHexInput forwards a message to the text input and re-parses the
// field. A complete code updates the channels; a still-typing string leaves
// them alone; garbage flags the field without blocking further edits.
func (m PickerModel) updateHexInput(msg tea.Msg) (PickerModel, tea.Cmd) {
	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)

	parsed, verdict := color.ParseHex(m.hexInput.Value())
	m.verdict = verdict
	if verdict == color.VerdictOK {
		m.current = parsed
	}
	return m, cmd
}

// copyHexCmd writes hex to the system clipboard off the update loop. The
// result message carries no picker state, so edits made while the write is
// pending are unaffected.
func copyHexCmd(hex string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.WriteAll(hex)}
	}
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	left := m.renderControls()
	right := m.renderSwatchPanel()

	var content string
	if m.width < 72 {
		// Narrow terminal: stack the panels
		content = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitle(),
		content,
		m.renderStatusLine(),
		m.renderHelpBar(),
	)
}

// renderTitle renders the app title over the current color, with the label
// color chosen by the luminance threshold.
func (m PickerModel) renderTitle() string {
	titleStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.current.Hex())).
		Foreground(lipgloss.Color(m.current.LabelColor())).
		Bold(true).
		Padding(0, 2).
		MarginBottom(1)

	return titleStyle.Render("COLORPICK — " + m.current.Hex())
}

// renderControls renders the three sliders and the hex field.
func (m PickerModel) renderControls() string {
	var b strings.Builder

	labels := [3]string{"R", "G", "B"}
	tints := [3]string{ColorChannelRed, ColorChannelGreen, ColorChannelBlue}

	for i := 0; i < 3; i++ {
		b.WriteString(m.renderSlider(i, labels[i], tints[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHexField())

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// renderSlider renders one channel row: focus arrow, label, bar, readout.
func (m PickerModel) renderSlider(channel int, label, tint string) string {
	value := m.current.Channel(channel)
	filled := value * sliderBarWidth / 255

	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tint)).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBorder)).
			Render(strings.Repeat("░", sliderBarWidth-filled))

	arrow := "  "
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	if m.focus == channel {
		arrow = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Render("▶ ")
		labelStyle = labelStyle.
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true)
	}

	readout := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Render(fmt.Sprintf("%3d", value))

	return fmt.Sprintf("%s%s %s %s", arrow, labelStyle.Render(label), bar, readout)
}

// renderHexField renders the hex input with its validity state.
func (m PickerModel) renderHexField() string {
	arrow := "  "
	if m.focus == focusHex {
		arrow = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Render("▶ ")
	}

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render("HEX")

	status := ""
	switch m.verdict {
	case color.VerdictError:
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			Render("  ✗ invalid")
	case color.VerdictTyping:
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true).
			Render("  …")
	}

	return fmt.Sprintf("%s%s %s%s", arrow, label, m.hexInput.View(), status)
}

// renderSwatchPanel renders the live preview and the harmony strip.
func (m PickerModel) renderSwatchPanel() string {
	cf := colorful.Color{
		R: float64(m.current.R) / 255,
		G: float64(m.current.G) / 255,
		B: float64(m.current.B) / 255,
	}
	h, s, l := cf.Hsl()

	info := strings.Join([]string{
		m.current.Hex(),
		m.current.RGB(),
		fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100),
		fmt.Sprintf("luminance %.1f", m.current.Luminance()),
	}, "\n")

	swatchStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.current.Hex())).
		Foreground(lipgloss.Color(m.current.LabelColor())).
		Width(26).
		Padding(1, 2)

	swatch := swatchStyle.Render(info)

	strip := m.renderHarmonyStrip()

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, swatch, strip))
}

// renderHarmonyStrip renders shade blocks plus the complement.
func (m PickerModel) renderHarmonyStrip() string {
	var b strings.Builder
	for _, shade := range palette.Shades(m.current, 6) {
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(shade.Hex())).
			Render("   "))
	}
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().
		Background(lipgloss.Color(palette.Complement(m.current).Hex())).
		Render("   "))
	return b.String()
}

// renderStatusLine renders copy feedback and clipboard errors.
func (m PickerModel) renderStatusLine() string {
	switch {
	case m.copyErr != nil:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("✗ " + m.copyErr.Error())
	case m.copied:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true).
			Render("✓ copied " + m.current.Hex())
	}
	return ""
}

// renderHelpBar renders the help bar at the bottom.
func (m PickerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	helpText := "tab/↑↓ focus · ←/→ adjust · shift+←/→ ±16 · r randomize · R randomize all · c copy · q quit"

	return helpStyle.Render(helpText)
}
