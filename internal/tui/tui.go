package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ho-67/colorpick/internal/color"
)

// RunPickerTUI starts the interactive picker and prints the final color
// after the program exits.
func RunPickerTUI(start color.Color) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	model := NewPickerModel(start, rng)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(PickerModel); ok {
		c := m.Color()
		fmt.Printf("🎨 %s · %s\n", c.Hex(), c.RGB())
	}

	return nil
}
