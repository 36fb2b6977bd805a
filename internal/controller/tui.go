package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/rhessysweb/patchflow/internal/model"
)

// TUI implements Editor with a Bubble Tea program.
type TUI struct {
	input   io.Reader
	output  io.Writer
	options []tea.ProgramOption
}

// NewTUI creates a new TUI reading keys from input and drawing to output.
func NewTUI(input io.Reader, output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{input: input, output: output, options: options}
}

// Edit runs the editor until the user quits. Gamma edits go straight into
// table; save is called on demand.
func (t *TUI) Edit(table *m.FlowTable, save SaveFunc) error {
	return t.run(newEditorModel(table, save))
}

func (t *TUI) run(model tea.Model) error {
	opts := append([]tea.ProgramOption{
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	}, t.options...)

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	return nil
}
