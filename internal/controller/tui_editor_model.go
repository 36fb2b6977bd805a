package controller

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rhessysweb/patchflow/internal/domain/flowtableio"
	m "github.com/rhessysweb/patchflow/internal/model"
)

const gammaStep = 0.01

type focusPane int

const (
	focusPatches focusPane = iota
	focusReceivers
)

type savedMsg struct {
	err error
}

type patchItem struct {
	id  m.FQPatchID
	rec *m.Record
}

func (p patchItem) FilterValue() string {
	return p.id.String()
}

// patchDelegate renders one patch per line: id, receiver count and gamma sum.
type patchDelegate struct{}

func (d patchDelegate) Height() int  { return 1 }
func (d patchDelegate) Spacing() int { return 0 }
func (d patchDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d patchDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	p, ok := item.(patchItem)
	if !ok {
		return
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if index == lm.Index() {
		idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	mark := " "
	if gammaMismatch(p.rec) {
		mark = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("!")
	}

	info := fmt.Sprintf("%2d recv  Σ %.4f", len(p.rec.Receivers), p.rec.ReceiverGammaSum())
	width := lm.Width() - lipgloss.Width(info) - 4

	_, _ = fmt.Fprintf(w, "%s %s  %s",
		mark,
		idStyle.Render(truncateToWidth(p.id.String(), width)),
		infoStyle.Render(info),
	)
}

func gammaMismatch(rec *m.Record) bool {
	if len(rec.Receivers) == 0 {
		return false
	}

	gap := rec.Entry.TotalGamma - rec.ReceiverGammaSum()
	if rec.Entry.IsRoad() && gap > 0 {
		return false
	}

	return math.Abs(gap) > flowtableio.DefaultGammaTolerance
}

// editorModel browses patches on the left and edits the receivers of the
// selected patch on the right.
type editorModel struct {
	table   *m.FlowTable
	save    SaveFunc
	patches list.Model

	focus       focusPane
	cursor      int
	dirty       bool
	confirmQuit bool
	saving      bool
	status      string

	width  int
	height int
}

func newEditorModel(table *m.FlowTable, save SaveFunc) editorModel {
	items := make([]list.Item, 0, table.Len())

	_ = table.Each(func(id m.FQPatchID, rec *m.Record) error {
		items = append(items, patchItem{id: id, rec: rec})
		return nil
	})

	patches := list.New(items, patchDelegate{}, 40, 20)
	patches.SetShowPagination(false)
	patches.SetShowHelp(false)
	patches.SetShowTitle(false)
	patches.SetShowStatusBar(false)
	patches.FilterInput.Placeholder = "Filter by patch…"

	return editorModel{
		table:   table,
		save:    save,
		patches: patches,
		width:   80,
		height:  24,
	}
}

func (em editorModel) Init() tea.Cmd {
	return nil
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.height = msg.Height

		return em, nil

	case savedMsg:
		em.saving = false
		if msg.err != nil {
			em.status = "save failed: " + msg.err.Error()
		} else {
			em.dirty = false
			em.status = "saved"
		}

		return em, nil

	case tea.KeyMsg:
		return em.handleKey(msg)
	}

	return em, nil
}

func (em editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return em, tea.Quit
	}

	if em.patches.FilterState() == list.Filtering {
		var cmd tea.Cmd
		em.patches, cmd = em.patches.Update(msg)

		return em, cmd
	}

	if key != "q" {
		em.confirmQuit = false
	}

	switch key {
	case "q":
		if em.dirty && !em.confirmQuit {
			em.confirmQuit = true
			em.status = "unsaved changes: press q again to discard, s to save"

			return em, nil
		}

		return em, tea.Quit
	case "s":
		return em.startSave()
	}

	if em.focus == focusReceivers {
		return em.handleReceiverKey(key), nil
	}

	switch key {
	case "enter", "right", "l":
		if rec := em.selected(); rec != nil && len(rec.Receivers) > 0 {
			em.focus = focusReceivers
			em.cursor = 0
			em.status = ""
		}

		return em, nil
	}

	var cmd tea.Cmd
	em.patches, cmd = em.patches.Update(msg)

	return em, cmd
}

func (em editorModel) handleReceiverKey(key string) editorModel {
	rec := em.selected()
	if rec == nil || len(rec.Receivers) == 0 {
		em.focus = focusPatches
		return em
	}

	switch key {
	case "esc", "left", "h":
		em.focus = focusPatches
	case "up", "k":
		if em.cursor > 0 {
			em.cursor--
		}
	case "down", "j":
		if em.cursor < len(rec.Receivers)-1 {
			em.cursor++
		}
	case "+", "=", "-", "_", "r":
		if em.saving {
			em.status = "save in progress: edits are locked"
			return em
		}

		return em.edit(rec, key)
	}

	return em
}

// edit applies a gamma change. The table is only written while no save is
// running, so the save command never reads a receiver that is being edited.
func (em editorModel) edit(rec *m.Record, key string) editorModel {
	switch key {
	case "+", "=":
		em = em.nudge(rec, gammaStep)
	case "-", "_":
		em = em.nudge(rec, -gammaStep)
	case "r":
		if err := flowtableio.Rebalance(em.table, rec.Entry.ID()); err != nil {
			em.status = err.Error()
		} else {
			em.dirty = true
			em.status = fmt.Sprintf("rebalanced %s", rec.Entry.ID())
		}
	}

	return em
}

func (em editorModel) nudge(rec *m.Record, delta float64) editorModel {
	r := rec.Receivers[em.cursor]

	// Round to the step to keep repeated nudges from drifting.
	g := math.Round((r.Gamma+delta)/gammaStep) * gammaStep
	if g < 0 {
		g = 0
	}

	r.Gamma = g
	em.dirty = true
	em.status = ""

	return em
}

func (em editorModel) startSave() (tea.Model, tea.Cmd) {
	if em.save == nil || em.saving {
		return em, nil
	}

	em.saving = true
	em.status = "saving…"

	save, table := em.save, em.table

	return em, func() tea.Msg {
		return savedMsg{err: save(table)}
	}
}

func (em editorModel) selected() *m.Record {
	item, ok := em.patches.SelectedItem().(patchItem)
	if !ok {
		return nil
	}

	return item.rec
}

func (em editorModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	title := titleStyle.Render(fmt.Sprintf("Flow table editor  %d patches", em.table.Len()))
	if em.dirty {
		title += lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("  [modified]")
	}

	listWidth := em.width/2 - 4
	if listWidth < 20 {
		listWidth = 20
	}

	listHeight := em.height - 8
	if listHeight < 5 {
		listHeight = 5
	}

	em.patches.SetWidth(listWidth)
	em.patches.SetHeight(listHeight)

	patchBorder := lipgloss.Color("8")
	recvBorder := lipgloss.Color("8")

	if em.focus == focusPatches {
		patchBorder = lipgloss.Color("6")
	} else {
		recvBorder = lipgloss.Color("6")
	}

	left := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(patchBorder).
		Padding(0, 1).
		Render(em.patches.View())

	right := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(recvBorder).
		Padding(0, 1).
		Width(listWidth).
		Render(em.renderReceivers())

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 2).
		Render("↑/↓ move • enter receivers • +/- gamma • r rebalance • s save • / filter • q quit")

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 2).Render(em.status)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		status,
		footer,
	)
}

func (em editorModel) renderReceivers() string {
	rec := em.selected()
	if rec == nil {
		return "no patch selected"
	}

	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s  total gamma %.6f", rec.Entry.ID(), rec.Entry.TotalGamma))
	lines := []string{header}

	if len(rec.Receivers) == 0 {
		lines = append(lines, "no receivers")
	}

	selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))

	for i, r := range rec.Receivers {
		line := fmt.Sprintf("%-18s %.8f", r.ID, r.Gamma)
		if em.focus == focusReceivers && i == em.cursor {
			line = selected.Render(line)
		}

		lines = append(lines, line)
	}

	lines = append(lines, fmt.Sprintf("%-18s %.8f", "sum", rec.ReceiverGammaSum()))

	if rec.Road != nil {
		lines = append(lines, fmt.Sprintf("road → %s width %.2f", rec.Road.Stream, rec.Road.RoadWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
