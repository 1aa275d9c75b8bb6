package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// gridKeyMap defines the key bindings of the grid editor.
type gridKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Merge  key.Binding
	Split  key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k gridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Merge, k.Split, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k gridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Merge, k.Split},
		{k.Reset, k.Quit},
	}
}

func defaultGridKeyMap() gridKeyMap {
	return gridKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Merge:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge")),
		Split:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split")),
		Reset:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	cellStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	mergedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// gridModel is the Bubble Tea model of the interactive grid editor. All
// grid mutations go through the session; the model only holds the cursor
// and the outcome of the last operation.
type gridModel struct {
	session    GridSession
	gridWidth  float64
	gridHeight float64
	cursor     m.Coord
	status     string
	failed     bool
	keys       gridKeyMap
	help       help.Model
}

func newGridModel(session GridSession, gridWidth, gridHeight float64) gridModel {
	return gridModel{
		session:    session,
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		status:     "select cells, then merge or split",
		keys:       defaultGridKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (g gridModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (g gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.help.Width = msg.Width
		return g, nil
	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	return g, nil
}

func (g gridModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, g.keys.Quit):
		return g, tea.Quit
	case key.Matches(msg, g.keys.Up):
		if g.cursor.Row > 0 {
			g.cursor.Row--
		}
	case key.Matches(msg, g.keys.Down):
		if g.cursor.Row < g.session.Rows()-1 {
			g.cursor.Row++
		}
	case key.Matches(msg, g.keys.Left):
		if g.cursor.Col > 0 {
			g.cursor.Col--
		}
	case key.Matches(msg, g.keys.Right):
		if g.cursor.Col < g.session.Cols()-1 {
			g.cursor.Col++
		}
	case key.Matches(msg, g.keys.Toggle):
		g.applyResult(fmt.Sprintf("toggled (%d, %d)", g.cursor.Row, g.cursor.Col),
			g.session.ToggleSelection(g.cursor.Row, g.cursor.Col))
	case key.Matches(msg, g.keys.Merge):
		g.applyResult("cells merged", g.session.Merge())
	case key.Matches(msg, g.keys.Split):
		g.applyResult("cells split", g.session.Split())
	case key.Matches(msg, g.keys.Reset):
		g.session.Initialize(g.session.Rows(), g.session.Cols())
		g.applyResult("grid reset", nil)
	}

	return g, nil
}

// applyResult records the outcome of an operation for the status line.
func (g *gridModel) applyResult(success string, err error) {
	if err != nil {
		g.status = err.Error()
		g.failed = true

		return
	}

	g.status = success
	g.failed = false
}

// View implements tea.Model.
func (g gridModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Grid marker %dx%d", g.session.Rows(), g.session.Cols())))
	b.WriteString("\n\n")
	b.WriteString(g.renderCells())
	b.WriteString("\n")

	if g.failed {
		b.WriteString(failureStyle.Render(g.status))
	} else {
		b.WriteString(statusStyle.Render(g.status))
	}

	b.WriteString("\n")

	regions := g.session.Regions(g.gridWidth, g.gridHeight)
	merged := 0

	for _, region := range regions {
		if region.Merged {
			merged++
		}
	}

	b.WriteString(summaryStyle.Render(fmt.Sprintf("%d regions, %d merged, %d selected",
		len(regions), merged, len(g.session.Selected()))))
	b.WriteString("\n\n")
	b.WriteString(g.help.View(g.keys))
	b.WriteString("\n")

	return b.String()
}

func (g gridModel) renderCells() string {
	var b strings.Builder

	cells := g.session.Cells()

	for r, row := range cells {
		for c, state := range row {
			glyph := " . "

			switch {
			case g.session.IsSelected(r, c):
				glyph = " S "
			case state == m.CellMerged:
				glyph = " M "
			}

			style := cellStyle

			switch {
			case g.cursor.Row == r && g.cursor.Col == c:
				style = cursorStyle
			case g.session.IsSelected(r, c):
				style = selectedStyle
			case state == m.CellMerged:
				style = mergedStyle
			}

			b.WriteString(style.Render(glyph))

			if c < len(row)-1 {
				b.WriteString(" ")
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}
