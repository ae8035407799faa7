package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

const helpText = "←/→/↑/↓ move • enter activate • q quit"

type cellPosition struct {
	row    int
	column int
}

// Model is the bubbletea model hosting a single view tree.
// Arrow keys move the focus between regions; enter or space activates it.
type Model struct {
	root    *view.Node
	styles  Styles
	regions []*view.Node
	rows    [][]int
	where   map[int]cellPosition
	focus   int
}

// Ensure Model implements tea.Model.
var _ tea.Model = Model{}

func New(root *view.Node) Model {
	regions := view.Regions(root)

	index := make(map[*view.Node]int, len(regions))
	for i, region := range regions {
		index[region] = i
	}

	var rows [][]int
	where := make(map[int]cellPosition, len(regions))

	view.Walk(root, func(node *view.Node, _ int) bool {
		if node.Kind != view.KindStack || node.Attr(view.AttrDirection) != view.DirectionRow {
			return true
		}

		var row []int
		for _, child := range node.Children {
			if i, ok := index[child]; ok {
				where[i] = cellPosition{row: len(rows), column: len(row)}
				row = append(row, i)
			}
		}

		if len(row) > 0 {
			rows = append(rows, row)
		}

		return true
	})

	return Model{
		root:    root,
		styles:  DefaultStyles(),
		regions: regions,
		rows:    rows,
		where:   where,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Focus - index of the highlighted region.
func (m Model) Focus() int {
	return m.focus
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "tab":
		m.move(1)
	case "left", "h", "shift+tab":
		m.move(-1)
	case "down", "j":
		m.vertical(1)
	case "up", "k":
		m.vertical(-1)
	case "enter", " ":
		m.activate()
	}

	return m, nil
}

func (m Model) View() string {
	return Render(m.root, m.styles, m.focus) + "\n" + m.styles.Help.Render(helpText) + "\n"
}

func (m *Model) move(delta int) {
	if len(m.regions) == 0 {
		return
	}

	m.focus = (m.focus + delta + len(m.regions)) % len(m.regions)
}

func (m *Model) vertical(delta int) {
	current, ok := m.where[m.focus]
	if !ok {
		m.move(delta)
		return
	}

	target := current.row + delta
	if target < 0 || target >= len(m.rows) {
		return
	}

	row := m.rows[target]
	column := min(current.column, len(row)-1)
	m.focus = row[column]
}

func (m *Model) activate() {
	if m.focus >= len(m.regions) {
		return
	}

	if region := m.regions[m.focus]; region.Interactive() {
		region.OnActivate()
	}
}
