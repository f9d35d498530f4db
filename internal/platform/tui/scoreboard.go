package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eduarcade/internal/registry"
	"github.com/vovakirdan/eduarcade/internal/storage"
)

const boardRounds = 50

var (
	boardAccent = lipgloss.Color("30")
	boardRule   = lipgloss.Color("238")

	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type boardKeys struct {
	Scroll key.Binding
	Prev   key.Binding
	Next   key.Binding
	Mine   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Mine, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Prev, k.Next}, {k.Mine, k.Back, k.Quit}}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("up/down", "scroll")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev game")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("left/right", "game")),
		Mine:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "my rounds")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded rounds per game. Scored games are ranked
// by points. Games without a score rank completed rounds by fewest attempts.
// Pressing p narrows the board to the current player's rounds.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	store   *storage.Store
	player  string
	mine    bool

	rounds []storage.Result
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   boardKeys

	width, height int
	quitting      bool
	goingBack     bool
	quitOnBack    bool
}

// NewScoreboardModel creates a scoreboard opened on the first game. player
// is the name used by the "my rounds" filter; empty means guest rounds.
func NewScoreboardModel(store *storage.Store, width, height int, player string) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		player: player,
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m ScoreboardModel) game() registry.GameInfo {
	if len(m.games) == 0 {
		return registry.GameInfo{Title: "no games", Scored: true}
	}
	return m.games[m.current]
}

// reload reads rounds and totals for the current game and view, then
// rebuilds the table around them.
func (m *ScoreboardModel) reload() {
	g := m.game()
	m.rounds, m.stats = nil, nil

	if m.store != nil && g.ID != "" {
		q := storage.BoardQuery{
			GameID:     g.ID,
			Player:     m.player,
			Mine:       m.mine,
			ByAttempts: !g.Scored,
			Limit:      boardRounds,
		}
		if rounds, err := m.store.Board(q); err == nil {
			m.rounds = rounds
		}
		var stats *storage.GameStats
		var err error
		if m.mine {
			stats, err = m.store.PlayerStats(g.ID, m.player)
		} else {
			stats, err = m.store.GameStats(g.ID)
		}
		if err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}

	m.table = m.buildTable()
}

func (m ScoreboardModel) buildTable() table.Model {
	scored := m.game().Scored

	columns := []table.Column{{Title: "Rank", Width: 5}}
	if scored {
		columns = append(columns, table.Column{Title: "Score", Width: 6})
	}
	columns = append(columns,
		table.Column{Title: "Tries", Width: 6},
		table.Column{Title: "Result", Width: 9},
		table.Column{Title: "Player", Width: 14},
		table.Column{Title: "Date", Width: 13},
	)

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		row := table.Row{"#" + strconv.Itoa(i+1)}
		if scored {
			row = append(row, strconv.Itoa(r.Score))
		}
		row = append(row,
			strconv.Itoa(r.Attempts),
			resultLabel(r.Completed),
			playerLabel(r.Player),
			r.CreatedAt.Format("Jan 02 15:04"),
		)
		rows[i] = row
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	t.SetStyles(boardTableStyles())
	return t
}

// boardTableStyles underlines the header and marks the selected round in
// the board accent.
func boardTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(boardAccent).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(boardRule)
	s.Selected = boardTitleStyle.Background(boardAccent)
	return s
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.quitOnBack {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			m.mine = !m.mine
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	g := m.game()
	heading := "TOP SCORES"
	if !g.Scored {
		heading = "FEWEST TRIES"
	}
	scope := "everyone"
	if m.mine {
		scope = playerLabel(m.player)
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(fmt.Sprintf("%s - %s", heading, g.Title), m.width)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(centerText("Showing rounds by "+scope, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.rounds) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 2).
			Render("No rounds recorded yet.\nFinish a round to get on the board!")
	}
	frame := lipgloss.NewStyle().Padding(0, 1).
		Border(lipgloss.RoundedBorder()).BorderForeground(boardRule)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frame.Render(body)))
	b.WriteString("\n")

	if line := m.summary(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists every game with the current one highlighted, or just the
// current one between arrows when the row would not fit.
func (m ScoreboardModel) tabs() string {
	active := boardTitleStyle.Background(boardAccent).Padding(0, 1)

	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			parts[i] = active.Render(g.Title)
		} else {
			parts[i] = boardDimStyle.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.game().Title)
	}
	return line
}

func (m ScoreboardModel) summary() string {
	st := m.stats
	if st == nil {
		return ""
	}
	line := fmt.Sprintf("Played %d  |  Completed %d", st.GamesCount, st.Completed)
	if m.game().Scored {
		return line + fmt.Sprintf("  |  Best %d  |  Average %.1f", st.HighScore, st.AvgScore)
	}
	if st.BestTries > 0 {
		line += fmt.Sprintf("  |  Fewest tries %d", st.BestTries)
	}
	return line
}

// SelectGame moves the scoreboard to the given game, if it is listed.
func (m *ScoreboardModel) SelectGame(gameID string) {
	for i, g := range m.games {
		if g.ID == gameID {
			m.current = i
			m.reload()
			return
		}
	}
}

func playerLabel(name string) string {
	if name == "" {
		return "guest"
	}
	return name
}

func resultLabel(completed bool) string {
	if completed {
		return "completed"
	}
	return "ended"
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own, opened on gameID when it is
// set. Returns true if the user pressed back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, gameID, player string) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, player)
	model.quitOnBack = true
	if gameID != "" {
		model.SelectGame(gameID)
	}

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
