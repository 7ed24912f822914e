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

	"github.com/vovakirdan/entity-arcade/internal/registry"
	"github.com/vovakirdan/entity-arcade/internal/storage"
)

// runLimit caps the sessions loaded per game and ranking.
const runLimit = 100

// Ranking selects which sessions the scoreboard lists.
type Ranking int

const (
	RankByScore Ranking = iota // Best scores
	RankByTicks                // Longest sessions
)

func (r Ranking) String() string {
	if r == RankByTicks {
		return "longest runs"
	}
	return "best scores"
}

type scoreboardKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Rank       key.Binding
	Help       key.Binding
	Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Rank, k.Help, k.Back}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Rank},
		{k.Help, k.Back, k.Quit},
	}
}

var defaultScoreboardKeys = scoreboardKeys{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
	Rank: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scores/runs")),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var runColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 8},
	{Title: "Ticks", Width: 8},
	{Title: "Pts/100t", Width: 9},
	{Title: "Session", Width: 10},
	{Title: "Played", Width: 12},
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel lists recorded sessions for one game at a time.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	game    int
	ranking Ranking
	runs    []storage.ScoreEntry
	stats   *storage.GameStats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on the first registered game,
// ranked by score. A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	m := ScoreboardModel{
		store: store,
		games: registry.List(),
		table: table.New(
			table.WithColumns(runColumns),
			table.WithFocused(true),
			table.WithStyles(styles),
		),
		help:   help.New(),
		keys:   defaultScoreboardKeys,
		width:  width,
		height: height,
	}
	m.resize()
	m.reload()
	return m
}

func (m *ScoreboardModel) resize() {
	// Title, tabs, panel border, detail, stats and help lines
	m.table.SetHeight(max(m.height-12, 3))
	m.help.Width = m.width
}

// reload fetches the current game's runs in the current ranking.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.game].ID
		fetch := m.store.TopScores
		if m.ranking == RankByTicks {
			fetch = m.store.LongestRuns
		}
		if runs, err := fetch(id, runLimit); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			pace(r),
			shortSession(r.SessionID),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// pace is the score earned per hundred ticks.
func pace(r storage.ScoreEntry) string {
	if r.Ticks <= 0 {
		return "-"
	}
	return strconv.FormatFloat(float64(r.Score)*100/float64(r.Ticks), 'f', 1, 64)
}

func shortSession(id string) string {
	switch {
	case id == "":
		return "-"
	case len(id) > 8:
		return id[:8]
	}
	return id
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
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Rank):
			m.ranking = 1 - m.ranking
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) selectGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + step + len(m.games)) % len(m.games)
	m.reload()
}

// Selected returns the highlighted run, if any.
func (m ScoreboardModel) Selected() (storage.ScoreEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.ScoreEntry{}, false
	}
	return m.runs[i], true
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(m.ranking.String()), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")

	if len(m.runs) == 0 {
		b.WriteString(centerText(panelStyle.Render(dimStyle.Italic(true).Render("No sessions recorded yet.")), m.width))
	} else {
		b.WriteString(centerText(panelStyle.Render(m.table.View()), m.width))
	}
	b.WriteString("\n")

	if r, ok := m.Selected(); ok {
		detail := fmt.Sprintf("session %s  |  %d points in %d ticks", r.SessionID, r.Score, r.Ticks)
		b.WriteString(dimStyle.Render(centerText(detail, m.width)))
		b.WriteString("\n")
	}
	if s := m.stats; s != nil && s.GamesCount > 0 {
		line := fmt.Sprintf("%d sessions  |  best %d  |  avg %.1f  |  longest %d ticks  |  last %s",
			s.GamesCount, s.HighScore, s.AvgScore, s.LongestRun, s.LastPlayed.Format("Jan 02 15:04"))
		b.WriteString(statusStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists every game, highlighting the current one. When the strip
// does not fit only the current game is shown.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return dimStyle.Render("no games registered")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	strip := strings.Join(parts, " ")
	if m.width > 0 && lipgloss.Width(strip) > m.width {
		strip = activeTabStyle.Render("< " + m.games[m.game].Title + " >")
	}
	return strip
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard full screen and reports whether the
// user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
