package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/logtail"
	"github.com/five82/faceoff/internal/nhl"
	"github.com/five82/faceoff/internal/screens"
)

type tabID int

const (
	tabScores tabID = iota
	tabStandings
	tabLog
)

// tab is one top-level screen: a base view fed from the poller plus the
// drill-down stack opened from it.
type tab struct {
	id     tabID
	name   string
	base   *document.View
	stack  *document.Stack
	seeded bool
}

func newTabs() []*tab {
	names := []string{"Scores", "Standings", "Log"}
	tabs := make([]*tab, len(names))
	for i, name := range names {
		tabs[i] = &tab{
			id:    tabID(i),
			name:  name,
			base:  document.NewView(1),
			stack: document.NewStack(1),
		}
	}
	return tabs
}

// tabByName maps a start_tab preference onto a tab, defaulting to Scores.
func tabByName(name string) tabID {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standings":
		return tabStandings
	case "log":
		return tabLog
	default:
		return tabScores
	}
}

// view returns the top of the stack, or the base view when the stack is empty.
func (t *tab) view() *document.View {
	if e, ok := t.stack.Top(); ok {
		return e.View()
	}
	return t.base
}

func (m Model) currentTab() *tab {
	return m.tabs[m.active]
}

// rebuildBases refreshes every base document from the current data. Focus
// and scroll survive through View.Rebuild; a base view is seeded with its
// initial focus the first time it has something to focus.
func (m *Model) rebuildBases() {
	m.tabs[tabScores].base.Rebuild(m.scoresDocument())
	m.tabs[tabStandings].base.Rebuild(screens.StandingsDocument{
		Standings: m.snapshot.Standings,
		Favorite:  m.config.FavoriteTeam,
		Err:       baseError(m.snapshot.HasStandings, m.snapshot.LastError),
	})
	m.refreshLog()

	for _, t := range m.tabs {
		if t.seeded || t.base.FocusCount() == 0 {
			continue
		}
		t.seeded = true
		if t.id == tabStandings && m.config.FavoriteTeam != "" && t.base.FocusByID("team-"+m.config.FavoriteTeam) {
			continue
		}
		t.base.FocusFirst()
	}
}

// baseError only surfaces a poll failure while there is no data to show.
func baseError(has bool, err error) error {
	if has {
		return nil
	}
	return err
}

func (m *Model) refreshLog() {
	entries, err := logtail.ReadEntries(m.config.LogFile, LogTailLines)
	m.tabs[tabLog].base.Rebuild(screens.LogDocument{Path: m.config.LogFile, Entries: entries, Err: err})
}

// dayState is the scoreboard the Scores tab shows when the user has moved
// off today. An empty date follows the poller.
type dayState struct {
	date    string
	board   nhl.Scoreboard
	err     error
	loading bool
	request uint64
}

func (m Model) scoresBoard() nhl.Scoreboard {
	if m.day.date != "" {
		return m.day.board
	}
	return m.snapshot.Scores
}

func (m Model) scoresDocument() screens.ScoresDocument {
	if m.day.date != "" {
		return screens.ScoresDocument{Board: m.day.board, Location: m.location, Err: m.day.err, Loading: m.day.loading}
	}
	return screens.ScoresDocument{
		Board:    m.snapshot.Scores,
		Location: m.location,
		Err:      baseError(m.snapshot.HasScores, m.snapshot.LastError),
		Loading:  !m.snapshot.HasScores && m.snapshot.LastError == nil,
	}
}

type dayLoadedMsg struct {
	request uint64
	board   nhl.Scoreboard
	err     error
}

// changeDay moves the Scores tab one day back or forward. Only the newest
// request is applied when responses arrive out of order.
func (m *Model) changeDay(forward bool) tea.Cmd {
	t := m.currentTab()
	if t.id != tabScores || !t.stack.Empty() {
		return nil
	}
	board := m.scoresBoard()
	date := board.PrevDate
	if forward {
		date = board.NextDate
	}
	if date == "" {
		date = adjacentDate(board.CurrentDate, forward)
	}
	if date == "" {
		return nil
	}

	m.day.request++
	if m.snapshot.HasScores && date == m.snapshot.Scores.CurrentDate {
		m.day = dayState{request: m.day.request}
		m.rebuildScores()
		return nil
	}
	m.day.date = date
	m.day.board = nhl.Scoreboard{CurrentDate: date}
	m.day.err = nil
	m.day.loading = true
	m.rebuildScores()

	request := m.day.request
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
		defer cancel()
		board, err := client.FetchScores(ctx, date)
		return dayLoadedMsg{request: request, board: board, err: err}
	}
}

// adjacentDate steps a YYYY-MM-DD date by one day; "" when it cannot parse.
func adjacentDate(date string, forward bool) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	if forward {
		return t.AddDate(0, 0, 1).Format(time.DateOnly)
	}
	return t.AddDate(0, 0, -1).Format(time.DateOnly)
}

func (m *Model) handleDayLoaded(msg dayLoadedMsg) {
	if msg.request != m.day.request || m.day.date == "" {
		m.logger.Debug("discarding stale scoreboard", zap.Uint64("request", msg.request))
		return
	}
	m.day.loading = false
	m.day.err = msg.err
	if msg.err != nil {
		m.logger.Warn("scoreboard fetch failed", zap.String("date", m.day.date), zap.Error(msg.err))
	} else {
		m.day.board = msg.board
	}
	m.rebuildScores()
}

// rebuildScores rebuilds the Scores base after a day switch, focusing the
// first game when the previous focus did not survive.
func (m *Model) rebuildScores() {
	base := m.tabs[tabScores].base
	base.Rebuild(m.scoresDocument())
	if _, ok := base.Focused(); !ok {
		base.FocusFirst()
	}
}
