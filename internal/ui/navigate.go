package ui

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/screens"
)

// loadedMsg carries a drill-down document back to the entry that asked for it.
type loadedMsg struct {
	tab   tabID
	token document.LoadToken
	doc   document.Document
	err   error
}

// open pushes the screen a target points at and returns the command that
// fetches its data. Targets that no longer match the data on screen are
// dropped without feedback.
func (m *Model) open(target document.Target) tea.Cmd {
	t := m.currentTab()
	client := m.client
	switch target.Kind {
	case screens.TargetGame:
		if t.stack.Empty() && t.id == tabScores {
			if _, ok := screens.ResolveGame(m.scoresBoard(), target); !ok {
				m.logger.Debug("ignoring stale game selection", zap.String("game", target.Key))
				return nil
			}
		}
		id, err := strconv.ParseInt(target.Key, 10, 64)
		if err != nil {
			return nil
		}
		return m.push(t, screens.BoxscoreDocument{GameID: id}, func(ctx context.Context) (document.Document, error) {
			box, err := client.FetchBoxscore(ctx, id)
			return screens.BoxscoreDocument{GameID: id, Box: box, Err: err}, err
		})

	case screens.TargetTeam:
		abbrev := target.Key
		name := m.teamName(abbrev)
		return m.push(t, screens.TeamDocument{Abbrev: abbrev, Name: name}, func(ctx context.Context) (document.Document, error) {
			stats, err := client.FetchClubStats(ctx, abbrev)
			return screens.TeamDocument{Abbrev: abbrev, Name: name, Stats: stats, Err: err}, err
		})

	case screens.TargetRoster:
		e, ok := t.stack.Top()
		if !ok {
			return nil
		}
		team, ok := e.Document().(screens.TeamDocument)
		if !ok {
			return nil
		}
		p, ok := screens.ResolveRosterSelection(team.Stats, target)
		if !ok {
			m.logger.Debug("ignoring stale roster selection", zap.String("player", target.Key), zap.Int("index", target.Index))
			return nil
		}
		return m.openPlayer(t, p.ID)

	case screens.TargetPlayer:
		id, err := strconv.ParseInt(target.Key, 10, 64)
		if err != nil {
			return nil
		}
		return m.openPlayer(t, id)
	}
	return nil
}

func (m *Model) openPlayer(t *tab, id int64) tea.Cmd {
	client := m.client
	return m.push(t, screens.PlayerDocument{PlayerID: id}, func(ctx context.Context) (document.Document, error) {
		player, err := client.FetchPlayer(ctx, id)
		return screens.PlayerDocument{PlayerID: id, Player: player, Err: err}, err
	})
}

// push shows placeholder immediately and fetches the real document in the
// background under a fresh load token.
func (m *Model) push(t *tab, placeholder document.Document, fetch func(context.Context) (document.Document, error)) tea.Cmd {
	t.stack.Push(placeholder, document.FocusFirst)
	if m.client == nil {
		return nil
	}
	token, ok := t.stack.BeginLoad()
	if !ok {
		return nil
	}
	parent, tabID := m.ctx, t.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, FetchTimeout)
		defer cancel()
		doc, err := fetch(ctx)
		return loadedMsg{tab: tabID, token: token, doc: doc, err: err}
	}
}

func (m *Model) handleLoaded(msg loadedMsg) {
	if int(msg.tab) < 0 || int(msg.tab) >= len(m.tabs) {
		return
	}
	entry, ok := m.tabs[msg.tab].stack.FinishLoad(msg.token)
	if !ok {
		m.logger.Debug("discarding stale load", zap.Uint64("token", uint64(msg.token)))
		return
	}
	if msg.err != nil {
		m.logger.Warn("load failed", zap.String("screen", msg.doc.Title()), zap.Error(msg.err))
	}
	entry.Refresh(msg.doc)
}

func (m Model) teamName(abbrev string) string {
	for _, s := range m.snapshot.Standings {
		if s.Abbrev() == abbrev {
			return s.TeamName.String()
		}
	}
	return abbrev
}
