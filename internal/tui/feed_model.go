package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/diff"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/models"
)

// rows taken by everything around the list: header, nav bar, status, help
const chromeHeight = 12

var writeClipboard = clipboard.WriteAll

// feedModel mirrors the controller's collection. It never reads the
// collection back after start: every change arrives as an edit script and is
// applied to the local copy, the same way a list widget would be patched.
type feedModel struct {
	ctx       context.Context
	navigator service.Navigator
	app       config.ClientApp
	buildInfo models.AppBuildInfo
	sessionID string

	items   []models.Item
	idx     int
	nav     models.NavigationState
	pending int
	spinner spinner.Model
	help    help.Model
	height  int

	status        string
	failure       *models.SyncFailure
	detail        bool
	showHistory   bool
	history       []models.JournalEntry
	historyErr    error
	showBuildInfo bool
}

// newFeedModel counts the initial reload issued by Init as pending.
func newFeedModel(ctx context.Context, navigator service.Navigator, app config.ClientApp, buildInfo models.AppBuildInfo, sessionID string) feedModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return feedModel{
		ctx:       ctx,
		navigator: navigator,
		app:       app,
		buildInfo: buildInfo,
		sessionID: sessionID,
		nav:       navigator.Navigation(),
		pending:   1,
		spinner:   s,
		help:      help.New(),
	}
}

func (m feedModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.navigate(models.Reload))
}

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case syncRenderedMsg:
		m.applyUpdate(msg.update)
		return m, nil
	case syncFailedMsg:
		failure := msg.failure
		m.failure = &failure
		m.status = ""
		return m, nil
	case navRejectedMsg:
		m.status = rejectionMessage(msg.rejected)
		return m, nil
	case navDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		if text, ok := navigationError(msg.err); ok {
			m.status = text
		}
		if m.showHistory {
			return m, m.loadHistory()
		}
		return m, nil
	case historyLoadedMsg:
		m.history, m.historyErr = msg.entries, msg.err
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m feedModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.detail {
		switch {
		case key.Matches(msg, keys.esc, keys.enter):
			m.detail = false
		case key.Matches(msg, keys.copy):
			cmd := m.copyImageRef()
			return m, cmd
		}
		return m, nil
	}

	if m.failure != nil {
		switch {
		case key.Matches(msg, keys.esc):
			m.failure = nil
		case key.Matches(msg, keys.reload):
			nav := m.failure.Navigation
			m.failure = nil
			cmd := m.start(m.navigate(nav))
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.history):
		m.showHistory = !m.showHistory
		if m.showHistory {
			cmd = m.loadHistory()
		}
	case key.Matches(msg, keys.esc):
		m.showHistory = false
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		if m.reachedEnd() {
			cmd = m.start(m.navigate(models.LoadMore))
		}
	case key.Matches(msg, keys.prev):
		cmd = m.start(m.navigate(models.GoPrevious))
	case key.Matches(msg, keys.next):
		cmd = m.start(m.navigate(models.GoNext))
	case key.Matches(msg, keys.reload):
		cmd = m.start(m.navigate(models.Reload))
	case key.Matches(msg, keys.loadMore):
		cmd = m.start(m.navigate(models.LoadMore))
	case key.Matches(msg, keys.enter):
		cmd = m.activate()
	case key.Matches(msg, keys.copy):
		cmd = m.copyImageRef()
	}

	return m, cmd
}

// applyUpdate patches the local rows with the script. A script that does not
// fit means the mirror drifted, in which case it is rebuilt from the
// controller's snapshot.
func (m *feedModel) applyUpdate(u models.SyncUpdate) {
	items, err := diff.Apply(m.items, u.EditScript)
	if err != nil {
		items = m.navigator.Snapshot()
	}
	m.items = items
	m.nav = u.State
	m.failure = nil

	if u.Navigation == models.GoPrevious || u.Navigation == models.GoNext {
		m.idx = 0
	}
	m.clampSelection()

	counts := u.EditScript.Counts()
	if u.EditScript.Empty() {
		m.status = fmt.Sprintf("Страница %d: без изменений", u.State.Page)
		return
	}
	m.status = fmt.Sprintf("Страница %d: +%d ~%d -%d", u.State.Page, counts.Inserts, counts.Updates, counts.Removes)
}

func (m *feedModel) clampSelection() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// reachedEnd reports whether the selection sits on the last row and infinite
// scroll should pull in the next page.
func (m feedModel) reachedEnd() bool {
	return m.app.InfiniteScroll &&
		len(m.items) > 0 &&
		m.idx == len(m.items)-1 &&
		m.nav.CanGoNext &&
		m.pending == 0
}

func (m *feedModel) start(cmd tea.Cmd) tea.Cmd {
	m.pending++
	m.status = ""
	return cmd
}

func (m feedModel) navigate(nav models.Navigation) tea.Cmd {
	ctx, navigator := m.ctx, m.navigator
	return func() tea.Msg {
		return navDoneMsg{nav: nav, err: navigator.Navigate(ctx, nav)}
	}
}

func (m feedModel) triggerAction(actionID string) tea.Cmd {
	ctx, navigator := m.ctx, m.navigator
	return func() tea.Msg {
		return navDoneMsg{action: actionID, err: navigator.TriggerAction(ctx, actionID)}
	}
}

func (m feedModel) loadHistory() tea.Cmd {
	ctx, navigator := m.ctx, m.navigator
	return func() tea.Msg {
		entries, err := navigator.History(ctx, historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *feedModel) activate() tea.Cmd {
	item, ok := m.current()
	if !ok {
		m.status = "Нет записей"
		return nil
	}

	switch it := item.(type) {
	case models.Description:
		if it.SwitchActionID != "" {
			return m.start(m.triggerAction(it.SwitchActionID))
		}
	case models.Record:
		m.detail = true
	}
	return nil
}

func (m *feedModel) copyImageRef() tea.Cmd {
	rec, ok := m.currentRecord()
	if !ok || strings.TrimSpace(rec.ImageRef) == "" {
		m.status = "Нечего копировать"
		return nil
	}

	ref := rec.ImageRef
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(ref)}
	}
}

func (m feedModel) current() (models.Item, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return nil, false
	}
	return m.items[m.idx], true
}

func (m feedModel) currentRecord() (models.Record, bool) {
	item, ok := m.current()
	if !ok {
		return models.Record{}, false
	}
	rec, ok := item.(models.Record)
	return rec, ok
}

func (m feedModel) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(3, m.height-chromeHeight)
}

func (m feedModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.sessionID))
	}
	if m.detail {
		if rec, ok := m.currentRecord(); ok {
			return appStyle.Render(renderRecordDetail(rec))
		}
	}

	var b strings.Builder
	b.WriteString(renderList(m.items, m.idx, m.listHeight()))
	b.WriteString("\n")
	b.WriteString(renderNavBar(m.nav))

	if m.pending > 0 {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
	}
	if m.failure != nil {
		b.WriteString("\n")
		b.WriteString(errorOverlayModel{message: errorStyle.Render(failureMessage(*m.failure))}.View())
	}
	if m.showHistory {
		b.WriteString("\n\n")
		b.WriteString(renderHistory(m.history, m.historyErr))
	}

	header := titleStyle.Render("GoFeedSync") + "  " + helpStyle.Render(m.app.Title)
	return appStyle.Render(renderPage(header, b.String(), m.help.View(keys)))
}
