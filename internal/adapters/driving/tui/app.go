// Package tui implements an interactive shopping list view on
// Bubbletea, driven by the provider port. The view re-queries
// whenever a change notification arrives, so edits made by other
// processes show up without a keypress.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/captainfanatic/trolly/internal/core/domain"
	"github.com/captainfanatic/trolly/internal/core/ports/driving"
)

// Messages flowing through the Elm loop.
type (
	// itemsMsg carries a fresh query result.
	itemsMsg []domain.Item

	// changeMsg is a change notification from the bus.
	changeMsg domain.URI

	// errMsg carries a provider error for the footer.
	errMsg struct{ err error }
)

// listEntry adapts a domain.Item to bubbles/list.Item.
type listEntry struct {
	item domain.Item
}

func (e listEntry) Title() string       { return e.item.Label }
func (e listEntry) Description() string { return "" }
func (e listEntry) FilterValue() string { return e.item.Label }

// entryDelegate renders entries on a single line.
type entryDelegate struct {
	styles *Styles
}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(listEntry)
	if !ok {
		return
	}

	box := d.styles.Muted.Render("[ ]")
	label := e.item.Label
	if e.item.Status == domain.StatusOffList {
		box = d.styles.Checked.Render("[x]")
		label = d.styles.Done.Render(label)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, label)
	fmt.Fprintln(w)
}

// App is the shopping list TUI. It implements tea.Model.
type App struct {
	provider driving.Provider
	matcher  domain.Matcher
	changes  <-chan domain.URI

	styles *Styles
	list   list.Model
	input  textinput.Model

	adding bool
	err    error
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI over the given provider. changes feeds
// change notifications; the app re-queries on every one.
func NewApp(provider driving.Provider, matcher domain.Matcher, changes <-chan domain.URI) *App {
	styles := DefaultStyles()

	l := list.New(nil, entryDelegate{styles: styles}, 0, 0)
	l.Title = "Trolly"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("item", "items")
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = "New item..."
	ti.CharLimit = 200

	return &App{
		provider: provider,
		matcher:  matcher,
		changes:  changes,
		styles:   styles,
		list:     l,
		input:    ti,
	}
}

// Init loads the list and starts listening for changes.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadItems, a.waitForChange)
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.list.SetSize(msg.Width, msg.Height-3)
		a.ready = true
		return a, nil

	case itemsMsg:
		entries := make([]list.Item, len(msg))
		for i, it := range msg {
			entries[i] = listEntry{item: it}
		}
		return a, a.list.SetItems(entries)

	case changeMsg:
		return a, tea.Batch(a.loadItems, a.waitForChange)

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		if a.adding {
			return a.updateAdding(msg)
		}
		return a.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// updateBrowsing handles keys in the normal list mode.
func (a *App) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "a":
		a.adding = true
		a.input.SetValue("")
		return a, a.input.Focus()

	case " ", "enter":
		if e, ok := a.selectedEntry(); ok {
			return a, a.toggleItem(e.item)
		}
		return a, nil

	case "d", "x":
		if e, ok := a.selectedEntry(); ok {
			return a, a.deleteItem(e.item)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// updateAdding handles keys while the inline add input is open.
func (a *App) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.adding = false
		a.input.Blur()
		return a, nil

	case "enter":
		label := a.input.Value()
		a.adding = false
		a.input.Blur()
		if label == "" {
			return a, nil
		}
		return a, a.addItem(label)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View renders the list, the inline add input, and any error.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	view := a.list.View() + "\n"
	if a.adding {
		view += a.input.View() + "\n"
	} else {
		view += a.styles.Help.Render("a add · space toggle · d delete · q quit") + "\n"
	}
	if a.err != nil {
		view += a.styles.Error.Render(a.err.Error())
	}
	return view
}

// Err returns the last provider error, if any.
func (a *App) Err() error { return a.err }

// selectedEntry returns the entry under the cursor.
func (a *App) selectedEntry() (listEntry, bool) {
	e, ok := a.list.SelectedItem().(listEntry)
	return e, ok
}

// loadItems queries the full list.
func (a *App) loadItems() tea.Msg {
	items, err := a.provider.Query(context.Background(), a.matcher.Collection().String(), nil, "", nil, "")
	if err != nil {
		return errMsg{err: err}
	}
	return itemsMsg(items)
}

// waitForChange blocks on the notification channel.
func (a *App) waitForChange() tea.Msg {
	uri, ok := <-a.changes
	if !ok {
		return nil
	}
	return changeMsg(uri)
}

// addItem inserts a new item. The resulting change notification
// reloads the list.
func (a *App) addItem(label string) tea.Cmd {
	return func() tea.Msg {
		values := domain.ItemValues{Label: &label}
		if _, err := a.provider.Insert(context.Background(), a.matcher.Collection().String(), values); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

// toggleItem flips an item's status.
func (a *App) toggleItem(it domain.Item) tea.Cmd {
	return func() tea.Msg {
		status := domain.StatusOffList
		if it.Status == domain.StatusOffList {
			status = domain.StatusOnList
		}
		values := domain.ItemValues{Status: &status}
		if _, err := a.provider.Update(context.Background(), a.matcher.Item(it.ID).String(), values, "", nil); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

// deleteItem removes an item.
func (a *App) deleteItem(it domain.Item) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.provider.Delete(context.Background(), a.matcher.Item(it.ID).String(), "", nil); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}
