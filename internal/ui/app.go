// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the terminal interface for leptinchef using
// Bubble Tea. The App model owns page routing, the sidebar, and the
// notification overlay; each page is its own sub-model.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leptinchef/leptinchef-tui/internal/cache"
	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/store"
	"github.com/leptinchef/leptinchef-tui/internal/ui/components"
	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
)

// =============================================================================
// PAGES
// =============================================================================

// Page identifies one top-level screen.
type Page int

const (
	PageHome Page = iota
	PageChat
	PageRecipes
	PageInventory
	PageProfile
)

var pageNames = []string{"Home", "Chat", "Recipes", "Inventory", "Profile"}

// =============================================================================
// APP MODEL
// =============================================================================

// Options configures the root model.
type Options struct {
	Client *cache.Client
	Chat   *store.ChatStore
	UI     *store.UIStore
	User   *store.UserStore

	// ExpiringDays is the expiry window shown on home and inventory pages.
	// Zero means 7.
	ExpiringDays int
}

// App is the root Bubble Tea model.
type App struct {
	client *cache.Client
	chat   *store.ChatStore
	ui     *store.UIStore
	user   *store.UserStore

	theme *styles.Theme
	page  Page

	width  int
	height int
	ready  bool

	expiringDays int

	home      homeModel
	chatPage  chatModel
	recipes   recipesModel
	inventory inventoryModel
	profile   profileModel
}

// New builds the root model. The theme comes from the UI container's
// persisted preference.
func New(opts Options) *App {
	days := opts.ExpiringDays
	if days <= 0 {
		days = 7
	}

	theme := styles.New(opts.UI.Theme())

	a := &App{
		client:       opts.Client,
		chat:         opts.Chat,
		ui:           opts.UI,
		user:         opts.User,
		theme:        theme,
		page:         PageHome,
		expiringDays: days,
	}
	a.home = newHomeModel(theme)
	a.chatPage = newChatModel(theme, opts.Chat)
	a.recipes = newRecipesModel(theme)
	a.inventory = newInventoryModel(theme, days)
	a.profile = newProfileModel(theme, opts.User)
	return a
}

// Init loads the data every page needs up front.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadPopularCmd(5),
		a.loadExpiringCmd(),
		a.loadRecipesCmd(model.RecipeFilter{}),
		a.loadInventoryCmd(model.InventoryFilter{}),
		a.loadConversationsCmd(model.ConversationFilter{}),
		a.chatPage.spinner.Tick,
	)
}

// Update routes messages to the active page after handling global concerns.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resizePages()
		return a, nil

	case RepaintMsg:
		return a, nil

	case ThemeChangedMsg:
		if msg.Theme.Valid() && msg.Theme != a.ui.Theme() {
			a.applyTheme(msg.Theme)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case errMsg:
		// Read failures are shown inline by the affected page.
		return a.routeToPage(msg)

	case mutationDoneMsg:
		// Mutation toasts come from the cache layer; just reload lists.
		return a, tea.Batch(
			a.loadRecipesCmd(model.RecipeFilter{}),
			a.loadInventoryCmd(model.InventoryFilter{}),
			a.loadExpiringCmd(),
			a.loadPopularCmd(5),
		)

	case transcriptMsg:
		// Drop results for a conversation that is no longer open.
		if msg.conversationID == a.chat.CurrentConversationID() {
			a.chat.ClearMessages()
			a.chat.AddMessages(msg.messages)
		}
		var cmd tea.Cmd
		a.chatPage, cmd = a.chatPage.update(msg)
		return a, cmd
	}

	return a.routeToPage(msg)
}

// handleKey processes global bindings, then defers to the active page.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Bindings that work everywhere, including over a focused input.
	switch key {
	case "ctrl+c":
		return a, tea.Quit
	case "tab":
		a.setPage(Page((int(a.page) + 1) % len(pageNames)))
		return a, a.pageEnterCmd()
	case "shift+tab":
		a.setPage(Page((int(a.page) + len(pageNames) - 1) % len(pageNames)))
		return a, a.pageEnterCmd()
	case "ctrl+b":
		a.ui.ToggleSidebar()
		a.resizePages()
		return a, nil
	case "esc":
		// Esc clears toasts first; pages see it only when none are up.
		if len(a.ui.Notifications()) > 0 {
			a.ui.ClearAllNotifications()
			return a, nil
		}
	}

	// Digits and q are plain text on the chat page.
	if !a.typing() {
		switch key {
		case "q":
			return a, tea.Quit
		case "1", "2", "3", "4", "5":
			a.setPage(Page(int(key[0] - '1')))
			return a, a.pageEnterCmd()
		}
	}

	return a.routeToPage(msg)
}

// typing reports whether the active page has a focused text input.
func (a *App) typing() bool {
	switch a.page {
	case PageChat:
		return a.chatPage.input.Focused()
	case PageRecipes:
		return a.recipes.searching
	default:
		return false
	}
}

// setPage switches the active page.
func (a *App) setPage(p Page) {
	a.page = p
	if p == PageChat {
		a.chatPage.input.Focus()
	} else {
		a.chatPage.input.Blur()
	}
}

// pageEnterCmd returns the refresh command for the page being entered.
func (a *App) pageEnterCmd() tea.Cmd {
	switch a.page {
	case PageHome:
		return tea.Batch(a.loadPopularCmd(5), a.loadExpiringCmd())
	case PageChat:
		// Restart the spinner; its tick loop stops when another page
		// drops the tick message.
		if id := a.chat.CurrentConversationID(); id != "" {
			return tea.Batch(a.loadTranscriptCmd(id), a.chatPage.spinner.Tick)
		}
		return a.chatPage.spinner.Tick
	case PageRecipes:
		return a.loadRecipesCmd(model.RecipeFilter{Page: a.recipes.page})
	case PageInventory:
		return tea.Batch(a.loadInventoryCmd(model.InventoryFilter{Page: a.inventory.page}), a.loadExpiringCmd())
	default:
		return nil
	}
}

// routeToPage forwards a message to the active page's update.
func (a *App) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.page {
	case PageHome:
		a.home, cmd = a.home.update(msg)
	case PageChat:
		a.chatPage, cmd = a.chatPage.update(msg)
		if send, ok := msg.(tea.KeyMsg); ok && send.String() == "enter" {
			if content := a.chatPage.takeDraft(); content != "" {
				cmd = tea.Batch(cmd, a.sendMessageCmd(content))
			}
		}
	case PageRecipes:
		var extra tea.Cmd
		a.recipes, extra = a.recipes.update(msg)
		cmd = a.recipesSideEffects(extra)
	case PageInventory:
		var extra tea.Cmd
		a.inventory, extra = a.inventory.update(msg)
		cmd = a.inventorySideEffects(extra)
	case PageProfile:
		a.profile, cmd = a.profile.update(msg)
		if a.profile.themeDirty {
			a.profile.themeDirty = false
			a.applyTheme(a.profile.pendingTheme)
		}
	}

	// Data messages feed more than one page.
	switch m := msg.(type) {
	case popularLoadedMsg:
		a.home.popular = m.recipes
	case expiringLoadedMsg:
		a.home.expiring = m.items
		a.inventory.expiring = m.items
	case recipesLoadedMsg:
		a.recipes.setResult(m.result)
	case inventoryLoadedMsg:
		a.inventory.setResult(m.result)
	}

	return a, cmd
}

// recipesSideEffects maps page intents (load detail, search, delete,
// paginate) onto cache commands.
func (a *App) recipesSideEffects(pageCmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{pageCmd}
	if id := a.recipes.takeWantDetail(); id != "" {
		cmds = append(cmds, a.loadRecipeCmd(id))
	}
	if q := a.recipes.takeWantSearch(); q != "" {
		cmds = append(cmds, a.searchRecipesCmd(q))
	}
	if id := a.recipes.takeWantDelete(); id != "" {
		cmds = append(cmds, a.deleteRecipeCmd(id))
	}
	if page := a.recipes.takeWantPage(); page != 0 {
		cmds = append(cmds, a.loadRecipesCmd(model.RecipeFilter{Page: page}))
	}
	return tea.Batch(cmds...)
}

// inventorySideEffects mirrors recipesSideEffects for the inventory page.
func (a *App) inventorySideEffects(pageCmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{pageCmd}
	if id := a.inventory.takeWantDelete(); id != "" {
		cmds = append(cmds, a.deleteItemCmd(id))
	}
	if page := a.inventory.takeWantPage(); page != 0 {
		cmds = append(cmds, a.loadInventoryCmd(model.InventoryFilter{Page: page}))
	}
	return tea.Batch(cmds...)
}

// applyTheme rebuilds the styles and pushes them into every page.
func (a *App) applyTheme(theme model.Theme) {
	a.ui.SetTheme(theme)
	a.theme = styles.New(theme)
	a.home.theme = a.theme
	a.chatPage.theme = a.theme
	a.recipes.theme = a.theme
	a.inventory.theme = a.theme
	a.profile.theme = a.theme
}

// resizePages pushes the content area dimensions into every page.
func (a *App) resizePages() {
	contentWidth := a.width - components.SidebarWidth(a.ui.SidebarCollapsed())
	contentHeight := a.height - 2 // status bar + padding
	if contentWidth < 20 {
		contentWidth = 20
	}
	if contentHeight < 5 {
		contentHeight = 5
	}
	a.home.resize(contentWidth, contentHeight)
	a.chatPage.resize(contentWidth, contentHeight)
	a.recipes.resize(contentWidth, contentHeight)
	a.inventory.resize(contentWidth, contentHeight)
	a.profile.resize(contentWidth, contentHeight)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the sidebar, the active page, toasts, and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var content string
	switch a.page {
	case PageHome:
		content = a.home.view()
	case PageChat:
		content = a.chatPage.view()
	case PageRecipes:
		content = a.recipes.view()
	case PageInventory:
		content = a.inventory.view()
	case PageProfile:
		content = a.profile.view()
	}

	if toasts := components.Toasts(a.theme, a.width, a.ui.Notifications()); toasts != "" {
		content = toasts + "\n" + content
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		components.Sidebar(a.theme, pageNames, int(a.page), a.ui.SidebarCollapsed(), a.height-2),
		a.theme.Content.Render(content),
	)

	bar := components.StatusBar(a.theme, a.width, a.statusHints())
	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}

// statusHints returns the key hints for the active page.
func (a *App) statusHints() []components.Hint {
	hints := []components.Hint{
		{Key: "tab", Desc: "next page"},
		{Key: "1-5", Desc: "jump"},
		{Key: "ctrl+b", Desc: "sidebar"},
	}
	switch a.page {
	case PageChat:
		hints = append(hints, components.Hint{Key: "enter", Desc: "send"})
	case PageRecipes:
		hints = append(hints,
			components.Hint{Key: "enter", Desc: "open"},
			components.Hint{Key: "/", Desc: "search"},
			components.Hint{Key: "d", Desc: "delete"},
		)
	case PageInventory:
		hints = append(hints, components.Hint{Key: "d", Desc: "delete"})
	case PageProfile:
		hints = append(hints,
			components.Hint{Key: "m", Desc: "units"},
			components.Hint{Key: "t", Desc: "theme"},
		)
	}
	hints = append(hints, components.Hint{Key: "q", Desc: "quit"})
	return hints
}
