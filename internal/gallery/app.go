package gallery

import tea "github.com/charmbracelet/bubbletea"

// App is the top-level Bubble Tea model. It owns the page table and routes
// events to the active page; pages request switches by returning a PageNav.
type App struct {
	pages  map[string]Page
	active string
	width  int
	height int
}

// NewApp creates an App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	a := &App{pages: make(map[string]Page, len(pages))}
	for i, p := range pages {
		a.pages[p.ID()] = p
		if i == 0 {
			a.active = p.ID()
		}
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.active]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Every page tracks dimensions, not just the active one.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	p, ok := a.pages[a.active]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav == nil {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.switchTo(nav.PageID))
}

// switchTo activates a page by ID. Unknown IDs leave the current page up.
func (a *App) switchTo(id string) tea.Cmd {
	next, ok := a.pages[id]
	if !ok {
		return nil
	}
	a.active = id
	return next.Init()
}

func (a *App) View() string {
	if p, ok := a.pages[a.active]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
