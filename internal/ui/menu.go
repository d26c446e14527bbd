package ui

// Action is the outcome of a frame of menu input.
type Action int

const (
	// ActionNone means the frame triggered nothing.
	ActionNone Action = iota
	// ActionStart begins or resumes the session from the title screen.
	ActionStart
	// ActionQuit exits the program.
	ActionQuit
	// ActionResume returns from the pause screen to the grid.
	ActionResume
	// ActionSettings opens the settings screen.
	ActionSettings
	// ActionMenu returns to the title screen.
	ActionMenu
	// ActionSave applies the settings draft.
	ActionSave
	// ActionCancel discards the settings draft.
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionQuit:
		return "quit"
	case ActionResume:
		return "resume"
	case ActionSettings:
		return "settings"
	case ActionMenu:
		return "menu"
	case ActionSave:
		return "save"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Menu is a titled column of buttons, each mapped to an Action.
type Menu struct {
	Title   string
	Buttons []*Button

	actions []Action
	escape  Action
}

// Add appends a button that yields action when clicked.
func (m *Menu) Add(b *Button, action Action) {
	m.Buttons = append(m.Buttons, b)
	m.actions = append(m.actions, action)
}

// Update refreshes hover state and returns the action triggered by in.
func (m *Menu) Update(in Input) Action {
	for _, b := range m.Buttons {
		b.Hover(in.Cursor)
	}
	for i, b := range m.Buttons {
		if b.Clicked(in) {
			return m.actions[i]
		}
	}
	if in.JustPressed(KeyEscape) {
		return m.escape
	}
	return ActionNone
}

// NewStartMenu builds the title screen for a view of the given size.
// Escape quits.
func NewStartMenu(width, height int) *Menu {
	f := fitFrame(width, height, height*5/12, 120, 120)
	m := &Menu{Title: "Conway's Game of Life", escape: ActionQuit}
	m.Add(f.button("Start", -60, 0, 120, 50), ActionStart)
	m.Add(f.button("Quit", -60, 70, 120, 50), ActionQuit)
	return m
}

// NewPauseMenu builds the pause screen for a view of the given size.
// Escape resumes.
func NewPauseMenu(width, height int) *Menu {
	f := fitFrame(width, height, height*5/12, 160, 260)
	m := &Menu{Title: "PAUSED", escape: ActionResume}
	m.Add(f.button("Resume", -80, 0, 160, 50), ActionResume)
	m.Add(f.button("Settings", -80, 70, 160, 50), ActionSettings)
	m.Add(f.button("Menu", -80, 140, 160, 50), ActionMenu)
	m.Add(f.button("Quit", -80, 210, 160, 50), ActionQuit)
	return m
}
