package menu

type Screen string

const (
	ScreenMain                Screen = "main"
	ScreenSettings            Screen = "settings"
	ScreenSettingsBoardSize   Screen = "settings:board-size"
	ScreenSettingsSearchDepth Screen = "settings:search-depth"
	// ScreenDisabled - a match is running and the menu ignores everything but BackToMainMenu.
	ScreenDisabled Screen = "disabled"
)

type Action string

const (
	ActionPlayAI          Action = "play:ai"
	ActionPlayPlayers     Action = "play:players"
	ActionOpenSettings    Action = "settings"
	ActionOpenBoardSize   Action = "settings:board-size"
	ActionOpenSearchDepth Action = "settings:search-depth"
	ActionSelect          Action = "select"
	ActionBack            Action = "back"
	ActionBackToMainMenu  Action = "back:main"
	ActionQuit            Action = "quit"
)

// Command - an action delivered by the presentation layer. Value is read by ActionSelect only.
type Command struct {
	Action Action `json:"action"`
	Value  uint32 `json:"value,omitempty"`
}

// Effect - what the owner of the menu has to do after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectStartMatch
	EffectEndMatch
	EffectQuit
)

func (that Effect) String() string {
	switch that {
	case EffectStartMatch:
		return "start_match"
	case EffectEndMatch:
		return "end_match"
	case EffectQuit:
		return "quit"
	default:
		return "none"
	}
}

const (
	TitleLabel       = "Tic Tac Toe"
	BoardSizeLabel   = "Matrix size"
	SearchDepthLabel = "AI Depth"
	playAILabel      = "Play vs AI"
	playPlayersLabel = "Play 1vs1"
	settingsLabel    = "Settings"
	quitLabel        = "Quit"
	backLabel        = "Back"
)

// Label - button caption for the action.
func (that Action) Label() string {
	switch that {
	case ActionPlayAI:
		return playAILabel
	case ActionPlayPlayers:
		return playPlayersLabel
	case ActionOpenSettings:
		return settingsLabel
	case ActionOpenBoardSize:
		return BoardSizeLabel
	case ActionOpenSearchDepth:
		return SearchDepthLabel
	case ActionBack, ActionBackToMainMenu:
		return backLabel
	case ActionQuit:
		return quitLabel
	default:
		return ""
	}
}
