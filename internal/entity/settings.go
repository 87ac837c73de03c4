package entity

const (
	DefaultBoardSize   uint32 = 3
	DefaultSearchDepth uint32 = 4

	// MinOption and MaxOption bound the values offered by the settings screens.
	MinOption uint32 = 3
	MaxOption uint32 = 8
)

// Settings - values chosen in the settings menu and read when a match starts.
// SearchDepth is reserved for a computer opponent and not used by the rules.
type Settings struct {
	BoardSize   uint32 `json:"board_size"`
	SearchDepth uint32 `json:"search_depth"`
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:   DefaultBoardSize,
		SearchDepth: DefaultSearchDepth,
	}
}

// OfferedOptions - the discrete values every settings screen lists, in order.
func OfferedOptions() []uint32 {
	options := make([]uint32, 0, MaxOption-MinOption+1)
	for value := MinOption; value <= MaxOption; value++ {
		options = append(options, value)
	}

	return options
}
