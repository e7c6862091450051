package game

// Settings tune the movement timer. Board size is fixed in types.
type Settings struct {
	// InitialUpdatesPerMove is the number of frames between moves at the start of a round
	InitialUpdatesPerMove float64
	// Decrement is subtracted from the threshold for every pellet eaten
	Decrement float64
	// MinUpdatesPerMove is the floor of the threshold
	MinUpdatesPerMove float64
	// InitialCounter is the tick counter value at the start of a round
	InitialCounter int
}

func DefaultSettings() Settings {
	return Settings{
		InitialUpdatesPerMove: 30,
		Decrement:             0.2,
		MinUpdatesPerMove:     1,
		InitialCounter:        1,
	}
}
