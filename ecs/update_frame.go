package ecs

// UpdateFrame is handed to every system of a stage.
type UpdateFrame struct {
	// DeltaTime is the elapsed time in seconds passed to Scheduler.Once.
	DeltaTime float64
	// Tick counts completed Once calls, starting at zero for the first frame.
	Tick     uint64
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(dt float64, tick uint64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
