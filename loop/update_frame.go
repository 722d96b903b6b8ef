package loop

// UpdateFrame is passed to every system during a frame.
type UpdateFrame struct {
	Index     uint64
	DeltaTime float64
	Commands  *Commands
}

func newUpdateFrame(index uint64, dt float64) *UpdateFrame {
	return &UpdateFrame{
		Index:     index,
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
