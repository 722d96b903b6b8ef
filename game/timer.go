package game

// Timer is the gravity clock the controller drives. *clock.Clock implements it.
type Timer interface {
	Update()
	HasElapsedCycle() bool
	SetCyclesPerSecond(rate float64)
	Reset()
	SetPaused(paused bool)
}
