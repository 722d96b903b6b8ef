package game

import "github.com/plus3/blockfall/loop"

// System runs the controller's per-frame update as a loop stage.
type System struct {
	Controller *Controller
}

func (s *System) Execute(frame *loop.UpdateFrame) {
	s.Controller.Frame()
}
