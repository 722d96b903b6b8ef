// Package debugui draws Dear ImGui inspector panels over the game window.
// Panels are collected by an Overlay system and rendered at the end of each
// frame, after every other system has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Panel holds a Dear ImGui render function drawn every frame.
type Panel struct {
	Render func()
}

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay defers every panel's render function to the end of the frame and
// refreshes InputState. It must run between the backend's BeginFrame and
// EndFrame.
type Overlay struct {
	Panels []Panel
	Input  InputState
}

func (o *Overlay) Add(panels ...Panel) {
	o.Panels = append(o.Panels, panels...)
}

func (o *Overlay) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, panel := range o.Panels {
		if panel.Render != nil {
			frame.Commands.Defer(panel.Render)
		}
	}
}

// CapturesKeyboard reports whether the last frame's ImGui widgets wanted the
// keyboard, in which case game input should be ignored.
func (o *Overlay) CapturesKeyboard() bool {
	return o.Input.WantCaptureKeyboard
}
