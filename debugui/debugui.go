// Package debugui draws Dear ImGui debug windows over a running game: frame
// timing, per-system scheduler cost and an inspector for the engine state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Window is a single ImGui window rendered once per frame.
type Window interface {
	Render()
}

// InputState tracks whether ImGui wants the mouse or keyboard this frame.
// Adapters skip game input while the overlay has focus.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders its windows in the order they were added.
type Overlay struct {
	windows []Window
	Input   InputState
}

func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{windows: windows}
}

func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Render updates the input capture state and draws every window. It must be
// called between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.windows {
		w.Render()
	}
}
