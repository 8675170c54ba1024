// Package debugui provides a Dear ImGui overlay for inspecting a running
// session: a board browser, a board inspector and step timing statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/session"
)

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders every debug window for one session.
type Overlay struct {
	session *session.Session
	timer   *FrameTimer

	browser   BoardBrowserWindow
	inspector BoardInspectorWindow
	stats     PerformanceStatsWindow

	input InputState
}

// NewOverlay creates the debug windows for s.
func NewOverlay(s *session.Session) *Overlay {
	return &Overlay{
		session:   s,
		timer:     NewFrameTimer(),
		browser:   NewBoardBrowserWindow(),
		inspector: NewBoardInspectorWindow(),
		stats:     NewPerformanceStatsWindow(120),
	}
}

// Render draws the windows. It must be called between the backend's
// BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	o.stats.Render(o.session, o.timer.GetDeltaTime())
	o.browser.Render(o.session)
	o.inspector.Render(o.session, o.browser.Selected())
}

// InputState returns the capture state sampled during the last Render.
func (o *Overlay) InputState() InputState {
	return o.input
}
