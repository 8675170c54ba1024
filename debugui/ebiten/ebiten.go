// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and drives a debug overlay with it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend

	overlay *debugui.Overlay
}

// NewImguiBackend creates the backend and its window. The ini file is
// disabled so window positions are not persisted.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend, overlay: overlay}
}

// Update builds this frame's windows. Call it from the game's Update.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.overlay.Render()
	b.EndFrame()
}

// WantsKeyboard reports whether ImGui consumed the keyboard last frame.
func (b *ImguiBackend) WantsKeyboard() bool {
	return b.overlay.InputState().WantCaptureKeyboard
}
