// Package ebiten connects the debug UI to the Ebiten Dear ImGui backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten Dear ImGui backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. No imgui.ini is
// written.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Frame runs fn between BeginFrame and EndFrame.
func (b *ImguiBackend) Frame(fn func()) {
	b.BeginFrame()
	defer b.EndFrame()
	fn()
}

