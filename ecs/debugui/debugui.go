// Package debugui draws Dear ImGui debug windows from ECS entities.
// Entities carrying an ImguiItem are rendered each frame by ImguiSystem.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/agilitycamp/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState reports whether ImGui wants the mouse or keyboard this
// frame. Frontends check it before reading game input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// RegisterComponents adds the debug UI component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// ImguiSystem refreshes ImguiInputState and queues every ImguiItem's render
// function. The functions run when the stage's commands are flushed, which
// must happen between the backend's BeginFrame and EndFrame.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	if state == nil {
		frame.Storage.AddSingleton(ImguiInputState{})
		state = i.InputState.Get()
	}
	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		if item.ImguiItem.Render != nil {
			frame.Commands.Defer(item.ImguiItem.Render)
		}
	}
}
