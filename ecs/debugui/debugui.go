// Package debugui renders Dear ImGui windows from ECS entities. Each window
// is an entity carrying an ImguiItem; the ImguiSystem queues their render
// functions so they run after the frame's systems, between the backend's
// BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// ImguiItem is a component holding an ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton reporting whether ImGui wants the mouse or
// keyboard this frame. Game input systems should ignore events it captures.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every ImguiItem render.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	if state := s.InputState.Get(); state != nil {
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range s.Items.Iter() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}

// RegisterComponents registers the package's component types.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Spawn adds the input-state singleton and the built-in windows: world
// contents and, when scheduler is not nil, its performance.
func Spawn(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	ecs.NewSingleton[ImguiInputState](storage)

	world := NewWorldWindow(storage)
	storage.Spawn(ImguiItem{Render: world.Render})

	if scheduler != nil {
		perf := NewPerformanceWindow(scheduler, 120)
		storage.Spawn(ImguiItem{Render: perf.Render})
	}
}
