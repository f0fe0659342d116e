package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// maxListedEntities caps the entity rows drawn for one archetype.
const maxListedEntities = 64

// WorldWindow lists archetypes and lets one be expanded to inspect the
// components of its entities.
type WorldWindow struct {
	storage  *ecs.Storage
	selected uint32
	hasSel   bool
}

func NewWorldWindow(storage *ecs.Storage) *WorldWindow {
	return &WorldWindow{storage: storage}
}

func (w *WorldWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 310), imgui.CondOnce)
	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d  Archetypes: %d", stats.TotalEntityCount, stats.ArchetypeCount))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Archetypes", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		for _, arch := range stats.ArchetypeBreakdown {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			selected := w.hasSel && w.selected == arch.ID
			label := fmt.Sprintf("%s##%x", strings.Join(arch.ComponentTypes, ", "), arch.ID)
			if imgui.SelectableBoolV(label, selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				w.selected, w.hasSel = arch.ID, !selected
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	if w.hasSel {
		imgui.Separator()
		w.renderSelected()
	}

	imgui.End()
}

func (w *WorldWindow) renderSelected() {
	for _, arch := range w.storage.Archetypes() {
		if arch.ID() != w.selected {
			continue
		}

		for i, id := range arch.Entities() {
			if i == maxListedEntities {
				imgui.Text(fmt.Sprintf("... %d more", arch.Len()-i))
				break
			}
			if imgui.TreeNodeStr(fmt.Sprintf("entity %d", id)) {
				for _, t := range arch.Types() {
					imgui.Text(describeComponent(t, w.storage.GetComponent(id, t)))
				}
				imgui.TreePop()
			}
		}
		return
	}
}

// describeComponent formats one component for display.
func describeComponent(t reflect.Type, component any) string {
	if component == nil {
		return t.Name() + ": <missing>"
	}
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return t.Name() + ": <nil>"
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct && v.NumField() == 0 {
		return t.Name()
	}
	return fmt.Sprintf("%s: %+v", t.Name(), v.Interface())
}
