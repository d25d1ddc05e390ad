package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/agilitycamp/ecs"
)

// EntityInfo is one row of the entity list.
type EntityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

// ListEntities returns every entity in archetype creation order. A non-empty
// filter keeps entities with a component type name containing it, ignoring
// case.
func ListEntities(storage *ecs.Storage, filter string) []EntityInfo {
	filter = strings.ToLower(filter)
	var entities []EntityInfo

	for _, archetype := range storage.Archetypes() {
		names := make([]string, len(archetype.Types()))
		matched := filter == ""
		for i, t := range archetype.Types() {
			names[i] = t.String()
			if !matched && strings.Contains(strings.ToLower(names[i]), filter) {
				matched = true
			}
		}
		if !matched {
			continue
		}

		for id := range archetype.Iter() {
			entities = append(entities, EntityInfo{
				ID:             id,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: names,
			})
		}
	}
	return entities
}

// EntityWindow lists entities and edits the selected entity's components.
type EntityWindow struct {
	Storage *ecs.Storage

	filter   string
	selected ecs.EntityId
	hasPick  bool
}

// NewEntityWindow returns an ImguiItem rendering an EntityWindow.
func NewEntityWindow(storage *ecs.Storage) ImguiItem {
	w := &EntityWindow{Storage: storage}
	return ImguiItem{Render: w.Render}
}

func (w *EntityWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Component...", &w.filter, imgui.InputTextFlagsNone, nil)

	entities := ListEntities(w.Storage, w.filter)
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 180), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range entities {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			picked := w.hasPick && w.selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), picked, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				w.selected, w.hasPick = entity.ID, true
			}
			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}
		imgui.EndTable()
	}

	imgui.Separator()
	if w.hasPick {
		w.renderSelected()
	} else {
		imgui.Text("No entity selected")
	}
	imgui.End()
}

func (w *EntityWindow) renderSelected() {
	archetype := archetypeOf(w.Storage, w.selected)
	if archetype == nil {
		imgui.Text(fmt.Sprintf("Entity %d not found", w.selected))
		return
	}

	imgui.Text(fmt.Sprintf("Entity %d (archetype 0x%X)", w.selected, archetype.ID()))
	for _, compType := range archetype.Types() {
		component := w.Storage.GetComponent(w.selected, compType)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			renderValue(reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

func archetypeOf(storage *ecs.Storage, id ecs.EntityId) *ecs.Archetype {
	for _, archetype := range storage.Archetypes() {
		if archetype.ID() == id.ArchetypeId() {
			return archetype
		}
	}
	return nil
}

// renderValue draws exported struct fields. float32 fields are editable.
func renderValue(val reflect.Value) {
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
		return
	}

	for i := range val.NumField() {
		field := val.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		fv := val.Field(i)

		switch fv.Kind() {
		case reflect.Float32:
			v := float32(fv.Float())
			if imgui.InputFloat(field.Name, &v) && fv.CanSet() {
				fv.SetFloat(float64(v))
			}
		case reflect.Struct:
			if imgui.TreeNodeStr(field.Name) {
				renderValue(fv)
				imgui.TreePop()
			}
		case reflect.Func, reflect.Pointer, reflect.Interface:
			imgui.Text(fmt.Sprintf("%s: %s", field.Name, fv.Type()))
		default:
			imgui.Text(fmt.Sprintf("%s: %v", field.Name, fv.Interface()))
		}
	}
}
