package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetris"
)

var (
	gridType  = reflect.TypeFor[tetris.Grid]()
	pieceType = reflect.TypeFor[tetris.Piece]()
)

func NewBoardInspectorWindow() BoardInspectorWindow {
	return BoardInspectorWindow{showGrid: true}
}

// Render shows the selected board's fields. Numbers, flags and the name are
// editable in place; the grid and masks are shown as text.
func (bi *BoardInspectorWindow) Render(s *session.Session, id session.BoardID) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 200), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 520), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b, ok := s.Board(id)
	if !ok {
		imgui.Text("No board selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Board %d: %s", id, BoardState(b)))
	imgui.Text(fmt.Sprintf("Shape: %s, next %s", tetris.ShapeNames[b.ActiveShape], tetris.ShapeNames[b.IncomingShape]))
	if b.GameOver && imgui.Button("Restart") {
		s.Restart(id)
	}
	imgui.Checkbox("Show grid", &bi.showGrid)
	imgui.Separator()

	val := reflect.ValueOf(b).Elem()
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		bi.renderField(field.Name, val.Field(field.Index), field)
	}

	imgui.End()
}

func (bi *BoardInspectorWindow) renderField(name string, val reflect.Value, field FieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch {
	case val.Type() == gridType:
		if bi.showGrid && imgui.TreeNodeStr(name) {
			g := val.Addr().Interface().(*tetris.Grid)
			imgui.Text(g.String())
			imgui.TreePop()
		}
		return
	case val.Type() == pieceType:
		if imgui.TreeNodeStr(name) {
			imgui.Text(PieceString(val.Interface().(tetris.Piece)))
			imgui.TreePop()
		}
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range globalReflectionCache.GetFields(val.Type()) {
				bi.renderField(nf.Name, val.Field(nf.Index), nf)
			}
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

// PieceString renders a mask as four rows of '#' and '.'.
func PieceString(p tetris.Piece) string {
	buf := make([]byte, 0, tetris.PieceSize*(tetris.PieceSize+1))
	for y := range tetris.PieceSize {
		for x := range tetris.PieceSize {
			if p[y][x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
