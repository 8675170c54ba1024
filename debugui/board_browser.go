package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetris"
)

// BoardInfo is one row of the board browser.
type BoardInfo struct {
	ID     session.BoardID
	Player string
	State  string
	Lines  int
	Pieces int
}

// BoardState names the phase a board is in.
func BoardState(b *tetris.Board) string {
	switch {
	case b.GameOver:
		return "over"
	case b.LineToDelete:
		return "clearing"
	case b.PieceActive:
		return "falling"
	}
	return "spawning"
}

func NewBoardBrowserWindow() BoardBrowserWindow {
	return BoardBrowserWindow{sortAscending: true}
}

// Rows returns the browser rows for s in the current sort order.
func (bb *BoardBrowserWindow) Rows(s *session.Session) []BoardInfo {
	rows := make([]BoardInfo, 0, s.Len())
	for slot, b := range s.Boards() {
		rows = append(rows, BoardInfo{
			ID:     s.IDs()[slot],
			Player: session.DisplayName(b.Name, slot),
			State:  BoardState(b),
			Lines:  b.Lines,
			Pieces: b.Pieces,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool

		switch bb.sortColumn {
		case 1:
			less = a.Player < b.Player
		case 2:
			less = a.State < b.State
		case 3:
			less = a.Lines < b.Lines
		case 4:
			less = a.Pieces < b.Pieces
		default:
			less = a.ID < b.ID
		}

		if !bb.sortAscending {
			return !less
		}
		return less
	})
	return rows
}

func (bb *BoardBrowserWindow) Render(s *session.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 180), imgui.CondOnce)
	if !imgui.BeginV("Boards", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	paused := s.Paused()
	if imgui.Checkbox("Paused", &paused) {
		s.SetPaused(paused)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("BoardTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Player")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Lines")
		imgui.TableSetupColumn("Pieces")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			bb.sortColumn = int(spec.ColumnIndex())
			bb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range bb.Rows(s) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := bb.selected == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				bb.selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Player)
			imgui.TableNextColumn()
			imgui.Text(row.State)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Lines))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Pieces))
		}

		imgui.EndTable()
	}

	imgui.End()
}

// Selected returns the id of the selected board, or 0.
func (bb *BoardBrowserWindow) Selected() session.BoardID {
	return bb.selected
}
