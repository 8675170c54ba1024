package debugui

import "github.com/plus3/stackfall/session"

type BoardBrowserWindow struct {
	selected      session.BoardID
	sortColumn    int
	sortAscending bool
}

type BoardInspectorWindow struct {
	showGrid bool
}

type PerformanceStatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
