package tetris

// Frame cadences. Every counter advances once per step while a piece is
// falling and triggers its action when it reaches the threshold.
const (
	GravitySpeed         = 30
	LateralSpeed         = 10
	TurningSpeed         = 12
	FastFallAwaitCounter = 30
	FadingTime           = 33

	// fadeBlink is the length of one bright/dim cycle of fading rows.
	fadeBlink = 8
)

// SpawnX is the anchor column of a freshly spawned piece.
const SpawnX = (GridWidth - PieceSize) / 2

// FadeTone is the colour phase of the fading rows animation.
type FadeTone uint8

const (
	ToneDim FadeTone = iota
	ToneBright
)

// Counters gate how often each kind of movement may act.
type Counters struct {
	Gravity  int
	Lateral  int
	Turn     int
	FastFall int
	Fade     int
}

// Board is the complete simulation state of one player. Every simulation
// operation takes the board it works on explicitly; boards never share data.
type Board struct {
	Name string

	Grid     Grid
	Active   Piece
	Incoming Piece
	// ActiveShape and IncomingShape are the catalog indices of the masks.
	ActiveShape   int
	IncomingShape int
	// Anchor is the grid coordinate of the active mask's top-left corner.
	Anchor Point

	BeginPlay    bool
	PieceActive  bool
	Detection    bool
	LineToDelete bool
	GameOver     bool

	Counters Counters
	// GravitySpeed is the gravity threshold in frames. It is constant for a
	// game; Level is tracked but does not change it.
	GravitySpeed int

	Level int
	Lines int
	// Pieces counts spawned pieces since the last reset.
	Pieces int

	Tone FadeTone
}

// NewBoard returns a board in its initial state, waiting for its first piece.
func NewBoard(name string) *Board {
	b := &Board{Name: name}
	b.Reset()
	return b
}

// Reset puts the board back into its initial state. The player name is kept.
func (b *Board) Reset() {
	name := b.Name
	*b = Board{
		Name:         name,
		Grid:         NewGrid(),
		BeginPlay:    true,
		GravitySpeed: GravitySpeed,
		Level:        1,
		Tone:         ToneDim,
	}
}

// Playing reports whether the board is neither over nor animating a clear.
func (b *Board) Playing() bool {
	return !b.GameOver && !b.LineToDelete
}

// stamp writes the active mask into the grid as Moving cells at the anchor.
func (b *Board) stamp() {
	for _, c := range b.Active.Cells() {
		b.Grid.Set(b.Anchor.X+c.X, b.Anchor.Y+c.Y, Moving)
	}
}
