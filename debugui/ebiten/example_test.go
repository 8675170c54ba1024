package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/debugui"
	debugui_ebiten "github.com/plus3/stackfall/debugui/ebiten"
	"github.com/plus3/stackfall/session"
)

// Game implements ebiten.Game and draws the overlay over an empty screen.
type Game struct {
	session      *session.Session
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.session.Once()

	// Build the ImGui windows after the boards stepped
	g.imguiBackend.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	s, err := session.New([]session.Player{{Name: "ada"}, {Name: "bob"}}, session.Options{})
	if err != nil {
		panic(err)
	}

	game := &Game{
		session:      s,
		imguiBackend: debugui_ebiten.NewImguiBackend("Session Debug", 1280, 720, debugui.NewOverlay(s)),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
