package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/stackfall/debugui/ebiten"
	"github.com/plus3/stackfall/render"
	"github.com/plus3/stackfall/session"
)

// game drives a session from ebiten's fixed rate Update.
type game struct {
	session  *session.Session
	renderer *render.Renderer
	imgui    *debugui_ebiten.ImguiBackend

	resultsDuration time.Duration
	banner          *render.Banner
	bannerLeft      time.Duration
}

func tick() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *game) Update() error {
	if g.banner != nil {
		g.banner.Update(float32(tick().Seconds()))
		g.bannerLeft -= tick()
		if g.bannerLeft <= 0 {
			return ebiten.Termination
		}
		return nil
	}

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return g.finish()
	}

	g.session.Once()
	if g.imgui != nil {
		g.imgui.Update()
	}
	return nil
}

// finish announces the winners and keeps the banner up for resultsDuration.
func (g *game) finish() error {
	msg := g.session.Announce()
	if msg == "" || g.resultsDuration <= 0 {
		return ebiten.Termination
	}
	g.banner = render.NewBanner(msg)
	g.bannerLeft = g.resultsDuration
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)
	if g.banner != nil {
		g.renderer.DrawBanner(screen, g.banner)
		return
	}
	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(render.ScreenWidth, render.ScreenHeight)
	}
	return render.ScreenWidth, render.ScreenHeight
}
