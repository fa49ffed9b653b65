// Package window runs the game in a desktop window with ebiten.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/asteroides/internal/game"
	"github.com/tomz197/asteroides/internal/game/config"
	"github.com/tomz197/asteroides/internal/physics"
)

const (
	title           = "Asteroids"
	graceBlinkTicks = 6
)

var (
	shipColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	asteroidColor   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	projectileColor = color.RGBA{R: 255, G: 230, B: 90, A: 255}
)

// Game adapts a session to ebiten's Update/Draw cycle. ebiten calls Update
// at the configured TPS, so one Update is exactly one session tick.
type Game struct {
	session *game.Session
	logger  *log.Logger
}

// New wraps a session for the window frontend.
func New(session *game.Session, logger *log.Logger) *Game {
	return &Game{session: session, logger: logger}
}

// Run opens the window and blocks until the player quits or closes it.
func Run(session *game.Session, logger *log.Logger) error {
	ebiten.SetWindowSize(config.FieldWidth, config.FieldHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(config.TickRate)

	if err := ebiten.RunGame(New(session, logger)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// readControls samples the keyboard. Movement is level triggered, every
// action key fires once per press.
func readControls() game.Controls {
	return game.Controls{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:    inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Update ticks the session once.
func (g *Game) Update() error {
	g.session.Tick(readControls())
	if g.session.Mode() == game.ModeExit {
		g.logger.Info("window closed by player", "score", g.session.Score())
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	switch snap.Mode {
	case game.ModeMenu:
		ebitenutil.DebugPrintAt(screen, "A S T E R O I D S", config.FieldWidth/2-50, config.FieldHeight/2-30)
		ebitenutil.DebugPrintAt(screen, "Press ENTER to start", config.FieldWidth/2-60, config.FieldHeight/2)
		ebitenutil.DebugPrintAt(screen, "WASD or arrows to move, SPACE or click to fire, ESC to quit",
			config.FieldWidth/2-175, config.FieldHeight/2+30)
		return
	case game.ModeExit:
		return
	}

	drawWorld(screen, snap)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", snap.Lives), 10, 30)
	if snap.Mode == game.ModeGameOver {
		ebitenutil.DebugPrintAt(screen, "Ship destroyed! Press R to restart.",
			config.FieldWidth/2-105, config.FieldHeight/2)
	}
}

// Layout keeps the logical playfield size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.FieldWidth, config.FieldHeight
}

func drawWorld(screen *ebiten.Image, snap game.Snapshot) {
	for i := range snap.Asteroids {
		a := &snap.Asteroids[i]
		if a.Active {
			vector.StrokeCircle(screen, float32(a.Pos.X), float32(a.Pos.Y), float32(a.Radius), 1.5, asteroidColor, true)
		}
	}

	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		if p.Active {
			vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileDrawRadius, projectileColor, true)
		}
	}

	// Blink while invulnerable
	if snap.Ship.Active && (snap.Grace/graceBlinkTicks)%2 == 0 {
		hull := snap.Ship.Hull()
		for i := range hull {
			strokeLine(screen, hull[i], hull[(i+1)%len(hull)], shipColor)
		}
	}
}

func strokeLine(screen *ebiten.Image, from, to physics.Vec2, clr color.Color) {
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1.5, clr, true)
}
