package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tomz197/asteroides/internal/draw"
	"github.com/tomz197/asteroides/internal/game"
)

const (
	titleText    = "A S T E R O I D S"
	startText    = "Press ENTER or SPACE to start"
	controlsText = "WASD or arrows to move, SPACE to fire, Q to quit"
	gameOverText = "GAME OVER"
	restartText  = "Ship destroyed! Press R to restart."
)

// screens styles the text overlays. Every SSH session renders through its own
// lipgloss renderer so color detection never touches the server's stdout.
type screens struct {
	title  lipgloss.Style
	hud    lipgloss.Style
	prompt lipgloss.Style
	faint  lipgloss.Style
}

func newScreens(w io.Writer) *screens {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)

	return &screens{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		hud:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		prompt: r.NewStyle().Foreground(lipgloss.Color("9")),
		faint:  r.NewStyle().Faint(true),
	}
}

// draw writes the overlay for the snapshot's mode on top of the canvas.
func (s *screens) draw(cw *draw.ChunkWriter, c *draw.Canvas, snap game.Snapshot) {
	centerX := c.OffsetCol() + c.TerminalWidth()/2
	centerY := c.OffsetRow() + c.TerminalHeight()/2

	switch snap.Mode {
	case game.ModeMenu:
		s.centered(cw, centerX, centerY-2, s.title.Render(titleText))
		s.centered(cw, centerX, centerY+1, s.hud.Render(startText))
		s.centered(cw, centerX, centerY+3, s.faint.Render(controlsText))
	case game.ModePlaying:
		s.drawHUD(cw, c, snap)
	case game.ModeGameOver:
		s.drawHUD(cw, c, snap)
		s.centered(cw, centerX, centerY-2, s.title.Render(gameOverText))
		s.centered(cw, centerX, centerY, s.prompt.Render(restartText))
	}
}

// drawHUD puts the score in the top-left and the lives in the top-right corner
// of the playfield.
func (s *screens) drawHUD(cw *draw.ChunkWriter, c *draw.Canvas, snap game.Snapshot) {
	score := s.hud.Render(fmt.Sprintf("Score: %d", snap.Score))
	lives := s.hud.Render(fmt.Sprintf("Lives: %d", snap.Lives))

	top := c.OffsetRow() + 1
	cw.WriteAt(c.OffsetCol()+2, top, score)
	cw.WriteAt(c.OffsetCol()+c.TerminalWidth()-lipgloss.Width(lives), top, lives)
}

func (s *screens) centered(cw *draw.ChunkWriter, centerX, row int, text string) {
	col := centerX - lipgloss.Width(text)/2
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, text)
}
