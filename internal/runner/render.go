package runner

import (
	"fmt"

	"github.com/vovakirdan/just-jump/internal/core"
)

// Screen text. Offsets are relative to the screen center.
const (
	textTitle      = "JUST JUMP"
	textStart      = "PRESS SPACE TO START"
	textQuit       = "PRESS ESC TO QUIT"
	textNextStage  = "PRESS SPACE FOR NEXT STAGE"
	textToTitle    = "PRESS SPACE FOR TITLE"
	textCongrats   = "CONGRATULATIONS!"
	textAllCleared = "ALL STAGES CLEARED!"
	textGameOver   = "GAME OVER"
)

func (s *Simulation) center() (int, int) {
	return s.cfg.Screen.Width / 2, s.cfg.Screen.Height / 2
}

func (s *Simulation) fillScreen(c core.Color) {
	s.canvas.FillRect(0, 0, s.cfg.Screen.Width, s.cfg.Screen.Height, c)
}

func (s *Simulation) renderTitle() {
	cx, cy := s.center()
	s.fillScreen(core.ColorNight)
	s.canvas.DrawText(cx-100, cy-80, textTitle, core.ColorYellow)
	s.canvas.DrawText(cx-100, cy, textStart, core.ColorWhite)
	s.canvas.DrawText(cx-80, cy+30, textQuit, core.ColorWhite)
	s.canvas.DrawText(cx-80, cy+80, fmt.Sprintf("HIGH SCORE: %d", s.highScore), core.ColorWhite)
}

func (s *Simulation) renderPlaying() {
	groundY := s.cfg.Player.GroundY
	size := s.cfg.Player.Size

	s.fillScreen(core.ColorSky)

	for _, seg := range s.ground {
		if !seg.Pit {
			s.canvas.FillRect(int(seg.X), groundY, seg.Width, s.cfg.Screen.Height-groundY, core.ColorEarth)
		}
	}

	for i := range s.obstacles {
		if o := &s.obstacles[i]; o.Active {
			r := s.obstacleRect(o)
			s.canvas.FillRect(r.X, r.Y, r.W, r.H, core.ColorCactus)
		}
	}

	if s.playerVisible() {
		s.canvas.FillRect(int(s.player.X), int(s.player.Y), size, size, core.ColorYellow)
	}

	// HUD
	remaining := core.Max(s.stage().ClearScore-s.stageScore, 0)
	s.canvas.DrawText(10, 10, fmt.Sprintf("LIVES: %d", s.lives), core.ColorWhite)
	s.canvas.DrawText(10, 35, fmt.Sprintf("STAGE %d  SCORE: %d (%d TO CLEAR)", s.stageIndex+1, s.score, remaining), core.ColorWhite)

	label := fmt.Sprintf("+%d", s.cfg.Scoring.PerObstacle)
	for _, p := range s.popups {
		if p.Active {
			s.canvas.DrawText(int(p.X), int(p.Y), label, core.ColorPaleYellow)
		}
	}
}

func (s *Simulation) renderStageClear() {
	cx, cy := s.center()
	s.fillScreen(core.ColorForest)
	s.canvas.DrawText(cx-120, cy-40, fmt.Sprintf("STAGE %d CLEAR!", s.stageIndex+1), core.ColorYellow)
	s.canvas.DrawText(cx-140, cy, textNextStage, core.ColorWhite)
}

func (s *Simulation) renderGameClear() {
	cx, cy := s.center()
	s.fillScreen(core.ColorOlive)
	s.canvas.DrawText(cx-100, cy-80, textCongrats, core.ColorWhite)
	s.canvas.DrawText(cx-160, cy-50, textAllCleared, core.ColorWhite)
	s.canvas.DrawText(cx-90, cy-20, fmt.Sprintf("FINAL SCORE: %d", s.score), core.ColorWhite)
	s.canvas.DrawText(cx-125, cy+30, textToTitle, core.ColorWhite)
}

func (s *Simulation) renderGameOver() {
	cx, cy := s.center()
	s.fillScreen(core.ColorMaroon)
	s.canvas.DrawText(cx-80, cy-80, textGameOver, core.ColorRed)
	s.canvas.DrawText(cx-110, cy-40, fmt.Sprintf("FINAL SCORE: %d", s.score), core.ColorWhite)
	s.canvas.DrawText(cx-90, cy-20, fmt.Sprintf("HIGH SCORE: %d", s.highScore), core.ColorWhite)
	s.canvas.DrawText(cx-125, cy+30, textToTitle, core.ColorWhite)
	s.canvas.DrawText(cx-115, cy+60, textQuit, core.ColorWhite)
}
