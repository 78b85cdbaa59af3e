package runner

// resetGame starts a new game from the first stage.
func (s *Simulation) resetGame() {
	s.score = 0
	s.stageScore = 0
	s.lives = s.cfg.Lives
	s.stageIndex = -1
	s.runStart = s.tick
	s.log.Info("game started", "lives", s.lives, "stages", len(s.cfg.Stages))
	s.startNextStage()
}

// startNextStage advances to the next stage, or ends the game as cleared
// after the last one.
func (s *Simulation) startNextStage() {
	s.stageIndex++
	if s.stageIndex >= len(s.cfg.Stages) {
		s.endGame(OutcomeCleared)
		s.enter(StateGameClear)
		return
	}

	s.stageScore = 0
	s.resetPlayer(PlayerNormal)
	s.layoutStage()
	s.enter(StatePlaying)

	st := s.stage()
	s.log.Info("stage started", "stage", s.stageIndex+1, "speed", st.ScrollSpeed, "clear", st.ClearScore, "pits", st.Pits)
}
