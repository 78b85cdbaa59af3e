package runner

import (
	"github.com/vovakirdan/just-jump/internal/config"
	"github.com/vovakirdan/just-jump/internal/core"
)

// Obstacle is a wall rooted at ground level.
type Obstacle struct {
	X      float64
	Height int
	Active bool
	Scored bool
}

// GroundSegment is one tile of the ground strip.
type GroundSegment struct {
	X     float64
	Width int
	Pit   bool
}

// Right returns the x coordinate just past the segment.
func (g GroundSegment) Right() float64 {
	return g.X + float64(g.Width)
}

// stage returns the active stage row. Only valid while a stage is running.
func (s *Simulation) stage() config.StageConfig {
	return s.cfg.Stages[s.stageIndex]
}

func (s *Simulation) obstacleRect(o *Obstacle) core.Rect {
	return core.NewRect(int(o.X), s.cfg.Player.GroundY-o.Height, s.cfg.Obstacles.Width, o.Height)
}

// scrollObstacles moves active obstacles and frees those fully off the left
// edge.
func (s *Simulation) scrollObstacles(speed float64) {
	limit := -float64(s.cfg.Obstacles.Width)
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Active {
			continue
		}
		o.X += speed
		if o.X < limit {
			o.Active = false
		}
	}
}

// scrollGround moves the whole ring, then recycles every segment that left
// the screen. Recycling after the move keeps the ring gap-free: a recycled
// segment is attached to a right edge that has already moved this tick.
func (s *Simulation) scrollGround(speed float64) {
	for i := range s.ground {
		s.ground[i].X += speed
	}
	for i := range s.ground {
		if s.ground[i].Right() < 0 {
			s.recycleSegment(i)
		}
	}
}

// groundRight returns the right edge of the rightmost segment.
func (s *Simulation) groundRight() float64 {
	right := s.ground[0].Right()
	for _, seg := range s.ground[1:] {
		if r := seg.Right(); r > right {
			right = r
		}
	}
	return right
}

// recycleSegment moves segment i past the rightmost segment and rerolls it
// as a pit or as solid ground, possibly carrying a new obstacle.
func (s *Simulation) recycleSegment(i int) {
	gc := s.cfg.Ground
	seg := &s.ground[i]
	seg.X = s.groundRight()

	if s.stage().Pits && s.rng.Intn(gc.PitOdds) == 0 {
		seg.Pit = true
		seg.Width = between(s.rng, gc.PitMinWidth, gc.PitMaxWidth)
		return
	}

	seg.Pit = false
	seg.Width = between(s.rng, gc.MinWidth, gc.MaxWidth)
	if s.rng.Intn(s.cfg.Obstacles.SpawnOdds) == 0 {
		s.spawnObstacleOn(*seg)
	}
}

// spawnObstacleOn places a new obstacle at a random offset inside seg, in
// the first free slot. Nothing happens when every slot is taken.
func (s *Simulation) spawnObstacleOn(seg GroundSegment) {
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Active {
			continue
		}
		oc := s.cfg.Obstacles
		o.Active = true
		o.Scored = false
		o.Height = between(s.rng, oc.MinHeight, oc.MaxHeight)
		o.X = seg.X + float64(s.rng.Intn(seg.Width-oc.Width))
		return
	}
}

// solidUnder reports whether the first segment in ring order that overlaps
// the player's span at x is solid ground.
func (s *Simulation) solidUnder(x float64) bool {
	size := float64(s.cfg.Player.Size)
	for _, seg := range s.ground {
		if core.SpansOverlap(x, x+size, seg.X, seg.Right()) {
			return !seg.Pit
		}
	}
	return false
}

// layoutStage rebuilds the ground from x=0 with solid segments and lines the
// obstacle pool up past the right screen edge.
func (s *Simulation) layoutStage() {
	gc := s.cfg.Ground
	x := 0
	for i := range s.ground {
		w := between(s.rng, gc.StartMinWidth, gc.StartMaxWidth)
		s.ground[i] = GroundSegment{X: float64(x), Width: w}
		x += w
	}

	oc := s.cfg.Obstacles
	ox := float64(s.cfg.Screen.Width) + oc.FirstOffset
	for i := range s.obstacles {
		h := between(s.rng, oc.MinHeight, oc.MaxHeight)
		if i > 0 {
			ox += float64(between(s.rng, oc.MinSpacing, oc.MaxSpacing))
		}
		s.obstacles[i] = Obstacle{X: ox, Height: h, Active: true}
	}
}
