package runner

import "time"

// Popup is a floating score label.
type Popup struct {
	Active bool
	X, Y   float64
	Start  time.Time
}

// spawnPopup takes the first free popup slot. A full pool drops the popup.
func (s *Simulation) spawnPopup(x, y float64) {
	for i := range s.popups {
		if s.popups[i].Active {
			continue
		}
		s.popups[i] = Popup{Active: true, X: x, Y: y, Start: s.now}
		return
	}
}

// updatePopups drifts live popups upward and retires those past their
// lifetime.
func (s *Simulation) updatePopups() {
	for i := range s.popups {
		p := &s.popups[i]
		if !p.Active {
			continue
		}
		if s.now.Sub(p.Start) > s.cfg.Popups.Lifetime {
			p.Active = false
			continue
		}
		p.Y -= s.cfg.Popups.Drift
	}
}
