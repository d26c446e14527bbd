package ui

import "fmt"

// Status is the heads-up line shown over the grid while playing.
type Status struct {
	Running    bool
	Generation uint64
	Population int
	TPS        int
}

// Text formats the status for display.
func (s Status) Text() string {
	state := "stopped"
	if s.Running {
		state = "running"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  %d tps", state, s.Generation, s.Population, s.TPS)
}
