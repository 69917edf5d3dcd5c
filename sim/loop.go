package sim

import (
	"log"
	"time"
)

// GameLoop drives a Simulation at a fixed tick rate on a wall-clock ticker.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(sim *Simulation, tickRate int) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks, stepping the simulation until Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.sim.Step()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
