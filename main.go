package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/molehill-games/burrow/components"
	cfg "github.com/molehill-games/burrow/config"
	"github.com/molehill-games/burrow/leveldata"
	"github.com/molehill-games/burrow/sim"
	"github.com/molehill-games/burrow/systems/factory"
)

func main() {
	configPath := flag.String("config", "", "YAML config overrides (empty = defaults)")
	levelPath := flag.String("level", "", "TMX level file (empty = built-in demo level)")
	tickRate := flag.Int("tickrate", cfg.Sim.TickRate, "Simulation tick rate (steps per second)")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	s := sim.NewSimulation()

	if *levelPath != "" {
		dir, file := filepath.Split(*levelPath)
		if dir == "" {
			dir = "."
		}
		lvl, err := leveldata.Load(os.DirFS(dir), file)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		factory.BuildLevel(s.ECS(), lvl)
		for _, sp := range lvl.PlayerSpawns {
			factory.CreatePlayer(s.ECS(), sp.X, sp.Y)
		}
		for _, sp := range lvl.EnemySpawns {
			factory.CreateEnemy(s.ECS(), sp.X, sp.Y, 10)
		}
	} else {
		buildDemoLevel(s)
	}

	loop := sim.NewGameLoop(s, *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	s.LogPlayerState(*tickRate * 2)

	log.Printf("Starting simulation (tick rate: %d/s)", *tickRate)
	loop.Run()
}

// buildDemoLevel assembles a small hardcoded arena: a floor, two ledges, a
// sticky elevator, a player and one enemy.
func buildDemoLevel(s *sim.Simulation) {
	factory.CreateSpace(s.ECS(), -320, -240, 640, 480)

	factory.CreatePlatform(s.ECS(), "floor", 0, -100, 320, 8)
	factory.CreatePlatform(s.ECS(), "ledge-left", -120, -40, 40, 8)
	factory.CreatePlatform(s.ECS(), "ledge-right", 120, 20, 40, 8)
	factory.CreateMovingPlatform(s.ECS(), "elevator", 0, -60, 32, 8,
		components.Vector{Y: 1}, 80, 120, true)

	factory.CreatePlayer(s.ECS(), -200, 0)
	factory.CreateEnemy(s.ECS(), 200, 0, 10)
}
