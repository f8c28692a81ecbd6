package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"tarot-game/internal/config"
	"tarot-game/internal/game"
	"tarot-game/internal/shared"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	shared.SetLogger(logger.WithField("component", "shared"))
	game.SetLogger(logger.WithField("component", "game"))

	players := make([]*shared.Player, cfg.Players)
	for i := range players {
		team := shared.TeamDefense
		if i == 0 {
			team = shared.TeamAttack
		}
		players[i] = shared.NewPlayer(fmt.Sprintf("Player %d", i+1), team)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	pre := game.NewPreGame(players, game.BidPetite)
	if err := game.Deal(pre, rng); err != nil {
		logger.Fatalf("deal: %v", err)
	}
	logger.WithField("deal", pre.ID).Infof("Dog: %v", pre.Dog)
	for _, p := range players {
		logger.WithField("team", p.Team).Infof("%s: %v", p.Name, p.Hand)
	}

	// Opening trick, every seat playing its first legal card.
	table := game.NewTable(players, true, cfg.CalledKing)
	for p := table.CurrentPlayer(); p != nil; p = table.CurrentPlayer() {
		moves, err := table.LegalMoves(p)
		if err != nil {
			logger.Fatalf("legal moves for %s: %v", p.Name, err)
		}
		if err := table.Play(p, moves[0]); err != nil {
			logger.Fatalf("play: %v", err)
		}
		logger.Infof("%s plays %s", p.Name, moves[0])
	}

	winner, err := table.Resolve()
	if err != nil {
		logger.Errorf("resolve: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s wins the trick with %d cards collected", winner.Name, len(winner.Collected))
}
