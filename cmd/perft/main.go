/*
Command perft walks the move-generation tree to a fixed depth and counts
leaf nodes, the standard correctness oracle for a move generator
(glossary: Perft(d)). Grounded on treepeck-chego's internal/perft.go
debugging tool, upgraded per the project's ambient-stack choices: zap for
structured logging in place of log.Printf, pkg/profile in place of manual
runtime/pprof start/stop, and an optional BurntSushi/toml config file whose
values CLI flags override.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/blackrook-chess/blackrook"
)

// config holds perft parameters, loadable from a TOML file and overridable
// by flags of the same name.
type config struct {
	Depth   int    `toml:"depth"`
	FEN     string `toml:"fen"`
	Divide  bool   `toml:"divide"`
	Profile string `toml:"profile"` // "", "cpu", or "mem"
}

func defaultConfig() config {
	return config{
		Depth: 5,
		FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft: cannot build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	configPath := flag.String("config", "", "optional TOML config file")
	depth := flag.Int("depth", -1, "perft depth (overrides config)")
	fen := flag.String("fen", "", "starting position FEN (overrides config)")
	divide := flag.Bool("divide", false, "print node count per root move")
	profileMode := flag.String("profile", "", "cpu, mem, or empty to disable")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	if *depth >= 0 {
		cfg.Depth = *depth
	}
	if *fen != "" {
		cfg.FEN = *fen
	}
	if *divide {
		cfg.Divide = true
	}
	if *profileMode != "" {
		cfg.Profile = *profileMode
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	case "":
	default:
		logger.Fatal("unknown profile mode", zap.String("mode", cfg.Profile))
	}

	pos := blackrook.ParseFEN(cfg.FEN)

	logger.Info("starting perft",
		zap.Int("depth", cfg.Depth),
		zap.String("fen", cfg.FEN),
		zap.Bool("divide", cfg.Divide),
	)

	start := time.Now()
	var nodes int
	if cfg.Divide {
		nodes = divideRoot(pos, cfg.Depth, logger)
	} else {
		nodes = perft(pos, cfg.Depth)
	}
	elapsed := time.Since(start)

	logger.Info("perft complete",
		zap.Int("depth", cfg.Depth),
		zap.Int64("nodes", int64(nodes)),
		zap.Duration("elapsed", elapsed),
		zap.Float64("nodes_per_sec", float64(nodes)/elapsed.Seconds()),
	)
}

// perft counts leaf nodes of the legal move-generation tree to depth d.
func perft(p blackrook.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	list := blackrook.GenerateMoves(&p)
	if depth == 1 {
		return list.Len()
	}

	nodes := 0
	for _, m := range list.Moves {
		child := p
		child.Apply(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}

// divideRoot runs perft one ply at a time from the root, logging the node
// count contributed by each root move — useful for isolating a divergent
// branch against a reference engine.
func divideRoot(p blackrook.Position, depth int, logger *zap.Logger) int {
	list := blackrook.GenerateMoves(&p)
	total := 0
	for _, m := range list.Moves {
		child := p
		child.Apply(m)
		n := perft(child, depth-1)
		total += n
		logger.Info("root move",
			zap.String("from", blackrook.SquareNames[m.From()]),
			zap.String("to", blackrook.SquareNames[m.To()]),
			zap.Int("nodes", n),
		)
	}
	return total
}
