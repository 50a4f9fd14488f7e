// Command armada-bench runs random playouts in parallel and reports how
// they end. Useful for exercising the rule engine and measuring move
// throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/armadachess/armada/internal/config"
	"github.com/armadachess/armada/internal/worker"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	games := flag.Int("games", 0, "number of playouts (overrides config)")
	workers := flag.Int("workers", 0, "parallel workers (overrides config)")
	plies := flag.Int("plies", 0, "max plies per playout (overrides config)")
	seed := flag.Int64("seed", 1, "base seed; playout i uses seed+i")
	flag.Parse()

	logger := log.New(os.Stderr, "armada-bench: ", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal(err)
		}
		cfg = loaded
	}
	if *games > 0 {
		cfg.Bench.Games = *games
	}
	if *workers > 0 {
		cfg.Bench.Workers = *workers
	}
	if *plies > 0 {
		cfg.Bench.MaxPlies = *plies
	}

	pool := worker.NewPool(worker.RunPlayout,
		worker.WithWorkers(cfg.Bench.Workers),
		worker.WithBufferSize(cfg.Bench.Games))
	pool.Start()

	start := time.Now()
	go func() {
		for i := 0; i < cfg.Bench.Games; i++ {
			pool.Submit(worker.Playout{Seed: *seed + int64(i), MaxPlies: cfg.Bench.MaxPlies, Index: i})
		}
		pool.Close()
	}()

	var totalPlies, totalPromotions, totalGrowth int
	outcomes := map[string]int{}
	for res := range pool.Results() {
		if res.Err != nil {
			logger.Fatalf("playout %d (seed %d): %v", res.Index, res.Seed, res.Err)
		}
		totalPlies += res.Plies
		totalPromotions += res.Promotions
		totalGrowth += res.RankGrowth
		key := res.Outcome
		if res.Winner != "" {
			key = fmt.Sprintf("%s (%s)", res.Outcome, res.Winner)
		}
		outcomes[key]++
	}
	elapsed := time.Since(start)

	fmt.Printf("%d playouts, %d plies in %v (%.0f plies/s, %d workers)\n",
		cfg.Bench.Games, totalPlies, elapsed.Round(time.Millisecond),
		float64(totalPlies)/elapsed.Seconds(), pool.NumWorkers())
	fmt.Printf("  promotions %d, ranks grown %d\n", totalPromotions, totalGrowth)
	for key, n := range outcomes {
		fmt.Printf("  %-20s %d\n", key, n)
	}
}
