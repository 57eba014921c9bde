package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/mindunbind/mind-unbind/go-engine/internal/engine"
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

// #region main

// simulate runs randomized games through the engine. Uniform-random play
// should average close to 100, which makes this a quick calibration check.
func main() {
	games := flag.Int("games", 300, "number of simulated games")
	moves := flag.Int("moves", 300, "moves per game")
	seed := flag.Int64("seed", 1, "rng seed")
	alphabet := flag.Int("alphabet", 0, "alphabet size (0 = default)")
	maxOrder := flag.Int("max-order", -1, "maximum context order (-1 = default)")
	smoothing := flag.Float64("smoothing", 0, "Laplace smoothing (0 = default)")
	mixRate := flag.Float64("mix-rate", 0, "mixture learning rate (0 = default)")
	flag.Parse()

	config := engine.DefaultConfig()
	if *alphabet != 0 {
		config.AlphabetSize = *alphabet
	}
	if *maxOrder >= 0 {
		config.MaxOrder = *maxOrder
	}
	if *smoothing != 0 {
		config.Smoothing = *smoothing
	}
	if *mixRate != 0 {
		config.MixRate = *mixRate
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))
	scores := make([]float64, 0, *games)
	for g := 0; g < *games; g++ {
		score, err := playRandomGame(config, rng, *moves)
		if err != nil {
			fmt.Fprintf(os.Stderr, "game %d: %v\n", g, err)
			os.Exit(1)
		}
		scores = append(scores, score)
	}

	mean, stddev, min, max := stats(scores)
	fmt.Printf("%d games x %d moves, alphabet %d, orders 0..%d\n",
		*games, *moves, config.AlphabetSize, config.MaxOrder)
	fmt.Printf("mean %.2f  stddev %.2f  min %.2f  max %.2f\n", mean, stddev, min, max)
}

// #endregion main

// #region game

func playRandomGame(config engine.Config, rng *rand.Rand, moves int) (float64, error) {
	e, err := engine.New(config)
	if err != nil {
		return 0, err
	}
	for i := 0; i < moves; i++ {
		if _, err := e.Observe(move.Move(rng.Intn(config.AlphabetSize))); err != nil {
			return 0, err
		}
	}
	snap, err := e.Score()
	if err != nil {
		return 0, err
	}
	return snap.Score, nil
}

// #endregion game

// #region stats

func stats(xs []float64) (mean, stddev, min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, x := range xs {
		mean += x
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		d := x - mean
		stddev += d * d
	}
	stddev = math.Sqrt(stddev / float64(len(xs)))
	return mean, stddev, min, max
}

// #endregion stats
