// meta/meta.go
package meta

import "time"

// GOROUTINES defines the default number of goroutines running playouts.
const GOROUTINES = 1

// GAMES defines the default number of games of an arena experiment.
const GAMES = 20

// RESULTS_DIR defines where experiment records are written.
const RESULTS_DIR = "experiments"

// SeedFn seeds random generators that are not given an explicit seed.
var SeedFn = func() uint64 {
	return uint64(time.Now().UnixNano())
}
