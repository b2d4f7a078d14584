//go:build !debug

package meta

// SIMULATIONS defines the number of random playouts per candidate move.
const SIMULATIONS = 10_000

// DEBUG reports whether the binary was built with the debug tag.
const DEBUG = false
