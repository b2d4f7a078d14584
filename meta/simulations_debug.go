//go:build debug

package meta

// SIMULATIONS defines the number of random playouts per candidate move.
// Debug builds use fewer for faster turns, at the cost of a weaker agent.
const SIMULATIONS = 1_000

// DEBUG reports whether the binary was built with the debug tag.
const DEBUG = true
