package searcher

import "connect4/game"

// Rewards of a finished playout from the searching player's perspective
const WIN = 1
const LOSS = -WIN
const TIE = 0

func reward(result game.MatchResult, player game.Player) int {
	winner, ok := result.Winner()
	switch {
	case !ok:
		return TIE
	case winner == player:
		return WIN
	default:
		return LOSS
	}
}

// tally of playout outcomes for one candidate move
type tally struct {
	wins   int
	losses int
	ties   int
}

func (t *tally) record(r int) {
	switch r {
	case WIN:
		t.wins++
	case LOSS:
		t.losses++
	default:
		t.ties++
	}
}

func (t *tally) merge(other tally) {
	t.wins += other.wins
	t.losses += other.losses
	t.ties += other.ties
}
