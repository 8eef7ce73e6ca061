package holdem

// ResolveTurnOrder computes the first-to-act seat and the closing seat for a
// street from the dealer position and seat count. Either seat is -1 when no
// ACTIVE seat exists.
//
// Heads-up, the blinds collapse the usual positions: pre-flop the dealer
// acts first and the other seat closes, and post-flop the order inverts.
// With three or more seats, pre-flop opens under the gun (three left of the
// dealer) and closes on the big blind; post-flop opens one left of the
// dealer and closes on the dealer.
func ResolveTurnOrder(g *Game, street GameState) (firstToAct, closer int) {
	n := len(g.Players)
	if n == 0 {
		return -1, -1
	}

	if n == 2 {
		if street == GameStatePreFlop {
			firstToAct = g.DealerIndex
			closer = (g.DealerIndex + 1) % n
		} else {
			firstToAct = (g.DealerIndex + 1) % n
			closer = g.DealerIndex
		}
	} else {
		if street == GameStatePreFlop {
			firstToAct = (g.DealerIndex + 3) % n
			closer = (g.DealerIndex + 2) % n
		} else {
			firstToAct = (g.DealerIndex + 1) % n
			closer = g.DealerIndex
		}
	}

	firstToAct = g.nearestActiveSeat(firstToAct, 1)
	closer = g.nearestActiveSeat(closer, -1)

	return firstToAct, closer
}

// nearestActiveSeat scans from the seat in the given direction, wrapping
// around the table, for a seat whose player is still ACTIVE. Returns -1 if
// no such seat exists.
func (g *Game) nearestActiveSeat(seat, direction int) int {
	n := len(g.Players)
	for i := 0; i < n; i++ {
		index := ((seat+i*direction)%n + n) % n
		if g.Players[index].State == PlayerStateActive {
			return index
		}
	}

	return -1
}

// resolveTurn points the turn at the street's first-to-act seat and records
// the closing seat. The round is not considered started until the first
// decision registers.
func (g *Game) resolveTurn(street GameState) {
	firstToAct, closer := ResolveTurnOrder(g, street)

	g.CurrentPlayerIndex = firstToAct
	g.RoundStarted = false

	if closer >= 0 {
		g.TradingEndUserID = g.Players[closer].UserID
	} else {
		g.TradingEndUserID = ""
	}
}
