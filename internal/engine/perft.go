package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the current position itself.
func Perft(g *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.Make(m)
		nodes += Perft(g, depth-1)
		g.Undo(m)
	}
	return nodes
}

// PerftCache memoises subtree counts by position signature and depth.
type PerftCache interface {
	Lookup(signature uint64, depth int) (uint64, bool)
	Store(signature uint64, depth int, nodes uint64)
}

// CachedPerft is Perft with subtree counts looked up in and stored to cache.
func CachedPerft(g *GameState, depth int, cache PerftCache) uint64 {
	if depth <= 1 || cache == nil {
		return Perft(g, depth)
	}
	sig := g.Signature()
	if nodes, ok := cache.Lookup(sig, depth); ok {
		return nodes
	}
	var nodes uint64
	for _, m := range g.LegalMoves() {
		g.Make(m)
		nodes += CachedPerft(g, depth-1, cache)
		g.Undo(m)
	}
	cache.Store(sig, depth, nodes)
	return nodes
}
