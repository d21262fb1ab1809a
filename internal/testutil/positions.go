package testutil

// Reference positions shared by the package tests.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// KiwipeteFEN exercises castling, pins and en passant together.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// RookEndgameFEN is rich in discovered checks along the fifth rank.
	RookEndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// PromotionsFEN has White in check with promotions available to both sides.
	PromotionsFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// DiscoveredCheckFEN has a promotion that gives check.
	DiscoveredCheckFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// PerftCase is a position with a known leaf count at a given depth.
type PerftCase struct {
	Name  string
	FEN   string
	Depth int
	Nodes uint64
	Slow  bool // skipped under -short
}

// PerftSuite lists published perft results for the reference positions.
var PerftSuite = []PerftCase{
	{Name: "start depth 1", FEN: StartFEN, Depth: 1, Nodes: 20},
	{Name: "start depth 2", FEN: StartFEN, Depth: 2, Nodes: 400},
	{Name: "start depth 3", FEN: StartFEN, Depth: 3, Nodes: 8902},
	{Name: "start depth 4", FEN: StartFEN, Depth: 4, Nodes: 197281, Slow: true},
	{Name: "kiwipete depth 1", FEN: KiwipeteFEN, Depth: 1, Nodes: 48},
	{Name: "kiwipete depth 2", FEN: KiwipeteFEN, Depth: 2, Nodes: 2039},
	{Name: "kiwipete depth 3", FEN: KiwipeteFEN, Depth: 3, Nodes: 97862, Slow: true},
	{Name: "rook endgame depth 1", FEN: RookEndgameFEN, Depth: 1, Nodes: 14},
	{Name: "rook endgame depth 3", FEN: RookEndgameFEN, Depth: 3, Nodes: 2812},
	{Name: "rook endgame depth 4", FEN: RookEndgameFEN, Depth: 4, Nodes: 43238, Slow: true},
	{Name: "promotions depth 1", FEN: PromotionsFEN, Depth: 1, Nodes: 6},
	{Name: "promotions depth 2", FEN: PromotionsFEN, Depth: 2, Nodes: 264},
	{Name: "promotions depth 3", FEN: PromotionsFEN, Depth: 3, Nodes: 9467, Slow: true},
	{Name: "discovered check depth 1", FEN: DiscoveredCheckFEN, Depth: 1, Nodes: 44},
	{Name: "discovered check depth 2", FEN: DiscoveredCheckFEN, Depth: 2, Nodes: 1486},
}
