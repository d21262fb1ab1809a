package game

// ActionKind identifies the command a player sends to a game.
type ActionKind int

const (
	MoveAction ActionKind = iota
	OfferDrawAction
	AcceptDrawAction
	ResignAction
)

func (k ActionKind) String() string {
	switch k {
	case MoveAction:
		return "move"
	case OfferDrawAction:
		return "offer draw"
	case AcceptDrawAction:
		return "accept draw"
	case ResignAction:
		return "resign"
	}
	return "unknown action"
}

// Action is one command applied to a game. SAN is only set for moves and
// draw offers.
type Action struct {
	Kind ActionKind
	SAN  string
}

// MakeMove plays the move written in SAN.
func MakeMove(san string) Action {
	return Action{Kind: MoveAction, SAN: san}
}

// OfferDraw plays the move written in SAN and offers a draw with it.
func OfferDraw(san string) Action {
	return Action{Kind: OfferDrawAction, SAN: san}
}

// AcceptDraw accepts the draw the opponent offered with their last move.
func AcceptDraw() Action {
	return Action{Kind: AcceptDrawAction}
}

// Resign concedes the game for the side to move.
func Resign() Action {
	return Action{Kind: ResignAction}
}

func (a Action) String() string {
	if a.SAN == "" {
		return a.Kind.String()
	}
	return a.Kind.String() + " " + a.SAN
}

// Status is the state of a game. Every value except Ongoing is terminal.
type Status int

const (
	Ongoing Status = iota
	WhiteCheckmates
	BlackCheckmates
	WhiteResigns
	BlackResigns
	Stalemate
	DrawAccepted
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case WhiteCheckmates:
		return "white checkmates"
	case BlackCheckmates:
		return "black checkmates"
	case WhiteResigns:
		return "white resigns"
	case BlackResigns:
		return "black resigns"
	case Stalemate:
		return "stalemate"
	case DrawAccepted:
		return "draw accepted"
	}
	return "unknown status"
}

// IsOver reports whether the status is terminal.
func (s Status) IsOver() bool {
	return s != Ongoing
}

// Result returns the score in the usual "1-0", "0-1", "1/2-1/2" form,
// or "*" while the game is in progress.
func (s Status) Result() string {
	switch s {
	case WhiteCheckmates, BlackResigns:
		return "1-0"
	case BlackCheckmates, WhiteResigns:
		return "0-1"
	case Stalemate, DrawAccepted:
		return "1/2-1/2"
	}
	return "*"
}
