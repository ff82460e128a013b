package highcard

// Result represents the outcome of a round of high card
type Result string

const (
	ResultPlayerOneWins Result = "PLAYER_ONE_WINS"
	ResultPlayerTwoWins Result = "PLAYER_TWO_WINS"
	ResultDraw          Result = "DRAW"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsDraw returns true if neither player won
func (r Result) IsDraw() bool {
	return r == ResultDraw
}

// Message returns the announcement line for the result
func (r Result) Message() string {
	switch r {
	case ResultPlayerOneWins:
		return "Player One Wins!"
	case ResultPlayerTwoWins:
		return "Player Two Wins!"
	default:
		return "It's a Draw!"
	}
}
