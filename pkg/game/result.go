package game

// Result represents the result of a match.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins

	// Draw is never produced since game end is not detected.
	Draw
)

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case WhiteWins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case BlackWins:
		return "0-1"
	default:
		return "*"
	}
}
