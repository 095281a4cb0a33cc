package entity

// View is the client-facing projection of a room: display names only, no
// internal player ids.
type View struct {
	ID          string   `json:"id"`
	Players     []string `json:"players"`
	Board       Board    `json:"board"`
	CurrentTurn Symbol   `json:"currentTurn"`
	Winner      Symbol   `json:"winner"`
	IsFull      bool     `json:"isFull"`
}

func (that *View) IsFinished() bool {
	return that.Winner != EmptyCell
}

func (that *View) Status() string {
	switch {
	case that.IsFinished():
		return StatusFinished
	case that.IsFull:
		return StatusOngoing
	default:
		return StatusWaiting
	}
}
