package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	BoardSize  = 9
	MaxPlayers = 2
)

// WinCombos is scanned in this order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Symbol

// UnmarshalJSON accepts exactly BoardSize cells. Decoding straight into the
// array would drop extra cells and pad missing ones.
func (that *Board) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var cells []Symbol
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("%w: failed to unmarshal board: %w", apperror.ErrInvalidRoom, err)
	}

	if len(cells) != BoardSize {
		return fmt.Errorf("%w: board has %d cells, want %d", apperror.ErrInvalidRoom, len(cells), BoardSize)
	}

	copy(that[:], cells)

	return nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Room is the only persisted entity. The store owns it; callers always work
// on a copy fetched right before the mutation.
type Room struct {
	ID          string    `json:"id"`
	Players     []Player  `json:"players"`
	Board       Board     `json:"board"`
	CurrentTurn Symbol    `json:"currentTurn"`
	Winner      Symbol    `json:"winner"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewRoom(id string, createdAt time.Time) *Room {
	return &Room{
		ID:          id,
		Players:     []Player{},
		CurrentTurn: PlayerX,
		CreatedAt:   createdAt.UTC(),
	}
}

func (that *Room) Clone() *Room {
	clone := *that
	clone.Players = make([]Player, len(that.Players))
	copy(clone.Players, that.Players)

	return &clone
}

func (that *Room) IsFull() bool {
	return len(that.Players) == MaxPlayers
}

func (that *Room) IsFinished() bool {
	return that.Winner != EmptyCell
}

func (that *Room) Status() string {
	switch {
	case that.IsFinished():
		return StatusFinished
	case that.IsFull():
		return StatusOngoing
	default:
		return StatusWaiting
	}
}

func (that *Room) Player(playerID string) (Player, bool) {
	for _, player := range that.Players {
		if player.ID == playerID {
			return player, true
		}
	}
	return Player{}, false
}

func (that *Room) HasPlayer(playerID string) bool {
	_, ok := that.Player(playerID)
	return ok
}

// AddPlayer appends a player with the first free mark. Adding a player that
// is already seated is a no-op.
func (that *Room) AddPlayer(playerID, name string) error {
	if that.HasPlayer(playerID) {
		return nil
	}

	if len(that.Players) >= MaxPlayers {
		return apperror.ErrRoomFull
	}

	that.Players = append(that.Players, Player{
		ID:     playerID,
		Name:   name,
		Symbol: that.freeSymbol(),
	})

	return nil
}

func (that *Room) freeSymbol() Symbol {
	for _, player := range that.Players {
		if player.Symbol == PlayerX {
			return PlayerO
		}
	}
	return PlayerX
}

// DetermineGameResult returns the mark of the first complete line, Draw for a
// full board without one, or EmptyCell while the game goes on.
func (that *Room) DetermineGameResult() Symbol {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	if that.Board.IsFull() {
		return Draw
	}

	return EmptyCell
}

// MakeTurn validates and applies a move. On error the room is left untouched.
func (that *Room) MakeTurn(playerID string, cell int) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	player, ok := that.Player(playerID)
	if !ok {
		return apperror.ErrPlayerNotInRoom
	}

	if !that.IsFull() {
		return apperror.ErrGameNotStarted
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.CurrentTurn != player.Symbol {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = player.Symbol

	// the turn does not change once the game is over
	if that.Winner = that.DetermineGameResult(); that.Winner == EmptyCell {
		that.CurrentTurn = player.Symbol.Opponent()
	}

	return nil
}

// Reset starts a new game with the same players.
func (that *Room) Reset() {
	that.Board = Board{}
	that.CurrentTurn = PlayerX
	that.Winner = EmptyCell
}

func (that *Room) View() *View {
	names := make([]string, 0, len(that.Players))
	for _, player := range that.Players {
		names = append(names, player.Name)
	}

	return &View{
		ID:          that.ID,
		Players:     names,
		Board:       that.Board,
		CurrentTurn: that.CurrentTurn,
		Winner:      that.Winner,
		IsFull:      that.IsFull(),
	}
}

// Validate checks the structural invariants of a room received from outside,
// e.g. a PUT body. It does not check that the position is reachable.
func (that *Room) Validate() error {
	if that.ID == "" {
		return fmt.Errorf("%w: id is required", apperror.ErrInvalidRoom)
	}

	if len(that.Players) > MaxPlayers {
		return fmt.Errorf("%w: at most %d players", apperror.ErrInvalidRoom, MaxPlayers)
	}

	seen := make(map[string]bool, len(that.Players))
	marks := make(map[Symbol]bool, len(that.Players))
	for _, player := range that.Players {
		if player.ID == "" || seen[player.ID] {
			return fmt.Errorf("%w: player id %q", apperror.ErrInvalidRoom, player.ID)
		}
		if !player.Symbol.IsMark() || marks[player.Symbol] {
			return fmt.Errorf("%w: player symbol %q", apperror.ErrInvalidRoom, player.Symbol)
		}
		seen[player.ID] = true
		marks[player.Symbol] = true
	}

	for i, cell := range that.Board {
		if cell != EmptyCell && !cell.IsMark() {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidRoom, i, cell)
		}
	}

	if !that.CurrentTurn.IsMark() {
		return fmt.Errorf("%w: current turn %q", apperror.ErrInvalidRoom, that.CurrentTurn)
	}

	if that.Winner != EmptyCell && that.Winner != Draw && !that.Winner.IsMark() {
		return fmt.Errorf("%w: winner %q", apperror.ErrInvalidRoom, that.Winner)
	}

	return nil
}
