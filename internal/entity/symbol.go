package entity

import (
	"encoding/json"
	"fmt"
)

// Symbol is a mark on the board. It is also used for the winner field, where
// Draw is a valid value.
type Symbol string

const (
	EmptyCell Symbol = ""
	PlayerX   Symbol = "X"
	PlayerO   Symbol = "O"
	Draw      Symbol = "draw"
)

// Opponent returns the other player's mark.
func (that Symbol) Opponent() Symbol {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Symbol) IsMark() bool {
	return that == PlayerX || that == PlayerO
}

// MarshalJSON encodes an empty symbol as null.
func (that Symbol) MarshalJSON() ([]byte, error) {
	if that == EmptyCell {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Symbol) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = EmptyCell
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal symbol: %w", err)
	}

	*that = Symbol(value)

	return nil
}
