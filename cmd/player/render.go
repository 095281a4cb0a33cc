package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// renderView prints the board with free cells numbered, followed by a status
// line. mine is the viewer's mark, or EmptyCell for a spectator.
func renderView(w io.Writer, view *entity.View, mine entity.Symbol) {
	var b strings.Builder

	fmt.Fprintf(&b, "room %s [%s] players: %s\n", view.ID, view.Status(), strings.Join(view.Players, ", "))

	for row := range 3 {
		cells := make([]string, 3)
		for col := range 3 {
			index := row*3 + col
			if mark := view.Board[index]; mark != entity.EmptyCell {
				cells[col] = string(mark)
			} else {
				cells[col] = strconv.Itoa(index)
			}
		}

		b.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < 2 {
			b.WriteString("---+---+---\n")
		}
	}

	b.WriteString(statusLine(view, mine) + "\n")

	_, _ = io.WriteString(w, b.String())
}

func statusLine(view *entity.View, mine entity.Symbol) string {
	switch {
	case view.Winner == entity.Draw:
		return "draw"
	case view.IsFinished() && mine == entity.EmptyCell:
		return string(view.Winner) + " wins"
	case view.IsFinished() && view.Winner == mine:
		return "you win"
	case view.IsFinished():
		return "you lose"
	case !view.IsFull:
		return "waiting for an opponent"
	case mine == entity.EmptyCell:
		return string(view.CurrentTurn) + " to move"
	case view.CurrentTurn == mine:
		return "your turn"
	default:
		return "opponent's turn"
	}
}

func renderList(w io.Writer, views []*entity.View) {
	if len(views) == 0 {
		_, _ = io.WriteString(w, "no rooms\n")
		return
	}

	for _, view := range views {
		fmt.Fprintf(w, "%s  %-8s  %d/%d  %s\n",
			view.ID, view.Status(), len(view.Players), entity.MaxPlayers, strings.Join(view.Players, ", "))
	}
}

// viewKey identifies a snapshot so unchanged polls are not printed again.
func viewKey(view *entity.View) string {
	var b strings.Builder
	for _, cell := range view.Board {
		b.WriteString(string(cell) + ",")
	}

	return fmt.Sprintf("%s|%s|%s|%d", b.String(), view.CurrentTurn, view.Winner, len(view.Players))
}
