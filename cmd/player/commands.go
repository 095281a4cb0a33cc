package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/client"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

var (
	errRoomCodeRequired = errors.New("room code is required")
	errCellRequired     = errors.New("cell is required")
	errInputClosed      = errors.New("input closed")
)

func roomCode(c *cli.Context) (string, error) {
	code := c.Args().First()
	if code == "" {
		return "", errRoomCodeRequired
	}
	return code, nil
}

func parseCell(value string) (int, error) {
	if value == "" {
		return 0, errCellRequired
	}

	cell, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, value)
	}

	return cell, nil
}

func createAction(c *cli.Context) error {
	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	view, err := p.session.CreateAndJoin(c.Context)
	if err != nil {
		return err
	}

	printSeat(c, p.session)
	renderView(c.App.Writer, view, p.session.Symbol())

	if !c.Bool("wait") {
		return nil
	}

	fmt.Fprintln(c.App.Writer, "waiting for an opponent...")

	view, err = p.poller.Poll(c.Context, p.session.RoomID(), client.UntilFull, nil)
	if err != nil {
		return err
	}

	renderView(c.App.Writer, view, p.session.Symbol())

	return nil
}

func joinAction(c *cli.Context) error {
	code, err := roomCode(c)
	if err != nil {
		return err
	}

	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	view, err := p.session.Join(c.Context, code)
	if err != nil {
		return err
	}

	printSeat(c, p.session)
	renderView(c.App.Writer, view, p.session.Symbol())

	return nil
}

func moveAction(c *cli.Context) error {
	code, err := roomCode(c)
	if err != nil {
		return err
	}

	cell, err := parseCell(c.Args().Get(1))
	if err != nil {
		return err
	}

	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	if _, err = p.session.Resume(c.Context, code); err != nil {
		return err
	}

	view, err := p.session.Move(c.Context, cell)
	if err != nil {
		return err
	}

	renderView(c.App.Writer, view, p.session.Symbol())

	return nil
}

func resetAction(c *cli.Context) error {
	code, err := roomCode(c)
	if err != nil {
		return err
	}

	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	if _, err = p.session.Resume(c.Context, code); err != nil {
		return err
	}

	view, err := p.session.Reset(c.Context)
	if err != nil {
		return err
	}

	renderView(c.App.Writer, view, p.session.Symbol())

	return nil
}

func showAction(c *cli.Context) error {
	code, err := roomCode(c)
	if err != nil {
		return err
	}

	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	view, err := p.rooms.GetRoomView(c.Context, code)
	if err != nil {
		return err
	}

	renderView(c.App.Writer, view, entity.EmptyCell)

	return nil
}

func listAction(c *cli.Context) error {
	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	views, err := p.rooms.ListRooms(c.Context)
	if err != nil {
		return err
	}

	renderList(c.App.Writer, views)

	return nil
}

func watchAction(c *cli.Context) error {
	code, err := roomCode(c)
	if err != nil {
		return err
	}

	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	var last string
	_, err = p.poller.Poll(c.Context, code, client.UntilFinished, func(view *entity.View) {
		if snapshot := viewKey(view); snapshot != last {
			last = snapshot
			renderView(c.App.Writer, view, entity.EmptyCell)
		}
	})

	return err
}

func deleteAction(c *cli.Context) error {
	code, err := roomCode(c)
	if err != nil {
		return err
	}

	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	if err = p.rooms.DeleteRoom(c.Context, code); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "room %s deleted\n", strings.ToUpper(code))

	return nil
}

// playAction runs a whole game: create or join, then alternate between
// waiting for the opponent and reading a cell from stdin.
func playAction(c *cli.Context) error {
	p, err := newPlayer(c)
	if err != nil {
		return err
	}

	if code := c.Args().First(); code != "" {
		_, err = p.session.Join(c.Context, code)
	} else {
		_, err = p.session.CreateAndJoin(c.Context)
	}
	if err != nil {
		return err
	}

	printSeat(c, p.session)

	input := bufio.NewScanner(c.App.Reader)
	symbol := p.session.Symbol()

	for {
		view, err := p.poller.Poll(c.Context, p.session.RoomID(), client.UntilTurnOf(symbol), nil)
		if err != nil {
			return err
		}

		renderView(c.App.Writer, view, symbol)

		if view.IsFinished() {
			return nil
		}

		view, err = promptMove(c, p.session, input)
		if err != nil {
			return err
		}

		if view.IsFinished() {
			renderView(c.App.Writer, view, symbol)
			return nil
		}
	}
}

// promptMove asks for cells until one is accepted. Rule violations are
// reported and asked again; anything else ends the game.
func promptMove(c *cli.Context, session *client.Session, input *bufio.Scanner) (*entity.View, error) {
	for {
		fmt.Fprint(c.App.Writer, "your move (0-8): ")

		if !input.Scan() {
			if err := input.Err(); err != nil {
				return nil, fmt.Errorf("failed to read move: %w", err)
			}
			return nil, errInputClosed
		}

		cell, err := parseCell(input.Text())
		if err != nil {
			fmt.Fprintln(c.App.Writer, err)
			continue
		}

		view, err := session.Move(c.Context, cell)
		if err == nil {
			return view, nil
		}

		if errors.Is(err, apperror.ErrInvalidInput) || errors.Is(err, apperror.ErrCellOccupied) {
			fmt.Fprintln(c.App.Writer, err)
			continue
		}

		return nil, err
	}
}

func printSeat(c *cli.Context, session *client.Session) {
	fmt.Fprintf(c.App.Writer, "room %s, you play %s as %s (player id %s)\n",
		session.RoomID(), session.Symbol(), session.Name(), session.PlayerID())
}
