package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/client"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/service"
)

// main - is the entry point of the player client. It talks to a room server over its store API.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "player",
		Usage: "play tic-tac-toe against another player through a shared room server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yml",
				Usage: "path to the config file",
			},
			&cli.StringFlag{
				Name:    "store-url",
				Usage:   "room server address, overrides client.store-url",
				EnvVars: []string{"CLIENT_STORE_URL"},
			},
			&cli.StringFlag{
				Name:    "player-id",
				Usage:   "keeps your seat across commands; generated when empty",
				EnvVars: []string{"PLAYER_ID"},
			},
			&cli.StringFlag{
				Name:    "name",
				Usage:   "display name; a random one is used when empty",
				EnvVars: []string{"PLAYER_NAME"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "create a room and take the first seat",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "wait", Usage: "wait until an opponent joins"}},
				Action: createAction,
			},
			{
				Name:      "join",
				Usage:     "join a room by its code",
				ArgsUsage: "CODE",
				Action:    joinAction,
			},
			{
				Name:      "move",
				Usage:     "place your mark on a cell (0-8, row by row)",
				ArgsUsage: "CODE CELL",
				Action:    moveAction,
			},
			{
				Name:      "reset",
				Usage:     "clear the board for a rematch",
				ArgsUsage: "CODE",
				Action:    resetAction,
			},
			{
				Name:      "show",
				Usage:     "print the current state of a room",
				ArgsUsage: "CODE",
				Action:    showAction,
			},
			{
				Name:   "list",
				Usage:  "list all rooms",
				Action: listAction,
			},
			{
				Name:      "watch",
				Usage:     "follow a room until the game is over",
				ArgsUsage: "CODE",
				Action:    watchAction,
			},
			{
				Name:      "play",
				Usage:     "play a whole game from the terminal",
				ArgsUsage: "[CODE]",
				Action:    playAction,
			},
			{
				Name:      "delete",
				Usage:     "delete a room",
				ArgsUsage: "CODE",
				Action:    deleteAction,
			},
		},
	}
}

// player bundles everything a command needs.
type player struct {
	logger  *slog.Logger
	conf    *config.Config
	rooms   service.RoomService
	session *client.Session
	poller  *client.Poller
}

func newPlayer(c *cli.Context) (*player, error) {
	conf, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if storeURL := c.String("store-url"); storeURL != "" {
		conf.Client.StoreURL = storeURL
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.ParseLogLevel(conf.LogLevel)}))

	store := repository.NewHTTPRoomRepository(conf.Client.StoreURL, conf.Client.RequestTimeout, conf.Client.ReadRetries)
	callTimeout := repository.HTTPCallTimeout(conf.Client.RequestTimeout, conf.Client.ReadRetries)
	rooms := service.NewRoomService(logger, store, callTimeout)
	games := service.NewGameService(logger, store, callTimeout)

	session := client.NewSession(logger, rooms, games, c.String("player-id"), c.String("name"), client.Options{
		JoinRetries:     conf.Client.JoinRetries,
		JoinVerifyDelay: conf.Client.JoinVerifyDelay,
	})

	return &player{
		logger:  logger,
		conf:    conf,
		rooms:   rooms,
		session: session,
		poller:  client.NewPoller(logger, rooms, conf.Client.PollInterval),
	}, nil
}
