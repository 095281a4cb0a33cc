package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type roomStore interface {
	List(ctx context.Context) ([]*entity.Room, error)
	Get(ctx context.Context, id string) (*entity.Room, error)
	Create(ctx context.Context, room *entity.Room) (*entity.Room, error)
	Replace(ctx context.Context, id string, room *entity.Room) (*entity.Room, error)
	Delete(ctx context.Context, id string) (*entity.Room, error)
}

type roomService interface {
	CreateRoom(ctx context.Context) (string, error)
	JoinRoom(ctx context.Context, roomID, playerID, name string) (*entity.View, error)
	GetRoomView(ctx context.Context, roomID string) (*entity.View, error)
	PlayerSymbol(ctx context.Context, roomID, playerID string) (entity.Symbol, error)
	ListRooms(ctx context.Context) ([]*entity.View, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type gameService interface {
	MakeMove(ctx context.Context, roomID, playerID string, cell int) (*entity.View, error)
	ResetGame(ctx context.Context, roomID string) (*entity.View, error)
}

// NewRouter exposes the Room Store under /rooms and the game API under /games.
func NewRouter(logger *slog.Logger, store roomStore, rooms roomService, games gameService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	router.GET("/ping", PingHandler)

	storeHandlers := newStoreHandlers(logger, store)
	roomsGroup := router.Group("/rooms")
	roomsGroup.GET("", storeHandlers.List)
	roomsGroup.POST("", storeHandlers.Create)
	roomsGroup.GET("/:id", storeHandlers.Get)
	roomsGroup.PUT("/:id", storeHandlers.Replace)
	roomsGroup.DELETE("/:id", storeHandlers.Delete)

	gameHandlers := newGameHandlers(logger, rooms, games)
	gamesGroup := router.Group("/games")
	gamesGroup.GET("", gameHandlers.List)
	gamesGroup.POST("", gameHandlers.Create)
	gamesGroup.GET("/:id", gameHandlers.Get)
	gamesGroup.DELETE("/:id", gameHandlers.Delete)
	gamesGroup.POST("/:id/players", gameHandlers.Join)
	gamesGroup.GET("/:id/players/:playerId", gameHandlers.Symbol)
	gamesGroup.POST("/:id/moves", gameHandlers.Move)
	gamesGroup.POST("/:id/reset", gameHandlers.Reset)

	return router
}

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func NewServer(logger *slog.Logger, port string, handler http.Handler) *Server {
	return &Server{
		logger: logger.With("component", "http-server"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// Start blocks until the server is shut down.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	that.logger.Info("Shutting down HTTP server")

	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
