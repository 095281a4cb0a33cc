package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type createGameResponse struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

type joinRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type moveRequest struct {
	PlayerID string `json:"playerId"`
	Cell     *int   `json:"cell"`
}

type symbolResponse struct {
	Symbol entity.Symbol `json:"symbol"`
}

// gameHandlers run the room and move rules server-side for clients that do
// not want to talk to the store directly.
type gameHandlers struct {
	logger *slog.Logger
	rooms  roomService
	games  gameService
}

func newGameHandlers(logger *slog.Logger, rooms roomService, games gameService) *gameHandlers {
	return &gameHandlers{
		logger: logger.With("component", "game-api"),
		rooms:  rooms,
		games:  games,
	}
}

func (that *gameHandlers) Create(c *gin.Context) {
	roomID, err := that.rooms.CreateRoom(c.Request.Context())
	if err != nil {
		// the id goes back with the error so the caller can check whether the room made it
		status := errorStatus(err, http.StatusServiceUnavailable)
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, createGameResponse{ID: roomID, Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, createGameResponse{ID: roomID})
}

func (that *gameHandlers) List(c *gin.Context) {
	views, err := that.rooms.ListRooms(c.Request.Context())
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (that *gameHandlers) Get(c *gin.Context) {
	view, err := that.rooms.GetRoomView(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (that *gameHandlers) Delete(c *gin.Context) {
	if err := that.rooms.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		that.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (that *gameHandlers) Join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("%w: %w", apperror.ErrInvalidPlayer, err))
		return
	}

	view, err := that.rooms.JoinRoom(c.Request.Context(), c.Param("id"), req.PlayerID, req.Name)
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (that *gameHandlers) Symbol(c *gin.Context) {
	symbol, err := that.rooms.PlayerSymbol(c.Request.Context(), c.Param("id"), c.Param("playerId"))
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, symbolResponse{Symbol: symbol})
}

func (that *gameHandlers) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("%w: %w", apperror.ErrInvalidCell, err))
		return
	}

	if req.Cell == nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("%w: cell is required", apperror.ErrInvalidCell))
		return
	}

	view, err := that.games.MakeMove(c.Request.Context(), c.Param("id"), req.PlayerID, *req.Cell)
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (that *gameHandlers) Reset(c *gin.Context) {
	view, err := that.games.ResetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (that *gameHandlers) fail(c *gin.Context, err error) {
	status := errorStatus(err, http.StatusServiceUnavailable)
	if status >= http.StatusInternalServerError {
		that.logger.Error("game request failed", "path", c.FullPath(), "error", err)
	}

	abortWithError(c, status, err)
}
