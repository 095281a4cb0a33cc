package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// storeHandlers serve the raw Room Store contract. They do not apply game
// rules: a PUT overwrites whatever is stored, last write wins.
type storeHandlers struct {
	logger *slog.Logger
	store  roomStore
}

func newStoreHandlers(logger *slog.Logger, store roomStore) *storeHandlers {
	return &storeHandlers{
		logger: logger.With("component", "store-api"),
		store:  store,
	}
}

func (that *storeHandlers) List(c *gin.Context) {
	rooms, err := that.store.List(c.Request.Context())
	if err != nil {
		that.fail(c, fmt.Errorf("failed to list rooms: %w", err))
		return
	}

	c.JSON(http.StatusOK, rooms)
}

func (that *storeHandlers) Get(c *gin.Context) {
	room, err := that.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

func (that *storeHandlers) Create(c *gin.Context) {
	room, ok := that.bindRoom(c)
	if !ok {
		return
	}

	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}

	if err := room.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	created, err := that.store.Create(c.Request.Context(), room)
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (that *storeHandlers) Replace(c *gin.Context) {
	room, ok := that.bindRoom(c)
	if !ok {
		return
	}

	id := c.Param("id")
	room.ID = id

	if err := room.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	replaced, err := that.store.Replace(c.Request.Context(), id, room)
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, replaced)
}

func (that *storeHandlers) Delete(c *gin.Context) {
	deleted, err := that.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, deleted)
}

func (that *storeHandlers) bindRoom(c *gin.Context) (*entity.Room, bool) {
	var room entity.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("%w: %w", apperror.ErrInvalidRoom, err))
		return nil, false
	}

	if room.Players == nil {
		room.Players = []entity.Player{}
	}

	return &room, true
}

func (that *storeHandlers) fail(c *gin.Context, err error) {
	status := errorStatus(err, http.StatusInternalServerError)
	if status == http.StatusInternalServerError {
		that.logger.Error("store request failed", "path", c.FullPath(), "error", err)
	}

	abortWithError(c, status, err)
}
