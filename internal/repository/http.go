package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	retryWaitTime    = 100 * time.Millisecond
	retryMaxWaitTime = time.Second
)

type errorResponse struct {
	Error string `json:"error"`
}

type httpRoom struct {
	client *resty.Client
}

// NewHTTPRoomRepository talks to a remote Room Store over its REST API
// (/rooms). Every request is bounded by timeout. Only reads are retried:
// a failed write has an unknown outcome and the caller must re-read.
func NewHTTPRoomRepository(baseURL string, timeout time.Duration, readRetries int) RoomRepository {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(readRetries).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil && resp != nil && resp.Request != nil && resp.Request.Method == http.MethodGet
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &httpRoom{
		client: client,
	}
}

// HTTPCallTimeout is how long one store call may take with every read retry
// and the waits between them. Callers that bound a call with their own
// deadline should allow at least this much, or retries never get a chance.
func HTTPCallTimeout(requestTimeout time.Duration, readRetries int) time.Duration {
	if readRetries < 0 {
		readRetries = 0
	}

	return requestTimeout*time.Duration(readRetries+1) + retryMaxWaitTime*time.Duration(readRetries)
}

func (that *httpRoom) List(ctx context.Context) ([]*entity.Room, error) {
	var rooms []*entity.Room

	resp, err := that.client.R().
		SetContext(ctx).
		SetResult(&rooms).
		SetError(&errorResponse{}).
		Get("/rooms")
	if err = checkResponse(resp, err, "list rooms", nil); err != nil {
		return nil, err
	}

	if rooms == nil {
		rooms = make([]*entity.Room, 0)
	}

	return rooms, nil
}

func (that *httpRoom) Get(ctx context.Context, id string) (*entity.Room, error) {
	var room entity.Room

	resp, err := that.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&room).
		SetError(&errorResponse{}).
		Get("/rooms/{id}")
	if err = checkResponse(resp, err, "get room", apperror.ErrRoomNotFound); err != nil {
		return nil, err
	}

	return &room, nil
}

func (that *httpRoom) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	var created entity.Room

	resp, err := that.client.R().
		SetContext(ctx).
		SetBody(room).
		SetResult(&created).
		SetError(&errorResponse{}).
		Post("/rooms")
	if err = checkResponse(resp, err, "create room", nil); err != nil {
		return nil, err
	}

	return &created, nil
}

func (that *httpRoom) Replace(ctx context.Context, id string, room *entity.Room) (*entity.Room, error) {
	var replaced entity.Room

	resp, err := that.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(room).
		SetResult(&replaced).
		SetError(&errorResponse{}).
		Put("/rooms/{id}")
	if err = checkResponse(resp, err, "replace room", apperror.ErrRoomNotFound); err != nil {
		return nil, err
	}

	return &replaced, nil
}

func (that *httpRoom) Delete(ctx context.Context, id string) (*entity.Room, error) {
	var deleted entity.Room

	resp, err := that.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&deleted).
		SetError(&errorResponse{}).
		Delete("/rooms/{id}")
	if err = checkResponse(resp, err, "delete room", apperror.ErrRoomNotFound); err != nil {
		return nil, err
	}

	return &deleted, nil
}

// checkResponse maps a store API response onto the repository errors.
func checkResponse(resp *resty.Response, err error, action string, errNotFound error) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w: %w", action, apperror.ErrTransport, err)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusNotFound && errNotFound != nil:
		return errNotFound
	case status == http.StatusConflict:
		return apperror.ErrRoomExists
	case status == http.StatusBadRequest:
		return fmt.Errorf("failed to %s: %w: %s", action, apperror.ErrInvalidRoom, errorMessage(resp))
	case resp.IsError():
		return fmt.Errorf("failed to %s: %w: status %d: %s", action, apperror.ErrTransport, status, errorMessage(resp))
	}

	return nil
}

func errorMessage(resp *resty.Response) string {
	if body, ok := resp.Error().(*errorResponse); ok && body.Error != "" {
		return body.Error
	}
	return resp.Status()
}
