package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/squadraft/internal/adapters/provider"
	"github.com/okian/squadraft/internal/adapters/repository"
	service "github.com/okian/squadraft/internal/app"
	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// classify maps an error to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, "method_not_allowed"
	case errors.Is(err, draft.ErrUnknownStrategy):
		return http.StatusBadRequest, "unknown_strategy"
	case errors.Is(err, draft.ErrDuplicatePlayer):
		return http.StatusBadRequest, "duplicate_player"
	case errors.Is(err, model.ErrUnknownPosition), errors.Is(err, model.ErrMissingName):
		return http.StatusBadRequest, "invalid_player"
	case errors.Is(err, repository.ErrInvalidLimit), errors.Is(err, recommend.ErrInvalidLimit):
		return http.StatusBadRequest, "invalid_limit"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrEmptyPool):
		return http.StatusConflict, "empty_pool"
	case errors.Is(err, service.ErrNoProvider):
		return http.StatusServiceUnavailable, "no_provider"
	case errors.Is(err, service.ErrRefresh):
		return http.StatusBadGateway, "refresh_failed"
	case errors.Is(err, service.ErrNoSeasonLoader), errors.Is(err, provider.ErrNoFixtures):
		return http.StatusServiceUnavailable, "no_season"
	case errors.Is(err, recommend.ErrNoFixtures):
		return http.StatusConflict, "no_fixtures"
	case errors.Is(err, service.ErrSeason):
		return http.StatusBadGateway, "season_failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "cancelled"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
