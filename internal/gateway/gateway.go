// Package gateway models the ledger's API surface without real transport.
// A caller hands it a verb, a logical endpoint and an optional JSON
// payload; it routes to the service and wraps the outcome in a uniform
// envelope.
package gateway

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tally/internal/model"
	"tally/internal/query"
	"tally/internal/service"
)

// Envelope is the uniform result wrapper for every dispatched operation.
type Envelope struct {
	Method    string `json:"method"`
	Endpoint  string `json:"endpoint"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
}

// DeleteResult confirms a removed record.
type DeleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

type Gateway struct {
	svc *service.TransactionService
	log zerolog.Logger
	now func() time.Time
}

func New(svc *service.TransactionService, log zerolog.Logger) *Gateway {
	return &Gateway{
		svc: svc,
		log: log.With().Str("component", "gateway").Logger(),
		now: time.Now,
	}
}

// Dispatch routes one logical request and never returns an error: failures
// are translated into the envelope's status and message.
func (g *Gateway) Dispatch(method, endpoint string, payload []byte) Envelope {
	method = strings.ToUpper(strings.TrimSpace(method))

	data, status, err := g.route(method, endpoint, payload)

	env := Envelope{
		Method:    method,
		Endpoint:  endpoint,
		Timestamp: g.now().Format(time.RFC3339),
		Status:    status,
		Message:   "Success",
	}
	if err != nil {
		env.Message = err.Error()
		g.log.Warn().Str("method", method).Str("endpoint", endpoint).
			Int("status", status).Err(err).Msg("request failed")
		return env
	}

	env.Data = data
	g.log.Debug().Str("method", method).Str("endpoint", endpoint).
		Int("status", status).Msg("request handled")
	return env
}

func (g *Gateway) route(method, endpoint string, payload []byte) (any, int, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, 404, model.NewValidationError("unknown endpoint: %q", endpoint)
	}

	// Accept an optional /api prefix; both spellings hit the same routes.
	path := strings.TrimPrefix(u.Path, "/api")
	path = strings.TrimSuffix(path, "/")

	switch {
	case path == "/transactions":
		return g.routeCollection(method, u.Query(), payload)
	case path == "/transactions/analytics":
		return g.routeAnalytics(method)
	case strings.HasPrefix(path, "/transactions/"):
		idStr := strings.TrimPrefix(path, "/transactions/")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, 404, model.NewValidationError("unknown endpoint: %q", endpoint)
		}
		return g.routeItem(method, id, payload)
	default:
		return nil, 404, model.NewValidationError("unknown endpoint: %q", endpoint)
	}
}

func (g *Gateway) routeCollection(method string, params url.Values, payload []byte) (any, int, error) {
	switch method {
	case "GET":
		filter, err := query.ParseTypeFilter(params.Get("type"))
		if err != nil {
			return nil, 400, err
		}
		items, err := g.svc.FilterAndSearch(filter, params.Get("search"))
		if err != nil {
			return nil, statusFor(err), err
		}
		return items, 200, nil
	case "POST":
		in, err := decodeInput(payload)
		if err != nil {
			return nil, 400, err
		}
		tx, err := g.svc.Create(in)
		if err != nil {
			return nil, statusFor(err), err
		}
		return tx, 201, nil
	default:
		return nil, 405, model.NewValidationError("method %s not allowed on /transactions", method)
	}
}

func (g *Gateway) routeAnalytics(method string) (any, int, error) {
	if method != "GET" {
		return nil, 405, model.NewValidationError("method %s not allowed on /transactions/analytics", method)
	}
	summary, err := g.svc.Analytics()
	if err != nil {
		return nil, statusFor(err), err
	}
	return summary, 200, nil
}

func (g *Gateway) routeItem(method string, id int64, payload []byte) (any, int, error) {
	switch method {
	case "GET":
		tx, err := g.svc.GetByID(id)
		if err != nil {
			return nil, statusFor(err), err
		}
		return tx, 200, nil
	case "PUT":
		in, err := decodeInput(payload)
		if err != nil {
			return nil, 400, err
		}
		tx, err := g.svc.Update(id, in)
		if err != nil {
			return nil, statusFor(err), err
		}
		return tx, 200, nil
	case "DELETE":
		if err := g.svc.Delete(id); err != nil {
			return nil, statusFor(err), err
		}
		return DeleteResult{ID: id, Deleted: true}, 200, nil
	default:
		return nil, 405, model.NewValidationError("method %s not allowed on /transactions/{id}", method)
	}
}

func decodeInput(payload []byte) (model.TransactionInput, error) {
	var in model.TransactionInput
	if len(payload) == 0 {
		return in, model.NewValidationError("request payload is required")
	}
	if err := json.Unmarshal(payload, &in); err != nil {
		return in, model.NewValidationError("invalid request payload: %v", err)
	}
	return in, nil
}

func statusFor(err error) int {
	switch {
	case model.IsValidation(err):
		return 400
	case model.IsNotFound(err):
		return 404
	default:
		return 500
	}
}
