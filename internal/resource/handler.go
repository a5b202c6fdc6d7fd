package resource

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Policy selects how lookups by a missing id are answered.
type Policy string

const (
	// PolicyLegacy keeps each entity's own not-found payload, answers update
	// misses with an empty body and always uses transport status 200.
	PolicyLegacy Policy = "legacy"
	// PolicyStrict answers every miss with 404 and validation errors with 422.
	PolicyStrict Policy = "strict"
)

// Options tunes the handler of every entity.
type Options struct {
	Policy Policy
	// Debug exposes internal error text in 500 responses.
	Debug bool
}

// Envelope is the response body of the list, create, update and delete routes.
type Envelope struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data,omitempty"`
	NewData    interface{} `json:"new_data,omitempty"`
	UpdateData interface{} `json:"update_data,omitempty"`
	DeleteData interface{} `json:"delete_data,omitempty"`
	Error      interface{} `json:"error,omitempty"`
	StatusCode int         `json:"status_code"`
}

// Handler exposes the CRUD endpoints of one entity.
type Handler[T any] struct {
	service Service[T]
	def     Definition[T]
	opts    Options
}

func NewHandler[T any](service Service[T], opts Options) *Handler[T] {
	if opts.Policy == "" {
		opts.Policy = PolicyLegacy
	}
	return &Handler[T]{service: service, def: service.Definition(), opts: opts}
}

func (h *Handler[T]) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/"+h.def.Name, func(r chi.Router) {
		r.Get("/", h.index)         // GET  /api/<name>
		r.Get("/lists", h.list)     // GET  /api/<name>/lists
		r.Post("/create", h.create) // POST /api/<name>/create
		r.Post("/update", h.update) // POST /api/<name>/update
		r.Post("/delete", h.delete) // POST /api/<name>/delete
	})
}

func (h *Handler[T]) index(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	respond(w, http.StatusOK, recs)
}

func (h *Handler[T]) list(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	respond(w, http.StatusOK, Envelope{Status: "success", Data: recs, StatusCode: http.StatusOK})
}

func (h *Handler[T]) create(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Create(r.Context(), DecodeFields(r))
	var verr *ValidationError
	if errors.As(err, &verr) {
		status := http.StatusOK
		if h.opts.Policy == PolicyStrict {
			status = http.StatusUnprocessableEntity
		}
		respond(w, status, Envelope{Status: "error", Error: verr.Errors, StatusCode: http.StatusUnprocessableEntity})
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	respond(w, http.StatusOK, Envelope{Status: "success", NewData: rec, StatusCode: http.StatusOK})
}

func (h *Handler[T]) update(w http.ResponseWriter, r *http.Request) {
	fields := DecodeFields(r)
	id, ok := parseID(fields)
	if !ok {
		h.updateMiss(w)
		return
	}
	rec, err := h.service.Update(r.Context(), id, fields)
	if errors.Is(err, ErrNotFound) {
		h.updateMiss(w)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	respond(w, http.StatusOK, Envelope{Status: "success", UpdateData: rec, StatusCode: http.StatusOK})
}

func (h *Handler[T]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(DecodeFields(r))
	if !ok {
		h.notFound(w)
		return
	}
	rec, err := h.service.Delete(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		h.notFound(w)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	respond(w, http.StatusOK, Envelope{Status: "success", DeleteData: rec, StatusCode: http.StatusOK})
}

// updateMiss answers an update whose record does not exist. The legacy
// policy sends no body at all.
func (h *Handler[T]) updateMiss(w http.ResponseWriter) {
	if h.opts.Policy == PolicyStrict {
		h.notFound(w)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler[T]) notFound(w http.ResponseWriter) {
	if h.opts.Policy == PolicyStrict {
		respond(w, http.StatusNotFound, Envelope{Status: DefaultNotFound.Status, StatusCode: http.StatusNotFound})
		return
	}
	nf := h.def.notFound()
	respond(w, http.StatusOK, Envelope{Status: nf.Status, StatusCode: nf.StatusCode})
}

func (h *Handler[T]) serverError(w http.ResponseWriter, r *http.Request, err error) {
	zap.L().Error("request failed",
		zap.String("resource", h.def.Name),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	msg := "Server Error"
	if h.opts.Debug {
		msg = err.Error()
	}
	respond(w, http.StatusInternalServerError, map[string]string{"message": msg})
}

// parseID reads the id field. Anything that is not a positive integer
// cannot match a record.
func parseID(fields Fields) (int64, bool) {
	raw, ok := fields["id"]
	if !ok || raw == nil {
		return 0, false
	}
	if n, ok := raw.(json.Number); ok {
		raw = n.String()
	}
	id, err := cast.ToInt64E(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
