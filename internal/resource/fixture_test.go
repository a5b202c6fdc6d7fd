package resource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Model
	Name  string  `json:"name" form:"name"`
	Count int64   `json:"count" form:"count"`
	Price float64 `json:"price" form:"price"`
	Note  *string `json:"note" form:"note"`
	Day   Date    `json:"day" form:"day"`
}

var widgetSchema = MustSchema(
	Field{Name: "name", Rules: "required,string,max=20"},
	Field{Name: "count", Rules: "required,integer"},
	Field{Name: "price", Rules: "required,numeric"},
	Field{Name: "note", Rules: "nullable,string,max=50"},
	Field{Name: "day", Rules: "nullable,date"},
)

func widgetDefinition() Definition[widget] {
	return Definition[widget]{
		Name:   "widget",
		Schema: widgetSchema,
	}
}

type brokenRepo struct{}

var errBroken = errors.New("connection refused")

func (brokenRepo) List(context.Context) ([]*widget, error)         { return nil, errBroken }
func (brokenRepo) GetByID(context.Context, int64) (*widget, error) { return nil, errBroken }
func (brokenRepo) Create(context.Context, *widget) error           { return errBroken }
func (brokenRepo) Update(context.Context, *widget) error           { return errBroken }
func (brokenRepo) Delete(context.Context, *widget) error           { return errBroken }

func newWidgetRouter(t *testing.T, def Definition[widget], repo Repository[widget], opts Options) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(NewService[widget](def, repo), opts).RegisterRoutes(r)
	return r
}

func send(r http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, codec.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
