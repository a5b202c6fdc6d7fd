package resource

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonType = "application/json"

func TestHandlerLists(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})

	rec := send(r, http.MethodGet, "/api/widget/lists", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success","data":[],"status_code":200}`, rec.Body.String())

	send(r, http.MethodPost, "/api/widget/create", jsonType, `{"name":"Bolt","count":3,"price":2.5}`)
	send(r, http.MethodPost, "/api/widget/create", jsonType, `{"name":"Nut","count":8,"price":0.4}`)

	body := decodeBody(t, send(r, http.MethodGet, "/api/widget/lists", "", ""))
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Bolt", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Nut", data[1].(map[string]interface{})["name"])

	rec = send(r, http.MethodGet, "/api/widget", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var index []map[string]interface{}
	require.NoError(t, codec.Unmarshal(rec.Body.Bytes(), &index))
	require.Len(t, index, 2)
	assert.Equal(t, float64(1), index[0]["id"])
	assert.Equal(t, "Nut", index[1]["name"])
}

func TestHandlerCreate(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})

	rec := send(r, http.MethodPost, "/api/widget/create", jsonType,
		`{"name":"  Bolt  ","count":"3","price":2.5,"note":null,"day":"2024-02-29"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(200), body["status_code"])
	data := body["new_data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Bolt", data["name"])
	assert.Equal(t, float64(3), data["count"])
	assert.Equal(t, 2.5, data["price"])
	assert.Nil(t, data["note"])
	assert.Equal(t, "2024-02-29", data["day"])
	assert.Contains(t, data, "created_at")
	assert.Contains(t, data, "updated_at")
}

func TestHandlerCreateValidationFailure(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})

	rec := send(r, http.MethodPost, "/api/widget/create", jsonType, `{"name":"","count":1.5,"price":"cheap"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": "error",
		"error": {
			"name": "The name field is required.",
			"count": "The count field must be an integer.",
			"price": "The price field must be a number."
		},
		"status_code": 422
	}`, rec.Body.String())

	body := decodeBody(t, send(r, http.MethodGet, "/api/widget/lists", "", ""))
	assert.Empty(t, body["data"])
}

func TestHandlerCreateMalformedBody(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})

	rec := send(r, http.MethodPost, "/api/widget/create", jsonType, `{"name":`)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Len(t, body["error"], 3)
}

func TestHandlerCreateFromForm(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})

	form := url.Values{"name": {"Washer"}, "count": {"12"}, "price": {"0.05"}}
	rec := send(r, http.MethodPost, "/api/widget/create", "application/x-www-form-urlencoded", form.Encode())
	body := decodeBody(t, rec)
	require.Equal(t, "success", body["status"], rec.Body.String())
	data := body["new_data"].(map[string]interface{})
	assert.Equal(t, "Washer", data["name"])
	assert.Equal(t, float64(12), data["count"])

	var buf strings.Builder
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Spring"))
	require.NoError(t, mw.WriteField("count", "2"))
	require.NoError(t, mw.WriteField("price", "1"))
	require.NoError(t, mw.Close())
	rec = send(r, http.MethodPost, "/api/widget/create", mw.FormDataContentType(), buf.String())
	body = decodeBody(t, rec)
	require.Equal(t, "success", body["status"], rec.Body.String())
	assert.Equal(t, "Spring", body["new_data"].(map[string]interface{})["name"])
}

func TestHandlerCreateFromQuery(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})

	rec := send(r, http.MethodPost, "/api/widget/create?name=Query&count=1", jsonType, `{"price":3,"count":2}`)
	body := decodeBody(t, rec)
	data := body["new_data"].(map[string]interface{})
	assert.Equal(t, "Query", data["name"])
	assert.Equal(t, float64(2), data["count"])
}

func TestHandlerUpdate(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})
	send(r, http.MethodPost, "/api/widget/create", jsonType, `{"name":"Bolt","count":3,"price":2.5,"note":"steel"}`)

	rec := send(r, http.MethodPost, "/api/widget/update", jsonType, `{"id":1,"name":"Bolt M8","count":4}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	data := body["update_data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Bolt M8", data["name"])
	assert.Equal(t, float64(4), data["count"])
	assert.Equal(t, float64(0), data["price"])
	assert.Nil(t, data["note"])

	rec = send(r, http.MethodPost, "/api/widget/update", jsonType, `{"id":1,"name":""}`)
	body = decodeBody(t, rec)
	assert.Equal(t, "success", body["status"], "update does not validate")
}

func TestHandlerUpdateMissing(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})

	for _, payload := range []string{`{"id":99,"name":"Ghost"}`, `{"name":"Ghost"}`, `{"id":"abc"}`} {
		rec := send(r, http.MethodPost, "/api/widget/update", jsonType, payload)
		assert.Equal(t, http.StatusOK, rec.Code, payload)
		assert.Empty(t, rec.Body.String(), payload)
	}

	body := decodeBody(t, send(r, http.MethodGet, "/api/widget/lists", "", ""))
	assert.Empty(t, body["data"])
}

func TestHandlerDelete(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{})
	send(r, http.MethodPost, "/api/widget/create", jsonType, `{"name":"Bolt","count":3,"price":2.5}`)

	rec := send(r, http.MethodPost, "/api/widget/delete", jsonType, `{"id":"1"}`)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Bolt", body["delete_data"].(map[string]interface{})["name"])

	rec = send(r, http.MethodPost, "/api/widget/delete", jsonType, `{"id":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"resource not found","status_code":200}`, rec.Body.String())
}

func TestHandlerEntityNotFoundCode(t *testing.T) {
	def := widgetDefinition()
	def.NotFound = NotFound{Status: "resource not found", StatusCode: http.StatusNotFound}
	r := newWidgetRouter(t, def, NewMemoryRepository[widget](), Options{})

	rec := send(r, http.MethodPost, "/api/widget/delete", jsonType, `{"id":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"resource not found","status_code":404}`, rec.Body.String())
}

func TestHandlerStrictPolicy(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), NewMemoryRepository[widget](), Options{Policy: PolicyStrict})

	rec := send(r, http.MethodPost, "/api/widget/create", jsonType, `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "error", decodeBody(t, rec)["status"])

	rec = send(r, http.MethodPost, "/api/widget/update", jsonType, `{"id":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"resource not found","status_code":404}`, rec.Body.String())

	rec = send(r, http.MethodPost, "/api/widget/delete", jsonType, `{"id":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"resource not found","status_code":404}`, rec.Body.String())
}

func TestHandlerServerError(t *testing.T) {
	r := newWidgetRouter(t, widgetDefinition(), brokenRepo{}, Options{})
	rec := send(r, http.MethodGet, "/api/widget/lists", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server Error"}`, rec.Body.String())

	r = newWidgetRouter(t, widgetDefinition(), brokenRepo{}, Options{Debug: true})
	rec = send(r, http.MethodPost, "/api/widget/delete", jsonType, `{"id":1}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int64
		ok   bool
	}{
		{"7", 7, true},
		{float64(9), 9, true},
		{nil, 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"x", 0, false},
	}
	for _, tt := range tests {
		id, ok := parseID(Fields{"id": tt.in})
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, id, "%v", tt.in)
	}
}
