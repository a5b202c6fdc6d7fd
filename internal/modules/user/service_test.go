package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/georgemunganga/printa-pos/internal/resource"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	hashCost = bcrypt.MinCost
}

func TestCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := resource.NewMemoryRepository[User]()
	svc := NewService(repo)

	u, err := svc.Create(ctx, resource.Fields{
		"username": "cashier",
		"password": "s3cret-pass",
		"staff_id": json.Number("4"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", u.Password)
	assert.True(t, CheckPassword(u, "s3cret-pass"))
	assert.False(t, CheckPassword(u, "wrong-pass"))

	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, CheckPassword(stored, "s3cret-pass"))
}

func TestUpdateRehashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(resource.NewMemoryRepository[User]())
	u, err := svc.Create(ctx, resource.Fields{"username": "cashier", "password": "first-pass", "staff_id": "1"})
	require.NoError(t, err)

	u, err = svc.Update(ctx, u.ID, resource.Fields{"username": "cashier", "password": "second-pass", "staff_id": "1"})
	require.NoError(t, err)
	assert.True(t, CheckPassword(u, "second-pass"))

	u, err = svc.Update(ctx, u.ID, resource.Fields{"username": "cashier"})
	require.NoError(t, err)
	assert.Empty(t, u.Password)
	assert.Zero(t, u.StaffID)
}

func TestCreateValidatesPasswordLength(t *testing.T) {
	svc := NewService(resource.NewMemoryRepository[User]())
	_, err := svc.Create(context.Background(), resource.Fields{"username": "x", "password": "short", "staff_id": "1"})
	var verr *resource.ValidationError
	require.ErrorAs(t, err, &verr)
	msg, _ := verr.Errors.Get("password")
	assert.Equal(t, "The password field must be at least 8 characters.", msg)
}

func TestPasswordNeverSerialized(t *testing.T) {
	b, err := json.Marshal(User{Username: "cashier", Password: "hash", StaffID: 2})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "hash")
	assert.Contains(t, string(b), `"staff_id":2`)
}

func TestCreateAcceptsLongPassword(t *testing.T) {
	svc := NewService(resource.NewMemoryRepository[User]())
	long := strings.Repeat("a", 80)

	u, err := svc.Create(context.Background(), resource.Fields{"username": "cashier", "password": long, "staff_id": "1"})
	require.NoError(t, err)
	assert.True(t, CheckPassword(u, long))
	assert.False(t, CheckPassword(u, strings.Repeat("a", 72)), "bytes past 72 still count")
}

func TestCreateLongPasswordOverHTTP(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(NewService(resource.NewMemoryRepository[User]()), resource.Options{}).RegisterRoutes(r)

	body := `{"username":"cashier","password":"` + strings.Repeat("a", 80) + `","staff_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	assert.Equal(t, "success", out["status"])
	assert.NotContains(t, out["new_data"], "password")
}
