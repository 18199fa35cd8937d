package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements Store with the same append semantics as the real
// version log, minus the database.
type fakeStore struct {
	versions []PortfolioData
	loadErr  error
	saveErr  error
}

func (f *fakeStore) Bootstrap(ctx context.Context) (PortfolioData, error) {
	if f.loadErr != nil {
		return PortfolioData{}, f.loadErr
	}
	if len(f.versions) == 0 {
		f.versions = append(f.versions, DefaultData())
	}
	return f.versions[len(f.versions)-1], nil
}

func (f *fakeStore) Save(ctx context.Context, partial Partial) (PortfolioData, error) {
	if f.saveErr != nil {
		return PortfolioData{}, f.saveErr
	}
	current, err := f.Bootstrap(ctx)
	if err != nil {
		return PortfolioData{}, err
	}
	merged, err := Merge(current, partial)
	if err != nil {
		return PortfolioData{}, err
	}
	f.versions = append(f.versions, merged)
	return merged, nil
}

func setupRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	// No auth middleware here; the guard has its own tests.
	Register(api, api.Group(""), store, NewCache(nil))
	return r
}

func TestGetContent_SeedsDefaultsOnFirstRun(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got PortfolioData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, DefaultData(), got)
	assert.Len(t, store.versions, 1, "first read persists the seed version")
}

func TestGetContent_BackendErrorIs500(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("connection refused")}
	r := setupRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPutContent_MergeAndAppend(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	body := []byte(`{"tagline":"New tagline","skills":[{"name":"Go","level":95}]}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/content", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.versions, 2, "save appends a new version after the seed")

	latest := store.versions[len(store.versions)-1]
	assert.Equal(t, "New tagline", latest.Tagline)
	assert.Equal(t, []Skill{{Name: "Go", Level: 95}}, latest.Skills)
	assert.Equal(t, DefaultData().Name, latest.Name, "absent fields retained")
}

func TestPutContent_RejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `{{`},
		{"empty object", `{}`},
		{"blank required field", `{"name":"  "}`},
		{"wrong field type", `{"skills":"nope"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			r := setupRouter(store)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/content", bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.LessOrEqual(t, len(store.versions), 1, "no new version on rejected payload")
		})
	}
}

func TestPutContent_SaveFailureIs500(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("insert failed")}
	r := setupRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/content", bytes.NewReader([]byte(`{"tagline":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
