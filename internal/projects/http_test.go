package projects

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxTestImageBytes = 5 << 20

func setupHandler(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	Register(api, api.Group(""), NewRepo(db), maxTestImageBytes)
	return r, mock
}

func postProject(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProject_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"description":"a crawler"}`},
		{"blank title", `{"title":"   "}`},
		{"bad image when provided", `{"title":"Crawler","image_data":"aGk=","image_type":"text/plain"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, mock := setupHandler(t)
			w := postProject(r, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateProject_ImageOptional(t *testing.T) {
	r, mock := setupHandler(t)

	projectRows := sqlmock.NewRows([]string{"id", "title", "description", "repo_url", "demo_url", "tech_stack", "image_data", "image_type", "created_at"}).
		AddRow("p-1", "Crawler", "a crawler", "https://github.com/x/crawler", "", "{Go,Postgres}", "", "", time.Now())
	mock.ExpectQuery(`insert into projects`).
		WithArgs(sqlmock.AnyArg(), "Crawler", "a crawler", "https://github.com/x/crawler", "",
			sqlmock.AnyArg(), "", "").
		WillReturnRows(projectRows)

	body := `{"title":"Crawler","description":"a crawler","repo_url":"https://github.com/x/crawler","tech_stack":["Go","Postgres"]}`
	w := postProject(r, body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"tech_stack":["Go","Postgres"]`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProject_UnknownIdIs404(t *testing.T) {
	r, mock := setupHandler(t)

	mock.ExpectQuery(`update projects`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "repo_url", "demo_url", "tech_stack", "image_data", "image_type", "created_at"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/missing", bytes.NewReader([]byte(`{"title":"Crawler"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject_NotFound(t *testing.T) {
	r, mock := setupHandler(t)

	mock.ExpectExec(`delete from projects`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/projects/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
