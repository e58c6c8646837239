package rest

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dmitrijs2005/secondchance/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems_CRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.router, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(t, env.router, http.MethodPost, "/items",
		`{"name":"Chair","category":"Living","condition":"Used","posted_by":"u1","zipcode":"10001",
		  "description":"oak","image":"/images/chair.png","age_days":"400"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Item](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 400.0, created.AgeDays)
	assert.Equal(t, 1.1, created.AgeYears)
	assert.NotZero(t, created.DateAdded)
	assert.Nil(t, created.UpdatedAt)

	rec = doRequest(t, env.router, http.MethodGet, "/items/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Chair", decode[models.Item](t, rec).Name)

	rec = doRequest(t, env.router, http.MethodPut, "/items/"+created.ID,
		`{"name":"Ignored","category":"Office","condition":"Worn","description":"scratched","age_days":730}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Item](t, rec)
	assert.Equal(t, "Chair", updated.Name)
	assert.Equal(t, "Office", updated.Category)
	assert.Equal(t, 2.0, updated.AgeYears)
	assert.Equal(t, created.DateAdded, updated.DateAdded)
	assert.NotNil(t, updated.UpdatedAt)

	rec = doRequest(t, env.router, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Item](t, rec), 1)

	rec = doRequest(t, env.router, http.MethodDelete, "/items/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, env.router, http.MethodDelete, "/items/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItems_NotFoundMessage(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"category":"x","age_days":1}`},
		{http.MethodDelete, ""},
	} {
		rec := doRequest(t, env.router, tc.method, "/items/missing", tc.body, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, tc.method)
		assert.Equal(t, `No items with ID "missing"`, decode[errorResponse](t, rec).Error)
	}
}

func TestItems_BadAgeDays(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.router, http.MethodPost, "/items", `{"name":"Chair","age_days":"old"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidBody, decode[errorResponse](t, rec).Error)
}

func multipartItem(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	fw, err := w.CreateFormFile("file", "chair.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\x89PNG fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestItems_CreateFromMultipartForm(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartItem(t, map[string]string{
		"name":      "Chair",
		"category":  "Living",
		"condition": "Used",
		"posted_by": "u1",
		"zipcode":   "10001",
		"image":     "/images/chair.png",
		"age_days":  "730",
	})
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.Item](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Chair", created.Name)
	assert.Equal(t, "Living", created.Category)
	assert.Equal(t, "u1", created.PostedBy)
	assert.Equal(t, "/images/chair.png", created.Image)
	assert.Equal(t, 730.0, created.AgeDays)
	assert.Equal(t, 2.0, created.AgeYears)
}

func TestItems_UpdateFromURLEncodedForm(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.router, http.MethodPost, "/items", `{"name":"Desk","category":"Office","age_days":10}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[models.Item](t, rec).ID

	form := url.Values{"category": {"Study"}, "condition": {"Worn"}, "description": {"ink"}, "age_days": {"365"}}
	req := httptest.NewRequest(http.MethodPut, "/items/"+id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Item](t, rec)
	assert.Equal(t, "Desk", updated.Name)
	assert.Equal(t, "Study", updated.Category)
	assert.Equal(t, 1.0, updated.AgeYears)
}

func TestItems_MultipartBadAgeDays(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartItem(t, map[string]string{"name": "Chair", "age_days": "old"})
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
