package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	"github.com/vinnynacc/teammate-directory-api/internal/service"
	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
)

type teammateServiceMock struct {
	listResp []models.Teammate
	listErr  error
	getResp  *models.Teammate
	getErr   error
	record   *models.Teammate
	err      error

	lastInput service.TeammateInput
	lastPhoto string
	lastSlug  string
	called    string
}

func (m *teammateServiceMock) List(ctx context.Context) ([]models.Teammate, error) {
	m.called = "list"
	return m.listResp, m.listErr
}

func (m *teammateServiceMock) Get(ctx context.Context, slug string) (*models.Teammate, error) {
	m.called = "get"
	m.lastSlug = slug
	return m.getResp, m.getErr
}

func (m *teammateServiceMock) Create(ctx context.Context, input service.TeammateInput, storedPhoto string) (*models.Teammate, error) {
	m.called = "create"
	m.lastInput = input
	m.lastPhoto = storedPhoto
	return m.record, m.err
}

func (m *teammateServiceMock) Update(ctx context.Context, slug string, input service.TeammateInput, storedPhoto string) (*models.Teammate, error) {
	m.called = "update"
	m.lastSlug = slug
	m.lastInput = input
	m.lastPhoto = storedPhoto
	return m.record, m.err
}

func (m *teammateServiceMock) Delete(ctx context.Context, slug string) (*models.Teammate, error) {
	m.called = "delete"
	m.lastSlug = slug
	return m.record, m.err
}

type exportServiceMock struct {
	result *service.ExportResult
	err    error
	format string
}

func (m *exportServiceMock) Render(ctx context.Context, format string) (*service.ExportResult, error) {
	m.format = format
	return m.result, m.err
}

type uploadStoreMock struct {
	storedName string
	err        error
	savedName  string
	savedBody  []byte
}

func (m *uploadStoreMock) SaveUpload(originalName string, r io.Reader) (string, error) {
	m.savedName = originalName
	m.savedBody, _ = io.ReadAll(r)
	return m.storedName, m.err
}

func newHandlerContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestTeammateHandlerList(t *testing.T) {
	mockSvc := &teammateServiceMock{listResp: []models.Teammate{{Slug: "jane"}}}
	h := NewTeammateHandler(mockSvc, nil, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodGet, "/teammates", nil)

	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "list", mockSvc.called)
	assert.Contains(t, w.Body.String(), `"jane"`)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestTeammateHandlerGetNotFound(t *testing.T) {
	mockSvc := &teammateServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "Teammate not found")}
	h := NewTeammateHandler(mockSvc, nil, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodGet, "/teammates/ghost", nil)
	c.Params = gin.Params{{Key: "slug", Value: "ghost"}}

	h.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ghost", mockSvc.lastSlug)
	assert.Contains(t, w.Body.String(), "Teammate not found")
}

func TestTeammateHandlerCreateJSON(t *testing.T) {
	mockSvc := &teammateServiceMock{record: &models.Teammate{Slug: "jane", Name: "Jane"}}
	h := NewTeammateHandler(mockSvc, nil, nil)

	payload := `{"slug":"jane","name":"Jane","states":"TX, ca"}`
	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodPost, "/teammates", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "create", mockSvc.called)
	require.NotNil(t, mockSvc.lastInput.States)
	assert.Equal(t, service.FlexList{"TX", "ca"}, *mockSvc.lastInput.States)
	assert.Empty(t, mockSvc.lastPhoto)
}

func TestTeammateHandlerCreateInvalidJSON(t *testing.T) {
	mockSvc := &teammateServiceMock{}
	h := NewTeammateHandler(mockSvc, nil, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodPost, "/teammates", strings.NewReader(`{"slug":`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockSvc.called)
}

func TestTeammateHandlerCreateFormURLEncoded(t *testing.T) {
	mockSvc := &teammateServiceMock{record: &models.Teammate{Slug: "jane"}}
	h := NewTeammateHandler(mockSvc, nil, nil)

	form := url.Values{}
	form.Set("slug", "jane")
	form.Set("name", "Jane")
	form.Set("languages", `["English"]`)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodPost, "/teammates", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockSvc.lastInput.Slug)
	assert.Equal(t, "jane", *mockSvc.lastInput.Slug)
	require.NotNil(t, mockSvc.lastInput.Languages)
	assert.Equal(t, service.FlexList{"English"}, *mockSvc.lastInput.Languages)
}

func TestTeammateHandlerCreateMultipartWithPhoto(t *testing.T) {
	mockSvc := &teammateServiceMock{record: &models.Teammate{Slug: "jane"}}
	uploads := &uploadStoreMock{storedName: "1700000000000-photo.jpg"}
	h := NewTeammateHandler(mockSvc, nil, uploads)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("slug", "jane"))
	require.NoError(t, mw.WriteField("name", "Jane"))
	part, err := mw.CreateFormFile("photo", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpegbytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodPost, "/teammates", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())

	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "photo.jpg", uploads.savedName)
	assert.Equal(t, []byte("jpegbytes"), uploads.savedBody)
	assert.Equal(t, "1700000000000-photo.jpg", mockSvc.lastPhoto)
	require.NotNil(t, mockSvc.lastInput.Slug)
	assert.Equal(t, "jane", *mockSvc.lastInput.Slug)
}

func TestTeammateHandlerUpdate(t *testing.T) {
	mockSvc := &teammateServiceMock{record: &models.Teammate{Slug: "jane", Name: "Jane D."}}
	h := NewTeammateHandler(mockSvc, nil, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodPut, "/teammates/jane", strings.NewReader(`{"name":"Jane D."}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "slug", Value: "jane"}}

	h.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "update", mockSvc.called)
	assert.Equal(t, "jane", mockSvc.lastSlug)
}

func TestTeammateHandlerDeleteReturnsRemovedRecord(t *testing.T) {
	mockSvc := &teammateServiceMock{record: &models.Teammate{Slug: "jane", Name: "Jane"}}
	h := NewTeammateHandler(mockSvc, nil, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/teammates/jane", nil)
	c.Params = gin.Params{{Key: "slug", Value: "jane"}}

	h.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.Teammate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "jane", envelope.Data.Slug)
}

func TestTeammateHandlerCreateConflict(t *testing.T) {
	mockSvc := &teammateServiceMock{err: appErrors.Clone(appErrors.ErrConflict, "Teammate with this slug already exists")}
	h := NewTeammateHandler(mockSvc, nil, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodPost, "/teammates", strings.NewReader(`{"slug":"jane","name":"Jane"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestTeammateHandlerExport(t *testing.T) {
	exports := &exportServiceMock{result: &service.ExportResult{
		Filename:    "teammates-2026-08-30.csv",
		ContentType: "text/csv",
		Data:        []byte("Slug,Name\n"),
	}}
	h := NewTeammateHandler(&teammateServiceMock{}, exports, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodGet, "/exports/teammates?format=CSV", nil)

	h.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", exports.format)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "teammates-2026-08-30.csv")
	assert.Equal(t, "Slug,Name\n", w.Body.String())
}

func TestTeammateHandlerExportDefaultsToCSV(t *testing.T) {
	exports := &exportServiceMock{result: &service.ExportResult{ContentType: "text/csv"}}
	h := NewTeammateHandler(&teammateServiceMock{}, exports, nil)

	c, w := newHandlerContext(t)
	c.Request, _ = http.NewRequest(http.MethodGet, "/exports/teammates", nil)

	h.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", exports.format)
}
