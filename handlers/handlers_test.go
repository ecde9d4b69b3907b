package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portal-api/config"
	"portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// memBlobStore is a plain in-memory BlobStore; per-path put errors let tests
// drive the store's failure modes through the HTTP surface.
type memBlobStore struct {
	blobs   map[string][]byte
	putErrs map[string]error
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{
		blobs:   make(map[string][]byte),
		putErrs: make(map[string]error),
	}
}

func (m *memBlobStore) Fetch(_ context.Context, path string) ([]byte, error) {
	data, ok := m.blobs[path]
	if !ok {
		return nil, services.ErrNotFound
	}
	return data, nil
}

func (m *memBlobStore) Put(_ context.Context, path string, data []byte, _ string) (string, error) {
	if err := m.putErrs[path]; err != nil {
		return "", err
	}
	m.blobs[path] = data
	return "sha-1", nil
}

func (m *memBlobStore) Delete(_ context.Context, path, _ string) error {
	delete(m.blobs, path)
	return nil
}

func (m *memBlobStore) RawURL(path string) string {
	return "https://raw.example.test/" + path
}

func newTestRouter(store services.BlobStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SuperadminIDs: []string{"PES1UG25CS527"},
		CRIDsByClass: map[string][]string{
			"Sem2-C9": {"PES1UG25CS100"},
		},
	}
	roleService := services.NewRoleService(cfg)
	assetStore := services.NewGitHubAssetService(store)

	materialHandler := NewMaterialHandler(services.NewMaterialService(store, assetStore), roleService)
	calendarHandler := NewCalendarHandler(services.NewCalendarService(store), roleService)
	settingsHandler := NewSettingsHandler(services.NewSettingsService(store), roleService)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/materials", materialHandler.GetMaterials)
	api.POST("/materials", materialHandler.UploadMaterial)
	api.DELETE("/materials/:id", materialHandler.DeleteMaterial)
	api.GET("/calendar/events", calendarHandler.GetEvents)
	api.POST("/calendar/events", calendarHandler.AddEvent)
	api.PUT("/calendar/events/:id", calendarHandler.UpdateEvent)
	api.DELETE("/calendar/events/:id", calendarHandler.DeleteEvent)
	api.GET("/settings/semester", settingsHandler.GetSettings)
	api.PUT("/settings/semester", settingsHandler.SaveSettings)
	return router
}

func doJSON(router *gin.Engine, method, path, userIDs string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userIDs != "" {
		req.Header.Set("X-User-Ids", userIDs)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func multipartUpload(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestGetMaterialsRequiresClassID(t *testing.T) {
	router := newTestRouter(newMemBlobStore())

	w := doJSON(router, http.MethodGet, "/api/v1/materials", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadMaterialRequiresAdmin(t *testing.T) {
	router := newTestRouter(newMemBlobStore())

	buf, contentType := multipartUpload(t, map[string]string{
		"class_id":    "Sem2-C9",
		"course_code": "UE22CS202",
	}, "notes.pdf", []byte("pdf"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/materials", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-Ids", "pes1ug25cs999")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadAndListMaterials(t *testing.T) {
	store := newMemBlobStore()
	router := newTestRouter(store)

	buf, contentType := multipartUpload(t, map[string]string{
		"class_id":     "Sem2-C9",
		"section":      "C9",
		"course_code":  "UE22CS202",
		"course_title": "Data Structures",
		"uploaded_by":  "PES1UG25CS100",
	}, "notes.pdf", []byte("pdf bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/materials", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-Ids", "PES1UG25CS100")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/materials?class_id=Sem2-C9&section=C9", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []struct {
			CourseCode string `json:"course_code"`
			FileURL    string `json:"file_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	require.Equal(t, "UE22CS202", response.Data[0].CourseCode)
	require.Contains(t, response.Data[0].FileURL, "raw.example.test")
}

func TestCalendarWriteRequiresSuperadmin(t *testing.T) {
	router := newTestRouter(newMemBlobStore())

	body := `{"title":"ISA 1","type":"assessment","start_date":"2025-03-10"}`

	// A CR is not enough for calendar writes
	w := doJSON(router, http.MethodPost, "/api/v1/calendar/events", "PES1UG25CS100", body)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/calendar/events", "PES1UG25CS527", body)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCalendarRejectsUnknownEventType(t *testing.T) {
	router := newTestRouter(newMemBlobStore())

	body := `{"title":"Party","type":"party","start_date":"2025-03-10"}`
	w := doJSON(router, http.MethodPost, "/api/v1/calendar/events", "PES1UG25CS527", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarConflictMapsTo409(t *testing.T) {
	store := newMemBlobStore()
	store.putErrs["data/calendar_events.json"] = &services.ConflictError{Path: "data/calendar_events.json"}
	router := newTestRouter(store)

	body := `{"title":"ISA 1","type":"assessment","start_date":"2025-03-10"}`
	w := doJSON(router, http.MethodPost, "/api/v1/calendar/events", "PES1UG25CS527", body)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestSettingsRoundTripWithDaysRemaining(t *testing.T) {
	router := newTestRouter(newMemBlobStore())

	w := doJSON(router, http.MethodGet, "/api/v1/settings/semester", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"semester_end_date":null`)

	w = doJSON(router, http.MethodPut, "/api/v1/settings/semester", "PES1UG25CS527", `{"semester_end_date":"2099-05-20"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/settings/semester", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"semester_end_date":"2099-05-20"`)
	require.Contains(t, w.Body.String(), `"days_remaining"`)
}

func TestSettingsRejectsBadDate(t *testing.T) {
	router := newTestRouter(newMemBlobStore())

	w := doJSON(router, http.MethodPut, "/api/v1/settings/semester", "PES1UG25CS527", `{"semester_end_date":"20-05-2099"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMaterialUnknownID(t *testing.T) {
	router := newTestRouter(newMemBlobStore())

	w := doJSON(router, http.MethodDelete, "/api/v1/materials/mat_99_0", "PES1UG25CS527", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
