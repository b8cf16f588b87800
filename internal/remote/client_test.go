package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bitbucket.org/sotavant/contacts-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestFetchAll(t *testing.T) {
	testCases := []struct {
		name            string
		status          int
		body            string
		expectedOK      bool
		expectedLen     int
		expectedMessage string
		expectedCode    int
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{"success": true, "messages": [], "status": 200, "data": {"users": [
				{"id": "1", "createdAt": "2024-01-01", "firstName": "Ann", "lastName": "Lee", "phoneNumber": "555", "profileImageUrl": "http://img/1.jpg"},
				{"id": "2", "createdAt": "2024-01-02", "firstName": "Bo", "lastName": "", "phoneNumber": "222", "profileImageUrl": null}
			]}}`,
			expectedOK:  true,
			expectedLen: 2,
		},
		{
			name:        "success_with_null_data",
			status:      http.StatusOK,
			body:        `{"success": true, "messages": [], "status": 200, "data": null}`,
			expectedOK:  true,
			expectedLen: 0,
		},
		{
			// a rejection wrapped in a 2xx transport carries the
			// envelope's own status, not the misleading 200
			name:            "server_reports_failure",
			status:          http.StatusOK,
			body:            `{"success": false, "messages": ["api key invalid"], "status": 401, "data": null}`,
			expectedOK:      false,
			expectedMessage: "api key invalid",
			expectedCode:    http.StatusUnauthorized,
		},
		{
			name:            "server_reports_failure_without_status",
			status:          http.StatusOK,
			body:            `{"success": false, "messages": ["api key invalid"], "data": null}`,
			expectedOK:      false,
			expectedMessage: "api key invalid",
			expectedCode:    http.StatusOK,
		},
		{
			name:            "http_error_with_envelope",
			status:          http.StatusInternalServerError,
			body:            `{"success": false, "messages": ["storage down"], "status": 500, "data": null}`,
			expectedOK:      false,
			expectedMessage: "storage down",
			expectedCode:    http.StatusInternalServerError,
		},
		{
			name:            "http_error_without_envelope",
			status:          http.StatusServiceUnavailable,
			body:            `<html>gateway timeout</html>`,
			expectedOK:      false,
			expectedMessage: "Failed to fetch contacts",
			expectedCode:    http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/User/GetAll", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("ApiKey"))
				assert.Equal(t, "text/plain", r.Header.Get("accept"))

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			res := newTestClient(srv.URL).FetchAll(context.Background())

			if tc.expectedOK {
				require.True(t, res.IsSuccess(), res.Message())
				assert.Len(t, res.Value(), tc.expectedLen)
				return
			}

			require.True(t, res.IsError())
			assert.Equal(t, tc.expectedMessage, res.Message())
			code, hasCode := res.Code()
			assert.True(t, hasCode)
			assert.Equal(t, tc.expectedCode, code)
		})
	}
}

func TestFetchAllMapsPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "messages": [], "status": 200, "data": {"users": [
			{"id": "1", "createdAt": "2024-01-01", "firstName": "Ann", "lastName": "Lee", "phoneNumber": "555", "profileImageUrl": "http://img/1.jpg"}
		]}}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).FetchAll(context.Background())
	require.True(t, res.IsSuccess())
	require.Len(t, res.Value(), 1)

	c := res.Value()[0]
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, "Ann", c.FirstName)
	assert.Equal(t, "Lee", c.LastName)
	assert.Equal(t, "555", c.PhoneNumber)
	assert.Equal(t, "http://img/1.jpg", c.PhotoURI)
}

func TestFetchAllTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	res := newTestClient(srv.URL).FetchAll(context.Background())

	require.True(t, res.IsError())
	assert.NotEmpty(t, res.Message())
	_, hasCode := res.Code()
	assert.False(t, hasCode)
}

func TestFetchOne(t *testing.T) {
	testCases := []struct {
		name            string
		body            string
		expectedOK      bool
		expectedMessage string
	}{
		{
			name:       "success",
			body:       `{"success": true, "messages": [], "status": 200, "data": {"id": "7", "createdAt": "2024-01-01", "firstName": "Ann", "lastName": "Lee", "phoneNumber": "555", "profileImageUrl": null}}`,
			expectedOK: true,
		},
		{
			name:            "missing_record",
			body:            `{"success": true, "messages": [], "status": 200, "data": null}`,
			expectedOK:      false,
			expectedMessage: "Contact not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/User/7", r.URL.Path)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			res := newTestClient(srv.URL).FetchOne(context.Background(), "7")

			if tc.expectedOK {
				require.True(t, res.IsSuccess())
				assert.Equal(t, "7", res.Value().ID)
				return
			}

			require.True(t, res.IsError())
			assert.Equal(t, tc.expectedMessage, res.Message())
			_, hasCode := res.Code()
			assert.False(t, hasCode)
		})
	}
}

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/User", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "Bo", req["firstName"])
		assert.Equal(t, "", req["lastName"])
		assert.Equal(t, "222", req["phoneNumber"])
		assert.Nil(t, req["profileImageUrl"])

		_, _ = w.Write([]byte(`{"success": true, "messages": [], "status": 200, "data": {"id": "42", "createdAt": "2024-01-01", "firstName": "Bo", "lastName": "", "phoneNumber": "222", "profileImageUrl": null}}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).Create(context.Background(), models.NewContact("Bo", "", "222"))

	require.True(t, res.IsSuccess(), res.Message())
	assert.Equal(t, "42", res.Value().ID)
	assert.Equal(t, "Bo", res.Value().FirstName)
}

func TestCreateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "messages": ["phone number already exists"], "status": 400, "data": null}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).Create(context.Background(), models.NewContact("Bo", "", "222"))

	require.True(t, res.IsError())
	assert.Equal(t, "phone number already exists", res.Message())
	code, _ := res.Code()
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/User/1", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "Annie", req["firstName"])
		assert.Equal(t, "http://img/1.jpg", req["profileImageUrl"])

		_, _ = w.Write([]byte(`{"success": true, "messages": [], "status": 200, "data": {"id": "1", "createdAt": "2024-01-01", "firstName": "Annie", "lastName": "", "phoneNumber": "555", "profileImageUrl": "http://img/1.jpg"}}`))
	}))
	defer srv.Close()

	contact := models.Contact{ID: "1", FirstName: "Annie", PhoneNumber: "555", PhotoURI: "http://img/1.jpg"}
	res := newTestClient(srv.URL).Update(context.Background(), contact)

	require.True(t, res.IsSuccess(), res.Message())
	assert.Equal(t, "Annie", res.Value().FirstName)
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/User/9", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "messages": [], "status": 200, "data": null}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).Delete(context.Background(), "9")
	assert.True(t, res.IsSuccess())
}

func TestUploadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/User/UploadImage", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "photo.jpg", header.Filename)
		payload, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "not really a jpeg", string(payload))

		_, _ = w.Write([]byte(`{"success": true, "messages": [], "status": 200, "data": {"imageUrl": "http://img/hosted.jpg"}}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).UploadImage(context.Background(), path)

	require.True(t, res.IsSuccess(), res.Message())
	assert.Equal(t, "http://img/hosted.jpg", res.Value())
}

func TestUploadImageUnreadableFile(t *testing.T) {
	res := newTestClient("http://localhost:1").UploadImage(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))

	require.True(t, res.IsError())
	assert.Equal(t, "Failed to read image file", res.Message())
}

func TestUploadImageWithoutURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "messages": [], "status": 200, "data": {}}`))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).UploadImage(context.Background(), path)

	require.True(t, res.IsError())
	assert.Equal(t, "Failed to get image URL", res.Message())
}
