package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"cn7-transcriptor/internal/api/server"
	"cn7-transcriptor/internal/app/metrics"
	"cn7-transcriptor/internal/app/session"
	"cn7-transcriptor/internal/app/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router      *gin.Engine
	transcriber *testutil.MockTranscriber
	previews    *testutil.RecordingPreviewer
	store       *session.Store
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	transcriber := testutil.NewMockTranscriber()
	previews := testutil.NewRecordingPreviewer()
	m := metrics.New()
	store := session.NewStore(transcriber, previews, m, nil)

	srv := server.NewServer(server.Config{
		Environment: "test",
		MaxUploadMB: 1,
	}, store, previews.Manager, m, nil)

	return &testEnv{
		router:      srv.Router(),
		transcriber: transcriber,
		previews:    previews,
		store:       store,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) createSession(t *testing.T) string {
	t.Helper()
	rec := e.do(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	return body["id"].(string)
}

func (e *testEnv) upload(t *testing.T, id, filename, contentType string, data []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, formType := multipartBody(t, filename, contentType, data, fields)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+id+"/file", body)
	req.Header.Set("Content-Type", formType)
	return e.do(req)
}

func multipartBody(t *testing.T, filename, contentType string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
