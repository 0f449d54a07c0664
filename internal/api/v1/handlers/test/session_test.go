package test

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	apperrors "cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/export"
	"cn7-transcriptor/internal/app/model"
	"cn7-transcriptor/internal/app/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_CreateAndGet(t *testing.T) {
	env := setupTestServer(t)
	id := env.createSession(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "idle", body["phase"])
	assert.Nil(t, body["file"])
	assert.Nil(t, body["preview_url"])
}

func TestSessionHandler_UnknownSession(t *testing.T) {
	env := setupTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"get", http.MethodGet, "/api/v1/sessions/missing"},
		{"delete", http.MethodDelete, "/api/v1/sessions/missing"},
		{"remove file", http.MethodDelete, "/api/v1/sessions/missing/file"},
		{"transcribe", http.MethodPost, "/api/v1/sessions/missing/transcription"},
		{"transcript", http.MethodGet, "/api/v1/sessions/missing/transcript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "not_found", decode(t, rec)["kind"])
		})
	}
}

func TestSessionHandler_SelectFile(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		contentType    string
		size           int
		fields         map[string]string
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:           "audio accepted",
			filename:       "clip.mp3",
			contentType:    "audio/mp3",
			size:           2048,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				file := body["file"].(map[string]interface{})
				assert.Equal(t, "clip.mp3", file["name"])
				assert.Equal(t, "audio", file["kind"])
				assert.Equal(t, float64(2048), file["size"])
				assert.Equal(t, "idle", body["phase"])
				assert.Contains(t, body["preview_url"], "/preview/")
			},
		},
		{
			name:           "video accepted",
			filename:       "talk.mp4",
			contentType:    "video/mp4",
			size:           64,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "video", body["file"].(map[string]interface{})["kind"])
			},
		},
		{
			name:           "declared type override",
			filename:       "recording.bin",
			contentType:    "application/octet-stream",
			size:           64,
			fields:         map[string]string{"mime_type": "audio/wav"},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "audio/wav", body["file"].(map[string]interface{})["mime_type"])
			},
		},
		{
			name:           "matroska rejected",
			filename:       "movie.mkv",
			contentType:    "video/x-matroska",
			size:           64,
			expectedStatus: http.StatusUnsupportedMediaType,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "unsupported_media", body["kind"])
				assert.Equal(t, "rejected_format", body["code"])
				assert.Equal(t, apperrors.MessageRejectedFormat, body["message"])
			},
		},
		{
			name:           "over upload limit",
			filename:       "clip.mp3",
			contentType:    "audio/mp3",
			size:           1<<20 + 1,
			expectedStatus: http.StatusRequestEntityTooLarge,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "payload_too_large", body["kind"])
			},
		},
		{
			name:           "body cut off at upload limit",
			filename:       "clip.mp3",
			contentType:    "audio/mp3",
			size:           3 << 20,
			expectedStatus: http.StatusRequestEntityTooLarge,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "payload_too_large", body["kind"])
				assert.Contains(t, body["message"], "1 MB")
			},
		},
		{
			name:           "missing file part",
			fields:         map[string]string{"mime_type": "audio/mp3"},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				assert.NotNil(t, body["details"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t)
			id := env.createSession(t)

			rec := env.upload(t, id, tt.filename, tt.contentType, testutil.Payload(tt.size), tt.fields)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			tt.validateBody(t, decode(t, rec))

			if tt.expectedStatus != http.StatusOK {
				assert.Zero(t, env.previews.Acquired(), "no preview for a refused upload")
			}
		})
	}
}

func TestSessionHandler_RejectedKeepsCurrentFile(t *testing.T) {
	env := setupTestServer(t)
	id := env.createSession(t)

	require.Equal(t, http.StatusOK, env.upload(t, id, "clip.mp3", "audio/mp3", testutil.Payload(16), nil).Code)
	require.Equal(t, http.StatusUnsupportedMediaType, env.upload(t, id, "movie.mkv", "video/x-matroska", testutil.Payload(16), nil).Code)

	body := decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id, nil)))
	assert.Equal(t, "clip.mp3", body["file"].(map[string]interface{})["name"])
	assert.Equal(t, 1, env.previews.Live())
}

func TestSessionHandler_Preview(t *testing.T) {
	env := setupTestServer(t)
	id := env.createSession(t)

	data := []byte("0123456789")
	body := decode(t, env.upload(t, id, "clip.mp3", "audio/mp3", data, nil))
	previewURL := body["preview_url"].(string)

	rec := env.do(httptest.NewRequest(http.MethodGet, previewURL, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mp3", rec.Header().Get("Content-Type"))
	assert.Equal(t, data, rec.Body.Bytes())

	req := httptest.NewRequest(http.MethodGet, previewURL, nil)
	req.Header.Set("Range", "bytes=2-4")
	rec = env.do(req)
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "234", rec.Body.String())

	// removing the file revokes the preview
	rec = env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+id+"/file", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec)["file"])

	rec = env.do(httptest.NewRequest(http.MethodGet, previewURL, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env.previews.AssertBalanced(t)
}

func TestSessionHandler_TranscribeSuccess(t *testing.T) {
	env := setupTestServer(t)
	env.transcriber.On("Transcribe", mock.Anything, mock.MatchedBy(func(f *model.MediaFile) bool {
		return f.Name() == "clip.mp3" && f.MIMEType() == "audio/mp3"
	})).Return(testutil.LongTranscript, nil).Once()

	id := env.createSession(t)
	require.Equal(t, http.StatusOK, env.upload(t, id, "clip.mp3", "audio/mp3", testutil.Payload(64), nil).Code)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/transcription", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "succeeded", body["phase"])
	assert.Equal(t, testutil.LongTranscript, body["text"])

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/transcript", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, testutil.LongTranscript, rec.Body.String())

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/transcript/download", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="CN7_TRANSCRICAO.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, testutil.LongTranscript, rec.Body.String())

	env.transcriber.AssertExpectations(t)
}

func TestSessionHandler_TranscribeFailures(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		err             error
		expectedKind    string
		expectedMessage string
	}{
		{
			name:            "remote failure verbatim",
			err:             apperrors.Remote(stderrors.New("quota exceeded")),
			expectedKind:    "remote_failure",
			expectedMessage: "quota exceeded",
		},
		{
			name:            "empty response",
			text:            "",
			expectedKind:    "empty_response",
			expectedMessage: apperrors.MessageEmptyResponse,
		},
		{
			name:            "unclassified error",
			err:             apperrors.Remote(stderrors.New("")),
			expectedKind:    "unknown_failure",
			expectedMessage: apperrors.MessageUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t)
			env.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return(tt.text, tt.err).Once()

			id := env.createSession(t)
			require.Equal(t, http.StatusOK, env.upload(t, id, "talk.mp4", "video/mp4", testutil.Payload(64), nil).Code)

			rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/transcription", nil))
			require.Equal(t, http.StatusOK, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, "failed", body["phase"])
			assert.Equal(t, tt.expectedKind, body["failure_kind"])
			assert.Equal(t, tt.expectedMessage, body["error"])
			assert.Nil(t, body["text"])

			rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/transcript", nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestSessionHandler_TranscribeWithoutFile(t *testing.T) {
	env := setupTestServer(t)
	id := env.createSession(t)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/transcription", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "idle", decode(t, rec)["phase"])
	env.transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestSessionHandler_TranscribeWhileLoading(t *testing.T) {
	env := setupTestServer(t)
	env.transcriber.Gate = make(chan struct{})
	env.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return(testutil.SampleTranscript, nil).Once()

	id := env.createSession(t)
	require.Equal(t, http.StatusOK, env.upload(t, id, "clip.mp3", "audio/mp3", testutil.Payload(64), nil).Code)

	var wg sync.WaitGroup
	var first *httptest.ResponseRecorder
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = env.do(httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/transcription", nil))
	}()
	<-env.transcriber.Started

	body := decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id, nil)))
	assert.Equal(t, "loading", body["phase"])

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/transcription", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", decode(t, rec)["kind"])

	close(env.transcriber.Gate)
	wg.Wait()

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "succeeded", decode(t, first)["phase"])
	env.transcriber.AssertNumberOfCalls(t, "Transcribe", 1)
}

func TestSessionHandler_TranscribeOutlivesClient(t *testing.T) {
	env := setupTestServer(t)
	env.transcriber.Gate = make(chan struct{})
	env.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return(testutil.SampleTranscript, nil).Once()

	id := env.createSession(t)
	require.Equal(t, http.StatusOK, env.upload(t, id, "clip.mp3", "audio/mp3", testutil.Payload(64), nil).Code)

	ts := httptest.NewServer(env.router)
	defer ts.Close()

	client := &http.Client{Timeout: 200 * time.Millisecond}
	_, err := client.Post(ts.URL+"/api/v1/sessions/"+id+"/transcription", "application/json", nil)
	require.Error(t, err, "client should give up before the backend answers")

	close(env.transcriber.Gate)

	s, err := env.store.Get(id)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return s.Snapshot().Phase == model.PhaseSucceeded
	}, 2*time.Second, 20*time.Millisecond)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/transcript", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testutil.SampleTranscript, rec.Body.String())
}

func TestSessionHandler_Delete(t *testing.T) {
	env := setupTestServer(t)
	id := env.createSession(t)
	require.Equal(t, http.StatusOK, env.upload(t, id, "clip.mp3", "audio/mp3", testutil.Payload(64), nil).Code)
	assert.Equal(t, 1, env.previews.Live())

	rec := env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+id, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, env.store.Len())
	env.previews.AssertBalanced(t)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
