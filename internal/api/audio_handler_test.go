package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/motionfix-api/internal/api/shared"
	"github.com/phrazzld/motionfix-api/internal/audio"
	"github.com/phrazzld/motionfix-api/internal/domain"
	"github.com/phrazzld/motionfix-api/internal/mocks"
	"github.com/phrazzld/motionfix-api/internal/platform/logger"
	"github.com/phrazzld/motionfix-api/internal/service"
	"github.com/phrazzld/motionfix-api/internal/task"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessAudio(t *testing.T) {
	taskID := uuid.New()

	tests := []struct {
		name                string
		query               string
		requestBody         []byte
		serviceErr          error
		expectedStatus      int
		expectedErrContains string
		expectedVariant     audio.Variant
	}{
		{
			name:            "Success With Default Variant",
			query:           "",
			requestBody:     []byte(`{"file_name": "song.wav", "motion": true}`),
			expectedStatus:  http.StatusAccepted,
			expectedVariant: audio.VariantFixed,
		},
		{
			name:            "Success With Buggy Variant",
			query:           "?use_fixed=false",
			requestBody:     []byte(`{"file_name": "song.wav", "motion": true}`),
			expectedStatus:  http.StatusAccepted,
			expectedVariant: audio.VariantBuggy,
		},
		{
			name:                "Invalid Use Fixed Parameter",
			query:               "?use_fixed=maybe",
			requestBody:         []byte(`{"file_name": "song.wav"}`),
			expectedStatus:      http.StatusUnprocessableEntity,
			expectedErrContains: "use_fixed",
		},
		{
			name:                "Malformed JSON Body",
			query:               "",
			requestBody:         []byte(`{"file_name": `),
			expectedStatus:      http.StatusUnprocessableEntity,
			expectedErrContains: "Invalid request format",
		},
		{
			name:                "Missing File Name",
			query:               "",
			requestBody:         []byte(`{"motion": true}`),
			expectedStatus:      http.StatusUnprocessableEntity,
			expectedErrContains: "FileName",
		},
		{
			name:                "Volume Out Of Range",
			query:               "",
			requestBody:         []byte(`{"file_name": "song.wav", "volume": 3.5}`),
			expectedStatus:      http.StatusUnprocessableEntity,
			expectedErrContains: "Volume",
		},
		{
			name:                "Dispatch Failure",
			query:               "",
			requestBody:         []byte(`{"file_name": "song.wav"}`),
			serviceErr:          task.ErrQueueFull,
			expectedStatus:      http.StatusInternalServerError,
			expectedErrContains: "Failed to start audio processing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockAudioService(
				mocks.WithTaskID(taskID),
				mocks.WithError(tt.serviceErr),
			)
			handler := NewAudioHandler(mockService, newTestLogger())

			req := httptest.NewRequest(
				http.MethodPost,
				"/process-audio"+tt.query,
				bytes.NewBuffer(tt.requestBody),
			)
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler.ProcessAudio(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedErrContains != "" {
				var errResp shared.ErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&errResp); err == nil {
					assert.Contains(t, errResp.Error, tt.expectedErrContains)
				}
				return
			}

			var response ProcessAudioResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
			assert.Equal(t, taskID.String(), response.TaskID)
			assert.Equal(t, "processing", response.Status)
			assert.Equal(t, "song.wav", response.FileName)
			assert.Contains(t, response.Message, string(tt.expectedVariant)+" version")

			// The selected variant must reach the service untouched
			require.Equal(t, 1, mockService.StartProcessingCalls.Count)
			assert.Equal(t, tt.expectedVariant, mockService.StartProcessingCalls.Variants[0])
		})
	}
}

func TestProcessAudioAppliesDefaults(t *testing.T) {
	mockService := mocks.NewMockAudioService(mocks.WithTaskID(uuid.New()))
	handler := NewAudioHandler(mockService, newTestLogger())

	req := httptest.NewRequest(
		http.MethodPost,
		"/process-audio",
		bytes.NewBufferString(`{"file_name": "quiet.wav"}`),
	)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ProcessAudio(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Equal(t, 1, mockService.StartProcessingCalls.Count)

	sent := mockService.StartProcessingCalls.Requests[0]
	assert.Equal(t, "quiet.wav", sent.FileName)
	assert.False(t, sent.Motion)
	assert.Equal(t, domain.DefaultVolume, sent.Volume)
	assert.Equal(t, domain.DefaultFormat, sent.Format)
}

func TestProcessAudioZeroVolumeIsValid(t *testing.T) {
	mockService := mocks.NewMockAudioService(mocks.WithTaskID(uuid.New()))
	handler := NewAudioHandler(mockService, newTestLogger())

	req := httptest.NewRequest(
		http.MethodPost,
		"/process-audio",
		bytes.NewBufferString(`{"file_name": "silent.wav", "volume": 0.0}`),
	)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ProcessAudio(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Equal(t, 1, mockService.StartProcessingCalls.Count)
	assert.Equal(t, 0.0, mockService.StartProcessingCalls.Requests[0].Volume)
}

func TestProcessAudioUsesContextLogger(t *testing.T) {
	ctx, logBuf := logger.NewLogCaptureContext(t)

	mockService := mocks.NewMockAudioService(mocks.WithTaskID(uuid.New()))
	handler := NewAudioHandler(mockService, newTestLogger())

	req := httptest.NewRequest(
		http.MethodPost,
		"/process-audio",
		bytes.NewBufferString(`{"file_name": "song.wav", "motion": true}`),
	)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	handler.ProcessAudio(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)

	// The dispatch log line must go through the request-scoped logger.
	logger.AssertLogContains(t, logBuf, "audio processing dispatched")
	logger.AssertLogField(t, logBuf, "variant", audio.VariantFixed.String())
	logger.AssertLogField(t, logBuf, "file_name", "song.wav")
}

func TestGetTaskStatus(t *testing.T) {
	taskID := uuid.New()

	completedResult := domain.NewProcessingResult("song.wav", true, 0.45, 0.55, 1.0, "wav")

	tests := []struct {
		name           string
		pathTaskID     string
		record         *task.Record
		serviceErr     error
		expectedStatus int
		// keys that must (not) appear in the raw JSON body
		expectedKeys []string
		absentKeys   []string
	}{
		{
			name:       "Processing Task",
			pathTaskID: taskID.String(),
			record: &task.Record{
				ID:       taskID,
				FileName: "song.wav",
				Status:   task.StatusProcessing,
			},
			expectedStatus: http.StatusOK,
			expectedKeys:   []string{"status", "file_name"},
			absentKeys:     []string{"result", "error"},
		},
		{
			name:       "Completed Task",
			pathTaskID: taskID.String(),
			record: &task.Record{
				ID:       taskID,
				FileName: "song.wav",
				Status:   task.StatusCompleted,
				Result:   completedResult,
			},
			expectedStatus: http.StatusOK,
			expectedKeys:   []string{"status", "result"},
			absentKeys:     []string{"file_name", "error"},
		},
		{
			name:       "Failed Task",
			pathTaskID: taskID.String(),
			record: &task.Record{
				ID:       taskID,
				FileName: "song.wav",
				Status:   task.StatusFailed,
				Error:    "audio processing failed: decode error",
			},
			expectedStatus: http.StatusOK,
			expectedKeys:   []string{"status", "error"},
			absentKeys:     []string{"file_name", "result"},
		},
		{
			name:           "Unknown Task",
			pathTaskID:     uuid.New().String(),
			serviceErr:     service.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed Task ID",
			pathTaskID:     "not-a-uuid",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Service Failure",
			pathTaskID:     taskID.String(),
			serviceErr:     service.NewAudioServiceError("get_task", "failed to load task record", errors.New("boom")),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockAudioService(
				mocks.WithRecord(tt.record),
				mocks.WithError(tt.serviceErr),
			)
			handler := NewAudioHandler(mockService, newTestLogger())

			req := httptest.NewRequest(http.MethodGet, "/task/"+tt.pathTaskID, nil)

			// Use chi route context to supply the URL parameter
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("taskID", tt.pathTaskID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.GetTaskStatus(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusNotFound {
				var errResp shared.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
				assert.Equal(t, "Task not found", errResp.Error)
				return
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, string(tt.record.Status), body["status"])
			for _, key := range tt.expectedKeys {
				assert.Contains(t, body, key)
			}
			for _, key := range tt.absentKeys {
				assert.NotContains(t, body, key)
			}
		})
	}
}

func TestGetTaskStatusMalformedIDSkipsService(t *testing.T) {
	mockService := mocks.NewMockAudioService()
	handler := NewAudioHandler(mockService, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/task/not-a-uuid", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("taskID", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	handler.GetTaskStatus(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 0, mockService.GetTaskCalls.Count)
}

func TestGetTaskStatusCompletedPayload(t *testing.T) {
	taskID := uuid.New()
	record := &task.Record{
		ID:       taskID,
		FileName: "song.wav",
		Status:   task.StatusCompleted,
		Result:   domain.NewProcessingResult("song.wav", true, 0.45, 0.55, 1.0, "wav"),
	}

	mockService := mocks.NewMockAudioService(mocks.WithRecord(record))
	handler := NewAudioHandler(mockService, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/task/"+taskID.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("taskID", taskID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	handler.GetTaskStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response TaskStatusResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	require.NotNil(t, response.Result)
	assert.Equal(t, "completed", response.Status)
	assert.True(t, response.Result.MotionApplied)
	assert.Equal(t, 0.45, response.Result.LeftChannelAvg)
	assert.Equal(t, 0.55, response.Result.RightChannelAvg)
	assert.True(t, response.Result.ChannelsDiffer)
}

func TestNewAudioHandlerNilLoggerPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAudioHandler(mocks.NewMockAudioService(), nil)
	})
}
