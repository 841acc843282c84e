package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/khqr-bot/internal/entity/keypress"
	"max.ks1230/khqr-bot/internal/gateway/mock"
)

func doSendKey(t *testing.T, handler http.Handler, method, target string) (*httptest.ResponseRecorder, sendKeyResponse) {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body sendKeyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func Test_OnSendKey_ShouldPublishAndAnswerSuccess(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	publisher.ProduceKeyPressMock.
		Inspect(func(_ context.Context, press keypress.Press) {
			assert.Equal(m, "a", press.Key)
			assert.Equal(m, keypress.SourceHTTP, press.Source)
			assert.False(m, press.PressedAt.IsZero())
		}).
		Return(nil)

	rec, body := doSendKey(t, NewHandler(publisher), http.MethodPost, "/send-key?key=a")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, sendKeyResponse{Status: "success", Key: "a"}, body)
}

func Test_OnSendUnknownKey_ShouldStillBroadcast(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	publisher.ProduceKeyPressMock.Return(nil)

	rec, body := doSendKey(t, NewHandler(publisher), http.MethodPost, "/send-key?key=z")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "z", body.Key)
	assert.Equal(t, uint64(1), publisher.ProduceKeyPressAfterCounter())
}

func Test_OnSendKeyWithoutKey_ShouldAnswerBadRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	rec, body := doSendKey(t, NewHandler(publisher), http.MethodPost, "/send-key")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", body.Status)
}

func Test_OnSendKeyWithGet_ShouldAnswerMethodNotAllowed(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	rec, _ := doSendKey(t, NewHandler(publisher), http.MethodGet, "/send-key?key=a")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func Test_OnPublishFailure_ShouldAnswerBadGateway(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	publisher.ProduceKeyPressMock.Return(errors.New("kafka is down"))

	rec, body := doSendKey(t, NewHandler(publisher), http.MethodPost, "/send-key?key=b")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "b", body.Key)
}

func Test_OnMetrics_ShouldServePrometheus(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	rec := httptest.NewRecorder()
	NewHandler(publisher).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
