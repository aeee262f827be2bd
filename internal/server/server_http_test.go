package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekimwerac/observable-clock-demo/internal/clock"
	"github.com/ekimwerac/observable-clock-demo/internal/clocksvc"
	"github.com/ekimwerac/observable-clock-demo/internal/log"
	"github.com/ekimwerac/observable-clock-demo/internal/stream"
)

func newTestServer(t *testing.T, period time.Duration) (*httptest.Server, *clocksvc.Service) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := clock.NewSource(nil, period, "15:04:05")
	service := clocksvc.NewService(logger, source, 128)

	logStream := stream.NewBufferedStream[log.Entry](16)
	srv := NewHTTPServer("", logger, service, logStream)

	ts := httptest.NewServer(srv.createHandler())
	t.Cleanup(ts.Close)
	return ts, service
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHTTPServer_ListTicks(t *testing.T) {
	t.Parallel()

	ts, service := newTestServer(t, 10*time.Millisecond)

	info, err := service.StartActivation("test")
	require.NoError(t, err)
	defer func() { _ = service.StopActivation(info.ID) }()

	require.Eventually(t, func() bool {
		return len(service.TickStream().Query(0, 1, nil).Items) > 0
	}, time.Second, time.Millisecond)

	var res struct {
		Items []clocksvc.Tick `json:"items"`
	}
	getJSON(t, ts.URL+"/api/ticks?source=test", &res)

	require.NotEmpty(t, res.Items)
	assert.Equal(t, "test", res.Items[0].Source)
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, res.Items[0].Display)
}

func TestHTTPServer_ListTicks_FilterMismatch(t *testing.T) {
	t.Parallel()

	ts, service := newTestServer(t, 10*time.Millisecond)

	info, err := service.StartActivation("test")
	require.NoError(t, err)
	defer func() { _ = service.StopActivation(info.ID) }()

	var res struct {
		Items []clocksvc.Tick `json:"items"`
	}
	getJSON(t, ts.URL+"/api/ticks?source=other", &res)
	assert.Empty(t, res.Items)
}

func TestHTTPServer_Activations(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t, 10*time.Millisecond)

	resp, err := http.Post(ts.URL+"/api/activations?name=ui", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created clocksvc.Activation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	_ = resp.Body.Close()
	assert.Equal(t, "ui", created.Name)

	var listed []clocksvc.Activation
	getJSON(t, ts.URL+"/api/activations", &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/activations/"+created.ID.String(), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	getJSON(t, ts.URL+"/api/activations", &listed)
	assert.Empty(t, listed)

	// deleting again reports not found
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTPServer_Activations_BadID(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t, 10*time.Millisecond)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/activations/not-a-uuid", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTPServer_TickWebSocket(t *testing.T) {
	t.Parallel()

	ts, service := newTestServer(t, 10*time.Millisecond)

	info, err := service.StartActivation("test")
	require.NoError(t, err)
	defer func() { _ = service.StopActivation(info.ID) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ticks/ws?source=test"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer func() { _ = conn.CloseNow() }()

	var ticks []clocksvc.Tick
	require.NoError(t, wsjson.Read(ctx, conn, &ticks))
	require.NotEmpty(t, ticks)
	assert.Equal(t, "test", ticks[0].Source)
}

func TestHTTPServer_TickWebSocketBeforeFirstTick(t *testing.T) {
	t.Parallel()

	ts, service := newTestServer(t, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// connect while the tick stream is still empty
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ticks/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer func() { _ = conn.CloseNow() }()

	info, err := service.StartActivation("test")
	require.NoError(t, err)
	defer func() { _ = service.StopActivation(info.ID) }()

	var ticks []clocksvc.Tick
	require.NoError(t, wsjson.Read(ctx, conn, &ticks))
	require.NotEmpty(t, ticks)
	assert.Equal(t, "test", ticks[0].Source)
}

func TestHTTPServer_ServesIndex(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t, 10*time.Millisecond)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "The current time is:")
}
