package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
)

func deployConfig(url string) *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			RenderAPIURL:         url,
			RenderServiceID:      "srv-test",
			RenderAPIKey:         "rnd_test",
			RenderRequestTimeout: 5 * time.Second,
		},
	}
}

func TestDeployTrigger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/services/srv-test/deploys", r.URL.Path)
		assert.Equal(t, "Bearer rnd_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"clearCache":"do_not_clear"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	assert.True(t, NewDeploy(deployConfig(srv.URL)).Trigger(context.Background()))
}

func TestDeployTriggerRejected(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
	}))
	defer srv.Close()

	assert.False(t, NewDeploy(deployConfig(srv.URL)).Trigger(context.Background()))
	assert.Equal(t, int32(1), calls.Load(), "deploys are never retried")
}

func TestDeployTriggerNotConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	conf := deployConfig(srv.URL)
	conf.RenderAPIKey = ""
	assert.False(t, NewDeploy(conf).Trigger(context.Background()))
	assert.Zero(t, calls.Load())
}
