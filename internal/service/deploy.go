package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/tidwall/sjson"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/pkg/observability"
)

var ErrDeployNotConfigured = errors.New("render service id and api key are required to trigger a deploy")

// Deploy asks Render to redeploy the dashboard once the batch has refreshed the data files.
type Deploy struct {
	baseURL    string
	serviceID  string
	apiKey     string
	clearCache bool

	client *http.Client
}

func NewDeploy(conf *appconfig.Config) *Deploy {
	return &Deploy{
		baseURL:    conf.RenderAPIURL,
		serviceID:  conf.RenderServiceID,
		apiKey:     conf.RenderAPIKey,
		clearCache: conf.RenderClearCache,
		client: &http.Client{
			Timeout: conf.RenderRequestTimeout,
		},
	}
}

// Trigger sends a single deploy request and reports whether Render accepted it.
// It is not retried.
func (s *Deploy) Trigger(ctx context.Context) bool {
	err := s.trigger(ctx)
	if err != nil {
		observability.DeployTrigger.WithLabelValues("failed").Inc()
		log.Error().
			Err(err).
			Str("evt.name", "deploy.failed").
			Msg("error triggering deployment")
		return false
	}

	observability.DeployTrigger.WithLabelValues("triggered").Inc()
	log.Info().
		Str("evt.name", "deploy.triggered").
		Str("serviceId", s.serviceID).
		Time("at", time.Now()).
		Msg("deployment triggered successfully")
	return true
}

func (s *Deploy) trigger(ctx context.Context) error {
	if s.serviceID == "" || s.apiKey == "" {
		return ErrDeployNotConfigured
	}

	body, err := sjson.SetBytes([]byte(`{}`), "clearCache", lo.Ternary(s.clearCache, "clear", "do_not_clear"))
	if err != nil {
		return errors.Wrap(err, "failed to build deploy request body")
	}

	url := fmt.Sprintf("%s/v1/services/%s/deploys", s.baseURL, s.serviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create deploy request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send deploy request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, text)
	}
	return nil
}
