// Package sheets pulls the six feed CSV exports and decodes them into
// typed record lists. Each feed degrades to an empty list on fetch or
// parse trouble so one broken tab never takes the dashboard down.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/csvio"
	"github.com/Ramsey-B/fern/pkg/decode"
	"github.com/Ramsey-B/fern/pkg/httpclient"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Config locates the spreadsheet and its per feed tabs.
type Config struct {
	BaseURL string
	SheetID string
	GIDs    map[models.Feed]string
}

// FeedURL builds the CSV export URL for one feed tab.
func (c Config) FeedURL(feed models.Feed) string {
	base := strings.TrimRight(c.BaseURL, "/")
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&gid=%s", base, c.SheetID, c.GIDs[feed])
}

// Service fetches and decodes the feeds.
type Service struct {
	cfg     Config
	client  *httpclient.Client
	decoder *decode.Decoder
	logger  ectologger.Logger
}

// NewService creates a new sheet fetch service.
func NewService(cfg Config, client *httpclient.Client, decoder *decode.Decoder, logger ectologger.Logger) *Service {
	return &Service{
		cfg:     cfg,
		client:  client,
		decoder: decoder,
		logger:  logger,
	}
}

// FetchAll pulls all six feeds concurrently and joins on the full set
// before decoding. Responses are never cached; every call is a fresh
// read of the spreadsheet.
func (s *Service) FetchAll(ctx context.Context) models.AllSubmissions {
	ctx, span := tracing.StartSpan(ctx, "sheets.FetchAll")
	defer span.End()

	tables := make([][][]string, len(models.Feeds))

	var wg sync.WaitGroup
	for i, feed := range models.Feeds {
		wg.Add(1)
		go func(i int, feed models.Feed) {
			defer wg.Done()
			tables[i] = s.fetchTable(ctx, feed)
		}(i, feed)
	}
	wg.Wait()

	data := models.AllSubmissions{}
	for i, feed := range models.Feeds {
		switch feed {
		case models.FeedNewProject:
			data.NewProjects = s.decoder.NewProjects(tables[i])
		case models.FeedVersionUpgrade:
			data.VersionUpgrades = s.decoder.VersionUpgrades(tables[i])
		case models.FeedEstimation:
			data.Estimations = s.decoder.Estimations(tables[i])
		case models.FeedApproval:
			data.Approvals = s.decoder.Approvals(tables[i])
		case models.FeedDelivery:
			data.Deliveries = s.decoder.Deliveries(tables[i])
		case models.FeedFeedback:
			data.Feedbacks = s.decoder.Feedbacks(tables[i])
		}
	}
	return data
}

// Ping checks that the sheet endpoint answers at all. Used by the
// readiness probe.
func (s *Service) Ping(ctx context.Context) error {
	resp, err := s.client.Get(ctx, s.cfg.FeedURL(models.FeedNewProject), nil)
	if err != nil {
		return fmt.Errorf("sheet endpoint unreachable: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("sheet endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *Service) fetchTable(ctx context.Context, feed models.Feed) [][]string {
	url := s.cfg.FeedURL(feed)

	resp, err := s.client.Get(ctx, url, nil)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("feed", string(feed)).Warn("failed to fetch feed, continuing with empty list")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.WithContext(ctx).WithFields(map[string]interface{}{
			"feed":   string(feed),
			"status": resp.StatusCode,
		}).Warn("feed fetch returned non-OK status, continuing with empty list")
		return nil
	}
	if len(resp.Body) == 0 {
		s.logger.WithContext(ctx).WithField("feed", string(feed)).Warn("feed fetch returned empty body")
		return nil
	}

	return csvio.Parse(string(resp.Body))
}
