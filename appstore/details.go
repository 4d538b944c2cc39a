package appstore

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/codes"
)

// App is one store lookup record, keyed by the upstream field names. After
// flattening every value is a scalar.
type App map[string]any

type DetailOptions struct {
	// Country selects the storefront, default "us".
	Country string
	// Lang is accepted for compatibility; the lookup service ignores it.
	Lang string
	// Flatten joins list fields with commas and renders mapping fields as
	// comma-joined "key star: value" pairs, so records export cleanly to
	// tabular formats.
	Flatten bool
	// AddRatings attaches the review histogram for the same country as a
	// "histogram" field ([]int, star 1 to 5). A ratings failure is logged
	// and recorded as a nil histogram, never returned as an error.
	AddRatings bool
	// Delay is slept before each lookup request.
	Delay time.Duration
	// Force appends a random token to the URL to defeat the store's
	// server-side caching.
	Force bool
}

// AppDetails fetches the detail record for one app. The id may be either the
// numeric track id or the textual bundle id. The lookup is retried once per
// the client's retry policy; an id the store has no results for fails with a
// not-found StoreError.
func (c *Client) AppDetails(ctx context.Context, appID string, opts DetailOptions) (App, error) {
	ctx, span := tracer.Start(ctx, "client:AppDetails")
	defer span.End()

	country := opts.Country
	if country == "" {
		country = "us"
	}

	idField := "bundleId"
	if _, err := strconv.ParseInt(appID, 10, 64); err == nil {
		idField = "id"
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			idField:   appID,
			"country": country,
			"entity":  "software",
		})
	if opts.Force {
		token, err := random.String(11)
		if err != nil {
			return nil, wrapStoreError(err, "could not generate cache-bypass token")
		}
		req.SetQueryParam("timestamp", token)
	}

	var payload struct {
		Results []map[string]any `json:"results"`
	}
	var lastErr error
	for attempt := 0; attempt < c.retry.Attempts; attempt++ {
		if attempt == 0 {
			c.pause(opts.Delay)
		} else {
			// take an extra sleep as backoff, then retry once
			c.pause(c.retry.Backoff)
		}
		res, err := req.Get(c.endpoints.Lookup)
		if err == nil {
			err = json.Unmarshal(res.Body(), &payload)
		}
		lastErr = err
		if lastErr == nil {
			break
		}
	}
	if lastErr != nil {
		span.RecordError(lastErr)
		span.SetStatus(codes.Error, "lookup failed after retry")
		return nil, wrapStoreError(lastErr, "could not parse app store response for ID %s", appID)
	}
	if len(payload.Results) == 0 {
		return nil, storeErrorf("no app found with ID %s", appID)
	}
	app := App(payload.Results[0])

	if opts.Flatten {
		flatten(app)
	}

	if opts.AddRatings {
		ratings, err := c.Ratings(ctx, appID, RatingsOptions{
			Countries: []string{country},
			Delay:     opts.Delay,
		})
		if err != nil {
			c.errlog.Append(country, fmt.Sprintf("Unable to collect ratings for %s", appID))
			slog.Warn("unable to collect ratings",
				"app_id", appID, "country", country, "err", err)
			app["histogram"] = nil
		} else {
			app["histogram"] = ratings.Buckets()
		}
	}

	return app, nil
}

// flatten collapses list and mapping values into scalar strings. Lookup
// records are at most two-dimensional, so joining is enough. Mapping entries
// are sorted by key so the rendered string is deterministic. Flattening an
// already-flat record is a no-op.
func flatten(app App) {
	for field, value := range app {
		switch v := value.(type) {
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			app[field] = strings.Join(parts, ",")
		case map[string]any:
			parts := make([]string, 0, len(v))
			for key, item := range v {
				parts = append(parts, fmt.Sprintf("%s star: %v", key, item))
			}
			sort.Strings(parts)
			app[field] = strings.Join(parts, ", ")
		}
	}
}

// MultipleAppDetails yields the detail record for each id in turn, fetching
// lazily as the sequence is consumed. An id that fails is appended to the
// per-country error log and skipped; the rest of the batch carries on. The
// sequence is forward-only and restartable only by calling again.
func (c *Client) MultipleAppDetails(ctx context.Context, appIDs []string, opts DetailOptions) iter.Seq[App] {
	if opts.Delay == 0 {
		opts.Delay = time.Second
	}
	country := opts.Country
	if country == "" {
		country = "us"
	}

	return func(yield func(App) bool) {
		for _, appID := range appIDs {
			app, err := c.AppDetails(ctx, appID, opts)
			if err != nil {
				c.errlog.Append(country, err.Error())
				continue
			}
			if !yield(app) {
				return
			}
		}
	}
}
