package appstore

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
)

// Histogram counts reviews per star level. Its keys are always exactly 1
// through 5 and its values never go negative; bucket-wise summation is the
// only mutation, so accumulation over countries is order-independent.
type Histogram map[int]int

func NewHistogram() Histogram {
	return Histogram{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
}

func (h Histogram) add(other Histogram) {
	for star, count := range other {
		h[star] += count
	}
}

// Buckets returns the five counts ordered star 1 to 5, the shape attached to
// detail records as their "histogram" field.
func (h Histogram) Buckets() []int {
	return []int{h[1], h[2], h[3], h[4], h[5]}
}

// Total is the number of reviews across all star levels.
func (h Histogram) Total() int {
	n := 0
	for _, count := range h {
		n += count
	}
	return n
}

// StarExtractor pulls the five per-star review totals out of a raw
// customer-reviews page. ok is false when the markup does not contain
// exactly five star fragments, in which case the page contributes nothing.
type StarExtractor interface {
	Extract(markup string) (ratings Histogram, ok bool)
}

var starTotals = regexp.MustCompile(`<span class="total">[\s\S]*?</span>`)

// totalSpanExtractor matches the `<span class="total">` fragments on the
// legacy customer-reviews page, which appear ordered five stars down to one.
type totalSpanExtractor struct{}

func (totalSpanExtractor) Extract(markup string) (Histogram, bool) {
	matches := starTotals.FindAllString(markup, -1)
	if len(matches) != 5 {
		return nil, false
	}

	ratings := NewHistogram()
	star := 5
	for _, match := range matches {
		value := strings.TrimPrefix(match, `<span class="total">`)
		value = strings.TrimSuffix(value, `</span>`)
		count, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, false
		}
		ratings[star] = count
		star--
	}
	return ratings, true
}

type RatingsOptions struct {
	// Countries to accumulate over, lowercase two-letter codes. Defaults
	// to DefaultRatingCountries.
	Countries []string
	// Delay is slept before each per-country request so long runs do not
	// trip the store's rate limiting. 0 means the 1s default; negative
	// disables the delay.
	Delay time.Duration
}

// Ratings accumulates an app's review histogram across country storefronts.
// A country whose review page cannot be fetched fails the whole call (after
// one retry); a country whose page merely lacks the expected star markup is
// skipped and contributes zero to every bucket.
func (c *Client) Ratings(ctx context.Context, appID string, opts RatingsOptions) (Histogram, error) {
	ctx, span := tracer.Start(ctx, "client:Ratings")
	defer span.End()

	countries := opts.Countries
	if len(countries) == 0 {
		countries = DefaultRatingCountries
	}
	delay := opts.Delay
	if delay == 0 {
		delay = time.Second
	}

	dataset := NewHistogram()
	for _, country := range countries {
		storeID, err := StoreIDForCountry(country)
		if err != nil {
			return nil, err
		}

		url := fmt.Sprintf("%s/%s/customer-reviews/id%s", c.endpoints.Reviews, country, appID)
		req := c.http.R().
			SetContext(ctx).
			// displayable-kind=11 selects app reviews
			SetQueryParam("displayable-kind", "11").
			SetHeader("X-Apple-Store-Front", storeFrontHeader(storeID, "12 t:native"))

		c.pause(delay)
		res, err := req.Get(url)
		for attempt := 1; err != nil && attempt < c.retry.Attempts; attempt++ {
			// take an extra sleep as backoff, then retry once
			c.pause(c.retry.Backoff)
			res, err = req.Get(url)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "review page unreachable after retry")
			return nil, wrapStoreError(err, "could not parse app store rating response for ID %s", appID)
		}

		ratings, ok := c.stars.Extract(res.String())
		if !ok {
			slog.Debug("review page yielded no star totals",
				"app_id", appID, "country", country)
			continue
		}
		dataset.add(ratings)
	}

	return dataset, nil
}
