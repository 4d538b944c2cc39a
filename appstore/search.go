package appstore

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

type SearchOptions struct {
	// Num is the amount of results to return, default 50.
	Num int
	// Page inflates the requested amount to Num*Page. The search service
	// does not actually paginate; it only ever returns one bucket.
	Page int
	// Country selects the storefront, default "us".
	Country string
	// Lang is sent as Accept-Language, default "nl".
	Lang string
	// Headers are merged into the request last.
	Headers map[string]string
}

// SearchAppIDs retrieves the app ids the store search service suggests for a
// query, in result order, truncated to Num*Page entries.
func (c *Client) SearchAppIDs(ctx context.Context, term string, opts SearchOptions) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:SearchAppIDs")
	defer span.End()

	if term == "" {
		return nil, storeErrorf("no search term was given")
	}

	num := opts.Num
	if num == 0 {
		num = 50
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	country := opts.Country
	if country == "" {
		country = "us"
	}
	lang := opts.Lang
	if lang == "" {
		lang = "nl"
	}
	amount := num * page

	storeID, err := StoreIDForCountry(country)
	if err != nil {
		return nil, err
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"clientApplication": "Software",
			"media":             "software",
			"term":              term,
		}).
		SetHeader("X-Apple-Store-Front", storeFrontHeader(storeID, "24 t:native")).
		SetHeader("Accept-Language", lang)
	for key, value := range opts.Headers {
		req.SetHeader(key, value)
	}

	res, err := req.Get(c.endpoints.Search)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to reach search service")
		return nil, wrapStoreError(err, "cannot connect to store")
	}

	var payload struct {
		Bubbles []struct {
			Results []struct {
				ID int64 `json:"id"`
			} `json:"results"`
		} `json:"bubbles"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search response was not json")
		return nil, wrapStoreError(err, "could not parse app store response")
	}
	if len(payload.Bubbles) == 0 {
		return nil, storeErrorf("could not parse app store response: no result bucket")
	}

	results := payload.Bubbles[0].Results
	if len(results) > amount {
		results = results[:amount]
	}
	ids := make([]int64, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids, nil
}

// SearchHints retrieves type-ahead suggestions for a partial query from the
// search hints service. The response is property-list flavored markup; the
// suggestion terms live in <string> elements, interleaved with search links
// that are dropped, and the first remaining entry echoes the query itself.
func (c *Client) SearchHints(ctx context.Context, query, country string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:SearchHints")
	defer span.End()

	if country == "" {
		country = "us"
	}
	storeID, err := StoreIDForCountry(country)
	if err != nil {
		return nil, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"clientApplication": "Software",
			"term":              query,
		}).
		SetHeader("X-Apple-Store-Front", storeFrontHeader(storeID, "29")).
		Get(c.endpoints.Hints)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to reach hints service")
		return nil, wrapStoreError(err, "cannot connect to store")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse hints markup")
		return nil, wrapStoreError(err, "could not parse app store response")
	}

	var hints []string
	doc.Find("string").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if strings.HasPrefix(text, "https://") {
			return
		}
		hints = append(hints, text)
	})
	if len(hints) > 0 {
		hints = hints[1:]
	}
	return hints, nil
}
