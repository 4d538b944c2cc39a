package appstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/codes"
)

type CollectionOptions struct {
	// Collection is the feed to list, default CollectionTopFreeIOS.
	Collection Collection
	// Category is threaded into the feed URL for compatibility with the
	// upstream URL scheme.
	//
	// Deprecated: the feed service ignores it and known-good URLs leave it
	// empty; leave it empty.
	Category string
	// Num is the amount of results to request, default 50.
	Num int
	// Country selects the storefront, default "us".
	Country string
}

// CollectionAppIDs lists the app ids in a curated collection feed, in feed
// order.
func (c *Client) CollectionAppIDs(ctx context.Context, opts CollectionOptions) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:CollectionAppIDs")
	defer span.End()

	collection := opts.Collection
	if collection == "" {
		collection = CollectionTopFreeIOS
	}
	num := opts.Num
	if num == 0 {
		num = 50
	}
	country := opts.Country
	if country == "" {
		country = "us"
	}

	storeID, err := StoreIDForCountry(country)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/%s/limit=%d/json", c.endpoints.Feed, collection, opts.Category, num)
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("s", strconv.Itoa(storeID)).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to reach feed service")
		return nil, wrapStoreError(err, "cannot connect to store")
	}

	var payload struct {
		Feed struct {
			Entry []struct {
				ID struct {
					Attributes struct {
						ID string `json:"im:id"`
					} `json:"attributes"`
				} `json:"id"`
			} `json:"entry"`
		} `json:"feed"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "feed response was not json")
		return nil, wrapStoreError(err, "could not parse app store response")
	}

	ids := make([]string, len(payload.Feed.Entry))
	for i, entry := range payload.Feed.Entry {
		ids[i] = entry.ID.Attributes.ID
	}
	return ids, nil
}
