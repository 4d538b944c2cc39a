package appstore

import (
	"context"
	"encoding/json"
	"strconv"

	"go.opentelemetry.io/otel/codes"
)

// DeveloperAppIDs lists the app ids published by a developer. An unknown
// developer id is not an error: the lookup service answers it with a body
// that simply has no results, and that is what an empty return means.
func (c *Client) DeveloperAppIDs(ctx context.Context, developerID int64, country string) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:DeveloperAppIDs")
	defer span.End()

	if country == "" {
		country = "us"
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"id":      strconv.FormatInt(developerID, 10),
			"country": country,
			"entity":  "software",
		}).
		Get(c.endpoints.Lookup)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to reach lookup service")
		return nil, wrapStoreError(err, "cannot connect to store")
	}

	var payload struct {
		Results []struct {
			WrapperType string `json:"wrapperType"`
			TrackID     int64  `json:"trackId"`
		} `json:"results"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup response was not json")
		return nil, wrapStoreError(err, "could not parse app store response")
	}

	var ids []int64
	for _, app := range payload.Results {
		if app.WrapperType == "software" {
			ids = append(ids, app.TrackID)
		}
	}
	return ids, nil
}
