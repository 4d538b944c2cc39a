package appstore

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/codes"
)

const similarAppsMarker = "customersAlsoBoughtApps"

var similarAppsBlob = regexp.MustCompile(similarAppsMarker + `":\s*(\[[^\]]+\])`)

// SimilarAppIDs lists apps the store presents as "customers also bought" for
// the given app. The app page is HTML with a JSON id array embedded after a
// fixed marker; a page without the marker, or with a blob that fails to
// parse, yields an empty list rather than an error.
func (c *Client) SimilarAppIDs(ctx context.Context, appID int64, country, lang string) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:SimilarAppIDs")
	defer span.End()

	if country == "" {
		country = "us"
	}
	if lang == "" {
		lang = "en"
	}
	storeID, err := StoreIDForCountry(country)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/us/app/app/id%d", c.endpoints.AppPage, appID)
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Apple-Store-Front", storeFrontHeader(storeID, "32")).
		SetHeader("Accept-Language", lang).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch app page")
		return nil, wrapStoreError(err, "cannot connect to store")
	}

	body := res.String()
	if !strings.Contains(body, similarAppsMarker) {
		return nil, nil
	}
	groups := similarAppsBlob.FindStringSubmatch(body)
	if len(groups) < 2 {
		return nil, nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(groups[1]), &ids); err != nil {
		span.AddEvent("embedded id blob failed to parse")
		return nil, nil
	}
	return ids, nil
}
