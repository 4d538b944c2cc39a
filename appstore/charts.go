package appstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"

	"github.com/smit-kukadiya/itunes-app-scraper/lib/htmlutil"
)

// the charts page renders at most 100 entries per chart
const chartEntryLimit = 100

type ChartOptions struct {
	// Chart is the charts-page ranking, e.g. "top-free" or "top-paid".
	Chart string
	// Category names an entry in the category table; it must exist and
	// carry a chart page slug.
	Category string
	// Device is "iphone" or "ipad", default "iphone".
	Device string
	// Country selects the storefront, default "us".
	Country string
}

// ChartAppIDs lists the app ids on a category chart page, in chart order.
// Ids are read out of the chart entry anchors' hrefs.
func (c *Client) ChartAppIDs(ctx context.Context, opts ChartOptions) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:ChartAppIDs")
	defer span.End()

	category, err := CategoryByName(opts.Category)
	if err != nil {
		return nil, err
	}
	if category.Slug == "" {
		return nil, storeErrorf("category %s has no chart page slug", opts.Category)
	}

	device := opts.Device
	if device == "" {
		device = "iphone"
	}
	country := opts.Country
	if country == "" {
		country = "us"
	}

	url := fmt.Sprintf("%s/%s/charts/%s/%s/%d",
		c.endpoints.Charts, country, device, category.Slug, category.ID)
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("chart", opts.Chart).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch charts page")
		return nil, wrapStoreError(err, "cannot connect to store")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse charts page")
		return nil, wrapStoreError(err, "could not parse app store response")
	}

	anchors := htmlutil.GetAnchors(doc.Find("#charts-content-section ol li a"))
	if len(anchors) > chartEntryLimit {
		anchors = anchors[:chartEntryLimit]
	}

	ids := make([]string, len(anchors))
	for i, anchor := range anchors {
		ids[i] = htmlutil.TrailingAppID(anchor.Href)
	}
	return ids, nil
}
