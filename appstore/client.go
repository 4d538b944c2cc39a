// Package appstore retrieves app metadata, search results, collection
// listings and customer-rating histograms from the iTunes App Store's
// public and undocumented web endpoints.
//
// Much of the endpoint knowledge is adapted from the javascript-based
// app-store-scraper package, https://github.com/facundoolano/app-store-scraper.
package appstore

import (
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"

	"github.com/smit-kukadiya/itunes-app-scraper/lib/errlog"
)

var tracer = otel.Tracer("itunes-app-scraper/appstore")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/103.0.0.0 Safari/537.36"

// Endpoints holds the base URLs of the store services the client talks to.
// Tests point these at local mock servers.
type Endpoints struct {
	// legacy search service, JSON with a "bubbles" result list
	Search string
	// search hints service, property-list flavored XML
	Hints string
	// RSS/JSON collection feeds
	Feed string
	// id / bundle-id / developer lookup, JSON
	Lookup string
	// HTML app detail pages
	AppPage string
	// HTML customer-review pages
	Reviews string
	// HTML charts pages
	Charts string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Search:  "https://search.itunes.apple.com/WebObjects/MZStore.woa/wa/search",
		Hints:   "https://search.itunes.apple.com/WebObjects/MZSearchHints.woa/wa/hints",
		Feed:    "http://ax.itunes.apple.com/WebObjects/MZStoreServices.woa/ws/RSS",
		Lookup:  "https://itunes.apple.com/lookup",
		AppPage: "https://itunes.apple.com",
		Reviews: "https://itunes.apple.com",
		Charts:  "https://apps.apple.com",
	}
}

// RetryPolicy bounds the fixed retry applied to lookup and review-page
// requests: Attempts total tries with a Backoff sleep between them.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 2, Backoff: 2 * time.Second}
}

type Options struct {
	// Endpoints defaults to the production store hosts.
	Endpoints *Endpoints
	// Timeout bounds each request, default 30s.
	Timeout time.Duration
	// UserAgent defaults to a desktop browser string; the store serves
	// different markup to unknown agents.
	UserAgent string
	// Retry defaults to DefaultRetryPolicy.
	Retry *RetryPolicy
	// Sleep is the function used for inter-request delays and retry
	// backoff; tests inject a fake. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// Stars overrides the review-page star-count extractor.
	Stars StarExtractor
	// LogDir is where per-country failure logs are appended, default "log".
	LogDir string
}

type Client struct {
	http      *resty.Client
	endpoints Endpoints
	retry     RetryPolicy
	sleep     func(time.Duration)
	stars     StarExtractor
	errlog    *errlog.Log
}

func NewClient(opts Options) *Client {
	endpoints := DefaultEndpoints()
	if opts.Endpoints != nil {
		endpoints = *opts.Endpoints
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	retry := DefaultRetryPolicy()
	if opts.Retry != nil {
		retry = *opts.Retry
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	stars := opts.Stars
	if stars == nil {
		stars = totalSpanExtractor{}
	}
	logDir := opts.LogDir
	if logDir == "" {
		logDir = "log"
	}

	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)

	return &Client{
		http:      client,
		endpoints: endpoints,
		retry:     retry,
		sleep:     sleep,
		stars:     stars,
		errlog:    errlog.New(logDir),
	}
}

// pause sleeps for the given duration through the injected sleep function.
// Used for the deliberate inter-request delay that keeps the store from
// rate-limiting long collection runs.
func (c *Client) pause(d time.Duration) {
	if d > 0 {
		c.sleep(d)
	}
}

// storeFrontHeader renders the X-Apple-Store-Front value for a storefront id
// and the endpoint-specific platform suffix.
func storeFrontHeader(storeID int, suffix string) string {
	return strconv.Itoa(storeID) + "," + suffix
}
