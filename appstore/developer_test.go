package appstore

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeveloperAppIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "284882218", r.URL.Query().Get("id"))
		require.Equal(t, "us", r.URL.Query().Get("country"))
		require.Equal(t, "software", r.URL.Query().Get("entity"))

		// the first entry is the developer record itself
		fmt.Fprint(w, `{
			"resultCount": 3,
			"results": [
				{"wrapperType": "artist", "artistId": 284882218},
				{"wrapperType": "software", "trackId": 284882215},
				{"wrapperType": "software", "trackId": 454638411}
			]
		}`)
	}))
	defer server.Close()

	endpoints := DefaultEndpoints()
	endpoints.Lookup = server.URL
	c, _ := testClient(t, endpoints)

	ids, err := c.DeveloperAppIDs(context.Background(), 284882218, "us")
	require.NoError(t, err)
	require.Equal(t, []int64{284882215, 454638411}, ids)
}

func TestDeveloperAppIDsUnknownDeveloper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// no "results" key at all: the store's way of saying "no such developer"
		fmt.Fprint(w, `{"errorMessage": "Invalid value for parameter"}`)
	}))
	defer server.Close()

	endpoints := DefaultEndpoints()
	endpoints.Lookup = server.URL
	c, _ := testClient(t, endpoints)

	ids, err := c.DeveloperAppIDs(context.Background(), 1, "us")
	require.NoError(t, err)
	require.Empty(t, ids)
}
