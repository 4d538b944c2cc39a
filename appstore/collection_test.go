package appstore

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func feedBody(ids ...string) string {
	entries := ""
	for i, id := range ids {
		if i > 0 {
			entries += ","
		}
		entries += fmt.Sprintf(`{"id": {"attributes": {"im:id": %q}}}`, id)
	}
	return `{"feed": {"entry": [` + entries + `]}}`
}

func TestCollectionAppIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/toppaidapplications/6014/limit=7/json", r.URL.Path)
		require.Equal(t, "143452", r.URL.Query().Get("s"))

		fmt.Fprint(w, feedBody("1095569891", "1156422958", "479516143"))
	}))
	defer server.Close()

	endpoints := DefaultEndpoints()
	endpoints.Feed = server.URL
	c, _ := testClient(t, endpoints)

	ids, err := c.CollectionAppIDs(context.Background(), CollectionOptions{
		Collection: CollectionTopPaidIOS,
		Category:   "6014",
		Num:        7,
		Country:    "nl",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1095569891", "1156422958", "479516143"}, ids)
}

func TestCollectionAppIDsDefaultsToTopFree(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, feedBody("42"))
	}))
	defer server.Close()

	endpoints := DefaultEndpoints()
	endpoints.Feed = server.URL
	c, _ := testClient(t, endpoints)

	ids, err := c.CollectionAppIDs(context.Background(), CollectionOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"42"}, ids)
	require.Equal(t, "/topfreeapplications//limit=50/json", gotPath)
}

func TestCollectionAppIDsBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer server.Close()

	endpoints := DefaultEndpoints()
	endpoints.Feed = server.URL
	c, _ := testClient(t, endpoints)

	_, err := c.CollectionAppIDs(context.Background(), CollectionOptions{})
	require.Error(t, err)
}
