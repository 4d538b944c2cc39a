package appstore

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func similarTestClient(t *testing.T, body string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/us/app/app/id479516143", r.URL.Path)
		require.Equal(t, "143441,32", r.Header.Get("X-Apple-Store-Front"))
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	endpoints := DefaultEndpoints()
	endpoints.AppPage = server.URL
	c, _ := testClient(t, endpoints)
	return c
}

func TestSimilarAppIDs(t *testing.T) {
	c := similarTestClient(t, `<html><script>
		its.serverData = {"customersAlsoBoughtApps": [1065976984, 1099771240, 911077503]};
	</script></html>`)

	ids, err := c.SimilarAppIDs(context.Background(), 479516143, "us", "en")
	require.NoError(t, err)
	require.Equal(t, []int64{1065976984, 1099771240, 911077503}, ids)
}

func TestSimilarAppIDsNoMarker(t *testing.T) {
	c := similarTestClient(t, `<html><body>nothing embedded here</body></html>`)

	ids, err := c.SimilarAppIDs(context.Background(), 479516143, "us", "en")
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestSimilarAppIDsMalformedBlob(t *testing.T) {
	c := similarTestClient(t, `<html><script>
		its.serverData = {"customersAlsoBoughtApps": [1065976984, oops]};
	</script></html>`)

	ids, err := c.SimilarAppIDs(context.Background(), 479516143, "us", "en")
	require.NoError(t, err)
	require.Empty(t, ids)
}
