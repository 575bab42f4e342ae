package alasco

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sylvainHellin/Alasco/internal/alasco/types"
	"github.com/sylvainHellin/Alasco/internal/logger"
)

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL:  baseURL + "/",
		APIKey:   "test-key",
		APIToken: "test-token",
		Logger:   logger.New(logger.LevelError),
	})
}

func TestGetJSONPagination(t *testing.T) {
	var mu sync.Mutex
	var requests []string
	var baseURL string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.URL.Path)
		mu.Unlock()

		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "test-token", r.Header.Get("X-API-TOKEN"))

		switch r.URL.Path {
		case "/properties/":
			fmt.Fprintf(w, `{"data":[{"id":"p1","attributes":{"name":"First"}}],"links":{"next":"%s/page2"}}`, baseURL)
		case "/page2":
			fmt.Fprintf(w, `{"data":[{"id":"p2","attributes":{"name":"Second"}}],"links":{"next":"%s/page3"}}`, baseURL)
		case "/page3":
			fmt.Fprint(w, `{"data":[{"id":"p3","attributes":{"name":"Third"}}],"links":{"next":null}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	baseURL = srv.URL

	client := newTestClient(srv.URL)
	pages, err := client.GetJSON(context.Background(), srv.URL+"/properties/", nil)
	require.NoError(t, err)

	require.Len(t, pages, 3, "every page of the result set is fetched")
	assert.Equal(t, []string{"/properties/", "/page2", "/page3"}, requests)
	assert.Equal(t, "", pages[2].NextLink())
}

func TestGetJSONFilterAppliedToFirstRequestOnly(t *testing.T) {
	var mu sync.Mutex
	var queries []string
	var baseURL string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()

		if r.URL.Path == "/contracts/" {
			fmt.Fprintf(w, `{"data":[{"id":"c1"}],"links":{"next":"%s/next-page"}}`, baseURL)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":"c2"}],"links":{"next":null}}`)
	}))
	defer srv.Close()
	baseURL = srv.URL

	client := newTestClient(srv.URL)
	filter := types.NewFilter("id", "in", "c1", "c2")
	_, err := client.GetJSON(context.Background(), srv.URL+"/contracts/", filter)
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, "filter[id.in]=c1,c2", queries[0])
	assert.Equal(t, "", queries[1], "follow-up pages already embed their state")
}

func TestGetJSONHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetJSON(context.Background(), srv.URL+"/properties/", nil)

	var fetchErr *types.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "500")
}

func TestGetDataFrameChunking(t *testing.T) {
	var mu sync.Mutex
	var queries []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()
		fmt.Fprint(w, `{"data":[{"id":"x","attributes":{"name":"Row"}}],"links":{"next":null}}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	filter := types.NewFilter("id", "in", "a", "b", "c", "d", "e")
	df, err := client.GetDataFrame(context.Background(), srv.URL+"/contracts/", filter, 2)
	require.NoError(t, err)

	require.Equal(t, []string{
		"filter[id.in]=a,b",
		"filter[id.in]=c,d",
		"filter[id.in]=e",
	}, queries, "one request per chunk, in order")
	assert.Equal(t, 3, df.Nrow(), "chunk results are concatenated")
}

func TestGetDataFrameInvalidChunkSize(t *testing.T) {
	client := newTestClient("http://unused")
	_, err := client.GetDataFrame(context.Background(), "http://unused/contracts/", nil, 0)
	assert.ErrorContains(t, err, "chunk size must be greater than 0")
}

func TestGetReportingUsesSmallerChunks(t *testing.T) {
	var mu sync.Mutex
	var queries []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()
		fmt.Fprint(w, `{"data":[{"id":"r1","attributes":{"budget":"100"}}],"links":{"next":null}}`)
	}))
	defer srv.Close()

	projectIDs := make([]string, 12)
	for i := range projectIDs {
		projectIDs[i] = fmt.Sprintf("pr%d", i+1)
	}

	client := newTestClient(srv.URL)
	_, err := client.GetReporting(context.Background(), projectIDs)
	require.NoError(t, err)

	require.Len(t, queries, 2, "12 project ids split into chunks of 10")
	assert.Contains(t, queries[0], "filter[project.in]=pr1,")
	assert.Equal(t, "filter[project.in]=pr11,pr12", queries[1])
}

func TestGetChangeOrdersRequiresFilter(t *testing.T) {
	client := newTestClient("http://unused")
	_, err := client.GetChangeOrders(context.Background(), ChangeOrderQuery{})
	assert.ErrorContains(t, err, "provide either a list of change order ids or a list of contract ids")
}

func TestGetPropertiesByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties/", r.URL.Path)
		assert.Equal(t, "filter[name.contains]=Harbor", r.URL.RawQuery)
		fmt.Fprint(w, `{"data":[{"id":"p1","attributes":{"name":"Harbor Quarter"}}],"links":{"next":null}}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	df, err := client.GetProperties(context.Background(), PropertiesByName("Harbor"))
	require.NoError(t, err)
	require.Equal(t, 1, df.Nrow())
	assert.Equal(t, []string{"Harbor Quarter"}, df.Col("name").Records())
}

func TestDocumentURLs(t *testing.T) {
	client := New(Config{APIKey: "k", APIToken: "t"})

	assert.Equal(t, "https://api.alasco.de/v1/contracts/c1/documents/", client.ContractDocumentsURL("c1"))
	assert.Equal(t, "https://api.alasco.de/v1/change_orders/co1/documents/", client.ChangeOrderDocumentsURL("co1"))
	assert.Equal(t, "https://api.alasco.de/v1/invoices/i1/documents/", client.InvoiceDocumentsURL("i1"))
}
