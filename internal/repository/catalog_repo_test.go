package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"tubehub/internal/repository"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   map[string]interface{}
}

// fakeES 模拟 Elasticsearch HTTP 接口，记录收到的请求
type fakeES struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	response string
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: body})
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, f.response)
}

func (f *fakeES) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newCatalog(t *testing.T, fake *fakeES) *repository.CatalogRepository {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    []string{srv.URL},
		DisableRetry: true,
	})
	require.NoError(t, err)
	return repository.NewCatalogRepository(client, "videos")
}

const twoHits = `{
	"hits": {"hits": [
		{"_id": "v1", "_source": {"id": "v1", "title": "Abacus Tutorial", "channel_id": "c1", "views": 10, "created_at": "2026-01-02T03:04:05Z"}},
		{"_id": "v2", "_source": {"title": "Abacus Advanced", "channel_id": "c2", "views": 3, "created_at": "2026-01-01T00:00:00Z"}}
	]}
}`

func TestCatalogRepository_SearchVideos(t *testing.T) {
	fake := &fakeES{response: twoHits}
	catalog := newCatalog(t, fake)

	videos, err := catalog.SearchVideos(context.Background(), repository.CatalogQuery{
		Term:              "ab*",
		Fields:            []string{repository.FieldTitle, repository.FieldDescription},
		SortField:         repository.SortByViews,
		Limit:             5,
		ExcludeChannelIDs: []string{"sentinel"},
	})
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, "v2", videos[1].ID, "id falls back to _id")
	assert.Equal(t, int64(10), videos[0].Views)

	req := fake.last(t)
	assert.Equal(t, "/videos/_search", req.path)
	assert.EqualValues(t, 5, req.body["size"])

	encoded, _ := json.Marshal(req.body)
	s := string(encoded)
	assert.Contains(t, s, `"title.keyword"`)
	assert.Contains(t, s, `"description.keyword"`)
	assert.Contains(t, s, `"match_phrase":{"description":"ab*"}`, "long descriptions are still reachable through the text field")
	assert.NotContains(t, s, `"match_phrase":{"title"`)
	assert.Contains(t, s, `"value":"*ab\\**"`, "wildcard metacharacters are escaped")
	assert.Contains(t, s, `"case_insensitive":true`)
	assert.Contains(t, s, `"must_not"`)
	assert.Contains(t, s, `"sentinel"`)
	assert.Contains(t, s, `"views":{"order":"desc"}`)
}

func TestCatalogRepository_SearchError(t *testing.T) {
	fake := &fakeES{status: http.StatusInternalServerError, response: `{"error":"boom"}`}
	catalog := newCatalog(t, fake)

	_, err := catalog.SearchVideos(context.Background(), repository.CatalogQuery{Term: "ab", Fields: []string{repository.FieldTitle}, Limit: 5})
	assert.Error(t, err)
}

func TestCatalogRepository_ListVideos(t *testing.T) {
	fake := &fakeES{response: `{"hits":{"hits":[]}}`}
	catalog := newCatalog(t, fake)

	videos, err := catalog.ListVideos(context.Background(), repository.FeedQuery{Shorts: true, Limit: 12})
	require.NoError(t, err)
	assert.Empty(t, videos)

	encoded, _ := json.Marshal(fake.last(t).body)
	assert.Contains(t, string(encoded), `"is_short":true`)
	assert.Contains(t, string(encoded), `"created_at":{"order":"desc"}`)
	assert.NotContains(t, string(encoded), "must_not")
}

func TestCatalogRepository_MirrorChannel(t *testing.T) {
	fake := &fakeES{response: `{"updated": 3}`}
	catalog := newCatalog(t, fake)

	err := catalog.MirrorChannel(context.Background(), "c1", map[string]string{"channel_avatar": "https://cdn/a.png"})
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/videos/_update_by_query", req.path)
	assert.True(t, strings.Contains(req.query, "conflicts=proceed"))

	encoded, _ := json.Marshal(req.body)
	assert.Contains(t, string(encoded), `"channel_id":"c1"`)
	assert.Contains(t, string(encoded), `"channel_avatar":"https://cdn/a.png"`)
}

func TestCatalogRepository_MirrorNothing(t *testing.T) {
	fake := &fakeES{}
	catalog := newCatalog(t, fake)

	require.NoError(t, catalog.MirrorChannel(context.Background(), "c1", nil))
	assert.Empty(t, fake.requests)
}
