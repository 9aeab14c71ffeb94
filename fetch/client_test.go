package fetch

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/errs"
	"github.com/arloliu/sacio/format"
	"github.com/arloliu/sacio/schema"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		Network: "IU",
		Station: "ANMO",
		Channel: "BHZ",
		Start:   time.Date(2010, 2, 27, 6, 30, 0, 0, time.UTC),
		End:     time.Date(2010, 2, 27, 10, 30, 0, 0, time.UTC),
	}
}

// validSACBytes builds a minimal valid file image to serve from the fake
// service.
func validSACBytes(t *testing.T) []byte {
	t.Helper()

	engine := endian.Little()
	buf := make([]byte, schema.HeaderSize+8)
	for _, f := range schema.Fields() {
		require.NoError(t, schema.Pack(f, schema.Value{}, buf, engine))
	}
	set := func(name string, v schema.Value) {
		f, ok := schema.Lookup(name)
		require.True(t, ok)
		require.NoError(t, schema.Pack(f, v, buf, engine))
	}
	set("nvhdr", schema.Int(6))
	set("npts", schema.Int(2))
	set("iftype", schema.EnumOf(format.ITime))
	set("leven", schema.Bool(true))
	set("delta", schema.Float(1.0))
	set("b", schema.Float(0.0))
	set("e", schema.Float(1.0))
	engine.PutUint32(buf[schema.HeaderSize:], math.Float32bits(1.0))
	engine.PutUint32(buf[schema.HeaderSize+4:], math.Float32bits(2.0))

	return buf
}

func TestRequest_URL(t *testing.T) {
	u := testRequest().URL("http://example.test/query")
	require.Contains(t, u, "net=IU")
	require.Contains(t, u, "sta=ANMO")
	require.Contains(t, u, "loc=--") // blank location code
	require.Contains(t, u, "cha=BHZ")
	require.Contains(t, u, "starttime=2010-02-27T06%3A30%3A00")
	require.Contains(t, u, "output=sac.bd")
}

func TestFetch_Success(t *testing.T) {
	payload := validSACBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "ANMO", r.URL.Query().Get("sta"))
		w.Write(payload)
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	data, err := c.Fetch(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestFetch_RetriesThenSucceeds(t *testing.T) {
	payload := validSACBytes(t)
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			http.Error(w, "upstream busy", http.StatusInternalServerError)
			return
		}
		w.Write(payload)
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL), WithMaxAttempts(3), WithBackoff(time.Millisecond))
	require.NoError(t, err)

	f, err := c.FetchFile(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, 3, attempts)
	require.Equal(t, []float32{1.0, 2.0}, f.Data)
}

func TestFetch_ExhaustsRetries(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "still broken", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL), WithMaxAttempts(3), WithBackoff(time.Millisecond))
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), testRequest())
	require.ErrorIs(t, err, errs.ErrFetchFailed)
	require.Contains(t, err.Error(), "still broken")
	require.Equal(t, 3, attempts)
}

func TestFetch_ClientErrorNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "no data available for request", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL), WithMaxAttempts(5), WithBackoff(time.Millisecond))
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), testRequest())
	require.ErrorIs(t, err, errs.ErrFetchRejected)
	require.Contains(t, err.Error(), "no data available for request")
	require.Equal(t, 1, attempts)
}

func TestFetch_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL), WithMaxAttempts(10), WithBackoff(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Fetch(ctx, testRequest())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetch_DecodeFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a SAC file"))
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.FetchFile(context.Background(), testRequest())
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}

// mapCache is an in-memory Cache for tests.
type mapCache struct {
	entries map[uint64][]byte
	puts    int
}

func (m *mapCache) Get(key uint64) ([]byte, bool) {
	data, ok := m.entries[key]
	return data, ok
}

func (m *mapCache) Put(key uint64, data []byte) error {
	m.entries[key] = data
	m.puts++

	return nil
}

func TestFetch_Cache(t *testing.T) {
	payload := validSACBytes(t)
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Write(payload)
	}))
	defer srv.Close()

	mc := &mapCache{entries: make(map[uint64][]byte)}
	c, err := NewClient(WithBaseURL(srv.URL), WithCache(mc))
	require.NoError(t, err)

	data, err := c.Fetch(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, payload, data)
	require.Equal(t, 1, attempts)
	require.Equal(t, 1, mc.puts)

	// Second fetch is served from the cache.
	data, err = c.Fetch(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, payload, data)
	require.Equal(t, 1, attempts)
}

func TestNewClient_InvalidOptions(t *testing.T) {
	_, err := NewClient(WithMaxAttempts(0))
	require.Error(t, err)
}
