package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jib667/Watchdog/pkg/directory"
	"github.com/Jib667/Watchdog/pkg/logging"
	"github.com/Jib667/Watchdog/pkg/reconcile"
)

const testLegislators = `
- id: {bioguide: C001054}
  name: {first: Jerry, last: Carl, official_full: Jerry L. Carl}
  terms:
  - {type: rep, state: AL, district: 1, end: '2025-01-03', party: Republican}
- id: {bioguide: P000619}
  name: {first: Mary, last: Peltola}
  terms:
  - {type: rep, state: AK, end: '2025-01-03', party: Democrat}
- id: {bioguide: T000278}
  name: {first: Tommy, last: Tuberville, official_full: Tommy Tuberville}
  terms:
  - {type: sen, state: AL, end: '2027-01-03', state_rank: junior, class: 2}
- id: {bioguide: B001319}
  name: {first: Katie, last: Britt, official_full: Katie Boyd Britt}
  terms:
  - {type: sen, state: AL, end: '2029-01-03', state_rank: senior, class: 3}
`

const testCommittees = `
- type: house
  name: Agriculture
  thomas_id: HSAG
  subcommittees:
  - name: Conservation and Forestry
    thomas_id: '15'
`

const testMembership = `
HSAG:
- name: Jerry L. Carl
  bioguide: C001054
  party: majority
  rank: 5
HSAG15:
- name: Jerry L. Carl
  bioguide: C001054
  party: majority
  rank: 2
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		reconcile.LegislatorsFile: &fstest.MapFile{Data: []byte(testLegislators)},
		reconcile.CommitteesFile:  &fstest.MapFile{Data: []byte(testCommittees)},
		reconcile.MembershipFile:  &fstest.MapFile{Data: []byte(testMembership)},
	}
}

func newTestServer(t *testing.T, loaded bool) *Server {
	t.Helper()

	store := directory.NewStore(directory.WithFS(testFS()))
	if loaded {
		require.NoError(t, store.Load(context.Background()))
	}

	logger := logging.NewNopLogger()
	return New(store, logger, DefaultConfig())
}

func doRequest(t *testing.T, handler http.Handler, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	}
	return w, body
}

func TestServerHealth(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	for _, path := range []string{"/health", "/api/v1/health"} {
		w, body := doRequest(t, handler, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)

		data := body["data"].(map[string]any)
		assert.Equal(t, "healthy", data["status"])
		assert.Equal(t, "watchdog-api", data["service"])
	}
}

func TestServerReady(t *testing.T) {
	t.Run("before load", func(t *testing.T) {
		handler := newTestServer(t, false).Handler()
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotNil(t, body["error"])
	})

	t.Run("after load", func(t *testing.T) {
		handler := newTestServer(t, true).Handler()
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/ready")
		assert.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "ready", data["status"])
	})
}

func TestServerListEndpoints(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	tests := []struct {
		path  string
		field string
		count float64
	}{
		{"/api/v1/representatives", "representatives", 2},
		{"/api/v1/senators", "senators", 2},
		{"/api/v1/committees", "committees", 1},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, body := doRequest(t, handler, http.MethodGet, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			data := body["data"].(map[string]any)
			assert.Equal(t, tt.count, data["count"])
			assert.NotNil(t, data[tt.field])
		})
	}
}

func TestServerNotLoadedReturns503(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	paths := []string{
		"/api/v1/representatives",
		"/api/v1/senators",
		"/api/v1/committees",
		"/api/v1/stats",
		"/api/v1/members/AL_TOMMY",
		"/api/v1/delegation?state=AL&district=1",
	}

	for _, path := range paths {
		w, body := doRequest(t, handler, http.MethodGet, path)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "SERVICE_UNAVAILABLE", errObj["code"], path)
	}
}

func TestServerRepresentativeLookup(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	t.Run("by state and district", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/representatives/lookup?state=AL&district=1")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "C001054", data["bioguide"])
	})

	t.Run("at-large without district", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/representatives/lookup?state=Alaska")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "P000619", data["bioguide"])
	})

	t.Run("missing state", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/representatives/lookup")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "BAD_REQUEST", errObj["code"])
	})

	t.Run("unknown state", func(t *testing.T) {
		w, _ := doRequest(t, handler, http.MethodGet, "/api/v1/representatives/lookup?state=Atlantis")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no such district", func(t *testing.T) {
		w, _ := doRequest(t, handler, http.MethodGet, "/api/v1/representatives/lookup?state=AL&district=7")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServerSenatorLookup(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	t.Run("senior first", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/senators/lookup?state=Alabama")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		senators := data["senators"].([]any)
		require.Len(t, senators, 2)
		first := senators[0].(map[string]any)
		assert.Equal(t, "B001319", first["bioguide"])
	})

	t.Run("missing state", func(t *testing.T) {
		w, _ := doRequest(t, handler, http.MethodGet, "/api/v1/senators/lookup")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServerGetMember(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	t.Run("found", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/members/AL_TOMMY")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "T000278", data["bioguide"])
	})

	t.Run("case insensitive", func(t *testing.T) {
		w, _ := doRequest(t, handler, http.MethodGet, "/api/v1/members/al_tommy")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/members/ZZ_NOONE")
		assert.Equal(t, http.StatusNotFound, w.Code)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", errObj["code"])
	})
}

func TestServerGetCommittee(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	t.Run("main committee", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/committees/HSAG")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		assert.NotNil(t, data["committee"])
		assert.Nil(t, data["subcommittee"])
	})

	t.Run("subcommittee", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/committees/HSAG15")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		assert.NotNil(t, data["committee"])
		assert.NotNil(t, data["subcommittee"])
	})

	t.Run("unknown code", func(t *testing.T) {
		w, _ := doRequest(t, handler, http.MethodGet, "/api/v1/committees/XXXX")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServerDelegation(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	w, body := doRequest(t, handler, http.MethodGet, "/api/v1/delegation?state=AL&district=1")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Alabama", data["state"])
	senators := data["senator_ids"].([]any)
	assert.Len(t, senators, 2)
}

func TestServerStats(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	w, body := doRequest(t, handler, http.MethodGet, "/api/v1/stats")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["representatives"])
	assert.Equal(t, float64(2), data["senators"])
}

func TestServerAdminReload(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	t.Run("reload", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodPost, "/api/v1/admin/reload")
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "reloaded", data["status"])
	})

	t.Run("wrong method", func(t *testing.T) {
		w, body := doRequest(t, handler, http.MethodGet, "/api/v1/admin/reload")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "METHOD_NOT_ALLOWED", errObj["code"])
	})
}

func TestServerMethodNotAllowed(t *testing.T) {
	handler := newTestServer(t, true).Handler()

	w, _ := doRequest(t, handler, http.MethodPost, "/api/v1/representatives")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServerFavicon(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
