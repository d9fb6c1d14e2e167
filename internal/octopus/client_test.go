// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package octopus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Octopus-ApiKey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSpaceID_ExactMatchOnly(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/Spaces": `{"Items": [
			{"Id": "Spaces-1", "Name": "Default"},
			{"Id": "Spaces-2", "Name": "Default Copy"}
		]}`,
	})
	c := NewClient(srv.URL, "API-KEY")

	id, err := c.SpaceID(context.Background(), "Default")
	require.NoError(t, err)
	assert.Equal(t, "Spaces-1", id)

	// A partial match is not good enough.
	_, err = c.SpaceID(context.Background(), "Defau")
	assert.ErrorContains(t, err, `the space called "Defau" could not be found`)
}

func TestSpaceID_TrimsWhitespace(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/Spaces": `{"Items": [{"Id": "Spaces-1", "Name": "Default"}]}`,
	})
	c := NewClient(srv.URL, "API-KEY")

	id, err := c.SpaceID(context.Background(), "  Default  ")
	require.NoError(t, err)
	assert.Equal(t, "Spaces-1", id)
}

func TestProjectID(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/Spaces-1/Projects": `{"Items": [
			{"Id": "Projects-1", "Name": "Web Site"},
			{"Id": "Projects-2", "Name": "Web Service"}
		]}`,
	})
	c := NewClient(srv.URL, "API-KEY")

	id, err := c.ProjectID(context.Background(), "Spaces-1", "Web Service")
	require.NoError(t, err)
	assert.Equal(t, "Projects-2", id)

	_, err = c.ProjectID(context.Background(), "Spaces-1", "Web")
	assert.ErrorContains(t, err, "could not be found in space Spaces-1")
}

func TestReleases(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/Spaces-1/Projects/Projects-1/Releases": `{"Items": [
			{"Id": "Releases-2", "Version": "1.0.1"},
			{"Id": "Releases-1", "Version": "1.0.0"}
		]}`,
	})
	c := NewClient(srv.URL, "API-KEY")

	releases, err := c.Releases(context.Background(), "Spaces-1", "Projects-1")
	require.NoError(t, err)
	require.Len(t, releases, 2)
	assert.Equal(t, "1.0.1", releases[0].Version)
}

func TestSnapshotLookupsRejectEmptyID(t *testing.T) {
	c := NewClient("http://unused", "API-KEY")

	_, err := c.DeploymentProcess(context.Background(), "Spaces-1", "")
	assert.ErrorContains(t, err, "no deployment process snapshot")

	_, err = c.VariableSet(context.Background(), "Spaces-1", "")
	assert.ErrorContains(t, err, "no variable set snapshot")
}

func TestBuiltInFeedID(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/Spaces-1/Feeds": `{"Items": [
			{"Id": "Feeds-2", "Name": "nuget.org", "FeedType": "NuGet"},
			{"Id": "feeds-builtin", "Name": "Octopus Server (built-in)", "FeedType": "BuiltIn"}
		]}`,
	})
	c := NewClient(srv.URL, "API-KEY")

	id, err := c.BuiltInFeedID(context.Background(), "Spaces-1")
	require.NoError(t, err)
	assert.Equal(t, "feeds-builtin", id)
}

func TestBuiltInFeedID_Missing(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/Spaces-1/Feeds": `{"Items": [
			{"Id": "Feeds-2", "Name": "nuget.org", "FeedType": "NuGet"}
		]}`,
	})
	c := NewClient(srv.URL, "API-KEY")

	_, err := c.BuiltInFeedID(context.Background(), "Spaces-1")
	assert.ErrorContains(t, err, "no built-in feed")
}

func TestGetBytes_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Octopus-ApiKey")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/", "API-SECRET")
	_, err := c.getBytes(context.Background(), "/api/ping")
	require.NoError(t, err)
	assert.Equal(t, "API-SECRET", gotKey)
}

func TestGetBytes_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "API-KEY")
	_, err := c.getBytes(context.Background(), "/api/missing")
	assert.ErrorContains(t, err, "404")
}

func TestGetBytes_RetriesTransientFaults(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping retry wait in short mode")
	}

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "API-KEY")
	_, err := c.getBytes(context.Background(), "/api/flaky")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSelectPair_LatestTwoByDefault(t *testing.T) {
	releases := []Release{
		{ID: "Releases-3", Version: "1.0.2"},
		{ID: "Releases-2", Version: "1.0.1"},
		{ID: "Releases-1", Version: "1.0.0"},
	}

	oldRel, newRel, err := SelectPair(releases, "", "")
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", oldRel.Version)
	assert.Equal(t, "1.0.2", newRel.Version)
}

func TestSelectPair_NamedVersions(t *testing.T) {
	releases := []Release{
		{Version: "1.0.2"},
		{Version: "1.0.1"},
		{Version: "1.0.0"},
	}

	oldRel, newRel, err := SelectPair(releases, "1.0.0", "1.0.2")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", oldRel.Version)
	assert.Equal(t, "1.0.2", newRel.Version)
}

func TestSelectPair_Errors(t *testing.T) {
	releases := []Release{{Version: "1.0.0"}}

	_, _, err := SelectPair(releases, "", "")
	assert.ErrorContains(t, err, "at least two releases")

	_, _, err = SelectPair(releases, "0.9.0", "1.0.0")
	assert.ErrorContains(t, err, "could not find old release 0.9.0")

	_, _, err = SelectPair(releases, "1.0.0", "9.9.9")
	assert.ErrorContains(t, err, "could not find new release 9.9.9")
}
