// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package octopus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/relctl/relctl/internal/cacheutil"
	"github.com/relctl/relctl/internal/log"
)

// retryAttempts is the total number of tries per request, matching the
// server-side guidance for transient API faults.
const retryAttempts = 3

// retryWait is the fixed pause between tries.
const retryWait = 2 * time.Second

// Client talks to one Octopus server. It is safe for sequential reuse across
// calls; all methods take a context and return wrapped errors naming the
// entity that could not be fetched.
type Client struct {
	Server string

	apiKey string
	http   *retryablehttp.Client
}

// NewClient builds a client for the given server URL and API key. The
// trailing slash on the server URL, if any, is dropped.
func NewClient(server, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryAttempts - 1
	rc.RetryWaitMin = retryWait
	rc.RetryWaitMax = retryWait
	// Route retryablehttp's chatter below our own handler.
	rc.Logger = nil

	return &Client{
		Server: strings.TrimRight(server, "/"),
		apiKey: apiKey,
		http:   rc,
	}
}

// SpaceID resolves a space name to its id. The lookup asks the server for
// partial matches and then insists on an exact name.
func (c *Client) SpaceID(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)

	var doc items[struct {
		ID   string `json:"Id"`
		Name string `json:"Name"`
	}]
	path := "/api/Spaces?partialName=" + url.QueryEscape(name) + "&take=1000"
	if err := c.getJSON(ctx, path, &doc); err != nil {
		return "", fmt.Errorf("failed to list spaces: %w", err)
	}

	for _, s := range doc.Items {
		if s.Name == name {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("the space called %q could not be found", name)
}

// ProjectID resolves a project name within a space to its id.
func (c *Client) ProjectID(ctx context.Context, spaceID, name string) (string, error) {
	name = strings.TrimSpace(name)

	var doc items[struct {
		ID   string `json:"Id"`
		Name string `json:"Name"`
	}]
	path := "/api/" + spaceID + "/Projects?take=1000&partialName=" + url.QueryEscape(name)
	if err := c.getJSON(ctx, path, &doc); err != nil {
		return "", fmt.Errorf("failed to list projects in %s: %w", spaceID, err)
	}

	for _, p := range doc.Items {
		if p.Name == name {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("the project called %q could not be found in space %s", name, spaceID)
}

// Releases lists a project's releases, most recent first, as the server
// orders them.
func (c *Client) Releases(ctx context.Context, spaceID, projectID string) ([]Release, error) {
	var doc items[Release]
	path := "/api/" + spaceID + "/Projects/" + projectID + "/Releases"
	if err := c.getJSON(ctx, path, &doc); err != nil {
		return nil, fmt.Errorf("failed to list releases for %s: %w", projectID, err)
	}
	return doc.Items, nil
}

// DeploymentProcess fetches a snapshotted deployment process by id.
func (c *Client) DeploymentProcess(ctx context.Context, spaceID, id string) (*DeploymentProcess, error) {
	if id == "" {
		return nil, fmt.Errorf("release has no deployment process snapshot")
	}
	var doc DeploymentProcess
	if err := c.getJSON(ctx, "/api/"+spaceID+"/DeploymentProcesses/"+id, &doc); err != nil {
		return nil, fmt.Errorf("failed to get deployment process %s: %w", id, err)
	}
	return &doc, nil
}

// VariableSet fetches a snapshotted variable set by id.
func (c *Client) VariableSet(ctx context.Context, spaceID, id string) (*VariableSet, error) {
	if id == "" {
		return nil, fmt.Errorf("release has no variable set snapshot")
	}
	var doc VariableSet
	if err := c.getJSON(ctx, "/api/"+spaceID+"/Variables/"+id, &doc); err != nil {
		return nil, fmt.Errorf("failed to get variable set %s: %w", id, err)
	}
	return &doc, nil
}

// BuiltInFeedID finds the id of the space's built-in package feed. Packages
// sourced from any other feed cannot be downloaded for content comparison.
func (c *Client) BuiltInFeedID(ctx context.Context, spaceID string) (string, error) {
	var doc items[Feed]
	if err := c.getJSON(ctx, "/api/"+spaceID+"/Feeds?take=1000", &doc); err != nil {
		return "", fmt.Errorf("failed to list feeds in %s: %w", spaceID, err)
	}
	for _, f := range doc.Items {
		if f.FeedType == "BuiltIn" {
			return f.ID, nil
		}
	}
	return "", fmt.Errorf("no built-in feed found in space %s", spaceID)
}

// DownloadPackage fetches one package version's raw archive from the built-in
// feed. Downloads are cached by space, id, and version; a package version is
// immutable once pushed, so cached copies never go stale.
func (c *Client) DownloadPackage(ctx context.Context, spaceID, id, version string) ([]byte, error) {
	cacheKey := id + "." + version
	if entry, ok := cacheutil.Read([]string{"packages", spaceID}, cacheKey); ok {
		return entry.Data, nil
	}

	path := "/api/" + spaceID + "/Packages/packages-" + id + "." + version + "/raw"
	data, err := c.getBytes(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to download package %s.%s: %w", id, version, err)
	}

	if err := cacheutil.Write([]string{"packages", spaceID}, cacheKey, data); err != nil {
		log.WithError(err).Warnf("failed to cache package %s", cacheKey)
	}
	return data, nil
}

// SelectPair picks the two releases to compare out of a listing. With both
// versions empty the two most recent releases are used; otherwise both named
// versions must be present. The listing is expected most recent first.
func SelectPair(releases []Release, oldVersion, newVersion string) (Release, Release, error) {
	if oldVersion == "" || newVersion == "" {
		if len(releases) < 2 {
			return Release{}, Release{}, fmt.Errorf("at least two releases are required for a comparison, found %d", len(releases))
		}
		return releases[1], releases[0], nil
	}

	var oldRel, newRel *Release
	for i := range releases {
		switch releases[i].Version {
		case oldVersion:
			oldRel = &releases[i]
		case newVersion:
			newRel = &releases[i]
		}
	}
	if oldRel == nil {
		return Release{}, Release{}, fmt.Errorf("could not find old release %s", oldVersion)
	}
	if newRel == nil {
		return Release{}, Release{}, fmt.Errorf("could not find new release %s", newVersion)
	}
	return *oldRel, *newRel, nil
}

// getJSON performs an authenticated GET and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.getBytes(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// getBytes performs an authenticated GET and returns the raw body.
func (c *Client) getBytes(ctx context.Context, path string) ([]byte, error) {
	log.Tracef("GET %s", path)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.Server+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Octopus-ApiKey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s returned %s", path, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}
