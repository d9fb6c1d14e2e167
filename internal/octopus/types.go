// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package octopus

import (
	"encoding/json"
	"time"
)

// Release is the release document as the API reports it. The deployment
// process and variable set referenced here are the snapshots frozen with the
// release, not the project's current versions.
type Release struct {
	ID                                 string            `json:"Id"`
	Version                            string            `json:"Version"`
	Assembled                          time.Time         `json:"Assembled"`
	ProjectDeploymentProcessSnapshotID string            `json:"ProjectDeploymentProcessSnapshotId"`
	ProjectVariableSetSnapshotID       string            `json:"ProjectVariableSetSnapshotId"`
	SelectedPackages                   []SelectedPackage `json:"SelectedPackages"`
}

// SelectedPackage is one package reference pinned by a release.
type SelectedPackage struct {
	PackageReferenceName string `json:"PackageReferenceName"`
	StepName             string `json:"StepName"`
	ActionName           string `json:"ActionName"`
	Version              string `json:"Version"`
}

// DeploymentProcess is a snapshotted process document. Action payloads are
// kept raw; their shape varies per action type and the comparison only ever
// treats them as opaque, canonicalizable JSON.
type DeploymentProcess struct {
	ID    string        `json:"Id"`
	Steps []ProcessStep `json:"Steps"`
}

// ProcessStep is one step of a deployment process.
type ProcessStep struct {
	Name    string            `json:"Name"`
	Actions []json.RawMessage `json:"Actions"`
}

// VariableSet is a snapshotted variable-set document.
type VariableSet struct {
	ID        string        `json:"Id"`
	Variables []APIVariable `json:"Variables"`
}

// APIVariable is one variable as the API reports it. Scope maps dimension
// names (Environment, Role, Machine, ...) to id/value lists.
type APIVariable struct {
	ID          string              `json:"Id"`
	Name        string              `json:"Name"`
	Value       string              `json:"Value"`
	IsSensitive bool                `json:"IsSensitive"`
	Scope       map[string][]string `json:"Scope"`
}

// Feed is one package feed definition.
type Feed struct {
	ID       string `json:"Id"`
	Name     string `json:"Name"`
	FeedType string `json:"FeedType"`
}

// items is the standard Octopus collection envelope.
type items[T any] struct {
	Items []T `json:"Items"`
}
