// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hub

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"iter"
)

// Tag is one tag of a Docker Hub repository, as returned by the tag listing
// endpoint. Only the name is carried; tags are fetched fresh on every run
// and never cached.
type Tag struct {
	Name string `json:"name"`
}

// TagAPI provides the Docker Hub operations the reaper needs: listing the
// tags of a repository and deleting tags by name. Authentication is handled
// internally by implementations.
type TagAPI interface {
	// Login obtains a bearer token for the configured credentials.
	Login(ctx context.Context) (string, error)

	// Tags iterates the repository's tags in server order, following
	// pagination until exhausted. A 404 on a page request ends the
	// sequence without error.
	Tags(ctx context.Context, organization, repository string) iter.Seq2[Tag, error]

	// ListTags collects the Tags sequence into a list of tag names.
	ListTags(ctx context.Context, organization, repository string) ([]string, error)

	// DeleteTag deletes the named tag from the repository.
	DeleteTag(ctx context.Context, organization, repository, tag string) error
}
