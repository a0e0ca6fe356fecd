// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed HTTP client for the blogging API.
//
// The primary abstraction is [APIClient], which decouples consumers (CLI
// tools, integrations, smoke tests) from the wire format. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// ListOptions carries the query parameters of the blog listing endpoints.
// Zero values are omitted from the request, leaving the server defaults in
// effect.
type ListOptions struct {
	Page      uint64
	Limit     uint64
	SortBy    string
	SortOrder string
	Search    string
	Author    string
	Tags      []string
	State     string
}

// APIClient defines typed communication with the blogging server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and stores the returned token.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates with email and password and stores the returned
	// token.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// Profile fetches the authenticated user's public profile.
	Profile(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial profile mutation.
	UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.User, error)

	// ListBlogs fetches one page of published posts.
	ListBlogs(ctx context.Context, opts ListOptions) (models.BlogPage, error)

	// GetBlog fetches one published post by id, incrementing its read
	// counter server-side.
	GetBlog(ctx context.Context, blogID int64) (models.Blog, error)

	// CreateBlog stores a new draft post owned by the authenticated user.
	CreateBlog(ctx context.Context, request models.CreateBlogRequest) (models.Blog, error)

	// MyBlogs fetches one page of the authenticated user's own posts.
	MyBlogs(ctx context.Context, opts ListOptions) (models.BlogPage, error)

	// UpdateBlog applies a partial mutation to an owned post.
	UpdateBlog(ctx context.Context, blogID int64, request models.UpdateBlogRequest) (models.Blog, error)

	// DeleteBlog removes an owned post.
	DeleteBlog(ctx context.Context, blogID int64) error

	// UpdateBlogState transitions an owned post between draft and published.
	UpdateBlogState(ctx context.Context, blogID int64, state string) (models.Blog, error)
}
