package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// envelope mirrors the server's response wrapper with the payload left raw,
// so each call site can decode its own data shape.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// HTTPClientConfig configures the REST implementation of [APIClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg HTTPClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// Token implements [APIClient].
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}

	h.SetToken(env.Token)
	return decodeUser(env)
}

func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}

	h.SetToken(env.Token)
	return decodeUser(env)
}

func (h *httpAPIClient) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/auth/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}

	return decodeUser(env)
}

func (h *httpAPIClient) UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Patch("/api/auth/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}

	return decodeUser(env)
}

func (h *httpAPIClient) ListBlogs(ctx context.Context, opts ListOptions) (models.BlogPage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(opts.values()).
		Get("/api/blogs")
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("list blogs request: %w", err)
	}

	return decodeBlogPage(resp)
}

func (h *httpAPIClient) GetBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/blogs/%d", blogID))
	if err != nil {
		return models.Blog{}, fmt.Errorf("get blog request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.Blog{}, err
	}

	return decodeBlog(env)
}

func (h *httpAPIClient) CreateBlog(ctx context.Context, request models.CreateBlogRequest) (models.Blog, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/blogs")
	if err != nil {
		return models.Blog{}, fmt.Errorf("create blog request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.Blog{}, err
	}

	return decodeBlog(env)
}

func (h *httpAPIClient) MyBlogs(ctx context.Context, opts ListOptions) (models.BlogPage, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(opts.values()).
		Get("/api/blogs/user/me")
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("my blogs request: %w", err)
	}

	return decodeBlogPage(resp)
}

func (h *httpAPIClient) UpdateBlog(ctx context.Context, blogID int64, request models.UpdateBlogRequest) (models.Blog, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put(fmt.Sprintf("/api/blogs/%d", blogID))
	if err != nil {
		return models.Blog{}, fmt.Errorf("update blog request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.Blog{}, err
	}

	return decodeBlog(env)
}

func (h *httpAPIClient) DeleteBlog(ctx context.Context, blogID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/blogs/%d", blogID))
	if err != nil {
		return fmt.Errorf("delete blog request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) UpdateBlogState(ctx context.Context, blogID int64, state string) (models.Blog, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateStateRequest{State: state}).
		Put(fmt.Sprintf("/api/blogs/%d/state", blogID))
	if err != nil {
		return models.Blog{}, fmt.Errorf("update blog state request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.Blog{}, err
	}

	return decodeBlog(env)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (o ListOptions) values() url.Values {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.FormatUint(o.Page, 10))
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.FormatUint(o.Limit, 10))
	}
	if o.SortBy != "" {
		values.Set("sortBy", o.SortBy)
	}
	if o.SortOrder != "" {
		values.Set("sortOrder", o.SortOrder)
	}
	if o.Search != "" {
		values.Set("search", o.Search)
	}
	if o.Author != "" {
		values.Set("author", o.Author)
	}
	if len(o.Tags) > 0 {
		values.Set("tags", strings.Join(o.Tags, ","))
	}
	if o.State != "" {
		values.Set("state", o.State)
	}
	return values
}

func decodeEnvelope(resp *resty.Response) (envelope, error) {
	if err := mapHTTPError(resp); err != nil {
		return envelope{}, err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return envelope{}, fmt.Errorf("decoding response envelope: %w", err)
	}
	return env, nil
}

func decodeUser(env envelope) (models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return models.User{}, fmt.Errorf("decoding user payload: %w", err)
	}
	return data.User, nil
}

func decodeBlog(env envelope) (models.Blog, error) {
	var data struct {
		Blog models.Blog `json:"blog"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return models.Blog{}, fmt.Errorf("decoding blog payload: %w", err)
	}
	return data.Blog, nil
}

func decodeBlogPage(resp *resty.Response) (models.BlogPage, error) {
	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.BlogPage{}, err
	}

	var page models.BlogPage
	if err := json.Unmarshal(env.Data, &page); err != nil {
		return models.BlogPage{}, fmt.Errorf("decoding blog page payload: %w", err)
	}
	return page, nil
}
