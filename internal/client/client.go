// Package client talks to the digital-menu REST API. It implements the data
// and auth services the menusync store consumes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	reqdto "digital-menu/internal/handler/dto/request"
	resdto "digital-menu/internal/handler/dto/response"
	"digital-menu/internal/menusync"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errs.New("not found")
	ErrUnauthenticated = errs.New("unauthenticated")
	ErrConflict        = errs.New("conflict")
	ErrForbidden       = errs.New("forbidden")
)

const defaultTimeout = 15 * time.Second

// APIError is returned for any non-2xx response. It is marked with the
// matching sentinel above so callers can test with errs.Is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return http.StatusText(e.Status) + ": " + e.Message
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

type Client struct {
	baseURL string
	http    *http.Client

	mu          sync.RWMutex
	accessToken string
}

var (
	_ menusync.DataService = (*Client)(nil)
	_ menusync.AuthService = (*Client)(nil)
)

// New keeps session cookies in a jar and also sends the access token as a
// Bearer header once signed in.
func New(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout, Jar: jar},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// Auth

func (c *Client) SignUp(ctx context.Context, email, password string) (*menusync.Session, error) {
	return c.startSession(ctx, "/api/auth/signup", reqdto.SignUpRequest{Email: email, Password: password})
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*menusync.Session, error) {
	return c.startSession(ctx, "/api/auth/login", reqdto.LoginRequest{Email: email, Password: password})
}

func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.SetAccessToken("")
	return err
}

func (c *Client) CurrentSession(ctx context.Context) (*menusync.Session, error) {
	var u resdto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &menusync.Session{UserID: u.ID, Email: u.Email, Role: u.Role}, nil
}

func (c *Client) startSession(ctx context.Context, path string, body any) (*menusync.Session, error) {
	var res resdto.LoginResponse
	if err := c.do(ctx, http.MethodPost, path, body, &res); err != nil {
		return nil, err
	}
	c.SetAccessToken(res.AccessToken)

	s := &menusync.Session{AccessToken: res.AccessToken}
	if res.User != nil {
		s.UserID = res.User.ID
		s.Email = res.User.Email
		s.Role = res.User.Role
	}
	return s, nil
}

// Restaurant data

func (c *Client) GetRestaurantBySlug(ctx context.Context, slug string) (*queries.RestaurantView, error) {
	var v queries.RestaurantView
	if err := c.do(ctx, http.MethodGet, "/api/restaurants/"+url.PathEscape(slug), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) GetOwnedRestaurant(ctx context.Context) (*queries.RestaurantView, error) {
	var v queries.RestaurantView
	if err := c.do(ctx, http.MethodGet, "/api/owner/restaurant", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListOffers fetches the static offers section. An empty mode or lang uses
// the server defaults and a zero at means now.
func (c *Client) ListOffers(ctx context.Context, slug, mode, lang string, at time.Time) (*resdto.OfferListResponse, error) {
	q := url.Values{}
	if mode != "" {
		q.Set("mode", mode)
	}
	if lang != "" {
		q.Set("lang", lang)
	}
	if !at.IsZero() {
		q.Set("at", at.Format(time.RFC3339))
	}
	path := "/api/restaurants/" + url.PathEscape(slug) + "/offers"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res resdto.OfferListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, req reqdto.CreateRestaurantRequest) error {
	return c.do(ctx, http.MethodPost, "/api/owner/restaurant", req, nil)
}

func (c *Client) UpdateCustomization(ctx context.Context, req reqdto.CustomizationRequest) error {
	return c.do(ctx, http.MethodPut, "/api/owner/restaurant/customization", req, nil)
}

func (c *Client) CreateCategory(ctx context.Context, req reqdto.CategoryRequest) error {
	return c.do(ctx, http.MethodPost, "/api/owner/categories", req, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.CategoryRequest) error {
	return c.do(ctx, http.MethodPut, "/api/owner/categories/"+id.String(), req, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/owner/categories/"+id.String(), nil, nil)
}

func (c *Client) CreateMenuItem(ctx context.Context, categoryID uuid.UUID, req reqdto.MenuItemRequest) error {
	return c.do(ctx, http.MethodPost, "/api/owner/categories/"+categoryID.String()+"/items", req, nil)
}

func (c *Client) UpdateMenuItem(ctx context.Context, id uuid.UUID, req reqdto.MenuItemRequest) error {
	return c.do(ctx, http.MethodPut, "/api/owner/items/"+id.String(), req, nil)
}

func (c *Client) ToggleSoldOut(ctx context.Context, id uuid.UUID) (bool, error) {
	var res resdto.SoldOutResponse
	if err := c.do(ctx, http.MethodPost, "/api/owner/items/"+id.String()+"/sold-out", nil, &res); err != nil {
		return false, err
	}
	return res.IsSoldOut, nil
}

func (c *Client) CreateOffer(ctx context.Context, req reqdto.OfferRequest) error {
	return c.do(ctx, http.MethodPost, "/api/owner/offers", req, nil)
}

func (c *Client) UpdateOffer(ctx context.Context, id uuid.UUID, req reqdto.OfferRequest) error {
	return c.do(ctx, http.MethodPut, "/api/owner/offers/"+id.String(), req, nil)
}

func (c *Client) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/owner/offers/"+id.String(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrapf(err, "failed to decode %s %s", method, path)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&payload)

	apiErr := &APIError{Status: resp.StatusCode, Message: payload.Error.Message}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return errs.Mark(apiErr, ErrNotFound)
	case http.StatusUnauthorized:
		return errs.Mark(apiErr, ErrUnauthenticated)
	case http.StatusForbidden:
		return errs.Mark(apiErr, ErrForbidden)
	case http.StatusConflict:
		return errs.Mark(apiErr, ErrConflict)
	case http.StatusBadRequest:
		return errs.Validation(apiErr)
	default:
		return apiErr
	}
}
