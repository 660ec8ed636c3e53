// Package client is the Go facade the site and editing UI code talk to. It
// hides which backend serves a given entity type: catalog and content always
// go over HTTP to the content API, while exhibitions, critics, collections
// and newsletter signups can be served from local JSON collections seeded
// with the bundled defaults when no API deployment carries them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"portfolio-app/internal/domain/newsletter"
	"portfolio-app/internal/domain/showcase"
	"portfolio-app/internal/store"
	"portfolio-app/internal/store/jsonstore"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string

	// non-nil when the local fallback serves the showcase entity types
	exhibitions store.Repository[showcase.Exhibition]
	critics     store.Repository[showcase.Critic]
	collections store.Repository[showcase.Collection]
	subscribers store.Repository[newsletter.Subscriber]
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithToken attaches the editing-UI session token to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithLocalData serves exhibitions, critics, collections and newsletter
// signups from JSON files under dir instead of the API. Collections missing
// on disk are created from the bundled defaults on first access.
func WithLocalData(dir string) Option {
	return func(c *Client) {
		c.exhibitions = jsonstore.New(filepath.Join(dir, "exhibitions.json"), "order_index", showcase.DefaultExhibitions)
		c.critics = jsonstore.New(filepath.Join(dir, "critics.json"), "order_index", showcase.DefaultCritics)
		c.collections = jsonstore.New(filepath.Join(dir, "collections.json"), "order_index", showcase.DefaultCollections)
		c.subscribers = jsonstore.New[newsletter.Subscriber](filepath.Join(dir, "newsletter.json"), "", nil)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one API call and returns the decoded response envelope. Error
// payloads surface as plain Go errors carrying the API's message.
func (c *Client) do(ctx context.Context, method, path string, body any) (map[string]json.RawMessage, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return nil, errors.New(e.Error)
		}
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return env, nil
}

func unwrap[T any](env map[string]json.RawMessage, key string) (T, error) {
	var out T
	raw, ok := env[key]
	if !ok {
		return out, fmt.Errorf("response missing %q", key)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

func call[T any](c *Client, ctx context.Context, method, path string, body any, key string) (T, error) {
	env, err := c.do(ctx, method, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return unwrap[T](env, key)
}

// Login exchanges the editing UI password for a session token and keeps it
// on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	token, err := call[string](c, ctx, http.MethodPost, "/api/auth/login", map[string]string{"password": password}, "token")
	if err != nil {
		return "", err
	}
	c.token = token
	return token, nil
}

// Upload sends one file to the image store and returns its public path.
func (c *Client) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	var out struct {
		Error string `json:"error"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if res.StatusCode >= 400 {
		if out.Error != "" {
			return "", errors.New(out.Error)
		}
		return "", fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return out.URL, nil
}
