package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/common"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/dmitrijs2005/storeadmin/internal/netx"
	"github.com/google/uuid"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. http://localhost:5000; the /api prefix is added per call).
func NewHTTPClient(baseURL string, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", baseURL)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &HTTPClient{baseURL: u, http: &http.Client{}, log: log}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// endpoint builds /api/<segments...>, escaping each segment.
func (c *HTTPClient) endpoint(segments ...string) string {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, "api")
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return c.baseURL.String() + "/" + strings.Join(escaped, "/")
}

// newRequest is the only place headers are set. The Authorization header is
// derived from token on every call, so a request can never carry a token the
// caller did not pass.
func (c *HTTPClient) newRequest(ctx context.Context, method, token string, body io.Reader, contentType string, segments ...string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(segments...), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if v := common.BearerValue(token); v != "" {
		req.Header.Set(common.AuthorizationHeader, v)
	}
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	ctx := req.Context()
	reqID := req.Header.Get(common.RequestIDHeader)

	c.log.Debug(ctx, "api request", "method", req.Method, "path", req.URL.Path, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api response", "status", resp.StatusCode, "request_id", reqID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// decodeError reads the server's explanation: "error" first, then "message".
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	for _, key := range []string{"error", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			apiErr.Message = s
			break
		}
	}
	return apiErr
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, token string, in, out any, segments ...string) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, token, body, contentType, segments...)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) sendForm(ctx context.Context, method, token string, form *netx.Form, out any, segments ...string) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	req, err := c.newRequest(ctx, method, token, body, contentType, segments...)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var res models.LoginResult
	if err := c.sendJSON(ctx, http.MethodPost, "", in, &res, "auth", "login"); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	in := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{username, email, password}

	var u models.User
	if err := c.sendJSON(ctx, http.MethodPost, "", in, &u, "auth", "register"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.sendJSON(ctx, http.MethodGet, token, nil, &u, "auth", "me"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	var ps []models.Product
	if err := c.sendJSON(ctx, http.MethodGet, token, nil, &ps, "products"); err != nil {
		return nil, err
	}
	return ps, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, token, id string) (*models.Product, error) {
	var p models.Product
	if err := c.sendJSON(ctx, http.MethodGet, token, nil, &p, "products", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func productForm(in models.ProductInput) *netx.Form {
	f := netx.NewForm().
		Add("name", in.Name).
		Add("description", in.Description).
		Add("price", strconv.FormatFloat(in.Price, 'f', -1, 64)).
		AddAll("categories", in.Categories)
	if in.Image != nil {
		f.AddFile("image", in.Image.FileName, in.Image.ContentType, in.Image.Data)
	}
	return f
}

func (c *HTTPClient) CreateProduct(ctx context.Context, token string, in models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := c.sendForm(ctx, http.MethodPost, token, productForm(in), &p, "products"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, token, id string, in models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := c.sendForm(ctx, http.MethodPut, token, productForm(in), &p, "products", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, token, nil, nil, "products", id)
}

func (c *HTTPClient) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var cs []models.Category
	if err := c.sendJSON(ctx, http.MethodGet, token, nil, &cs, "categories"); err != nil {
		return nil, err
	}
	return cs, nil
}

func (c *HTTPClient) GetCategory(ctx context.Context, token, id string) (*models.Category, error) {
	var cat models.Category
	if err := c.sendJSON(ctx, http.MethodGet, token, nil, &cat, "categories", id); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, token string, in models.CategoryInput) (*models.Category, error) {
	var cat models.Category
	if err := c.sendJSON(ctx, http.MethodPost, token, in, &cat, "categories"); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, token, id string, in models.CategoryInput) (*models.Category, error) {
	var cat models.Category
	if err := c.sendJSON(ctx, http.MethodPut, token, in, &cat, "categories", id); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, token, nil, nil, "categories", id)
}

func (c *HTTPClient) GetUser(ctx context.Context, token, id string) (*models.User, error) {
	var u models.User
	if err := c.sendJSON(ctx, http.MethodGet, token, nil, &u, "users", id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token, id string, in models.ProfileInput) (*models.User, error) {
	f := netx.NewForm().
		Add("username", in.Username).
		Add("email", in.Email)
	if in.Avatar != nil {
		f.AddFile("avatar", in.Avatar.FileName, in.Avatar.ContentType, in.Avatar.Data)
	}

	var u models.User
	if err := c.sendForm(ctx, http.MethodPut, token, f, &u, "users", id); err != nil {
		return nil, err
	}
	return &u, nil
}
