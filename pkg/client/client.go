// Package client talks to the catalog admin API and drives the optimistic
// reorder flow used by admin front ends.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/alimikegami/catalog-service/pkg/httpclient"
	"github.com/labstack/echo/v4"
)

// APIError is a non 2xx answer from the API. It unwraps to the matching
// errs sentinel so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return errs.ErrValidation
	case http.StatusUnauthorized:
		return errs.ErrNotLoggedIn
	case http.StatusForbidden:
		return errs.ErrForbidden
	case http.StatusNotFound:
		return errs.ErrNotFound
	case http.StatusConflict:
		return errs.ErrConflict
	case http.StatusRequestEntityTooLarge:
		return errs.ErrPayloadTooLarge
	}
	return errs.ErrInternalServer
}

type AdminClient struct {
	baseURL string
	token   string
}

// NewAdminClient expects the API root, e.g. http://localhost:8080/api/v1.
func NewAdminClient(baseURL string) *AdminClient {
	return &AdminClient{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *AdminClient) SetToken(token string) {
	c.token = token
}

func (c *AdminClient) Login(ctx context.Context, username, password string) (res dto.LoginResponse, err error) {
	err = c.call(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Username: username, Password: password}, &res)
	if err != nil {
		return res, err
	}

	c.token = res.Token
	return res, nil
}

func (c *AdminClient) ListCollections(ctx context.Context) (res []dto.CollectionResponse, err error) {
	err = c.call(ctx, http.MethodGet, "/collections", nil, &res)
	return res, err
}

func (c *AdminClient) CreateCollection(ctx context.Context, name string) (res dto.CollectionResponse, err error) {
	err = c.call(ctx, http.MethodPost, "/collections", dto.CollectionRequest{Name: &name}, &res)
	return res, err
}

func (c *AdminClient) ReorderCollections(ctx context.Context, orderedIDs []int64) error {
	return c.call(ctx, http.MethodPut, "/collections/reorder", dto.ReorderRequest{OrderedIDs: orderedIDs}, nil)
}

func (c *AdminClient) ListSubcollections(ctx context.Context, collectionID int64) (res []dto.SubcollectionResponse, err error) {
	err = c.call(ctx, http.MethodGet, fmt.Sprintf("/collections/%d/subcollections", collectionID), nil, &res)
	return res, err
}

func (c *AdminClient) CreateSubcollection(ctx context.Context, collectionID int64, name string) (res dto.SubcollectionResponse, err error) {
	err = c.call(ctx, http.MethodPost, fmt.Sprintf("/collections/%d/subcollections", collectionID), dto.SubcollectionRequest{Name: &name}, &res)
	return res, err
}

func (c *AdminClient) ReorderSubcollections(ctx context.Context, collectionID int64, orderedIDs []int64) error {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/collections/%d/subcollections/reorder", collectionID), dto.ReorderRequest{OrderedIDs: orderedIDs}, nil)
}

func (c *AdminClient) call(ctx context.Context, method, path string, in interface{}, out interface{}) error {
	req := httpclient.HttpRequest{
		URL:     c.baseURL + path,
		Method:  method,
		Headers: map[string]string{},
	}

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return err
		}
		req.Body = body
		req.Headers[echo.HeaderContentType] = echo.MIMEApplicationJSON
	}
	if c.token != "" {
		req.Headers[echo.HeaderAuthorization] = "Bearer " + c.token
	}

	status, body, err := httpclient.SendRequest(ctx, req)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(status)
		}
		return &APIError{StatusCode: status, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(body, out)
}
