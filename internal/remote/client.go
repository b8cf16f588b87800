// Package remote implements the client for the contacts REST service.
// Every operation returns a result value; transport faults and server
// rejections never escape as Go errors or panics.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"bitbucket.org/sotavant/contacts-app/internal/logger"
	"bitbucket.org/sotavant/contacts-app/internal/models"
	"bitbucket.org/sotavant/contacts-app/internal/result"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	headerAPIKey = "ApiKey"
	headerAccept = "accept"
	acceptValue  = "text/plain"

	userPath        = "/api/User"
	userListPath    = "/api/User/GetAll"
	uploadImagePath = "/api/User/UploadImage"
	imageField      = "image"

	msgNetworkError     = "Network error occurred"
	msgContactNotFound  = "Contact not found"
	msgFetchAllFailed   = "Failed to fetch contacts"
	msgFetchOneFailed   = "Failed to fetch contact"
	msgCreateFailed     = "Failed to create contact"
	msgUpdateFailed     = "Failed to update contact"
	msgDeleteFailed     = "Failed to delete contact"
	msgUploadFailed     = "Failed to upload image"
	msgImageURLMissing  = "Failed to get image URL"
	msgImageReadFailed  = "Failed to read image file"
)

// Config holds the transport settings: one base URL, one API key, one
// uniform timeout for connect and read.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client
}

// New builds the client. The ApiKey and accept headers ride on every
// outgoing request.
func New(cfg Config) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader(headerAPIKey, cfg.APIKey).
		SetHeader(headerAccept, acceptValue)

	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Log.Debug("api response",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", resp.Time()))
		return nil
	})

	return &Client{http: c}
}

// FetchAll loads every contact from the list endpoint.
func (c *Client) FetchAll(ctx context.Context) result.Result[[]models.Contact] {
	data, fail := c.execute(ctx, resty.MethodGet, userListPath, nil, msgFetchAllFailed)
	if fail != nil {
		return failure[[]models.Contact](fail)
	}

	var list userListData
	if !isNull(data) {
		if err := json.Unmarshal(data, &list); err != nil {
			return result.Err[[]models.Contact](err.Error())
		}
	}

	contacts := make([]models.Contact, 0, len(list.Users))
	for _, u := range list.Users {
		contacts = append(contacts, u.toContact())
	}
	return result.OK(contacts)
}

// FetchOne loads a single contact by id.
func (c *Client) FetchOne(ctx context.Context, id string) result.Result[models.Contact] {
	return c.fetchRecord(ctx, resty.MethodGet, userPath+"/"+id, nil, msgFetchOneFailed, msgContactNotFound)
}

// Create registers the contact on the server and returns the canonical
// record with the server-assigned id.
func (c *Client) Create(ctx context.Context, contact models.Contact) result.Result[models.Contact] {
	return c.fetchRecord(ctx, resty.MethodPost, userPath, toUserRequest(contact), msgCreateFailed, msgCreateFailed)
}

// Update rewrites the contact with the given id.
func (c *Client) Update(ctx context.Context, contact models.Contact) result.Result[models.Contact] {
	return c.fetchRecord(ctx, resty.MethodPut, userPath+"/"+contact.ID, toUserRequest(contact), msgUpdateFailed, msgUpdateFailed)
}

// Delete removes the contact with the given id.
func (c *Client) Delete(ctx context.Context, id string) result.Result[struct{}] {
	_, fail := c.execute(ctx, resty.MethodDelete, userPath+"/"+id, nil, msgDeleteFailed)
	if fail != nil {
		return failure[struct{}](fail)
	}
	return result.OK(struct{}{})
}

// UploadImage reads a local image and posts it as a multipart form
// field, returning the hosted URL.
func (c *Client) UploadImage(ctx context.Context, path string) result.Result[string] {
	payload, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Debug("cannot read image file", zap.String("path", path), zap.Error(err))
		return result.Err[string](msgImageReadFailed)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader(imageField, filepath.Base(path), bytes.NewReader(payload)).
		Post(uploadImagePath)
	if err != nil {
		return result.Err[string](networkMessage(err))
	}

	data, fail := decodeEnvelope(resp, msgUploadFailed)
	if fail != nil {
		return failure[string](fail)
	}

	var d imageUploadData
	if isNull(data) || json.Unmarshal(data, &d) != nil || d.ImageURL == "" {
		return result.Err[string](msgImageURLMissing)
	}
	return result.OK(d.ImageURL)
}

// fetchRecord handles the operations whose envelope data is a single
// user record.
func (c *Client) fetchRecord(ctx context.Context, method, path string, body any, fallback, missing string) result.Result[models.Contact] {
	data, fail := c.execute(ctx, method, path, body, fallback)
	if fail != nil {
		return failure[models.Contact](fail)
	}
	if isNull(data) {
		return result.Err[models.Contact](missing)
	}

	var u userRecord
	if err := json.Unmarshal(data, &u); err != nil {
		return result.Err[models.Contact](err.Error())
	}
	return result.OK(u.toContact())
}

func (c *Client) execute(ctx context.Context, method, path string, body any, fallback string) (json.RawMessage, *result.Error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &result.Error{Message: networkMessage(err)}
	}
	return decodeEnvelope(resp, fallback)
}

// decodeEnvelope applies the uniform failure mapping: success:false OR
// a non-2xx status is a rejection carrying messages[0] and the HTTP
// status; an undecodable body is a transport fault.
func decodeEnvelope(resp *resty.Response, fallback string) (json.RawMessage, *result.Error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if !resp.IsSuccess() {
			return nil, &result.Error{Message: fallback, Code: resp.StatusCode()}
		}
		return nil, &result.Error{Message: err.Error()}
	}

	if !resp.IsSuccess() || !env.Success {
		msg := fallback
		if len(env.Messages) > 0 && env.Messages[0] != "" {
			msg = env.Messages[0]
		}
		code := resp.StatusCode()
		if resp.IsSuccess() && env.Status != 0 {
			// rejection inside a 2xx transport: the envelope carries
			// the meaningful status, not the HTTP layer
			code = env.Status
		}
		return nil, &result.Error{Message: msg, Code: code}
	}

	return env.Data, nil
}

func failure[T any](fail *result.Error) result.Result[T] {
	if fail.Code != 0 {
		return result.ErrCode[T](fail.Message, fail.Code)
	}
	return result.Err[T](fail.Message)
}

func networkMessage(err error) string {
	if err == nil || err.Error() == "" {
		return msgNetworkError
	}
	return err.Error()
}

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}
