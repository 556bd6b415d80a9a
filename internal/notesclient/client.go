package notesclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	opDeleteNote = "delete note"
	opEditNote   = "edit note"
	opListNotes  = "list notes"
	opCreateNote = "create note"
)

type logger interface {
	Debug(context.Context, string, ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	baseURL string `option:"mandatory" validate:"required,url"`

	httpClient *http.Client
	token      string
	logger     logger
}

// Client calls the notes web endpoints. It never retries.
type Client struct {
	Options
	base *url.URL
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes client options: %v", err)
	}

	base, err := url.Parse(strings.TrimRight(opts.baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %v", err)
	}

	if opts.httpClient == nil {
		opts.httpClient = http.DefaultClient
	}

	if opts.logger == nil {
		opts.logger = noopLogger{}
	}

	return &Client{Options: opts, base: base}, nil
}

// DeleteNote asks the server to delete the note. Any 2xx status is success.
func (c *Client) DeleteNote(ctx context.Context, id NoteID) error {
	resp, err := c.post(ctx, opDeleteNote, "/delete-note", deleteNoteRequest{NoteID: id})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logResponse(ctx, opDeleteNote, resp)

	return checkStatus(opDeleteNote, resp)
}

// EditNote replaces the note text. The outcome is taken from the JSON body,
// whatever the status code.
func (c *Client) EditNote(ctx context.Context, id NoteID, newData string) error {
	resp, err := c.post(ctx, opEditNote, "/edit-note", editNoteRequest{NoteID: id, NewData: newData})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body editNoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &TransportError{Op: opEditNote, Err: fmt.Errorf("decode response: %w", err)}
	}
	c.logResponse(ctx, opEditNote, resp)

	if body.Success {
		return nil
	}

	return &ApplicationError{Op: opEditNote, Status: resp.StatusCode, Message: body.Error}
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	resp, err := c.do(ctx, opListNotes, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(opListNotes, resp); err != nil {
		return nil, err
	}

	var body listNotesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &TransportError{Op: opListNotes, Err: fmt.Errorf("decode response: %w", err)}
	}
	c.logResponse(ctx, opListNotes, resp)

	return body.Notes, nil
}

func (c *Client) CreateNote(ctx context.Context, data string) (Note, error) {
	resp, err := c.post(ctx, opCreateNote, "/", createNoteRequest{Note: data})
	if err != nil {
		return Note{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(opCreateNote, resp); err != nil {
		return Note{}, err
	}

	var body createNoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Note{}, &TransportError{Op: opCreateNote, Err: fmt.Errorf("decode response: %w", err)}
	}
	c.logResponse(ctx, opCreateNote, resp)

	return body.Note, nil
}

func (c *Client) post(ctx context.Context, op, path string, payload any) (*http.Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %v", op, err)
	}

	return c.do(ctx, op, http.MethodPost, path, bytes.NewReader(b))
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %v", op, err)
	}

	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return resp, nil
}

// logResponse is called only once a response was read, so transport failures
// are left to the caller to report.
func (c *Client) logResponse(ctx context.Context, op string, resp *http.Response) {
	c.logger.Debug(ctx, "got response",
		slog.String("op", op),
		slog.String("method", resp.Request.Method),
		slog.String("path", resp.Request.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", resp.Request.Header.Get("X-Request-Id")),
	)
}

// checkStatus turns a non-2xx response into an ApplicationError carrying the
// server's "error" field when the body has one.
func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	appErr := &ApplicationError{Op: op, Status: resp.StatusCode}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		appErr.Message = body.Error
	}

	return appErr
}

type noopLogger struct{}

func (noopLogger) Debug(context.Context, string, ...slog.Attr) {}
