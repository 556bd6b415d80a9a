package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotesServer struct {
	mu      sync.Mutex
	deleted []any
	edited  []map[string]any
}

func (f *fakeNotesServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/":
		_, _ = io.WriteString(w, `{"notes":[{"id":1,"data":"buy milk","date":"2025-05-03 09:00:00"}]}`)
	case r.URL.Path == "/delete-note":
		f.deleted = append(f.deleted, body["noteId"])
		_, _ = io.WriteString(w, `{}`)
	case r.URL.Path == "/edit-note":
		f.edited = append(f.edited, body)
		_, _ = io.WriteString(w, `{"success":true}`)
	case r.Method == http.MethodPost && r.URL.Path == "/":
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"note":{"id":2,"data":"x","date":"2025-05-04 12:30:15"}}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (string, *fakeNotesServer) {
	t.Helper()

	fake := &fakeNotesServer{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--server", srv.URL))
	t.Cleanup(func() { serverURL = "" })

	require.NoError(t, rootCmd.Execute())

	return out.String(), fake
}

func TestDeleteCommand(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		out, fake := runCLI(t, "y\n", "delete", "1")

		assert.Equal(t, []any{"1"}, fake.deleted)
		assert.Contains(t, out, "buy milk", "navigates to the home view")
	})

	t.Run("declined", func(t *testing.T) {
		out, fake := runCLI(t, "n\n", "delete", "1")

		assert.Empty(t, fake.deleted)
		assert.NotContains(t, out, "buy milk")
	})
}

func TestEditCommand(t *testing.T) {
	out, fake := runCLI(t, "  fresh text  \n", "edit", "1")

	require.Len(t, fake.edited, 1)
	assert.Equal(t, "fresh text", fake.edited[0]["newData"])
	assert.Contains(t, out, "Edit note:")
}

func TestListCommand(t *testing.T) {
	out, _ := runCLI(t, "", "list")

	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "buy milk")
}

func TestAddCommand(t *testing.T) {
	out, _ := runCLI(t, "", "add", "remember", "the", "milk")

	assert.Contains(t, out, "Note added! (#2)")
}
