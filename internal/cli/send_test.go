package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSend(t *testing.T) {
	document := []byte(`<?xml version="1.0"?><Invoice><ID>42</ID></Invoice>`)
	path := filepath.Join(t.TempDir(), "invoice.xml")
	if err := os.WriteFile(path, document, 0o644); err != nil {
		t.Fatal(err)
	}

	id := uuid.NewString()
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/send/new/document/" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/xml" {
			t.Errorf("Content-Type = %q", got)
		}
		buf := new(bytes.Buffer)
		buf.ReadFrom(r.Body)
		gotBody = buf.Bytes()
		w.Write([]byte(`{"id":"` + id + `","status":"sent"}`))
	}))
	defer srv.Close()

	out, w, _ := newTestOutput(false)
	cmd := NewSendCmd(testClientFn(srv.URL), func() *Output { return out })

	if err := runCommand(cmd, path); err != nil {
		t.Fatalf("send error: %v", err)
	}
	if !bytes.Equal(gotBody, document) {
		t.Errorf("submitted bytes altered: %q", gotBody)
	}
	if got, want := w.String(), "Status: sent Transaction id "+id+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSend_ServerReportedErrorStatusIsNotAFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.xml")
	if err := os.WriteFile(path, []byte("<Invoice/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	id := uuid.NewString()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Запрос прошёл, но доставка отклонена: статус error в теле 2xx-ответа.
		w.Write([]byte(`{"id":"` + id + `","status":"error"}`))
	}))
	defer srv.Close()

	out, w, _ := newTestOutput(false)
	cmd := NewSendCmd(testClientFn(srv.URL), func() *Output { return out })

	if err := runCommand(cmd, path); err != nil {
		t.Fatalf("send must not fail on server-reported error status, got: %v", err)
	}
	if !strings.Contains(w.String(), "Status: error") {
		t.Errorf("error status not reported: %q", w.String())
	}
}

func TestSend_UnreadableFile_NoNetworkCall(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	out, _, _ := newTestOutput(false)
	cmd := NewSendCmd(testClientFn(srv.URL), func() *Output { return out })

	err := runCommand(cmd, filepath.Join(t.TempDir(), "missing.xml"))
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
	if requests != 0 {
		t.Errorf("unreadable file reached the network: %d request(s)", requests)
	}
}

func TestSend_MissingArg(t *testing.T) {
	out, _, _ := newTestOutput(false)
	cmd := NewSendCmd(testClientFn("http://unused/"), func() *Output { return out })

	err := runCommand(cmd)
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestSend_JSONMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.xml")
	if err := os.WriteFile(path, []byte("<Invoice/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	body := `{"id":"` + uuid.NewString() + `","status":"sent"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	out, w, _ := newTestOutput(true)
	cmd := NewSendCmd(testClientFn(srv.URL), func() *Output { return out })

	if err := runCommand(cmd, path); err != nil {
		t.Fatalf("send error: %v", err)
	}
	if w.String() != body {
		t.Errorf("raw output differs from server body: %q", w.String())
	}
}
