package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/hamed0406/webcheck/internal/domain"
)

func TestSlack_OK(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = payload["text"]
		w.WriteHeader(200)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	err := s.Send(context.Background(), "Title", "Hello")
	if err != nil {
		t.Fatalf("send err: %v", err)
	}
	if got == "" || got[0] != '*' { // starts with "*Title*"
		t.Fatalf("payload not as expected: %q", got)
	}
}

func TestSlack_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	err := s.Send(context.Background(), "X", "Y")
	if err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestNewSlack_EmptyWebhookDisabled(t *testing.T) {
	if s := NewSlack(""); s != nil {
		t.Fatalf("want nil for empty webhook, got %+v", s)
	}
}

type failingNotifier struct{ msg string }

func (f failingNotifier) Send(ctx context.Context, title, text string) error {
	return errors.New(f.msg)
}

func TestMulti_CollectsAllErrors(t *testing.T) {
	m := Multi{failingNotifier{"one"}, nil, failingNotifier{"two"}}
	err := m.Send(context.Background(), "T", "X")
	if err == nil {
		t.Fatalf("want errors from both notifiers")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Fatalf("want 2 collected errors, got %d: %v", n, err)
	}
}

func TestRunSummary(t *testing.T) {
	results := []domain.CheckResult{
		domain.Succeeded("https://up.test", 200, time.Millisecond),
		domain.Failed("https://down.test", "connection refused", time.Second),
		domain.Failed("https://gone.test", "no such host", time.Second),
	}
	title, text := RunSummary(results)
	if !strings.Contains(title, "2 of 3") {
		t.Fatalf("title should count failures: %q", title)
	}
	if !strings.Contains(text, "https://down.test: connection refused") {
		t.Fatalf("text should list failed targets: %q", text)
	}
	if strings.Contains(text, "https://up.test") {
		t.Fatalf("text should not list healthy targets: %q", text)
	}
}

func TestRunSummary_CapsLongLists(t *testing.T) {
	var results []domain.CheckResult
	for i := 0; i < summaryMaxLines+5; i++ {
		results = append(results, domain.Failed("https://down.test", "refused", 0))
	}
	_, text := RunSummary(results)
	if !strings.Contains(text, "and 5 more") {
		t.Fatalf("long lists should be capped: %q", text)
	}
}
