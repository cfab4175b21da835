package filesystem

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/progrium/watcher"
	"github.com/spf13/afero"
)

func TestWatchPreExistingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()

	files := map[string]string{
		"hello.md":  "# Hello",
		"notes.txt": "ignored",
	}

	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan WatchEvent, 10)

	handler := WatchHandlerFunc(func(ctx context.Context, event WatchEvent) error {
		events <- event
		return nil
	})

	go func() {
		err := Watch(
			ctx, fs, handler,
			WithFilter(regexp.MustCompile(`\.md$`)),
			WithInterval(10*time.Millisecond),
		)
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("%+v", errors.WithStack(err))
		}
	}()

	select {
	case event := <-events:
		if e, g := watcher.Create, event.Op; e != g {
			t.Errorf("event.Op: expected '%v', got '%v'", e, g)
		}

		if e, g := "hello.md", event.Path; e != g {
			t.Errorf("event.Path: expected '%v', got '%v'", e, g)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case event := <-events:
		t.Errorf("unexpected event for '%s'", event.Path)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMatches(t *testing.T) {
	filter := regexp.MustCompile(`^posts/.*\.md$`)

	type testCase struct {
		Path     string
		Expected bool
	}

	testCases := []testCase{
		{Path: "posts/foo.md", Expected: true},
		{Path: "./posts/foo.md", Expected: true},
		{Path: "posts/foo.txt", Expected: false},
		{Path: "foo.md", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Path, func(t *testing.T) {
			if e, g := tc.Expected, matches(filter, tc.Path); e != g {
				t.Errorf("matches(%s): expected '%v', got '%v'", tc.Path, e, g)
			}
		})
	}

	if !matches(nil, "anything") {
		t.Errorf("matches(nil): expected every path to match")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchLogsHandlerErrors(t *testing.T) {
	var logs syncBuffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "broken.md", []byte("# Broken"), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handled := make(chan struct{}, 1)

	handler := WatchHandlerFunc(func(ctx context.Context, event WatchEvent) error {
		defer func() { handled <- struct{}{} }()
		return errors.New("could not import broken post")
	})

	go Watch(ctx, fs, handler, WithInterval(10*time.Millisecond))

	select {
	case <-handled:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(logs.String(), "could not import broken post") {
		if time.Now().After(deadline) {
			t.Fatalf("expected the handler error to be logged, got '%s'", logs.String())
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !strings.Contains(logs.String(), "error while handling event") {
		t.Errorf("expected the event failure message, got '%s'", logs.String())
	}
}
