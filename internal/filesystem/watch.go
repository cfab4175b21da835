package filesystem

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/progrium/watcher"
	"github.com/spf13/afero"
)

type WatchEvent = watcher.Event

type WatchHandler interface {
	Handle(ctx context.Context, event WatchEvent) error
}

type WatchHandlerFunc func(ctx context.Context, event WatchEvent) error

func (f WatchHandlerFunc) Handle(ctx context.Context, event WatchEvent) error {
	return f(ctx, event)
}

type WatchOptions struct {
	Ops       []watcher.Op
	Filter    *regexp.Regexp
	Interval  time.Duration
	Recursive bool
}

type WatchOptionFunc func(opts *WatchOptions)

func NewWatchOptions(funcs ...WatchOptionFunc) *WatchOptions {
	opts := &WatchOptions{
		Ops: []watcher.Op{
			watcher.Create,
			watcher.Write,
			watcher.Rename,
			watcher.Move,
		},
		Interval:  time.Second,
		Recursive: true,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithInterval(interval time.Duration) WatchOptionFunc {
	return func(opts *WatchOptions) {
		opts.Interval = interval
	}
}

// WithFilter restricts handled events to files whose slash separated path,
// relative to the watched filesystem root, matches the given expression.
func WithFilter(filter *regexp.Regexp) WatchOptionFunc {
	return func(opts *WatchOptions) {
		opts.Filter = filter
	}
}

func WithOps(ops ...watcher.Op) WatchOptionFunc {
	return func(opts *WatchOptions) {
		opts.Ops = ops
	}
}

func WithRecursive(recursive bool) WatchOptionFunc {
	return func(opts *WatchOptions) {
		opts.Recursive = recursive
	}
}

// Watch polls the root of the given filesystem and dispatches matching file
// events to the handler until the context is canceled. Files already present
// when the watcher starts are reported as creations.
func Watch(ctx context.Context, afs afero.Fs, handler WatchHandler, funcs ...WatchOptionFunc) error {
	opts := NewWatchOptions(funcs...)

	w := watcher.New()
	w.SetFileSystem(afs)

	go func() {
		defer func() {
			// The polling loop may still be blocked on a send
			go func() {
				for range w.Event {
				}
			}()
			go func() {
				for range w.Error {
				}
			}()
			w.Close()
		}()

		for {
			select {
			case event := <-w.Event:
				if event.IsDir() {
					continue
				}

				if !slices.Contains(opts.Ops, event.Op) {
					slog.DebugContext(ctx, "ignoring event", slog.String("op", event.Op.String()), slog.String("path", event.Path))
					continue
				}

				if !matches(opts.Filter, event.Path) {
					continue
				}

				slog.DebugContext(ctx, "new event", slog.String("op", event.Op.String()), slog.String("path", event.Path))

				if err := handler.Handle(ctx, event); err != nil {
					slog.ErrorContext(
						ctx, "error while handling event",
						slog.String("path", event.Path),
						slogx.Error(errors.WithStack(err)),
					)
				}

			case err := <-w.Error:
				slog.ErrorContext(
					ctx, "error while watching files",
					slogx.Error(errors.WithStack(err)),
				)

			case <-ctx.Done():
				return
			}
		}
	}()

	if opts.Recursive {
		if err := w.AddRecursive("."); err != nil {
			return errors.Wrap(err, "could not add watched directory")
		}
	} else {
		if err := w.Add("."); err != nil {
			return errors.Wrap(err, "could not add watched directory")
		}
	}

	if slices.Contains(opts.Ops, watcher.Create) {
		go notifyExistingFiles(ctx, afs, w, opts)
	}

	slog.InfoContext(ctx, "starting watcher", slog.Duration("interval", opts.Interval))
	defer slog.InfoContext(ctx, "watcher stopped")

	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := w.Start(opts.Interval); err != nil {
		return errors.Wrap(err, "could not watch files")
	}

	return nil
}

func notifyExistingFiles(ctx context.Context, afs afero.Fs, w *watcher.Watcher, opts *WatchOptions) {
	w.Wait()

	err := afero.Walk(afs, ".", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		if info.IsDir() {
			if !opts.Recursive && path != "." {
				return filepath.SkipDir
			}

			return nil
		}

		if !matches(opts.Filter, path) {
			return nil
		}

		slog.DebugContext(ctx, "notifying pre-existing file", slog.String("path", path))

		select {
		case w.Event <- watcher.Event{Op: watcher.Create, Path: path, FileInfo: info}:
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.ErrorContext(ctx, "could not notify pre-existing files", slogx.Error(errors.WithStack(err)))
	}
}

func matches(filter *regexp.Regexp, path string) bool {
	if filter == nil {
		return true
	}

	return filter.MatchString(filepath.ToSlash(filepath.Clean(path)))
}
