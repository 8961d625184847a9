// Package filesystem resolves local files, directories, and zip archives
// into ingestion inputs. The Bundestag open-data portal publishes both
// loose XML exports and zip bundles of them, so every resolver path
// understands both.
package filesystem

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/meinbt/meinbt-cli/internal/core/ports/driven"
	"github.com/meinbt/meinbt-cli/internal/logger"
)

var _ driven.InputResolver = (*Resolver)(nil)

// settleDelay is how long a watched file must stay quiet before it is
// picked up, so partially written downloads are not ingested.
const settleDelay = 500 * time.Millisecond

// Resolver expands command-line arguments into inputs.
type Resolver struct{}

// New creates a filesystem resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve maps each argument to its inputs, preserving argument order.
// A directory contributes its XML files and zip archives in name order;
// an archive contributes its XML entries in name order.
func (r *Resolver) Resolve(_ context.Context, args []string) ([]driven.Input, error) {
	var inputs []driven.Input
	for _, arg := range args {
		resolved, err := r.expand(arg)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, resolved...)
	}
	return inputs, nil
}

// expand resolves one path, whatever it points at.
func (r *Resolver) expand(path string) ([]driven.Input, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	if info.IsDir() {
		return r.expandDir(path)
	}
	if isZip(path) {
		return r.expandArchive(path)
	}
	return []driven.Input{&fileInput{path: path}}, nil
}

func (r *Resolver) expandDir(dir string) ([]driven.Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isXML(entry.Name()) || isZip(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var inputs []driven.Input
	for _, name := range names {
		path := filepath.Join(dir, name)
		if isZip(name) {
			archived, err := r.expandArchive(path)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, archived...)
			continue
		}
		inputs = append(inputs, &fileInput{path: path})
	}
	return inputs, nil
}

// expandArchive lists the XML entries of a zip archive without holding
// the archive open; each entry is reopened when its worker claims it.
func (r *Resolver) expandArchive(path string) ([]driven.Input, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer reader.Close()

	var names []string
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if isXML(file.Name) {
			names = append(names, file.Name)
		}
	}
	sort.Strings(names)

	inputs := make([]driven.Input, 0, len(names))
	for _, name := range names {
		inputs = append(inputs, &archiveInput{archive: path, entry: name})
	}
	return inputs, nil
}

// Watch emits inputs for XML files and archives dropped into dir until
// the context is cancelled. Events are debounced per path so a file is
// only picked up once its writer has gone quiet.
func (r *Resolver) Watch(ctx context.Context, dir string) (<-chan driven.Input, <-chan error) {
	inputs := make(chan driven.Input)
	errs := make(chan error, 1)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		errs <- fmt.Errorf("creating watcher: %w", err)
		close(inputs)
		close(errs)
		return inputs, errs
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		errs <- fmt.Errorf("watching %s: %w", dir, err)
		close(inputs)
		close(errs)
		return inputs, errs
	}

	go func() {
		defer close(inputs)
		defer close(errs)
		defer watcher.Close()

		settled := make(chan string)
		pending := make(map[string]*time.Timer)

		for {
			select {
			case <-ctx.Done():
				for _, timer := range pending {
					timer.Stop()
				}
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
					continue
				}
				name := event.Name
				if !isXML(name) && !isZip(name) {
					continue
				}
				if timer, exists := pending[name]; exists {
					timer.Reset(settleDelay)
					continue
				}
				pending[name] = time.AfterFunc(settleDelay, func() {
					select {
					case settled <- name:
					case <-ctx.Done():
					}
				})

			case name := <-settled:
				delete(pending, name)
				resolved, err := r.expand(name)
				if err != nil {
					logger.Warn("watch: %v", err)
					continue
				}
				for _, input := range resolved {
					select {
					case inputs <- input:
					case <-ctx.Done():
						return
					}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return inputs, errs
}

func isXML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xml")
}

func isZip(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}

// fileInput is one XML file on disk.
type fileInput struct {
	path string
}

func (i *fileInput) URI() string {
	return i.path
}

func (i *fileInput) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(i.path)
}

// archiveInput is one XML entry inside a zip archive. The URI joins
// archive and entry with "!" so reports can point at the exact source.
type archiveInput struct {
	archive string
	entry   string
}

func (i *archiveInput) URI() string {
	return i.archive + "!" + i.entry
}

func (i *archiveInput) Open(_ context.Context) (io.ReadCloser, error) {
	reader, err := zip.OpenReader(i.archive)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", i.archive, err)
	}
	for _, file := range reader.File {
		if file.Name != i.entry {
			continue
		}
		entry, err := file.Open()
		if err != nil {
			reader.Close()
			return nil, fmt.Errorf("opening entry %s: %w", i.URI(), err)
		}
		return &archiveEntry{ReadCloser: entry, archive: reader}, nil
	}
	reader.Close()
	return nil, fmt.Errorf("entry %s not found in %s", i.entry, i.archive)
}

// archiveEntry closes the archive together with the entry reader.
type archiveEntry struct {
	io.ReadCloser
	archive *zip.ReadCloser
}

func (e *archiveEntry) Close() error {
	entryErr := e.ReadCloser.Close()
	if err := e.archive.Close(); err != nil {
		return err
	}
	return entryErr
}
