// Package assets is the process-wide asset cache. Bundles are keyed by their
// request path, decoded once in the background, uploaded to the GPU on the
// first poll from the render thread, and kept until the process exits.
package assets

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
)

// Entry is the memoized result of one request path. All callers asking for
// the same path share it.
type Entry struct {
	Path     string
	resolved string
	done     chan struct{}
	manifest *Manifest
	err      error // decode result, written once before done closes

	mu        sync.Mutex
	uploaded  bool
	bundle    *Bundle
	uploadErr error
}

// Done is closed once the background decode has finished, successfully or not.
func (e *Entry) Done() <-chan struct{} {
	return e.done
}

// Wait blocks until the decode has finished or ctx is cancelled. It reports
// decode errors only; upload errors surface through Cache.Poll.
func (e *Entry) Wait(ctx context.Context) error {
	select {
	case <-e.done:
		return e.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Manifest is the decoded name index, nil until Done is closed or when the
// decode failed.
func (e *Entry) Manifest() *Manifest {
	select {
	case <-e.done:
		return e.manifest
	default:
		return nil
	}
}

type Cache struct {
	root     string
	uploader ModelUploader
	decode   func(path string) (*Manifest, error)

	mu      sync.Mutex
	entries map[string]*Entry
}

func NewCache(root string, uploader ModelUploader) *Cache {
	return &Cache{
		root:     root,
		uploader: uploader,
		decode:   DecodeManifest,
		entries:  make(map[string]*Entry),
	}
}

// Resolve maps a request path such as "/landing/keyboard.glb" onto disk.
func (c *Cache) Resolve(path string) string {
	return filepath.Join(c.root, filepath.FromSlash(path))
}

// Request returns the entry for path, starting the background decode on the
// first call. It never blocks.
func (c *Cache) Request(path string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok {
		return e
	}

	e := &Entry{
		Path:     path,
		resolved: c.Resolve(path),
		done:     make(chan struct{}),
	}
	c.entries[path] = e

	go func() {
		defer close(e.done)
		e.manifest, e.err = c.decode(e.resolved)
		if e.err != nil {
			log.Printf("Asset %s failed to decode: %v", path, e.err)
		}
	}()

	return e
}

// Preload warms the cache so the first mount does not pop in.
func (c *Cache) Preload(path string) {
	c.Request(path)
}

// Poll reports the state of e without blocking. ready is false while the
// decode is in flight. Once it has finished, the first Poll uploads the model;
// every later Poll returns the same bundle or error. Call it from the render
// thread only.
func (c *Cache) Poll(e *Entry) (bundle *Bundle, ready bool, err error) {
	select {
	case <-e.done:
	default:
		return nil, false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.uploaded {
		return e.bundle, true, e.uploadErr
	}
	e.uploaded = true

	if e.err != nil {
		e.uploadErr = e.err
		return nil, true, e.err
	}

	model, err := c.uploader.Upload(e.resolved)
	if err != nil {
		e.uploadErr = err
		log.Printf("Asset %s failed to upload: %v", e.Path, err)
		return nil, true, err
	}
	if int(model.MeshCount) != e.manifest.MeshCount {
		c.uploader.Unload(model)
		e.uploadErr = fmt.Errorf("%s: %w", e.Path, ErrMeshMismatch)
		log.Printf("Asset %s: %d meshes uploaded, manifest has %d", e.Path, model.MeshCount, e.manifest.MeshCount)
		return nil, true, e.uploadErr
	}

	e.bundle = NewBundle(e.Path, model, e.manifest)
	log.Printf("Loaded asset %s (%d meshes, %d materials)", e.Path, e.manifest.MeshCount, len(e.manifest.Materials))
	return e.bundle, true, nil
}

// Unload releases every uploaded model. Only the process shutdown path calls
// it, right before the window closes.
func (c *Cache) Unload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		e.mu.Lock()
		if e.bundle != nil {
			c.uploader.Unload(e.bundle.Model)
			e.bundle = nil
		}
		e.mu.Unlock()
	}
	c.entries = make(map[string]*Entry)
}

var (
	defaultMu    sync.Mutex
	defaultCache *Cache
)

// Init replaces the process-wide cache. Call it before the first Default use
// to pick an asset root and uploader.
func Init(root string, uploader ModelUploader) *Cache {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCache = NewCache(root, uploader)
	return defaultCache
}

// Default returns the process-wide cache, creating one rooted at the working
// directory with the raylib uploader on first use.
func Default() *Cache {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCache == nil {
		defaultCache = NewCache(".", RaylibUploader())
	}
	return defaultCache
}

// Preload warms the process-wide cache.
func Preload(path string) {
	Default().Preload(path)
}
