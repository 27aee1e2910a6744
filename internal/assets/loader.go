package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Loader decodes a fixed set of image files in the background. It becomes
// ready once every file has decoded, or failed as soon as any one of them
// cannot be read; it never stays pending after the decodes return.
type Loader struct {
	paths []string

	mu     sync.Mutex
	status Status
	images map[string]image.Image
	err    error
	done   chan struct{}
	once   sync.Once
}

func NewLoader(paths []string) *Loader {
	return &Loader{
		paths: append([]string(nil), paths...),
		done:  make(chan struct{}),
	}
}

// Start launches the decodes. Cancelling ctx fails the load. Calling Start
// more than once has no further effect.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.run(ctx)
	})
}

func (l *Loader) run(ctx context.Context) {
	start := time.Now()
	decoded := make([]image.Image, len(l.paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range l.paths {
		g.Go(func() error {
			img, err := DecodeFile(gctx, path)
			if err != nil {
				return err
			}
			decoded[i] = img
			return nil
		})
	}
	err := g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.status = StatusFailed
		l.err = err
		log.Printf("Assets: load failed: %v", err)
	} else {
		l.status = StatusReady
		l.images = make(map[string]image.Image, len(l.paths))
		for i, path := range l.paths {
			l.images[path] = decoded[i]
		}
		log.Printf("Assets: decoded %d images in %s", len(l.paths), time.Since(start).Round(time.Millisecond))
	}
	close(l.done)
}

// Poll reports the current status without blocking.
func (l *Loader) Poll() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Wait blocks until the load settles or ctx is done.
func (l *Loader) Wait(ctx context.Context) (Status, error) {
	select {
	case <-l.done:
		return l.Poll(), l.Err()
	case <-ctx.Done():
		return StatusPending, ctx.Err()
	}
}

func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Images returns the decoded images keyed by path once ready, nil otherwise.
func (l *Loader) Images() map[string]image.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.images
}

// DecodeFile reads and decodes one image, checking ctx before the read.
func DecodeFile(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	log.Printf("Assets: %s (%s %dx%d)", path, format, b.Dx(), b.Dy())
	return img, nil
}
