// ABOUTME: Page loader resolves both listings of the home page concurrently
// ABOUTME: A mounted page accepts results until it is unmounted; late results are discarded

package page

import (
	"context"
	"sync"

	"opportunities-portal-api/core/content"
	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/interfaces"

	"golang.org/x/sync/errgroup"
)

// Resolver settles one listing
type Resolver[T any] interface {
	Resolve(ctx context.Context) domain.Envelope[T]
}

// View is what the home page renders
type View struct {
	News      domain.Envelope[domain.NewsItem] `json:"news"`
	OpenCalls domain.Envelope[domain.OpenCall] `json:"openCalls"`
}

// Loader loads home page views. A nil resolver yields an empty listing.
type Loader struct {
	news      Resolver[domain.NewsItem]
	openCalls Resolver[domain.OpenCall]
	logger    interfaces.Logger
}

// NewLoader creates a page loader
func NewLoader(news Resolver[domain.NewsItem], openCalls Resolver[domain.OpenCall], deps interfaces.Dependencies) *Loader {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Loader{news: news, openCalls: openCalls, logger: logger}
}

// Load resolves both listings and returns the settled view
func (l *Loader) Load(ctx context.Context) View {
	p := l.Mount(ctx)
	defer p.Unmount()
	<-p.done
	return p.View()
}

// News resolves the news listing alone
func (l *Loader) News(ctx context.Context) domain.Envelope[domain.NewsItem] {
	if l.news == nil {
		return domain.EmptyEnvelope[domain.NewsItem](false)
	}
	return l.news.Resolve(ctx)
}

// OpenCalls resolves the open calls listing alone, projected
func (l *Loader) OpenCalls(ctx context.Context) domain.Envelope[domain.OpenCall] {
	if l.openCalls == nil {
		return domain.EmptyEnvelope[domain.OpenCall](false)
	}
	return content.ProjectEnvelope(l.openCalls.Resolve(ctx))
}

// Mount starts resolving both listings for one page lifecycle and returns immediately.
// The listings resolve independently; neither cancels the other.
func (l *Loader) Mount(ctx context.Context) *Page {
	ctx, cancel := context.WithCancel(ctx)
	p := &Page{
		cancel:  cancel,
		mounted: true,
		done:    make(chan struct{}),
		view: View{
			News:      domain.PendingEnvelope[domain.NewsItem](),
			OpenCalls: domain.PendingEnvelope[domain.OpenCall](),
		},
	}

	var g errgroup.Group
	g.Go(func() error {
		env := l.News(ctx)
		p.apply(func(v *View) { v.News = env })
		return nil
	})
	g.Go(func() error {
		env := l.OpenCalls(ctx)
		p.apply(func(v *View) { v.OpenCalls = env })
		return nil
	})

	go func() {
		_ = g.Wait()
		if !p.isMounted() {
			l.logger.Debug("Page unmounted before resolution finished; late results discarded", nil)
		}
		close(p.done)
	}()

	return p
}

// Page is one mounted page lifecycle
type Page struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.RWMutex
	mounted bool
	view    View
}

// View returns the current view; listings not yet settled are pending
func (p *Page) View() View {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

// Done is closed once both resolutions have returned
func (p *Page) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until both listings settled or ctx is done
func (p *Page) Wait(ctx context.Context) (View, error) {
	select {
	case <-p.done:
		return p.View(), nil
	case <-ctx.Done():
		return p.View(), ctx.Err()
	}
}

// Unmount cancels in-flight resolution; results arriving afterwards are dropped
func (p *Page) Unmount() {
	p.mu.Lock()
	p.mounted = false
	p.mu.Unlock()
	p.cancel()
}

func (p *Page) isMounted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mounted
}

func (p *Page) apply(fn func(v *View)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.mounted {
		return
	}
	fn(&p.view)
}
