package page

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"opportunities-portal-api/core/content"
	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// resolverFunc adapts a function to Resolver
type resolverFunc[T any] func(ctx context.Context) domain.Envelope[T]

func (f resolverFunc[T]) Resolve(ctx context.Context) domain.Envelope[T] {
	return f(ctx)
}

func tier[T any](name string, items []T, err error) interfaces.Source[T] {
	return interfaces.SourceFunc[T]{
		TierName: name,
		Fn: func(ctx context.Context) ([]T, error) {
			return items, err
		},
	}
}

func openCalls(stati ...string) []domain.OpenCall {
	calls := make([]domain.OpenCall, len(stati))
	for i, s := range stati {
		calls[i] = domain.OpenCall{Titolo: string(rune('a' + i)), Stato: s, Link: "https://example.com"}
	}
	return calls
}

func TestLoad_BothBackendsDown(t *testing.T) {
	down := errors.New("unreachable")
	loader := NewLoader(
		content.NewResolver(domain.KindNews, interfaces.Dependencies{},
			tier[domain.NewsItem](domain.SourceRemote, nil, nil),
			tier[domain.NewsItem](domain.SourceSnapshot, nil, down)),
		content.NewResolver(domain.KindOpenCalls, interfaces.Dependencies{},
			tier[domain.OpenCall](domain.SourceRemote, nil, nil),
			tier[domain.OpenCall](domain.SourceSnapshot, nil, down)),
		interfaces.Dependencies{},
	)

	view := loader.Load(context.Background())

	assert.True(t, view.News.IsEmpty())
	assert.NotNil(t, view.News.Data)
	assert.True(t, view.OpenCalls.IsEmpty())
	assert.NotNil(t, view.OpenCalls.Data)
	assert.True(t, view.News.IsValid())
	assert.True(t, view.OpenCalls.IsValid())
}

func TestLoad_ProjectsOpenCalls(t *testing.T) {
	loader := NewLoader(
		nil,
		content.NewResolver(domain.KindOpenCalls, interfaces.Dependencies{},
			tier(domain.SourceRemote, openCalls("Aperto", "Chiuso", "Aperto", "Aperto", "Aperto", "Aperto", "Aperto", "Chiuso", "Aperto", "Chiuso"), nil)),
		interfaces.Dependencies{},
	)

	view := loader.Load(context.Background())

	require.Len(t, view.OpenCalls.Data, content.MaxOpenCalls)
	for _, c := range view.OpenCalls.Data {
		assert.Equal(t, domain.OpenStatus, c.Stato)
	}
	assert.Equal(t, "a", view.OpenCalls.Data[0].Titolo)
	assert.Equal(t, "f", view.OpenCalls.Data[4].Titolo)
	assert.Equal(t, []domain.NewsItem{}, view.News.Data, "a disabled listing is an empty settled envelope")
}

func TestMount_ListingsResolveIndependently(t *testing.T) {
	defer goleak.VerifyNone(t)

	releaseNews := make(chan struct{})
	loader := NewLoader(
		resolverFunc[domain.NewsItem](func(ctx context.Context) domain.Envelope[domain.NewsItem] {
			<-releaseNews
			return domain.ResolvedEnvelope([]domain.NewsItem{{Title: "late"}}, domain.SourceRemote)
		}),
		resolverFunc[domain.OpenCall](func(ctx context.Context) domain.Envelope[domain.OpenCall] {
			return domain.ResolvedEnvelope(openCalls("Aperto"), domain.SourceSnapshot)
		}),
		interfaces.Dependencies{},
	)

	p := loader.Mount(context.Background())

	assert.Eventually(t, func() bool { return p.View().OpenCalls.Exhausted }, time.Second, 5*time.Millisecond)
	assert.False(t, p.View().News.Exhausted, "news is still pending")
	assert.Nil(t, p.View().News.Data)

	close(releaseNews)
	view, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", view.News.Data[0].Title)
	p.Unmount()
}

func TestMount_UnmountDiscardsLateResults(t *testing.T) {
	defer goleak.VerifyNone(t)

	var cancelled atomic.Bool
	release := make(chan struct{})
	loader := NewLoader(
		resolverFunc[domain.NewsItem](func(ctx context.Context) domain.Envelope[domain.NewsItem] {
			<-release
			cancelled.Store(ctx.Err() != nil)
			return domain.ResolvedEnvelope([]domain.NewsItem{{Title: "late"}}, domain.SourceRemote)
		}),
		nil,
		interfaces.Dependencies{},
	)

	p := loader.Mount(context.Background())
	p.Unmount()
	close(release)
	<-p.Done()

	assert.True(t, cancelled.Load(), "unmount cancels the page context")
	view := p.View()
	assert.False(t, view.News.Exhausted)
	assert.Nil(t, view.News.Data)
}

func TestWait_ContextDone(t *testing.T) {
	release := make(chan struct{})
	loader := NewLoader(
		resolverFunc[domain.NewsItem](func(ctx context.Context) domain.Envelope[domain.NewsItem] {
			<-release
			return domain.EmptyEnvelope[domain.NewsItem](false)
		}),
		nil,
		interfaces.Dependencies{},
	)

	p := loader.Mount(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	p.Unmount()
	close(release)
	<-p.Done()
}

func TestNewsAndOpenCalls_Individually(t *testing.T) {
	loader := NewLoader(
		content.NewResolver(domain.KindNews, interfaces.Dependencies{},
			tier(domain.SourceSnapshot, []domain.NewsItem{{Title: "n"}}, nil)),
		content.NewResolver(domain.KindOpenCalls, interfaces.Dependencies{},
			tier(domain.SourceRemote, openCalls("Chiuso", "Aperto"), nil)),
		interfaces.Dependencies{},
	)

	news := loader.News(context.Background())
	assert.Equal(t, domain.SourceSnapshot, news.Source)

	calls := loader.OpenCalls(context.Background())
	require.Len(t, calls.Data, 1)
	assert.Equal(t, "b", calls.Data[0].Titolo)
}
