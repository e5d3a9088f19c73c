package handlers

import (
	"context"
	"time"

	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/page"
	"opportunities-portal-api/core/querycache"
	"opportunities-portal-api/core/share"
)

// mockPageLoader is a function-field PageLoader
type mockPageLoader struct {
	loadFunc      func(ctx context.Context) page.View
	newsFunc      func(ctx context.Context) domain.Envelope[domain.NewsItem]
	openCallsFunc func(ctx context.Context) domain.Envelope[domain.OpenCall]

	loads int
}

func (m *mockPageLoader) Load(ctx context.Context) page.View {
	m.loads++
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return page.View{News: m.News(ctx), OpenCalls: m.OpenCalls(ctx)}
}

func (m *mockPageLoader) News(ctx context.Context) domain.Envelope[domain.NewsItem] {
	if m.newsFunc != nil {
		return m.newsFunc(ctx)
	}
	return domain.EmptyEnvelope[domain.NewsItem](false)
}

func (m *mockPageLoader) OpenCalls(ctx context.Context) domain.Envelope[domain.OpenCall] {
	if m.openCallsFunc != nil {
		return m.openCallsFunc(ctx)
	}
	return domain.EmptyEnvelope[domain.OpenCall](false)
}

// mockShareService is a function-field ShareService
type mockShareService struct {
	shareFunc        func(ctx context.Context, req share.Request) (*share.Result, error)
	confirmationFunc func(ctx context.Context, controlID string) (domain.Confirmation, error)

	lastRequest share.Request
}

func (m *mockShareService) Share(ctx context.Context, req share.Request) (*share.Result, error) {
	m.lastRequest = req
	if m.shareFunc != nil {
		return m.shareFunc(ctx, req)
	}
	return &share.Result{ControlID: req.ControlID}, nil
}

func (m *mockShareService) Confirmation(ctx context.Context, controlID string) (domain.Confirmation, error) {
	if m.confirmationFunc != nil {
		return m.confirmationFunc(ctx, controlID)
	}
	return domain.Confirmation{}, nil
}

// mockLocator returns a fixed login location
type mockLocator struct {
	location string
}

func (m mockLocator) LoginLocation(ctx context.Context) string {
	return m.location
}

// mockQueryStates returns fixed states
type mockQueryStates []querycache.State

func (m mockQueryStates) States() []querycache.State {
	return m
}

func sampleNews() []domain.NewsItem {
	return []domain.NewsItem{
		{
			Category:    "Fondi Interprofessionali",
			Entity:      "FonARCom",
			Title:       "Nuovo Avviso",
			Link:        "https://example.com/news/1",
			PublishedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func sampleOpenCalls() []domain.OpenCall {
	return []domain.OpenCall{
		{Fondo: "Fondimpresa", Titolo: "Avviso 1/2025", Scadenza: domain.NewDeadline("2025-06-30"), Stato: "Aperto", Link: "https://example.com/b/1"},
	}
}
