package discovery

import (
	"context"
	"strings"
	"testing"

	"feedscout-api/core/errors"
	"feedscout-api/core/interfaces"
)

const showPageURL = "https://podcasts.apple.com/us/podcast/go-time/id1120964487"

func lookupBody(feedURL string) string {
	return `{"resultCount":1,"results":[{"feedUrl":"` + feedURL + `","artworkUrl600":"https://is1.mzstatic.com/image/600x600.jpg"}]}`
}

func TestPodcastCanHandle_ShowPageURL(t *testing.T) {
	s := NewPodcastDirectoryService(testDeps(&mockHTTPClient{}, &mockParser{}))

	if !s.CanHandle(showPageURL) {
		t.Error("CanHandle should accept an Apple Podcasts show page")
	}
	if !s.CanHandle("https://itunes.apple.com/us/podcast/go-time/id1120964487") {
		t.Error("CanHandle should accept the legacy itunes.apple.com host")
	}
}

func TestPodcastCanHandle_RejectsNonDirectoryURLs(t *testing.T) {
	s := NewPodcastDirectoryService(testDeps(&mockHTTPClient{}, &mockParser{}))

	cases := []string{
		"https://example.com/podcast/go-time/id1120964487",
		"https://podcasts.apple.com/us/podcast/go-time",
		"https://podcasts.apple.com/us/story/id1120964487",
		"https://podcasts.apple.com/us/podcast/go-time/idnotanumber",
	}
	for _, u := range cases {
		if s.CanHandle(u) {
			t.Errorf("CanHandle(%q) = true, want false", u)
		}
	}
}

func TestPodcastDiscover_ResolvesFeedThroughLookup(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.HasPrefix(url, "https://itunes.apple.com/lookup?id=1120964487") {
				return &mockResponse{statusCode: 200, finalURL: url, body: lookupBody("https://changelog.com/gotime/feed")}, nil
			}
			return okResponse(url), nil
		},
	}
	deps := testDeps(client, rssParser("Go Time"))
	s := NewPodcastDirectoryService(deps)
	v := NewValidator(NewSession(), deps, ValidatorOptions{})

	feeds, err := s.Discover(context.Background(), showPageURL, v)

	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(feeds) != 1 {
		t.Fatalf("got %d feeds, want 1", len(feeds))
	}
	if feeds[0].URL != "https://changelog.com/gotime/feed" {
		t.Errorf("feed URL = %q, want the resolved feed", feeds[0].URL)
	}
	if feeds[0].IconURL != "https://is1.mzstatic.com/image/600x600.jpg" {
		t.Errorf("IconURL = %q, want lookup artwork", feeds[0].IconURL)
	}
}

func TestPodcastDiscover_CachedLookupSkipsDirectory(t *testing.T) {
	lookupCalls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.HasPrefix(url, "https://itunes.apple.com/lookup") {
				lookupCalls++
				return &mockResponse{statusCode: 200, finalURL: url, body: lookupBody("https://changelog.com/gotime/feed")}, nil
			}
			return okResponse(url), nil
		},
	}
	deps := testDeps(client, rssParser("Go Time"))
	deps.Cache = newMockCache()
	s := NewPodcastDirectoryService(deps)

	for i := 0; i < 2; i++ {
		v := NewValidator(NewSession(), deps, ValidatorOptions{})
		if _, err := s.Discover(context.Background(), showPageURL, v); err != nil {
			t.Fatalf("Discover returned error: %v", err)
		}
	}

	if lookupCalls != 1 {
		t.Errorf("directory lookup ran %d times, want 1 (second hit cached)", lookupCalls)
	}
}

func TestPodcastDiscover_UnknownIDReturnsNotFound(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, finalURL: url, body: `{"resultCount":0,"results":[]}`}, nil
		},
	}
	deps := testDeps(client, &mockParser{})
	s := NewPodcastDirectoryService(deps)
	v := NewValidator(NewSession(), deps, ValidatorOptions{})

	_, err := s.Discover(context.Background(), showPageURL, v)

	if !errors.IsNotFound(err) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}
