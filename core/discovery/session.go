// ABOUTME: Per-discovery-session identity tracking for duplicate feed suppression
// ABOUTME: Claim tables guarantee at most one validation winner per normalized URL or feed id

package discovery

import "sync"

// Session tracks which feed identities have already been claimed within
// one discovery call. It is created fresh per call and discarded at the
// end; sessions are never shared across unrelated discovery operations.
//
// Both tables are claim tables, not just seen-sets: the first caller to
// claim a key owns it, and every concurrent or later claim for the same
// key is rejected. This makes "at most one network fetch per normalized
// identity" structural — the losing caller is turned away before it ever
// reaches the network.
type Session struct {
	mu      sync.Mutex
	urls    map[string]struct{}
	feedIDs map[string]struct{}
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		urls:    make(map[string]struct{}),
		feedIDs: make(map[string]struct{}),
	}
}

// ClaimURL claims a normalized URL key. It returns true exactly once per
// key per session; every subsequent claim returns false.
func (s *Session) ClaimURL(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.urls[key]; seen {
		return false
	}
	s.urls[key] = struct{}{}
	return true
}

// ClaimFeedID claims a feed-content identity key, such as an Atom feed
// id. Same semantics as ClaimURL.
func (s *Session) ClaimFeedID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.feedIDs[id]; seen {
		return false
	}
	s.feedIDs[id] = struct{}{}
	return true
}
