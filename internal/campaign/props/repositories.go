package props

import (
	"strings"
	"sync"
)

// RepositoryList is an ordered, duplicate-free list of remote asset
// repository URIs. It is safe for concurrent use.
type RepositoryList struct {
	mu     sync.RWMutex
	values []string
	index  map[string]struct{}
}

// NewRepositoryList creates a list holding uris in order, skipping duplicates.
func NewRepositoryList(uris ...string) *RepositoryList {
	l := &RepositoryList{index: map[string]struct{}{}}
	l.AddAll(uris...)
	return l
}

// Add appends uri unless it is blank or already present.
func (l *RepositoryList) Add(uri string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addLocked(uri)
}

func (l *RepositoryList) addLocked(uri string) bool {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return false
	}
	if _, dup := l.index[uri]; dup {
		return false
	}
	l.index[uri] = struct{}{}
	l.values = append(l.values, uri)
	return true
}

// AddAll appends each uri not yet present and returns how many were added.
func (l *RepositoryList) AddAll(uris ...string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	added := 0
	for _, uri := range uris {
		if l.addLocked(uri) {
			added++
		}
	}
	return added
}

// Contains reports whether uri is in the list.
func (l *RepositoryList) Contains(uri string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.index[strings.TrimSpace(uri)]
	return ok
}

// Values returns a copy of the list.
func (l *RepositoryList) Values() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.values...)
}

// Len returns the number of URIs.
func (l *RepositoryList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.values)
}

// Replace swaps the contents for uris, dropping duplicates. A nil slice is
// ignored.
func (l *RepositoryList) Replace(uris []string) bool {
	if uris == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = nil
	l.index = make(map[string]struct{}, len(uris))
	for _, uri := range uris {
		l.addLocked(uri)
	}
	return true
}
