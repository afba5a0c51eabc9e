package state

import (
	"strings"
	"sync"

	"github.com/virtscope/vm-inventory/pkg/types"
)

// Store exclusively owns the applied and draft filter state for one view,
// plus its sort and page position. Mutations of applied state triggered by
// the user set the user-originated mark, which the location synchronizer
// consumes on its next outbound write. Each operation runs under the mutex
// so mutation, page reset and mark are observed as one atomic unit.
type Store struct {
	mu             sync.Mutex
	applied        types.AppliedFilters
	draft          *types.DraftFilters
	page           types.PageState
	sort           types.SortSpec
	userOriginated bool
}

// NewStore creates a store, optionally seeded with an externally supplied
// filter snapshot (e.g. decoded from an incoming location).
func NewStore(initial *types.AppliedFilters) *Store {
	s := &Store{page: types.DefaultPage()}
	if initial != nil {
		s.applied = initial.Clone()
	}
	return s
}

// Applied returns a copy of the applied filter state.
func (s *Store) Applied() types.AppliedFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied.Clone()
}

func (s *Store) Page() types.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *Store) Sort() types.SortSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

func (s *Store) SetSort(spec types.SortSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = spec
}

func (s *Store) SetPage(number int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if number >= 1 {
		s.page.Number = number
	}
}

// SetPageSize changes the rows-per-page selection and moves back to the
// first page.
func (s *Store) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size > 0 {
		s.page.Size = size
		s.page.Reset()
	}
}

// SetSearch updates the free-text search. The search box edits applied
// state directly, without going through the draft.
func (s *Store) SetSearch(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied.Search = value
	s.userOriginated = true
}

// OpenDraft copies the applied state into a fresh draft for the editing
// surface. The draft's has-issues checkbox mirrors the applied flag; the
// no-issues checkbox always starts unchecked since applied state has no
// such constraint.
func (s *Store) OpenDraft() *types.DraftFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &types.DraftFilters{AppliedFilters: s.applied.Clone()}
	return s.draft
}

// Draft returns the draft under edit, or nil when no editing surface is
// open.
func (s *Store) Draft() *types.DraftFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Commit replaces applied state with the draft's applied-shaped projection,
// discards the draft, and resets the page position.
func (s *Store) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return
	}
	s.applied = s.draft.Applied()
	s.draft = nil
	s.page.Reset()
	s.userOriginated = true
}

// Cancel discards the draft. Applied state is untouched.
func (s *Store) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// RemoveEntry removes exactly the one atomic constraint identified by a
// chip's removal key. An unrecognized key is a no-op, tolerating stale chip
// references.
func (s *Store) RemoveEntry(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case key == types.KeyMemorySize:
		s.applied.MemoryRange = nil
	case key == types.KeyDiskSize:
		s.applied.DiskRange = nil
	case key == types.KeyHasIssues:
		s.applied.HasIssues = false
	case strings.HasPrefix(key, types.KeyStatusPrefix):
		s.applied.Statuses = removeValue(s.applied.Statuses, strings.TrimPrefix(key, types.KeyStatusPrefix))
	case strings.HasPrefix(key, types.KeyClusterPrefix):
		s.applied.Clusters = removeValue(s.applied.Clusters, strings.TrimPrefix(key, types.KeyClusterPrefix))
	case strings.HasPrefix(key, types.KeyDatacenterPrefix):
		s.applied.Datacenters = removeValue(s.applied.Datacenters, strings.TrimPrefix(key, types.KeyDatacenterPrefix))
	case strings.HasPrefix(key, types.KeyReadinessPrefix):
		s.applied.MigrationReadiness = removeValue(s.applied.MigrationReadiness, strings.TrimPrefix(key, types.KeyReadinessPrefix))
	default:
		return
	}
	s.page.Reset()
	s.userOriginated = true
}

// ClearAll resets every filter field, including the free-text search, and
// moves back to the first page.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = types.AppliedFilters{}
	s.page.Reset()
	s.userOriginated = true
}

// SetApplied overwrites the applied state from an inbound location change.
// This is not a user edit: the user-originated mark is left untouched so
// the write is not echoed back out.
func (s *Store) SetApplied(f types.AppliedFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = f.Clone()
}

// UserOriginated reports whether the most recent applied-state change came
// from a user action.
func (s *Store) UserOriginated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userOriginated
}

// ClearUserMark resets the user-originated mark after a completed outbound
// write.
func (s *Store) ClearUserMark() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userOriginated = false
}

func removeValue(values []string, value string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			result = append(result, v)
		}
	}
	return result
}
