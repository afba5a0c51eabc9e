package sync

import (
	"net/url"

	"github.com/virtscope/vm-inventory/pkg/state"
)

// Location is the external location reference the synchronizer bridges to.
// It is injected rather than read from ambient globals so multiple views
// cannot corrupt each other and tests can supply a fake. Replace must
// overwrite the current values without pushing a history entry; if it
// notifies observers it may do so synchronously.
type Location interface {
	Values() url.Values
	Replace(url.Values)
}

// Synchronizer is the two-way bridge between the filter store's applied
// side and a location reference. Each direction is gated: outbound fires
// only for user-originated changes, inbound only for external changes on
// the active section. The writing flag suppresses the echo of our own
// outbound write so the two directions cannot feed each other. The flag is
// a plain field, not a lock: the suppression only holds when the Location
// delivers its change notification synchronously, on the calling
// goroutine, from inside Replace.
type Synchronizer struct {
	store   *state.Store
	loc     Location
	writing bool
}

func NewSynchronizer(store *state.Store, loc Location) *Synchronizer {
	return &Synchronizer{store: store, loc: loc}
}

// Flush publishes applied-filter state outbound. It does nothing unless the
// store's most recent change was user-originated. The write replaces the
// location's filter keys, keeps unrelated keys, sets the scope marker, and
// clears the user-originated mark once complete.
func (s *Synchronizer) Flush() {
	if !s.store.UserOriginated() {
		return
	}
	current := s.loc.Values()
	tab := current.Get(TabKey)
	if tab != "" && tab != TabValue {
		// Another section is active; leave its location alone.
		return
	}
	applied := s.store.Applied()
	encoded := Encode(&applied)
	if tab == "" && len(encoded) == 0 {
		// Nothing to announce and no claim on the location yet.
		return
	}

	next := url.Values{}
	for key, vals := range current {
		if !IsFilterKey(key) {
			next[key] = vals
		}
	}
	for key, vals := range encoded {
		next[key] = vals
	}
	next.Set(TabKey, TabValue)

	s.writing = true
	s.loc.Replace(next)
	s.writing = false
	s.store.ClearUserMark()
}

// LocationChanged handles an external location-change notification. Changes
// caused by our own outbound write are ignored, as are changes while
// another section's scope marker is active. Otherwise the location is
// decoded and overwrites the store's applied state directly; this is not a
// user edit, so no outbound write follows.
func (s *Synchronizer) LocationChanged() {
	if s.writing {
		return
	}
	values := s.loc.Values()
	if values.Get(TabKey) != TabValue {
		return
	}
	s.store.SetApplied(*Decode(values))
}
