package registry

import "sync"

// Member is anything the low-memory handler can solicit bytes from
// and ask to release them. Both methods are expected to be
// non-blocking: ok=false means the member could not acquire whatever
// internal lock it needs right now (e.g. a back-end table mid-Convert)
// and the offer should be declined rather than waited for.
type Member interface {
	Solicit(bytesNeeded int) (offer int, ok bool)
	Release(bytesNeeded int) (reclaimed int, ok bool)
}

// Registry is the process-wide list of live tables.
type Registry struct {
	mu      sync.Mutex
	members map[int]Member
	nextID  int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{members: make(map[int]Member)}
}

// Register adds m to the list and returns a handle for later
// Unregister. Called once, at table creation.
func (r *Registry) Register(m Member) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.members[id] = m
	return id
}

// Unregister removes a member, called when its table is destroyed.
func (r *Registry) Unregister(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, id)
}

// Len reports how many members are currently registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Solicit asks every member for an upper bound on recoverable bytes,
// declining (skipping) any member that is currently busy, and returns
// the sum.
func (r *Registry) Solicit(bytesNeeded int) int {
	var total int
	for _, m := range r.snapshot() {
		if offer, ok := m.Solicit(bytesNeeded); ok {
			total += offer
		}
	}
	return total
}

// Release walks the member list, asking each in turn to release bytes
// until bytesNeeded is satisfied or every member has been tried once,
// possibly reclaiming across multiple tables in sequence. Busy
// members are declined, not waited on.
func (r *Registry) Release(bytesNeeded int) int {
	var reclaimed int
	for _, m := range r.snapshot() {
		if reclaimed >= bytesNeeded {
			break
		}
		if got, ok := m.Release(bytesNeeded - reclaimed); ok {
			reclaimed += got
		}
	}
	return reclaimed
}

// snapshot copies the member list under the registry mutex so
// traversal can happen without holding it: the mutex protects the
// list, not each member's own internals.
func (r *Registry) snapshot() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out
}
