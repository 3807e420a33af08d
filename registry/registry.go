// Package registry keeps the per-peer compression table holders.
//
// The design assumes one holder instance per (remote peer address, table
// kind) pair; the connection lifecycle owns a Registry per kind and side,
// attaching a holder when a connection is established and detaching it on
// teardown. Holder creation is connection-rate work, so a plain RWMutex-
// guarded map is sufficient; the message hot path holds a *table.Outbound
// directly and never goes through the registry per message.
package registry

import "sync"

// Factory creates the holder for a newly attached peer, typically one of the
// seeded table constructors.
type Factory[H any] func(peer string) H

// Registry maps remote peer addresses to their table holders. H is the holder
// type, e.g. *table.Outbound[string] on the send side or *table.Inbound[string]
// on the receive side.
//
// All methods are safe for concurrent use.
type Registry[H any] struct {
	mu      sync.RWMutex
	factory Factory[H]
	holders map[string]H
}

// New creates a registry that builds holders with the given factory.
func New[H any](factory Factory[H]) *Registry[H] {
	return &Registry[H]{
		factory: factory,
		holders: make(map[string]H),
	}
}

// Attach returns the holder for peer, creating it with the factory if the
// peer is not yet registered. Attach is idempotent: concurrent attaches for
// the same peer converge on a single holder.
func (r *Registry[H]) Attach(peer string) H {
	r.mu.RLock()
	holder, ok := r.holders[peer]
	r.mu.RUnlock()
	if ok {
		return holder
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock; another attach may have won.
	if holder, ok := r.holders[peer]; ok {
		return holder
	}

	holder = r.factory(peer)
	r.holders[peer] = holder

	return holder
}

// Get returns the holder for peer, or false if the peer is not attached.
// Unlike Attach, Get never creates a holder.
func (r *Registry[H]) Get(peer string) (H, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	holder, ok := r.holders[peer]

	return holder, ok
}

// Detach removes the holder for peer, if any. Called on connection teardown;
// goroutines still holding the detached holder may keep using it safely, it
// simply stops receiving advertisements through the registry.
func (r *Registry[H]) Detach(peer string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.holders, peer)
}

// Peers returns a snapshot of the attached peer addresses, in no particular
// order.
func (r *Registry[H]) Peers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	peers := make([]string, 0, len(r.holders))
	for peer := range r.holders {
		peers = append(peers, peer)
	}

	return peers
}

// Len returns the number of attached peers.
func (r *Registry[H]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.holders)
}
