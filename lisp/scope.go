package lisp

import (
	"sort"
	"sync"
)

// ScopeID identifies a scope within an Arena.  The zero ScopeID refers to no
// scope.
type ScopeID uint32

// DefaultArena is the process-wide arena used by runtimes that are not
// configured with their own.
var DefaultArena = NewArena()

// Arena holds every scope created by a runtime.  Scopes are never removed
// from an arena, they live as long as the arena does.  All access to scope
// records is serialized by a single mutex.
type Arena struct {
	mu     sync.Mutex
	scopes []scopeRecord
}

type scopeRecord struct {
	parent   ScopeID
	bindings *bindings
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of scopes that have been allocated in a.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.scopes)
}

// NewRoot creates a scope with no parent.
func (a *Arena) NewRoot() Scope {
	return a.newScope(0)
}

func (a *Arena) newScope(parent ScopeID) Scope {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scopes = append(a.scopes, scopeRecord{
		parent:   parent,
		bindings: newBindings(0),
	})
	return Scope{arena: a, id: ScopeID(len(a.scopes))}
}

// record must be called with a.mu held.
func (a *Arena) record(id ScopeID) *scopeRecord {
	return &a.scopes[id-1]
}

// Scope is a handle to a set of bindings in an Arena.  Scopes are cheap to
// copy and every copy refers to the same bindings.
type Scope struct {
	arena *Arena
	id    ScopeID
}

// IsValid returns false for the zero Scope.
func (s Scope) IsValid() bool {
	return s.arena != nil && s.id != 0
}

// ID returns the identifier of s within its arena.
func (s Scope) ID() ScopeID {
	return s.id
}

// Child creates a new scope whose parent is s.
func (s Scope) Child() Scope {
	return s.arena.newScope(s.id)
}

// Parent returns the parent of s.  Parent returns false if s is a root scope.
func (s Scope) Parent() (Scope, bool) {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	parent := s.arena.record(s.id).parent
	if parent == 0 {
		return Scope{}, false
	}
	return Scope{arena: s.arena, id: parent}, true
}

// Root walks parent links from s and returns the scope with no parent.
func (s Scope) Root() Scope {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	id := s.id
	for {
		parent := s.arena.record(id).parent
		if parent == 0 {
			return Scope{arena: s.arena, id: id}
		}
		id = parent
	}
}

// Lookup returns the value bound to name in s or the nearest ancestor of s
// that binds it.
func (s Scope) Lookup(name string) (*LVal, bool) {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	for id := s.id; id != 0; {
		rec := s.arena.record(id)
		v, ok := rec.bindings.Get(name)
		if ok {
			return v, true
		}
		id = rec.parent
	}
	return nil, false
}

// Bind creates or updates the binding for name in s.  Parent scopes are never
// modified.
func (s Scope) Bind(name string, v *LVal) {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	s.arena.record(s.id).bindings.Put(name, v)
}

// Len returns the number of names bound locally in s.
func (s Scope) Len() int {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	return s.arena.record(s.id).bindings.Len()
}

// Names returns the sorted names bound locally in s.
func (s Scope) Names() []string {
	s.arena.mu.Lock()
	names := s.arena.record(s.id).bindings.Names()
	s.arena.mu.Unlock()
	sort.Strings(names)
	return names
}

type bindingPair struct {
	name  string
	value *LVal
}

// bindings is a set of variable bindings that remembers definition order.
type bindings struct {
	pairs []bindingPair
	index map[string]int
}

func newBindings(n int) *bindings {
	return &bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[string]int, n),
	}
}

// Len returns the number of symbols bound.
func (b *bindings) Len() int {
	return len(b.pairs)
}

// Get returns the value bound to name.
func (b *bindings) Get(name string) (*LVal, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.pairs[i].value, true
}

// Put binds name to v.  If name was previously bound its entry will be
// updated.  Otherwise Put creates a new binding.
func (b *bindings) Put(name string, v *LVal) {
	i, ok := b.index[name]
	if ok {
		b.pairs[i].value = v
		return
	}
	b.index[name] = len(b.pairs)
	b.pairs = append(b.pairs, bindingPair{name, v})
}

// Names returns bound names in definition order.
func (b *bindings) Names() []string {
	names := make([]string, len(b.pairs))
	for i := range b.pairs {
		names[i] = b.pairs[i].name
	}
	return names
}
