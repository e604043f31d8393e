// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/gogpu/shtype/types"
)

const (
	slotsPerPage = types.PrecisionCount * MaxSize * MaxSize
	pageCount    = types.BasicTypeCount * types.QualifierCount
)

// page holds every precision and size of one (basic type, qualifier) pair.
type page [slotsPerPage]atomic.Pointer[types.Type]

// Registry interns type descriptors so that each distinct Key maps to
// exactly one *types.Type for the life of the registry.
//
// Storage is a two-level dense table. The first level is indexed by
// (basic type, qualifier) and holds pages created on first use; a page holds
// one slot per (precision, primary size, secondary size). Both levels are
// filled with compare-and-swap, so concurrent first lookups of a key agree on
// a single descriptor and later lookups are a lock-free load.
//
// The zero value is ready to use. A Registry must not be copied.
type Registry struct {
	pages [pageCount]atomic.Pointer[page]
	count atomic.Int32
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry Registry

// Default returns the process-wide registry used by the lookup functions.
func Default() *Registry {
	return &defaultRegistry
}

// Intern returns the canonical descriptor for k in the default registry.
func Intern(k Key) *types.Type {
	return defaultRegistry.Intern(k)
}

// Intern returns the canonical descriptor for k, creating it on first use.
// It panics with an *Error if k fails Validate; no storage is touched for
// an invalid key.
func (r *Registry) Intern(k Key) *types.Type {
	if err := k.validate(); err != nil {
		panic(violation(err, k.fields()...))
	}

	slot := &r.pageAt(k.pageIndex())[k.slotIndex()]
	if t := slot.Load(); t != nil {
		return t
	}

	t := types.New(k.Basic, k.Precision, k.Qualifier, k.PrimarySize, k.SecondarySize, MangledName(k))
	if slot.CompareAndSwap(nil, t) {
		r.count.Add(1)
		return t
	}
	// Another goroutine won the race; use its descriptor.
	return slot.Load()
}

// pageAt returns the page at index i, allocating it if needed.
func (r *Registry) pageAt(i int) *page {
	if p := r.pages[i].Load(); p != nil {
		return p
	}
	p := new(page)
	if r.pages[i].CompareAndSwap(nil, p) {
		Logger().Debug("statictype: allocated registry page",
			zap.Stringer("basic", types.BasicType(i/types.QualifierCount)),
			zap.Stringer("qualifier", types.Qualifier(i%types.QualifierCount)))
		return p
	}
	return r.pages[i].Load()
}

// Lookup returns the descriptor for k if it has already been interned.
// It never creates a descriptor and reports false for invalid keys.
func (r *Registry) Lookup(k Key) (*types.Type, bool) {
	if k.validate() != nil {
		return nil, false
	}
	p := r.pages[k.pageIndex()].Load()
	if p == nil {
		return nil, false
	}
	t := p[k.slotIndex()].Load()
	return t, t != nil
}

// Count returns the number of interned descriptors.
func (r *Registry) Count() int {
	return int(r.count.Load())
}

// Types returns a snapshot of all interned descriptors ordered by
// Key.Packed.
func (r *Registry) Types() []*types.Type {
	out := make([]*types.Type, 0, r.Count())
	for i := range r.pages {
		p := r.pages[i].Load()
		if p == nil {
			continue
		}
		for j := range p {
			if t := p[j].Load(); t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Keys returns the keys of all interned descriptors in the order of Types.
func (r *Registry) Keys() []Key {
	out := make([]Key, 0, r.Count())
	for i := range r.pages {
		p := r.pages[i].Load()
		if p == nil {
			continue
		}
		for j := range p {
			if p[j].Load() != nil {
				out = append(out, keyOf(i, j))
			}
		}
	}
	return out
}

// KeyOf returns the key a descriptor was interned under.
func KeyOf(t *types.Type) Key {
	return Key{
		Basic:         t.BasicType(),
		Precision:     t.Precision(),
		Qualifier:     t.Qualifier(),
		PrimarySize:   t.PrimarySize(),
		SecondarySize: t.SecondarySize(),
	}
}
