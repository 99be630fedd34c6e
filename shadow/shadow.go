// Package shadow infers property paths from accessor functions. A Shadow is a
// deep copy of a model whose reachable properties are indexed by address; an
// accessor replayed against the copy returns an address that maps back to a
// dotted path such as "address.city".
package shadow

import (
	"errors"
	"reflect"
	"sort"

	"github.com/tiendc/go-deepcopy"
)

type slot struct {
	addr uintptr
	typ  reflect.Type
}

// Shadow is an independent deep copy of a model together with an index from the
// address of every reachable property to its dotted path. Replaying an accessor
// against Root and passing the returned pointer to Lookup yields the path of the
// property the accessor reads.
type Shadow struct {
	typ   reflect.Type
	root  reflect.Value
	paths map[slot]string
}

// Type returns the model type the shadow was built for.
func (s *Shadow) Type() reflect.Type { return s.typ }

// Root returns the shadow instance as a pointer to the model type.
func (s *Shadow) Root() any { return s.root.Interface() }

// Lookup returns the path registered for the property ptr points to.
// ptr must be a non-nil pointer into the shadow returned by Root.
func (s *Shadow) Lookup(ptr any) (string, bool) {
	if s == nil || ptr == nil {
		return "", false
	}
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return "", false
	}
	p, ok := s.paths[slot{addr: rv.Pointer(), typ: rv.Type().Elem()}]
	return p, ok
}

// Len reports the number of indexed properties, the root included.
func (s *Shadow) Len() int { return len(s.paths) }

// Paths lists the distinct non-root paths in lexical order.
func (s *Shadow) Paths() []string {
	seen := make(map[string]struct{}, len(s.paths))
	out := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

var errCyclic = errors.New("object graph is cyclic or deeper than the maximum depth")

// newShadow clones model into a fresh instance of t and indexes it. A copy error,
// or a model graph that cannot be copied safely, leaves the shadow at the zero
// value of t and is returned for logging.
func newShadow(t reflect.Type, model any, cfg settings) (*Shadow, error) {
	clone := reflect.New(t)
	var copyErr error
	if rv := reflect.ValueOf(model); rv.IsValid() && rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if cyclic(rv, map[slot]bool{}, 0, cfg.maxDepth) {
			copyErr = errCyclic
		} else if err := deepcopy.Copy(clone.Interface(), model); err != nil {
			copyErr = err
			clone = reflect.New(t)
		}
	}

	b := &builder{
		paths:   map[slot]string{},
		visited: map[slot]bool{},
		cfg:     cfg,
	}
	elem := clone.Elem()
	b.register(elem.Addr().Pointer(), t, "")
	b.walk(elem, "", 0)

	return &Shadow{typ: t, root: clone, paths: b.paths}, copyErr
}

type builder struct {
	paths   map[slot]string
	visited map[slot]bool
	cfg     settings
}

func (b *builder) register(addr uintptr, t reflect.Type, path string) {
	k := slot{addr: addr, typ: t}
	if _, ok := b.paths[k]; !ok {
		b.paths[k] = path
	}
}

// walk indexes the properties below v. v must be addressable.
func (b *builder) walk(v reflect.Value, path string, depth int) {
	if depth > b.cfg.maxDepth {
		return
	}
	switch v.Kind() {
	case reflect.Struct:
		b.walkStruct(v, path, depth)
	case reflect.Pointer:
		b.walkPointer(v, path, depth)
	default:
		// slices, arrays, maps, interfaces and scalars are leaves
	}
}

func (b *builder) walkStruct(v reflect.Value, prefix string, depth int) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if sf.Anonymous && !HasExplicitKey(sf) && isStructLike(sf.Type) {
			b.register(fv.Addr().Pointer(), sf.Type, JoinPath(prefix, sf.Name))
			b.walk(fv, prefix, depth+1)
			continue
		}
		key := b.cfg.keyFunc(sf)
		if key == "" || key == "-" {
			continue
		}
		p := JoinPath(prefix, key)
		b.register(fv.Addr().Pointer(), sf.Type, p)
		b.walk(fv, p, depth+1)
	}
}

// walkPointer registers the pointee of v under path. A nil pointer gets a fresh
// pointee so that accessors returning the pointer itself still resolve; the walk
// only continues below it when zero filling is enabled.
func (b *builder) walkPointer(v reflect.Value, path string, depth int) {
	descend := true
	if v.IsNil() {
		if !v.CanSet() {
			return
		}
		v.Set(reflect.New(v.Type().Elem()))
		descend = b.cfg.zeroFill
	}
	elem := v.Elem()
	k := slot{addr: elem.Addr().Pointer(), typ: elem.Type()}
	if b.visited[k] {
		return
	}
	b.visited[k] = true
	b.register(k.addr, k.typ, path)
	if descend {
		b.walk(elem, path, depth+1)
	}
}

func isStructLike(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// cyclic reports whether the graph below v revisits a reference already on the
// current path or nests deeper than limit. The deep copy recurses without bound on
// such graphs.
func cyclic(v reflect.Value, onPath map[slot]bool, depth, limit int) bool {
	if depth > limit {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		k := slot{addr: v.Pointer(), typ: v.Type()}
		if onPath[k] {
			return true
		}
		onPath[k] = true
		defer delete(onPath, k)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return cyclic(v.Elem(), onPath, depth+1, limit)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if cyclic(v.Field(i), onPath, depth+1, limit) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		if scalar(v.Type().Elem().Kind()) {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if cyclic(v.Index(i), onPath, depth+1, limit) {
				return true
			}
		}
	case reflect.Map:
		it := v.MapRange()
		for it.Next() {
			if cyclic(it.Key(), onPath, depth+1, limit) || cyclic(it.Value(), onPath, depth+1, limit) {
				return true
			}
		}
	}
	return false
}

func scalar(k reflect.Kind) bool {
	return k >= reflect.Bool && k <= reflect.Complex128 || k == reflect.String
}
