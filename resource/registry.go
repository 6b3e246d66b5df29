package resource

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicate is returned when a different descriptor is registered
	// under a name that is already taken.
	ErrDuplicate = errors.New("resource: name already registered")

	// ErrUnknownLibrary is returned when a resource names a library that has
	// not been registered in the same registry.
	ErrUnknownLibrary = errors.New("resource: unknown library")
)

// Default is the process-wide registry. Packages that ship front-end assets
// declare into it during initialization.
var Default = NewRegistry()

// Registry tracks libraries and resources by name. Registering an identical
// descriptor twice is a no-op. All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	libraries map[string]*Library
	resources map[string]*Resource
	libOrder  []string
	resOrder  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		libraries: make(map[string]*Library),
		resources: make(map[string]*Resource),
	}
}

// RegisterLibrary adds a library.
func (r *Registry) RegisterLibrary(lib *Library) error {
	if lib == nil || lib.Name == "" {
		return fmt.Errorf("resource: library must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.libraries[lib.Name]; ok {
		if existing.equal(lib) {
			return nil
		}
		return fmt.Errorf("library %q: %w", lib.Name, ErrDuplicate)
	}

	r.libraries[lib.Name] = lib
	r.libOrder = append(r.libOrder, lib.Name)
	return nil
}

// RegisterResource adds a resource. Its library must already be registered.
// The dependency name is stored as given.
func (r *Registry) RegisterResource(res *Resource) error {
	if res == nil || res.Name == "" {
		return fmt.Errorf("resource: resource must have a name")
	}
	if res.Source == "" {
		return fmt.Errorf("resource %q: source file must be set", res.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.libraries[libraryName(res.Library)]; !ok {
		return fmt.Errorf("resource %q in library %q: %w", res.Name, libraryName(res.Library), ErrUnknownLibrary)
	}

	if existing, ok := r.resources[res.Name]; ok {
		if existing.equal(res) {
			return nil
		}
		return fmt.Errorf("resource %q: %w", res.Name, ErrDuplicate)
	}

	r.resources[res.Name] = res
	r.resOrder = append(r.resOrder, res.Name)
	return nil
}

// Library looks up a library by name.
func (r *Registry) Library(name string) (*Library, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lib, ok := r.libraries[name]
	return lib, ok
}

// Resource looks up a resource by name.
func (r *Registry) Resource(name string) (*Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.resources[name]
	return res, ok
}

// Libraries returns all libraries in registration order.
func (r *Registry) Libraries() []*Library {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Library, 0, len(r.libOrder))
	for _, name := range r.libOrder {
		out = append(out, r.libraries[name])
	}
	return out
}

// Resources returns all resources in registration order.
func (r *Registry) Resources() []*Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Resource, 0, len(r.resOrder))
	for _, name := range r.resOrder {
		out = append(out, r.resources[name])
	}
	return out
}

// ResourcesOf returns the resources of one library in registration order.
func (r *Registry) ResourcesOf(library string) []*Resource {
	var out []*Resource
	for _, res := range r.Resources() {
		if libraryName(res.Library) == library {
			out = append(out, res)
		}
	}
	return out
}

// Reset drops every registration. Only tests should need this.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.libraries = make(map[string]*Library)
	r.resources = make(map[string]*Resource)
	r.libOrder = nil
	r.resOrder = nil
}
