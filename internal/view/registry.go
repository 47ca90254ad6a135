package view

import (
	"fmt"
)

// Registry resolves a view by name, falling back to the configured default.
type Registry struct {
	views map[string]View
	names []string
	def   View
}

// NewRegistry registers views in order. defaultName must be one of them.
func NewRegistry(defaultName string, views ...View) (*Registry, error) {
	r := &Registry{views: make(map[string]View, len(views))}
	for _, v := range views {
		if _, dup := r.views[v.Name()]; dup {
			return nil, fmt.Errorf("view %q registered twice", v.Name())
		}
		r.views[v.Name()] = v
		r.names = append(r.names, v.Name())
	}

	def, ok := r.views[defaultName]
	if !ok {
		return nil, fmt.Errorf("default view %q is not registered", defaultName)
	}
	r.def = def
	return r, nil
}

// Get returns the view called name, or the default view for an empty or unknown name.
func (r *Registry) Get(name string) View {
	if v, ok := r.views[name]; ok {
		return v
	}
	return r.def
}

// Names lists the registered views in registration order.
func (r *Registry) Names() []string {
	return r.names
}
