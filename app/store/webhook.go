package store

import "github.com/cappuccinotm/damlink/app/errs"

// Endpoint describes a single webhook integration configured in the DAM
// account: an external service (issue tracker, planning tool) the DAM
// knows how to post structured references to.
type Endpoint struct {
	Name    string
	UUID    string
	Service string
	URL     string
}

// Validate checks that all fields consulted during classification are present.
func (e Endpoint) Validate() error {
	switch {
	case e.Name == "":
		return errs.ErrInvalidEndpoint("name")
	case e.UUID == "":
		return errs.ErrInvalidEndpoint("uuid")
	case e.Service == "":
		return errs.ErrInvalidEndpoint("service")
	case e.URL == "":
		return errs.ErrInvalidEndpoint("url")
	}
	return nil
}

// Registry is a set of webhook endpoints keyed by name. Scan order is the
// order in which entries were added, which matters for classification:
// within a single service category the last scanned endpoint wins.
type Registry struct {
	names     []string
	endpoints map[string]Endpoint
}

// Add registers the endpoint. An endpoint with an already known name
// replaces the previous one, keeping its original position.
func (r *Registry) Add(e Endpoint) {
	if r.endpoints == nil {
		r.endpoints = map[string]Endpoint{}
	}
	if _, known := r.endpoints[e.Name]; !known {
		r.names = append(r.names, e.Name)
	}
	r.endpoints[e.Name] = e
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int { return len(r.names) }

// Scan calls fn for every endpoint in registration order.
func (r *Registry) Scan(fn func(e Endpoint)) {
	for _, name := range r.names {
		fn(r.endpoints[name])
	}
}
