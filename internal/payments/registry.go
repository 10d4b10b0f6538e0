package payments

// Extension is one enabled payment integration exposed to the provider.
type Extension struct {
	Code string
}

// Registry keeps the enabled payment extensions in install order.
// Duplicate codes are ignored so repeated config entries cannot double
// up methods in the provider response.
type Registry struct {
	extensions []Extension
	seen       map[string]struct{}
}

// NewRegistry builds a registry from the configured method codes.
func NewRegistry(codes []string) *Registry {
	r := &Registry{seen: map[string]struct{}{}}
	for _, code := range codes {
		r.Register(Extension{Code: code})
	}
	return r
}

// Register appends an extension unless its code is already present.
func (r *Registry) Register(ext Extension) {
	if ext.Code == "" {
		return
	}
	if _, ok := r.seen[ext.Code]; ok {
		return
	}
	r.seen[ext.Code] = struct{}{}
	r.extensions = append(r.extensions, ext)
}

// List returns the registered extensions in registration order.
func (r *Registry) List() []Extension {
	out := make([]Extension, len(r.extensions))
	copy(out, r.extensions)
	return out
}
