package payments

import (
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

type titleLookup interface {
	Title(lang, code string) (string, bool)
}

// Service exposes the enabled payment methods for the provider settings
// endpoint.
type Service interface {
	ListMethods(lang string) map[string]string
}

// ServiceParams groups dependencies for the payments service.
type ServiceParams struct {
	Registry *Registry
	Titles   titleLookup
}

type service struct {
	registry *Registry
	titles   titleLookup
}

// NewService constructs the payments service.
func NewService(params ServiceParams) (*service, error) {
	if params.Registry == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "payment registry required")
	}
	if params.Titles == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "title lookup required")
	}
	return &service{registry: params.Registry, titles: params.Titles}, nil
}

// ListMethods maps each enabled method code to its localized title.
// Codes without a translation keep the raw code as their title.
func (s *service) ListMethods(lang string) map[string]string {
	out := make(map[string]string, len(s.registry.List()))
	for _, ext := range s.registry.List() {
		title, ok := s.titles.Title(lang, ext.Code)
		if !ok {
			title = ext.Code
		}
		out[ext.Code] = title
	}
	return out
}
