package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	StoreType   string  `json:"store_type"`
	Records     int     `json:"records"`
	Diaries     int     `json:"diaries"`
	WindowDays  int     `json:"window_days"`
	CVThreshold float64 `json:"cv_threshold"`
	UnderRatio  float64 `json:"under_ratio"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	storeType := "store"
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	return ServiceState{
		StoreType:   storeType,
		Records:     s.store.Len(),
		Diaries:     len(s.store.Diaries()),
		WindowDays:  s.params.WindowDays,
		CVThreshold: s.params.CVThreshold,
		UnderRatio:  s.params.UnderRatio,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
