package query

import "github.com/poiesic/placesearch/core"

// Monitor provides hooks to observe the query lifecycle.
// Implement this interface to track debounce fires, cache behavior and
// provider outcomes during a search session.
type Monitor interface {
	SearchStarted(query string)
	CacheHit(query string, results []core.Place)
	ProviderCalled(query string, biased bool)
	Superseded(query string)
	SearchFailed(query string, err error)
	SearchFinished(query string, results []core.Place)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) SearchStarted(_ string)                  {}
func (n *noopMonitor) CacheHit(_ string, _ []core.Place)       {}
func (n *noopMonitor) ProviderCalled(_ string, _ bool)         {}
func (n *noopMonitor) Superseded(_ string)                     {}
func (n *noopMonitor) SearchFailed(_ string, _ error)          {}
func (n *noopMonitor) SearchFinished(_ string, _ []core.Place) {}
