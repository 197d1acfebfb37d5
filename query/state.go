package query

import "github.com/poiesic/placesearch/core"

// State is an immutable snapshot of the coordinator's observable fields.
// Slices and the Selected pointer are copies; holders may keep snapshots
// arbitrarily long.
type State struct {
	// Text is the raw query text, echoed immediately on input.
	Text string
	// Results is the committed, ordered result list on display.
	Results []core.Place
	// Loading reports an in-flight provider call with nothing yet to show.
	Loading bool
	// Err is the user-facing error message, empty when there is none.
	Err string
	// Selected is the active selection, at most one at a time.
	Selected *core.Place
	// Recents is the recent-selections list shown while Text is empty.
	Recents []core.Place
}

// HasResults reports whether any results are on display.
func (s State) HasResults() bool {
	return len(s.Results) > 0
}

// IsSearchEmpty reports whether the query text is effectively empty.
func (s State) IsSearchEmpty() bool {
	return core.NormalizeQuery(s.Text) == ""
}

// ShouldShowResults reports whether the UI should render the result list.
func (s State) ShouldShowResults() bool {
	return s.HasResults() && !s.IsSearchEmpty()
}

// IsShowingRecentSearches reports whether the recents list is the
// current display mode.
func (s State) IsShowingRecentSearches() bool {
	return s.IsSearchEmpty() && len(s.Recents) > 0
}
