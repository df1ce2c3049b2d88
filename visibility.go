package cssmixin

import "strings"

// DefaultTransitionDuration is the duration, in seconds, used by
// ToggleDisplayTransition callers that have no preference.
const DefaultTransitionDuration = 0.5

// ToggleDisplay shows or hides an element via opacity, pointer-events and
// visibility.
func ToggleDisplay(visible bool) Style {
	if visible {
		return Join(
			Declare("opacity", "1"),
			Declare("pointer-events", "auto"),
			Declare("visibility", "visible"),
		)
	}
	return Join(
		Declare("opacity", "0"),
		Declare("pointer-events", "none"),
		Declare("visibility", "hidden"),
	)
}

// ToggleDisplayTransition is ToggleDisplay preceded by a transition on
// opacity and visibility. duration is in seconds; easing may be empty.
func ToggleDisplayTransition(visible bool, duration float64, easing string) Style {
	timing := formatNumber(duration) + "s"
	if easing != "" {
		timing += " " + easing
	}
	transition := strings.Join([]string{"opacity " + timing, "visibility " + timing}, ", ")
	return Join(Declare("transition", transition), ToggleDisplay(visible))
}
