package view

// Labels are the user-facing captions of the per-row affordances.
type Labels struct {
	// Complete is shown on the toggle of an open note.
	Complete string
	// Reopen is shown on the toggle of a completed note.
	Reopen string
	// Delete is shown on the delete affordance.
	Delete string
}

var (
	// EnglishLabels is the default label set.
	EnglishLabels = Labels{Complete: "Complete", Reopen: "Reopen", Delete: "Delete"}
	// SpanishLabels is the Spanish label set.
	SpanishLabels = Labels{Complete: "Completa", Reopen: "Incompleta", Delete: "Eliminar"}
)

// LabelsFor returns the label set for a language code; unknown codes fall
// back to English.
func LabelsFor(lang string) Labels {
	switch lang {
	case "es":
		return SpanishLabels
	default:
		return EnglishLabels
	}
}
