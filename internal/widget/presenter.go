package widget

// Presenter is everything the widget needs from the screen it is drawn on.
// Implementations are only ever called from the widget's event loop.
type Presenter interface {
	ShowStatus(text string)
	RevealResult()
	HideResult()
	SetSummary(text string)
	SetSnippet(text string)
	// Alert is a blocking notice that leaves the widget state alone.
	Alert(text string)
	// Length reads the current value of the length selection.
	Length() string
}
