package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Browser opens a URL in the user's default browser.
type Browser interface {
	Open(url string) error
}
