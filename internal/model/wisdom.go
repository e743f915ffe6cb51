package model

// Quote is the daily-wisdom payload. Purely decorative; nothing in the
// tracker core depends on it.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// FallbackQuote is returned whenever the external quote service fails.
func FallbackQuote() Quote {
	return Quote{
		Quote:  "Knowing that you do not know is the best. Not knowing that you do not know is a flaw.",
		Author: "Ancient Proverb",
	}
}
