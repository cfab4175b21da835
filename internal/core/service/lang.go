package service

import (
	"github.com/abadojack/whatlanggo"
)

// detectLang returns the ISO 639-1 code of the text language or an empty
// string when it cannot be reliably detected.
func detectLang(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}

	return info.Lang.Iso6391()
}
