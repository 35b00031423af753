package langpack

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLocale canonicalizes a raw locale string into the lowercase,
// hyphen-separated form used as manifest keys: "de_CH" becomes "de-ch".
//
// Chinese tags additionally need script disambiguation because packs are
// published per script, not per region: "zh-tw" must select the traditional
// pack and "zh-cn" the simplified one. The script is inferred from the tag
// when it is not explicit.
func NormalizeLocale(raw string) string {
	locale := strings.ToLower(strings.TrimSpace(raw))
	if locale == "" {
		return ""
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	if strings.HasPrefix(locale, "zh-") {
		if tag, err := language.Parse(locale); err == nil {
			if script, conf := tag.Script(); conf >= language.High {
				switch script.String() {
				case "Hans":
					return "zh-hans"
				case "Hant":
					return "zh-hant"
				}
			}
		}
	}
	return locale
}
