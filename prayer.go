package lauds

import "regexp"

var (
	concludingPrayerRe = Marker(`CONCLUDING\s+PRAYER`)
	amenRe             = Marker(`—\s*Amen\.?`)
)

// ConcludingPrayerLocator is the locator for the concluding prayer. The
// prayer ends where an alternative, a devotion or the Mass readings begin.
var ConcludingPrayerLocator = Locator{
	Start: concludingPrayerRe,
	Stops: []*regexp.Regexp{
		Marker(`\bOr:`),
		Marker(`SACRED\s+HEART`),
		Marker(`MASS\s+READINGS`),
		Marker(`FIRST\s+READING`),
	},
}

// ExtractConcludingPrayer extracts the concluding prayer from the full
// flattened text, cut after its "— Amen." response. Line breaks are kept.
func ExtractConcludingPrayer(text string) (string, error) {
	w, err := Locate(NormalizeDashes(text), ConcludingPrayerLocator)
	if err != nil {
		return "", err
	}

	prayer := w.Text
	if loc := amenRe.FindStringIndex(prayer); loc != nil {
		prayer = prayer[:loc[1]]
	}
	prayer = NormalizeLines(prayer)
	if prayer == "" {
		return "", Errorf(ENOTFOUND, "concluding prayer is empty")
	}
	return prayer, nil
}
