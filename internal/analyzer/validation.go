package analyzer

import (
	"regexp"
)

// Validation counts tokens matching common value formats. The patterns are
// not mutually exclusive; every token is tested, flags and options included.
type Validation struct {
	Emails  int
	URLs    int
	Numbers int
}

// All three patterns are anchored: the entire token must match. They are
// fixed at build time, so a compile failure is a programming defect and
// surfaces at startup.
var (
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@([A-Za-z0-9.-]+\.[A-Za-z]{2,})$`)
	urlPattern    = regexp.MustCompile(`^https?://[A-Za-z0-9.-]+\.[A-Za-z]{2,}(/.*)?$`)
	numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

func validatePatterns(args []string) Validation {
	var v Validation

	for _, arg := range args {
		if emailPattern.MatchString(arg) {
			v.Emails++
		}
		if urlPattern.MatchString(arg) {
			v.URLs++
		}
		if numberPattern.MatchString(arg) {
			v.Numbers++
		}
	}

	return v
}
