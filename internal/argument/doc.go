// Package argument classifies raw command-line tokens.
//
// A token starting with the long prefix "--" is a flag, or an option when it
// carries a "=" separated value. A token starting with the short prefix "-"
// is a flag. Everything else is a positional argument. Classification never
// fails; validating token content is an analysis concern, not a parsing one.
package argument
