package analyzer

import (
	"strings"

	"github.com/msto63/argspect/internal/argument"
)

// TokenInfo is the per-token view of all analysis checks, used for display
type TokenInfo struct {
	Token     string
	Kind      argument.Kind
	Length    int
	IsEmail   bool
	IsURL     bool
	IsNumber  bool
	Extension string   // empty when the token carries no extension
	DataType  DataType // TypeNone when the token is skipped from typing
}

// Describe applies every per-token check to a single token. It runs no
// aggregate pass and needs no service state.
func Describe(token string) TokenInfo {
	info := TokenInfo{
		Token:    token,
		Kind:     argument.Classify(token),
		Length:   len(token),
		IsEmail:  emailPattern.MatchString(token),
		IsURL:    urlPattern.MatchString(token),
		IsNumber: numberPattern.MatchString(token),
		DataType: typeOf(token),
	}

	if strings.Contains(token, ".") && !strings.HasPrefix(token, argument.ShortPrefix) {
		info.Extension = token[strings.LastIndex(token, "."):]
	}

	return info
}
