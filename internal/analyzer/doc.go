// Package analyzer runs descriptive analysis over a raw argument list.
//
// The service classifies the list once and then applies four independent
// passes: aggregate statistics, format validation (email, URL, number),
// lexical patterns (letter case, file extensions), and scalar data type
// detection. All passes are synchronous single iterations over the list;
// every invocation builds fresh state and returns an immutable result.
package analyzer
