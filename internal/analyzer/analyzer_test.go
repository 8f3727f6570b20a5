package analyzer

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/argspect/internal/argument"
	"github.com/msto63/argspect/pkg/core/logging"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	logger := logging.NewWithConfig(logging.Config{
		Name:   "analyzer-test",
		Level:  logging.LevelError,
		Output: &bytes.Buffer{},
	})

	svc, err := NewService(Config{Logger: logger})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestAnalyze_FullExample(t *testing.T) {
	svc := newTestService(t)

	args := []string{"user@example.com", "https://github.com", "42", "3.14159", "document.pdf"}
	result, err := svc.Analyze(context.Background(), args)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.Validation.Emails != 1 {
		t.Errorf("Emails = %d, want 1", result.Validation.Emails)
	}
	if result.Validation.URLs != 1 {
		t.Errorf("URLs = %d, want 1", result.Validation.URLs)
	}
	if result.Validation.Numbers != 2 {
		t.Errorf("Numbers = %d, want 2", result.Validation.Numbers)
	}

	// "github.com" contributes a second ".com" and "3.14159" tallies as
	// ".14159": the extension pass takes everything after the last dot of
	// any non-flag token, file name or not.
	wantExt := map[string]int{".com": 2, ".14159": 1, ".pdf": 1}
	if diff := cmp.Diff(wantExt, result.Patterns.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}

	if result.DataTypes.Integers != 1 {
		t.Errorf("Integers = %d, want 1", result.DataTypes.Integers)
	}
	if result.DataTypes.Decimals != 1 {
		t.Errorf("Decimals = %d, want 1", result.DataTypes.Decimals)
	}
	if result.DataTypes.Strings != 3 {
		t.Errorf("Strings = %d, want 3", result.DataTypes.Strings)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.Statistics.Total != 0 {
		t.Errorf("Total = %d, want 0", result.Statistics.Total)
	}
	if len(result.Parsed.Flags) != 0 || len(result.Parsed.Options) != 0 || len(result.Parsed.Positional) != 0 {
		t.Errorf("Parsed = %+v, want empty maps and list", result.Parsed)
	}
	if result.Validation != (Validation{}) {
		t.Errorf("Validation = %+v, want zero", result.Validation)
	}
	if result.DataTypes != (DataTypes{}) {
		t.Errorf("DataTypes = %+v, want zero", result.DataTypes)
	}
}

func TestAnalyze_DuplicateOptions(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Analyze(context.Background(), []string{"--a=1", "--a=2"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	// Parsing keeps the last value, counting sees both tokens.
	wantOpts := map[string]string{"a": "2"}
	if diff := cmp.Diff(wantOpts, result.Parsed.Options); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
	if result.Statistics.OptionCount != 2 {
		t.Errorf("OptionCount = %d, want 2", result.Statistics.OptionCount)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	svc := newTestService(t)
	args := []string{"--verbose", "-n", "--output=file.txt", "data.csv", "42", "user@example.com"}

	first, err := svc.Analyze(context.Background(), args)
	if err != nil {
		t.Fatalf("first Analyze() error = %v", err)
	}
	second, err := svc.Analyze(context.Background(), args)
	if err != nil {
		t.Fatalf("second Analyze() error = %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated analysis differs (-first +second):\n%s", diff)
	}
}

func TestAnalyze_InputNotMutated(t *testing.T) {
	svc := newTestService(t)

	args := []string{"a", "b", "c"}
	result, err := svc.Analyze(context.Background(), args)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	result.Arguments[0] = "changed"
	if args[0] != "a" {
		t.Errorf("caller slice mutated: args[0] = %q", args[0])
	}
}

func TestNewService_DefaultLogger(t *testing.T) {
	svc, err := NewService(Config{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if svc.logger == nil {
		t.Error("logger is nil, want default")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		token string
		want  TokenInfo
	}{
		{
			token: "user@example.com",
			want: TokenInfo{
				Token: "user@example.com", Kind: argument.KindPositional,
				Length: 16, IsEmail: true, Extension: ".com", DataType: TypeString,
			},
		},
		{
			token: "--output=file.txt",
			want: TokenInfo{
				Token: "--output=file.txt", Kind: argument.KindLongOption,
				Length: 17, DataType: TypeNone,
			},
		},
		{
			token: "42",
			want: TokenInfo{
				Token: "42", Kind: argument.KindPositional,
				Length: 2, IsNumber: true, DataType: TypeInteger,
			},
		},
		{
			token: "-v",
			want: TokenInfo{
				Token: "-v", Kind: argument.KindShortFlag,
				Length: 2, DataType: TypeNone,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := Describe(tt.token)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Describe(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}
