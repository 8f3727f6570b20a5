package analyzer

import (
	"context"

	"github.com/google/uuid"
	"github.com/msto63/argspect/internal/argument"
	"github.com/msto63/argspect/pkg/core/logging"
)

// Result represents the complete analysis of one argument list
type Result struct {
	Arguments  []string
	Parsed     *argument.ParseResult
	Statistics Statistics
	Validation Validation
	Patterns   Patterns
	DataTypes  DataTypes
}

// Service is the argument analysis service
type Service struct {
	logger *logging.Logger
}

// Config holds service configuration
type Config struct {
	Logger *logging.Logger
}

// NewService creates a new analysis service
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("analyzer")
	}

	return &Service{logger: logger}, nil
}

// Analyze runs the classify-then-analyze pipeline over args. An empty list
// yields a zeroed result, not an error. The raw order of args is preserved
// in the result for display; aggregate counts ignore it.
func (s *Service) Analyze(ctx context.Context, args []string) (*Result, error) {
	runID := uuid.New().String()[:8]
	s.logger.Info("Analyzing arguments", "run", runID, "count", len(args))

	arguments := append([]string(nil), args...)

	result := &Result{
		Arguments:  arguments,
		Parsed:     argument.Parse(arguments),
		Statistics: computeStatistics(arguments),
		Validation: validatePatterns(arguments),
		Patterns:   findPatterns(arguments),
		DataTypes:  detectTypes(arguments),
	}

	s.logger.Debug("Analysis complete",
		"run", runID,
		"flags", result.Statistics.FlagCount,
		"options", result.Statistics.OptionCount,
		"positional", result.Statistics.PositionalCount)

	return result, nil
}
