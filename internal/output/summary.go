package output

import (
	"log/slog"
	"time"
)

// InputResult records how one input fared.
type InputResult struct {
	Name      string
	Documents int
	Results   int
	Duration  time.Duration
	Error     error
}

// Summary aggregates the results of a run over all inputs.
type Summary struct {
	Inputs         []InputResult
	ExecutedInputs int
	FailedInputs   int
	Documents      int
	Results        int
	TotalDuration  time.Duration
}

func NewSummary(expectedInputs int) *Summary {
	return &Summary{
		Inputs: make([]InputResult, 0, expectedInputs),
	}
}

func (s *Summary) Add(result InputResult) {
	s.Inputs = append(s.Inputs, result)
	s.ExecutedInputs++
	s.Documents += result.Documents
	s.Results += result.Results

	if result.Error != nil {
		s.FailedInputs++
	}
}

func (s *Summary) SetTotalDuration(duration time.Duration) {
	s.TotalDuration = duration
}

func (s *Summary) DocumentsPerSecond() float64 {
	if s.TotalDuration == 0 {
		return 0
	}
	return float64(s.Documents) / s.TotalDuration.Seconds()
}

// LogValue implements slog.LogValuer.
func (s *Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("inputs", s.ExecutedInputs),
		slog.Int("failed", s.FailedInputs),
		slog.Int("documents", s.Documents),
		slog.Int("results", s.Results),
		slog.Duration("duration", s.TotalDuration),
	)
}
