package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pidgen/internal/pid"
)

// Sample is the outcome of one synthesis call
type Sample struct {
	Attempts int        // Candidates drawn before one was accepted
	Gender   pid.Gender // Derived gender of the accepted PID
	Ability  uint32     // Ability slot bit (0 or 1)
	Shiny    bool       // Shiny for the requesting trainer
}

// Statistics aggregates samples from a batch run
type Statistics struct {
	Count        int
	SumAttempts  float64
	SumAttempts2 float64   // Sum of squares for variance calculation
	Values       []float64 // Attempts per sample, for median/percentile
	MaxAttempts  int

	Shiny   int
	Genders [4]int // Indexed by pid.Gender; GenderAny stays zero
	Ability [2]int // Indexed by slot bit
}

// Add records one sample
func (s *Statistics) Add(sample Sample) {
	a := float64(sample.Attempts)
	s.Count++
	s.SumAttempts += a
	s.SumAttempts2 += a * a
	s.Values = append(s.Values, a)
	if sample.Attempts > s.MaxAttempts {
		s.MaxAttempts = sample.Attempts
	}

	if sample.Shiny {
		s.Shiny++
	}
	if int(sample.Gender) < len(s.Genders) {
		s.Genders[sample.Gender]++
	}
	s.Ability[sample.Ability&1]++
}

// Mean returns the mean number of attempts per sample
func (s *Statistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.SumAttempts / float64(s.Count)
}

// Variance returns the sample variance of attempts
func (s *Statistics) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumAttempts2 - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation of attempts
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the median attempts
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the attempts at the given percentile (0.0 to 1.0),
// interpolating between neighbouring samples.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// ShinyRate returns the fraction of shiny samples
func (s *Statistics) ShinyRate() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Shiny) / float64(s.Count)
}

// Validate checks that every tally accounts for every sample
func (s *Statistics) Validate() error {
	if s.Count != len(s.Values) {
		return fmt.Errorf("count %d does not match %d recorded values", s.Count, len(s.Values))
	}

	genders := 0
	for _, n := range s.Genders {
		genders += n
	}
	if genders != s.Count {
		return fmt.Errorf("gender tally %d does not match count %d", genders, s.Count)
	}

	if s.Ability[0]+s.Ability[1] != s.Count {
		return fmt.Errorf("ability tally %d does not match count %d", s.Ability[0]+s.Ability[1], s.Count)
	}

	if s.Shiny > s.Count {
		return fmt.Errorf("shiny tally %d exceeds count %d", s.Shiny, s.Count)
	}

	return nil
}
