// Package types provides type definitions for structured data used throughout the jd-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// WeightTotal is the sum every effective weight configuration is rescaled to.
const WeightTotal = 100.0

// WeightConfiguration holds the relative importance of each subscore.
// The values need not sum to 100; call Normalize before using them.
type WeightConfiguration struct {
	Experience  float64 `json:"experience"`
	Skill       float64 `json:"skill"`
	Education   float64 `json:"education"`
	Language    float64 `json:"language"`
	Certificate float64 `json:"certificate"`
}

// PartialWeights carries caller overrides. Nil fields keep the default weight.
type PartialWeights struct {
	Experience  *float64 `json:"experience,omitempty" mapstructure:"experience" validate:"omitempty,gte=0"`
	Skill       *float64 `json:"skill,omitempty" mapstructure:"skill" validate:"omitempty,gte=0"`
	Education   *float64 `json:"education,omitempty" mapstructure:"education" validate:"omitempty,gte=0"`
	Language    *float64 `json:"language,omitempty" mapstructure:"language" validate:"omitempty,gte=0"`
	Certificate *float64 `json:"certificate,omitempty" mapstructure:"certificate" validate:"omitempty,gte=0"`
}

// Validate rejects negative overrides.
func (p *PartialWeights) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// IsEmpty reports whether no override is set.
func (p *PartialWeights) IsEmpty() bool {
	return p == nil || (p.Experience == nil && p.Skill == nil && p.Education == nil &&
		p.Language == nil && p.Certificate == nil)
}

// DefaultWeights returns the stock weighting: experience 30, skill 30,
// education 15, language 15, certificate 10.
func DefaultWeights() WeightConfiguration {
	return WeightConfiguration{
		Experience:  30,
		Skill:       30,
		Education:   15,
		Language:    15,
		Certificate: 10,
	}
}

// EqualWeights is the fallback used when every weight is zero.
func EqualWeights() WeightConfiguration {
	share := WeightTotal / 5
	return WeightConfiguration{
		Experience:  share,
		Skill:       share,
		Education:   share,
		Language:    share,
		Certificate: share,
	}
}

// Merge overlays the non-nil fields of p on w.
func (w WeightConfiguration) Merge(p *PartialWeights) WeightConfiguration {
	if p == nil {
		return w
	}
	if p.Experience != nil {
		w.Experience = *p.Experience
	}
	if p.Skill != nil {
		w.Skill = *p.Skill
	}
	if p.Education != nil {
		w.Education = *p.Education
	}
	if p.Language != nil {
		w.Language = *p.Language
	}
	if p.Certificate != nil {
		w.Certificate = *p.Certificate
	}
	return w
}

// Sum returns the total of the five weights.
func (w WeightConfiguration) Sum() float64 {
	return w.Experience + w.Skill + w.Education + w.Language + w.Certificate
}

// Normalize rescales the weights proportionally so they sum to 100.
// Negative, NaN and infinite weights count as 0. When nothing is left the
// result is EqualWeights.
func (w WeightConfiguration) Normalize() WeightConfiguration {
	clean := WeightConfiguration{
		Experience:  sanitizeWeight(w.Experience),
		Skill:       sanitizeWeight(w.Skill),
		Education:   sanitizeWeight(w.Education),
		Language:    sanitizeWeight(w.Language),
		Certificate: sanitizeWeight(w.Certificate),
	}

	sum := clean.Sum()
	if sum <= 0 || math.IsInf(sum, 0) {
		return EqualWeights()
	}

	scale := WeightTotal / sum
	return WeightConfiguration{
		Experience:  clean.Experience * scale,
		Skill:       clean.Skill * scale,
		Education:   clean.Education * scale,
		Language:    clean.Language * scale,
		Certificate: clean.Certificate * scale,
	}
}

func sanitizeWeight(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Float64 returns a pointer to v, for building PartialWeights literals.
func Float64(v float64) *float64 {
	return &v
}
