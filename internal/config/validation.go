package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/pkg/config"
)

const (
	maxSampleRate = 768000
	maxBlockSize  = 16384
	maxChannels   = 64
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfRange is returned when a numeric value is outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidExtension is returned when the bundle extension is malformed.
	ErrInvalidExtension = errors.New("invalid bundle extension")

	// ErrInvalidPattern is returned when a scan pattern does not parse.
	ErrInvalidPattern = errors.New("invalid scan pattern")
)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
// Returns an error describing all validation failures.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	var validationErrors []error

	validationErrors = append(validationErrors, v.validateSearch(cfg.Search)...)

	if cfg.Trial != nil {
		validationErrors = append(validationErrors,
			v.validateRate("trial.sample_rate", cfg.Trial.SampleRate),
			v.validateBlockSize("trial.block_size", cfg.Trial.BlockSize),
		)
	}

	if cfg.Audio != nil {
		validationErrors = append(validationErrors,
			v.validateRate("audio.sample_rate", cfg.Audio.SampleRate),
			v.validateBlockSize("audio.block_size", cfg.Audio.BlockSize),
			v.validateChannels("audio.inputs", cfg.Audio.Inputs),
			v.validateChannels("audio.outputs", cfg.Audio.Outputs),
		)
	}

	validationErrors = compact(validationErrors)
	if len(validationErrors) > 0 {
		return errors.Mark(
			errors.Wrapf(
				combineErrors(validationErrors),
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			ErrInvalidConfig,
		)
	}

	return nil
}

func (*Validator) validateSearch(cfg *config.SearchConfig) []error {
	if cfg == nil {
		return nil
	}

	var errs []error

	ext := cfg.GetExtension()
	if ext == "." || strings.ContainsAny(ext, `/\*?[]{}`) {
		errs = append(errs, errors.Wrapf(ErrInvalidExtension, "search.extension: %q", cfg.Extension))
	}

	for _, pattern := range cfg.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, errors.Wrapf(ErrInvalidPattern, "search.patterns: %q", pattern))
		}
	}

	return errs
}

// validateRate accepts zero as "use the default".
func (*Validator) validateRate(key string, rate float64) error {
	if rate < 0 || rate > maxSampleRate {
		return errors.Wrapf(ErrOutOfRange, "%s: %g (must be between 0 and %d)", key, rate, maxSampleRate)
	}

	return nil
}

// validateBlockSize accepts zero as "use the default".
func (*Validator) validateBlockSize(key string, size int) error {
	if size < 0 || size > maxBlockSize {
		return errors.Wrapf(ErrOutOfRange, "%s: %d (must be between 0 and %d)", key, size, maxBlockSize)
	}

	return nil
}

func (*Validator) validateChannels(key string, channels *int) error {
	if channels == nil {
		return nil
	}

	if *channels < 0 || *channels > maxChannels {
		return errors.Wrapf(ErrOutOfRange, "%s: %d (must be between 0 and %d)", key, *channels, maxChannels)
	}

	return nil
}

func compact(errs []error) []error {
	out := errs[:0]

	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}

	return out
}

func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
