package config

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
)

// ErrInvalidSampleRate is returned when a sample rate string cannot be parsed.
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// CustomDecoderConfig returns a mapstructure decoder config that accepts
// sample rates written as "48000", "48k" or "44.1kHz".
func CustomDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToSampleRateHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           nil, // Set by caller
	}
}

// stringToSampleRateHookFunc converts strings to float64 sample rates.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToSampleRateHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Float64 {
			return data, nil
		}

		s, _ := data.(string)

		return ParseSampleRate(s)
	}
}

// ParseSampleRate parses a rate in Hz. A "k" or "kHz" suffix multiplies by
// 1000, a "Hz" suffix is ignored. Matching is case-insensitive.
func ParseSampleRate(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	scale := 1.0

	switch {
	case strings.HasSuffix(v, "khz"):
		v, scale = strings.TrimSuffix(v, "khz"), 1000
	case strings.HasSuffix(v, "k"):
		v, scale = strings.TrimSuffix(v, "k"), 1000
	case strings.HasSuffix(v, "hz"):
		v = strings.TrimSuffix(v, "hz")
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Mark(errors.Newf("invalid sample rate %q", s), ErrInvalidSampleRate)
	}

	return rate * scale, nil
}
