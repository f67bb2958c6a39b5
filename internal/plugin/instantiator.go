package plugin

import (
	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/pkg/logger"
	"github.com/towelWet/TowelHost/pkg/plugin"
)

// Trial holds the settings passed to the format while instantiating, before
// the device configuration is known.
type Trial struct {
	SampleRate float64
	BlockSize  int
}

// Instantiator creates an instance from a resolved bundle, first through the
// descriptors the format discovers, then through synthesized descriptors.
type Instantiator struct {
	format plugin.Format
	trial  Trial
	log    logger.Logger
}

// NewInstantiator creates an Instantiator for format.
func NewInstantiator(format plugin.Format, trial Trial, log logger.Logger) *Instantiator {
	return &Instantiator{format: format, trial: trial, log: log}
}

// Discover returns the descriptors the format reports for bundle, valid or not.
func (i *Instantiator) Discover(bundle *ResolvedBundle) (descs []plugin.Descriptor, err error) {
	defer func() {
		if r := recover(); r != nil {
			descs, err = nil, PanicError(r, "discovery")
		}
	}()

	return i.format.Discover(bundle.Path)
}

// Instantiate returns the first instance any attempt produces.
//
// When discovery yields no valid descriptor the bundle is tried directly,
// first as a stereo effect and then as an instrument without inputs. The
// returned error carries the last native error message.
//
//nolint:ireturn // the instance type belongs to the format
func (i *Instantiator) Instantiate(bundle *ResolvedBundle) (plugin.Instance, error) {
	formatName := i.format.Name()

	descs, lastErr := i.Discover(bundle)
	if lastErr != nil {
		i.log.Error("discovery failed", "path", bundle.Path, "error", lastErr)
	}

	i.log.Info("discovery finished", "path", bundle.Path, "descriptors", len(descs))

	valid := make([]plugin.Descriptor, 0, len(descs))

	for idx, desc := range descs {
		i.log.Debug("descriptor",
			"index", idx,
			"name", desc.Name,
			"format", desc.FormatName,
			"manufacturer", desc.Manufacturer,
			"version", desc.Version,
			"identifier", desc.IdentifierString(),
		)

		if !desc.Valid(formatName) {
			i.log.Debug("skipping descriptor", "index", idx, "reason", "empty name or foreign format")

			continue
		}

		valid = append(valid, desc)
	}

	for _, desc := range valid {
		inst, err := i.try(desc)
		if err == nil {
			return inst, nil
		}

		lastErr = err
	}

	if len(valid) > 0 {
		return nil, instantiationFailed(lastErr)
	}

	i.log.Info("no valid descriptors, trying bundle directly", "path", bundle.Path)

	for _, desc := range DirectDescriptors(bundle, formatName) {
		inst, err := i.try(desc)
		if err == nil {
			return inst, nil
		}

		lastErr = err
	}

	return nil, errors.WithHint(
		errors.Mark(instantiationFailed(lastErr), ErrDiscoveryEmpty),
		discoveryEmptyHint(bundle.Path),
	)
}

// try instantiates desc, converting panics and nil instances into errors.
//
//nolint:ireturn // the instance type belongs to the format
func (i *Instantiator) try(desc plugin.Descriptor) (inst plugin.Instance, err error) {
	defer func() {
		if r := recover(); r != nil {
			inst, err = nil, PanicError(r, "instantiation")
		}

		if err != nil {
			i.log.Error("instantiation failed", "name", desc.Name, "kind", desc.Kind(), "error", err)
		}
	}()

	i.log.Debug("instantiating", "name", desc.Name, "kind", desc.Kind(),
		"sampleRate", i.trial.SampleRate, "blockSize", i.trial.BlockSize)

	inst, err = i.format.Instantiate(desc, i.trial.SampleRate, i.trial.BlockSize)
	if err == nil && inst == nil {
		err = errors.Newf("format returned no instance for %q", desc.Name)
	}

	if err == nil {
		i.log.Info("plugin instance created", "name", inst.Name(), "kind", desc.Kind())
	}

	return inst, err
}

// DirectDescriptors synthesizes the descriptors tried when discovery finds
// nothing: a stereo effect, then an instrument without inputs.
func DirectDescriptors(bundle *ResolvedBundle, formatName string) []plugin.Descriptor {
	effect := plugin.Descriptor{
		Name:             bundle.Name,
		Manufacturer:     "Unknown",
		Version:          "1.0",
		Category:         "Unknown",
		FormatName:       formatName,
		FileOrIdentifier: bundle.Path,
		Inputs:           2,
		Outputs:          2,
	}

	instrument := effect
	instrument.Inputs = 0
	instrument.IsInstrument = true

	return []plugin.Descriptor{effect, instrument}
}

func instantiationFailed(lastErr error) error {
	if lastErr == nil || lastErr.Error() == "" {
		return errors.Mark(errors.Newf("%s: %s", ErrInstantiationFailed, noErrorMessage), ErrInstantiationFailed)
	}

	return errors.Mark(errors.Wrap(lastErr, ErrInstantiationFailed.Error()), ErrInstantiationFailed)
}
