package transfer

import (
	"errors"
	"fmt"
)

// ErrDurationRequired is returned when a bucket transfer has no retention.
var ErrDurationRequired = errors.New("transfer: bucket transfers need a storage duration")

// Settings is the transfer configuration attached to an export.
type Settings struct {
	Type     TransferType    `json:"type" yaml:"type" mapstructure:"type"`
	Duration StorageDuration `json:"storageDuration,omitempty" yaml:"storage_duration,omitempty" mapstructure:"storage_duration"`
}

// DefaultSettings packs data into events, which needs no retention.
func DefaultSettings() Settings {
	return Settings{Type: Contained}
}

// Validate checks the combination. Contained transfers ignore Duration.
func (s Settings) Validate() error {
	if !s.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTransferType, string(s.Type))
	}
	if s.Type == Contained {
		return nil
	}
	if s.Duration == "" {
		return ErrDurationRequired
	}
	if !s.Duration.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStorageDuration, string(s.Duration))
	}
	return nil
}

// Retention returns the effective storage duration: Indefinite for
// contained transfers since nothing is stored.
func (s Settings) Retention() StorageDuration {
	if s.Type == Contained {
		return Indefinite
	}
	return s.Duration
}
