// Package transfer defines how field payloads travel to the consumer and
// how long bucket-stored payloads are retained.
package transfer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTransferType is returned for strings outside TransferType.
	ErrInvalidTransferType = errors.New("transfer: invalid transfer type")
	// ErrInvalidStorageDuration is returned for strings outside StorageDuration.
	ErrInvalidStorageDuration = errors.New("transfer: invalid storage duration")
)

// TransferType selects where detail data travels.
type TransferType string

const (
	// Contained packs all detail data into the event itself.
	Contained TransferType = "contained"
	// Bucket stores detail data in a bucket; the consumer fetches it from there.
	Bucket TransferType = "bucket"
)

var transferTypes = [...]TransferType{Contained, Bucket}

// TransferTypes returns every transfer type in declaration order.
func TransferTypes() []TransferType {
	return append([]TransferType(nil), transferTypes[:]...)
}

// ParseTransferType returns the transfer type whose value equals raw.
func ParseTransferType(raw string) (TransferType, error) {
	for _, t := range transferTypes {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTransferType, raw)
}

func (t TransferType) String() string { return string(t) }

// Valid reports whether t is a declared transfer type.
func (t TransferType) Valid() bool {
	_, err := ParseTransferType(string(t))
	return err == nil
}

func (t TransferType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransferType, string(t))
	}
	return []byte(t), nil
}

func (t *TransferType) UnmarshalText(text []byte) error {
	parsed, err := ParseTransferType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// StorageDuration is the retention window for bucket-stored payloads.
type StorageDuration string

const (
	Indefinite StorageDuration = "indefinite"
	ThirtyDays StorageDuration = "30Days"
	SixtyDays  StorageDuration = "60Days"
	NinetyDays StorageDuration = "90Days"
)

const day = 24 * time.Hour

var storageDurations = [...]struct {
	value  StorageDuration
	window time.Duration
}{
	{Indefinite, 0},
	{ThirtyDays, 30 * day},
	{SixtyDays, 60 * day},
	{NinetyDays, 90 * day},
}

// StorageDurations returns every storage duration in declaration order.
func StorageDurations() []StorageDuration {
	out := make([]StorageDuration, len(storageDurations))
	for i, d := range storageDurations {
		out[i] = d.value
	}
	return out
}

// ParseStorageDuration returns the storage duration whose value equals raw.
func ParseStorageDuration(raw string) (StorageDuration, error) {
	for _, d := range storageDurations {
		if string(d.value) == raw {
			return d.value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStorageDuration, raw)
}

func (d StorageDuration) String() string { return string(d) }

// Valid reports whether d is a declared storage duration.
func (d StorageDuration) Valid() bool {
	_, err := ParseStorageDuration(string(d))
	return err == nil
}

// Duration returns the retention window; 0 means payloads never expire.
func (d StorageDuration) Duration() time.Duration {
	for _, entry := range storageDurations {
		if entry.value == d {
			return entry.window
		}
	}
	return 0
}

// ExpiresAt returns when a payload stored at storedAt expires. It reports
// false for indefinite retention and invalid values.
func (d StorageDuration) ExpiresAt(storedAt time.Time) (time.Time, bool) {
	window := d.Duration()
	if window == 0 {
		return time.Time{}, false
	}
	return storedAt.Add(window), true
}

func (d StorageDuration) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStorageDuration, string(d))
	}
	return []byte(d), nil
}

func (d *StorageDuration) UnmarshalText(text []byte) error {
	parsed, err := ParseStorageDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
