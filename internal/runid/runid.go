// Package runid names batch runs with time-sortable identifiers.
package runid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded run ID
const Length = 26

// Generate returns a new run ID: a UUIDv7 encoded as 26 base32 characters.
func Generate() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate run ID: %w", err)
	}
	return encode(id), nil
}

// GenerateFrom builds a run ID whose random bits come from r.
func GenerateFrom(r io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to generate run ID: %w", err)
	}
	return encode(id), nil
}

// encode writes the 128 bits as 26 five-bit groups, with two zero bits
// of padding at the end.
func encode(data uuid.UUID) string {
	var b strings.Builder
	b.Grow(Length)

	for i := range Length {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if bitIndex <= 3 {
			value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
		} else {
			value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
			if byteIndex+1 < len(data) {
				value |= data[byteIndex+1] >> (11 - bitIndex)
			}
		}
		b.WriteByte(alphabet[value])
	}

	return b.String()
}

// Validate checks that id is 26 characters of the lower-case alphabet.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
