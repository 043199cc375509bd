// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package types

import (
	"github.com/google/uuid"
)

// Uuid4 is a random (version 4) UUID.
type Uuid4 [16]byte

// Uuid7 is a time-ordered (version 7, RFC 9562) UUID whose first 48 bits are
// a millisecond Unix timestamp prefix.
type Uuid7 [16]byte

// IdentityId is an opaque 128-bit identifier using the same wire
// representation as Uuid4/Uuid7 but without a generation-version contract
// of its own (it is assigned by the catalog, out of scope here).
type IdentityId [16]byte

// NewUuid4 generates a random UUID4.
func NewUuid4() Uuid4 {
	return Uuid4(uuid.New())
}

// NewUuid7 generates a UUID7 honoring the RFC layout: a millisecond Unix
// timestamp prefix followed by random bits.
func NewUuid7() (Uuid7, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Uuid7{}, err
	}
	return Uuid7(id), nil
}

func (u Uuid4) String() string { return uuid.UUID(u).String() }
func (u Uuid7) String() string { return uuid.UUID(u).String() }

// ParseUuid4 parses a canonical string UUID into a Uuid4.
func ParseUuid4(s string) (Uuid4, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Uuid4{}, err
	}
	return Uuid4(id), nil
}

// ParseUuid7 parses a canonical string UUID into a Uuid7.
func ParseUuid7(s string) (Uuid7, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Uuid7{}, err
	}
	return Uuid7(id), nil
}
