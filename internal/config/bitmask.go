// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

// Bits are the unsigned integer types usable as flag sets.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of flags of type T. The zero value has no flag enabled.
type BitMask[T Bits] struct {
	bits T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T Bits](flags ...T) BitMask[T] {
	var bits T
	for _, flag := range flags {
		bits |= flag
	}

	return BitMask[T]{bits: bits}
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.bits |= flag
		return
	}

	b.bits &^= flag
}

// Enable enables flag.
func (b *BitMask[T]) Enable(flag T) { b.Set(flag, true) }

// Disable disables flag.
func (b *BitMask[T]) Disable(flag T) { b.Set(flag, false) }

// Enabled reports whether flag is enabled. For combined flags any enabled one suffices.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.bits&flag != 0
}

// Bits returns the enabled flags.
func (b BitMask[T]) Bits() T {
	return b.bits
}
