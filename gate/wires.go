// Copyright 2025 quvar Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gate

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Wire identifies a qubit. Labels are opaque: any two distinct strings name
// two distinct wires.
type Wire string

// Wires is an ordered list of wires. The first wire maps to the most
// significant bit of the computational basis index.
type Wires []Wire

// Contains reports whether the list contains the wire.
func (w Wires) Contains(x Wire) bool {
	return lo.Contains(w, x)
}

// Index returns the position of the wire, or -1 when absent.
func (w Wires) Index(x Wire) int {
	return slices.Index(w, x)
}

// Equal reports whether two lists hold the same wires in the same order.
func (w Wires) Equal(o Wires) bool {
	return slices.Equal(w, o)
}

// Set returns the unordered wire set.
func (w Wires) Set() mapset.Set[Wire] {
	return mapset.NewSet(w...)
}

// Unique reports whether no wire repeats.
func (w Wires) Unique() bool {
	return w.Set().Cardinality() == len(w)
}

// Clone returns a copy of the list.
func (w Wires) Clone() Wires {
	return slices.Clone(w)
}
