/*
Copyright © 2019 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.*/

// Package hash computes cache keys.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash"
	"hash/fnv"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Hash returns a hash key for the specified object. Strings and
// Stringers are hashed by their text, so that identical WKT gives
// identical keys however long it is. Other objects are gob-encoded.
func Hash(object interface{}) string {
	h := fnv.New128a()
	switch o := object.(type) {
	case string:
		io.WriteString(h, o)
	case fmt.Stringer:
		io.WriteString(h, o.String())
	default:
		e := gob.NewEncoder(h)
		if err := e.Encode(object); err != nil {
			// If there is an error (e.g., there are NaN values
			// or unexported fields) use spew instead of gob.
			h.Reset()
			spewObject(h, object)
		}
	}
	return sum(h)
}

func spewObject(w io.Writer, object interface{}) {
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(w, "%#v", object)
}

func sum(h hash.Hash) string {
	bKey := h.Sum([]byte{})
	return fmt.Sprintf("%x", bKey[0:h.Size()])
}
