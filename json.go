// seehuhn.de/go/pdfrender - render configuration for external PDF rasterizers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfrender

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"

	"seehuhn.de/go/pdf"
)

// An option is serialized as a one-element JSON array whose element is an
// object with a single member, mapping the option's key to its value:
//
//	[{"pageColor": [255, 255, 255, 255]}]
//
// The array wrapper tags the value with its case without requiring a
// separate type field.  The sentinel [None] is serialized as the empty
// array.  Colors are stored as 8-bit alpha-premultiplied RGBA components.

// ErrOpaquePayload is returned when decoding serialized data that contains
// a [Draw] option.  The callback is an in-process value; data serialized in
// another process or session cannot name a valid function, so decoding is
// refused rather than producing a dangling callback.
var ErrOpaquePayload = errors.New("pdfrender: draw callback cannot be reconstructed from serialized data")

var errInvalidContainer = errors.New("pdfrender: invalid option container")

// MarshalOption encodes a single option in the serialization format
// described above.
//
// A [Draw] option is encoded as its key with a null value.  This succeeds,
// so that option sequences containing callbacks can still be logged or
// stored, but the callback itself is lost: decoding the result returns
// [ErrOpaquePayload].
func MarshalOption(o Option) ([]byte, error) {
	key, val := Encode(o)
	if key == "" {
		return []byte("[]"), nil
	}
	return json.Marshal([1]map[Key]any{{key: marshalValue(key, val)}})
}

// UnmarshalOption decodes a single option from the serialization format
// described above.  Values of the wrong type for their key are replaced by
// the key's default, following [Decode].  Serialized data is external
// input, so an unknown key is reported as an error here rather than as a
// panic.
func UnmarshalOption(data []byte) (Option, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidContainer, err)
	}
	switch len(elems) {
	case 0:
		return None, nil
	case 1:
		// one tagged value
	default:
		return nil, fmt.Errorf("%w: %d elements", errInvalidContainer, len(elems))
	}

	var entry map[Key]json.RawMessage
	if err := json.Unmarshal(elems[0], &entry); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidContainer, err)
	}
	if len(entry) != 1 {
		return nil, fmt.Errorf("%w: %d entries", errInvalidContainer, len(entry))
	}
	for key, raw := range entry {
		return unmarshalValue(key, raw)
	}
	panic("unreachable")
}

// MarshalJSON implements [json.Marshaler].  The sequence is encoded as a
// JSON array of serialized options, preserving order.
func (opts Options) MarshalJSON() ([]byte, error) {
	elems := make([]json.RawMessage, len(opts))
	for i, o := range opts {
		data, err := MarshalOption(o)
		if err != nil {
			return nil, err
		}
		elems[i] = data
	}
	return json.Marshal(elems)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (opts *Options) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	if len(elems) == 0 {
		*opts = nil
		return nil
	}
	res := make(Options, len(elems))
	for i, raw := range elems {
		o, err := UnmarshalOption(raw)
		if err != nil {
			return err
		}
		res[i] = o
	}
	*opts = res
	return nil
}

func marshalValue(key Key, val any) any {
	switch key {
	case KeyPageColor:
		return colorComponents(asColor(val, defaultPageColor))
	case KeyBackgroundFill:
		return colorComponents(asColor(val, defaultBackgroundFill))
	case KeyFormFillColor:
		return colorComponents(asColor(val, defaultFormFillColor))
	case KeyFilters:
		return uint32(asFilter(val))
	case KeyInterpolationQuality:
		return int(asQuality(val))
	case KeySkipAnnotations:
		refs, _ := val.([]pdf.Reference)
		if len(refs) == 0 {
			return []uint64(nil)
		}
		nums := make([]uint64, len(refs))
		for i, ref := range refs {
			nums[i] = uint64(ref)
		}
		return nums
	case KeyImageFilters:
		ff := asImageFilters(val)
		if len(ff) == 0 {
			return []string(nil)
		}
		names := make([]string, len(ff))
		for i, f := range ff {
			names[i] = string(f)
		}
		return names
	case KeyDraw:
		return nil
	default:
		return asBool(val)
	}
}

func unmarshalValue(key Key, raw json.RawMessage) (Option, error) {
	switch key {
	case KeyPreserveAspectRatio, KeyIgnoreDisplaySettings, KeyInverted,
		KeySkipPageContent, KeyOverlayAnnotations, KeyIgnorePageClip,
		KeyAllowAntiAliasing, KeyTextNativeRendering, KeyTextClearType,
		KeySignHereOverlay:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Decode(key, nil), nil
		}
		return Decode(key, b), nil

	case KeyPageColor, KeyBackgroundFill, KeyFormFillColor:
		var comp [4]uint8
		if err := json.Unmarshal(raw, &comp); err != nil {
			return Decode(key, nil), nil
		}
		c := color.RGBA{comp[0], comp[1], comp[2], comp[3]}
		return Decode(key, c), nil

	case KeyFilters:
		var f uint32
		if err := json.Unmarshal(raw, &f); err != nil {
			return Decode(key, nil), nil
		}
		return Decode(key, Filter(f)), nil

	case KeyInterpolationQuality:
		var q int
		if err := json.Unmarshal(raw, &q); err != nil {
			return Decode(key, nil), nil
		}
		return Decode(key, InterpolationQuality(q)), nil

	case KeySkipAnnotations:
		var nums []uint64
		if err := json.Unmarshal(raw, &nums); err != nil || len(nums) == 0 {
			return Decode(key, nil), nil
		}
		refs := make([]pdf.Reference, len(nums))
		for i, n := range nums {
			refs[i] = pdf.Reference(n)
		}
		return Decode(key, refs), nil

	case KeyImageFilters:
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil || len(names) == 0 {
			return Decode(key, nil), nil
		}
		return Decode(key, names), nil

	case KeyDraw:
		return nil, ErrOpaquePayload

	default:
		return nil, fmt.Errorf("pdfrender: unknown render option key %q", key)
	}
}

func colorComponents(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
