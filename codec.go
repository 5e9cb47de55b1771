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
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/pdf"
)

// Dict is the untyped option dictionary consumed by a [Renderer].  Values
// are of the payload types listed for [Decode]; the dictionary only exists
// while crossing the renderer boundary, all other code uses [Option] values.
type Dict map[Key]any

// Options is an ordered sequence of option values.  The sequence may contain
// multiple values for the same key; the first one is the effective value,
// both for the accessors and for [Options.Dict].
type Options []Option

// Default colors for the color-valued options.
var (
	defaultPageColor      color.Color = colornames.White
	defaultBackgroundFill color.Color = colornames.Black
	defaultFormFillColor  color.Color = colornames.Black
)

// Decode converts one dictionary entry back into an [Option].
//
// Decode never fails for a known key: if value does not have the payload
// type for the key, the option's documented default is substituted.  The
// key vocabulary is closed and versioned together with the renderer, so an
// unknown key indicates a version mismatch between caller and renderer;
// Decode panics in this case.
func Decode(key Key, value any) Option {
	switch key {
	case KeyPreserveAspectRatio:
		return preserveAspectRatio(asBool(value))
	case KeyIgnoreDisplaySettings:
		return ignoreDisplaySettings(asBool(value))
	case KeyPageColor:
		return pageColor{asColor(value, defaultPageColor)}
	case KeyInverted:
		return inverted(asBool(value))
	case KeyFilters:
		return renderFilters(asFilter(value))
	case KeyInterpolationQuality:
		return interpolationQuality(asQuality(value))
	case KeySkipPageContent:
		return skipPageContent(asBool(value))
	case KeyOverlayAnnotations:
		return overlayAnnotations(asBool(value))
	case KeySkipAnnotations:
		refs, _ := value.([]pdf.Reference)
		return skipAnnotations(refs)
	case KeyIgnorePageClip:
		return ignorePageClip(asBool(value))
	case KeyAllowAntiAliasing:
		return allowAntiAliasing(asBool(value))
	case KeyBackgroundFill:
		return backgroundFill{asColor(value, defaultBackgroundFill)}
	case KeyTextNativeRendering:
		return textNativeRendering(asBool(value))
	case KeyTextClearType:
		return textClearType(asBool(value))
	case KeyFormFillColor:
		return formFillColor{asColor(value, defaultFormFillColor)}
	case KeyDraw:
		if fn, ok := value.(DrawFunc); ok && fn != nil {
			return drawCallback(fn)
		}
		return None
	case KeySignHereOverlay:
		return signHereOverlay(asBool(value))
	case KeyImageFilters:
		return imageFilters(asImageFilters(value))
	default:
		panic(fmt.Sprintf("pdfrender: unknown render option key %q", key))
	}
}

// Encode converts one [Option] into a dictionary entry.  The sentinel
// [None] yields the empty key and no value.
func Encode(o Option) (Key, any) {
	switch o := o.(type) {
	case none:
		return "", nil
	case preserveAspectRatio:
		return KeyPreserveAspectRatio, bool(o)
	case ignoreDisplaySettings:
		return KeyIgnoreDisplaySettings, bool(o)
	case pageColor:
		return KeyPageColor, o.c
	case inverted:
		return KeyInverted, bool(o)
	case renderFilters:
		return KeyFilters, Filter(o)
	case interpolationQuality:
		return KeyInterpolationQuality, InterpolationQuality(o)
	case skipPageContent:
		return KeySkipPageContent, bool(o)
	case overlayAnnotations:
		return KeyOverlayAnnotations, bool(o)
	case skipAnnotations:
		return KeySkipAnnotations, []pdf.Reference(o)
	case ignorePageClip:
		return KeyIgnorePageClip, bool(o)
	case allowAntiAliasing:
		return KeyAllowAntiAliasing, bool(o)
	case backgroundFill:
		return KeyBackgroundFill, o.c
	case textNativeRendering:
		return KeyTextNativeRendering, bool(o)
	case textClearType:
		return KeyTextClearType, bool(o)
	case formFillColor:
		return KeyFormFillColor, o.c
	case drawCallback:
		return KeyDraw, DrawFunc(o)
	case signHereOverlay:
		return KeySignHereOverlay, bool(o)
	case imageFilters:
		return KeyImageFilters, []ImageFilter(o)
	default:
		panic(fmt.Sprintf("pdfrender: unknown option type %T", o))
	}
}

// Dict flattens the option sequence into a dictionary for the renderer.
// [None] values are skipped.  For duplicate keys the first value wins, so
// that the dictionary agrees with the accessors about the effective value.
func (opts Options) Dict() Dict {
	d := make(Dict, len(opts))
	for _, o := range opts {
		key, val := Encode(o)
		if key == "" {
			continue
		}
		if _, seen := d[key]; seen {
			continue
		}
		d[key] = val
	}
	return d
}

// OptionsFromDict converts a dictionary back into an option sequence.
// The order of the result follows the map iteration order and is therefore
// unspecified; callers must not rely on round-trip order equality.
func OptionsFromDict(d Dict) Options {
	if len(d) == 0 {
		return nil
	}
	opts := make(Options, 0, len(d))
	for key, val := range d {
		opts = append(opts, Decode(key, val))
	}
	return opts
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asColor(v any, def color.Color) color.Color {
	if c, ok := v.(color.Color); ok && c != nil {
		return c
	}
	return def
}

func asFilter(v any) Filter {
	switch f := v.(type) {
	case Filter:
		return f
	case int:
		return Filter(f)
	case int64:
		return Filter(f)
	case uint32:
		return Filter(f)
	default:
		return 0
	}
}

func asQuality(v any) InterpolationQuality {
	var q InterpolationQuality
	switch x := v.(type) {
	case InterpolationQuality:
		q = x
	case int:
		q = InterpolationQuality(x)
	case int64:
		q = InterpolationQuality(x)
	default:
		return QualityDefault
	}
	if q < QualityDefault || q > QualityHigh {
		return QualityDefault
	}
	return q
}

func asImageFilters(v any) []ImageFilter {
	switch ff := v.(type) {
	case []ImageFilter:
		return ff
	case []string:
		res := make([]ImageFilter, len(ff))
		for i, f := range ff {
			res[i] = ImageFilter(f)
		}
		return res
	default:
		return nil
	}
}
