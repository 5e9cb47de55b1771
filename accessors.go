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
	"image/color"

	"seehuhn.de/go/pdf"
)

// The accessors in this file return the payload of the first matching
// option in the sequence, or the option's documented default if the
// sequence contains no match.  Each accessor is a read-only linear scan.

// PreserveAspectRatio returns the value of the first [PreserveAspectRatio]
// option, or false.
func (opts Options) PreserveAspectRatio() bool {
	for _, o := range opts {
		if v, ok := o.(preserveAspectRatio); ok {
			return bool(v)
		}
	}
	return false
}

// IgnoreDisplaySettings returns the value of the first
// [IgnoreDisplaySettings] option, or false.
func (opts Options) IgnoreDisplaySettings() bool {
	for _, o := range opts {
		if v, ok := o.(ignoreDisplaySettings); ok {
			return bool(v)
		}
	}
	return false
}

// PageColor returns the color of the first [PageColor] option, or white.
func (opts Options) PageColor() color.Color {
	for _, o := range opts {
		if v, ok := o.(pageColor); ok {
			return v.c
		}
	}
	return defaultPageColor
}

// Inverted returns the value of the first [Inverted] option, or false.
func (opts Options) Inverted() bool {
	for _, o := range opts {
		if v, ok := o.(inverted); ok {
			return bool(v)
		}
	}
	return false
}

// Filters returns the bitmask of the first [Filters] option, or zero.
func (opts Options) Filters() Filter {
	for _, o := range opts {
		if v, ok := o.(renderFilters); ok {
			return Filter(v)
		}
	}
	return 0
}

// Quality returns the value of the first [Quality] option, or
// [QualityDefault].
func (opts Options) Quality() InterpolationQuality {
	for _, o := range opts {
		if v, ok := o.(interpolationQuality); ok {
			return InterpolationQuality(v)
		}
	}
	return QualityDefault
}

// SkipPageContent returns the value of the first [SkipPageContent] option,
// or false.
func (opts Options) SkipPageContent() bool {
	for _, o := range opts {
		if v, ok := o.(skipPageContent); ok {
			return bool(v)
		}
	}
	return false
}

// OverlayAnnotations returns the value of the first [OverlayAnnotations]
// option, or false.
func (opts Options) OverlayAnnotations() bool {
	for _, o := range opts {
		if v, ok := o.(overlayAnnotations); ok {
			return bool(v)
		}
	}
	return false
}

// SkipAnnotations returns the references of the first [SkipAnnotations]
// option, or nil.  The returned slice must not be modified.
func (opts Options) SkipAnnotations() []pdf.Reference {
	for _, o := range opts {
		if v, ok := o.(skipAnnotations); ok {
			return []pdf.Reference(v)
		}
	}
	return nil
}

// IgnorePageClip returns the value of the first [IgnorePageClip] option,
// or false.
func (opts Options) IgnorePageClip() bool {
	for _, o := range opts {
		if v, ok := o.(ignorePageClip); ok {
			return bool(v)
		}
	}
	return false
}

// AllowAntiAliasing returns the value of the first [AllowAntiAliasing]
// option, or false.
func (opts Options) AllowAntiAliasing() bool {
	for _, o := range opts {
		if v, ok := o.(allowAntiAliasing); ok {
			return bool(v)
		}
	}
	return false
}

// BackgroundFill returns the color of the first [BackgroundFill] option,
// or black.
func (opts Options) BackgroundFill() color.Color {
	for _, o := range opts {
		if v, ok := o.(backgroundFill); ok {
			return v.c
		}
	}
	return defaultBackgroundFill
}

// TextNativeRendering returns the value of the first [TextNativeRendering]
// option, or false.
func (opts Options) TextNativeRendering() bool {
	for _, o := range opts {
		if v, ok := o.(textNativeRendering); ok {
			return bool(v)
		}
	}
	return false
}

// TextClearType returns the value of the first [TextClearType] option,
// or false.
func (opts Options) TextClearType() bool {
	for _, o := range opts {
		if v, ok := o.(textClearType); ok {
			return bool(v)
		}
	}
	return false
}

// FormFillColor returns the color of the first [FormFillColor] option,
// or black.
func (opts Options) FormFillColor() color.Color {
	for _, o := range opts {
		if v, ok := o.(formFillColor); ok {
			return v.c
		}
	}
	return defaultFormFillColor
}

// Draw returns the callback of the first [Draw] option, or nil.
func (opts Options) Draw() DrawFunc {
	for _, o := range opts {
		if v, ok := o.(drawCallback); ok {
			return DrawFunc(v)
		}
	}
	return nil
}

// SignHereOverlay returns the value of the first [SignHereOverlay] option,
// or false.
func (opts Options) SignHereOverlay() bool {
	for _, o := range opts {
		if v, ok := o.(signHereOverlay); ok {
			return bool(v)
		}
	}
	return false
}

// ImageFilters returns the filters of the first [ImageFilters] option,
// or nil.  The returned slice must not be modified.
func (opts Options) ImageFilters() []ImageFilter {
	for _, o := range opts {
		if v, ok := o.(imageFilters); ok {
			return []ImageFilter(v)
		}
	}
	return nil
}
