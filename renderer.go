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
	"image"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

// Renderer rasterizes single pages of a PDF document.  Implementations are
// external to this package; the package only defines the option transport
// into the call.
//
// The opts dictionary is normally produced by [Options.Dict].
type Renderer interface {
	RenderPage(r pdf.Getter, pageIndex int, filter Filter, what Type, opts Dict) (image.Image, error)
}

// Type selects the kind of rendering a request applies to.
type Type int

const (
	// TypePage is rendering of a single page for display.
	TypePage Type = iota

	// TypeProcessor is rendering performed while exporting or
	// processing a document.
	TypeProcessor

	// TypeAll applies to every kind of rendering.
	TypeAll
)

// Filter is a bitmask selecting classes of page content for rendering.
type Filter uint32

const (
	// FilterContent selects the page content streams.
	FilterContent Filter = 1 << 0

	// FilterAnnotations selects annotations.
	FilterAnnotations Filter = 1 << 1

	// FilterForms selects interactive form fields.
	FilterForms Filter = 1 << 2

	// FilterOverlays selects overlays drawn on top of the page,
	// including [Draw] callbacks.
	FilterOverlays Filter = 1 << 3
)

// HasAny reports whether any of the given bits are set in f.
func (f Filter) HasAny(bits Filter) bool {
	return f&bits != 0
}

// InterpolationQuality selects the interpolation used when scaling the
// rendered page bitmap.
type InterpolationQuality int

const (
	// QualityDefault leaves the choice to the renderer.
	QualityDefault InterpolationQuality = iota

	// QualityNone disables interpolation.
	QualityNone

	// QualityLow is fast, low-quality interpolation.
	QualityLow

	// QualityMedium balances speed and quality.
	QualityMedium

	// QualityHigh is slow, high-quality interpolation.
	QualityHigh
)

// Interpolator returns the scaler implementing the quality level.
func (q InterpolationQuality) Interpolator() draw.Interpolator {
	switch q {
	case QualityNone, QualityLow:
		return draw.NearestNeighbor
	case QualityHigh:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// Surface is the drawing surface a [DrawFunc] paints on.
type Surface = draw.Image

// DrawFunc draws additional content onto a rendered page.  The callback
// receives the page surface, the zero-based page index, the page's crop box
// in surface coordinates, the page rotation in degrees, and a side-channel
// map with renderer-specific extra values.
//
// The renderer may invoke the callback on an arbitrary goroutine, once per
// render pass.  This package never invokes it.
type DrawFunc func(s Surface, pageIndex int, cropBox rect.Rect, rotation int, extra map[string]any)

// ImageFilter names a post-processing filter applied to the rendered page
// image by the renderer's image pipeline.
type ImageFilter string

// Image filters understood by all renderers.  Renderers may accept
// additional, implementation-specific filter names.
const (
	ImageFilterGrayscale ImageFilter = "grayscale"
	ImageFilterSepia     ImageFilter = "sepia"
	ImageFilterInvert    ImageFilter = "invert"
)
