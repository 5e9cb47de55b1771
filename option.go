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

// Option is one tagged render-configuration value.  The set of options is
// closed; the types implementing this interface are exactly the ones listed
// in the compile-time check below.  Option values are immutable after
// construction and can be shared freely between goroutines.
//
// Options are combined into an [Options] sequence and flattened into a [Dict]
// for the renderer with [Options.Dict].
type Option interface {
	// Key returns the renderer's dictionary key for this option.
	// The sentinel [None] returns the empty key.
	Key() Key
}

// Key identifies one configuration slot in the renderer's option dictionary.
// The vocabulary is closed and versioned together with the renderer.
type Key string

// The option dictionary keys understood by the renderer.
const (
	KeyPreserveAspectRatio   Key = "preserveAspectRatio"
	KeyIgnoreDisplaySettings Key = "ignoreDisplaySettings"
	KeyPageColor             Key = "pageColor"
	KeyInverted              Key = "inverted"
	KeyFilters               Key = "filters"
	KeyInterpolationQuality  Key = "interpolationQuality"
	KeySkipPageContent       Key = "skipPageContent"
	KeyOverlayAnnotations    Key = "overlayAnnotations"
	KeySkipAnnotations       Key = "skipAnnotations"
	KeyIgnorePageClip        Key = "ignorePageClip"
	KeyAllowAntiAliasing     Key = "allowAntiAliasing"
	KeyBackgroundFill        Key = "backgroundFill"
	KeyTextNativeRendering   Key = "textRenderingNative"
	KeyTextClearType         Key = "textRenderingClearType"
	KeyFormFillColor         Key = "interactiveFormFillColor"
	KeyDraw                  Key = "draw"
	KeySignHereOverlay       Key = "drawSignHereOverlay"
	KeyImageFilters          Key = "imageFilters"
)

// The following types implement the Option interface:
var (
	_ Option = none{}
	_ Option = preserveAspectRatio(false)
	_ Option = ignoreDisplaySettings(false)
	_ Option = pageColor{}
	_ Option = inverted(false)
	_ Option = renderFilters(0)
	_ Option = interpolationQuality(0)
	_ Option = skipPageContent(false)
	_ Option = overlayAnnotations(false)
	_ Option = skipAnnotations(nil)
	_ Option = ignorePageClip(false)
	_ Option = allowAntiAliasing(false)
	_ Option = backgroundFill{}
	_ Option = textNativeRendering(false)
	_ Option = textClearType(false)
	_ Option = formFillColor{}
	_ Option = drawCallback(nil)
	_ Option = signHereOverlay(false)
	_ Option = imageFilters(nil)
)

// None is the empty option.  It contributes no entry to the option
// dictionary and is ignored by all accessors.
var None Option = none{}

type none struct{}

func (none) Key() Key { return "" }

type preserveAspectRatio bool

// PreserveAspectRatio controls whether the rendered page keeps the aspect
// ratio of its media box when it is scaled into the target area.
func PreserveAspectRatio(keep bool) Option { return preserveAspectRatio(keep) }

func (preserveAspectRatio) Key() Key { return KeyPreserveAspectRatio }

type ignoreDisplaySettings bool

// IgnoreDisplaySettings makes the renderer ignore the viewer's global
// display settings for this request.
func IgnoreDisplaySettings(ignore bool) Option { return ignoreDisplaySettings(ignore) }

func (ignoreDisplaySettings) Key() Key { return KeyIgnoreDisplaySettings }

type pageColor struct {
	c color.Color
}

// PageColor sets the base color the page is composited onto.
// When the option is absent the renderer uses white.
func PageColor(c color.Color) Option { return pageColor{c} }

func (pageColor) Key() Key { return KeyPageColor }

type inverted bool

// Inverted renders the page with inverted colors ("night mode").
func Inverted(invert bool) Option { return inverted(invert) }

func (inverted) Key() Key { return KeyInverted }

type renderFilters Filter

// Filters restricts rendering to the content classes selected by the
// given bitmask.  A zero mask imposes no restriction.
func Filters(f Filter) Option { return renderFilters(f) }

func (renderFilters) Key() Key { return KeyFilters }

type interpolationQuality InterpolationQuality

// Quality selects the interpolation quality used when the page bitmap
// is scaled.
func Quality(q InterpolationQuality) Option { return interpolationQuality(q) }

func (interpolationQuality) Key() Key { return KeyInterpolationQuality }

type skipPageContent bool

// SkipPageContent omits the page content streams, so that only
// annotations and overlays are rendered.
func SkipPageContent(skip bool) Option { return skipPageContent(skip) }

func (skipPageContent) Key() Key { return KeySkipPageContent }

type overlayAnnotations bool

// OverlayAnnotations renders annotations on top of the page content
// instead of interleaved with it.
func OverlayAnnotations(overlay bool) Option { return overlayAnnotations(overlay) }

func (overlayAnnotations) Key() Key { return KeyOverlayAnnotations }

type skipAnnotations []pdf.Reference

// SkipAnnotations excludes the given annotations from rendering.
// The slice must not be modified after the option is constructed.
func SkipAnnotations(refs []pdf.Reference) Option { return skipAnnotations(refs) }

func (skipAnnotations) Key() Key { return KeySkipAnnotations }

type ignorePageClip bool

// IgnorePageClip disables clipping to the page's crop box.
func IgnorePageClip(ignore bool) Option { return ignorePageClip(ignore) }

func (ignorePageClip) Key() Key { return KeyIgnorePageClip }

type allowAntiAliasing bool

// AllowAntiAliasing enables anti-aliased drawing.
func AllowAntiAliasing(allow bool) Option { return allowAntiAliasing(allow) }

func (allowAntiAliasing) Key() Key { return KeyAllowAntiAliasing }

type backgroundFill struct {
	c color.Color
}

// BackgroundFill sets the color used for the area outside the rendered
// page.  When the option is absent the renderer uses black.
func BackgroundFill(c color.Color) Option { return backgroundFill{c} }

func (backgroundFill) Key() Key { return KeyBackgroundFill }

type textNativeRendering bool

// TextNativeRendering makes the renderer delegate glyph rasterization to
// the platform's native text engine instead of its own rasterizer.
func TextNativeRendering(native bool) Option { return textNativeRendering(native) }

func (textNativeRendering) Key() Key { return KeyTextNativeRendering }

type textClearType bool

// TextClearType enables subpixel text rendering where the platform
// supports it.
func TextClearType(enable bool) Option { return textClearType(enable) }

func (textClearType) Key() Key { return KeyTextClearType }

type formFillColor struct {
	c color.Color
}

// FormFillColor sets the highlight color for interactive form fields.
// When the option is absent the renderer uses black.
func FormFillColor(c color.Color) Option { return formFillColor{c} }

func (formFillColor) Key() Key { return KeyFormFillColor }

type drawCallback DrawFunc

// Draw registers a callback which is invoked after the page has been
// rendered, to draw additional content onto the page surface.  The
// callback is an in-process value; it survives the round trip through a
// [Dict] but cannot be recovered from serialized data (see
// [ErrOpaquePayload]).
func Draw(fn DrawFunc) Option { return drawCallback(fn) }

func (drawCallback) Key() Key { return KeyDraw }

type signHereOverlay bool

// SignHereOverlay draws a "sign here" marker on unsigned signature
// form fields.
func SignHereOverlay(draw bool) Option { return signHereOverlay(draw) }

func (signHereOverlay) Key() Key { return KeySignHereOverlay }

type imageFilters []ImageFilter

// ImageFilters applies the named post-processing filters, in order, to
// the rendered page image.  The slice must not be modified after the
// option is constructed.
func ImageFilters(ff []ImageFilter) Option { return imageFilters(ff) }

func (imageFilters) Key() Key { return KeyImageFilters }
