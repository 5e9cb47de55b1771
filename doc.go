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

// Package pdfrender defines the configuration vocabulary for external PDF
// page renderers.
//
// Render configuration is expressed as a sequence of typed [Option] values:
//
//	opts := pdfrender.Options{
//	    pdfrender.PageColor(colornames.White),
//	    pdfrender.Inverted(true),
//	    pdfrender.Quality(pdfrender.QualityHigh),
//	}
//
// A renderer consumes the untyped form of the sequence, the [Dict] produced
// by [Options.Dict].  [Decode] and [OptionsFromDict] convert dictionaries
// back into typed options, substituting documented defaults for missing or
// mistyped values.
//
// Option sequences can be serialized as JSON for persistence; see
// [MarshalOption] for the format and its one restriction (the [Draw]
// callback cannot be deserialized).
//
// The package performs no rendering itself.  The [Renderer] interface
// describes the rasterization service the options are transported into.
package pdfrender
