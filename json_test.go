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
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

func TestJSONRoundTrip(t *testing.T) {
	for _, tc := range roundTripCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := MarshalOption(tc.opt)
			if err != nil {
				t.Fatal(err)
			}
			got, err := UnmarshalOption(data)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.opt, got, cmpOpts); d != "" {
				t.Errorf("JSON round trip changed option (-want +got):\n%s", d)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
		want string
	}{
		{"none", None, `[]`},
		{"bool", Inverted(true), `[{"inverted":true}]`},
		{"color", PageColor(colornames.Red), `[{"pageColor":[255,0,0,255]}]`},
		{"filters", Filters(FilterContent | FilterForms), `[{"filters":5}]`},
		{"quality", Quality(QualityMedium), `[{"interpolationQuality":3}]`},
		{"refs", SkipAnnotations([]pdf.Reference{pdf.NewReference(12, 0)}), `[{"skipAnnotations":[12]}]`},
		{"imageFilters", ImageFilters([]ImageFilter{"sepia"}), `[{"imageFilters":["sepia"]}]`},
		{"draw", Draw(func(s Surface, pageIndex int, cropBox rect.Rect, rotation int, extra map[string]any) {}), `[{"draw":null}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := MarshalOption(tc.opt)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tc.want {
				t.Errorf("got %s, want %s", data, tc.want)
			}
		})
	}
}

func TestJSONNone(t *testing.T) {
	opt, err := UnmarshalOption([]byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if opt != None {
		t.Errorf("got %v, want None", opt)
	}
}

// TestJSONDrawNotDecodable checks that a serialized draw callback is
// refused at decode time instead of turning into a dangling function.
func TestJSONDrawNotDecodable(t *testing.T) {
	opt := Draw(func(s Surface, pageIndex int, cropBox rect.Rect, rotation int, extra map[string]any) {})
	data, err := MarshalOption(opt)
	if err != nil {
		t.Fatalf("marshaling a draw option must succeed, got %v", err)
	}

	_, err = UnmarshalOption(data)
	if !errors.Is(err, ErrOpaquePayload) {
		t.Errorf("got error %v, want ErrOpaquePayload", err)
	}
}

func TestJSONUnknownKey(t *testing.T) {
	_, err := UnmarshalOption([]byte(`[{"notARealKey":true}]`))
	if err == nil {
		t.Error("unknown key was not rejected")
	}
}

func TestJSONInvalidContainer(t *testing.T) {
	cases := []string{
		// not an array
		`{"inverted":true}`,
		// two elements
		`[{"inverted":true},{"a":1}]`,
		// two members in one element
		`[{"inverted":true,"pageColor":null}]`,
		// element is not an object
		`[42]`,
	}
	for _, data := range cases {
		if _, err := UnmarshalOption([]byte(data)); err == nil {
			t.Errorf("UnmarshalOption(%s) succeeded, want error", data)
		}
	}
}

// TestJSONDefaultSubstitution checks that mistyped values in serialized
// data fall back to the documented defaults, like Decode does.
func TestJSONDefaultSubstitution(t *testing.T) {
	cases := []struct {
		data string
		want Option
	}{
		{`[{"inverted":"yes"}]`, Inverted(false)},
		{`[{"pageColor":"red"}]`, PageColor(colornames.White)},
		{`[{"filters":"all"}]`, Filters(0)},
		{`[{"interpolationQuality":"high"}]`, Quality(QualityDefault)},
		{`[{"interpolationQuality":99}]`, Quality(QualityDefault)},
		{`[{"skipAnnotations":true}]`, SkipAnnotations(nil)},
		{`[{"imageFilters":7}]`, ImageFilters(nil)},
	}
	for _, tc := range cases {
		got, err := UnmarshalOption([]byte(tc.data))
		if err != nil {
			t.Errorf("UnmarshalOption(%s): %v", tc.data, err)
			continue
		}
		if d := cmp.Diff(tc.want, got, cmpOpts); d != "" {
			t.Errorf("UnmarshalOption(%s) (-want +got):\n%s", tc.data, d)
		}
	}
}

func TestJSONSequence(t *testing.T) {
	opts := Options{
		PageColor(colornames.Red),
		Inverted(true),
		Quality(QualityHigh),
	}

	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatal(err)
	}

	var got Options
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(opts, got, cmpOpts); d != "" {
		t.Errorf("sequence round trip (-want +got):\n%s", d)
	}
}

func TestJSONSequenceWithDraw(t *testing.T) {
	opts := Options{
		Inverted(true),
		Draw(func(s Surface, pageIndex int, cropBox rect.Rect, rotation int, extra map[string]any) {}),
	}

	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("marshaling must succeed, got %v", err)
	}

	var got Options
	err = json.Unmarshal(data, &got)
	if !errors.Is(err, ErrOpaquePayload) {
		t.Errorf("got error %v, want ErrOpaquePayload", err)
	}
}

func TestJSONEmptySequence(t *testing.T) {
	var opts Options
	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatal(err)
	}

	var got Options
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
