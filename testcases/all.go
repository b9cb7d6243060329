// seehuhn.de/go/vcanvas - a tiled virtual canvas for very large surfaces
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

package testcases

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]Scenario{
	"fill":   fillCases,
	"stroke": strokeCases,
	"curve":  curveCases,
	"dash":   dashCases,
	"ctm":    ctmCases,
	"large":  largeCases,
}

// Find returns the scenario with the given reference name, which is the
// category and the scenario name joined by an underscore.
func Find(name string) (*Scenario, bool) {
	for category, cases := range All {
		for i := range cases {
			if category+"_"+cases[i].Name == name {
				return &cases[i], true
			}
		}
	}
	return nil, false
}
