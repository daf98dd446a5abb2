// Command export writes the layout of every test case to JSON, so that
// changes to the layout show up in diffs of testdata/geometry.json.
// Run from the qrstyle module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/qrstyle"
	"seehuhn.de/go/qrstyle/testcases"
)

func main() {
	log := logrus.WithField("component", "export")

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				log.WithField("case", category+"_"+tc.Name).Fatal(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create("testdata/geometry.json")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonTestCase struct {
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Side      int          `json:"side"`
	QuietZone int          `json:"quiet_zone"`
	Scale     int          `json:"scale"`
	Multiple  int          `json:"multiple"`
	Point     int          `json:"point"`
	Padding   [2]int       `json:"padding"`
	Finders   []jsonFinder `json:"finders"`
}

type jsonFinder struct {
	Corner string `json:"corner"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	sym, err := qrstyle.Prepare(tc.Content, qrstyle.Config{Width: tc.Width, Height: tc.Height})
	if err != nil {
		return jsonTestCase{}, err
	}
	g := sym.Geometry

	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     g.Width,
		Height:    g.Height,
		Side:      g.Side,
		QuietZone: g.QuietZone,
		Scale:     g.Scale,
		Multiple:  g.Multiple,
		Point:     g.Point,
		Padding:   [2]int{g.LeftPadding, g.TopPadding},
	}
	for _, a := range g.Finders {
		jtc.Finders = append(jtc.Finders, jsonFinder{Corner: a.Corner.String(), X: a.X, Y: a.Y})
	}
	return jtc, nil
}
