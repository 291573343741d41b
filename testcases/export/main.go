// Command export writes the pixel sequences of all test cases to JSON,
// for comparison with other line drawing implementations.
// Run from the root directory of the seehuhn.de/go/stepline module.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/stepline"
	"seehuhn.de/go/stepline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/sequences.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	From      [2]int  `json:"from"`
	To        [2]int  `json:"to"`
	DDA       [][]int `json:"dda"`
	Bresenham [][]int `json:"bresenham"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	return jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		From:      [2]int{tc.X1, tc.Y1},
		To:        [2]int{tc.X2, tc.Y2},
		DDA:       pointsToJSON(stepline.RasterizeDDA(tc.X1, tc.Y1, tc.X2, tc.Y2)),
		Bresenham: pointsToJSON(stepline.RasterizeBresenham(tc.X1, tc.Y1, tc.X2, tc.Y2)),
	}
}

func pointsToJSON(seq stepline.Sequence) [][]int {
	pts := make([][]int, len(seq))
	for i, p := range seq {
		pts[i] = []int{p.X, p.Y}
	}
	return pts
}
