package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"octant":     octantCases,
	"diagonal":   diagonalCases,
	"axis":       axisCases,
	"degenerate": degenerateCases,
	"precision":  precisionCases,
	"large":      largeCases,
	"reference":  referenceCases,
}
