package technique

import "svw.info/sudokugen/internal/domain"

// Finder is one tagged entry of the catalog: its identity, the points it
// contributes to a difficulty score, and the search itself.
type Finder struct {
	ID    domain.Technique
	Score int
	Find  func(*State) (Step, bool)
}

// Catalog lists the full technique table in strict ascending difficulty,
// the order the grader tries them in.
var Catalog = []Finder{
	{domain.NakedSingle, 1, findNakedSingle},
	{domain.HiddenSingle, 2, findHiddenSingle},
	{domain.PointingPair, 5, findPointingPair},
	{domain.BoxLineReduction, 5, findBoxLineReduction},
	{domain.NakedPair, 6, findNakedSubset(2, domain.NakedPair)},
	{domain.NakedTriple, 8, findNakedSubset(3, domain.NakedTriple)},
	{domain.HiddenPair, 8, findHiddenSubset(2, domain.HiddenPair)},
	{domain.HiddenTriple, 10, findHiddenSubset(3, domain.HiddenTriple)},
	{domain.XWing, 15, findFish(2, domain.XWing)},
	{domain.Swordfish, 20, findFish(3, domain.Swordfish)},
}

// BruteForceScore is charged per cell the catalog cannot crack.
const BruteForceScore = 50

// HintCatalog is the subset offered as hints, in the order the hint
// engine tries them. Swordfish-level patterns fall through to the
// brute-force fallback instead.
var HintCatalog = []Finder{
	Catalog[0], // naked_single
	Catalog[1], // hidden_single
	Catalog[2], // pointing_pair
	Catalog[4], // naked_pair
	Catalog[6], // hidden_pair
	Catalog[8], // x_wing
}
