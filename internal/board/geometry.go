package board

// RowOf returns the row of a cell index.
func RowOf(i int) int { return i / Size }

// ColOf returns the column of a cell index.
func ColOf(i int) int { return i % Size }

// BoxOf returns the 3x3 box of a cell index.
func BoxOf(i int) int { return (RowOf(i)/3)*3 + ColOf(i)/3 }

// Index returns the cell index for a row and column.
func Index(row, col int) int { return row*Size + col }

// The 27 units: Units[0..8] are rows, Units[9..17] are columns,
// Units[18..26] are boxes.
var Units [27][Size]int

// Peers[i] holds the 20 cells sharing a row, column, or box with i,
// in ascending index order.
var Peers [Cells][20]int

// RowUnit, ColUnit, and BoxUnit index into Units by family.
func RowUnit(r int) [Size]int { return Units[r] }
func ColUnit(c int) [Size]int { return Units[Size+c] }
func BoxUnit(x int) [Size]int { return Units[2*Size+x] }

func init() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			Units[r][c] = Index(r, c)
			Units[Size+c][r] = Index(r, c)
		}
	}
	for x := 0; x < Size; x++ {
		br, bc := (x/3)*3, (x%3)*3
		for k := 0; k < Size; k++ {
			Units[2*Size+x][k] = Index(br+k/3, bc+k%3)
		}
	}
	for i := 0; i < Cells; i++ {
		n := 0
		for j := 0; j < Cells; j++ {
			if j == i {
				continue
			}
			if RowOf(j) == RowOf(i) || ColOf(j) == ColOf(i) || BoxOf(j) == BoxOf(i) {
				Peers[i][n] = j
				n++
			}
		}
	}
}
