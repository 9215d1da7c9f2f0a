package blocks

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// ShapeKind tags a cell with the piece it belongs to.
type ShapeKind uint8

const (
	KindEmpty ShapeKind = iota
	KindI
	KindL
	KindO
	KindT
	KindZ
)

// String returns the one-letter name of the kind ("I", "L", ...).
func (k ShapeKind) String() string {
	return string(k.Rune())
}

// Rune returns the letter for the kind, '.' for empty.
func (k ShapeKind) Rune() rune {
	switch k {
	case KindI:
		return 'I'
	case KindL:
		return 'L'
	case KindO:
		return 'O'
	case KindT:
		return 'T'
	case KindZ:
		return 'Z'
	default:
		return '.'
	}
}

// Color returns the fill color for the kind.
func (k ShapeKind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorMagenta
	case KindL:
		return core.ColorGray
	case KindO:
		return core.ColorRed
	case KindT:
		return core.ColorBrightGreen
	case KindZ:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// Piece is a small rectangular template; KindEmpty entries are holes.
type Piece [][]ShapeKind

// Rows returns the template height.
func (p Piece) Rows() int {
	return len(p)
}

// Cols returns the template width.
func (p Piece) Cols() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Kind returns the shape of the first filled entry.
func (p Piece) Kind() ShapeKind {
	for _, row := range p {
		for _, k := range row {
			if k != KindEmpty {
				return k
			}
		}
	}
	return KindEmpty
}

// Catalog is the set of pieces a game draws from.
type Catalog []Piece

// MaxSize returns the largest template height and width in the catalog.
func (c Catalog) MaxSize() (rows, cols int) {
	for _, p := range c {
		rows = max(rows, p.Rows())
		cols = max(cols, p.Cols())
	}
	return rows, cols
}

const blank = KindEmpty

var standardCatalog = Catalog{
	{
		{KindI, KindI, KindI, KindI},
	},
	{
		{KindL, KindL, KindL},
		{KindL, blank, blank},
	},
	{
		{KindO, KindO},
		{KindO, KindO},
	},
	{
		{KindT, KindT, KindT},
		{blank, KindT, blank},
	},
	{
		{KindZ, KindZ, blank},
		{blank, KindZ, KindZ},
	},
}

var classicCatalog = Catalog{
	{
		{KindO, KindO},
		{KindO, KindO},
	},
}

// StandardCatalog returns the five-piece catalog (I, L, O, T, Z).
func StandardCatalog() Catalog {
	return standardCatalog.clone()
}

// ClassicCatalog returns the squares-only catalog.
func ClassicCatalog() Catalog {
	return classicCatalog.clone()
}

// CatalogByName resolves a configured catalog name.
func CatalogByName(name string) (Catalog, error) {
	switch name {
	case config.CatalogStandard, "":
		return StandardCatalog(), nil
	case config.CatalogClassic:
		return ClassicCatalog(), nil
	default:
		return nil, fmt.Errorf("blocks: unknown catalog %q", name)
	}
}

// Pick returns a uniformly random piece from the catalog.
func Pick(rng *rand.Rand, c Catalog) Piece {
	return c[rng.Intn(len(c))]
}

func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	for i, p := range c {
		cp := make(Piece, len(p))
		for r, row := range p {
			cp[r] = append([]ShapeKind(nil), row...)
		}
		out[i] = cp
	}
	return out
}
