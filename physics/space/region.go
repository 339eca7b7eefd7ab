// Package space fornisce strutture spaziali per il calcolo gravitazionale
package space

import (
	"fmt"

	"github.com/alexanderi96/go-nbody/core/vector"
)

// Region rappresenta una regione cubica dello spazio, definita dal suo
// centro e da metà della lunghezza dello spigolo
type Region struct {
	Center   vector.Vector3 // Centro del cubo
	HalfSize float64        // Metà della lunghezza dello spigolo
}

// NewRegion crea una nuova regione cubica
func NewRegion(center vector.Vector3, halfSize float64) Region {
	return Region{
		Center:   center,
		HalfSize: halfSize,
	}
}

// Contains verifica se un punto è contenuto nella regione (intervalli chiusi)
func (r Region) Contains(point vector.Vector3) bool {
	return point.X() >= r.Center.X()-r.HalfSize && point.X() <= r.Center.X()+r.HalfSize &&
		point.Y() >= r.Center.Y()-r.HalfSize && point.Y() <= r.Center.Y()+r.HalfSize &&
		point.Z() >= r.Center.Z()-r.HalfSize && point.Z() <= r.Center.Z()+r.HalfSize
}

// OctantIndex determina in quale ottante figlio (0-7) della regione si trova
// il punto. L'indice impacchetta il segno di (point - center) per ogni asse
// come valore a 3 bit: (z << 2) | (y << 1) | x, dove il bit vale 1 se la
// coordinata del punto è >= a quella del centro. I punti esattamente sul
// piano di separazione vengono assegnati all'ottante superiore.
func (r Region) OctantIndex(point vector.Vector3) int {
	index := 0
	if point.X() >= r.Center.X() {
		index |= 1
	}
	if point.Y() >= r.Center.Y() {
		index |= 2
	}
	if point.Z() >= r.Center.Z() {
		index |= 4
	}
	return index
}

// ChildRegion restituisce la regione dell'ottante figlio i, con spigolo
// dimezzato e centro spostato di HalfSize/2 lungo ogni asse secondo la
// convenzione di OctantIndex
func (r Region) ChildRegion(i int) Region {
	if i < 0 || i > 7 {
		panic(fmt.Sprintf("space: child octant index out of range: %d", i))
	}

	offset := r.HalfSize / 2

	sx, sy, sz := -1.0, -1.0, -1.0
	if i&1 != 0 {
		sx = 1.0
	}
	if i&2 != 0 {
		sy = 1.0
	}
	if i&4 != 0 {
		sz = 1.0
	}

	center := r.Center.Add(vector.NewVector3(sx*offset, sy*offset, sz*offset))
	return Region{
		Center:   center,
		HalfSize: offset,
	}
}
