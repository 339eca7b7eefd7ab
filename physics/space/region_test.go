package space

import (
	"testing"

	"github.com/alexanderi96/go-nbody/core/vector"
)

// TestContains verifica l'appartenenza con intervalli chiusi
func TestContains(t *testing.T) {
	r := NewRegion(vector.NewVector3(0, 0, 0), 1)

	inside := []vector.Vector3{
		vector.NewVector3(0, 0, 0),
		vector.NewVector3(0.5, -0.5, 0.99),
		// I punti sul bordo appartengono alla regione
		vector.NewVector3(1, 1, 1),
		vector.NewVector3(-1, -1, -1),
	}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("Il punto %v deve appartenere alla regione", p.ToArray())
		}
	}

	outside := []vector.Vector3{
		vector.NewVector3(1.001, 0, 0),
		vector.NewVector3(0, -1.001, 0),
		vector.NewVector3(0, 0, 2),
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("Il punto %v non deve appartenere alla regione", p.ToArray())
		}
	}
}

// TestOctantIndexConvention verifica la convenzione a 3 bit (z<<2)|(y<<1)|x
func TestOctantIndexConvention(t *testing.T) {
	r := NewRegion(vector.NewVector3(0, 0, 0), 1)

	cases := []struct {
		point    vector.Vector3
		expected int
	}{
		{vector.NewVector3(-0.5, -0.5, -0.5), 0},
		{vector.NewVector3(0.5, -0.5, -0.5), 1},
		{vector.NewVector3(-0.5, 0.5, -0.5), 2},
		{vector.NewVector3(0.5, 0.5, -0.5), 3},
		{vector.NewVector3(-0.5, -0.5, 0.5), 4},
		{vector.NewVector3(0.5, -0.5, 0.5), 5},
		{vector.NewVector3(-0.5, 0.5, 0.5), 6},
		{vector.NewVector3(0.5, 0.5, 0.5), 7},
	}

	for _, c := range cases {
		if got := r.OctantIndex(c.point); got != c.expected {
			t.Errorf("Indice di ottante errato per %v: atteso %d, ottenuto %d",
				c.point.ToArray(), c.expected, got)
		}
	}

	// I punti esattamente sul centro vengono assegnati all'ottante superiore
	if got := r.OctantIndex(vector.NewVector3(0, 0, 0)); got != 7 {
		t.Errorf("Il centro deve essere assegnato all'ottante 7, ottenuto %d", got)
	}
}

// TestChildRegionRoundTrip verifica che il centro di ogni regione figlia
// appartenga all'ottante corrispondente
func TestChildRegionRoundTrip(t *testing.T) {
	r := NewRegion(vector.NewVector3(2, -3, 5), 4)

	for i := 0; i < 8; i++ {
		child := r.ChildRegion(i)

		if got := r.OctantIndex(child.Center); got != i {
			t.Errorf("OctantIndex(ChildRegion(%d).Center) = %d, atteso %d", i, got, i)
		}

		if child.HalfSize != r.HalfSize/2 {
			t.Errorf("La regione figlia %d deve avere spigolo dimezzato: ottenuto %v", i, child.HalfSize)
		}

		if !child.Contains(child.Center) {
			t.Errorf("La regione figlia %d non contiene il proprio centro", i)
		}
		if !r.Contains(child.Center) {
			t.Errorf("La regione madre non contiene il centro della figlia %d", i)
		}
	}
}

// TestChildRegionPanics verifica che un indice fuori intervallo sia un
// errore di programmazione
func TestChildRegionPanics(t *testing.T) {
	r := NewRegion(vector.Zero3(), 1)

	for _, i := range []int{-1, 8, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ChildRegion(%d) deve generare panic", i)
				}
			}()
			r.ChildRegion(i)
		}()
	}
}
