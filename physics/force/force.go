// Package force fornisce le strategie di calcolo delle forze gravitazionali
package force

import (
	"math"

	"github.com/alexanderi96/go-nbody/core/constants"
	"github.com/alexanderi96/go-nbody/physics/body"
	"github.com/alexanderi96/go-nbody/physics/space"
)

// Evaluator rappresenta una strategia di calcolo delle forze gravitazionali.
// Ogni valutazione azzera gli accumulatori di forza di tutti i corpi e vi
// scrive la forza netta del passo corrente
type Evaluator interface {
	// ComputeForces calcola la forza netta su ogni corpo della sequenza
	ComputeForces(bodies []body.Body)
}

// DirectEvaluator implementa il calcolo diretto O(N^2) su tutte le coppie.
// È il riferimento numerico esatto per l'algoritmo Barnes-Hut
type DirectEvaluator struct {
	G float64 // Costante gravitazionale
}

// NewDirectEvaluator crea un nuovo valutatore diretto
func NewDirectEvaluator(g float64) *DirectEvaluator {
	return &DirectEvaluator{G: g}
}

// ComputeForces calcola le forze su tutte le coppie non ordinate (i, j).
// Il termine di addolcimento entra nel denominatore in modo simmetrico,
// quindi le forze della coppia restano uguali e opposte
func (de *DirectEvaluator) ComputeForces(bodies []body.Body) {
	for _, b := range bodies {
		b.ResetForce()
	}

	softening2 := constants.Softening * constants.Softening

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Position().Sub(bodies[i].Position())
			dist2 := r.LengthSquared() + softening2
			dist := math.Sqrt(dist2)

			// fVec = (G * m1 * m2 / d^3) * r
			f := de.G * bodies[i].Mass() * bodies[j].Mass() / (dist2 * dist)
			fVec := r.Scale(f)

			bodies[i].ApplyForce(fVec)
			bodies[j].ApplyForce(fVec.Neg())
		}
	}
}

// BarnesHutEvaluator implementa il calcolo approssimato O(N log N) tramite
// octree. Per ogni passo l'albero viene costruito da zero, attraversato per
// ogni corpo e scartato al termine
type BarnesHutEvaluator struct {
	G     float64 // Costante gravitazionale
	Theta float64 // Parametro di accettazione multipolare
}

// NewBarnesHutEvaluator crea un nuovo valutatore Barnes-Hut
func NewBarnesHutEvaluator(g, theta float64) *BarnesHutEvaluator {
	return &BarnesHutEvaluator{
		G:     g,
		Theta: theta,
	}
}

// SetTheta imposta il parametro di accettazione multipolare
func (bh *BarnesHutEvaluator) SetTheta(theta float64) {
	bh.Theta = theta
}

// ComputeForces costruisce l'octree e accumula su ogni corpo la forza
// calcolata dall'attraversamento dell'albero. Con Theta = 0 nessun nodo
// interno viene mai approssimato e il risultato coincide con il calcolo
// diretto a meno dell'ordine di somma
func (bh *BarnesHutEvaluator) ComputeForces(bodies []body.Body) {
	for _, b := range bodies {
		b.ResetForce()
	}

	tree := space.Build(bodies)

	for i, b := range bodies {
		b.ApplyForce(tree.CalculateGravity(i, bh.G, bh.Theta))
	}
}
