package space

import (
	"math"

	"github.com/alexanderi96/go-nbody/core/constants"
	"github.com/alexanderi96/go-nbody/core/vector"
	"github.com/alexanderi96/go-nbody/physics/body"
)

// MaxDepth è la profondità massima di ricorsione dell'octree. Corpi quasi
// coincidenti provocherebbero altrimenti una suddivisione senza fine: al
// limite di profondità la foglia accetta più corpi e li tratta come massa
// aggregata nel loro punto comune
const MaxDepth = 32

// noChild marca un figlio assente nell'arena
const noChild int32 = -1

// treeNode è un nodo dell'octree memorizzato nell'arena. I figli sono
// indici nell'arena stessa, i corpi indici nella sequenza di corpi:
// il nodo non possiede mai i corpi a cui fa riferimento
type treeNode struct {
	bounds       Region
	mass         float64        // Massa totale del sottoalbero
	centerOfMass vector.Vector3 // Centro di massa del sottoalbero
	bodies       []int32        // Corpi memorizzati, solo per foglie
	children     [8]int32       // Indici dei figli, noChild se assenti
}

// Octree implementa un albero ottale adattivo per l'algoritmo Barnes-Hut.
// L'albero viene costruito da zero all'inizio di ogni passo e scartato alla
// fine: i nodi vivono in un'arena contigua rilasciata in blocco
type Octree struct {
	bodies []body.Body
	nodes  []treeNode
}

// RootRegion calcola la regione cubica radice che racchiude tutti i corpi:
// centro nel punto medio degli estremi per asse, spigolo pari all'estensione
// massima tra gli assi. Se tutti i corpi coincidono usa HalfSize 1 (spigolo 2)
func RootRegion(bodies []body.Body) Region {
	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)

	for _, b := range bodies {
		p := b.Position()

		minX = math.Min(minX, p.X())
		maxX = math.Max(maxX, p.X())

		minY = math.Min(minY, p.Y())
		maxY = math.Max(maxY, p.Y())

		minZ = math.Min(minZ, p.Z())
		maxZ = math.Max(maxZ, p.Z())
	}

	center := vector.NewVector3(
		0.5*(minX+maxX),
		0.5*(minY+maxY),
		0.5*(minZ+maxZ),
	)

	maxSpan := math.Max(maxX-minX, math.Max(maxY-minY, maxZ-minZ))

	// Evita una regione degenere quando tutti i corpi coincidono
	if maxSpan == 0 {
		maxSpan = 2.0
	}

	return NewRegion(center, 0.5*maxSpan)
}

// Build costruisce un octree a partire da una sequenza non vuota di corpi
func Build(bodies []body.Body) *Octree {
	if len(bodies) == 0 {
		panic("space: cannot build an octree from an empty body set")
	}

	ot := &Octree{
		bodies: bodies,
		nodes:  make([]treeNode, 0, 2*len(bodies)),
	}

	ot.newNode(RootRegion(bodies))

	for i := range bodies {
		ot.insert(0, int32(i), 0)
	}

	return ot
}

// newNode alloca un nodo vuoto nell'arena e ne restituisce l'indice
func (ot *Octree) newNode(bounds Region) int32 {
	idx := int32(len(ot.nodes))

	n := treeNode{
		bounds:       bounds,
		centerOfMass: vector.Zero3(),
	}
	for i := range n.children {
		n.children[i] = noChild
	}

	ot.nodes = append(ot.nodes, n)
	return idx
}

// isLeaf verifica se il nodo è una foglia (nessun figlio presente)
func (ot *Octree) isLeaf(ni int32) bool {
	for _, ci := range ot.nodes[ni].children {
		if ci != noChild {
			return false
		}
	}
	return true
}

// insert inserisce il corpo bi nel sottoalbero radicato in ni.
// L'arena può essere riallocata da newNode, quindi i nodi vengono sempre
// riletti tramite indice dopo ogni allocazione o ricorsione
func (ot *Octree) insert(ni, bi int32, depth int) {
	if ot.isLeaf(ni) {
		// Caso 1: foglia vuota, il corpo viene memorizzato direttamente
		if len(ot.nodes[ni].bodies) == 0 {
			b := ot.bodies[bi]
			n := &ot.nodes[ni]
			n.bodies = append(n.bodies, bi)
			n.mass = b.Mass()
			n.centerOfMass = b.Position()
			return
		}

		// Foglia di overflow al limite di profondità: accumula il corpo
		// e aggiorna massa e centro di massa in modo incrementale
		if depth >= MaxDepth {
			b := ot.bodies[bi]
			n := &ot.nodes[ni]
			n.bodies = append(n.bodies, bi)

			total := n.mass + b.Mass()
			n.centerOfMass = n.centerOfMass.Scale(n.mass).
				Add(b.Position().Scale(b.Mass())).
				Scale(1.0 / total)
			n.mass = total
			return
		}

		// Caso 2: foglia occupata, suddividi in otto figli e sposta i
		// corpi negli ottanti appropriati
		old := ot.nodes[ni].bodies
		ot.nodes[ni].bodies = nil
		bounds := ot.nodes[ni].bounds

		var children [8]int32
		for i := 0; i < 8; i++ {
			children[i] = ot.newNode(bounds.ChildRegion(i))
		}
		ot.nodes[ni].children = children

		for _, ob := range old {
			idx := bounds.OctantIndex(ot.bodies[ob].Position())
			ot.insert(children[idx], ob, depth+1)
		}

		idx := bounds.OctantIndex(ot.bodies[bi].Position())
		ot.insert(children[idx], bi, depth+1)

		ot.recomputeAggregates(ni)
		return
	}

	// Caso 3: nodo interno, scegli l'ottante e ricorri creando il figlio
	// se non esiste ancora
	bounds := ot.nodes[ni].bounds
	idx := bounds.OctantIndex(ot.bodies[bi].Position())

	ci := ot.nodes[ni].children[idx]
	if ci == noChild {
		ci = ot.newNode(bounds.ChildRegion(idx))
		ot.nodes[ni].children[idx] = ci
	}

	ot.insert(ci, bi, depth+1)
	ot.recomputeAggregates(ni)
}

// recomputeAggregates ricalcola massa e centro di massa del nodo a partire
// dai figli, saltando i figli senza massa
func (ot *Octree) recomputeAggregates(ni int32) {
	mass := 0.0
	weighted := vector.Zero3()

	for _, ci := range ot.nodes[ni].children {
		if ci == noChild {
			continue
		}
		child := &ot.nodes[ci]
		if child.mass <= 0 {
			continue
		}
		mass += child.mass
		weighted = weighted.Add(child.centerOfMass.Scale(child.mass))
	}

	n := &ot.nodes[ni]
	n.mass = mass
	if mass > 0 {
		n.centerOfMass = weighted.Scale(1.0 / mass)
	} else {
		n.centerOfMass = vector.Zero3()
	}
}

// CalculateGravity calcola la forza gravitazionale esercitata sul corpo di
// indice self dall'intero albero, utilizzando l'algoritmo Barnes-Hut con il
// parametro di accettazione theta. L'esclusione del corpo stesso avviene
// per identità di indice, non per posizione: due corpi distinti nella
// stessa posizione si attraggono comunque (limitati dall'addolcimento)
func (ot *Octree) CalculateGravity(self int, g, theta float64) vector.Vector3 {
	force := vector.Zero3()
	ot.calculateGravityRecursive(0, int32(self), g, theta, &force)
	return force
}

// calculateGravityRecursive calcola ricorsivamente la forza gravitazionale
func (ot *Octree) calculateGravityRecursive(ni, self int32, g, theta float64, force *vector.Vector3) {
	n := &ot.nodes[ni]

	// Un nodo senza massa non contribuisce
	if n.mass <= 0 {
		return
	}

	b := ot.bodies[self]

	r := n.centerOfMass.Sub(b.Position())
	dist2 := r.LengthSquared() + constants.Softening*constants.Softening
	dist := math.Sqrt(dist2)

	// Salvaguardia contro l'auto-interazione a distanza esattamente nulla
	if dist == 0 {
		return
	}

	if ot.isLeaf(ni) {
		// Somma il contributo di ogni corpo nella foglia, escludendo self
		for _, bi := range n.bodies {
			if bi == self {
				continue
			}
			other := ot.bodies[bi]

			rb := other.Position().Sub(b.Position())
			d2 := rb.LengthSquared() + constants.Softening*constants.Softening
			d := math.Sqrt(d2)

			// fVec = (G * m1 * m2 / d^3) * r
			f := g * b.Mass() * other.Mass() / (d2 * d)
			*force = (*force).Add(rb.Scale(f))
		}
		return
	}

	// Se il rapporto tra lo spigolo della cella e la distanza è inferiore a
	// theta, tratta l'intera cella come una massa puntiforme nel suo centro
	// di massa
	s := 2.0 * n.bounds.HalfSize
	if s/dist < theta {
		f := g * b.Mass() * n.mass / (dist2 * dist)
		*force = (*force).Add(r.Scale(f))
		return
	}

	// Altrimenti ricorri nei figli presenti
	for _, ci := range n.children {
		if ci != noChild {
			ot.calculateGravityRecursive(ci, self, g, theta, force)
		}
	}
}

// Node è una vista di sola lettura su un nodo dell'albero
type Node struct {
	tree  *Octree
	index int32
}

// Root restituisce la vista sul nodo radice
func (ot *Octree) Root() Node {
	return Node{tree: ot, index: 0}
}

// NodeCount restituisce il numero di nodi allocati nell'arena
func (ot *Octree) NodeCount() int {
	return len(ot.nodes)
}

// Bounds restituisce la regione coperta dal nodo
func (n Node) Bounds() Region {
	return n.tree.nodes[n.index].bounds
}

// Mass restituisce la massa aggregata del sottoalbero
func (n Node) Mass() float64 {
	return n.tree.nodes[n.index].mass
}

// CenterOfMass restituisce il centro di massa aggregato del sottoalbero
func (n Node) CenterOfMass() vector.Vector3 {
	return n.tree.nodes[n.index].centerOfMass
}

// IsLeaf verifica se il nodo è una foglia
func (n Node) IsLeaf() bool {
	return n.tree.isLeaf(n.index)
}

// Child restituisce la vista sul figlio i, se presente
func (n Node) Child(i int) (Node, bool) {
	ci := n.tree.nodes[n.index].children[i]
	if ci == noChild {
		return Node{}, false
	}
	return Node{tree: n.tree, index: ci}, true
}

// BodyIndices restituisce gli indici dei corpi memorizzati nella foglia
func (n Node) BodyIndices() []int {
	stored := n.tree.nodes[n.index].bodies
	indices := make([]int, len(stored))
	for i, bi := range stored {
		indices[i] = int(bi)
	}
	return indices
}
