// Package engine fornisce il coordinatore della simulazione a N corpi
package engine

import (
	"fmt"
	"math"

	"github.com/alexanderi96/go-nbody/physics/body"
	"github.com/alexanderi96/go-nbody/physics/force"
	"github.com/alexanderi96/go-nbody/physics/integrator"
	"github.com/alexanderi96/go-nbody/simulation/trace"
)

// Simulation coordina l'evoluzione temporale di una sequenza di corpi.
// La sequenza è di proprietà esclusiva della simulazione: nessun lettore
// esterno può osservarla durante un passo
type Simulation struct {
	bodies []body.Body
	g      float64
	dt     float64
	sink   trace.Sink

	integ     integrator.Integrator
	direct    *force.DirectEvaluator
	barnesHut *force.BarnesHutEvaluator

	stepnum int
}

// New crea una nuova simulazione. La sequenza di corpi deve essere non
// vuota, con masse positive e stato cinematico finito; dt deve essere
// positivo. sink può essere nil per una simulazione senza traccia
func New(bodies []body.Body, g, dt float64, sink trace.Sink) (*Simulation, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("engine: body set must not be empty")
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("engine: time step must be positive and finite, got %v", dt)
	}
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return nil, fmt.Errorf("engine: gravitational constant must be finite, got %v", g)
	}

	for i, b := range bodies {
		if b.Mass() <= 0 || math.IsNaN(b.Mass()) || math.IsInf(b.Mass(), 0) {
			return nil, fmt.Errorf("engine: body %d has non-positive or non-finite mass %v", i, b.Mass())
		}
		if !finiteVec(b.Position().ToArray()) {
			return nil, fmt.Errorf("engine: body %d has non-finite position", i)
		}
		if !finiteVec(b.Velocity().ToArray()) {
			return nil, fmt.Errorf("engine: body %d has non-finite velocity", i)
		}
	}

	return &Simulation{
		bodies:    bodies,
		g:         g,
		dt:        dt,
		sink:      sink,
		integ:     integrator.NewSymplecticEuler(),
		direct:    force.NewDirectEvaluator(g),
		barnesHut: force.NewBarnesHutEvaluator(g, 0),
	}, nil
}

func finiteVec(a [3]float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// StepNaive avanza la simulazione di un passo usando il valutatore diretto
// su tutte le coppie
func (s *Simulation) StepNaive() error {
	s.direct.ComputeForces(s.bodies)
	s.integ.IntegrateAll(s.bodies, s.dt)
	return s.EmitState()
}

// StepBarnesHut avanza la simulazione di un passo usando l'algoritmo
// Barnes-Hut con il parametro di accettazione theta. Con theta = 0
// l'attraversamento visita ogni foglia ed è esatto
func (s *Simulation) StepBarnesHut(theta float64) error {
	if theta < 0 || math.IsNaN(theta) {
		return fmt.Errorf("engine: theta must be non-negative, got %v", theta)
	}

	s.barnesHut.SetTheta(theta)
	s.barnesHut.ComputeForces(s.bodies)
	s.integ.IntegrateAll(s.bodies, s.dt)
	return s.EmitState()
}

// EmitState emette lo stato corrente sulla traccia e incrementa il
// contatore dei passi. Se l'emissione fallisce il contatore resta invariato
// e lo stato in memoria resta coerente: il chiamante può ritentare
// l'emissione o abbandonare
func (s *Simulation) EmitState() error {
	if s.sink != nil {
		t := float64(s.stepnum+1) * s.dt
		if err := s.sink.Append(s.stepnum, t, s.bodies); err != nil {
			return err
		}
	}
	s.stepnum++
	return nil
}

// Bodies restituisce la sequenza di corpi della simulazione
func (s *Simulation) Bodies() []body.Body {
	return s.bodies
}

// StepCount restituisce il numero di passi completati
func (s *Simulation) StepCount() int {
	return s.stepnum
}

// Time restituisce il tempo simulato trascorso
func (s *Simulation) Time() float64 {
	return float64(s.stepnum) * s.dt
}
