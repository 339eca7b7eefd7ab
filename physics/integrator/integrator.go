// Package integrator fornisce integratori numerici per le equazioni del moto
package integrator

import (
	"github.com/alexanderi96/go-nbody/physics/body"
)

// Integrator rappresenta un integratore numerico per le equazioni del moto
type Integrator interface {
	// Integrate integra le equazioni del moto per un corpo
	Integrate(b body.Body, dt float64)
	// IntegrateAll integra le equazioni del moto per tutti i corpi
	IntegrateAll(bodies []body.Body, dt float64)
}

// SymplecticEuler implementa l'integratore di Euler semi-implicito
// (simplettico): la posizione viene aggiornata con la velocità già
// aggiornata, il che conserva l'energia sugli orizzonti lunghi molto
// meglio dell'Euler esplicito
type SymplecticEuler struct{}

// NewSymplecticEuler crea un nuovo integratore di Euler semi-implicito
func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

// Integrate integra le equazioni del moto per un corpo. La forza del passo
// corrente deve essere già completamente accumulata sul corpo
func (se *SymplecticEuler) Integrate(b body.Body, dt float64) {
	// a = F / m
	acceleration := b.Force().Scale(1.0 / b.Mass())

	// v(t+dt) = v(t) + a(t)*dt
	newVelocity := b.Velocity().Add(acceleration.Scale(dt))
	b.SetVelocity(newVelocity)

	// x(t+dt) = x(t) + v(t+dt)*dt
	newPosition := b.Position().Add(newVelocity.Scale(dt))
	b.SetPosition(newPosition)
}

// IntegrateAll integra le equazioni del moto per tutti i corpi
func (se *SymplecticEuler) IntegrateAll(bodies []body.Body, dt float64) {
	for _, b := range bodies {
		se.Integrate(b, dt)
	}
}
