// Package body fornisce interfacce e implementazioni per i corpi fisici
package body

import (
	"fmt"
	"math"

	"github.com/alexanderi96/go-nbody/core/vector"
	"github.com/google/uuid"
)

// Body rappresenta una massa puntiforme nel motore
type Body interface {
	// ID restituisce l'identificatore univoco del corpo
	ID() uuid.UUID

	// Mass restituisce la massa del corpo (kg)
	Mass() float64

	// Position restituisce la posizione del corpo
	Position() vector.Vector3
	// SetPosition imposta la posizione del corpo
	SetPosition(pos vector.Vector3)

	// Velocity restituisce la velocità del corpo
	Velocity() vector.Vector3
	// SetVelocity imposta la velocità del corpo
	SetVelocity(vel vector.Vector3)

	// Force restituisce la forza accumulata sul corpo nel passo corrente
	Force() vector.Vector3
	// ApplyForce accumula una forza sul corpo
	ApplyForce(force vector.Vector3)
	// ResetForce azzera la forza accumulata
	ResetForce()
}

// PointMass implementa un corpo puntiforme
type PointMass struct {
	id       uuid.UUID
	mass     float64
	position vector.Vector3
	velocity vector.Vector3

	// Accumulatore di forza: significativo solo tra ResetForce e
	// l'integrazione all'interno di un singolo passo
	force vector.Vector3
}

// NewPointMass crea un nuovo corpo puntiforme
func NewPointMass(mass float64, position, velocity vector.Vector3) *PointMass {
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		panic(fmt.Sprintf("body: mass must be positive and finite, got %v", mass))
	}

	return &PointMass{
		id:       uuid.New(),
		mass:     mass,
		position: position,
		velocity: velocity,
		force:    vector.Zero3(),
	}
}

// ID restituisce l'identificatore univoco del corpo
func (pm *PointMass) ID() uuid.UUID {
	return pm.id
}

// Mass restituisce la massa del corpo
func (pm *PointMass) Mass() float64 {
	return pm.mass
}

// Position restituisce la posizione del corpo
func (pm *PointMass) Position() vector.Vector3 {
	return pm.position
}

// SetPosition imposta la posizione del corpo
func (pm *PointMass) SetPosition(pos vector.Vector3) {
	pm.position = pos
}

// Velocity restituisce la velocità del corpo
func (pm *PointMass) Velocity() vector.Vector3 {
	return pm.velocity
}

// SetVelocity imposta la velocità del corpo
func (pm *PointMass) SetVelocity(vel vector.Vector3) {
	pm.velocity = vel
}

// Force restituisce la forza accumulata sul corpo
func (pm *PointMass) Force() vector.Vector3 {
	return pm.force
}

// ApplyForce accumula una forza sul corpo
func (pm *PointMass) ApplyForce(force vector.Vector3) {
	pm.force = pm.force.Add(force)
}

// ResetForce azzera la forza accumulata
func (pm *PointMass) ResetForce() {
	pm.force = vector.Zero3()
}
