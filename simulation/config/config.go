// Package config fornisce la configurazione per la simulazione
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexanderi96/go-nbody/core/constants"
)

// Valori ammessi per il campo Method
const (
	// MethodNaive seleziona il valutatore diretto O(N^2)
	MethodNaive = "naive"
	// MethodBarnesHut seleziona il valutatore Barnes-Hut O(N log N)
	MethodBarnesHut = "barneshut"
)

// Valori ammessi per il campo Shape
const (
	// ShapeUniform seleziona la distribuzione casuale uniforme
	ShapeUniform = "uniform"
	// ShapeGalaxy seleziona la coppia di galassie controrotanti
	ShapeGalaxy = "galaxy"
)

// Config rappresenta la configurazione della simulazione
type Config struct {
	// Configurazione generale
	Bodies          int     `json:"bodies"`          // Numero di corpi ("galaxy": corpi per galassia, 2n+2 in totale)
	Steps           int     `json:"steps"`           // Numero di passi temporali
	TimeStep        float64 `json:"timeStep"`        // Passo temporale della simulazione
	Theta           float64 `json:"theta"`           // Parametro di accettazione Barnes-Hut (0 = esatto)
	GravityConstant float64 `json:"gravityConstant"` // Costante gravitazionale in unità di simulazione
	Method          string  `json:"method"`          // Valutatore di forze ("naive", "barneshut")

	// Configurazione delle condizioni iniziali
	Shape         string  `json:"shape"`         // Forma delle condizioni iniziali ("uniform", "galaxy")
	MassMin       float64 `json:"massMin"`       // Massa minima
	MassMax       float64 `json:"massMax"`       // Massa massima
	PositionRange float64 `json:"positionRange"` // Estensione delle posizioni iniziali
	VelocityRange float64 `json:"velocityRange"` // Estensione delle velocità iniziali (solo "uniform")
	Seed          uint64  `json:"seed"`          // Seme del generatore pseudocasuale

	// Configurazione dell'uscita
	OutputPath  string `json:"outputPath"`  // Percorso del file di traccia, vuoto per nessuna traccia
	LogInterval int    `json:"logInterval"` // Passi tra due log di avanzamento, 0 per disabilitare
}

// NewDefaultConfig crea una nuova configurazione con valori predefiniti
func NewDefaultConfig() *Config {
	return &Config{
		Bodies:          100,
		Steps:           1000,
		TimeStep:        constants.DefaultTimeStep,
		Theta:           constants.DefaultTheta,
		GravityConstant: 1.0,
		Method:          MethodBarnesHut,

		Shape:         ShapeUniform,
		MassMin:       1.0,
		MassMax:       10.0,
		PositionRange: 100.0,
		VelocityRange: 0.1,
		Seed:          1234,

		OutputPath:  "",
		LogInterval: 100,
	}
}

// Validate verifica che la configurazione sia coerente. Gli errori di
// validazione sono fatali e vengono riportati prima dell'inizio del ciclo
// di simulazione
func (c *Config) Validate() error {
	if c.Bodies <= 0 {
		return fmt.Errorf("config: bodies must be positive, got %d", c.Bodies)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: steps must be non-negative, got %d", c.Steps)
	}
	if c.TimeStep <= 0 || math.IsNaN(c.TimeStep) || math.IsInf(c.TimeStep, 0) {
		return fmt.Errorf("config: timeStep must be positive and finite, got %v", c.TimeStep)
	}
	if c.Theta < 0 || math.IsNaN(c.Theta) || math.IsInf(c.Theta, 0) {
		return fmt.Errorf("config: theta must be non-negative and finite, got %v", c.Theta)
	}
	if math.IsNaN(c.GravityConstant) || math.IsInf(c.GravityConstant, 0) {
		return fmt.Errorf("config: gravityConstant must be finite, got %v", c.GravityConstant)
	}
	if c.Method != MethodNaive && c.Method != MethodBarnesHut {
		return fmt.Errorf("config: unknown method %q", c.Method)
	}
	if c.Shape != ShapeUniform && c.Shape != ShapeGalaxy {
		return fmt.Errorf("config: unknown shape %q", c.Shape)
	}
	if c.MassMin <= 0 || math.IsNaN(c.MassMin) || math.IsInf(c.MassMin, 0) {
		return fmt.Errorf("config: massMin must be positive and finite, got %v", c.MassMin)
	}
	if c.MassMax < c.MassMin || math.IsNaN(c.MassMax) || math.IsInf(c.MassMax, 0) {
		return fmt.Errorf("config: massMax must be >= massMin, got %v", c.MassMax)
	}
	if c.PositionRange <= 0 || math.IsNaN(c.PositionRange) || math.IsInf(c.PositionRange, 0) {
		return fmt.Errorf("config: positionRange must be positive and finite, got %v", c.PositionRange)
	}
	if c.VelocityRange < 0 || math.IsNaN(c.VelocityRange) || math.IsInf(c.VelocityRange, 0) {
		return fmt.Errorf("config: velocityRange must be non-negative and finite, got %v", c.VelocityRange)
	}
	if c.LogInterval < 0 {
		return fmt.Errorf("config: logInterval must be non-negative, got %d", c.LogInterval)
	}
	return nil
}

// SaveToFile salva la configurazione su file
func (c *Config) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile carica la configurazione da file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = json.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// SimulationBuilder è un builder per la configurazione della simulazione
type SimulationBuilder struct {
	config *Config
}

// NewSimulationBuilder crea un nuovo builder per la simulazione
func NewSimulationBuilder() *SimulationBuilder {
	return &SimulationBuilder{
		config: NewDefaultConfig(),
	}
}

// WithBodies imposta il numero di corpi
func (b *SimulationBuilder) WithBodies(n int) *SimulationBuilder {
	b.config.Bodies = n
	return b
}

// WithSteps imposta il numero di passi
func (b *SimulationBuilder) WithSteps(steps int) *SimulationBuilder {
	b.config.Steps = steps
	return b
}

// WithTimeStep imposta il passo temporale
func (b *SimulationBuilder) WithTimeStep(timeStep float64) *SimulationBuilder {
	b.config.TimeStep = timeStep
	return b
}

// WithTheta imposta il parametro di accettazione Barnes-Hut
func (b *SimulationBuilder) WithTheta(theta float64) *SimulationBuilder {
	b.config.Theta = theta
	return b
}

// WithGravityConstant imposta la costante gravitazionale
func (b *SimulationBuilder) WithGravityConstant(g float64) *SimulationBuilder {
	b.config.GravityConstant = g
	return b
}

// WithMethod imposta il valutatore di forze
func (b *SimulationBuilder) WithMethod(method string) *SimulationBuilder {
	b.config.Method = method
	return b
}

// WithShape imposta la forma delle condizioni iniziali
func (b *SimulationBuilder) WithShape(shape string) *SimulationBuilder {
	b.config.Shape = shape
	return b
}

// WithMassRange imposta l'intervallo delle masse
func (b *SimulationBuilder) WithMassRange(min, max float64) *SimulationBuilder {
	b.config.MassMin = min
	b.config.MassMax = max
	return b
}

// WithPositionRange imposta l'estensione delle posizioni iniziali
func (b *SimulationBuilder) WithPositionRange(r float64) *SimulationBuilder {
	b.config.PositionRange = r
	return b
}

// WithVelocityRange imposta l'estensione delle velocità iniziali
func (b *SimulationBuilder) WithVelocityRange(r float64) *SimulationBuilder {
	b.config.VelocityRange = r
	return b
}

// WithSeed imposta il seme del generatore pseudocasuale
func (b *SimulationBuilder) WithSeed(seed uint64) *SimulationBuilder {
	b.config.Seed = seed
	return b
}

// WithOutputPath imposta il percorso del file di traccia
func (b *SimulationBuilder) WithOutputPath(path string) *SimulationBuilder {
	b.config.OutputPath = path
	return b
}

// WithLogInterval imposta l'intervallo di log di avanzamento
func (b *SimulationBuilder) WithLogInterval(interval int) *SimulationBuilder {
	b.config.LogInterval = interval
	return b
}

// Build restituisce la configurazione
func (b *SimulationBuilder) Build() *Config {
	return b.config
}
