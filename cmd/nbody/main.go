// Package main fornisce il driver a riga di comando per la simulazione
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/alexanderi96/go-nbody/physics/body"
	"github.com/alexanderi96/go-nbody/simulation/config"
	"github.com/alexanderi96/go-nbody/simulation/engine"
	"github.com/alexanderi96/go-nbody/simulation/icgen"
	"github.com/alexanderi96/go-nbody/simulation/trace"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("nbody: %v", err)
	}
}

func run() error {
	cfg := config.NewDefaultConfig()

	configPath := flag.String("config", "", "percorso di un file di configurazione JSON")
	saveConfig := flag.String("save-config", "", "salva la configurazione effettiva su file ed esce")

	n := flag.Int("n", cfg.Bodies, "numero di corpi (galaxy: corpi per galassia, 2n+2 in totale)")
	steps := flag.Int("steps", cfg.Steps, "numero di passi temporali")
	dt := flag.Float64("dt", cfg.TimeStep, "passo temporale")
	theta := flag.Float64("theta", cfg.Theta, "parametro di accettazione Barnes-Hut (0 = esatto)")
	g := flag.Float64("g", cfg.GravityConstant, "costante gravitazionale")
	method := flag.String("method", cfg.Method, "valutatore di forze: naive o barneshut")
	shape := flag.String("shape", cfg.Shape, "condizioni iniziali: uniform o galaxy")
	massMin := flag.Float64("mass-min", cfg.MassMin, "massa minima")
	massMax := flag.Float64("mass-max", cfg.MassMax, "massa massima")
	posRange := flag.Float64("pos-range", cfg.PositionRange, "estensione delle posizioni iniziali")
	velRange := flag.Float64("vel-range", cfg.VelocityRange, "estensione delle velocità iniziali (solo uniform)")
	seed := flag.Uint64("seed", cfg.Seed, "seme del generatore pseudocasuale")
	output := flag.String("o", cfg.OutputPath, "percorso del file di traccia CSV (vuoto: nessuna traccia)")
	logInterval := flag.Int("log-interval", cfg.LogInterval, "passi tra due log di avanzamento (0: disabilitato)")

	flag.Parse()

	// Il file di configurazione, se presente, fornisce la base; i flag
	// esplicitamente passati sulla riga di comando hanno la precedenza
	if *configPath != "" {
		loaded, err := config.LoadFromFile(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Bodies = *n
		case "steps":
			cfg.Steps = *steps
		case "dt":
			cfg.TimeStep = *dt
		case "theta":
			cfg.Theta = *theta
		case "g":
			cfg.GravityConstant = *g
		case "method":
			cfg.Method = *method
		case "shape":
			cfg.Shape = *shape
		case "mass-min":
			cfg.MassMin = *massMin
		case "mass-max":
			cfg.MassMax = *massMax
		case "pos-range":
			cfg.PositionRange = *posRange
		case "vel-range":
			cfg.VelocityRange = *velRange
		case "seed":
			cfg.Seed = *seed
		case "o":
			cfg.OutputPath = *output
		case "log-interval":
			cfg.LogInterval = *logInterval
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	if *saveConfig != "" {
		if err := cfg.SaveToFile(*saveConfig); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		log.Printf("Configurazione salvata in %s", *saveConfig)
		return nil
	}

	// Genera le condizioni iniziali
	var bodies []body.Body
	switch cfg.Shape {
	case config.ShapeUniform:
		bodies = icgen.UniformRandom(cfg.Bodies, cfg.MassMin, cfg.MassMax, cfg.PositionRange, cfg.VelocityRange, cfg.Seed)
	case config.ShapeGalaxy:
		bodies = icgen.TwinGalaxies(cfg.Bodies, cfg.MassMin, cfg.MassMax, cfg.PositionRange, cfg.Seed)
	}

	// Crea la traccia, se richiesta
	var sink trace.Sink
	var csv *trace.CSVSink
	if cfg.OutputPath != "" {
		var err error
		csv, err = trace.NewCSVSink(cfg.OutputPath)
		if err != nil {
			return err
		}
		sink = csv
	}

	sim, err := engine.New(bodies, cfg.GravityConstant, cfg.TimeStep, sink)
	if err != nil {
		if csv != nil {
			csv.Close()
		}
		return err
	}

	log.Printf("Simulazione di %d corpi per %d passi (metodo %s, dt=%g, theta=%g, seed=%d)",
		len(bodies), cfg.Steps, cfg.Method, cfg.TimeStep, cfg.Theta, cfg.Seed)

	for step := 0; step < cfg.Steps; step++ {
		switch cfg.Method {
		case config.MethodNaive:
			err = sim.StepNaive()
		case config.MethodBarnesHut:
			err = sim.StepBarnesHut(cfg.Theta)
		}
		if err != nil {
			if csv != nil {
				csv.Close()
			}
			return err
		}

		if cfg.LogInterval > 0 && step%cfg.LogInterval == 0 {
			p := sim.Bodies()[0].Position()
			log.Printf("Passo %d: primo corpo in (%.4f, %.4f, %.4f)", step, p.X(), p.Y(), p.Z())
		}
	}

	if csv != nil {
		if err := csv.Close(); err != nil {
			return err
		}
	}

	log.Printf("Completati %d passi, tempo simulato %g", sim.StepCount(), sim.Time())
	return nil
}
