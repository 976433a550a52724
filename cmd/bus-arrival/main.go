package main

import (
	"flag"
	"log"

	lib "github.com/theoremus-urban-solutions/bus-arrival"
	"github.com/theoremus-urban-solutions/bus-arrival/artifacts"
	"github.com/theoremus-urban-solutions/bus-arrival/predictor"
	"github.com/theoremus-urban-solutions/bus-arrival/training"
)

func main() {
	mode := flag.String("mode", "serve", "train|serve")
	records := flag.Int("records", 0, "training records to generate (overrides config)")
	seed := flag.Uint64("seed", 0, "training random seed (overrides config)")
	export := flag.String("export", "", "CSV path to export the generated dataset (train mode)")
	artifactPath := flag.String("artifacts", "", "artifact bundle path (overrides config)")
	flag.Parse()

	lib.InitLogging()
	if err := lib.LoadAppConfig(); err != nil {
		panic(err)
	}

	path := lib.Config.Artifacts.Path
	if *artifactPath != "" {
		path = *artifactPath
	}

	switch *mode {
	case "train":
		trainer := training.Trainer{
			Records:      lib.Config.Training.Records,
			Seed:         lib.Config.Training.Seed,
			Alpha:        lib.Config.Training.RidgeAlpha,
			ArtifactPath: path,
			DatasetPath:  lib.Config.Training.DatasetPath,
		}
		if *records > 0 {
			trainer.Records = *records
		}
		if *seed > 0 {
			trainer.Seed = *seed
		}
		if *export != "" {
			trainer.DatasetPath = *export
		}
		if _, err := trainer.Run(); err != nil {
			log.Fatalf("training failed: %v", err)
		}
	case "serve":
		set, err := artifacts.Load(path)
		if err != nil {
			log.Fatalf("cannot start: %v (run with -mode train first)", err)
		}
		svc, err := predictor.NewService(set)
		if err != nil {
			log.Fatalf("cannot start: %v", err)
		}
		log.Printf("artifact set loaded from %s", path)
		lib.StartServer(svc)
		lib.HandleGracefulShutdown()
	default:
		panic("unknown mode")
	}
}
