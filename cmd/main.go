package main

import (
	"log"
	"os"
	"strings"

	"github.com/auxroom/auxroom-api/app"
	"github.com/auxroom/auxroom-api/engine"
	"github.com/auxroom/auxroom-api/version"
	"gopkg.in/yaml.v3"
)

func main() {
	v := version.Get()
	bytes, err := yaml.Marshal(v)
	if err != nil {
		log.Panicf("marshal version data: %s", err)
	}
	log.Println("version:\n" + string(bytes))

	a := app.App{}
	a.Initialize()

	addr := "0.0.0.0:8080"

	shouldRunEngine := true

	for _, arg := range os.Args {
		if arg == "--no-engine" {
			shouldRunEngine = false
			continue
		}

		if specifiedAddr, ok := strings.CutPrefix(arg, "--addr="); ok {
			addr = specifiedAddr
		}
	}

	if shouldRunEngine {
		go engine.Run(a.Hub)
	}

	a.Run(addr)
}
