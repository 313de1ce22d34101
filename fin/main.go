package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/finchdev/finch/cmd"
)

// completion describes the CLI for shell completion. Install with
// COMP_INSTALL=1 fin.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"api-url": predict.Nothing,
		"user":    predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"dashboard":  {},
		"summary":    {Flags: map[string]complete.Predictor{"m": predict.Nothing}},
		"categories": {},
		"income": {Flags: map[string]complete.Predictor{
			"amount": predict.Nothing,
			"source": predict.Nothing,
		}},
		"expense": {Flags: map[string]complete.Predictor{
			"amount":   predict.Nothing,
			"desc":     predict.Nothing,
			"category": predict.Nothing,
		}},
		"rm-expense": {},
		"signup": {Flags: map[string]complete.Predictor{
			"name":   predict.Nothing,
			"email":  predict.Nothing,
			"budget": predict.Nothing,
		}},
		"budget": {Flags: map[string]complete.Predictor{"set": predict.Nothing}},
		"assist": {},
	},
}

func main() {
	// Local overrides (FIN_API_URL, FIN_USER, Gemini credentials).
	_ = godotenv.Load()

	completion.Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
