package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/ymlai/tracker/cmd"
)

// completion describes the command tree for shell completion. It must run
// before flag parsing: in completion mode it prints candidates and exits.
func completion() {
	trade := &complete.Command{Flags: map[string]complete.Predictor{
		"d":    predict.Something,
		"t":    predict.Something,
		"n":    predict.Something,
		"m":    predict.Set{"DOMESTIC", "FOREIGN"},
		"p":    predict.Something,
		"q":    predict.Something,
		"fund": predict.Nothing,
	}}
	byField := &complete.Command{Flags: map[string]complete.Predictor{
		"by": predict.Something,
	}}
	trk := &complete.Command{
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"buy":      trade,
			"sell":     trade,
			"delete":   {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"purge":    {Flags: map[string]complete.Predictor{"t": predict.Something}},
			"price":    {Flags: map[string]complete.Predictor{"t": predict.Something, "p": predict.Something, "fetch": predict.Nothing}},
			"holdings": byField,
			"realized": byField,
			"log":      {Flags: map[string]complete.Predictor{"t": predict.Something}},
			"fmt":      {},
		},
	}
	trk.Complete("trk")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
