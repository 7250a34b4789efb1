// Command legion-graph replays a recorded expansion trace into a fresh
// tree and renders the result as a Graphviz DOT file, for visual
// inspection of fully-explored subtrees and score distributions without
// needing a live fuzzing harness (the core never persists a tree across
// runs, so there is nothing to load but a trace to replay).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/legionfuzz/mcts/replay"
	"github.com/legionfuzz/mcts/session"
)

var (
	configPath = flag.String("config", "", "optional YAML config file (AFLNET_LEGION_ env vars always apply)")
	tracePath  = flag.String("trace", "", "JSON file: array of {\"queue\": replay.QueueEntry, \"codes\": []uint32} expansion steps")
	out        = flag.String("out", "", "write DOT output here instead of stdout")
)

// traceStep is one recorded Expansion call to replay.
type traceStep struct {
	Queue *replay.QueueEntry `json:"queue"`
	Codes []uint32           `json:"codes"`
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	if *tracePath == "" {
		log.Fatal("legion-graph: -trace is required")
	}

	steps, err := loadTrace(*tracePath)
	if err != nil {
		log.Fatalf("legion-graph: loading trace: %s", err)
	}

	sess, err := session.New(*configPath)
	if err != nil {
		log.Fatalf("legion-graph: initialising session: %s", err)
	}
	defer sess.Close()

	for _, step := range steps {
		sess.Expand(step.Queue, step.Codes)
	}

	dot, err := sess.Tree().DOT()
	if err != nil {
		log.Fatalf("legion-graph: rendering graph: %s", err)
	}

	report := sess.Tree().Report()
	fmt.Fprintf(os.Stderr, "nodes=%d golden=%d fully_explored=%d mean_selected=%.2f mean_discovered=%.2f\n",
		report.NodeCount, report.GoldenCount, report.FullyExploredCount, report.MeanSelected, report.MeanDiscovered)

	if *out == "" {
		fmt.Println(dot)
		return
	}
	if err := os.WriteFile(*out, []byte(dot), 0644); err != nil {
		log.Fatalf("legion-graph: writing %s: %s", *out, err)
	}
}

func loadTrace(path string) ([]traceStep, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var steps []traceStep
	if err := json.Unmarshal(b, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}
