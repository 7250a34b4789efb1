// Command legion-validate replays a recorded expansion trace into a fresh
// tree and audits every invariant from spec.md section 3 against the
// result, for regression-checking a harness's queue/region bookkeeping
// independent of a live fuzzing run.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/legionfuzz/mcts/replay"
	"github.com/legionfuzz/mcts/session"
)

var (
	configPath = flag.String("config", "", "optional YAML config file (AFLNET_LEGION_ env vars always apply)")
	tracePath  = flag.String("trace", "", "JSON file: array of {\"queue\": replay.QueueEntry, \"codes\": []uint32} expansion steps")
)

type traceStep struct {
	Queue *replay.QueueEntry `json:"queue"`
	Codes []uint32           `json:"codes"`
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	if *tracePath == "" {
		log.Fatal("legion-validate: -trace is required")
	}

	b, err := os.ReadFile(*tracePath)
	if err != nil {
		log.Fatalf("legion-validate: reading trace: %s", err)
	}
	var steps []traceStep
	if err := json.Unmarshal(b, &steps); err != nil {
		log.Fatalf("legion-validate: parsing trace: %s", err)
	}

	sess, err := session.New(*configPath)
	if err != nil {
		log.Fatalf("legion-validate: initialising session: %s", err)
	}
	defer sess.Close()

	for i, step := range steps {
		sess.Expand(step.Queue, step.Codes)
		if err := sess.Tree().CheckInvariants(); err != nil {
			log.Fatalf("legion-validate: invariant violated after step %d: %s", i, err)
		}
	}

	log.Printf("legion-validate: %d steps OK, %d nodes", len(steps), sess.Tree().Report().NodeCount)
}
