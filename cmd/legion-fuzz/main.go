// Command legion-fuzz drives a fuzzing session's MCTS rounds against a
// directory of recorded queue entries, replaying each chosen seed through
// an external protocol harness named on the command line.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/exec"

	"github.com/legionfuzz/mcts/replay"
	"github.com/legionfuzz/mcts/session"
)

var (
	configPath = flag.String("config", "", "optional YAML config file (AFLNET_LEGION_ env vars always apply)")
	queuePath  = flag.String("queue", "", "JSON file describing the recorded queue entries to select from")
	harness    = flag.String("harness", "", "executable that replays a queue entry and prints a response-code sequence as JSON")
	rounds     = flag.Uint64("rounds", 0, "stop after this many rounds (0 = run until the search space is exhausted)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	if *queuePath == "" || *harness == "" {
		log.Fatal("legion-fuzz: -queue and -harness are required")
	}

	queue, err := loadQueue(*queuePath)
	if err != nil {
		log.Fatalf("legion-fuzz: loading queue: %s", err)
	}

	sess, err := session.New(*configPath)
	if err != nil {
		log.Fatalf("legion-fuzz: initialising session: %s", err)
	}
	defer sess.Close()

	// Bootstrap round: walk each recorded queue entry's longest known
	// region once, so the tree and its seed pools exist before the first
	// Selection call. This is the dry run spec.md section 4.7 says skips
	// Propagation.
	for _, q := range queue {
		if len(q.Regions) == 0 {
			continue
		}
		longest := q.Regions[len(q.Regions)-1]
		sess.Expand(q, longest.StateSequence[:longest.StateCount])
	}

	for round := uint64(0); *rounds == 0 || round < *rounds; round++ {
		r, err := sess.Select()
		if err != nil {
			log.Printf("legion-fuzz: search space exhausted after %d rounds: %s", round, err)
			break
		}
		seed, err := sess.Simulate(r)
		if err != nil {
			log.Fatalf("legion-fuzz: %s", err)
		}

		codes, err := replayHarness(*harness, seed.Queue.Filename)
		if err != nil {
			log.Printf("legion-fuzz: round %d: harness failed: %s", round, err)
			continue
		}

		_, isNew := sess.Expand(seed.Queue, codes)
		sess.Propagate(r, isNew)
	}

	log.Printf("legion-fuzz: completed %d rounds", sess.Rounds())
}

// loadQueue reads a JSON-encoded array of replay.QueueEntry records.
func loadQueue(path string) ([]*replay.QueueEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []*replay.QueueEntry
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// replayHarness shells out to harness, passing the queue entry's filename,
// and parses its stdout as a JSON array of response codes.
func replayHarness(harness, filename string) ([]uint32, error) {
	cmd := exec.Command(harness, filename)
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	var codes []uint32
	if err := json.Unmarshal(out, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}
