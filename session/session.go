// Package session wires a Tree, its config, and its log sink together
// into the per-round entry points a fuzzer host drives: Selection,
// Simulation, Expansion, and Propagation (spec.md section 6).
package session

import (
	"github.com/pkg/errors"

	"github.com/legionfuzz/mcts/config"
	"github.com/legionfuzz/mcts/replay"
	"github.com/legionfuzz/mcts/tree"
)

// Session owns one Tree for the lifetime of a fuzzing run. It is not
// safe for concurrent use: the core is single-threaded and non-reentrant,
// and a round must run to completion before the next begins.
type Session struct {
	tree   *tree.Tree
	log    *tree.Logger
	cfg    config.Config
	rounds uint64
}

// New runs Initialisation (spec.md section 4.1): it loads config from
// cfgPath (empty for defaults plus environment overrides only), opens the
// log sink named by AFLNET_LEGION_LOG, and allocates a fresh tree with its
// White root and Golden simulation child.
func New(cfgPath string) (*Session, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, errors.Wrap(err, "session: loading config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "session: invalid config")
	}

	log, err := tree.OpenLogger()
	if err != nil {
		return nil, errors.Wrap(err, "session: opening log sink")
	}

	return &Session{
		tree: tree.New(cfg, log),
		log:  log,
		cfg:  cfg,
	}, nil
}

// Close releases the session's log sink.
func (s *Session) Close() error {
	return s.log.Close()
}

// Config returns the session's resolved configuration.
func (s *Session) Config() config.Config { return s.cfg }

// Tree exposes the underlying search tree, for the graph and validate
// CLIs and for tests.
func (s *Session) Tree() *tree.Tree { return s.tree }

// Round is the result of one Selection call: the Golden node chosen as
// the simulation target and the stable index of the seed to mutate and
// replay within that node's pool. It deliberately does not retain a
// *tree.Seed: the Expand call between Select and Propagate may append to
// the same Golden node's seed pool and reallocate its backing array
// (spec.md section 5), so every later lookup re-fetches through
// SeedIndex instead.
type Round struct {
	Golden    tree.NodeIndex
	SeedIndex int
}

// Select runs Selection (spec.md section 4.3) against the session's root.
// ErrEmptySearchSpace is returned verbatim once the whole tree is
// exhausted; the caller must stop fuzzing.
func (s *Session) Select() (Round, error) {
	golden, seed, err := tree.Selection(s.tree)
	if err != nil {
		return Round{}, err
	}
	return Round{Golden: golden, SeedIndex: seed.ParentIndex}, nil
}

// Simulate asserts the round's node is Golden (spec.md section 4.4). The
// host performs the actual mutation and replay; the core only hands back
// the opaque seed reference for it to act on.
func (s *Session) Simulate(r Round) (*tree.Seed, error) {
	if s.tree.Node(r.Golden).Colour() != tree.Golden {
		return nil, errors.Errorf("session: simulation target %d is not golden", s.tree.Node(r.Golden).ID())
	}
	return s.tree.Seed(r.Golden, r.SeedIndex), nil
}

// Expand runs Expansion from the session's root over the observed
// response-code sequence produced by replaying q (spec.md section 4.5).
func (s *Session) Expand(q *replay.QueueEntry, codes []uint32) (tree.NodeIndex, bool) {
	return tree.Expansion(s.tree, s.tree.Root(), q, codes)
}

// Propagate runs Propagation for the round just completed (spec.md section
// 4.7). The caller must skip this call entirely on the session's very
// first, dry-run round.
func (s *Session) Propagate(r Round, isNew bool) {
	s.rounds++
	tree.Propagation(s.tree, r.Golden, r.SeedIndex, isNew)
}

// Rounds is the number of completed Propagation calls, for diagnostics.
func (s *Session) Rounds() uint64 { return s.rounds }
