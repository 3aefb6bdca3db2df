package playback

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kavindamihiran/ai-search/graph"
	"github.com/kavindamihiran/ai-search/graphio"
	"github.com/kavindamihiran/ai-search/search"
)

// Sentinel errors for session lookups.
var (
	// ErrGraphNotFound indicates an unknown graph session id.
	ErrGraphNotFound = errors.New("playback: graph not found")

	// ErrRunNotFound indicates an unknown run session id.
	ErrRunNotFound = errors.New("playback: run not found")
)

// RunConfig describes a run to start: the algorithm identifier, the source
// node, the goal set, and the optional depth parameters of the
// depth-limited and iterative-deepening strategies.
type RunConfig struct {
	Algorithm  string   `json:"algorithm"`
	Source     string   `json:"source"`
	Goals      []string `json:"goals"`
	DepthLimit *int     `json:"depth_limit,omitempty"`
	MaxDepth   *int     `json:"max_depth,omitempty"`
}

// runSession is one live (or finished) run over a stored graph.
type runSession struct {
	graphID string
	run     *search.Run
	last    search.Snapshot
	ended   bool
}

// Store holds graph and run sessions behind a single mutex, serializing
// every operation as the engine requires.
type Store struct {
	mu        sync.Mutex
	graphs    map[string]*graph.Graph
	runs      map[string]*runSession
	activeRun map[string]string // graph id → live run id
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{
		graphs:    make(map[string]*graph.Graph),
		runs:      make(map[string]*runSession),
		activeRun: make(map[string]string),
	}
}

// CreateGraph decodes a graph document and registers it under a fresh id.
func (s *Store) CreateGraph(doc []byte) (string, error) {
	g, err := graphio.Unmarshal(doc)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.graphs[id] = g

	return id, nil
}

// GraphDoc returns the current serialized form of a stored graph,
// including whatever display states the latest run has left on it.
func (s *Store) GraphDoc(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.graphs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGraphNotFound, id)
	}

	return graphio.Marshal(g)
}

// DeleteGraph removes a graph and cancels any run still live on it.
func (s *Store) DeleteGraph(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.graphs[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGraphNotFound, id)
	}
	if runID, ok := s.activeRun[id]; ok {
		s.closeRunLocked(runID)
	}
	delete(s.graphs, id)

	return nil
}

// StartRun starts a run on a stored graph and returns its session id.
// A run already live on the same graph is cancelled first — graph node
// states are mutated in place, so two interleaved runs would corrupt each
// other.
func (s *Store) StartRun(graphID string, cfg RunConfig) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.graphs[graphID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGraphNotFound, graphID)
	}

	algo, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return "", err
	}
	agent, err := search.NewAgent(g, cfg.Source, cfg.Goals...)
	if err != nil {
		return "", err
	}
	var opts []search.Option
	if cfg.DepthLimit != nil {
		opts = append(opts, search.WithDepthLimit(*cfg.DepthLimit))
	}
	if cfg.MaxDepth != nil {
		opts = append(opts, search.WithMaxDepth(*cfg.MaxDepth))
	}

	if prev, ok := s.activeRun[graphID]; ok {
		s.closeRunLocked(prev)
	}

	run, err := agent.Run(algo, opts...)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.runs[id] = &runSession{graphID: graphID, run: run}
	s.activeRun[graphID] = id

	return id, nil
}

// Step pulls the next observation point of a run. Once the sequence is
// exhausted it keeps returning the terminal snapshot with done=true.
func (s *Store) Step(runID string) (search.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.runs[runID]
	if !ok {
		return search.Snapshot{}, false, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if sess.ended {
		return sess.last, true, nil
	}

	snap, more := sess.run.Next()
	if !more {
		sess.ended = true
		delete(s.activeRun, sess.graphID)
		if !sess.last.Done {
			// the sequence ended without a terminal observation point
			// (a no-goal run yields nothing); synthesize one so clients
			// still see the algorithm and the failure classification
			outcome := sess.run.Outcome()
			sess.last = search.Snapshot{
				Algorithm:     sess.run.Algorithm(),
				Path:          outcome.Path,
				NodesExplored: outcome.NodesExplored,
				Success:       outcome.Success,
				Reason:        outcome.Reason,
				Done:          true,
			}
		}

		return sess.last, true, nil
	}
	sess.last = snap
	if snap.Done {
		// terminal observation point: release the agent without pulling again
		sess.run.Close()
		sess.ended = true
		delete(s.activeRun, sess.graphID)
	}

	return snap, sess.ended, nil
}

// Latest returns the most recent snapshot of a run and whether it ended.
func (s *Store) Latest(runID string) (search.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.runs[runID]
	if !ok {
		return search.Snapshot{}, false, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return sess.last, sess.ended, nil
}

// Outcome reports the run result so far (final once the run ended).
func (s *Store) Outcome(runID string) (search.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.runs[runID]
	if !ok {
		return search.Outcome{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return sess.run.Outcome(), nil
}

// CancelRun abandons a run: remaining steps are discarded and the session
// removed.
func (s *Store) CancelRun(runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[runID]; !ok {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	s.closeRunLocked(runID)

	return nil
}

// closeRunLocked closes and forgets a run session. Caller holds s.mu.
func (s *Store) closeRunLocked(runID string) {
	sess, ok := s.runs[runID]
	if !ok {
		return
	}
	sess.run.Close()
	if s.activeRun[sess.graphID] == runID {
		delete(s.activeRun, sess.graphID)
	}
	delete(s.runs, runID)
}
