package search

// Run is a live step sequence: a lazy, finite, non-restartable series of
// observation points. The caller pulls at its own pace; abandoning the run
// is simply calling Close (or dropping it after exhaustion). No search work
// happens outside Next.
type Run struct {
	agent     *Agent
	algorithm Algorithm
	next      func() (Snapshot, bool)
	stop      func()
	done      bool
}

// Algorithm returns the strategy this run executes.
func (r *Run) Algorithm() Algorithm { return r.algorithm }

// Next advances the search to its next observation point and returns an
// independent snapshot of engine state. It returns false once the sequence
// is exhausted; the final outcome is then available from Outcome.
func (r *Run) Next() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	snap, ok := r.next()
	if !ok {
		r.finish()

		return Snapshot{}, false
	}

	return snap, true
}

// Close cancels the run. Remaining steps are discarded and the agent
// becomes free to start a new run. Closing an exhausted run is a no-op.
func (r *Run) Close() {
	if r.done {
		return
	}
	r.stop()
	r.finish()
}

// Outcome reports the run result: success flag, final path, total path
// cost, failure reason, and the nodes-explored count. Before exhaustion it
// reflects the run's progress so far.
func (r *Run) Outcome() Outcome {
	return r.agent.outcome()
}

func (r *Run) finish() {
	r.done = true
	r.agent.active = false
}
