// Package playback keeps uuid-keyed graph and run sessions for external
// playback drivers such as the HTTP server.
//
// The engine itself supports exactly one live run per graph and expects
// callers to serialize access; Store is that serialization point. All
// operations go through one mutex, and starting a new run on a graph
// cancels whatever run was previously live on it. Auto-play pacing,
// scrubbing and rendering remain entirely the driver's concern — the store
// only pulls steps on demand and hands back snapshot copies.
package playback
