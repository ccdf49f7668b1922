package matching

import (
	"fmt"
	"time"

	"github.com/CERNDocumentServer/cds-beard/pkg/solver"
)

// Result represents the outcome of one matching run. Every before-key
// appears in exactly one of Matched or Removed; every after-key in exactly
// one of Matched or New. Buckets are sorted in canonical key order.
type Result[B comparable, A comparable] struct {
	// Matched pairs a before-cluster with the after-cluster it continues as.
	Matched []solver.Pair[B, A] `json:"matched" yaml:"matched"`

	// New lists after-clusters with no real predecessor.
	New []A `json:"new" yaml:"new"`

	// Removed lists before-clusters with no successor.
	Removed []B `json:"removed" yaml:"removed"`

	// Metadata about the run.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Metadata contains metadata about the matching run.
type Metadata struct {
	// StartTime when the run started
	StartTime time.Time `json:"start_time" yaml:"start_time"`

	// EndTime when the run completed
	EndTime time.Time `json:"end_time" yaml:"end_time"`

	// Duration of the run
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Subproblems the run was divided into
	Subproblems int `json:"subproblems" yaml:"subproblems"`

	// Stats about the input partitions
	Stats Statistics `json:"stats" yaml:"stats"`
}

// Statistics summarizes the input of a matching run.
type Statistics struct {
	BeforeClusters int `json:"before_clusters" yaml:"before_clusters"`
	AfterClusters  int `json:"after_clusters" yaml:"after_clusters"`
	Items          int `json:"items" yaml:"items"`
}

// HasChanges reports whether any cluster appeared or disappeared.
func (r *Result[B, A]) HasChanges() bool {
	return len(r.New) > 0 || len(r.Removed) > 0
}

// Summary returns a one-line description of the run outcome.
func (r *Result[B, A]) Summary() string {
	return fmt.Sprintf("%d matched, %d new, %d removed",
		len(r.Matched), len(r.New), len(r.Removed))
}
