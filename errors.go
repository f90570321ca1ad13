package colortable

import "github.com/sanjeekswipro/colortable/core"

// Re-exported so callers can errors.Is against colortable.ErrX without
// importing core directly (core remains an internal dependency seam).
var (
	ErrConfigError     = core.ErrConfigError
	ErrOutOfMemory     = core.ErrOutOfMemory
	ErrEvaluatorFailed = core.ErrEvaluatorFailed
)
