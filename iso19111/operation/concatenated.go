package operation

import "github.com/flywave/go-crs/crserr"

// ConcatenatedOperation is an ordered list of sub-operations; its source
// is the first sub's source, its target is the last sub's target, and
// adjacency must match: step i's target equals step i+1's source.
type ConcatenatedOperation struct {
	CoordinateOperation
	Steps []*CoordinateOperation
}

// NewConcatenatedOperation validates adjacency and builds the
// concatenated operation.
func NewConcatenatedOperation(name string, steps []*CoordinateOperation) (*ConcatenatedOperation, error) {
	if len(steps) < 2 {
		return nil, crserr.New(crserr.InvariantViolation, "concatenated operation requires at least two steps")
	}
	for i := 0; i < len(steps)-1; i++ {
		if steps[i].TargetCRS == nil || steps[i+1].SourceCRS == nil {
			continue // opaque steps from unknown methods are tolerated
		}
		if steps[i].TargetCRS.CRSName() != steps[i+1].SourceCRS.CRSName() {
			return nil, crserr.Newf(crserr.InvariantViolation, "concatenated operation step %d target %q does not match step %d source %q",
				i, steps[i].TargetCRS.CRSName(), i+1, steps[i+1].SourceCRS.CRSName())
		}
	}
	op := &ConcatenatedOperation{
		CoordinateOperation: CoordinateOperation{
			IdentifiedObject: steps[0].IdentifiedObject,
			SourceCRS:        steps[0].SourceCRS,
			TargetCRS:        steps[len(steps)-1].TargetCRS,
		},
		Steps: steps,
	}
	op.Name = name
	return op, nil
}
