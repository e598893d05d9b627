package datum

import "github.com/flywave/go-crs/crserr"

var errEmptyEnsemble = crserr.New(crserr.InvariantViolation, "datum ensemble must have at least one member")
