package flightsvg

import "errors"

// ErrNilInstance indicates Render was called with a nil *core.Instance.
var ErrNilInstance = errors.New("flightsvg: instance must not be nil")

// ErrNilPlan indicates Render was called with a nil *flightplan.Plan.
var ErrNilPlan = errors.New("flightsvg: plan must not be nil")
