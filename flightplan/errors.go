package flightplan

import "errors"

// ErrNilInstance indicates Run was called with a nil *core.Instance.
var ErrNilInstance = errors.New("flightplan: instance must not be nil")
