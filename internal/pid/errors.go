package pid

import "github.com/zeebo/errs"

var (
	// Invalid is the class of malformed requests and unparsable inputs.
	Invalid = errs.Class("invalid request")

	// Unsatisfiable is the class of requests no PID can meet, either
	// detected up front or by running out of attempts.
	Unsatisfiable = errs.Class("unsatisfiable")
)
