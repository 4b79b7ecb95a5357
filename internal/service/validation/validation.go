package validation

import (
	"strings"

	"github.com/corray333/grubdash/internal/service/errs"
	"github.com/corray333/grubdash/internal/service/models/payload"
	"github.com/go-playground/validator/v10"
)

// Step is a single check. It returns nil to let the chain continue.
type Step func() error

// Run evaluates steps in order and returns the first failure.
// Steps after a failure are not evaluated.
func Run(steps ...Step) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

var validate = validator.New()

// BodyHas fails when the field is absent or falsy.
func BodyHas(p payload.Payload, field string) Step {
	return func() error {
		if p.Has(field) {
			return nil
		}

		return errs.InvalidInput("Must include a %s", field)
	}
}

// SameID fails when the payload carries an id that differs from the route id.
// An absent id is accepted.
func SameID(resource, routeID string, p payload.Payload) Step {
	return func() error {
		id := p["id"]
		if !payload.Truthy(id) {
			return nil
		}
		if s, ok := id.(string); ok && s == routeID {
			return nil
		}

		return errs.InvalidInput(
			"%s id does not match route id. %s: %s, Route: %s",
			resource, resource, p.Text("id"), routeID,
		)
	}
}

// PositiveInteger reports whether v is an integral number greater than zero.
// Magnitude is not limited.
func PositiveInteger(v any) bool {
	if !payload.IsInteger(v) {
		return false
	}
	n, _ := payload.Number(v)

	return validate.Var(n, "gt=0") == nil
}

// OneOf reports whether value equals one of allowed.
func OneOf(value string, allowed ...string) bool {
	if len(allowed) == 0 {
		return false
	}

	return validate.Var(value, "oneof="+strings.Join(allowed, " ")) == nil
}
