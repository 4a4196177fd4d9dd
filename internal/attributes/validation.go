package attributes

import (
	"errors"
	"fmt"

	"github.com/concave-dev/scalaris-pic/internal/validate"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid scalaris attributes")

// Validate checks the record before it is handed to a consumer:
//   - ports are in 1-65535
//   - the node name has the form name@host
//   - the management server and every known host carry an IP and a valid port
//   - at least one known host is listed
//   - nodes per VM and the request size ceiling are positive
//   - users have a name and password, and names are unique
//
// An empty user list is valid and means no access restriction.
func (c NodeDefaultConfig) Validate() error {
	if err := validate.ValidateStruct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalid, describeFieldError(verrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := validate.NodeNameFormat(c.Node); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// describeFieldError renders a validator failure without echoing the value,
// since the failing field may be a password.
func describeFieldError(fe validator.FieldError) string {
	field := fe.StructNamespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "ip":
		return fmt.Sprintf("%s must be an IP address", field)
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not repeat %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q rule", field, fe.Tag())
	}
}
