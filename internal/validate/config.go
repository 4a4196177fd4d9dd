package validate

import (
	"fmt"
)

// ValidatePortRange validates that a port number is within 1-65535. Port 0
// (OS-assigned) is rejected since peers need a predictable port.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositive validates that an integer setting is at least 1.
func ValidatePositive(value int, name string) error {
	if err := ValidateField(value, "min=1"); err != nil {
		return fmt.Errorf("%s must be positive, got %d", name, value)
	}
	return nil
}
