package config

import (
	"fmt"
)

func errInvalidType(section, value string) error {
	return fmt.Errorf("invalid %s type: %q", section, value)
}
