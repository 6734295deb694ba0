package saturation

import "fmt"

func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
