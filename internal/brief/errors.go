package brief

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is returned when a brief request is missing
// required input. The wrapped message names the field.
var ErrInvalidRequest = errors.New("invalid brief request")

// ParseError reports which sections could not be located in the model
// output. The caller never receives a partially filled brief.
type ParseError struct {
	Missing []SectionID
}

func (e *ParseError) Error() string {
	labels := make([]string, len(e.Missing))
	for i, id := range e.Missing {
		labels[i] = string(id)
	}
	return fmt.Sprintf("model output missing %d of %d sections: %s",
		len(e.Missing), len(SectionOrder), strings.Join(labels, ", "))
}
