package runner

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUsage = errors.New("expected three arguments: input file, output file, depth")

// ParseInvocation reads input file, output file and depth, in that order.
func ParseInvocation(args []string) (*Invocation, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("%w; got %d", ErrUsage, len(args))
	}
	depth, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, fmt.Errorf("depth %q is not a number: %w", args[2], err)
	}
	return &Invocation{InputFile: args[0], OutputFile: args[1], Depth: depth}, nil
}
