package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskNumRequired indicates no task number was provided.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses the leading 1-based task number in args and returns
// the 0-based index plus the remaining args.
func ParseTaskNum(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, ErrTaskNumRequired
	}
	if !isAllDigits(args[0]) {
		return 0, nil, fmt.Errorf("invalid task number: %s", args[0])
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return 0, nil, fmt.Errorf("task number out of range: %s", args[0])
	}
	return num - 1, args[1:], nil
}

// isAllDigits returns true if s is non-empty and contains only ASCII digits.
func isAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
