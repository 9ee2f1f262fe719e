package main

import (
	"errors"
	"strings"

	"sf-recruiter/internal/formatting"
)

// parseArgs splits the positional arguments into a recipient and the
// space-joined message body. The recipient is mandatory; the body may be
// empty.
func parseArgs(args []string) (to, body string, err error) {
	if len(args) < 1 {
		return "", "", errors.New(formatting.MsgUsageMailer)
	}
	return args[0], strings.Join(args[1:], " "), nil
}
