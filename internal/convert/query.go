package convert

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// queryRe matches "<amount> <code> (in|as|of|to) <code> [<code>...]",
// case-insensitively. Codes are exactly 3 alphabetic characters and the last
// target is anchored to the end of the string.
var queryRe = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*([a-z]{3})\s+(?:in|as|of|to)\s+((?:[a-z]{3}\s+)*[a-z]{3})$`)

// Parse failures. ErrBadQuery covers both grammar mismatches and unparseable
// amounts; either one aborts the command.
var (
	ErrBadQuery    = errors.New("unrecognized conversion query")
	ErrAmountRange = errors.New("amount out of range")
)

// Query is a validated conversion request.
type Query struct {
	Amount  float64
	Source  string
	Targets []string
}

// MatchesQuery reports whether raw has the conversion-query shape. Used by
// the passive trigger to decide whether an ordinary message is a query.
func MatchesQuery(raw string) bool {
	return queryRe.MatchString(strings.TrimSpace(raw))
}

// ParseQuery validates and decomposes a raw query string. Codes come back
// upper-cased with at least one target.
func ParseQuery(raw string) (*Query, error) {
	m := queryRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, ErrBadQuery
	}

	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, ErrAmountRange
		}
		return nil, fmt.Errorf("%w: bad amount %q", ErrBadQuery, m[1])
	}

	return &Query{
		Amount:  amount,
		Source:  strings.ToUpper(m[2]),
		Targets: strings.Fields(strings.ToUpper(m[3])),
	}, nil
}
