// Package idgen allocates sequential record identifiers of the form
// prefix + zero-padded counter (e.g. MED001, APPT042). The counter is
// derived from the live identifier set, never persisted.
package idgen

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/carewise/hms/pkg/logger"
	"go.uber.org/zap"
)

// padWidth is the minimum digit count of the numeric suffix. Larger
// suffixes keep their natural width; padding never truncates.
const padWidth = 3

// Next returns the next unused identifier for the prefix, scanning the
// given identifier set for the highest existing numeric suffix.
//
// Matching is anchored: an identifier counts only if it is exactly the
// prefix followed by digits, so allocating under "P" is never influenced
// by "PH001". Identifiers carrying the prefix with a non-numeric
// remainder are logged and skipped.
func Next(ids []string, prefix string) string {
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)$`)

	highest := 0
	for _, id := range ids {
		m := pattern.FindStringSubmatch(id)
		if m == nil {
			if len(id) > len(prefix) && id[:len(prefix)] == prefix {
				logger.Debug("skipping identifier with non-numeric suffix",
					zap.String("id", id),
					zap.String("prefix", prefix))
			}
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Suffix overflows int; treat as malformed.
			logger.Warn("skipping identifier with unparseable suffix",
				zap.String("id", id),
				zap.Error(err))
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return Format(prefix, highest+1)
}

// Format renders an identifier from a prefix and counter value with
// fixed-width zero padding.
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, padWidth, n)
}
