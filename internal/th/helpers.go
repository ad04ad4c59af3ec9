package th

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

func Sort[A constraints.Ordered](s []A) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// Name generates a test name.
// Works the same way as fmt.Sprint, but adds spaces between all arguments.
func Name(args ...any) string {
	res := fmt.Sprintln(args...)
	return strings.TrimSpace(res)
}
