package root

import (
	"fmt"
	"sort"
	"strings"

	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
)

// Exit codes by error code
const (
	exitFailure     = 1
	exitInvalid     = 2
	exitNotFound    = 3
	exitUnavailable = 4
	exitInternal    = 5
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case traiterr.IsInvalidArgument(err):
		return exitInvalid
	case traiterr.IsNotFound(err):
		return exitNotFound
	case traiterr.IsUnavailable(err):
		return exitUnavailable
	case traiterr.IsInternal(err):
		return exitInternal
	default:
		return exitFailure
	}
}

// describe renders an error with its code and metadata, e.g.
// "error [invalid_argument]: unsupported catalog file type ".txt" (path=rules.txt)"
func describe(err error) string {
	var b strings.Builder
	b.WriteString("error")
	if code := traiterr.GetCode(err); code != traiterr.CodeUnknown {
		fmt.Fprintf(&b, " [%s]", code)
	}
	b.WriteString(": ")
	b.WriteString(err.Error())

	meta := traiterr.GetMeta(err)
	if len(meta) == 0 {
		return b.String()
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	fmt.Fprintf(&b, " (%s)", strings.Join(pairs, " "))
	return b.String()
}
