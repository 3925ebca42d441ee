package hydrate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hydrate-format/go-hydrate/keys"
	"github.com/hydrate-format/go-hydrate/node"
)

var ErrBadPath = errors.New("bad path")

// Step is one traversal step: an attribute name or a sequence index.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// ParsePath parses a dotted path such as "user_info.accounts[0].name".
// Key segments are normalized, so the original key spellings work too.
// An empty path addresses the root.
func ParsePath(path string) ([]Step, error) {
	var steps []Step
	if path == "" {
		return steps, nil
	}
	for _, seg := range strings.Split(path, ".") {
		key := seg
		var idxs []int
		for {
			open := strings.IndexByte(key, '[')
			if open < 0 {
				break
			}
			rest := key[open:]
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed index in %q", ErrBadPath, seg)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("%w: index %q in %q", ErrBadPath, rest[1:end], seg)
			}
			idxs = append(idxs, i)
			key = key[:open] + rest[end+1:]
		}
		if key != "" {
			steps = append(steps, Step{Key: keys.Normalize(key)})
		} else if len(idxs) == 0 {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadPath, path)
		}
		for _, i := range idxs {
			steps = append(steps, Step{Index: i, IsIndex: true})
		}
	}
	return steps, nil
}

// At traverses the parsed path from the root. Missing or mistyped steps
// degrade exactly as direct traversal does; the error reports only a
// malformed path string.
func (r *Root) At(path string) (node.Node, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	n := r.node
	for _, s := range steps {
		if s.IsIndex {
			n = n.Index(s.Index)
			continue
		}
		n = n.Get(s.Key)
	}
	return n, nil
}
