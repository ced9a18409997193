package dot

import (
	"fmt"
	"sort"
	"strings"
)

// AttributesToString renders attribs as a DOT attribute list, sorted by key. Values wrapped in `<...>` are treated
// as HTML labels and left unquoted.
func AttributesToString(attribs map[string]string) string {
	if len(attribs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attribs))
	for k := range attribs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	list := make([]string, 0, len(keys))
	for _, k := range keys {
		v := attribs[k]
		if len(v) > 1 && v[0] == '<' && v[len(v)-1] == '>' {
			list = append(list, fmt.Sprintf(`%s=%s`, k, v))
		} else {
			list = append(list, fmt.Sprintf(`%s=%q`, k, v))
		}
	}
	return " [" + strings.Join(list, ", ") + "]"
}
