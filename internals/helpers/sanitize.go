// file: internals/helpers/sanitize.go
package helper

import "reflect"

// CompactMap drops nil-valued entries (including typed nil pointers) from a
// payload map. The public status endpoint must never expose explicit nulls,
// so application payloads pass through this before being written out. Empty
// strings are kept: a stored value, even blank, is still a value.
func CompactMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Ptr, reflect.Interface:
			if rv.IsNil() {
				continue
			}
		}
		out[k] = v
	}
	return out
}
