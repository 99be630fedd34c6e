package shadow

import (
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve the path segment of a
// struct field.
// Priority: fluentval:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ft := sf.Tag.Get("fluentval"); ft != "" {
		for _, p := range strings.Split(ft, ",") {
			p = strings.TrimSpace(p)
			if p == "-" {
				return "-"
			}
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i == 0 {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// JoinPath appends key to prefix using the dotted path notation.
func JoinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}

// HasExplicitKey reports whether sf carries a tag that names it, which keeps an
// embedded struct from being flattened into its parent.
func HasExplicitKey(sf reflect.StructField) bool {
	if ft := sf.Tag.Get("fluentval"); strings.Contains(ft, "name=") {
		return true
	}
	jt := sf.Tag.Get("json")
	return jt != "" && jt != "-" && !strings.HasPrefix(jt, ",")
}
