package tokens

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/myrt-theme/myrt/internal/color"
)

// Paths flattens the tree into dotted token path -> color.
func (t *Tree) Paths() map[string]string {
	out := make(map[string]string)
	walk(reflect.ValueOf(*t), "", func(path, value string) {
		out[path] = value
	})
	return out
}

// SortedPaths returns the token paths in lexical order.
func (t *Tree) SortedPaths() []string {
	paths := t.Paths()
	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the color at a dotted token path.
func (t *Tree) Lookup(path string) (string, bool) {
	value, ok := t.Paths()[path]
	return value, ok
}

// Validate checks that every leaf is set and parses as a color.
func Validate(t *Tree) error {
	if t == nil {
		return fmt.Errorf("token tree is required")
	}
	paths := t.Paths()
	var problems []string
	for _, path := range t.SortedPaths() {
		value := paths[path]
		if value == "" {
			problems = append(problems, path+": empty")
			continue
		}
		if _, err := color.Parse(value); err != nil {
			problems = append(problems, path+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s %s tokens: %s", t.Name, t.Style, strings.Join(problems, "; "))
	}
	return nil
}

func walk(v reflect.Value, prefix string, visit func(path, value string)) {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Struct:
			walk(fv, path, visit)
		case reflect.String:
			visit(path, fv.String())
		}
	}
}
