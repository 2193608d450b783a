package filters

import (
	"sort"
	"strings"
)

// ParamError reports query parameters that could not be parsed.
type ParamError struct {
	Fields map[string][]string
}

func (e *ParamError) add(param, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[param] = append(e.Fields[param], msg)
}

func (e *ParamError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ParamError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid query parameters: " + strings.Join(names, ", ")
}
