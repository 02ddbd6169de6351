package resolver

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Func computes a concrete script URL from caller options.
// Implementations are pure: no I/O, no shared state.
type Func func(Options) (string, error)

// Options carries provider-specific runtime options, keyed by the option names
// the loading runtime uses (e.g. "writeKey", "app_id", "packageName").
// A nil Options is valid and means "no options".
type Options map[string]any

// ErrInvalidOptions is matched by every option validation failure.
var ErrInvalidOptions = errors.New("invalid script options")

// OptionError describes a single bad or missing option.
type OptionError struct {
	Provider string
	Field    string
	Reason   string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: option %q %s", e.Provider, e.Field, e.Reason)
}

func (e *OptionError) Is(target error) bool { return target == ErrInvalidOptions }

// Require reports the first key of keys that is absent or blank in opts.
// Resolvers themselves fall back to empty values; runtimes that prefer a hard
// failure call Require before resolving.
func Require(opts Options, provider string, keys ...string) error {
	for _, k := range keys {
		v, ok := opts[k]
		if !ok || v == nil {
			return &OptionError{Provider: provider, Field: k, Reason: "is required"}
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return &OptionError{Provider: provider, Field: k, Reason: "must not be empty"}
		}
		if l, isList := v.([]string); isList && len(l) == 0 {
			return &OptionError{Provider: provider, Field: k, Reason: "must not be empty"}
		}
	}
	return nil
}

// str reads a string option. Missing or nil values yield "".
func (o Options) str(provider, key string) (string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &OptionError{Provider: provider, Field: key, Reason: fmt.Sprintf("must be a string, got %T", v)}
	}
	return s, nil
}

// ident reads an identifier that may be given as a string or an integral number
// (JSON decoding produces float64, CLI parsing produces strings).
func (o Options) ident(provider, key string) (string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case json.Number:
		return t.String(), nil
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return "", &OptionError{Provider: provider, Field: key, Reason: "must be an integer"}
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", &OptionError{Provider: provider, Field: key, Reason: fmt.Sprintf("must be a string or number, got %T", v)}
	}
}

// strs reads an option that is either one string or an ordered list of strings.
func (o Options) strs(provider, key string) ([]string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil, nil
		}
		return []string{t}, nil
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, &OptionError{Provider: provider, Field: key, Reason: fmt.Sprintf("item %d must be a string, got %T", i, item)}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &OptionError{Provider: provider, Field: key, Reason: fmt.Sprintf("must be a string or list of strings, got %T", v)}
	}
}

// ParsePairs turns "key=value" arguments into Options. A key given more than
// once becomes an ordered list.
func ParsePairs(pairs []string) (Options, error) {
	opts := Options{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidOptions, p)
		}
		switch prev := opts[k].(type) {
		case nil:
			opts[k] = v
		case string:
			opts[k] = []string{prev, v}
		case []string:
			opts[k] = append(prev, v)
		}
	}
	return opts, nil
}
