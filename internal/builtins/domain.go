package builtins

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/runtime"
)

// registerDomain installs the enrichments SPEC_FULL.md adds over spec.md's
// core library: JSON interop (gjson/sjson) and natural-order sort
// (maruel/natural), so the language can exchange data with the host
// ecosystem instead of only with itself.
func registerDomain(env *runtime.Environment) {
	def(env, "json-parse", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("json-parse", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(runtime.String)
		if !ok {
			return nil, errors.NewRuntimeError("json-parse expects a String, got %s", args[0].Type())
		}
		if !gjson.Valid(string(s)) {
			return nil, errors.NewRuntimeError("json-parse: invalid JSON")
		}
		return fromJSONResult(gjson.Parse(string(s))), nil
	})
	def(env, "json-stringify", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("json-stringify", args, 1); err != nil {
			return nil, err
		}
		raw, err := toJSON(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.String(raw), nil
	})
	def(env, "sort", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("sort", args, 1); err != nil {
			return nil, err
		}
		items, ok := asSeq(args[0])
		if !ok {
			return nil, errors.NewRuntimeError("sort expects a List or Vector, got %s", args[0].Type())
		}
		strs := make([]string, len(items))
		for i, it := range items {
			s, ok := it.(runtime.String)
			if !ok {
				return nil, errors.NewRuntimeError("sort expects a sequence of Strings, got %s", it.Type())
			}
			strs[i] = string(s)
		}
		runtime.NaturalSortStrings(strs)
		out := make([]runtime.Value, len(strs))
		for i, s := range strs {
			out[i] = runtime.String(s)
		}
		return &runtime.List{Items: out}, nil
	})
}

func fromJSONResult(r gjson.Result) runtime.Value {
	switch r.Type {
	case gjson.Null:
		return runtime.Nil{}
	case gjson.True:
		return runtime.Bool(true)
	case gjson.False:
		return runtime.Bool(false)
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") {
			return runtime.Integer(r.Int())
		}
		return runtime.Float(r.Num)
	case gjson.String:
		return runtime.String(r.Str)
	default: // gjson.JSON: object or array
		if r.IsArray() {
			var items []runtime.Value
			r.ForEach(func(_, v gjson.Result) bool {
				items = append(items, fromJSONResult(v))
				return true
			})
			return &runtime.List{Items: items}
		}
		d := runtime.NewDictionary()
		r.ForEach(func(k, v gjson.Result) bool {
			d.Set(runtime.DictKey(runtime.String(k.String())), fromJSONResult(v))
			return true
		})
		return d
	}
}

// toJSON encodes v as a JSON document, building nested structures with
// sjson.SetRaw and leaning on sjson.Set's own escaping for scalars (routed
// through a throwaway "v" key and re-extracted with gjson) rather than
// hand-rolling JSON string quoting.
func toJSON(v runtime.Value) (string, error) {
	switch t := v.(type) {
	case runtime.Nil:
		return "null", nil
	case runtime.Bool, runtime.Integer, runtime.Float, runtime.String:
		return encodeJSONScalar(t)
	case *runtime.List:
		return encodeJSONArray(t.Items)
	case *runtime.Vector:
		return encodeJSONArray(t.Items)
	case *runtime.Dictionary:
		doc := "{}"
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			raw, err := toJSON(val)
			if err != nil {
				return "", err
			}
			// A String key's canonical form carries its quotes; the JSON
			// member name is the bare text, so json-parse maps it back.
			name := k
			if strings.HasPrefix(k, `"`) {
				if s, uerr := strconv.Unquote(k); uerr == nil {
					name = s
				}
			}
			doc2, err := sjson.SetRaw(doc, sjsonPath(name), raw)
			if err != nil {
				return "", errors.NewRuntimeError("json-stringify: %s", err.Error())
			}
			doc = doc2
		}
		return doc, nil
	default:
		return "", errors.NewRuntimeError("json-stringify: cannot encode %s", v.Type())
	}
}

func encodeJSONArray(items []runtime.Value) (string, error) {
	doc := "[]"
	for i, item := range items {
		raw, err := toJSON(item)
		if err != nil {
			return "", err
		}
		doc2, err := sjson.SetRaw(doc, strconv.Itoa(i), raw)
		if err != nil {
			return "", errors.NewRuntimeError("json-stringify: %s", err.Error())
		}
		doc = doc2
	}
	return doc, nil
}

func encodeJSONScalar(v runtime.Value) (string, error) {
	var doc string
	var err error
	switch t := v.(type) {
	case runtime.Bool:
		doc, err = sjson.Set("{}", "v", bool(t))
	case runtime.Integer:
		doc, err = sjson.Set("{}", "v", int64(t))
	case runtime.Float:
		doc, err = sjson.Set("{}", "v", float64(t))
	case runtime.String:
		doc, err = sjson.Set("{}", "v", string(t))
	}
	if err != nil {
		return "", errors.NewRuntimeError("json-stringify: %s", err.Error())
	}
	return gjson.Get(doc, "v").Raw, nil
}

// sjsonPath escapes the path metacharacters sjson/gjson treat specially
// (".", "*", "?") so an arbitrary Dictionary key can be used as a single
// path segment.
func sjsonPath(key string) string {
	r := strings.NewReplacer(`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`)
	return r.Replace(key)
}
