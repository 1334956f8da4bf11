package inject

import (
	"fmt"
	"reflect"
	"strings"
)

// ── Injection target discovery ───────────────────────────────────────────────
//
// Targets come in three kinds, processed in this fixed order per instance:
//
//   - guarded fields    `inject:""`           skipped (with a warning) when
//                                             already set — idempotent, lets
//                                             pre-set test doubles survive
//   - methods           func Inject*(deps...) every parameter resolved by
//                                             type, invoked once, never with
//                                             partial arguments
//   - overwrite fields  `inject:"overwrite"`  the property analog: written
//                                             unconditionally
//
// Discovery is repeated fresh on every pass; nothing is cached across scans.

const (
	tagKey        = "inject"
	modeGuarded   = ""
	modeOverwrite = "overwrite"
)

const methodPrefix = "Inject"

// fieldTarget is one inject-tagged struct field on a live component.
type fieldTarget struct {
	field reflect.StructField
	value reflect.Value // settable
}

// methodTarget is one Inject* method on a live component.
type methodTarget struct {
	owner  reflect.Value
	method reflect.Method
	params []reflect.Type
	hasErr bool // method returns error
}

func (m methodTarget) name() string {
	return typeName(m.owner.Type()) + "." + m.method.Name
}

// targets is everything injectable on one component instance.
type targets struct {
	fields  []fieldTarget // guarded
	methods []methodTarget
	props   []fieldTarget // overwrite
}

func (t targets) empty() bool {
	return len(t.fields) == 0 && len(t.methods) == 0 && len(t.props) == 0
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// targetsOf inspects a live component for injection targets. Components that
// are not pointer-to-struct simply have no field targets; method targets are
// discovered on any pointer component.
func targetsOf(c any) (targets, error) {
	var out targets

	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return out, nil
	}

	if elem := v.Elem(); elem.Kind() == reflect.Struct {
		t := elem.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			mode, tagged := f.Tag.Lookup(tagKey)
			if !tagged {
				continue
			}
			if f.PkgPath != "" {
				return out, fmt.Errorf("%w: field %s.%s is unexported and cannot be injected",
					ErrBadTarget, typeName(v.Type()), f.Name)
			}
			switch f.Type.Kind() {
			case reflect.Pointer, reflect.Interface:
				// nilable: "absent" is well defined
			default:
				return out, fmt.Errorf("%w: field %s.%s has kind %s; injectable fields must be pointers or interfaces",
					ErrBadTarget, typeName(v.Type()), f.Name, f.Type.Kind())
			}
			ft := fieldTarget{field: f, value: elem.Field(i)}
			switch mode {
			case modeGuarded:
				out.fields = append(out.fields, ft)
			case modeOverwrite:
				out.props = append(out.props, ft)
			default:
				return out, fmt.Errorf("%w: field %s.%s has unknown inject mode %q",
					ErrBadTarget, typeName(v.Type()), f.Name, mode)
			}
		}
	}

	vt := v.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		if !strings.HasPrefix(m.Name, methodPrefix) {
			continue
		}
		if m.Type.NumIn() < 2 { // receiver only
			return out, fmt.Errorf("%w: method %s.%s takes no parameters",
				ErrBadTarget, typeName(vt), m.Name)
		}
		switch {
		case m.Type.NumOut() == 0:
		case m.Type.NumOut() == 1 && m.Type.Out(0) == errType:
		default:
			return out, fmt.Errorf("%w: method %s.%s must return nothing or a single error",
				ErrBadTarget, typeName(vt), m.Name)
		}
		mt := methodTarget{
			owner:  v,
			method: m,
			hasErr: m.Type.NumOut() == 1,
		}
		for p := 1; p < m.Type.NumIn(); p++ {
			mt.params = append(mt.params, m.Type.In(p))
		}
		out.methods = append(out.methods, mt)
	}

	return out, nil
}
