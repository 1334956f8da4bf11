package inject

import (
	"reflect"
)

// ── Validation ───────────────────────────────────────────────────────────────

// InvalidTarget identifies one guarded field that cannot currently be
// satisfied: its type has no declared factory and its value is absent.
type InvalidTarget struct {
	Component  string `json:"component"`
	Field      string `json:"field"`
	Type       string `json:"type"`
	InstanceID string `json:"instance_id"`
}

// Report is the outcome of one validation pass.
type Report struct {
	Scene   string          `json:"scene"`
	Checked int             `json:"checked"`
	Invalid []InvalidTarget `json:"invalid,omitempty"`
}

// OK reports whether every checked target is satisfiable.
func (r *Report) OK() bool { return len(r.Invalid) == 0 }

// Validate dry-runs resolution without mutating anything. Provided types are
// recomputed from factory signatures alone — no factory is invoked — and a
// guarded field is invalid iff its type is not declared by any factory and
// its current value is nil. Only guarded fields are checked; methods and
// overwrite fields are excluded.
//
// Validate never fails: malformed components are logged and skipped so an
// incompletely-configured scene can still be inspected. Calling it twice in
// a row yields identical reports.
func (k *Kernel) Validate() *Report {
	provided := k.declaredTypes()
	rep := &Report{Scene: k.scene.Name()}

	for _, c := range k.scene.Components() {
		tg, err := targetsOf(c)
		if err != nil {
			k.log.Warn("skipping malformed component during validation", "error", err)
			continue
		}
		for _, ft := range tg.fields {
			rep.Checked++
			if provided[ft.field.Type] {
				continue
			}
			if !ft.value.IsNil() {
				continue
			}
			rep.Invalid = append(rep.Invalid, InvalidTarget{
				Component:  typeName(reflect.TypeOf(c)),
				Field:      ft.field.Name,
				Type:       ft.field.Type.String(),
				InstanceID: k.scene.InstanceID(c),
			})
		}
	}

	if rep.OK() {
		k.log.Info("dependency validation passed",
			"scene", rep.Scene,
			"checked", rep.Checked,
		)
	} else {
		for _, iv := range rep.Invalid {
			k.log.Error("unresolvable dependency",
				"component", iv.Component,
				"field", iv.Field,
				"type", iv.Type,
				"instance", iv.InstanceID,
			)
		}
	}
	return rep
}

// declaredTypes enumerates factory return types across all live providers
// without invoking anything. Malformed providers are tolerated here; they
// only fail a real activation.
func (k *Kernel) declaredTypes() map[reflect.Type]bool {
	out := make(map[reflect.Type]bool)
	for _, c := range k.scene.Components() {
		p, ok := c.(Provider)
		if !ok {
			continue
		}
		facs, err := factoriesOf(p)
		if err != nil {
			k.log.Warn("skipping malformed provider during validation", "error", err)
			continue
		}
		for _, f := range facs {
			out[f.out] = true
		}
	}
	return out
}

// ── Clearing ─────────────────────────────────────────────────────────────────

// Clear unconditionally resets every guarded injectable field on every live
// component to nil, regardless of current content, and returns the number of
// fields cleared. Methods and overwrite fields are untouched. Clear is
// idempotent and safe to call on a scene that was never injected.
func (k *Kernel) Clear() int {
	cleared := 0
	for _, c := range k.scene.Components() {
		tg, err := targetsOf(c)
		if err != nil {
			k.log.Warn("skipping malformed component during clear", "error", err)
			continue
		}
		for _, ft := range tg.fields {
			ft.value.Set(reflect.Zero(ft.field.Type))
			cleared++
		}
	}
	k.log.Info("injected dependencies cleared",
		"scene", k.scene.Name(),
		"fields", cleared,
	)
	return cleared
}
