package devtools

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/km-arc/go-scene-di/framework/inject"
)

var (
	passMark = color.New(color.FgGreen, color.Bold)
	failMark = color.New(color.FgRed, color.Bold)
)

// WriteReport renders a validation report for terminal consumption: a
// one-line summary plus one line per unresolvable target.
func WriteReport(w io.Writer, rep *inject.Report) {
	if rep.OK() {
		passMark.Fprint(w, "PASS ")
		fmt.Fprintf(w, "scene %q: all %d injectable fields resolvable\n", rep.Scene, rep.Checked)
		return
	}
	failMark.Fprint(w, "FAIL ")
	fmt.Fprintf(w, "scene %q: %d of %d injectable fields unresolvable\n",
		rep.Scene, len(rep.Invalid), rep.Checked)
	for _, iv := range rep.Invalid {
		fmt.Fprintf(w, "  - %s.%s needs %s (instance %s)\n",
			iv.Component, iv.Field, iv.Type, iv.InstanceID)
	}
}
