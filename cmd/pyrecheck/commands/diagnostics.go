package commands

import (
	"fmt"
	"os"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

// printDiagnostics writes one line per diagnostic to stdout, and reports
// whether any had error severity, for exit-code purposes.
func printDiagnostics(diagnostics []domain.Diagnostic) (hasErrors bool) {
	for _, d := range diagnostics {
		fmt.Fprintf(os.Stdout, "%s:%d:%d: %s: %s\n", d.Module, d.Line, d.Column, d.Severity, d.Message)
		if d.Severity == "error" {
			hasErrors = true
		}
	}
	return hasErrors
}
