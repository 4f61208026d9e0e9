package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Returns the first error in the chain with its own named type, along with
// that type's name. Plain wrapped or sentinel errors have no kind of their
// own, so a chain made only of those is reported whole as an "Error".
func errorKind(err error) (string, error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		t := reflect.TypeOf(e)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		switch t.PkgPath() {
		case "errors", "fmt":
			continue
		}

		if t.Name() != "" {
			return t.Name(), e
		}
	}

	return "Error", err
}

// Writes err as "Kind: message". With full set, the whole wrapped chain is
// written instead.
func printError(w io.Writer, err error, full bool) {
	if full {
		fmt.Fprintf(w, "%s\n", err)
		return
	}

	kind, inner := errorKind(err)
	fmt.Fprintf(w, "%s: %s\n", kind, inner)
}
