package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/reusee/lexpr/scan"
)

var (
	red  = color.New(color.FgRed).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

// renderError prints a caret diagnostic when the error carries an offset
// into the source, then returns the error for the executor to report.
func renderError(source string, err error) error {
	var scanErr *scan.ScanError
	if !errors.As(err, &scanErr) {
		return err
	}

	lineStart := strings.LastIndexByte(source[:scanErr.Offset], '\n') + 1
	lineEnd := strings.IndexByte(source[scanErr.Offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(source)
	} else {
		lineEnd += scanErr.Offset
	}

	fmt.Println(bold(source[lineStart:lineEnd]))
	fmt.Print(strings.Repeat(" ", scanErr.Offset-lineStart))
	fmt.Println(red("^"))
	return err
}
