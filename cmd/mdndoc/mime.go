package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/mdndoc"
)

// Run executes the mime command.
func (c *MimeCmd) Run(deps *Dependencies) error {
	ext := strings.TrimPrefix(c.Ext, ".")

	result, err := deps.Mimes.FindMime(deps.Ctx, ext)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdndoc.ErrorMessage(err))
		return err
	}

	if result == nil {
		fmt.Fprintf(deps.Stderr, "error: no MIME type found for %q\n", "."+ext)
		return mdndoc.Errorf(mdndoc.ENOTFOUND, "no MIME type found for %q", "."+ext)
	}

	if c.JSON {
		return json.NewEncoder(deps.Stdout).Encode(result)
	}

	printMime(deps.Stdout, result)
	return nil
}
