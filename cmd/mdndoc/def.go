package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/mdndoc"
	"golang.org/x/sync/errgroup"
)

// Run executes the def command.
func (c *DefCmd) Run(deps *Dependencies) error {
	outcomes := make([]*mdndoc.SearchOutcome, len(c.Methods))

	g, ctx := errgroup.WithContext(deps.Ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, method := range c.Methods {
		i, method := i, method
		g.Go(func() error {
			outcome, err := deps.Definitions.SearchDefinition(ctx, c.Type, method)
			if err != nil {
				return fmt.Errorf("look up %q: %w", method, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdndoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		for _, outcome := range outcomes {
			if err := enc.Encode(outcome); err != nil {
				return err
			}
		}
		return nil
	}

	for i, outcome := range outcomes {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printOutcome(deps.Stdout, c.Methods[i], outcome)
	}
	return nil
}
