package main

import (
	"context"

	"github.com/spf13/cobra"
)

type contextKey string

const depsContextKey contextKey = "partyctl-deps"

func contextWithDeps(ctx context.Context, d *deps) context.Context {
	return context.WithValue(ctx, depsContextKey, d)
}

func depsFrom(cmd *cobra.Command) (*deps, bool) {
	d, ok := cmd.Context().Value(depsContextKey).(*deps)
	return d, ok && d != nil
}
