package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/platform/logger"
	"github.com/questparty/questparty-api/internal/store"
	"github.com/spf13/cobra"
)

// errNotConfirmed is returned by destructive commands run without --yes.
var errNotConfirmed = errors.New("refusing to run a destructive action without --yes")

// newRootCmd assembles the command tree. open is called once per
// invocation, after flags are parsed.
func newRootCmd(open depsOpener) *cobra.Command {
	var (
		configDir string
		logLevel  string
	)

	root := &cobra.Command{
		Use:   "partyctl",
		Short: "Maintenance commands for QuestParty data",
		Long: `partyctl performs one-off maintenance against the QuestParty database.
Each destructive subcommand takes a single positional filter, performs a single
delete and logs a confirmation line with the number of affected rows.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l := logger.New(logger.LoggerConfig{Level: logLevel}, cmd.ErrOrStderr())
			d, err := open(cmd.Context(), configDir, l)
			if err != nil {
				return err
			}
			ctx := logger.WithLogger(cmd.Context(), l)
			cmd.SetContext(contextWithDeps(ctx, d))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if d, ok := depsFrom(cmd); ok && d.close != nil {
				return d.close()
			}
			return nil
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory searched for config.yaml")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newLeavePartyCmd(),
		newDeleteUserCmd(),
		newDeleteVictoriesCmd(),
		newTokenCmd(),
		newMigrateCmd(),
	)
	return root
}

// destructive wraps run so it only executes when --yes was given.
func destructive(cmd *cobra.Command, run func(cmd *cobra.Command, d *deps, arg string) error) {
	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().Bool("yes", false, "confirm the destructive action")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		confirmed, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}
		if !confirmed {
			return errNotConfirmed
		}
		d, ok := depsFrom(cmd)
		if !ok {
			return errors.New("dependencies not initialized")
		}
		return run(cmd, d, args[0])
	}
}

func newLeavePartyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave-party <email> --yes",
		Short: "Remove a user from their party",
	}
	destructive(cmd, func(cmd *cobra.Command, d *deps, email string) error {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		user, err := d.users.GetByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}

		var rows int64
		membership, err := d.parties.LeaveParty(ctx, user.ID)
		switch {
		case errors.Is(err, store.ErrMembershipNotFound):
		case err != nil:
			return fmt.Errorf("leave party: %w", err)
		default:
			rows = 1
			log = log.With(slog.String("party_id", membership.PartyID.String()))
		}

		log.Info("leave-party complete",
			slog.String("user_id", user.ID.String()),
			slog.Int64("rows_affected", rows))
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d membership(s)\n", rows)
		return nil
	})
	return cmd
}

func newDeleteUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-user <email> --yes",
		Short: "Delete a user; their party membership is removed with them",
	}
	destructive(cmd, func(cmd *cobra.Command, d *deps, email string) error {
		if err := domain.ValidateEmail(domain.NormalizeEmail(email)); err != nil {
			return err
		}

		rows, err := d.users.DeleteByEmail(cmd.Context(), email)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		logger.FromContext(cmd.Context()).Info("delete-user complete", slog.Int64("rows_affected", rows))
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d user(s)\n", rows)
		return nil
	})
	return cmd
}

func newDeleteVictoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-victories <party-id> --yes",
		Short: "Delete every victory of a party",
	}
	destructive(cmd, func(cmd *cobra.Command, d *deps, arg string) error {
		partyID, err := uuid.Parse(arg)
		if err != nil {
			return fmt.Errorf("invalid party id %q: %w", arg, domain.ErrInvalidID)
		}

		rows, err := d.victories.DeleteByParty(cmd.Context(), partyID)
		if err != nil {
			return fmt.Errorf("delete victories: %w", err)
		}

		logger.FromContext(cmd.Context()).Info("delete-victories complete",
			slog.String("party_id", partyID.String()),
			slog.Int64("rows_affected", rows))
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d victory(ies)\n", rows)
		return nil
	})
	return cmd
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <email>",
		Short: "Print an access token for a user, for manual API testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := depsFrom(cmd)
			if !ok {
				return errors.New("dependencies not initialized")
			}
			ctx := cmd.Context()

			user, err := d.users.GetByEmail(ctx, args[0])
			if err != nil {
				return fmt.Errorf("look up user: %w", err)
			}
			token, err := d.tokens.GenerateToken(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			logger.FromContext(ctx).Info("token issued", slog.String("user_id", user.ID.String()))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate <up|down|version>",
		Short:     "Apply, roll back or inspect schema migrations",
		Long:      "migrate up applies pending migrations, migrate down reverts the latest one and requires --yes.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
	}
	yes := cmd.Flags().Bool("yes", false, "confirm migrate down")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		d, ok := depsFrom(cmd)
		if !ok {
			return errors.New("dependencies not initialized")
		}
		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		switch args[0] {
		case "up":
			if err := d.schema.Up(ctx); err != nil {
				return err
			}
		case "down":
			if !*yes {
				return errNotConfirmed
			}
			if err := d.schema.Down(ctx); err != nil {
				return err
			}
		}

		version, err := d.schema.Version(ctx)
		if err != nil {
			return err
		}
		log.Info("migrate complete", slog.String("direction", args[0]), slog.Int64("version", version))
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
		return nil
	}
	return cmd
}
