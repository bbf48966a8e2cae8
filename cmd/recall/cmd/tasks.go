package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"recall/internal/application"
	"recall/internal/application/commands"
)

func dispatch(cmd *cobra.Command, deps *Dependencies, opts *options, task application.Task, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch task {
	case application.TaskNew:
		return runNew(ctx, cmd, deps, args)
	case application.TaskEdit:
		return runEdit(ctx, cmd, deps, args)
	case application.TaskDelete:
		return runDelete(ctx, cmd, deps, args)
	case application.TaskList:
		return runList(ctx, cmd, deps, args)
	case application.TaskRead:
		return runRead(ctx, cmd, deps, opts, args)
	default:
		return cmd.Help()
	}
}

func runNew(ctx context.Context, cmd *cobra.Command, deps *Dependencies, args []string) error {
	result, err := commands.NewCreateCommand(deps.Store, args).Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message())
	return nil
}

func runEdit(ctx context.Context, cmd *cobra.Command, deps *Dependencies, args []string) error {
	result, err := commands.NewEditCommand(deps.Store, deps.Editor, args).Execute(ctx)
	if result != nil {
		for _, line := range result.Lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return err
}

func runRead(ctx context.Context, cmd *cobra.Command, deps *Dependencies, opts *options, args []string) error {
	readCmd := commands.NewReadCommand(deps.Store, args)
	readCmd.DeepestFirst = opts.deepestFirst

	result, err := readCmd.Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Output)

	if opts.copy && deps.Clipboard != nil {
		if err := deps.Clipboard(result.Content); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

func runList(ctx context.Context, cmd *cobra.Command, deps *Dependencies, args []string) error {
	notes, err := commands.NewListCommand(deps.Store, deps.Titles, args).Execute(ctx)
	if err != nil {
		return err
	}
	for _, n := range notes {
		if n.Title != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", n.Path, n.Title)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), n.Path)
		}
	}
	return nil
}

func runDelete(ctx context.Context, cmd *cobra.Command, deps *Dependencies, args []string) error {
	result, err := commands.NewDeleteCommand(deps.Store, deps.Confirmer, args).Execute(ctx)
	if err != nil {
		return err
	}
	if !result.Cancelled {
		deps.Logger.Debug("subtree deleted", slog.String("dir", result.Dir), slog.Int("entries", len(result.Entries)))
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}

func copyToClipboard(s string) error {
	return clipboard.WriteAll(s)
}
