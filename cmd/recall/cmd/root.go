package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"recall/internal/adapters/editor"
	"recall/internal/adapters/filesystem"
	"recall/internal/adapters/markdown"
	"recall/internal/adapters/prompt"
	"recall/internal/application"
	"recall/internal/config"
	"recall/internal/ports"
)

// Dependencies are the collaborators an invocation runs against
type Dependencies struct {
	Store     ports.NoteStore
	Editor    ports.EditorOpener
	Confirmer ports.Confirmer
	Titles    ports.TitleExtractor
	Clipboard func(string) error
	Logger    *slog.Logger
}

// Wiring builds Dependencies once configuration is known
type Wiring func(cfg *config.Config, cmd *cobra.Command, logger *slog.Logger) *Dependencies

type options struct {
	newNote      bool
	edit         bool
	delete       bool
	list         bool
	copy         bool
	deepestFirst bool
	verbose      bool
}

// NewRootCommand builds the recall command. load resolves configuration and
// wire turns it into dependencies; both run only after the task is known, so
// help never needs a configured store.
func NewRootCommand(load func() (*config.Config, error), wire Wiring) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "recall [flags] <segment>...",
		Short: "Hierarchical markdown notes in a directory tree",
		Long: `recall keeps notes in a directory tree under $RECALL_DIR.

Each segment of a note path is a directory holding a markdown file of the
same name, so "recall -n swift keypath" creates swift/swift.md and
swift/keypath/keypath.md, each stubbed with a heading.

Without a task flag the notes beneath the path are printed, the path's own
note first.

Examples:
  recall -n swift keypath    # create a note and any missing parents
  recall -e tmux layouts     # create if needed, then open in $EDITOR
  recall vim                 # print vim and everything beneath it
  recall -l                  # list every note
  recall -d tmux             # delete tmux and everything beneath it`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			task := opts.task()
			if task == application.TaskRead && len(args) == 0 {
				task = application.TaskHelp
			}
			if task == application.TaskHelp {
				return cmd.Help()
			}
			if len(args) < task.MinSegments() {
				return &application.ValidationError{
					Field:   "path",
					Message: fmt.Sprintf("not enough arguments: %s needs at least %d segment(s)", task, task.MinSegments()),
				}
			}

			cfg, err := load()
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.verbose)
			logger.Debug("configuration loaded",
				slog.String("root", cfg.Root),
				slog.String("task", task.String()))

			deps := wire(cfg, cmd, logger)
			if deps.Logger == nil {
				deps.Logger = logger
			}
			return dispatch(cmd, deps, opts, task, args)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.newNote, "new", "n", false, "create a note and any missing parents")
	flags.BoolVarP(&opts.edit, "edit", "e", false, "create a note if needed and open it in an editor")
	flags.BoolVarP(&opts.delete, "delete", "d", false, "delete a note and everything beneath it")
	flags.BoolVarP(&opts.list, "list", "l", false, "list notes beneath a path")
	flags.BoolVar(&opts.copy, "copy", false, "copy the printed notes to the clipboard")
	flags.BoolVar(&opts.deepestFirst, "deepest-first", false, "print the most specific notes first")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("new", "edit", "delete", "list")

	return rootCmd
}

func (o *options) task() application.Task {
	switch {
	case o.newNote:
		return application.TaskNew
	case o.edit:
		return application.TaskEdit
	case o.delete:
		return application.TaskDelete
	case o.list:
		return application.TaskList
	default:
		return application.TaskRead
	}
}

// DefaultWiring connects the filesystem store and terminal adapters
func DefaultWiring(cfg *config.Config, cmd *cobra.Command, logger *slog.Logger) *Dependencies {
	opener := editor.NewOpener(cfg.Editor)
	opener.Stdin = cmd.InOrStdin()
	opener.Stdout = cmd.OutOrStdout()
	opener.Stderr = cmd.ErrOrStderr()

	return &Dependencies{
		Store:     filesystem.NewStore(cfg.Root, filesystem.WithLogger(logger)),
		Editor:    opener,
		Confirmer: prompt.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout()),
		Titles:    markdown.NewTitleExtractor(),
		Clipboard: copyToClipboard,
		Logger:    logger,
	}
}

func newLogger(w io.Writer, level slog.Level, verbose bool) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand(config.NewLoader().Load, DefaultWiring)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "recall: %v\n", err)
		os.Exit(1)
	}
}
