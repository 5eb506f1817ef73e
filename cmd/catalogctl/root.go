package main

import (
	"context"
	"io"
	"os"

	"github.com/eduproject/catalog/admin"
	"github.com/eduproject/catalog/config"
	"github.com/eduproject/catalog/database"
	"github.com/eduproject/catalog/schema"
	"github.com/eduproject/catalog/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds what every command needs once the operator is logged in.
type app struct {
	config  map[string]string
	connect func(map[string]string) (store.RowStore, error)
	term    *terminal

	accessCode string
	verbose    bool

	db      database.Database
	session *admin.Session
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{
		connect: func(c map[string]string) (store.RowStore, error) {
			s, _, err := database.Connect(c)
			return s, err
		},
		term: newTerminal(in, out),
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Manage the EduProject catalog from the terminal",
		Long: `catalogctl edits the projects, resources and profile of the EduProject
catalog. Every command asks for the admin access code first.

The database is chosen with DB_TYPE like the server does; a .env file in the
working directory is loaded when present.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.login,
	}

	rootCmd.PersistentFlags().StringVar(&a.accessCode, "code", "", "admin access code (prompted when empty)")
	rootCmd.PersistentFlags().BoolVarP(&a.term.assumeYes, "yes", "y", false, "answer yes to every confirmation")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(
		newListCmd(a),
		newRefreshCmd(a),
		newAddProjectCmd(a),
		newDeleteProjectCmd(a),
		newDeleteResourceCmd(a),
		newLayoutCmd(a),
		newThemeCmd(a),
	)
	return rootCmd
}

// login connects to the store and opens an admin session with the access code.
func (a *app) login(cmd *cobra.Command, _ []string) error {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if a.config == nil {
		if err := godotenv.Load(); err != nil {
			log.Debug().Err(err).Msg("no .env file loaded")
		}
		a.config = config.New()
	}

	rowStore, err := a.connect(a.config)
	if err != nil {
		return err
	}
	naming := schema.ParseNaming(config.GetString(a.config, "SCHEMA_WRITE_NAMING", "primary"))
	a.db = database.New(rowStore, naming)

	gate := admin.NewStaticGate(config.GetString(a.config, "ADMIN_ACCESS_CODE", ""))
	a.session = admin.NewSession(gate, admin.FromDatabase(a.db),
		admin.WithNotifier(a.term),
		admin.WithConfirmer(a.term),
	)

	code := a.accessCode
	if code == "" {
		if code, err = a.term.readAccessCode(); err != nil {
			return err
		}
	}
	return a.session.Login(ctxOf(cmd), code)
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
