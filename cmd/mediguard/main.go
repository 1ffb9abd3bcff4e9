package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"mediguard/internal/account"
	"mediguard/internal/config"
	"mediguard/internal/i18n"
	"mediguard/internal/platform/backend"
	"mediguard/internal/session"
)

const usage = `usage: mediguard <command> [flags]

commands:
  analyze   submit a report for analysis (manual vitals or --file)
  history   list saved reports
  login     sign in
  signup    create an account
  logout    sign out
  profile   change the display name
  lang      show, list or set the interface language
  t         translate a key in the active language
`

// app holds the wired dependencies shared by every command.
type app struct {
	cfg      *config.Config
	state    *session.State
	tr       *i18n.Resolver
	api      *backend.Client
	accounts *account.Service
}

func main() {
	cfg := config.Load()
	cfg.SetupLogging(cli.New(os.Stderr))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := session.OpenStore(cfg.StatePath())
	if err != nil {
		log.WithError(err).Fatal("open state")
	}
	state := session.Load(store)
	api := backend.NewClient(cfg.APIURL, cfg.HTTPTimeout)

	a := &app{
		cfg:      cfg,
		state:    state,
		tr:       i18n.NewResolver(state),
		api:      api,
		accounts: account.NewService(api, state),
	}

	if a.state.ConsumeSignOutNotice() {
		fmt.Println("Signed out successfully.")
	}

	cmd, args := os.Args[1], os.Args[2:]
	var runErr error
	switch cmd {
	case "analyze":
		runErr = a.analyze(args)
	case "history":
		runErr = a.history(args)
	case "login":
		runErr = a.login(args)
	case "signup":
		runErr = a.signup(args)
	case "logout":
		runErr = a.logout()
	case "profile":
		runErr = a.profile(args)
	case "lang":
		runErr = a.lang(args)
	case "t":
		runErr = a.translate(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", runErr)
		os.Exit(1)
	}
}
