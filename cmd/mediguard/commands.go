package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"mediguard/internal/account"
	"mediguard/internal/i18n"
	"mediguard/internal/report"
)

func (a *app) history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	query := fs.String("q", "", "filter by title or patient name")
	fs.Parse(args)

	all, err := report.NewHistory(a.api).List(context.Background())
	if err != nil {
		return err
	}
	reports := report.Filter(all, *query)

	fmt.Printf("%s (%d %s)\n", a.tr.T("history.title"), len(reports), a.plural(len(reports)))
	if len(all) == 0 {
		fmt.Println(a.tr.T("history.empty"))
		return nil
	}
	for _, r := range reports {
		title := r.ReportTitle
		if title == "" {
			title = fmt.Sprintf("#%d", r.ID)
		}
		fmt.Printf("%-6d %-28s %3d  %-6s %-7s %s\n",
			r.ID, title, r.HealthScore, r.TriageCategory, r.Band(), r.CreatedAt.Format("2006-01-02"))
	}
	if latest, ok := report.Latest(all); ok {
		fmt.Printf("\nlatest: #%d %d/100\n", latest.ID, latest.HealthScore)
	}
	return nil
}

func (a *app) plural(n int) string {
	if n == 1 {
		return a.tr.T("history.report")
	}
	return a.tr.T("history.reports")
}

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	u, err := a.accounts.Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s <%s>\n", u.Name, u.Email)
	return nil
}

func (a *app) signup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	in := account.SignupInput{}
	fs.StringVar(&in.Name, "name", "", "full name")
	fs.StringVar(&in.Email, "email", "", "account email")
	fs.StringVar(&in.Password, "password", "", "password")
	fs.StringVar(&in.ConfirmPassword, "confirm", "", "password again")
	fs.Parse(args)

	u, err := a.accounts.Signup(context.Background(), in)
	if err != nil {
		return err
	}
	fmt.Printf("Account created for %s\n", u.Email)
	return nil
}

func (a *app) logout() error {
	if a.accounts.Current() == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	return a.accounts.SignOut()
}

func (a *app) profile(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "new display name")
	fs.Parse(args)

	if *name == "" {
		u := a.accounts.Current()
		if u == nil {
			return errors.New("not signed in")
		}
		fmt.Printf("%s <%s> id=%s\n", u.Name, u.Email, u.ID)
		return nil
	}
	return a.accounts.UpdateProfile(*name)
}

func (a *app) lang(args []string) error {
	if len(args) == 0 || args[0] == "get" {
		code := a.tr.Language()
		l, _ := i18n.Find(code)
		fmt.Printf("%s (%s)\n", l.NativeName, code)
		return nil
	}
	switch args[0] {
	case "list":
		active := a.tr.Language()
		for _, l := range i18n.Languages() {
			mark := " "
			if l.Code == active {
				mark = "*"
			}
			fmt.Printf("%s %-4s %-10s %s\n", mark, l.Code, l.Name, l.NativeName)
		}
		return nil
	case "set":
		if len(args) < 2 {
			return errors.New("usage: mediguard lang set <code>")
		}
		code, err := a.tr.SetLanguage(args[1])
		if err != nil {
			return err
		}
		if code != args[1] {
			fmt.Printf("%q is not supported, using %s\n", args[1], code)
		}
		return nil
	default:
		return fmt.Errorf("unknown lang subcommand %q", args[0])
	}
}

func (a *app) translate(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: mediguard t <key>...")
	}
	for _, key := range args {
		fmt.Println(a.tr.T(key))
	}
	return nil
}
