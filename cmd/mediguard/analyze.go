package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"mediguard/internal/models"
	"mediguard/internal/report"
)

// vitalFlags collects repeated --vital "Name=value" flags.
type vitalFlags map[string]string

func (v vitalFlags) String() string { return fmt.Sprint(map[string]string(v)) }

func (v vitalFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("vital must be Name=value, got %q", s)
	}
	v[strings.TrimSpace(name)] = strings.TrimSpace(value)
	return nil
}

func (a *app) analyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	name := fs.String("name", "", "patient name")
	age := fs.String("age", "", "patient age")
	gender := fs.String("gender", string(report.GenderMale), "Male|Female|Other")
	date := fs.String("date", "", "report date")
	obs := fs.String("obs", "", "observations")
	file := fs.String("file", "", "upload this report file instead of manual vitals")
	upload := fs.Bool("upload", false, "use file upload mode")
	title := fs.String("title", "", "save the result under this title")
	pdfOut := fs.String("pdf", "", "export the result as a PDF to this path")
	vitals := vitalFlags{}
	fs.Var(vitals, "vital", `vital as "Name=value", repeatable (see --list-vitals)`)
	listVitals := fs.Bool("list-vitals", false, "print the vital catalogue and exit")
	fs.Parse(args)

	if *listVitals {
		for _, v := range report.VitalNames {
			fmt.Println(v)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	flow := report.NewFlow(a.api, a.api, a.state, report.Options{
		StepInterval: a.cfg.StepInterval,
		SettleDelay:  a.cfg.SettleDelay,
		NoticeTTL:    a.cfg.NoticeTTL,
		Translator:   a.tr,
	})
	defer flow.Close()

	lastStep := -1
	flow.Subscribe(func(s report.Snapshot) {
		if s.State == report.StateSubmitting && s.Step != lastStep {
			lastStep = s.Step
			fmt.Printf("[%d/%d] %s\n", s.Step+1, len(s.Steps), s.Steps[s.Step])
		}
	})

	var data []byte
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read report file: %w", err)
		}
		data = b
	}

	err := flow.Edit(func(f *report.SubmissionForm) {
		f.PatientName = *name
		f.Age = *age
		f.Gender = report.Gender(*gender)
		f.ReportDate = *date
		f.Observations = *obs
		for k, v := range vitals {
			f.Vitals[k] = v
		}
		if *upload || *file != "" {
			f.Mode = report.ModeFileUpload
		}
		if *file != "" {
			f.File = &report.Attachment{Name: filepath.Base(*file), Data: data}
		}
	})
	if err != nil {
		return err
	}

	fmt.Println(a.tr.T("report.analyzing") + "...")
	res, err := flow.Submit(ctx)
	if err != nil {
		snap := flow.Snapshot()
		if snap.Validation != "" {
			return errors.New(snap.Validation)
		}
		if snap.Failure != "" {
			return fmt.Errorf("%s (%w)", snap.Failure, err)
		}
		return err
	}

	a.printResult(flow.Snapshot())

	if *title != "" {
		if err := flow.Save(ctx, *title); err != nil {
			snap := flow.Snapshot()
			if snap.SaveError != "" {
				return fmt.Errorf("%s (%w)", snap.SaveError, err)
			}
			if snap.Validation != "" {
				return errors.New(snap.Validation)
			}
			return err
		}
		fmt.Println(flow.Snapshot().Notice)
	}

	if *pdfOut != "" {
		if err := a.exportPDF(*pdfOut, *title, res); err != nil {
			return err
		}
		fmt.Println("PDF written to", *pdfOut)
	}
	return nil
}

func (a *app) printResult(s report.Snapshot) {
	res := s.Result
	fmt.Println()
	fmt.Printf("%s: %d/100 (%s)\n", a.tr.T("report.healthScore"), res.HealthScore, res.Band())
	fmt.Printf("%s: %s\n", a.tr.T("report.triage"), res.TriageCategory)
	if res.PredictedClass != "" {
		fmt.Printf("%s: %s\n", a.tr.T("report.predictedClass"), res.PredictedClass)
	}
	fmt.Println(a.tr.T("report.predictions") + ":")
	for _, p := range s.Ranked {
		fmt.Printf("  %-16s %3d%%\n", p.Label, p.Percent())
	}
	if len(res.Warnings) > 0 {
		fmt.Println(a.tr.T("report.warnings") + ":")
		for _, w := range res.Warnings {
			fmt.Println("  -", w)
		}
	}
}

func (a *app) exportPDF(path, title string, res *models.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	exp := report.NewPDFExporter(a.cfg.FontPath, a.tr)
	if err := exp.Export(f, title, res); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("export pdf: %w", err)
	}
	return f.Close()
}
