package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var cli struct {
	Describe DescribeCmd `cmd:"" help:"Print a table's column metadata"`
	Analyze  AnalyzeCmd  `cmd:"" help:"Build a comment plan for a target table from a source table"`
	Apply    ApplyCmd    `cmd:"" help:"Apply an edited comment plan to its target table"`
}

// storeFlags select the metadata backend, shared by every command.
type storeFlags struct {
	DSN  string `name:"dsn" env:"TABITABO_DSN" help:"postgres:// URL or DuckDB database path (empty for in-memory DuckDB)"`
	Demo bool   `help:"Use the built-in demo tables instead of a database"`
}

func (f storeFlags) open() (metastore, error) {
	return openStore(f.DSN, f.Demo)
}

type DescribeCmd struct {
	Table string `arg:"" help:"Table to describe ([catalog.][schema.]table)"`
	storeFlags
}

func (c *DescribeCmd) Run() error {
	ref, err := parseTableRef(c.Table)
	if err != nil {
		return err
	}

	store, err := c.open()
	if err != nil {
		return err
	}
	defer store.Close()

	cols, err := store.Columns(ref)
	if err != nil {
		return err
	}

	return printJSON(cols)
}

type AnalyzeCmd struct {
	Source    string `arg:"" help:"Source table supplying comments (read-only)"`
	Target    string `arg:"" help:"Target table receiving comments"`
	Threshold int    `default:"3" help:"Largest edit distance accepted as a column match"`
	Out       string `type:"path" help:"Write the plan to a file instead of stdout"`
	storeFlags
}

func (c *AnalyzeCmd) Run() error {
	sourceRef, err := parseTableRef(c.Source)
	if err != nil {
		return err
	}
	targetRef, err := parseTableRef(c.Target)
	if err != nil {
		return err
	}

	store, err := c.open()
	if err != nil {
		return err
	}
	defer store.Close()

	source, err := store.Columns(sourceRef)
	if err != nil {
		return err
	}
	target, err := store.Columns(targetRef)
	if err != nil {
		return err
	}
	if len(source) == 0 {
		return fmt.Errorf("no columns found for source table %s", sourceRef)
	}
	if len(target) == 0 {
		return fmt.Errorf("no columns found for target table %s", targetRef)
	}

	rows := reconcile(source, target, c.Threshold)

	matched := 0
	for _, row := range rows {
		if row.SourceColumn != "" {
			matched++
		}
	}
	slog.Info("analysis complete",
		"source", sourceRef.String(), "target", targetRef.String(),
		"target_columns", len(rows), "matches", matched)

	p := plan{Target: targetRef.String(), Threshold: c.Threshold, Rows: rows}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if c.Out != "" {
		return os.WriteFile(c.Out, append(data, '\n'), 0o644)
	}
	fmt.Println(string(data))
	return nil
}

type ApplyCmd struct {
	Plan   string `arg:"" type:"path" help:"Plan file produced by analyze"`
	DryRun bool   `help:"Print the statements without executing them"`
	storeFlags
}

func (c *ApplyCmd) Run() error {
	p, err := loadPlan(c.Plan)
	if err != nil {
		return err
	}
	ref, err := parseTableRef(p.Target)
	if err != nil {
		return err
	}

	store, err := c.open()
	if err != nil {
		return err
	}
	defer store.Close()

	var sink metastore = store
	if c.DryRun {
		sink = dryRunStore{store}
	}

	report := applyPlan(sink, ref, p.Rows)
	if report.Applied == 0 && len(report.Failures) == 0 {
		slog.Warn("no rows selected for update", "plan", c.Plan)
	}
	slog.Info("apply finished",
		"target", ref.String(), "applied", report.Applied,
		"skipped", report.Skipped, "failed", len(report.Failures))

	return printJSON(report)
}

func main() {
	closeLogs := setupLogger()
	ctx := kong.Parse(&cli)
	err := ctx.Run()
	closeLogs()
	ctx.FatalIfErrorf(err)
}

func printJSON(v any) error {
	data, err := json.Marshal(v)
	fmt.Println(string(data))

	return err
}
