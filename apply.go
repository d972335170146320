package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

type applyReport struct {
	Applied  int            `json:"applied"`
	Skipped  int            `json:"skipped"`
	Failures []applyFailure `json:"failures,omitempty"`
}

type applyFailure struct {
	Column string `json:"column"`
	Error  string `json:"error"`
}

// applyPlan writes the proposed comment of every selected row to the target
// table. Rows fail independently: a bad row is reported and the rest still
// run, so the report's Applied count matches what actually reached the
// database.
func applyPlan(store metastore, ref tableRef, rows []DecisionRow) applyReport {
	report := applyReport{}
	for _, row := range rows {
		if !row.Apply {
			report.Skipped++
			continue
		}
		if err := store.SetComment(ref, row.TargetColumn, row.ProposedComment); err != nil {
			slog.Error("comment update failed", "column", row.TargetColumn, "err", err)
			report.Failures = append(report.Failures, applyFailure{
				Column: row.TargetColumn,
				Error:  err.Error(),
			})
			continue
		}
		report.Applied++
	}
	return report
}

// dryRunStore prints the statements a SetComment would execute instead of
// executing them. Columns still hits the wrapped store.
type dryRunStore struct {
	metastore
}

func (d dryRunStore) SetComment(ref tableRef, column, comment string) error {
	fmt.Println(commentStatement(ref, column, comment))
	return nil
}

func loadPlan(path string) (plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plan{}, err
	}

	var p plan
	if err := json.Unmarshal(data, &p); err != nil {
		return plan{}, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if p.Target == "" {
		return plan{}, fmt.Errorf("plan %s has no target table", path)
	}
	return p, nil
}
