package main

// ColumnMeta is one column of a table snapshot: its name and the comment
// currently stored for it (empty when undocumented).
type ColumnMeta struct {
	Name    string `json:"column_name"`
	Comment string `json:"comment"`
}

// DecisionRow is the proposed action for one target column. Apply and
// ProposedComment are the operator-editable fields; everything else records
// what the analysis saw.
type DecisionRow struct {
	Apply           bool   `json:"apply"`
	TargetColumn    string `json:"target_column"`
	TargetComment   string `json:"target_comment"`
	SourceColumn    string `json:"source_column"`
	SourceComment   string `json:"source_comment"`
	ProposedComment string `json:"proposed_comment"`
}

// plan is what analyze writes and apply reads: the decision table plus the
// target table it was built for and the threshold used.
type plan struct {
	Target    string        `json:"target_table"`
	Threshold int           `json:"threshold"`
	Rows      []DecisionRow `json:"rows"`
}

// reconcile aligns target columns with source columns and proposes a comment
// for each. Matching is greedy in target order: each target column claims the
// closest not-yet-claimed source column within threshold, so no source column
// is used twice. A target column's own non-empty comment always beats the
// matched source comment.
func reconcile(source, target []ColumnMeta, threshold int) []DecisionRow {
	sourceNames := make([]string, len(source))
	for i, col := range source {
		sourceNames[i] = col.Name
	}

	consumed := make(map[string]bool)
	rows := make([]DecisionRow, 0, len(target))

	for _, targetCol := range target {
		var candidates []string
		for _, name := range sourceNames {
			if !consumed[name] {
				candidates = append(candidates, name)
			}
		}

		sourceCol := ""
		sourceComment := ""
		if match, ok := findBestMatch(targetCol.Name, candidates, threshold); ok {
			consumed[match] = true
			sourceCol = match
			sourceComment = commentOf(source, match)
		}

		proposed := targetCol.Comment
		if proposed == "" {
			proposed = sourceComment
		}

		rows = append(rows, DecisionRow{
			Apply:           true,
			TargetColumn:    targetCol.Name,
			TargetComment:   targetCol.Comment,
			SourceColumn:    sourceCol,
			SourceComment:   sourceComment,
			ProposedComment: proposed,
		})
	}

	return rows
}

// commentOf returns the comment of the named column. Names are unique per
// table in well-formed metadata; on a duplicate the first occurrence wins.
func commentOf(cols []ColumnMeta, name string) string {
	for _, col := range cols {
		if col.Name == name {
			return col.Comment
		}
	}
	return ""
}
