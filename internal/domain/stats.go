package domain

import "sort"

// StatsDateLayout is the calendar-day key of a stats row.
const StatsDateLayout = "2006-01-02"

// StatsRow summarizes the answers recorded on one calendar day (UTC).
type StatsRow struct {
	Date    string         `json:"date"`
	Total   int            `json:"total"`
	Correct int            `json:"correct"`
	Wrong   int            `json:"wrong"`
	Details []AnswerDetail `json:"details"`
}

// AggregateStats groups answers by the UTC day they were recorded on.
// Rows come back oldest day first and details keep their input order,
// so Total always equals Correct+Wrong and len(Details).
func AggregateStats(details []AnswerDetail) []StatsRow {
	rows := make([]StatsRow, 0)
	index := make(map[string]int)

	for _, d := range details {
		key := d.AnsweredAt.UTC().Format(StatsDateLayout)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, StatsRow{Date: key, Details: make([]AnswerDetail, 0)})
		}
		row := &rows[i]
		row.Total++
		if d.IsCorrect {
			row.Correct++
		} else {
			row.Wrong++
		}
		row.Details = append(row.Details, d)
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Date < rows[b].Date
	})
	return rows
}

// OnlyWrong keeps the incorrect answers.
func OnlyWrong(details []AnswerDetail) []AnswerDetail {
	out := make([]AnswerDetail, 0, len(details))
	for _, d := range details {
		if !d.IsCorrect {
			out = append(out, d)
		}
	}
	return out
}
