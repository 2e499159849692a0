package service

import (
	"pgcet-quiz/internal/domain"
	"pgcet-quiz/internal/dto"
)

func toOptionViews(o domain.Options) []dto.OptionView {
	views := make([]dto.OptionView, 0, len(domain.OptionLetters))
	for _, l := range domain.OptionLetters {
		text, _ := o.Get(l)
		views = append(views, dto.OptionView{Letter: string(l), Text: text})
	}
	return views
}

// toQuestionView never carries the correct option.
func toQuestionView(q *domain.Question) dto.QuestionView {
	return dto.QuestionView{
		ID:      q.ID,
		Text:    q.Text,
		Options: toOptionViews(q.Options),
		Year:    q.YearValue(),
	}
}

// toSessionView reveals the answer of the current question only after it was submitted.
func toSessionView(s domain.Session) *dto.SessionView {
	view := &dto.SessionView{
		ID:        s.ID,
		State:     string(s.State),
		Mode:      string(s.Mode),
		Year:      s.Year,
		Position:  s.Cursor,
		Total:     s.Total(),
		Score:     s.Score,
		Finished:  s.Finished,
		Selected:  string(s.Selected),
		LastError: s.LastError,
	}

	q, hasQuestion := s.Current()
	if hasQuestion && !s.Finished {
		qv := toQuestionView(&q)
		view.Question = &qv
	}

	if hasQuestion && (s.State == domain.StateSubmitted || s.State == domain.StateFinished) {
		if resp, ok := s.LastResponse(); ok && resp.Position == s.Cursor {
			view.Feedback = &dto.FeedbackView{
				SelectedOption: string(resp.SelectedOption),
				SelectedText:   resp.SelectedText,
				IsCorrect:      resp.IsCorrect,
				CorrectOption:  string(q.CorrectOption),
				CorrectText:    q.CorrectValue(),
				Explanation:    q.Explanation,
			}
		}
	}
	return view
}

func toAttemptView(a *domain.Attempt) dto.AttemptView {
	responses := make([]dto.ResponseView, 0, len(a.Responses))
	for _, r := range a.Responses {
		responses = append(responses, dto.ResponseView{
			QuestionID:     r.QuestionID,
			Position:       r.Position,
			SelectedOption: string(r.SelectedOption),
			SelectedText:   r.SelectedText,
			IsCorrect:      r.IsCorrect,
			AnsweredAt:     r.AnsweredAt,
		})
	}
	return dto.AttemptView{
		ID:             a.ID,
		Year:           a.Year,
		TotalQuestions: a.TotalQuestions,
		CorrectAnswers: a.CorrectAnswers,
		WrongAnswers:   a.WrongAnswers,
		CreatedAt:      a.CreatedAt,
		Responses:      responses,
	}
}

func toStatsRowViews(rows []domain.StatsRow) []dto.StatsRowView {
	views := make([]dto.StatsRowView, 0, len(rows))
	for _, row := range rows {
		details := make([]dto.AnswerDetailView, 0, len(row.Details))
		for _, d := range row.Details {
			details = append(details, dto.AnswerDetailView{
				AttemptID:      d.AttemptID,
				QuestionID:     d.QuestionID,
				QuestionText:   d.QuestionText,
				Options:        toOptionViews(d.Options),
				CorrectOption:  string(d.CorrectOption),
				CorrectText:    d.CorrectText,
				SelectedOption: string(d.SelectedOption),
				SelectedText:   d.SelectedText,
				IsCorrect:      d.IsCorrect,
				Explanation:    d.Explanation,
				AnsweredAt:     d.AnsweredAt,
			})
		}
		views = append(views, dto.StatsRowView{
			Date:    row.Date,
			Total:   row.Total,
			Correct: row.Correct,
			Wrong:   row.Wrong,
			Details: details,
		})
	}
	return views
}
