package domain

// AnswerRow is one flattened answer with its full ancestry. Nullable columns
// are pointers so that "absent" never collides with a real id of 0.
type AnswerRow struct {
	EntryID                    int64    `json:"entry_id"`
	EntryName                  string   `json:"entry_name"`
	CategoryID                 int64    `json:"question_set_id"`
	CategoryName               string   `json:"question_set_name"`
	GroupID                    *int64   `json:"question_group_id"`
	GroupName                  *string  `json:"question_group_name"`
	QuestionID                 int64    `json:"question_id"`
	QuestionName               string   `json:"question_name"`
	ParentQuestionID           *int64   `json:"parent_question_id"`
	AnswerSetID                int64    `json:"answer_set_id"`
	YearFrom                   int64    `json:"answer_set_year_from"`
	YearTo                     int64    `json:"answer_set_year_to"`
	RegionID                   int64    `json:"answer_set_region_id"`
	ExpertID                   *int64   `json:"expert_id"`
	StatusOfParticipants       []int    `json:"status_of_participants"`
	StatusOfParticipantsLabels []string `json:"status_of_participants_labels"`
	AnswerID                   int64    `json:"answer_id"`
	AnswerName                 string   `json:"answer_name"`
	AnswerValue                *int64   `json:"answer_value"`
	AnswerText                 string   `json:"answer_text"`
	Notes                      string   `json:"notes"`
}

// IsSubQuestion reports whether the row was reached through an answer's
// sub-questions rather than directly from a category or group.
func (r AnswerRow) IsSubQuestion() bool {
	return r.ParentQuestionID != nil
}

// EntryFailure records why one entry of a batch produced no rows.
type EntryFailure struct {
	EntryID int64  `json:"entry_id"`
	Error   string `json:"error"`
	Err     error  `json:"-"`
}

// AnswerTable is the concatenation of the rows of several entries, in the
// order the entries were requested.
type AnswerTable struct {
	RunID string `json:"run_id,omitempty"`
	// EntryIDs are the requested entries, including those that failed.
	EntryIDs []int64        `json:"entry_ids"`
	Rows     []AnswerRow    `json:"rows"`
	Failures []EntryFailure `json:"failures,omitempty"`
}

// AllFailed reports whether entries were requested and none of them could be
// flattened. Entries that flatten to zero rows count as successes.
func (t *AnswerTable) AllFailed() bool {
	return len(t.EntryIDs) > 0 && len(t.Failures) == len(t.EntryIDs)
}
