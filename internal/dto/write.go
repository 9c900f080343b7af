package dto

// NewEntryRequest is the body of POST entries/.
type NewEntryRequest struct {
	PollID            *int64  `json:"poll_id"`
	RegionID          *int64  `json:"region_id"`
	SecondarySourceID *int64  `json:"secondary_source_id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	ExternalURL       string  `json:"external_url"`
	YearFrom          *int64  `json:"year_from"`
	YearTo            *int64  `json:"year_to"`
	Tags              []int64 `json:"tags,omitempty"`
	DataSourceID      *int64  `json:"data_source_id,omitempty"`
	EntrySource       string  `json:"entry_source,omitempty"`
	ExpertSourceID    *int64  `json:"expert_source_id,omitempty"`
	SupervisedByID    *int64  `json:"supervised_by_id,omitempty"`
}

// NewAnswerSetRequest is the body of POST entries/{id}/answersets/.
type NewAnswerSetRequest struct {
	QuestionID *int64      `json:"question_id"`
	RegionID   *int64      `json:"region_id,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Answers    []NewAnswer `json:"answers"`
	BranchIDs  []int64     `json:"branch_ids,omitempty"`
	YearFrom   *int64      `json:"year_from,omitempty"`
	YearTo     *int64      `json:"year_to,omitempty"`
}

type NewAnswer struct {
	TemplateAnswerID *int64 `json:"template_answer_id"`
	Tooltip          string `json:"tooltip,omitempty"`
	TextInput        string `json:"text_input,omitempty"`
}

// NewTagRequest is the body of POST entry_tags/ and region_tags/.
type NewTagRequest struct {
	Name        string `json:"name"`
	ParentTagID *int64 `json:"parent_tag_id,omitempty"`
}

// NewRegionRequest is the body of POST regions/.
type NewRegionRequest struct {
	Name           string    `json:"name,omitempty"`
	Description    string    `json:"description,omitempty"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	Geom           *Geometry `json:"geom"`
	Tags           []int64   `json:"tags,omitempty"`
}
