package dto

// Page is the envelope of every paginated list endpoint.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type EntryListItem struct {
	ID          int64      `json:"id"`
	Name        NameField  `json:"name"`
	Expert      PersonRef  `json:"expert"`
	Poll        NamedRef   `json:"poll"`
	DateCreated string     `json:"date_created"`
	YearFrom    *int64     `json:"year_from"`
	YearTo      *int64     `json:"year_to"`
	Region      NamedRef   `json:"region"`
	Tags        []NamedRef `json:"tags"`
}

type UserRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Tag is returned by both entry_tags and region_tags.
type Tag struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Approved    bool    `json:"approved"`
	ParentTagID *int64  `json:"parent_tag_id"`
	Created     string  `json:"created"`
	CreatedBy   UserRef `json:"created_by"`
}

type Region struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedBy   UserRef    `json:"created_by"`
	Geom        Geometry   `json:"geom"`
	Tags        []NamedRef `json:"tags"`
}

type (
	EntryPage  = Page[EntryListItem]
	TagPage    = Page[Tag]
	RegionPage = Page[Region]
)

type QuestionRelation struct {
	ID               int64 `json:"id"`
	FirstQuestionID  int64 `json:"first_question_id"`
	SecondQuestionID int64 `json:"second_question_id"`
}

// QuestionEntry is one element of entries-by-question.
type QuestionEntry struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	DateCreated string           `json:"date_created"`
	Poll        NamedRef         `json:"poll"`
	Answers     []QuestionAnswer `json:"answers"`
}

type QuestionAnswer struct {
	Name                 string           `json:"name"`
	Value                *int64           `json:"value"`
	TextInput            string           `json:"text_input"`
	YearFrom             *int64           `json:"year_from"`
	YearTo               *int64           `json:"year_to"`
	Expert               QuestionExpert   `json:"expert"`
	RegionID             *int64           `json:"region_id"`
	StatusOfParticipants *StatusReference `json:"status_of_participants"`
}

type QuestionExpert struct {
	ExpertID  int64  `json:"expert_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type StatusReference struct {
	Name string `json:"name"`
}
