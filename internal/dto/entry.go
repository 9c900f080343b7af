package dto

// EntryDocument is the body of GET entries/{id}. Scalar fields are pointers
// and lists are left nil when the key is absent so that validation can tell
// a missing key from a zero value.
type EntryDocument struct {
	ID                *int64             `json:"id"`
	Name              *NameField         `json:"name"`
	Description       *string            `json:"description"`
	DateCreated       *string            `json:"date_created"`
	YearFrom          *int64             `json:"year_from"`
	YearTo            *int64             `json:"year_to"`
	Region            *RegionRef         `json:"region"`
	Expert            *PersonRef         `json:"expert"`
	Poll              *NamedRef          `json:"poll"`
	Tags              []NamedRef         `json:"tags"`
	EntrySource       *string            `json:"entry_source"`
	SecondarySourceID *int64             `json:"secondary_source_id"`
	ExpertSourceID    *int64             `json:"expert_source_id"`
	SupervisedByID    *int64             `json:"supervised_by_id"`
	DataSourceID      *int64             `json:"data_source_id"`
	Categories        []CategoryDocument `json:"categories"`
}

// NameField wraps names the API nests as {"name": "..."}.
type NameField struct {
	Name *string `json:"name"`
}

type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PersonRef struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegionRef struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	GeoJSON     *Geometry `json:"geojson,omitempty"`
}

// Geometry is a GeoJSON geometry. The DRH API only uses MultiPolygon.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates [][][][]float64 `json:"coordinates"`
}

type CategoryDocument struct {
	ID        *int64             `json:"id"`
	Name      *string            `json:"name"`
	Questions []QuestionDocument `json:"questions"`
	Groups    []GroupDocument    `json:"groups"`
}

type GroupDocument struct {
	ID        *int64             `json:"id"`
	Name      *string            `json:"name"`
	Questions []QuestionDocument `json:"questions"`
}

type QuestionDocument struct {
	ID         *int64              `json:"id"`
	Name       *string             `json:"name"`
	AnswerSets []AnswerSetDocument `json:"answer_sets"`
}

type AnswerSetDocument struct {
	ID                   *int64           `json:"id"`
	YearFrom             *int64           `json:"year_from"`
	YearTo               *int64           `json:"year_to"`
	RegionID             *int64           `json:"region_id"`
	ExpertID             *int64           `json:"expert_id"`
	StatusOfParticipants []int            `json:"status_of_participants"`
	Notes                *string          `json:"notes"`
	Answers              []AnswerDocument `json:"answers"`
}

type AnswerDocument struct {
	ID           *int64             `json:"id"`
	Name         *string            `json:"name"`
	Value        *int64             `json:"value"`
	TextInput    *string            `json:"text_input"`
	SubQuestions []QuestionDocument `json:"sub_questions"`
}
