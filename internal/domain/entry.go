package domain

// Entry is one record of the Database of Religious History together with
// its full question tree.
type Entry struct {
	ID          int64
	Name        string
	Description string
	DateCreated string
	YearFrom    *int64
	YearTo      *int64
	Region      *NamedRef
	Expert      *Person
	Poll        *NamedRef
	Tags        []NamedRef
	Source      EntrySource
	Categories  []Category
}

// Source kinds accepted by the DRH API.
const (
	SourcePersonalExpertise = "personal_expertise"
	SourceSecondarySource   = "secondary_source"
	SourceExpertSource      = "expert_source"
	SourceSupervisedEntry   = "supervised_entry"
)

// EntrySource records where the answers of an entry came from. Which of the
// id fields is set depends on Kind.
type EntrySource struct {
	Kind              string
	SecondarySourceID *int64
	ExpertSourceID    *int64
	SupervisedByID    *int64
	DataSourceID      *int64
}

// NamedRef is the {id, name} pair the API uses for regions, polls and tags.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Person struct {
	ID        int64
	FirstName string
	LastName  string
}

// FullName joins first and last name with a single space.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Category (question set) owns either direct Questions or Groups. An empty
// Questions list means the Groups carry the questions.
type Category struct {
	ID        int64
	Name      string
	Questions []Question
	Groups    []Group
}

type Group struct {
	ID        int64
	Name      string
	Questions []Question
}

// Question is a survey question. It appears both at the top of a category
// or group and, recursively, as a sub-question of an Answer.
type Question struct {
	ID         int64
	Name       string
	AnswerSets []AnswerSet
}

// AnswerSet is one context (years, region, expert, participants) in which a
// question was answered.
type AnswerSet struct {
	ID                   int64
	YearFrom             int64
	YearTo               int64
	RegionID             int64
	ExpertID             *int64
	StatusOfParticipants []int
	Notes                string
	Answers              []Answer
}

type Answer struct {
	ID           int64
	Name         string
	Value        *int64
	TextInput    string
	SubQuestions []Question
}
