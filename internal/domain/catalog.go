package domain

// EntrySummaryRow is one row of the entries list endpoint.
type EntrySummaryRow struct {
	EntryID     int64      `json:"entry_id"`
	EntryName   string     `json:"entry_name"`
	ExpertID    int64      `json:"expert_id"`
	ExpertName  string     `json:"expert_name"`
	PollID      int64      `json:"poll_id"`
	PollName    string     `json:"poll_name"`
	DateCreated string     `json:"date_created"`
	YearFrom    *int64     `json:"year_from"`
	YearTo      *int64     `json:"year_to"`
	RegionID    int64      `json:"region_id"`
	RegionName  string     `json:"region_name"`
	Tags        []NamedRef `json:"tags"`
}

// TagRow is shared by entry tags and region tags.
type TagRow struct {
	TagID             int64  `json:"tag_id"`
	TagName           string `json:"tag_name"`
	Approved          bool   `json:"approved"`
	ParentTagID       *int64 `json:"parent_tag_id"`
	Created           string `json:"created"`
	CreatedByID       int64  `json:"created_by_id"`
	CreatedByUsername string `json:"created_by_username"`
	CreatedByName     string `json:"created_by_name"`
}

// MultiPolygon holds GeoJSON MultiPolygon coordinates: polygons, rings,
// positions, then [x, y].
type MultiPolygon [][][][]float64

type RegionRow struct {
	RegionID      int64        `json:"region_id"`
	RegionName    string       `json:"region_name"`
	Description   string       `json:"description"`
	CreatedByID   int64        `json:"created_by_id"`
	CreatedByName string       `json:"created_by_name"`
	Geom          MultiPolygon `json:"geom"`
	Tags          []NamedRef   `json:"tags"`
}

// QuestionRelation is one raw pair from the questionrelation endpoint.
type QuestionRelation struct {
	ID               int64 `json:"id"`
	FirstQuestionID  int64 `json:"first_question_id"`
	SecondQuestionID int64 `json:"second_question_id"`
}

// RelatedQuestion maps a question to the smallest question id of its
// connected component.
type RelatedQuestion struct {
	QuestionID        int64 `json:"question_id"`
	RelatedQuestionID int64 `json:"related_question_id"`
}

// QuestionAnswerRow is one answer returned by entries-by-question.
type QuestionAnswerRow struct {
	EntryID              int64  `json:"entry_id"`
	EntryName            string `json:"entry_name"`
	DateCreated          string `json:"date_created"`
	PollID               int64  `json:"poll_id"`
	PollName             string `json:"poll_name"`
	AnswerName           string `json:"answer_name"`
	AnswerValue          *int64 `json:"answer_value"`
	AnswerText           string `json:"answer_text"`
	YearFrom             *int64 `json:"year_from"`
	YearTo               *int64 `json:"year_to"`
	ExpertID             int64  `json:"expert_id"`
	ExpertName           string `json:"expert_name"`
	RegionID             *int64 `json:"region_id"`
	StatusOfParticipants string `json:"status_participants"`
}

// EntryInfo is the metadata part of a full entry document.
type EntryInfo struct {
	EntryID     int64   `json:"entry_id"`
	EntryName   string  `json:"entry_name"`
	Description string  `json:"description"`
	DateCreated string  `json:"date_created"`
	YearFrom    *int64  `json:"year_from"`
	YearTo      *int64  `json:"year_to"`
	RegionID    *int64  `json:"region_id"`
	RegionName  *string `json:"region_name"`
	ExpertID    *int64  `json:"expert_id"`
	ExpertName  *string `json:"expert_name"`
	PollID      *int64  `json:"poll_id"`
	PollName    *string `json:"poll_name"`
	Source      string  `json:"entry_source,omitempty"`
}

// Info extracts the entry metadata.
func (e *Entry) Info() EntryInfo {
	info := EntryInfo{
		EntryID:     e.ID,
		EntryName:   e.Name,
		Description: e.Description,
		DateCreated: e.DateCreated,
		YearFrom:    e.YearFrom,
		YearTo:      e.YearTo,
		Source:      e.Source.Kind,
	}
	if e.Region != nil {
		info.RegionID, info.RegionName = &e.Region.ID, &e.Region.Name
	}
	if e.Expert != nil {
		name := e.Expert.FullName()
		info.ExpertID, info.ExpertName = &e.Expert.ID, &name
	}
	if e.Poll != nil {
		info.PollID, info.PollName = &e.Poll.ID, &e.Poll.Name
	}
	return info
}

type EntryTagRow struct {
	EntryID      int64  `json:"entry_id"`
	EntryName    string `json:"entry_name"`
	EntryTagID   int64  `json:"entry_tag_id"`
	EntryTagName string `json:"entry_tag_name"`
}

// TagRows lists the entry's tags, one row per distinct tag id.
func (e *Entry) TagRows() []EntryTagRow {
	rows := make([]EntryTagRow, 0, len(e.Tags))
	seen := make(map[int64]struct{}, len(e.Tags))
	for _, tag := range e.Tags {
		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}
		rows = append(rows, EntryTagRow{
			EntryID:      e.ID,
			EntryName:    e.Name,
			EntryTagID:   tag.ID,
			EntryTagName: tag.Name,
		})
	}
	return rows
}

// EntryRegionRow pairs an entry with the full description of its region.
type EntryRegionRow struct {
	EntryID           int64        `json:"entry_id"`
	EntryName         string       `json:"entry_name"`
	RegionID          int64        `json:"region_id"`
	RegionName        string       `json:"region_name"`
	RegionGeom        MultiPolygon `json:"region_geom"`
	RegionDescription string       `json:"region_description"`
}
