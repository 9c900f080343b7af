package export

import (
	"encoding/json"
	"strconv"

	"drh-client/internal/domain"
)

var AnswerRowHeader = []string{
	"entry_id", "entry_name", "question_set_id", "question_set_name",
	"question_group_id", "question_group_name", "question_id", "question_name",
	"parent_question_id", "answer_set_id", "answer_set_year_from", "answer_set_year_to",
	"answer_set_region_id", "expert_id", "status_of_participants", "status_of_participants_labels",
	"answer_id", "answer_name", "answer_value", "answer_text", "notes",
}

func AnswerRows(rows []domain.AnswerRow) Table {
	t := Table{Header: AnswerRowHeader, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			itoa(r.EntryID), r.EntryName, itoa(r.CategoryID), r.CategoryName,
			optInt(r.GroupID), optString(r.GroupName), itoa(r.QuestionID), r.QuestionName,
			optInt(r.ParentQuestionID), itoa(r.AnswerSetID), itoa(r.YearFrom), itoa(r.YearTo),
			itoa(r.RegionID), optInt(r.ExpertID), list(r.StatusOfParticipants), list(r.StatusOfParticipantsLabels),
			itoa(r.AnswerID), r.AnswerName, optInt(r.AnswerValue), r.AnswerText, r.Notes,
		})
	}
	return t
}

// Failures lists the entries of a batch that produced no rows.
func Failures(failures []domain.EntryFailure) Table {
	t := Table{Header: []string{"entry_id", "error"}}
	for _, f := range failures {
		t.Rows = append(t.Rows, []string{itoa(f.EntryID), f.Error})
	}
	return t
}

func EntrySummaries(rows []domain.EntrySummaryRow) Table {
	t := Table{Header: []string{
		"entry_id", "entry_name", "expert_id", "expert_name", "poll_id", "poll_name",
		"date_created", "year_from", "year_to", "region_id", "region_name", "tags",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			itoa(r.EntryID), r.EntryName, itoa(r.ExpertID), r.ExpertName, itoa(r.PollID), r.PollName,
			r.DateCreated, optInt(r.YearFrom), optInt(r.YearTo), itoa(r.RegionID), r.RegionName, refNames(r.Tags),
		})
	}
	return t
}

func Tags(rows []domain.TagRow) Table {
	t := Table{Header: []string{
		"tag_id", "tag_name", "approved", "parent_tag_id", "created",
		"created_by_id", "created_by_username", "created_by_name",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			itoa(r.TagID), r.TagName, strconv.FormatBool(r.Approved), optInt(r.ParentTagID), r.Created,
			itoa(r.CreatedByID), r.CreatedByUsername, r.CreatedByName,
		})
	}
	return t
}

// Regions omits the geometry, which does not fit a table cell.
func Regions(rows []domain.RegionRow) Table {
	t := Table{Header: []string{"region_id", "region_name", "description", "created_by_id", "created_by_name", "polygons", "tags"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			itoa(r.RegionID), r.RegionName, r.Description, itoa(r.CreatedByID), r.CreatedByName,
			strconv.Itoa(len(r.Geom)), refNames(r.Tags),
		})
	}
	return t
}

func RelatedQuestions(rows []domain.RelatedQuestion) Table {
	t := Table{Header: []string{"question_id", "related_question_id"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{itoa(r.QuestionID), itoa(r.RelatedQuestionID)})
	}
	return t
}

func QuestionRelations(rows []domain.QuestionRelation) Table {
	t := Table{Header: []string{"id", "first_question_id", "second_question_id"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{itoa(r.ID), itoa(r.FirstQuestionID), itoa(r.SecondQuestionID)})
	}
	return t
}

func QuestionAnswers(rows []domain.QuestionAnswerRow) Table {
	t := Table{Header: []string{
		"entry_id", "entry_name", "date_created", "poll_id", "poll_name", "answer_name", "answer_value",
		"answer_text", "year_from", "year_to", "expert_id", "expert_name", "region_id", "status_participants",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			itoa(r.EntryID), r.EntryName, r.DateCreated, itoa(r.PollID), r.PollName, r.AnswerName, optInt(r.AnswerValue),
			r.AnswerText, optInt(r.YearFrom), optInt(r.YearTo), itoa(r.ExpertID), r.ExpertName, optInt(r.RegionID),
			r.StatusOfParticipants,
		})
	}
	return t
}

// EntryInfo renders one entry's metadata as a single row.
func EntryInfo(info domain.EntryInfo) Table {
	return Table{
		Header: []string{
			"entry_id", "entry_name", "description", "date_created", "year_from", "year_to",
			"region_id", "region_name", "expert_id", "expert_name", "poll_id", "poll_name", "entry_source",
		},
		Rows: [][]string{{
			itoa(info.EntryID), info.EntryName, info.Description, info.DateCreated, optInt(info.YearFrom), optInt(info.YearTo),
			optInt(info.RegionID), optString(info.RegionName), optInt(info.ExpertID), optString(info.ExpertName),
			optInt(info.PollID), optString(info.PollName), info.Source,
		}},
	}
}

func EntryTags(rows []domain.EntryTagRow) Table {
	t := Table{Header: []string{"entry_id", "entry_name", "entry_tag_id", "entry_tag_name"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{itoa(r.EntryID), r.EntryName, itoa(r.EntryTagID), r.EntryTagName})
	}
	return t
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func optInt(v *int64) string {
	if v == nil {
		return ""
	}
	return itoa(*v)
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// list encodes a slice as a JSON array so that codes and labels keep their
// order in a single cell.
func list[T int | string](v []T) string {
	if v == nil {
		v = []T{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func refNames(refs []domain.NamedRef) string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return list(names)
}
