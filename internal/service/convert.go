package service

import (
	"strings"

	"drh-client/internal/domain"
	"drh-client/internal/dto"
)

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func namedRefs(refs []dto.NamedRef) []domain.NamedRef {
	out := make([]domain.NamedRef, 0, len(refs))
	for _, r := range refs {
		out = append(out, domain.NamedRef{ID: r.ID, Name: r.Name})
	}
	return out
}

func toEntrySummaryRow(item *dto.EntryListItem) domain.EntrySummaryRow {
	row := domain.EntrySummaryRow{
		EntryID:     item.ID,
		ExpertID:    item.Expert.ID,
		ExpertName:  fullName(item.Expert.FirstName, item.Expert.LastName),
		PollID:      item.Poll.ID,
		PollName:    item.Poll.Name,
		DateCreated: item.DateCreated,
		YearFrom:    item.YearFrom,
		YearTo:      item.YearTo,
		RegionID:    item.Region.ID,
		RegionName:  item.Region.Name,
		Tags:        namedRefs(item.Tags),
	}
	if item.Name.Name != nil {
		row.EntryName = *item.Name.Name
	}
	return row
}

func toTagRow(tag *dto.Tag) domain.TagRow {
	return domain.TagRow{
		TagID:             tag.ID,
		TagName:           tag.Name,
		Approved:          tag.Approved,
		ParentTagID:       tag.ParentTagID,
		Created:           tag.Created,
		CreatedByID:       tag.CreatedBy.ID,
		CreatedByUsername: tag.CreatedBy.Username,
		CreatedByName:     fullName(tag.CreatedBy.FirstName, tag.CreatedBy.LastName),
	}
}

func toRegionRow(region *dto.Region) domain.RegionRow {
	return domain.RegionRow{
		RegionID:      region.ID,
		RegionName:    region.Name,
		Description:   region.Description,
		CreatedByID:   region.CreatedBy.ID,
		CreatedByName: fullName(region.CreatedBy.FirstName, region.CreatedBy.LastName),
		Geom:          domain.MultiPolygon(region.Geom.Coordinates),
		Tags:          namedRefs(region.Tags),
	}
}

func toQuestionRelations(rels []dto.QuestionRelation) []domain.QuestionRelation {
	out := make([]domain.QuestionRelation, 0, len(rels))
	for _, r := range rels {
		out = append(out, domain.QuestionRelation{ID: r.ID, FirstQuestionID: r.FirstQuestionID, SecondQuestionID: r.SecondQuestionID})
	}
	return out
}

// toQuestionAnswerRows emits one row per answer, in response order.
func toQuestionAnswerRows(entries []dto.QuestionEntry) []domain.QuestionAnswerRow {
	var rows []domain.QuestionAnswerRow
	for _, e := range entries {
		for _, a := range e.Answers {
			row := domain.QuestionAnswerRow{
				EntryID:     e.ID,
				EntryName:   e.Title,
				DateCreated: e.DateCreated,
				PollID:      e.Poll.ID,
				PollName:    e.Poll.Name,
				AnswerName:  a.Name,
				AnswerValue: a.Value,
				AnswerText:  a.TextInput,
				YearFrom:    a.YearFrom,
				YearTo:      a.YearTo,
				ExpertID:    a.Expert.ExpertID,
				ExpertName:  fullName(a.Expert.FirstName, a.Expert.LastName),
				RegionID:    a.RegionID,
			}
			if a.StatusOfParticipants != nil {
				row.StatusOfParticipants = a.StatusOfParticipants.Name
			}
			rows = append(rows, row)
		}
	}
	if rows == nil {
		rows = []domain.QuestionAnswerRow{}
	}
	return rows
}

// toEntryRegionRow returns nil when the document carries no region.
func toEntryRegionRow(entry *domain.Entry, doc *dto.EntryDocument) *domain.EntryRegionRow {
	if doc.Region == nil {
		return nil
	}
	row := &domain.EntryRegionRow{
		EntryID:           entry.ID,
		EntryName:         entry.Name,
		RegionID:          doc.Region.ID,
		RegionName:        doc.Region.Name,
		RegionDescription: doc.Region.Description,
	}
	if doc.Region.GeoJSON != nil {
		row.RegionGeom = domain.MultiPolygon(doc.Region.GeoJSON.Coordinates)
	}
	return row
}
