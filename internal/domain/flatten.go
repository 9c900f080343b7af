package domain

import (
	"fmt"
	"slices"
)

// rowContext carries the ancestry shared by every row emitted below one
// category or group.
type rowContext struct {
	entryID      int64
	entryName    string
	categoryID   int64
	categoryName string
	groupID      *int64
	groupName    *string
}

// Flatten turns the entry's question tree into answer rows.
func (e *Entry) Flatten() ([]AnswerRow, error) {
	return FlattenEntry(e.ID, e.Name, e.Categories)
}

// FlattenEntry walks categories depth-first and emits one row per
// (question, answer set, answer). Each answer's sub-questions are
// deduplicated by id, first occurrence wins, and visited right after the
// answer's own row with the enclosing question as parent. Deduplication is
// scoped to one answer: the same sub-question under two different answers is
// visited twice.
//
// A status_of_participants code without a label fails the whole entry.
func FlattenEntry(entryID int64, entryName string, categories []Category) ([]AnswerRow, error) {
	rows := make([]AnswerRow, 0, CountAnswerTriples(categories))
	root := fmt.Sprintf("entry[%d]", entryID)

	for ci, category := range categories {
		ctx := rowContext{
			entryID:      entryID,
			entryName:    entryName,
			categoryID:   category.ID,
			categoryName: category.Name,
		}
		categoryPath := fmt.Sprintf("%s.categories[%d]", root, ci)

		if len(category.Questions) > 0 {
			var err error
			rows, err = flattenQuestions(rows, ctx, category.Questions, nil, categoryPath+".questions")
			if err != nil {
				return nil, err
			}
			continue
		}

		for gi, group := range category.Groups {
			groupCtx := ctx
			groupID, groupName := group.ID, group.Name
			groupCtx.groupID = &groupID
			groupCtx.groupName = &groupName

			var err error
			groupPath := fmt.Sprintf("%s.groups[%d].questions", categoryPath, gi)
			rows, err = flattenQuestions(rows, groupCtx, group.Questions, nil, groupPath)
			if err != nil {
				return nil, err
			}
		}
	}
	return rows, nil
}

func flattenQuestions(rows []AnswerRow, ctx rowContext, questions []Question, parentID *int64, path string) ([]AnswerRow, error) {
	for qi := range questions {
		question := &questions[qi]
		questionPath := fmt.Sprintf("%s[%d]", path, qi)

		for si := range question.AnswerSets {
			set := &question.AnswerSets[si]
			setPath := fmt.Sprintf("%s.answer_sets[%d]", questionPath, si)

			labels, err := DecodeStatusOfParticipants(set.StatusOfParticipants)
			if err != nil {
				if statusErr, ok := err.(*UnknownStatusError); ok {
					statusErr.Path = setPath
				}
				return nil, err
			}

			for ai := range set.Answers {
				answer := &set.Answers[ai]
				rows = append(rows, AnswerRow{
					EntryID:                    ctx.entryID,
					EntryName:                  ctx.entryName,
					CategoryID:                 ctx.categoryID,
					CategoryName:               ctx.categoryName,
					GroupID:                    ctx.groupID,
					GroupName:                  ctx.groupName,
					QuestionID:                 question.ID,
					QuestionName:               question.Name,
					ParentQuestionID:           parentID,
					AnswerSetID:                set.ID,
					YearFrom:                   set.YearFrom,
					YearTo:                     set.YearTo,
					RegionID:                   set.RegionID,
					ExpertID:                   set.ExpertID,
					StatusOfParticipants:       slices.Clone(set.StatusOfParticipants),
					StatusOfParticipantsLabels: slices.Clone(labels),
					AnswerID:                   answer.ID,
					AnswerName:                 answer.Name,
					AnswerValue:                answer.Value,
					AnswerText:                 answer.TextInput,
					Notes:                      set.Notes,
				})

				if len(answer.SubQuestions) == 0 {
					continue
				}
				questionID := question.ID
				subPath := fmt.Sprintf("%s.answers[%d].sub_questions", setPath, ai)
				rows, err = flattenQuestions(rows, ctx, UniqueSubQuestions(answer.SubQuestions), &questionID, subPath)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return rows, nil
}

// UniqueSubQuestions drops repeated question ids, keeping the first
// occurrence and the encounter order. Upstream occasionally lists the same
// sub-question twice under one answer.
func UniqueSubQuestions(questions []Question) []Question {
	seen := make(map[int64]struct{}, len(questions))
	unique := make([]Question, 0, len(questions))
	for _, q := range questions {
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		unique = append(unique, q)
	}
	return unique
}

// CountAnswerTriples counts the (question, answer set, answer) triples a
// depth-first walk reaches after per-answer deduplication. It is the number
// of rows FlattenEntry emits on success.
func CountAnswerTriples(categories []Category) int {
	total := 0
	for _, category := range categories {
		if len(category.Questions) > 0 {
			total += countQuestions(category.Questions)
			continue
		}
		for _, group := range category.Groups {
			total += countQuestions(group.Questions)
		}
	}
	return total
}

func countQuestions(questions []Question) int {
	n := 0
	for _, q := range questions {
		for _, set := range q.AnswerSets {
			for _, answer := range set.Answers {
				n++
				n += countQuestions(UniqueSubQuestions(answer.SubQuestions))
			}
		}
	}
	return n
}
