package validation

import (
	"fmt"

	"drh-client/internal/domain"
	"drh-client/internal/dto"
)

// MaxSubQuestionDepth bounds how deep answers may nest sub-questions.
// Real entries nest a handful of levels.
const MaxSubQuestionDepth = 32

// EntryFromDocument checks the shape of an entry document and converts it
// into the domain tree. The first missing or invalid field is reported as a
// *domain.StructuralError carrying its tree position.
func EntryFromDocument(doc *dto.EntryDocument) (*domain.Entry, error) {
	if doc == nil {
		return nil, &domain.StructuralError{Path: "entry", Reason: "document is empty"}
	}
	if doc.ID == nil {
		return nil, missing("entry", "id")
	}
	root := fmt.Sprintf("entry[%d]", *doc.ID)
	if doc.Name == nil || doc.Name.Name == nil {
		return nil, missing(root, "name.name")
	}
	if doc.Categories == nil {
		return nil, missing(root, "categories")
	}

	entry := &domain.Entry{
		ID:          *doc.ID,
		Name:        *doc.Name.Name,
		Description: deref(doc.Description),
		DateCreated: deref(doc.DateCreated),
		YearFrom:    doc.YearFrom,
		YearTo:      doc.YearTo,
		Source: domain.EntrySource{
			Kind:              deref(doc.EntrySource),
			SecondarySourceID: doc.SecondarySourceID,
			ExpertSourceID:    doc.ExpertSourceID,
			SupervisedByID:    doc.SupervisedByID,
			DataSourceID:      doc.DataSourceID,
		},
		Categories: make([]domain.Category, 0, len(doc.Categories)),
	}
	if doc.Region != nil {
		entry.Region = &domain.NamedRef{ID: doc.Region.ID, Name: doc.Region.Name}
	}
	if doc.Expert != nil {
		entry.Expert = &domain.Person{ID: doc.Expert.ID, FirstName: doc.Expert.FirstName, LastName: doc.Expert.LastName}
	}
	if doc.Poll != nil {
		entry.Poll = &domain.NamedRef{ID: doc.Poll.ID, Name: doc.Poll.Name}
	}
	for _, tag := range doc.Tags {
		entry.Tags = append(entry.Tags, domain.NamedRef{ID: tag.ID, Name: tag.Name})
	}

	for i := range doc.Categories {
		category, err := categoryFromDocument(&doc.Categories[i], fmt.Sprintf("%s.categories[%d]", root, i))
		if err != nil {
			return nil, err
		}
		entry.Categories = append(entry.Categories, category)
	}
	return entry, nil
}

func categoryFromDocument(doc *dto.CategoryDocument, path string) (domain.Category, error) {
	if doc.ID == nil {
		return domain.Category{}, missing(path, "id")
	}
	if doc.Name == nil {
		return domain.Category{}, missing(path, "name")
	}
	if doc.Questions == nil {
		return domain.Category{}, missing(path, "questions")
	}
	category := domain.Category{ID: *doc.ID, Name: *doc.Name}

	if len(doc.Questions) > 0 {
		questions, err := questionsFromDocuments(doc.Questions, path+".questions", 0, false)
		if err != nil {
			return domain.Category{}, err
		}
		category.Questions = questions
		return category, nil
	}

	if doc.Groups == nil {
		return domain.Category{}, missing(path, "groups")
	}
	category.Groups = make([]domain.Group, 0, len(doc.Groups))
	for i := range doc.Groups {
		g := &doc.Groups[i]
		groupPath := fmt.Sprintf("%s.groups[%d]", path, i)
		if g.ID == nil {
			return domain.Category{}, missing(groupPath, "id")
		}
		if g.Name == nil {
			return domain.Category{}, missing(groupPath, "name")
		}
		if g.Questions == nil {
			return domain.Category{}, missing(groupPath, "questions")
		}
		questions, err := questionsFromDocuments(g.Questions, groupPath+".questions", 0, false)
		if err != nil {
			return domain.Category{}, err
		}
		category.Groups = append(category.Groups, domain.Group{ID: *g.ID, Name: *g.Name, Questions: questions})
	}
	return category, nil
}

// questionsFromDocuments converts one question list. With uniqueIDs set
// (sub-question lists) a repeated id keeps its first copy; later copies only
// need an id and are otherwise ignored, whatever their contents.
func questionsFromDocuments(docs []dto.QuestionDocument, path string, depth int, uniqueIDs bool) ([]domain.Question, error) {
	if depth > MaxSubQuestionDepth {
		return nil, &domain.StructuralError{
			Path:   path,
			Reason: fmt.Sprintf("sub-questions nested deeper than %d levels", MaxSubQuestionDepth),
		}
	}

	questions := make([]domain.Question, 0, len(docs))
	seen := make(map[int64]struct{}, len(docs))
	for qi := range docs {
		q := &docs[qi]
		questionPath := fmt.Sprintf("%s[%d]", path, qi)
		if q.ID == nil {
			return nil, missing(questionPath, "id")
		}
		if uniqueIDs {
			if _, dup := seen[*q.ID]; dup {
				continue
			}
			seen[*q.ID] = struct{}{}
		}
		if q.Name == nil {
			return nil, missing(questionPath, "name")
		}
		if q.AnswerSets == nil {
			return nil, missing(questionPath, "answer_sets")
		}

		question := domain.Question{ID: *q.ID, Name: *q.Name, AnswerSets: make([]domain.AnswerSet, 0, len(q.AnswerSets))}
		for si := range q.AnswerSets {
			set, err := answerSetFromDocument(&q.AnswerSets[si], fmt.Sprintf("%s.answer_sets[%d]", questionPath, si), depth)
			if err != nil {
				return nil, err
			}
			question.AnswerSets = append(question.AnswerSets, set)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func answerSetFromDocument(doc *dto.AnswerSetDocument, path string, depth int) (domain.AnswerSet, error) {
	switch {
	case doc.ID == nil:
		return domain.AnswerSet{}, missing(path, "id")
	case doc.YearFrom == nil:
		return domain.AnswerSet{}, missing(path, "year_from")
	case doc.YearTo == nil:
		return domain.AnswerSet{}, missing(path, "year_to")
	case doc.RegionID == nil:
		return domain.AnswerSet{}, missing(path, "region_id")
	case doc.Answers == nil:
		return domain.AnswerSet{}, missing(path, "answers")
	}

	status := doc.StatusOfParticipants
	if status == nil {
		status = []int{}
	}
	set := domain.AnswerSet{
		ID:                   *doc.ID,
		YearFrom:             *doc.YearFrom,
		YearTo:               *doc.YearTo,
		RegionID:             *doc.RegionID,
		ExpertID:             doc.ExpertID,
		StatusOfParticipants: status,
		Notes:                deref(doc.Notes),
		Answers:              make([]domain.Answer, 0, len(doc.Answers)),
	}

	for ai := range doc.Answers {
		a := &doc.Answers[ai]
		answerPath := fmt.Sprintf("%s.answers[%d]", path, ai)
		switch {
		case a.ID == nil:
			return domain.AnswerSet{}, missing(answerPath, "id")
		case a.Name == nil:
			return domain.AnswerSet{}, missing(answerPath, "name")
		case a.SubQuestions == nil:
			return domain.AnswerSet{}, missing(answerPath, "sub_questions")
		}
		subs, err := questionsFromDocuments(a.SubQuestions, answerPath+".sub_questions", depth+1, true)
		if err != nil {
			return domain.AnswerSet{}, err
		}
		set.Answers = append(set.Answers, domain.Answer{
			ID:           *a.ID,
			Name:         *a.Name,
			Value:        a.Value,
			TextInput:    deref(a.TextInput),
			SubQuestions: subs,
		})
	}
	return set, nil
}

func missing(path, field string) *domain.StructuralError {
	return &domain.StructuralError{Path: path, Field: field, Reason: "required field is missing"}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
