package domain

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// GroupRelatedQuestions treats each relation as an undirected edge and maps
// every question that appears in one to the smallest question id of its
// connected component. The result is sorted by (RelatedQuestionID,
// QuestionID) and includes each component's root mapped to itself.
func GroupRelatedQuestions(relations []QuestionRelation) []RelatedQuestion {
	g := simple.NewUndirectedGraph()
	addNode := func(id int64) {
		if g.Node(id) == nil {
			g.AddNode(simple.Node(id))
		}
	}
	for _, rel := range relations {
		addNode(rel.FirstQuestionID)
		addNode(rel.SecondQuestionID)
		// simple graphs reject self edges; the node alone forms its component.
		if rel.FirstQuestionID != rel.SecondQuestionID {
			g.SetEdge(simple.Edge{F: simple.Node(rel.FirstQuestionID), T: simple.Node(rel.SecondQuestionID)})
		}
	}

	grouped := make([]RelatedQuestion, 0, g.Nodes().Len())
	for _, component := range topo.ConnectedComponents(g) {
		root := component[0].ID()
		for _, n := range component[1:] {
			if n.ID() < root {
				root = n.ID()
			}
		}
		for _, n := range component {
			grouped = append(grouped, RelatedQuestion{QuestionID: n.ID(), RelatedQuestionID: root})
		}
	}
	sort.Slice(grouped, func(i, j int) bool {
		if grouped[i].RelatedQuestionID != grouped[j].RelatedQuestionID {
			return grouped[i].RelatedQuestionID < grouped[j].RelatedQuestionID
		}
		return grouped[i].QuestionID < grouped[j].QuestionID
	})
	return grouped
}

// SortRelationsByID orders raw relations by their id without modifying the input.
func SortRelationsByID(relations []QuestionRelation) []QuestionRelation {
	sorted := make([]QuestionRelation, len(relations))
	copy(sorted, relations)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}
