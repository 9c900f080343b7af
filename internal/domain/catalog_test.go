package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Info(t *testing.T) {
	e := &Entry{
		ID:          775,
		Name:        "Cult of Isis",
		Description: "desc",
		DateCreated: "2019-04-02T10:00:00Z",
		YearFrom:    int64Ptr(-300),
		YearTo:      int64Ptr(400),
		Region:      &NamedRef{ID: 5, Name: "Egypt"},
		Expert:      &Person{ID: 8, FirstName: "Ada", LastName: "Okafor"},
		Source:      EntrySource{Kind: SourceSecondarySource, SecondarySourceID: int64Ptr(3)},
	}

	info := e.Info()
	require.NotNil(t, info.ExpertName)
	assert.Equal(t, "Ada Okafor", *info.ExpertName)
	assert.Equal(t, int64(5), *info.RegionID)
	assert.Nil(t, info.PollID, "missing poll stays absent")
	assert.Equal(t, SourceSecondarySource, info.Source)
}

func TestEntry_TagRows(t *testing.T) {
	e := &Entry{ID: 1, Name: "e", Tags: []NamedRef{{ID: 4, Name: "Isis"}, {ID: 2, Name: "Egypt"}, {ID: 4, Name: "Isis"}}}
	rows := e.TagRows()
	assert.Equal(t, []EntryTagRow{
		{EntryID: 1, EntryName: "e", EntryTagID: 4, EntryTagName: "Isis"},
		{EntryID: 1, EntryName: "e", EntryTagID: 2, EntryTagName: "Egypt"},
	}, rows)
}
