package drhapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"drh-client/internal/config"
	"drh-client/internal/domain"
	"drh-client/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DRHConfig{
		BaseURL: srv.URL + "/v1",
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxRetries: 3,
			BaseDelay:  time.Millisecond,
			MaxDelay:   5 * time.Millisecond,
		},
	}
	return NewClient(cfg, zap.NewNop(), WithJitter(func(time.Duration) time.Duration { return 0 }))
}

func TestFetchEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/entries/775", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id": 775, "name": {"name": "Cult of Isis"}, "categories": []}`)
	}, "")

	raw, err := client.FetchEntry(context.Background(), 775)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 775, "name": {"name": "Cult of Isis"}, "categories": []}`, string(raw))

	doc, err := client.FindEntry(context.Background(), 775)
	require.NoError(t, err)
	assert.Equal(t, int64(775), *doc.ID)
	assert.Equal(t, "Cult of Isis", *doc.Name.Name)
}

func TestFindEndpoints(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/entry_tags/4", "/v1/region_tags/6":
			_, _ = io.WriteString(w, `{"id": 4, "name": "Isis", "approved": true, "created_by": {"id": 1, "username": "ada"}}`)
		case "/v1/regions/5":
			_, _ = io.WriteString(w, `{"id": 5, "name": "Delta", "geom": {"type": "MultiPolygon", "coordinates": [[[[0,0],[1,0],[1,1],[0,0]]]]}}`)
		default:
			http.NotFound(w, r)
		}
	}, "")
	ctx := context.Background()

	tag, err := client.FindEntryTag(ctx, 4)
	require.NoError(t, err)
	assert.True(t, tag.Approved)
	assert.Equal(t, "ada", tag.CreatedBy.Username)

	_, err = client.FindRegionTag(ctx, 6)
	require.NoError(t, err)

	region, err := client.FindRegion(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "MultiPolygon", region.Geom.Type)
	assert.Len(t, region.Geom.Coordinates[0][0], 4)
}

func TestListEntries_QueryParameters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/entries", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, "1,2,3", q.Get("expert"))
		assert.Equal(t, "7", q.Get("poll"))
		assert.Equal(t, "2020-01-01T00:00:00", q.Get("start_date"))
		assert.Equal(t, "2021-06-30T12:00:00", q.Get("end_date"))
		assert.False(t, q.Has("approved"), "approved is not an entries filter")
		assert.False(t, q.Has("created_by"))
		_, _ = io.WriteString(w, `{"count": 1, "next": null, "previous": null, "results": [
			{"id": 775, "name": {"name": "Cult of Isis"}, "expert": {"id": 8, "first_name": "Ada", "last_name": "Okafor"},
			 "poll": {"id": 7, "name": "Religious Group (v6)"}, "region": {"id": 5, "name": "Delta"}, "tags": []}
		]}`)
	}, "")

	approved := true
	page, err := client.ListEntries(context.Background(), domain.ListParams{
		Expert:    []int64{1, 2, 3},
		Poll:      []int64{7},
		CreatedBy: []int64{9},
		Approved:  &approved,
		StartDate: "2020-01-01",
		EndDate:   "2021-06-30T12:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Okafor", page.Results[0].Expert.LastName)
}

func TestListEntryTags_QueryParameters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/entry_tags", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "false", q.Get("approved"))
		assert.Equal(t, "4,5", q.Get("created_by"))
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "200", q.Get("offset"))
		assert.False(t, q.Has("region"))
		_, _ = io.WriteString(w, `{"count": 0, "results": []}`)
	}, "")

	approved := false
	_, err := client.ListEntryTags(context.Background(), domain.ListParams{
		Approved: &approved, CreatedBy: []int64{4, 5}, Region: []int64{1}, Limit: 100, Offset: 200,
	})
	require.NoError(t, err)
}

func TestListRegions_InvalidDate(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}, "")

	_, err := client.ListRegions(context.Background(), domain.ListParams{StartDate: "06/12/2023"})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "start_date", verrs[0].Field)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestRead_RetriesServerErrorsThenSucceeds(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `[{"id": 1, "first_question_id": 10, "second_question_id": 11}]`)
	}, "")

	relations, err := client.QuestionRelations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.QuestionRelation{{ID: 1, FirstQuestionID: 10, SecondQuestionID: 11}}, relations)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestRead_RetriesBodiesThatAreNotJSON(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			_, _ = io.WriteString(w, `<html>Service Unavailable</html>`)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	}, "")

	_, err := client.EntriesByQuestion(context.Background(), "Is supernatural monitoring present:")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestRead_GivesUpAfterMaxRetries(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"detail": "boom"}`)
	}, "")

	_, err := client.FetchEntry(context.Background(), 1)
	require.Error(t, err)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeUpstream, de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.Context["status"])
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "max_retries counts total attempts")
}

func TestRead_NotFoundIsNotRetried(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "Not found."}`)
	}, "")

	_, err := client.FetchEntry(context.Background(), 99999)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestEntriesByQuestion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/entries-by-question", r.URL.Path)
		assert.Equal(t, "Is supernatural monitoring present:", r.URL.Query().Get("question_name"))
		_, _ = io.WriteString(w, `[{"id": 176, "title": "Aztecs", "date_created": "2020-01-01", "poll": {"id": 2, "name": "Religious Group (v6)"},
			"answers": [{"name": "Yes", "value": 1, "text_input": "", "year_from": 1300, "year_to": 1521,
			 "expert": {"expert_id": 8, "first_name": "Ada", "last_name": "Okafor"}, "region_id": 5,
			 "status_of_participants": {"name": "Elite"}}]}]`)
	}, "")

	entries, err := client.EntriesByQuestion(context.Background(), "Is supernatural monitoring present:")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Aztecs", entries[0].Title)
	assert.Equal(t, int64(8), entries[0].Answers[0].Expert.ExpertID)
	assert.Equal(t, "Elite", entries[0].Answers[0].StatusOfParticipants.Name)
}

func TestWrite_SendsApiKeyAndIsNotRetried(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/entries/775/answersets/", r.URL.Path)
		assert.Equal(t, "Api-Key secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(2000), body["question_id"])

		w.WriteHeader(http.StatusServiceUnavailable)
	}, "secret")

	questionID := int64(2000)
	templateID := int64(1)
	_, err := client.AddAnswerSet(context.Background(), 775, &dto.NewAnswerSetRequest{
		QuestionID: &questionID,
		Answers:    []dto.NewAnswer{{TemplateAnswerID: &templateID}},
	})
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeUpstream, de.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestWrite_Endpoints(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 12}`)
	}, "secret")
	ctx := context.Background()

	raw, err := client.AddEntry(ctx, &dto.NewEntryRequest{Name: "Cult of Isis"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 12}`, string(raw))

	_, err = client.AddEntryTag(ctx, &dto.NewTagRequest{Name: "Isis"})
	require.NoError(t, err)
	_, err = client.AddRegionTag(ctx, &dto.NewTagRequest{Name: "Delta"})
	require.NoError(t, err)
	_, err = client.AddRegion(ctx, &dto.NewRegionRequest{Name: "Delta", Geom: &dto.Geometry{Type: "MultiPolygon"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/v1/entries/", "/v1/entry_tags/", "/v1/region_tags/", "/v1/regions/"}, paths)
}

func TestWrite_RequiresApiKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without an api key")
	}, "")

	_, err := client.AddEntryTag(context.Background(), &dto.NewTagRequest{Name: "Isis"})
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeInvalidInput, de.Code)
}

func TestBackoffDelay(t *testing.T) {
	base, max := time.Second, 120*time.Second
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: time.Second},
		{attempt: 1, want: time.Second},
		{attempt: 2, want: 2 * time.Second},
		{attempt: 5, want: 16 * time.Second},
		{attempt: 7, want: 64 * time.Second},
		{attempt: 8, want: 120 * time.Second},
		{attempt: 40, want: 120 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BackoffDelay(base, max, tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestRandomJitterStaysBelowBound(t *testing.T) {
	assert.Zero(t, randomJitter(0))
	for i := 0; i < 100; i++ {
		j := randomJitter(100 * time.Millisecond)
		assert.GreaterOrEqual(t, j, time.Duration(0))
		assert.Less(t, j, 100*time.Millisecond)
	}
}
