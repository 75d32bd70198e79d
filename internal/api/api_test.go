package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockbook/clockbook/server/internal/auth"
	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(memory.New(), nil))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, data
}

func createSheet(t *testing.T, srv *httptest.Server, p model.TimesheetPayload) model.Timesheet {
	t.Helper()
	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/timesheets", p)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var ts model.Timesheet
	require.NoError(t, json.Unmarshal(data, &ts))
	return ts
}

func TestCreateAndGetTimesheet(t *testing.T) {
	srv := newTestServer(t)

	ts := createSheet(t, srv, model.TimesheetPayload{
		Week: 9, StartDate: "2024-03-01", EndDate: "2024-03-05", Hours: 40,
	})
	require.NotEmpty(t, ts.ID)
	assert.Equal(t, model.StatusCompleted, ts.Status)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/timesheets/"+ts.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Timesheet
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, ts.ID, got.ID)
	assert.Equal(t, model.StatusCompleted, got.Status)
}

func TestGetTimesheetNotFound(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/timesheets/nonexistent-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateTimesheetValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/timesheets", model.TimesheetPayload{
		Week: 0, StartDate: "2024-03-10", EndDate: "2024-03-05", Hours: 200,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var er struct {
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(data, &er))
	assert.Contains(t, er.Details, "week must be a positive integer")
	assert.Contains(t, er.Details, "startDate must be on or before endDate")
	assert.Contains(t, er.Details, "hours must be between 0 and 168")

	// Nothing was created.
	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/timesheets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lst struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(data, &lst))
	assert.Zero(t, lst.Count)
}

func TestUpdateTimesheet(t *testing.T) {
	srv := newTestServer(t)

	ts := createSheet(t, srv, model.TimesheetPayload{
		Week: 2, StartDate: "2024-01-08", EndDate: "2024-01-12", Hours: 40,
	})

	resp, data := doJSON(t, http.MethodPut, srv.URL+"/api/timesheets/"+ts.ID, model.TimesheetPayload{
		Week: 2, StartDate: "2024-01-08", EndDate: "2024-01-12", Hours: 12,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	var got model.Timesheet
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 12.0, got.Hours)
	assert.Equal(t, model.StatusIncomplete, got.Status)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/timesheets/nonexistent-id", model.TimesheetPayload{
		Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListTimesheetsFilters(t *testing.T) {
	srv := newTestServer(t)

	createSheet(t, srv, model.TimesheetPayload{Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 40})
	createSheet(t, srv, model.TimesheetPayload{Week: 2, StartDate: "2024-01-08", EndDate: "2024-01-12", Hours: 40})
	createSheet(t, srv, model.TimesheetPayload{Week: 3, StartDate: "2024-01-15", EndDate: "2024-01-19", Hours: 18})

	listWeeks := func(query string) []int {
		resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/timesheets"+query, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
		var out struct {
			Timesheets []model.Timesheet `json:"timesheets"`
			Count      int               `json:"count"`
		}
		require.NoError(t, json.Unmarshal(data, &out))
		require.Len(t, out.Timesheets, out.Count)
		weeks := make([]int, 0, out.Count)
		for _, ts := range out.Timesheets {
			weeks = append(weeks, ts.Week)
		}
		return weeks
	}

	assert.Equal(t, []int{1, 2, 3}, listWeeks(""))
	assert.Equal(t, []int{2, 3}, listWeeks("?startDate=2024-01-10&endDate=2024-01-20"))
	assert.Equal(t, []int{2}, listWeeks("?startDate=2024-01-10&endDate=2024-01-20&status=COMPLETED"))
	assert.Equal(t, []int{3}, listWeeks("?status=INCOMPLETE"))

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/timesheets?status=DONE", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/timesheets?startDate=tuesday", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEntryLifecycleSyncsTimesheet(t *testing.T) {
	srv := newTestServer(t)

	ts := createSheet(t, srv, model.TimesheetPayload{
		Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 0,
	})
	entriesURL := fmt.Sprintf("%s/api/timesheets/%s/entries", srv.URL, ts.ID)

	var created []model.Entry
	for _, h := range []float64{4, 4, 32} {
		resp, data := doJSON(t, http.MethodPost, entriesURL, model.EntryPayload{
			Date: "2024-01-02", Description: "work", Project: "core", Hours: h,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
		var en model.Entry
		require.NoError(t, json.Unmarshal(data, &en))
		assert.Equal(t, ts.ID, en.TimesheetID)
		created = append(created, en)
	}

	// Parent resynced to the entry sum.
	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/timesheets/"+ts.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Timesheet
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 40.0, got.Hours)
	assert.Equal(t, model.StatusCompleted, got.Status)

	// Delete the 32h entry; response carries the removed record.
	resp, data = doJSON(t, http.MethodDelete, entriesURL+"/"+created[2].EntryID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var removed model.Entry
	require.NoError(t, json.Unmarshal(data, &removed))
	assert.Equal(t, 32.0, removed.Hours)

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/timesheets/"+ts.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 8.0, got.Hours)
	assert.Equal(t, model.StatusIncomplete, got.Status)

	// Update an entry; parent follows.
	resp, data = doJSON(t, http.MethodPut, entriesURL+"/"+created[0].EntryID, model.EntryPayload{
		Date: "2024-01-03", Description: "review", Project: "core", Hours: 8,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/timesheets/"+ts.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 12.0, got.Hours)

	// Listing reflects the remaining two entries.
	resp, data = doJSON(t, http.MethodGet, entriesURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Entries []model.Entry `json:"entries"`
		Count   int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 2, out.Count)
}

func TestEntryRoutesRequireTimesheet(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/timesheets/nonexistent-id/entries"

	resp, _ := doJSON(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, base, model.EntryPayload{
		Date: "2024-01-02", Description: "work", Project: "core", Hours: 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, base+"/some-entry", model.EntryPayload{
		Date: "2024-01-02", Description: "work", Project: "core", Hours: 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, base+"/some-entry", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEntryValidationAndNotFound(t *testing.T) {
	srv := newTestServer(t)

	ts := createSheet(t, srv, model.TimesheetPayload{
		Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 0,
	})
	entriesURL := fmt.Sprintf("%s/api/timesheets/%s/entries", srv.URL, ts.ID)

	resp, data := doJSON(t, http.MethodPost, entriesURL, model.EntryPayload{
		Date: "soon", Description: " ", Project: "", Hours: 30,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var er struct {
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(data, &er))
	assert.Len(t, er.Details, 4)

	// Unknown entry under a valid timesheet.
	resp, _ = doJSON(t, http.MethodPut, entriesURL+"/never-existed", model.EntryPayload{
		Date: "2024-01-02", Description: "work", Project: "core", Hours: 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodDelete, entriesURL+"/never-existed", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Failed mutations never touched the parent.
	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/timesheets/"+ts.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Timesheet
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 0.0, got.Hours)
	assert.Equal(t, model.StatusMissing, got.Status)
}

func TestRouterWithAPIKey(t *testing.T) {
	authorizer := auth.NewStaticKeyAuthorizer("test-key")
	srv := httptest.NewServer(NewRouter(memory.New(), authorizer))
	defer srv.Close()

	// Health stays open.
	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Data routes require the key.
	resp, err = http.Get(srv.URL + "/api/timesheets")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/timesheets", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-key")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
