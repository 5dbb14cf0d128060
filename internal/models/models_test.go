package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Job Offers Received", StatusApplicationAccepted.Label())
	assert.Equal(t, "Assessments to-do", StatusAssessment.Label())

	unknown := Status("OnHold")
	assert.False(t, unknown.IsKnown())
	assert.Equal(t, "OnHold", unknown.Label())
}

func TestAllStatusesHaveLabels(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsKnown(), s)
		assert.NotEqual(t, string(s), s.Label(), s)
	}
	assert.Len(t, AllStatuses, len(statusLabels))
}

func TestJobDecode(t *testing.T) {
	payload := `[
		{"_id":"1","title":"Backend","companyName":"Stripe","status":"UnderReview",
		 "dateApplied":"2024-03-01T22:15:00.000Z","deadline":"2024-04-01"},
		{"_id":"2","title":"SRE","companyName":"Acme","status":"Mystery",
		 "dateApplied":null,"deadline":"","jobLink":"https://acme.dev/jobs/2"},
		{"_id":"3","title":"QA","companyName":"Acme","status":"Assessment",
		 "dateApplied":"not a date","deadline":12}
	]`

	var jobs []Job
	require.NoError(t, json.Unmarshal([]byte(payload), &jobs))
	require.Len(t, jobs, 3)

	assert.Equal(t, "2024-03-01", jobs[0].DateApplied.String())
	assert.Equal(t, "2024-04-01", jobs[0].Deadline.String())

	assert.True(t, jobs[1].DateApplied.IsZero())
	assert.True(t, jobs[1].Deadline.IsZero())
	assert.Equal(t, Status("Mystery"), jobs[1].Status)

	assert.True(t, jobs[2].DateApplied.IsZero())
	assert.True(t, jobs[2].Deadline.IsZero())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	d, err = ParseDate("2024-02-29T23:59:59+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestDateMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Date `json:"a"`
		B Date `json:"b"`
	}{A: MustDate("2024-01-05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2024-01-05T00:00:00Z","b":null}`, string(b))
}
