package keyage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tasnim.dev/aws-key-rotator/internal/aws/iam"
	"tasnim.dev/aws-key-rotator/internal/credreport"
	"tasnim.dev/aws-key-rotator/internal/mocks"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return now.Add(-time.Duration(n) * day).Format(time.RFC3339)
}

func row(user, slot1, slot2 string) credreport.Row {
	return credreport.Row{
		User: user,
		Slots: [2]credreport.Slot{
			{Active: true, LastRotated: slot1},
			{Active: slot2 != "N/A", LastRotated: slot2},
		},
	}
}

func accessKeys(user string, ids ...string) []iam.AccessKey {
	out := make([]iam.AccessKey, len(ids))
	for i, id := range ids {
		out[i] = iam.AccessKey{ID: id, UserName: user, Status: "Active"}
	}
	return out
}

func newEvaluator(lister *mocks.MockKeyLister) *Evaluator {
	return NewEvaluator(lister, zap.NewNop(), WithClock(func() time.Time { return now }))
}

func TestSelectStaleKeys_OldKeySelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "alice").Times(1).Return(accessKeys("alice", "AKIAALICE1"), nil)

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("alice", daysAgo(200), "N/A")}, 180)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Candidate{KeyID: "AKIAALICE1", User: "alice", Age: 200, Slot: 1, Active: true, Status: "Active"}, got[0])
}

func TestSelectStaleKeys_YoungKeyIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("alice", daysAgo(100), "N/A")}, 180)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectStaleKeys_ThresholdIsExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "bob").Return(accessKeys("bob", "AKIABOB1", "AKIABOB2"), nil)

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("bob", daysAgo(180), daysAgo(181))}, 180)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AKIABOB2", got[0].KeyID)
	assert.Equal(t, 181, got[0].Age)
	assert.Equal(t, 2, got[0].Slot)
}

func TestSelectStaleKeys_InvalidTimestampsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "carol").Return(accessKeys("carol", "AKIACAROL1", "AKIACAROL2"), nil)

	rows := []credreport.Row{
		row("<root_account>", "N/A", "N/A"),
		row("dave", "", "not-a-date"),
		// slot 1 is garbage; slot 2 must still be evaluated
		row("carol", "2025-13-45T00:00:00+00:00", daysAgo(365)),
	}

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(), rows, 180)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AKIACAROL2", got[0].KeyID)
	assert.Equal(t, "carol", got[0].User)
	assert.Equal(t, 365, got[0].Age)
}

func TestSelectStaleKeys_BothSlotsListOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "erin").Times(1).Return(accessKeys("erin", "AKIAERIN1", "AKIAERIN2"), nil)

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("erin", daysAgo(400), daysAgo(190))}, 180)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "AKIAERIN1", got[0].KeyID)
	assert.Equal(t, 400, got[0].Age)
	assert.Equal(t, "AKIAERIN2", got[1].KeyID)
	assert.Equal(t, 190, got[1].Age)
}

func TestSelectStaleKeys_SlotWithoutKeySkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "frank").Return(accessKeys("frank", "AKIAFRANK1"), nil)

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("frank", daysAgo(10), daysAgo(300))}, 180)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectStaleKeys_RootAccountSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), credreport.RootUser).Times(0)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "alice").Return(accessKeys("alice", "AKIAALICE1"), nil)

	core, logs := observer.New(zap.InfoLevel)
	e := NewEvaluator(lister, zap.New(core), WithClock(func() time.Time { return now }))
	got, err := e.SelectStaleKeys(context.Background(), []credreport.Row{
		row(credreport.RootUser, daysAgo(400), "N/A"),
		row("alice", daysAgo(400), "N/A"),
	}, 180)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].User)
	assert.Equal(t, "AKIAALICE1", got[0].KeyID)

	warned := logs.FilterMessage("root user access key is older than the threshold and must be rotated manually").All()
	require.Len(t, warned, 1)
	assert.Equal(t, int64(400), warned[0].ContextMap()["age_days"])
}

func TestSelectStaleKeys_MatchesKeyByCreationTime(t *testing.T) {
	old := now.Add(-400 * day)
	fresh := now.Add(-10 * day)
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	// listed newest first, opposite to the report's slots
	lister.EXPECT().ListAccessKeys(gomock.Any(), "hank").Return([]iam.AccessKey{
		{ID: "AKIAFRESH", UserName: "hank", Status: "Active", CreatedAt: fresh},
		{ID: "AKIAOLD", UserName: "hank", Status: "Inactive", CreatedAt: old},
	}, nil)

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("hank", old.Format(time.RFC3339), fresh.Format(time.RFC3339))}, 180)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AKIAOLD", got[0].KeyID)
	assert.Equal(t, 1, got[0].Slot)
	assert.Equal(t, "Inactive", got[0].Status)
	assert.True(t, old.Equal(got[0].CreatedAt))
}

func TestSelectStaleKeys_CreationMismatchSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "ivy").Return([]iam.AccessKey{
		{ID: "AKIAIVY1", UserName: "ivy", Status: "Active", CreatedAt: now.Add(-5 * day)},
	}, nil)

	got, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("ivy", daysAgo(300), "N/A")}, 180)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectStaleKeys_ListError(t *testing.T) {
	expected := errors.New("ListAccessKeys(gina): throttled")
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "gina").Return(nil, expected)

	_, err := newEvaluator(lister).SelectStaleKeys(context.Background(),
		[]credreport.Row{row("gina", daysAgo(500), "N/A")}, 180)
	assert.ErrorIs(t, err, expected)
}

func TestSelectStaleKeys_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockKeyLister(ctrl)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "alice").AnyTimes().Return(accessKeys("alice", "AKIAALICE1", "AKIAALICE2"), nil)
	lister.EXPECT().ListAccessKeys(gomock.Any(), "bob").AnyTimes().Return(accessKeys("bob", "AKIABOB1"), nil)

	rows := []credreport.Row{
		row("alice", daysAgo(250), daysAgo(181)),
		row("bob", daysAgo(999), "N/A"),
		row("carol", "N/A", "N/A"),
	}
	e := newEvaluator(lister)

	first, err := e.SelectStaleKeys(context.Background(), rows, 180)
	require.NoError(t, err)
	second, err := e.SelectStaleKeys(context.Background(), rows, 180)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"2025-03-01T10:00:00+00:00", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), false},
		{"2025-03-01T10:00:00Z", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), false},
		{"2025-03-01T12:00:00+02:00", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), false},
		{"2025-03-01T10:00:00", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), false},
		{"2025-03-01 10:00:00", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), false},
		{"2025-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{" 2025-03-01 ", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"N/A", time.Time{}, true},
		{"not_supported", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := ParseTimestamp(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.True(t, tt.want.Equal(got), "ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
	}
}

func TestAgeInDays(t *testing.T) {
	tests := []struct {
		name string
		then time.Time
		want int
	}{
		{"exact days", now.Add(-200 * day), 200},
		{"partial day rounds down", now.Add(-200*day - 23*time.Hour), 200},
		{"under a day", now.Add(-5 * time.Hour), 0},
		{"future timestamp", now.Add(3*day + time.Hour), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeInDays(now, tt.then))
		})
	}
}
