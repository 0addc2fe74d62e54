package test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"titkee.com/techradar/model"
	"titkee.com/techradar/prompt"
	"titkee.com/techradar/service"
)

type stubCompleter struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, p string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, p)
	return s.reply, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var radar = []model.TechRecord{
	{Name: "React", Status: "Adopt", Category: "Frontend", Dependency: "None", Mentor: "Alice"},
	{Name: "Go", Status: "Trial", Category: "Backend", Dependency: "Docker", Mentor: "Bob"},
	{Name: "react", Status: "Hold", Category: "Duplicate", Dependency: "None", Mentor: "Zed"},
}

func TestRadarService_DescribeAll(t *testing.T) {
	stub := &stubCompleter{reply: "looks healthy"}
	svc := service.NewRadarService("unused.csv", stub, quietLogger())

	got, err := svc.DescribeAll(context.Background(), radar[:2])
	require.NoError(t, err)
	assert.Equal(t, "looks healthy", got)

	require.Equal(t, 1, stub.calls)
	sent := stub.prompts[0]
	assert.Contains(t, sent, "Here is our tech radar data:")
	assert.Contains(t, sent, "Could you provide insights or recommendations based on this data?")
	assert.Contains(t, sent, "{\n    \"Name\": \"React\",\n    \"Status\": \"Adopt\",\n    \"Category\": \"Frontend\",\n    \"Dependency\": \"None\",\n    \"Mentor\": \"Alice\"\n  }")
	assert.Less(t, strings.Index(sent, `"React"`), strings.Index(sent, `"Go"`))
}

func TestRadarService_DescribeAll_KeepsMarkupCharacters(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	svc := service.NewRadarService("unused.csv", stub, quietLogger())

	records := []model.TechRecord{{Name: "R&D <tools>", Status: "Assess", Category: "Lab", Dependency: "a>b", Mentor: "Q"}}
	_, err := svc.DescribeAll(context.Background(), records)
	require.NoError(t, err)

	require.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.prompts[0], `"Name": "R&D <tools>"`)
	assert.Contains(t, stub.prompts[0], `"Dependency": "a>b"`)
	assert.NotContains(t, stub.prompts[0], `\u0026`)
	assert.Contains(t, stub.prompts[0], "}\n]\n\nCould you provide")
}

func TestRadarService_DescribeAll_UpstreamError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("quota exceeded")}
	svc := service.NewRadarService("unused.csv", stub, quietLogger())

	got, err := svc.DescribeAll(context.Background(), radar)
	assert.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, model.IsKind(err, model.KindUpstream))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRadarService_DescribeOne(t *testing.T) {
	tests := []struct {
		name       string
		selected   string
		userPrompt string
		wantMentor string
		wantPrompt string
	}{
		{
			name:       "Case insensitive match",
			selected:   "REACT",
			userPrompt: "Explain briefly",
			wantMentor: "Alice",
			wantPrompt: "Explain briefly",
		},
		{
			name:       "Trimmed match",
			selected:   "  go ",
			userPrompt: "",
			wantMentor: "Bob",
			wantPrompt: prompt.DefaultInstruction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCompleter{reply: "a tale"}
			svc := service.NewRadarService("unused.csv", stub, quietLogger())

			got, err := svc.DescribeOne(context.Background(), radar, tt.selected, tt.userPrompt)
			require.NoError(t, err)
			assert.Equal(t, "a tale", got)

			require.Equal(t, 1, stub.calls)
			assert.Contains(t, stub.prompts[0], "Mentor: "+tt.wantMentor)
			assert.Contains(t, stub.prompts[0], tt.wantPrompt)
		})
	}
}

func TestRadarService_DescribeOne_FirstMatchWins(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	svc := service.NewRadarService("unused.csv", stub, quietLogger())

	_, err := svc.DescribeOne(context.Background(), radar, "react", "x")
	require.NoError(t, err)
	assert.Contains(t, stub.prompts[0], "Mentor: Alice")
	assert.NotContains(t, stub.prompts[0], "Zed")
}

func TestRadarService_DescribeOne_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		records  []model.TechRecord
		selected string
		wantMsg  string
	}{
		{
			name:     "No records",
			records:  nil,
			selected: "React",
			wantMsg:  service.MsgNoData,
		},
		{
			name:     "Empty records",
			records:  []model.TechRecord{},
			selected: "",
			wantMsg:  service.MsgNoData,
		},
		{
			name:     "Unknown tech",
			records:  radar,
			selected: "Elm",
			wantMsg:  service.MsgTechNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCompleter{reply: "never"}
			svc := service.NewRadarService("unused.csv", stub, quietLogger())

			got, err := svc.DescribeOne(context.Background(), tt.records, tt.selected, "")
			assert.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, model.IsKind(err, model.KindNotFound))
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Zero(t, stub.calls, "completer must not be called")
		})
	}
}

func TestRadarService_DescribeOne_UpstreamError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	svc := service.NewRadarService("unused.csv", stub, quietLogger())

	_, err := svc.DescribeOne(context.Background(), radar, "Go", "")
	assert.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUpstream))
	assert.Equal(t, 1, stub.calls)
}

func TestRadarService_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tech-radar.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Status,Category,Dependency,Mentor\nReact,Adopt,Frontend,None,Alice\n"), 0o644))

	svc := service.NewRadarService(path, &stubCompleter{}, quietLogger())
	records, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, radar[:1], records)

	// re-read on every call
	require.NoError(t, os.WriteFile(path, []byte("Name,Status,Category,Dependency,Mentor\n"), 0o644))
	records, err = svc.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRadarService_Snapshot_MissingFile(t *testing.T) {
	svc := service.NewRadarService(filepath.Join(t.TempDir(), "missing.csv"), &stubCompleter{}, quietLogger())
	_, err := svc.Snapshot()
	assert.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindIO))
}

func TestFindRecord(t *testing.T) {
	rec, ok := service.FindRecord(radar, " gO")
	assert.True(t, ok)
	assert.Equal(t, "Go", rec.Name)

	_, ok = service.FindRecord(radar, "Rust")
	assert.False(t, ok)
}
