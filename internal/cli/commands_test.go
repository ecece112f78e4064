package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
	"github.com/roach88/schedview/internal/testutil"
)

const conferenceFile = "testdata/conference.yaml"

type cliResult struct {
	stdout string
	err    error
	logs   *observer.ObservedLogs
}

// runCLI executes the command tree against config with a deterministic load
// id and an observed logger.
func runCLI(t *testing.T, config string, args ...string) cliResult {
	t.Helper()

	logger, logs := testutil.ObservedLogger()
	opts := &RootOptions{
		Logger:  logger,
		LoadIDs: testutil.NewFixedLoadIDGenerator(""),
	}
	cmd := newRootCommand(opts)

	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--config", config))

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), err: err, logs: logs}
}

func decodeData(t *testing.T, out string, v interface{}) {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

func decodeError(t *testing.T, out string) CLIError {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	return *resp.Error
}

func writeSchedule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommands_TextGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"categories", []string{"categories"}},
		{"categories_counts", []string{"categories", "--counts"}},
		{"category_10", []string{"category", "10"}},
		{"rooms", []string{"rooms"}},
		{"rooms_event_102", []string{"rooms", "--event", "102"}},
		{"rooms_event_104", []string{"rooms", "--event", "104"}},
		{"streams_counts", []string{"streams", "--counts"}},
		{"events", []string{"events"}},
		{"events_stream_31", []string{"events", "--stream", "31"}},
		{"event_102", []string{"event", "102"}},
		{"event_104", []string{"event", "104"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, conferenceFile, tt.args...)
			require.NoError(t, res.err)
			g.Assert(t, tt.name, []byte(res.stdout))
		})
	}
}

func TestValidate_JSON(t *testing.T) {
	res := runCLI(t, conferenceFile, "validate", "--format", "json")
	require.NoError(t, res.err)

	var got ValidateResult
	decodeData(t, res.stdout, &got)

	st, err := store.New(testutil.ConferenceSchedule())
	require.NoError(t, err)
	want, err := st.Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, ValidateResult{
		Valid:       true,
		Name:        "GopherConf",
		LoadID:      testutil.FixedLoadID,
		Events:      7,
		Categories:  4,
		Rooms:       3,
		Streams:     3,
		Fingerprint: want,
	}, got)
}

func TestValidate_Text(t *testing.T) {
	res := runCLI(t, conferenceFile, "validate")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `Schedule "GopherConf" is valid`)
	assert.Contains(t, res.stdout, "fingerprint")
}

func TestValidate_InvalidSchedule(t *testing.T) {
	path := writeSchedule(t, `
name: broken
categories:
  - {id: 1, name: A}
  - {id: 1, name: B}
slots:
  - label: Morning
    items:
      - {id: 7, title: Orphan, room: 99}
`)

	res := runCLI(t, path, "validate", "--format", "json")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))

	cliErr := decodeError(t, res.stdout)
	assert.Equal(t, ErrCodeInvalidSchedule, cliErr.Code)
	assert.ElementsMatch(t, []interface{}{
		"category 1: duplicate id",
		"event 7: dangling reference to room 99",
	}, cliErr.Details)
}

func TestCommands_LoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		wantCode string
	}{
		{"missing_file", filepath.Join(t.TempDir(), "nope.yaml"), "E005"},
		{"unsupported_extension", writeUnsupported(t), "E008"},
		{"unknown_field", writeSchedule(t, "name: x\nvenue: y\n"), "E004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.config, "categories", "--format", "json")
			require.Error(t, res.err)
			assert.Equal(t, ExitCommandError, GetExitCode(res.err))
			assert.Equal(t, tt.wantCode, decodeError(t, res.stdout).Code)
		})
	}
}

func writeUnsupported(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = 'x'\n"), 0o644))
	return path
}

func TestCommands_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"category", []string{"category", "999"}, "category 999 not found"},
		{"room", []string{"room", "999"}, "room 999 not found"},
		{"stream", []string{"stream", "999"}, "stream 999 not found"},
		{"event", []string{"event", "999"}, "event 999 not found"},
		{"rooms_by_event", []string{"rooms", "--event", "999"}, "event 999 not found"},
		{"events_by_category", []string{"events", "--category", "999"}, "category 999 not found"},
		{"events_by_room", []string{"events", "--room", "999"}, "room 999 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, conferenceFile, append(tt.args, "--format", "json")...)
			require.Error(t, res.err)
			assert.Equal(t, ExitFailure, GetExitCode(res.err))

			cliErr := decodeError(t, res.stdout)
			assert.Equal(t, ErrCodeEntityNotFound, cliErr.Code)
			assert.Equal(t, tt.message, cliErr.Message)
		})
	}
}

func TestCommands_InvalidIDArgument(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-3"} {
		t.Run(arg, func(t *testing.T) {
			res := runCLI(t, conferenceFile, "event", arg, "--format", "json")
			require.Error(t, res.err)
			assert.Equal(t, ExitCommandError, GetExitCode(res.err))
			assert.Equal(t, ErrCodeInvalidID, decodeError(t, res.stdout).Code)
		})
	}
}

func TestEvents_FiltersAreExclusive(t *testing.T) {
	res := runCLI(t, conferenceFile, "events", "--stream", "31", "--room", "21")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "none of the others can be")
}

func TestEvents_JSONByCategory(t *testing.T) {
	res := runCLI(t, conferenceFile, "events", "--category", "11", "--format", "json")
	require.NoError(t, res.err)

	var events []model.Event
	decodeData(t, res.stdout, &events)

	ids := make([]model.ID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	assert.Equal(t, []model.ID{102, 106}, ids)
}

func TestEvent_JSONResolvesNames(t *testing.T) {
	res := runCLI(t, conferenceFile, "event", "102", "--format", "json")
	require.NoError(t, res.err)

	var got map[string]interface{}
	decodeData(t, res.stdout, &got)
	assert.Equal(t, "Profiling Lab", got["title"])
	assert.Equal(t, "Lab", got["room_name"])
	assert.Equal(t, "Tooling", got["stream_name"])
	assert.Equal(t, []interface{}{"Workshop", "Talk"}, got["category_names"])
}

func TestCategory_JSONIsObject(t *testing.T) {
	res := runCLI(t, conferenceFile, "category", "10", "--format", "json")
	require.NoError(t, res.err)

	var got model.Category
	decodeData(t, res.stdout, &got)
	assert.Equal(t, model.Category{ID: 10, Name: "Talk", Color: "#1e88e5"}, got)
}

func TestCommands_LogsLoadAtDebug(t *testing.T) {
	res := runCLI(t, conferenceFile, "streams")
	require.NoError(t, res.err)

	loaded := res.logs.FilterMessage("schedule loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, zapcore.DebugLevel, loaded[0].Level)
	assert.Equal(t, testutil.FixedLoadID, loaded[0].ContextMap()["load_id"])
	assert.Equal(t, "GopherConf", loaded[0].ContextMap()["schedule"])
}

func TestRoomsByEvent_NoRoomIsQuiet(t *testing.T) {
	res := runCLI(t, conferenceFile, "rooms", "--event", "104")
	require.NoError(t, res.err)

	// Only the debug load entry; an event without a room is not a fault.
	assert.Equal(t, 0, res.logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 0, res.logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestValidationDetails(t *testing.T) {
	_, err := store.New(model.Schedule{
		Rooms: []model.Room{{ID: 0, Name: "nameless"}, {ID: 2}, {ID: 2}},
	})
	require.Error(t, err)

	assert.Equal(t, []string{
		"room #0: missing id",
		"room 2: duplicate id",
	}, validationDetails(err))
}
