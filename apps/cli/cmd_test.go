package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/bulletin/core/academic"
	"github.com/trezcool/bulletin/tests"
)

func setup(t *testing.T, terminal bool) (*commandLine, *bytes.Buffer) {
	prev := isTerminalFunc
	isTerminalFunc = func(int) bool { return terminal }
	t.Cleanup(func() { isTerminalFunc = prev })

	var out bytes.Buffer
	return &commandLine{out: &out}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runCLITests(t *testing.T, terminal bool, tests []cliTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, terminal)
			err := cli.run(append([]string{"bulletin"}, tt.args...))
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				if assert.Error(t, err) {
					assert.Equal(t, tt.wantErrStr, err.Error())
				}
			default:
				require.NoError(t, err)
				if tt.wantOut != "" {
					assert.Equal(t, tt.wantOut, out.String())
				}
			}
		})
	}
}

func writeDraft(t *testing.T, v interface{}) string {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, ioutil.WriteFile(path, data, 0o600))
	return path
}

func Test_commandLine_usage(t *testing.T) {
	runCLITests(t, true, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "grade: no marks", args: []string{"grade"}, wantErr: errHelp},
		{name: "attendance: no percentage", args: []string{"attendance"}, wantErr: errHelp},
		{name: "profile: no file", args: []string{"profile"}, wantErr: errHelp},
	})
}

func Test_commandLine_grade(t *testing.T) {
	runCLITests(t, true, []cliTest{
		{name: "below range", args: []string{"grade", "-marks", "-5"}, wantErrStr: "marks must be between 0 and 100 (got -5)"},
		{name: "above range", args: []string{"grade", "-marks", "101"}, wantErrStr: "marks must be between 0 and 100 (got 101)"},
		{name: "A", args: []string{"grade", "-marks", "90"}, wantOut: "Grade: A (green)\n"},
		{name: "B", args: []string{"grade", "-marks", "89"}, wantOut: "Grade: B (blue)\n"},
		{name: "F", args: []string{"grade", "-marks", "0"}, wantOut: "Grade: F (red)\n"},
	})

	t.Run("json", func(t *testing.T) {
		cli, out := setup(t, false)
		require.NoError(t, cli.run([]string{"bulletin", "grade", "-marks", "60"}))
		assert.JSONEq(t, `{"marks": 60, "grade": "C", "tone": "yellow"}`, out.String())
	})
}

func Test_commandLine_attendance(t *testing.T) {
	runCLITests(t, true, []cliTest{
		{name: "above range", args: []string{"attendance", "-percentage", "100.5"}, wantErrStr: "percentage must be between 0 and 100 (got 100.5)"},
		{name: "excellent", args: []string{"attendance", "-percentage", "90"}, wantOut: "Attendance: 90% Excellent (emerald)\n"},
		{name: "satisfactory", args: []string{"attendance", "-percentage", "75"}, wantOut: "Attendance: 75% Satisfactory (blue)\n"},
		{name: "low", args: []string{"attendance", "-percentage", "74.99"}, wantOut: "Attendance: 74.99% Low Attendance (rose)\n"},
	})

	t.Run("json", func(t *testing.T) {
		cli, out := setup(t, false)
		require.NoError(t, cli.run([]string{"bulletin", "attendance", "-percentage", "0"}))
		assert.JSONEq(t, `{"percentage": 0, "status": "Low", "label": "Low Attendance", "tone": "rose"}`, out.String())
	})
}

func Test_commandLine_profile(t *testing.T) {
	valid := testutil.CompleteDraft(80)
	invalid := testutil.CompleteDraft(80)
	invalid.Info.Name = ""
	invalid.Marks = invalid.Marks.With(academic.Math, 120)

	t.Run("missing file", func(t *testing.T) {
		cli, _ := setup(t, true)
		assert.Error(t, cli.run([]string{"bulletin", "profile", "-file", filepath.Join(t.TempDir(), "nope.json")}))
	})

	t.Run("invalid draft", func(t *testing.T) {
		cli, out := setup(t, true)
		err := cli.run([]string{"bulletin", "profile", "-file", writeDraft(t, invalid)})
		assert.Equal(t, errInvalidDraft, err)
		assert.Equal(t, "- Student Name is required.\n- Math marks must be between 0 and 100.\n", out.String())
	})

	t.Run("invalid draft: json", func(t *testing.T) {
		cli, out := setup(t, false)
		err := cli.run([]string{"bulletin", "profile", "-file", writeDraft(t, invalid)})
		assert.Equal(t, errInvalidDraft, err)
		assert.JSONEq(t, `{"errors": ["Student Name is required.", "Math marks must be between 0 and 100."]}`, out.String())
	})

	t.Run("text", func(t *testing.T) {
		cli, out := setup(t, true)
		require.NoError(t, cli.run([]string{"bulletin", "profile", "-file", writeDraft(t, valid)}))
		assert.Contains(t, out.String(), "Jane Doe")
		assert.Contains(t, out.String(), "Social Studies")
		assert.Contains(t, out.String(), "Excellent")
	})

	t.Run("json", func(t *testing.T) {
		cli, out := setup(t, false)
		require.NoError(t, cli.run([]string{"bulletin", "profile", "-file", writeDraft(t, valid)}))

		var got struct {
			Subjects []struct {
				Grade string `json:"grade"`
			} `json:"subjects"`
			Attendance struct {
				Status string `json:"status"`
			} `json:"attendance"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Len(t, got.Subjects, 5)
		assert.Equal(t, "B", got.Subjects[0].Grade)
		assert.Equal(t, "Excellent", got.Attendance.Status)
	})
}
