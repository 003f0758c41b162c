package academic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrade(t *testing.T) {
	tests := []struct {
		name  string
		marks int
		want  Grade
	}{
		{name: "full marks", marks: 100, want: GradeA},
		{name: "A lower bound", marks: 90, want: GradeA},
		{name: "B upper bound", marks: 89, want: GradeB},
		{name: "B lower bound", marks: 75, want: GradeB},
		{name: "C upper bound", marks: 74, want: GradeC},
		{name: "C lower bound", marks: 60, want: GradeC},
		{name: "D upper bound", marks: 59, want: GradeD},
		{name: "D lower bound", marks: 40, want: GradeD},
		{name: "F upper bound", marks: 39, want: GradeF},
		{name: "zero", marks: 0, want: GradeF},
		{name: "negative", marks: -5, want: GradeF},
		{name: "above 100", marks: 140, want: GradeA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateGrade(tt.marks); got != tt.want {
				t.Errorf("CalculateGrade(%d) = %v, want %v", tt.marks, got, tt.want)
			}
		})
	}
}

func TestCalculateGrade_allMarks(t *testing.T) {
	for m := MinMarks; m <= MaxMarks; m++ {
		var want Grade
		switch {
		case m >= 90:
			want = GradeA
		case m >= 75:
			want = GradeB
		case m >= 60:
			want = GradeC
		case m >= 40:
			want = GradeD
		default:
			want = GradeF
		}
		assert.Equal(t, want, CalculateGrade(m), "marks %d", m)
	}
}

func TestGetAttendanceStatus(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want AttendanceStatus
	}{
		{name: "full", pct: 100, want: AttendanceExcellent},
		{name: "excellent lower bound", pct: 90, want: AttendanceExcellent},
		{name: "just below excellent", pct: 89.99, want: AttendanceSatisfactory},
		{name: "satisfactory lower bound", pct: 75, want: AttendanceSatisfactory},
		{name: "just below satisfactory", pct: 74.9, want: AttendanceLow},
		{name: "zero", pct: 0, want: AttendanceLow},
		{name: "negative", pct: -1, want: AttendanceLow},
		{name: "above 100", pct: 250, want: AttendanceExcellent},
		{name: "NaN", pct: math.NaN(), want: AttendanceLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAttendanceStatus(tt.pct); got != tt.want {
				t.Errorf("GetAttendanceStatus(%v) = %v, want %v", tt.pct, got, tt.want)
			}
		})
	}
}

func TestTones(t *testing.T) {
	assert.Equal(t, ToneGreen, GradeA.Tone())
	assert.Equal(t, ToneBlue, GradeB.Tone())
	assert.Equal(t, ToneYellow, GradeC.Tone())
	assert.Equal(t, ToneOrange, GradeD.Tone())
	assert.Equal(t, ToneRed, GradeF.Tone())
	assert.Equal(t, ToneGray, Grade("Z").Tone())

	assert.Equal(t, ToneEmerald, AttendanceExcellent.Tone())
	assert.Equal(t, ToneBlue, AttendanceSatisfactory.Tone())
	assert.Equal(t, ToneRose, AttendanceLow.Tone())
	assert.Equal(t, "Low Attendance", AttendanceLow.Label())
	assert.Equal(t, "Satisfactory", AttendanceSatisfactory.Label())
}

func TestScale(t *testing.T) {
	scale := Scale()

	// every band's lower bound classifies into that band
	for _, b := range scale.Grades {
		assert.Equal(t, b.Grade, CalculateGrade(b.MinMarks))
		assert.Equal(t, b.Grade.Tone(), b.Tone)
	}
	for _, b := range scale.Attendance {
		assert.Equal(t, b.Status, GetAttendanceStatus(b.MinPercentage))
		assert.Equal(t, b.Status.Label(), b.Label)
	}
	assert.Len(t, scale.Grades, 5)
	assert.Len(t, scale.Attendance, 3)
}
