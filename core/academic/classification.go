package academic

// Grade is the letter outcome of a single subject's marks.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// AttendanceStatus is the outcome of an attendance percentage.
type AttendanceStatus string

const (
	AttendanceExcellent    AttendanceStatus = "Excellent"
	AttendanceSatisfactory AttendanceStatus = "Satisfactory"
	AttendanceLow          AttendanceStatus = "Low"
)

// Tone is the display category a presentation layer picks its colours from.
type Tone string

const (
	ToneGreen   Tone = "green"
	ToneEmerald Tone = "emerald"
	ToneBlue    Tone = "blue"
	ToneYellow  Tone = "yellow"
	ToneOrange  Tone = "orange"
	ToneRed     Tone = "red"
	ToneRose    Tone = "rose"
	ToneGray    Tone = "gray"
)

// lower bounds, inclusive
const (
	MinMarksA = 90
	MinMarksB = 75
	MinMarksC = 60
	MinMarksD = 40

	MinAttendanceExcellent    = 90.0
	MinAttendanceSatisfactory = 75.0
)

// CalculateGrade maps marks to a Grade, highest band first.
// Out of range marks fall in the nearest band.
func CalculateGrade(marks int) Grade {
	switch {
	case marks >= MinMarksA:
		return GradeA
	case marks >= MinMarksB:
		return GradeB
	case marks >= MinMarksC:
		return GradeC
	case marks >= MinMarksD:
		return GradeD
	default:
		return GradeF
	}
}

// GetAttendanceStatus maps an attendance percentage to an AttendanceStatus.
// NaN is never above a threshold, so it is Low.
func GetAttendanceStatus(percentage float64) AttendanceStatus {
	switch {
	case percentage >= MinAttendanceExcellent:
		return AttendanceExcellent
	case percentage >= MinAttendanceSatisfactory:
		return AttendanceSatisfactory
	default:
		return AttendanceLow
	}
}

func (g Grade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeF:
		return true
	}
	return false
}

func (g Grade) Tone() Tone {
	switch g {
	case GradeA:
		return ToneGreen
	case GradeB:
		return ToneBlue
	case GradeC:
		return ToneYellow
	case GradeD:
		return ToneOrange
	case GradeF:
		return ToneRed
	default:
		return ToneGray
	}
}

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceExcellent, AttendanceSatisfactory, AttendanceLow:
		return true
	}
	return false
}

// Label is the text shown to users.
func (s AttendanceStatus) Label() string {
	if s == AttendanceLow {
		return "Low Attendance"
	}
	return string(s)
}

func (s AttendanceStatus) Tone() Tone {
	switch s {
	case AttendanceExcellent:
		return ToneEmerald
	case AttendanceSatisfactory:
		return ToneBlue
	case AttendanceLow:
		return ToneRose
	default:
		return ToneGray
	}
}

type (
	GradeBand struct {
		Grade    Grade `json:"grade"`
		MinMarks int   `json:"min_marks"`
		Tone     Tone  `json:"tone"`
	}

	AttendanceBand struct {
		Status        AttendanceStatus `json:"status"`
		Label         string           `json:"label"`
		MinPercentage float64          `json:"min_percentage"`
		Tone          Tone             `json:"tone"`
	}

	// GradingScale describes every band, highest first.
	GradingScale struct {
		Grades     []GradeBand      `json:"grades"`
		Attendance []AttendanceBand `json:"attendance"`
	}
)

// Scale returns the bands CalculateGrade and GetAttendanceStatus apply.
func Scale() GradingScale {
	grades := []GradeBand{
		{Grade: GradeA, MinMarks: MinMarksA},
		{Grade: GradeB, MinMarks: MinMarksB},
		{Grade: GradeC, MinMarks: MinMarksC},
		{Grade: GradeD, MinMarks: MinMarksD},
		{Grade: GradeF, MinMarks: MinMarks},
	}
	for i := range grades {
		grades[i].Tone = grades[i].Grade.Tone()
	}

	attendance := []AttendanceBand{
		{Status: AttendanceExcellent, MinPercentage: MinAttendanceExcellent},
		{Status: AttendanceSatisfactory, MinPercentage: MinAttendanceSatisfactory},
		{Status: AttendanceLow, MinPercentage: MinPercentage},
	}
	for i := range attendance {
		attendance[i].Label = attendance[i].Status.Label()
		attendance[i].Tone = attendance[i].Status.Tone()
	}
	return GradingScale{Grades: grades, Attendance: attendance}
}
