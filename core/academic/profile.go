package academic

import "encoding/json"

type StudentInfo struct {
	RegisterNumber string `json:"register_number"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	FatherName     string `json:"father_name"`
	MotherName     string `json:"mother_name"`
	Address        string `json:"address"`
}

type SubjectMark struct {
	Subject Subject `json:"subject"`
	Marks   int     `json:"marks"`
}

func (sm SubjectMark) Grade() Grade {
	return CalculateGrade(sm.Marks)
}

// StudentProfile is a validated record. It is only made by Assemble
// and has no mutators: every accessor returns a copy.
type StudentProfile struct {
	info       StudentInfo
	subjects   [NumSubjects]SubjectMark
	attendance float64
}

func (p StudentProfile) Info() StudentInfo { return p.info }

// Subjects returns one mark per Subject, in Subjects order.
func (p StudentProfile) Subjects() [NumSubjects]SubjectMark { return p.subjects }

func (p StudentProfile) Attendance() float64 { return p.attendance }

func (p StudentProfile) AttendanceStatus() AttendanceStatus {
	return GetAttendanceStatus(p.attendance)
}

// IsZero reports whether p was not made by Assemble.
func (p StudentProfile) IsZero() bool {
	return p == StudentProfile{}
}

type (
	subjectResult struct {
		Subject Subject `json:"subject"`
		Marks   int     `json:"marks"`
		Grade   Grade   `json:"grade"`
		Tone    Tone    `json:"tone"`
	}

	attendanceResult struct {
		Percentage float64          `json:"percentage"`
		Status     AttendanceStatus `json:"status"`
		Label      string           `json:"label"`
		Tone       Tone             `json:"tone"`
	}

	profileJSON struct {
		Info       StudentInfo      `json:"info"`
		Subjects   []subjectResult  `json:"subjects"`
		Attendance attendanceResult `json:"attendance"`
	}
)

// MarshalJSON writes the profile along with its derived grades and attendance status.
func (p StudentProfile) MarshalJSON() ([]byte, error) {
	out := profileJSON{
		Info:     p.info,
		Subjects: make([]subjectResult, 0, NumSubjects),
	}
	for _, sm := range p.subjects {
		grade := sm.Grade()
		out.Subjects = append(out.Subjects, subjectResult{
			Subject: sm.Subject,
			Marks:   sm.Marks,
			Grade:   grade,
			Tone:    grade.Tone(),
		})
	}
	status := p.AttendanceStatus()
	out.Attendance = attendanceResult{
		Percentage: p.attendance,
		Status:     status,
		Label:      status.Label(),
		Tone:       status.Tone(),
	}
	return json.Marshal(out)
}
