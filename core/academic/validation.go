package academic

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/bulletin/core"
)

// bounds, inclusive
const (
	MinMarks      = 0
	MaxMarks      = 100
	MinPercentage = 0.0
	MaxPercentage = 100.0
	MinAge        = 1
)

var ErrInvalidDraft = errors.New("invalid student profile")

// Validate returns every problem with the draft, in field order:
// info fields, then subjects in Subjects order, then attendance.
// An empty result means the draft can be assembled.
func Validate(d Draft) []string {
	flds := check(d)
	msgs := make([]string, 0, len(flds))
	for _, fe := range flds {
		msgs = append(msgs, fe.Error)
	}
	return msgs
}

// Check is Validate for callers dealing in errors.
// It returns a *core.ValidationError keyed by field, or nil.
func Check(d Draft) error {
	if flds := check(d); len(flds) > 0 {
		return core.NewValidationError(ErrInvalidDraft, flds...)
	}
	return nil
}

func check(d Draft) []core.FieldError {
	var flds []core.FieldError
	report := func(field, msg string) {
		flds = append(flds, core.FieldError{Field: field, Error: msg})
	}

	info := d.Info
	if core.IsBlank(info.RegisterNumber) {
		report("register_number", "Register Number is required.")
	}
	if core.IsBlank(info.Name) {
		report("name", "Student Name is required.")
	}
	if !info.Age.Valid || info.Age.Int < MinAge {
		report("age", "Valid Age is required.")
	}
	if core.IsBlank(info.FatherName) {
		report("father_name", "Father's Name is required.")
	}
	if core.IsBlank(info.MotherName) {
		report("mother_name", "Mother's Name is required.")
	}
	if core.IsBlank(info.Address) {
		report("address", "Address is required.")
	}

	for _, s := range Subjects {
		field := "marks." + s.Key()
		mark := d.Marks.Get(s)
		switch {
		case !mark.Valid:
			report(field, fmt.Sprintf("%s marks are required.", s))
		case mark.Int < MinMarks || mark.Int > MaxMarks:
			report(field, fmt.Sprintf("%s marks must be between %d and %d.", s, MinMarks, MaxMarks))
		}
	}

	switch pct := d.Attendance; {
	case !pct.Valid:
		report("attendance", "Attendance percentage is required.")
	case math.IsNaN(pct.Float64) || pct.Float64 < MinPercentage || pct.Float64 > MaxPercentage:
		report("attendance", fmt.Sprintf("Attendance percentage must be between %g and %g.", MinPercentage, MaxPercentage))
	}
	return flds
}

// Assemble builds the profile of a valid draft.
// Calling it with a draft Validate rejects is a programming error and panics.
func Assemble(d Draft) StudentProfile {
	if errs := Validate(d); len(errs) > 0 {
		panic("academic.Assemble: invalid draft: " + strings.Join(errs, " "))
	}

	p := StudentProfile{
		info: StudentInfo{
			RegisterNumber: d.Info.RegisterNumber,
			Name:           d.Info.Name,
			Age:            d.Info.Age.Int,
			FatherName:     d.Info.FatherName,
			MotherName:     d.Info.MotherName,
			Address:        d.Info.Address,
		},
		attendance: d.Attendance.Float64,
	}
	for i, s := range Subjects {
		p.subjects[i] = SubjectMark{Subject: s, Marks: d.Marks.Get(s).Int}
	}
	return p
}

// Build validates the draft and assembles it.
func Build(d Draft) (StudentProfile, error) {
	if err := Check(d); err != nil {
		return StudentProfile{}, err
	}
	return Assemble(d), nil
}
