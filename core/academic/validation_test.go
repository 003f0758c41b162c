package academic

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bulletin/core"
)

func completeDraft() Draft {
	return Draft{
		Info: InfoDraft{
			RegisterNumber: "2024-001",
			Name:           "Jane Doe",
			Age:            null.IntFrom(15),
			FatherName:     "John Doe Sr.",
			MotherName:     "Jane Doe Sr.",
			Address:        "1 Main St",
		},
		Marks:      NewMarkSheet(80),
		Attendance: null.Float64From(92),
	}
}

var allRequired = []string{
	"Register Number is required.",
	"Student Name is required.",
	"Valid Age is required.",
	"Father's Name is required.",
	"Mother's Name is required.",
	"Address is required.",
	"Math marks are required.",
	"English marks are required.",
	"Science marks are required.",
	"Social Studies marks are required.",
	"Computer marks are required.",
	"Attendance percentage is required.",
}

func TestValidate(t *testing.T) {
	with := func(fn func(d *Draft)) Draft {
		d := completeDraft()
		fn(&d)
		return d
	}

	tests := []struct {
		name  string
		draft Draft
		want  []string
	}{
		{name: "complete", draft: completeDraft(), want: []string{}},
		{name: "empty", draft: Draft{}, want: allRequired},
		{
			name:  "register number missing",
			draft: with(func(d *Draft) { d.Info.RegisterNumber = "" }),
			want:  []string{"Register Number is required."},
		},
		{
			name:  "blank strings are missing",
			draft: with(func(d *Draft) { d.Info.Name = "   "; d.Info.Address = "\t\n" }),
			want:  []string{"Student Name is required.", "Address is required."},
		},
		{
			name:  "age zero",
			draft: with(func(d *Draft) { d.Info.Age = null.IntFrom(0) }),
			want:  []string{"Valid Age is required."},
		},
		{
			name:  "age negative",
			draft: with(func(d *Draft) { d.Info.Age = null.IntFrom(-3) }),
			want:  []string{"Valid Age is required."},
		},
		{
			name:  "age one",
			draft: with(func(d *Draft) { d.Info.Age = null.IntFrom(1) }),
			want:  []string{},
		},
		{
			name:  "zero marks are set",
			draft: with(func(d *Draft) { d.Marks = NewMarkSheet(0) }),
			want:  []string{},
		},
		{
			name:  "zero attendance is set",
			draft: with(func(d *Draft) { d.Attendance = null.Float64From(0) }),
			want:  []string{},
		},
		{
			name: "order follows fields, not discovery",
			draft: with(func(d *Draft) {
				d.Attendance = null.Float64{}
				d.Marks = d.Marks.Without(Computer).Without(English)
				d.Info.MotherName = ""
			}),
			want: []string{
				"Mother's Name is required.",
				"English marks are required.",
				"Computer marks are required.",
				"Attendance percentage is required.",
			},
		},
		{
			name:  "marks out of range",
			draft: with(func(d *Draft) { d.Marks = d.Marks.With(Science, 101).With(Math, -1) }),
			want: []string{
				"Math marks must be between 0 and 100.",
				"Science marks must be between 0 and 100.",
			},
		},
		{
			name:  "marks bounds",
			draft: with(func(d *Draft) { d.Marks = d.Marks.With(Science, 100).With(Math, 0) }),
			want:  []string{},
		},
		{
			name:  "attendance above 100",
			draft: with(func(d *Draft) { d.Attendance = null.Float64From(100.5) }),
			want:  []string{"Attendance percentage must be between 0 and 100."},
		},
		{
			name:  "attendance negative",
			draft: with(func(d *Draft) { d.Attendance = null.Float64From(-0.1) }),
			want:  []string{"Attendance percentage must be between 0 and 100."},
		},
		{
			name:  "attendance NaN",
			draft: with(func(d *Draft) { d.Attendance = null.Float64From(math.NaN()) }),
			want:  []string{"Attendance percentage must be between 0 and 100."},
		},
		{
			name: "required and range mixed",
			draft: with(func(d *Draft) {
				d.Info.RegisterNumber = ""
				d.Marks = d.Marks.With(SocialStudies, 200)
				d.Attendance = null.Float64{}
			}),
			want: []string{
				"Register Number is required.",
				"Social Studies marks must be between 0 and 100.",
				"Attendance percentage is required.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.draft))
		})
	}
}

func TestValidate_eachSubsetKeepsOrder(t *testing.T) {
	// drop every subset of the 12 fields and check the messages come out in field order
	unset := []func(d *Draft){
		func(d *Draft) { d.Info.RegisterNumber = "" },
		func(d *Draft) { d.Info.Name = "" },
		func(d *Draft) { d.Info.Age = null.Int{} },
		func(d *Draft) { d.Info.FatherName = "" },
		func(d *Draft) { d.Info.MotherName = "" },
		func(d *Draft) { d.Info.Address = "" },
		func(d *Draft) { d.Marks = d.Marks.Without(Math) },
		func(d *Draft) { d.Marks = d.Marks.Without(English) },
		func(d *Draft) { d.Marks = d.Marks.Without(Science) },
		func(d *Draft) { d.Marks = d.Marks.Without(SocialStudies) },
		func(d *Draft) { d.Marks = d.Marks.Without(Computer) },
		func(d *Draft) { d.Attendance = null.Float64{} },
	}

	for mask := 0; mask < 1<<len(unset); mask++ {
		d := completeDraft()
		want := []string{}
		for i, fn := range unset {
			if mask&(1<<i) != 0 {
				fn(&d)
				want = append(want, allRequired[i])
			}
		}
		if got := Validate(d); !assert.Equal(t, want, got) {
			t.Fatalf("mask %b", mask)
		}
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(completeDraft()))

	d := completeDraft()
	d.Info.RegisterNumber = ""
	d.Marks = d.Marks.Without(SocialStudies)

	err := Check(d)
	var vErr *core.ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, ErrInvalidDraft, vErr.Err)
		assert.Equal(t, []core.FieldError{
			{Field: "register_number", Error: "Register Number is required."},
			{Field: "marks.social_studies", Error: "Social Studies marks are required."},
		}, vErr.Fields)
		assert.Equal(t, Validate(d), vErr.Messages())
	}
}
