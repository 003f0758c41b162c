package academic

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

// Draft is the in-progress entry of a profile.
// Numeric fields are null until set, which is distinct from zero.
type Draft struct {
	Info       InfoDraft    `json:"info"`
	Marks      MarkSheet    `json:"marks"`
	Attendance null.Float64 `json:"attendance"`
}

type InfoDraft struct {
	RegisterNumber string   `json:"register_number"`
	Name           string   `json:"name"`
	Age            null.Int `json:"age"`
	FatherName     string   `json:"father_name"`
	MotherName     string   `json:"mother_name"`
	Address        string   `json:"address"`
}

// MarkSheet holds one optional mark per Subject, indexed by Subject.
// It reads and writes JSON as an object keyed by subject name.
type MarkSheet [NumSubjects]null.Int

// Get returns the mark entered for `s`.
func (ms MarkSheet) Get(s Subject) null.Int {
	if !s.IsValid() {
		return null.Int{}
	}
	return ms[s]
}

// With returns a copy of the sheet with `marks` set for `s`.
func (ms MarkSheet) With(s Subject, marks int) MarkSheet {
	if s.IsValid() {
		ms[s] = null.IntFrom(marks)
	}
	return ms
}

// Without returns a copy of the sheet with the mark for `s` unset.
func (ms MarkSheet) Without(s Subject) MarkSheet {
	if s.IsValid() {
		ms[s] = null.Int{}
	}
	return ms
}

func (ms MarkSheet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range Subjects {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.String())
		if err != nil {
			return nil, err
		}
		val, err := ms[s].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by subject name or key.
// A subject given twice, under any spelling, is an error.
func (ms *MarkSheet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "decoding marks")
	}
	if tok == nil { // null
		*ms = MarkSheet{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("decoding marks: expected an object, got %v", tok)
	}

	var sheet MarkSheet
	var seen [NumSubjects]bool
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errors.Wrap(err, "decoding marks")
		}
		name, _ := tok.(string)
		s, err := ParseSubject(name)
		if err != nil {
			return err
		}
		if seen[s] {
			return errors.Errorf("duplicate marks for subject %q", s)
		}
		seen[s] = true

		var marks null.Int
		if err = dec.Decode(&marks); err != nil {
			return errors.Wrapf(err, "decoding %s marks", s)
		}
		sheet[s] = marks
	}
	if _, err = dec.Token(); err != nil {
		return errors.Wrap(err, "decoding marks")
	}
	*ms = sheet
	return nil
}

// NewMarkSheet returns a sheet with the same marks for every Subject.
func NewMarkSheet(marks int) MarkSheet {
	var ms MarkSheet
	for _, s := range Subjects {
		ms[s] = null.IntFrom(marks)
	}
	return ms
}
