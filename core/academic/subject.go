package academic

import (
	"fmt"
	"strings"
)

// Subject is one of the fixed set of subjects a profile carries marks for.
type Subject int

const (
	Math Subject = iota
	English
	Science
	SocialStudies
	Computer
)

// NumSubjects is the number of subjects every complete profile has.
const NumSubjects = 5

var (
	// Subjects lists every Subject in display order.
	Subjects = [NumSubjects]Subject{Math, English, Science, SocialStudies, Computer}

	subjectNames = [NumSubjects]string{"Math", "English", "Science", "Social Studies", "Computer"}
	subjectKeys  = [NumSubjects]string{"math", "english", "science", "social_studies", "computer"}
)

func (s Subject) IsValid() bool {
	return s >= Math && s <= Computer
}

// String returns the display name, eg. "Social Studies".
func (s Subject) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Subject(%d)", int(s))
	}
	return subjectNames[s]
}

// Key returns the snake_case identifier, eg. "social_studies".
func (s Subject) Key() string {
	if !s.IsValid() {
		return ""
	}
	return subjectKeys[s]
}

func (s Subject) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid subject %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Subject) UnmarshalText(text []byte) error {
	subj, err := ParseSubject(string(text))
	if err != nil {
		return err
	}
	*s = subj
	return nil
}

// ParseSubject accepts a display name or a key, case-insensitively.
func ParseSubject(name string) (Subject, error) {
	name = strings.TrimSpace(name)
	for _, s := range Subjects {
		if strings.EqualFold(name, subjectNames[s]) || strings.EqualFold(name, subjectKeys[s]) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown subject %q", name)
}
