package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/trezcool/bulletin/core/academic"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp         = errors.New("help provided")
	errInvalidDraft = errors.New("draft is not valid")
)

type commandLine struct {
	out io.Writer
	fd  int // of out, to tell a terminal from a pipe
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  grade -marks MARKS - letter grade of subject marks (0-100)")
	_, _ = fmt.Fprintln(cli.out, "  attendance -percentage PERCENT - attendance status of a percentage (0-100)")
	_, _ = fmt.Fprintln(cli.out, "  profile -file DRAFT.json - validate a draft and print its profile")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	gradeCmd := cli.newFlagSet("grade")
	gradeMarks := gradeCmd.Int("marks", -1, "The subject marks, between 0 and 100.")

	attendanceCmd := cli.newFlagSet("attendance")
	attendancePct := attendanceCmd.Float64("percentage", -1, "The attendance percentage, between 0 and 100.")

	profileCmd := cli.newFlagSet("profile")
	profileFile := profileCmd.String("file", "", "Path to the JSON draft of a student profile.")

	switch args[1] {
	case "grade":
		if err := gradeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if !isSet(gradeCmd, "marks") {
			gradeCmd.Usage()
			return errHelp
		}
		return cli.grade(*gradeMarks)
	case "attendance":
		if err := attendanceCmd.Parse(args[2:]); err != nil {
			return err
		}
		if !isSet(attendanceCmd, "percentage") {
			attendanceCmd.Usage()
			return errHelp
		}
		return cli.attendance(*attendancePct)
	case "profile":
		if err := profileCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *profileFile == "" {
			profileCmd.Usage()
			return errHelp
		}
		return cli.profile(*profileFile)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func isSet(fs *flag.FlagSet, name string) bool {
	var found bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func (cli *commandLine) isTerminal() bool {
	return isTerminalFunc(cli.fd)
}

// printJSON writes v indented, for piping into other tools.
func (cli *commandLine) printJSON(v interface{}) error {
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (cli *commandLine) grade(marks int) error {
	if marks < academic.MinMarks || marks > academic.MaxMarks {
		return fmt.Errorf("marks must be between %d and %d (got %d)", academic.MinMarks, academic.MaxMarks, marks)
	}
	grade := academic.CalculateGrade(marks)

	if !cli.isTerminal() {
		return cli.printJSON(struct {
			Marks int            `json:"marks"`
			Grade academic.Grade `json:"grade"`
			Tone  academic.Tone  `json:"tone"`
		}{marks, grade, grade.Tone()})
	}
	_, err := fmt.Fprintf(cli.out, "Grade: %s (%s)\n", grade, grade.Tone())
	return err
}

func (cli *commandLine) attendance(pct float64) error {
	if pct < academic.MinPercentage || pct > academic.MaxPercentage {
		return fmt.Errorf("percentage must be between %g and %g (got %g)", academic.MinPercentage, academic.MaxPercentage, pct)
	}
	status := academic.GetAttendanceStatus(pct)

	if !cli.isTerminal() {
		return cli.printJSON(struct {
			Percentage float64                   `json:"percentage"`
			Status     academic.AttendanceStatus `json:"status"`
			Label      string                    `json:"label"`
			Tone       academic.Tone             `json:"tone"`
		}{pct, status, status.Label(), status.Tone()})
	}
	_, err := fmt.Fprintf(cli.out, "Attendance: %g%% %s (%s)\n", pct, status.Label(), status.Tone())
	return err
}

func (cli *commandLine) profile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	var draft academic.Draft
	if err = json.Unmarshal(data, &draft); err != nil {
		return fmt.Errorf("reading draft %s: %w", path, err)
	}

	if errs := academic.Validate(draft); len(errs) > 0 {
		if !cli.isTerminal() {
			if err = cli.printJSON(struct {
				Errors []string `json:"errors"`
			}{errs}); err != nil {
				return err
			}
		} else {
			for _, msg := range errs {
				_, _ = fmt.Fprintf(cli.out, "- %s\n", msg)
			}
		}
		return errInvalidDraft
	}

	profile := academic.Assemble(draft)
	if !cli.isTerminal() {
		return cli.printJSON(profile)
	}
	return printProfile(cli.out, profile)
}

func printProfile(out io.Writer, p academic.StudentProfile) error {
	info := p.Info()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "Register Number:\t%s\n", info.RegisterNumber)
	_, _ = fmt.Fprintf(w, "Name:\t%s\n", info.Name)
	_, _ = fmt.Fprintf(w, "Age:\t%d\n", info.Age)
	_, _ = fmt.Fprintf(w, "Father's Name:\t%s\n", info.FatherName)
	_, _ = fmt.Fprintf(w, "Mother's Name:\t%s\n", info.MotherName)
	_, _ = fmt.Fprintf(w, "Address:\t%s\n", info.Address)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "SUBJECT\tMARKS\tGRADE")
	for _, sm := range p.Subjects() {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", sm.Subject, sm.Marks, sm.Grade())
	}
	_, _ = fmt.Fprintln(w)

	status := p.AttendanceStatus()
	_, _ = fmt.Fprintf(w, "Attendance:\t%g%%\t%s\n", p.Attendance(), status.Label())
	return w.Flush()
}

// stdout is the commandLine printing to the process' standard output.
func stdout() *commandLine {
	return &commandLine{out: os.Stdout, fd: int(os.Stdout.Fd())}
}
