package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	jfmt "github.com/alnah/go-jfmt"
)

// ErrPromptAborted is returned when the user interrupts a prompt.
var ErrPromptAborted = errors.New("prompt aborted")

// prompter abstracts interactive prompts so the add flow can be tested
// without a terminal.
type prompter interface {
	Input(message, def string) (string, error)
	Select(message string, options []string, def string) (string, error)
}

// surveyPrompter renders prompts with the survey library.
type surveyPrompter struct{}

func (*surveyPrompter) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translatePromptErr(err)
	}
	return out, nil
}

func (*surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translatePromptErr(err)
	}
	return out, nil
}

// translatePromptErr maps survey's interrupt to a local sentinel.
func translatePromptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptAborted
	}
	return err
}

// promptFormat collects a journal format definition interactively.
// Defaults shown in the prompts match applyFormatDefaults.
func promptFormat(p prompter) (jfmt.JournalFormat, error) {
	var f jfmt.JournalFormat

	name, err := p.Input("Journal name:", "")
	if err != nil {
		return jfmt.JournalFormat{}, err
	}
	f.Name = strings.TrimSpace(name)

	f.Description, err = p.Input("Description:", "")
	if err != nil {
		return jfmt.JournalFormat{}, err
	}

	f.WordLimit, err = promptInt(p, "Word limit:", jfmt.DefaultWordLimit)
	if err != nil {
		return jfmt.JournalFormat{}, err
	}

	f.LineSpacing, err = promptFloat(p, "Line spacing:", jfmt.DefaultLineSpacing)
	if err != nil {
		return jfmt.JournalFormat{}, err
	}

	f.ReferenceStyle, err = p.Select("Reference style:", jfmt.ReferenceStyles(), jfmt.StyleAPA)
	if err != nil {
		return jfmt.JournalFormat{}, err
	}

	f.FontFamily, err = p.Input("Font family:", jfmt.DefaultFontFamily)
	if err != nil {
		return jfmt.JournalFormat{}, err
	}

	f.FontSize, err = promptInt(p, "Font size (pt):", jfmt.DefaultFontSize)
	if err != nil {
		return jfmt.JournalFormat{}, err
	}

	margin, err := promptFloat(p, "Margins (inches):", jfmt.DefaultMargin)
	if err != nil {
		return jfmt.JournalFormat{}, err
	}
	f.Margins = jfmt.Margins{Top: margin, Bottom: margin, Left: margin, Right: margin}

	applyFormatDefaults(&f)
	return f, nil
}

// promptInt asks for an integer, offering def as the default.
func promptInt(p prompter, message string, def int) (int, error) {
	raw, err := p.Input(message, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", raw, err)
	}
	return n, nil
}

// promptFloat asks for a float, offering def as the default.
func promptFloat(p prompter, message string, def float64) (float64, error) {
	raw, err := p.Input(message, strconv.FormatFloat(def, 'g', -1, 64))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", raw, err)
	}
	return v, nil
}
