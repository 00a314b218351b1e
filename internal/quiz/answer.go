package quiz

import (
	"encoding/json"
	"fmt"
)

// AnswerKind discriminates the value held by an AnswerValue.
type AnswerKind int

const (
	KindNumber AnswerKind = iota
	KindText
	KindChoice
	KindMultiChoice
)

// AnswerValue is the value a learner gave for one question: a number (scale
// questions), a string (free text or a chosen option value), or an ordered
// list of option values (multi-select).
//
// On the wire it is the plain JSON value (number / string / string array),
// matching the persisted session format. Choice and Text both serialize to a
// string, so a rehydrated string answer always carries KindText; consumers
// must treat the two kinds interchangeably.
type AnswerValue struct {
	Kind    AnswerKind
	Number  float64
	Text    string
	Choices []string
}

// Number wraps a numeric answer.
func Number(v float64) AnswerValue {
	return AnswerValue{Kind: KindNumber, Number: v}
}

// Text wraps a free-text answer.
func Text(v string) AnswerValue {
	return AnswerValue{Kind: KindText, Text: v}
}

// Choice wraps a single selected option value.
func Choice(v string) AnswerValue {
	return AnswerValue{Kind: KindChoice, Text: v}
}

// MultiChoice wraps an ordered list of selected option values.
func MultiChoice(vs ...string) AnswerValue {
	return AnswerValue{Kind: KindMultiChoice, Choices: vs}
}

// AsText returns the string form for Text and Choice answers, "" otherwise.
func (a AnswerValue) AsText() string {
	if a.Kind == KindText || a.Kind == KindChoice {
		return a.Text
	}
	return ""
}

// AsNumber returns the numeric form, 0 for non-numeric answers.
func (a AnswerValue) AsNumber() float64 {
	if a.Kind == KindNumber {
		return a.Number
	}
	return 0
}

// AsChoices returns the selected values for multi-select answers. Single
// choice and text answers yield a one-element slice so callers can treat
// every selection uniformly.
func (a AnswerValue) AsChoices() []string {
	switch a.Kind {
	case KindMultiChoice:
		return a.Choices
	case KindChoice, KindText:
		if a.Text == "" {
			return nil
		}
		return []string{a.Text}
	}
	return nil
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindNumber:
		return json.Marshal(a.Number)
	case KindText, KindChoice:
		return json.Marshal(a.Text)
	case KindMultiChoice:
		if a.Choices == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.Choices)
	}
	return nil, fmt.Errorf("unknown answer kind: %d", a.Kind)
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*a = Number(num)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*a = Text(text)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = AnswerValue{Kind: KindMultiChoice, Choices: list}
		return nil
	}
	return fmt.Errorf("answer value must be a number, string, or string array")
}
