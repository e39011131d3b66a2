package question

import "encoding/json"

// Record is a single quiz item loaded from the question bank.
type Record struct {
	Number int    `json:"number" yaml:"number"`
	Type   string `json:"type" yaml:"type"`
	Text   string `json:"text" yaml:"text"`
	Answer string `json:"answer" yaml:"answer"`
}

// legacyRecord mirrors the key names used by Chinese-keyed banks.
type legacyRecord struct {
	Number *int    `json:"题号"`
	Type   *string `json:"类型"`
	Text   *string `json:"题目"`
	Answer *string `json:"标准答案"`
}

// UnmarshalJSON accepts both the English keys and the legacy bank keys.
// English keys win when an object carries both.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var english plain
	if err := json.Unmarshal(data, &english); err != nil {
		return err
	}
	var legacy legacyRecord
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	if english.Number == 0 && legacy.Number != nil {
		english.Number = *legacy.Number
	}
	if english.Type == "" && legacy.Type != nil {
		english.Type = *legacy.Type
	}
	if english.Text == "" && legacy.Text != nil {
		english.Text = *legacy.Text
	}
	if english.Answer == "" && legacy.Answer != nil {
		english.Answer = *legacy.Answer
	}
	*r = Record(english)
	return nil
}
