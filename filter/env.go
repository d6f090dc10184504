package filter

import (
	"time"

	"github.com/classfetch/classfetch/model"
)

// ChildEnv flattens a child record into an expression environment.
// Pointer fields become zero values when absent, dates become midnight
// time.Time values so they compare against the date() helper.
func ChildEnv(c model.Child) map[string]any {
	return map[string]any{
		"id":            derefInt(c.ID),
		"first_name":    derefStr(c.FirstName),
		"last_name":     derefStr(c.LastName),
		"birth_date":    derefDate(c.BirthDate),
		"gender":        derefStr(c.Gender),
		"program":       derefStr(c.Program),
		"grade":         derefStr(c.Grade),
		"student_id":    derefStr(c.StudentID),
		"allergies":     derefStr(c.Allergies),
		"notes":         derefStr(c.Notes),
		"ethnicity":     c.Ethnicity,
		"parent_ids":    c.ParentIDs,
		"classroom_ids": c.ClassroomIDs,
		"first_day":     derefDate(c.FirstDay),
		"last_day":      derefDate(c.LastDay),
		"exit_reason":   derefStr(c.ExitReason),
		"withdrawn":     c.LastDay != nil,
	}
}

// MatchChild evaluates the filter against one child record.
func (f *Filter) MatchChild(c model.Child) (bool, error) {
	return f.Match(ChildEnv(c))
}

// Children returns the children matching the filter, preserving order.
func (f *Filter) Children(roster []model.Child) ([]model.Child, error) {
	var out []model.Child
	for _, c := range roster {
		ok, err := f.MatchChild(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefDate(p *model.Date) time.Time {
	if p == nil {
		return time.Time{}
	}
	return p.Time(time.Local)
}
