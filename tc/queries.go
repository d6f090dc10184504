package tc

import (
	"net/url"
	"strconv"

	"github.com/classfetch/classfetch/model"
)

// Query structs mirror the parameter surface of the upstream endpoints.
// Zero values are omitted from the encoded query string.

// PageQuery holds the pagination parameters shared by every list endpoint.
type PageQuery struct {
	Page    int
	PerPage int
}

func (q PageQuery) encode(v url.Values) {
	setInt(v, "page", int64(q.Page))
	setInt(v, "per_page", int64(q.PerPage))
}

// ActivityQuery filters the activity feed. The API requires either a child
// or a classroom scope.
type ActivityQuery struct {
	ChildID       int64
	ClassroomID   int64
	OnlyPhotos    bool
	OnlyPortfolio bool
	DateStart     model.Date
	DateEnd       model.Date
	PageQuery
}

func (q ActivityQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "child_id", q.ChildID)
	setInt(v, "classroom_id", q.ClassroomID)
	setBool(v, "only_photos", q.OnlyPhotos)
	setBool(v, "only_portfolio", q.OnlyPortfolio)
	setDate(v, "date_start", q.DateStart)
	setDate(v, "date_end", q.DateEnd)
	q.PageQuery.encode(v)
	return v
}

// ChildQuery filters the roster list.
type ChildQuery struct {
	ClassroomID int64
	SessionID   int64
	PageQuery
}

func (q ChildQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "classroom_id", q.ClassroomID)
	setInt(v, "session_id", q.SessionID)
	q.PageQuery.encode(v)
	return v
}

// ClassroomQuery filters the classroom list.
type ClassroomQuery struct {
	SessionID int64
	PageQuery
}

func (q ClassroomQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "session_id", q.SessionID)
	q.PageQuery.encode(v)
	return v
}

// ConferenceReportQuery filters conference reports.
type ConferenceReportQuery struct {
	ChildID int64
	PageQuery
}

func (q ConferenceReportQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "child_id", q.ChildID)
	q.PageQuery.encode(v)
	return v
}

// EventQuery filters logged classroom events.
type EventQuery struct {
	ChildID   int64
	DateStart model.Date
	DateEnd   model.Date
	PageQuery
}

func (q EventQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "child_id", q.ChildID)
	setDate(v, "date_start", q.DateStart)
	setDate(v, "date_end", q.DateEnd)
	q.PageQuery.encode(v)
	return v
}

// FormQuery filters submitted forms.
type FormQuery struct {
	FormTemplateID int64
	ChildID        int64
	PageQuery
}

func (q FormQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "form_template_id", q.FormTemplateID)
	setInt(v, "child_id", q.ChildID)
	q.PageQuery.encode(v)
	return v
}

// LevelQuery filters proficiency levels.
type LevelQuery struct {
	ChildID  int64
	LessonID int64
	PageQuery
}

func (q LevelQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "child_id", q.ChildID)
	setInt(v, "lesson_id", q.LessonID)
	q.PageQuery.encode(v)
	return v
}

// LevelsByDateQuery fetches the levels of a classroom as of a date, via
// the by_date route.
type LevelsByDateQuery struct {
	ClassroomID int64
	Date        model.Date
	PageQuery
}

func (q LevelsByDateQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "classroom_id", q.ClassroomID)
	setDate(v, "date", q.Date)
	q.PageQuery.encode(v)
	return v
}

// UserQuery filters user accounts.
type UserQuery struct {
	ClassroomID int64
	PageQuery
}

func (q UserQuery) encode() url.Values {
	v := url.Values{}
	setInt(v, "classroom_id", q.ClassroomID)
	q.PageQuery.encode(v)
	return v
}

func setInt(v url.Values, key string, n int64) {
	if n != 0 {
		v.Set(key, strconv.FormatInt(n, 10))
	}
}

func setBool(v url.Values, key string, b bool) {
	if b {
		v.Set(key, "true")
	}
}

func setDate(v url.Values, key string, d model.Date) {
	if !d.IsZero() {
		v.Set(key, d.String())
	}
}
