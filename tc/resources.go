package tc

import (
	"context"
	"fmt"
	"net/url"

	"github.com/classfetch/classfetch/model"
)

// Accessors for the read surface of the v1 API. Each builds its endpoint
// path and query, performs the request and hands the raw payload to the
// mapping layer.

// ListActivities returns the activity feed for a child or classroom. The
// upstream endpoint refuses unscoped queries, so one of ChildID or
// ClassroomID must be set.
func (c *Client) ListActivities(ctx context.Context, q ActivityQuery) ([]model.Activity, error) {
	if q.ChildID == 0 && q.ClassroomID == 0 {
		return nil, fmt.Errorf("%w: activity queries need a child or classroom id", ErrInvalidConfig)
	}
	return fetchList[model.Activity](ctx, c, "/api/v1/activity.json", q.encode())
}

// ListChildren returns the school roster, optionally scoped to a
// classroom or session. List payloads carry a reduced field subset; use
// GetChild for the full record.
func (c *Client) ListChildren(ctx context.Context, q ChildQuery) ([]model.Child, error) {
	return fetchList[model.Child](ctx, c, "/api/v1/children.json", q.encode())
}

// GetChild returns one child's full record.
func (c *Client) GetChild(ctx context.Context, id int64) (*model.Child, error) {
	return fetchOne[model.Child](ctx, c, fmt.Sprintf("/api/v1/children/%d.json", id), nil)
}

// GetChildAsOf returns a child's record as of a given date.
func (c *Client) GetChildAsOf(ctx context.Context, id int64, asOf model.Date) (*model.Child, error) {
	params := url.Values{}
	setDate(params, "as_of", asOf)
	return fetchOne[model.Child](ctx, c, fmt.Sprintf("/api/v1/children/%d.json", id), params)
}

// ListClassrooms returns the school's classrooms.
func (c *Client) ListClassrooms(ctx context.Context, q ClassroomQuery) ([]model.Classroom, error) {
	return fetchList[model.Classroom](ctx, c, "/api/v1/classrooms.json", q.encode())
}

// ListConferenceReports returns filed conference reports.
func (c *Client) ListConferenceReports(ctx context.Context, q ConferenceReportQuery) ([]model.ConferenceReport, error) {
	return fetchList[model.ConferenceReport](ctx, c, "/api/v1/conference_reports.json", q.encode())
}

// ListEvents returns logged classroom events.
func (c *Client) ListEvents(ctx context.Context, q EventQuery) ([]model.Event, error) {
	return fetchList[model.Event](ctx, c, "/api/v1/events.json", q.encode())
}

// ListForms returns submitted forms.
func (c *Client) ListForms(ctx context.Context, q FormQuery) ([]model.Form, error) {
	return fetchList[model.Form](ctx, c, "/api/v1/forms.json", q.encode())
}

// GetForm returns one submitted form with its widget answers.
func (c *Client) GetForm(ctx context.Context, id int64) (*model.Form, error) {
	return fetchOne[model.Form](ctx, c, fmt.Sprintf("/api/v1/forms/%d.json", id), nil)
}

// ListFormTemplates returns the school's form templates.
func (c *Client) ListFormTemplates(ctx context.Context, q PageQuery) ([]model.FormTemplate, error) {
	v := url.Values{}
	q.encode(v)
	return fetchList[model.FormTemplate](ctx, c, "/api/v1/form_templates.json", v)
}

// GetLessonSet returns a curriculum lesson set.
func (c *Client) GetLessonSet(ctx context.Context, id int64) (*model.LessonSet, error) {
	return fetchOne[model.LessonSet](ctx, c, fmt.Sprintf("/api/v1/lesson_sets/%d.json", id), nil)
}

// ListLevels returns lesson proficiency levels.
func (c *Client) ListLevels(ctx context.Context, q LevelQuery) ([]model.Level, error) {
	return fetchList[model.Level](ctx, c, "/api/v1/levels.json", q.encode())
}

// ListLevelsByDate returns a classroom's proficiency levels as of a date.
func (c *Client) ListLevelsByDate(ctx context.Context, q LevelsByDateQuery) ([]model.Level, error) {
	return fetchList[model.Level](ctx, c, "/api/v1/levels/by_date.json", q.encode())
}

// ListOnlineApplications returns submitted admission applications.
func (c *Client) ListOnlineApplications(ctx context.Context, q PageQuery) ([]model.OnlineApplication, error) {
	v := url.Values{}
	q.encode(v)
	return fetchList[model.OnlineApplication](ctx, c, "/api/v1/online_applications.json", v)
}

// GetOnlineApplication returns one admission application with its widget
// answers.
func (c *Client) GetOnlineApplication(ctx context.Context, id int64) (*model.OnlineApplication, error) {
	return fetchOne[model.OnlineApplication](ctx, c, fmt.Sprintf("/api/v1/online_applications/%d.json", id), nil)
}

// ListSchools returns the schools visible to the account (one for a
// single school, several for a network admin).
func (c *Client) ListSchools(ctx context.Context, q PageQuery) ([]model.School, error) {
	v := url.Values{}
	q.encode(v)
	return fetchList[model.School](ctx, c, "/api/v1/schools.json", v)
}

// ListSessions returns the school's instruction sessions.
func (c *Client) ListSessions(ctx context.Context, q PageQuery) ([]model.Session, error) {
	v := url.Values{}
	q.encode(v)
	return fetchList[model.Session](ctx, c, "/api/v1/sessions.json", v)
}

// ListUsers returns staff and parent accounts.
func (c *Client) ListUsers(ctx context.Context, q UserQuery) ([]model.User, error) {
	return fetchList[model.User](ctx, c, "/api/v1/users.json", q.encode())
}

// GetUser returns one user's full record.
func (c *Client) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return fetchOne[model.User](ctx, c, fmt.Sprintf("/api/v1/users/%d.json", id), nil)
}
