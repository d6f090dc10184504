package model

import "time"

// The record types below mirror the Transparent Classroom read API. Every
// field is a pointer (or slice) because the API returns different field
// subsets for the same entity depending on the call shape: list endpoints
// return a reduced projection of what the corresponding detail endpoint
// returns, and some fields are only populated for certain entity states
// (exit notes exist only for withdrawn children). A nil field means the
// payload did not carry it; mapped records never fabricate values.
//
// The `tc` tag names the raw JSON key and, after the comma, the field's
// presence policy:
//
//	always  - present in both list and detail payloads; absence is an error
//	detail  - list payloads may legitimately omit it
//	optional - may be absent or null in any call shape (the default)
//
// Slice-typed fields are the one exception to absence handling: when the
// key is missing the mapper sets an empty slice, so callers can range over
// rosters without nil checks.

// Activity is an observation, presentation or photo posted to a child's
// feed.
type Activity struct {
	ID        *int64     `tc:"id,always"`
	AuthorID  *int64     `tc:"author_id"`
	Text      *string    `tc:"text"`
	HTML      *string    `tc:"html"`
	Date      *Date      `tc:"date"`
	CreatedAt *time.Time `tc:"created_at"`
}

// Child is a student record.
type Child struct {
	ID              *int64   `tc:"id,always"`
	FirstName       *string  `tc:"first_name,always"`
	LastName        *string  `tc:"last_name,always"`
	BirthDate       *Date    `tc:"birth_date"`
	Gender          *string  `tc:"gender"`
	ProfilePhoto    *string  `tc:"profile_photo"`
	Program         *string  `tc:"program"`
	Ethnicity       []string `tc:"ethnicity,detail"`
	HouseholdIncome *string  `tc:"household_income,detail"`
	DominantLang    *string  `tc:"dominant_language,detail"`
	Grade           *string  `tc:"grade,detail"`
	StudentID       *string  `tc:"student_id,detail"`
	HoursString     *string  `tc:"hours_string,detail"`
	Allergies       *string  `tc:"allergies,detail"`
	Notes           *string  `tc:"notes,detail"`
	FirstDay        *Date    `tc:"first_day"`
	LastDay         *Date    `tc:"last_day"`
	ExitNotes       *string  `tc:"exit_notes,detail"`
	ExitReason      *string  `tc:"exit_reason,detail"`
	ExitSurveyID    *int64   `tc:"exit_survey_id,detail"`
	ParentIDs       []int64  `tc:"parent_ids,detail"`
	ClassroomIDs    []int64  `tc:"classroom_ids,detail"`
}

// Classroom is a physical or logical classroom at a school.
type Classroom struct {
	ID          *int64  `tc:"id,always"`
	Name        *string `tc:"name,always"`
	LessonSetID *int64  `tc:"lesson_set_id"`
	Level       *string `tc:"level"`
	Active      *bool   `tc:"active"`
}

// ConferenceReport is a filed parent-conference report. Its widgets arrive
// under the raw key "data".
type ConferenceReport struct {
	ID      *int64   `tc:"id,always"`
	Name    *string  `tc:"name"`
	ChildID *int64   `tc:"child_id"`
	Widgets []Widget `tc:"data"`
}

// Event is a logged classroom event (toileting, meals, naps and so on).
type Event struct {
	ID            *int64     `tc:"id,always"`
	ClassroomID   *int64     `tc:"classroom_id"`
	ChildID       *int64     `tc:"child_id"`
	EventType     *string    `tc:"event_type"`
	Value         *string    `tc:"value"`
	Value2        *string    `tc:"value2"`
	CreatedByID   *int64     `tc:"created_by_id"`
	CreatedByName *string    `tc:"created_by_name"`
	Time          *time.Time `tc:"time"`
}

// Form is a submitted form response.
type Form struct {
	ID               *int64     `tc:"id,always"`
	FormTemplateID   *int64     `tc:"form_template_id"`
	State            *string    `tc:"state"`
	ChildID          *int64     `tc:"child_id"`
	StudentFirstName *string    `tc:"student_first_name,detail"`
	StudentLastName  *string    `tc:"student_last_name,detail"`
	ParentName       *string    `tc:"parent_name,detail"`
	Classroom        *string    `tc:"classroom,detail"`
	Release          *string    `tc:"release,detail"`
	Signature        *string    `tc:"signature,detail"`
	CreatedAt        *time.Time `tc:"created_at"`
	Fields           []Widget   `tc:"fields"`
}

// FormTemplate is a reusable form definition.
type FormTemplate struct {
	ID      *int64   `tc:"id,always"`
	Name    *string  `tc:"name,always"`
	Widgets []Widget `tc:"widgets"`
}

// LessonSet is a curriculum lesson set. The API nests the full area/group/
// lesson hierarchy under it; that hierarchy is outside the flat record
// surface and reaches callers through the drift diagnostics instead.
type LessonSet struct {
	ID   *int64  `tc:"id,always"`
	Name *string `tc:"name"`
}

// Level is a proficiency assessment of one child on one lesson.
type Level struct {
	ID          *int64 `tc:"id,always"`
	ChildID     *int64 `tc:"child_id,always"`
	LessonID    *int64 `tc:"lesson_id,always"`
	Proficiency *int64 `tc:"proficiency"`
	Date        *Date  `tc:"date"`
	Planned     *bool  `tc:"planned"`
}

// OnlineApplication is an admission application submitted online.
type OnlineApplication struct {
	ID             *int64   `tc:"id,always"`
	SchoolID       *int64   `tc:"school_id"`
	State          *string  `tc:"state,always"`
	Program        *string  `tc:"program,detail"`
	ChildFirstName *string  `tc:"child_first_name,detail"`
	ChildLastName  *string  `tc:"child_last_name,detail"`
	ChildBirthDate *Date    `tc:"child_birth_date,detail"`
	ChildGender    *string  `tc:"child_gender,detail"`
	MotherEmail    *string  `tc:"mother_email,detail"`
	SessionID      *int64   `tc:"session_id"`
	Fields         []Widget `tc:"fields"`
}

// School is a school or network entity.
type School struct {
	ID       *int64  `tc:"id,always"`
	Name     *string `tc:"name,always"`
	Phone    *string `tc:"phone"`
	Address  *string `tc:"address"`
	Type     *string `tc:"type"`
	TimeZone *string `tc:"timezone"`
}

// Session is an instruction session (school year, semester, summer term).
type Session struct {
	ID        *int64  `tc:"id,always"`
	Name      *string `tc:"name,always"`
	StartDate *Date   `tc:"start_date"`
	StopDate  *Date   `tc:"stop_date"`
	Children  *int64  `tc:"children"`
	Current   *bool   `tc:"current"`
	Inactive  *bool   `tc:"inactive"`
}

// User is a staff member or parent account.
type User struct {
	ID                 *int64   `tc:"id,always"`
	Type               *string  `tc:"type"`
	Inactive           *bool    `tc:"inactive"`
	Email              *string  `tc:"email"`
	FirstName          *string  `tc:"first_name,always"`
	LastName           *string  `tc:"last_name,always"`
	Roles              []string `tc:"roles"`
	AccessibleRoomIDs  []int64  `tc:"accessible_classroom_ids"`
	DefaultClassroomID *int64   `tc:"default_classroom_id,detail"`
	Address            *string  `tc:"address,detail"`
	HomeNumber         *string  `tc:"home_number,detail"`
	MobileNumber       *string  `tc:"mobile_number,detail"`
	WorkNumber         *string  `tc:"work_number,detail"`
}
