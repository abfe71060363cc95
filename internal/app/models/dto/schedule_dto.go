package dto

// MoveCourseRequest relocates one placement. Slot coordinates are zero-based:
// year 0 is the first academic year and semester indices follow the Fall,
// Spring, Summer 1, Summer 2 cycle. Discard drops the placement instead of
// moving it, for drags that end outside every semester target; the
// destination fields may be omitted in that case.
type MoveCourseRequest struct {
	SourceYear     *int `json:"sourceYear" binding:"required" example:"0"`
	SourceSemester *int `json:"sourceSemester" binding:"required" example:"0"`
	SourceIndex    *int `json:"sourceIndex" binding:"required" example:"0"`
	DestYear       *int `json:"destYear" example:"1"`
	DestSemester   *int `json:"destSemester" example:"2"`
	DestIndex      *int `json:"destIndex" example:"0"`
	Discard        bool `json:"discard"`
}

// RemoveCourseRequest drops the placement at one zero-based slot.
type RemoveCourseRequest struct {
	Year     *int `json:"year" binding:"required" example:"0"`
	Semester *int `json:"semester" binding:"required" example:"1"`
	Index    *int `json:"index" binding:"required" example:"0"`
}

// AddCoursesRequest places the given catalog courses into the earliest open
// slots.
type AddCoursesRequest struct {
	Courses []CourseInput `json:"courses" binding:"required,min=1,dive"`
}

// CourseInput is a catalog course as submitted by a client.
type CourseInput struct {
	Code          string   `json:"code" binding:"required" example:"CS 101"`
	Title         string   `json:"title" binding:"required" example:"Intro to Programming"`
	Credits       int      `json:"credits" example:"4"`
	Description   string   `json:"description,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Corequisites  []string `json:"corequisites,omitempty"`
	Attributes    []string `json:"attributes,omitempty"`
}

// AddCoursesResponse reports the updated schedule and how many courses did
// not fit once every slot was exhausted.
type AddCoursesResponse struct {
	Schedule      interface{} `json:"schedule"`
	UnplacedCount int         `json:"unplacedCount" example:"0"`
}

// PlacementCheckResponse reports whether a course code is already placed.
type PlacementCheckResponse struct {
	Code   string `json:"code" example:"CS 101"`
	Placed bool   `json:"placed" example:"true"`
}

// GenerateScheduleRequest starts a schedule generation run. JsonData is the
// course catalog as raw JSON; UserPreference is the student's free-text
// interest.
type GenerateScheduleRequest struct {
	JsonData       string `json:"jsonData"`
	UserPreference string `json:"userPreference" binding:"required" example:"Computer Science"`
}

// GenerateScheduleResponse carries the installed schedule together with the
// model's final presentation text.
type GenerateScheduleResponse struct {
	Schedule  interface{} `json:"schedule"`
	FinalText string      `json:"finalText"`
}
