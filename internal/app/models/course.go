package models

// Course represents a single catalog entry. Catalog courses are loaded once
// at startup and are never mutated afterwards.
type Course struct {
	// Course code, unique within a department (e.g. "CS 101")
	Code string `json:"code"`

	// Human-readable course title
	Title string `json:"title"`

	// Credit count, always positive
	Credits int `json:"credits"`

	// Catalog description text
	Description string `json:"description,omitempty"`

	// Codes of courses that must be completed beforehand
	Prerequisites []string `json:"prerequisites,omitempty"`

	// Codes of courses that must be taken in the same semester
	Corequisites []string `json:"corequisites,omitempty"`

	// Attribute tags used for requirement mapping (e.g. "WRIT", "LAB")
	Attributes []string `json:"attributes,omitempty"`
}

// Department groups the catalog courses offered under one department code.
type Department struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Courses []Course `json:"courses"`
}

// Catalog is the full static course catalog.
type Catalog struct {
	Departments []Department `json:"departments"`
}

// FindCourse looks a course up by code across all departments.
func (c *Catalog) FindCourse(code string) (*Course, bool) {
	for di := range c.Departments {
		for ci := range c.Departments[di].Courses {
			if c.Departments[di].Courses[ci].Code == code {
				return &c.Departments[di].Courses[ci], true
			}
		}
	}
	return nil, false
}
