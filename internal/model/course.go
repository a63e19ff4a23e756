package model

// ModuleType is the content kind of a course module
type ModuleType string

const (
	ModuleVideo ModuleType = "Video"
	ModulePDF   ModuleType = "PDF"
	ModulePPT   ModuleType = "PPT"
	ModuleQuiz  ModuleType = "Quiz"
)

// Question belongs to a Quiz module. CorrectAnswerIndex is 0-3.
type Question struct {
	ID                 int      `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// Module is a unit of course content. Its ID is unique only within the
// owning course, so module identity is always the (courseID, moduleID)
// compound key.
type Module struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Type      ModuleType `json:"type"`
	Completed bool       `json:"completed"`
	// Duration in minutes
	Duration  int        `json:"duration"`
	Questions []Question `json:"questions,omitempty"`
}

// Course groups an ordered sequence of modules. InstructorID is the
// owning instructor's user id; Instructor is the display name shown on
// dashboards.
type Course struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Subject      string   `json:"subject"`
	Instructor   string   `json:"instructor"`
	InstructorID int      `json:"instructorId"`
	Progress     int      `json:"progress"`
	Modules      []Module `json:"modules"`
}

// ModuleByID returns the module with the given id within the course.
func (c *Course) ModuleByID(moduleID int) (*Module, bool) {
	for i := range c.Modules {
		if c.Modules[i].ID == moduleID {
			return &c.Modules[i], true
		}
	}
	return nil, false
}
