package model

// Announcement is a notice shown on dashboards. CourseID of zero means
// the announcement is system-wide. Date is an ISO date without a time
// component.
type Announcement struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int    `json:"authorId"`
	Date     string `json:"date"`
	CourseID int    `json:"courseId,omitempty"`
}
