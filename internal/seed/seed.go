// Package seed provides the demo dataset the service starts with. The
// store has no other data source; the fixtures below mirror the original
// client's seed list.
package seed

import (
	"fmt"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the shared password of every seeded account.
const DemoPassword = "password123"

// Load populates the store with the demo dataset.
func Load(db *repository.DB) error {
	// Every demo account shares one password, so one hash suffices.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	db.Load(
		Users(hash),
		Courses(),
		Announcements(),
		Messages(),
		Submissions(),
		ScheduleEvents(),
		Transactions(),
		Leaderboard(),
	)
	return nil
}

func Users(passwordHash []byte) []model.User {
	demo := func(id int, name, email string, role model.Role) model.User {
		return model.User{
			ID:           id,
			Name:         name,
			Email:        email,
			Role:         role,
			Avatar:       model.AvatarURL(id),
			Theme:        "light",
			PasswordHash: passwordHash,
		}
	}
	return []model.User{
		demo(1, "JOY", "joy@edupro.com", model.RoleLearner),
		demo(2, "Mrs. Lopez", "lopez@edupro.com", model.RoleInstructor),
		demo(3, "Sam Chen", "sam@edupro.com", model.RoleAdmin),
		demo(4, "CHEN", "chen@edupro.com", model.RoleLearner),
		demo(5, "LEA", "lea@edupro.com", model.RoleLearner),
		demo(6, "Mr. Buatis", "buatis@edupro.com", model.RoleInstructor),
		demo(7, "JOANNE", "joanne@edupro.com", model.RoleLearner),
		demo(8, "JAWAD", "jawad@edupro.com", model.RoleLearner),
	}
}

func Courses() []model.Course {
	return []model.Course{
		{
			ID: 1, Title: "CPA Review: Financial Accounting", Subject: "Accounting",
			Instructor: "Mrs. Lopez", InstructorID: 2, Progress: 75,
			Modules: []model.Module{
				{ID: 1, Title: "The Conceptual Framework", Type: model.ModuleVideo, Completed: true, Duration: 45},
				{ID: 2, Title: "Income Statement & Related Info", Type: model.ModulePDF, Completed: true, Duration: 30},
				{ID: 3, Title: "Balance Sheet & Statement of Cash Flows", Type: model.ModuleVideo, Completed: false, Duration: 60},
				{
					ID: 4, Title: "Diagnostic Exam 1", Type: model.ModuleQuiz, Completed: false, Duration: 20,
					Questions: []model.Question{
						{ID: 1, Text: "What is the primary purpose of the balance sheet?", Options: []string{"To report revenues and expenses", "To report assets, liabilities, and equity", "To report cash inflows and outflows", "To report changes in equity"}, CorrectAnswerIndex: 1},
						{ID: 2, Text: "Which of these is NOT an asset?", Options: []string{"Accounts Receivable", "Inventory", "Prepaid Insurance", "Accounts Payable"}, CorrectAnswerIndex: 3},
					},
				},
			},
		},
		{
			ID: 2, Title: "CPA Review: Taxation", Subject: "Taxation",
			Instructor: "Mr. Buatis", InstructorID: 6, Progress: 40,
			Modules: []model.Module{
				{ID: 1, Title: "Individual Income Tax Formula", Type: model.ModuleVideo, Completed: true, Duration: 50},
				{ID: 2, Title: "Gross Income and Exclusions", Type: model.ModuleVideo, Completed: false, Duration: 55},
				{ID: 3, Title: "Deductions and Losses", Type: model.ModulePDF, Completed: false, Duration: 25},
			},
		},
		{
			ID: 3, Title: "CPA Review: Management Services", Subject: "Accounting",
			Instructor: "Mrs. Lopez", InstructorID: 2, Progress: 100,
			Modules: []model.Module{
				{ID: 1, Title: "Cost Concepts and Classifications", Type: model.ModuleVideo, Completed: true, Duration: 60},
				{ID: 2, Title: "Cost-Volume-Profit Relationships", Type: model.ModuleVideo, Completed: true, Duration: 45},
				{ID: 3, Title: "Budgeting for Planning and Control", Type: model.ModulePDF, Completed: true, Duration: 90},
				{
					ID: 4, Title: "Final Pre-board Exam", Type: model.ModuleQuiz, Completed: true, Duration: 120,
					Questions: []model.Question{
						{ID: 1, Text: "Which is a characteristic of managerial accounting?", Options: []string{"Focuses on historical data", "Is governed by GAAP", "Provides information for internal users", "Is primarily for investors"}, CorrectAnswerIndex: 2},
						{ID: 2, Text: "Fixed costs per unit...", Options: []string{"Decrease as activity increases", "Increase as activity increases", "Remain constant regardless of activity", "Are not relevant to decision making"}, CorrectAnswerIndex: 0},
						{ID: 3, Text: "What is contribution margin?", Options: []string{"Sales - Cost of Goods Sold", "Sales - Variable Costs", "Sales - Fixed Costs", "Sales - Total Costs"}, CorrectAnswerIndex: 1},
					},
				},
			},
		},
	}
}

func Announcements() []model.Announcement {
	return []model.Announcement{
		{ID: 1, Title: "System Maintenance", Content: "The system will be down for maintenance on Sunday at 2 AM.", AuthorID: 3, Date: "2024-07-20"},
		{ID: 2, Title: "New Review Batch Open", Content: "Enrollment for the October 2025 batch is now open!", AuthorID: 3, Date: "2024-07-18"},
		{ID: 3, Title: "Diagnostic Exam Reminder", Content: "Just a reminder that the first diagnostic exam for Financial Accounting is this Friday. Good luck studying!", AuthorID: 2, Date: "2024-07-22", CourseID: 1},
		{ID: 4, Title: "Welcome Reviewees!", Content: "Welcome everyone to the Taxation review. Please review the syllabus in the first module.", AuthorID: 6, Date: "2024-07-21", CourseID: 2},
	}
}

func Messages() []model.Message {
	return []model.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Text: "Hello Mrs. Lopez, I have a question about the balance sheet.", Timestamp: mustParse("2024-07-22T10:00:00Z")},
		{ID: 2, SenderID: 2, ReceiverID: 1, Text: "Hi JOY, of course. What would you like to know?", Timestamp: mustParse("2024-07-22T10:05:00Z")},
		{ID: 3, SenderID: 1, ReceiverID: 2, Text: "I'm struggling with the difference between current and non-current assets. Could you explain?", Timestamp: mustParse("2024-07-22T10:06:00Z")},
		{ID: 4, SenderID: 2, ReceiverID: 1, Text: "Certainly. Current assets are expected to be converted to cash within one year, like inventory. Non-current assets are long-term, like buildings or equipment.", Timestamp: mustParse("2024-07-22T10:15:00Z")},
		{ID: 5, SenderID: 4, ReceiverID: 6, Text: "Hi Mr. Buatis, when is the next assignment due?", Timestamp: mustParse("2024-07-21T14:30:00Z")},
		{ID: 6, SenderID: 6, ReceiverID: 4, Text: "Hi CHEN, it is due this Friday at 11:59 PM. You can find the details in the \"Assignments\" module.", Timestamp: mustParse("2024-07-21T15:00:00Z")},
	}
}

func Submissions() []model.QuizSubmission {
	return []model.QuizSubmission{
		{ID: 1, CourseID: 1, ModuleID: 4, StudentID: 1, Score: 1, TotalQuestions: 2, Timestamp: mustParse("2024-07-23T14:00:00Z")},
		{ID: 2, CourseID: 1, ModuleID: 4, StudentID: 4, Score: 2, TotalQuestions: 2, Timestamp: mustParse("2024-07-23T15:30:00Z")},
		{ID: 3, CourseID: 1, ModuleID: 4, StudentID: 5, Score: 0, TotalQuestions: 2, Timestamp: mustParse("2024-07-23T16:00:00Z")},
	}
}

func ScheduleEvents() []model.ScheduleEvent {
	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(time.Hour)
	nextWeek := time.Now().AddDate(0, 0, 7).Truncate(time.Hour)
	return []model.ScheduleEvent{
		{
			ID: 1, Title: "Diagnostic Exam", Type: model.EventExam, CourseID: 1, InstructorID: 2,
			StartTime: tomorrow, EndTime: tomorrow.Add(2 * time.Hour),
			Description: "Covers modules 1-3. Please be on time.",
		},
		{
			ID: 2, Title: "Taxation Weekly Lecture", Type: model.EventClass, CourseID: 2, InstructorID: 6,
			StartTime: nextWeek, EndTime: nextWeek.Add(90 * time.Minute),
			Description: "Topic: Advanced Deductions. Reading materials are available in Module 4.",
		},
	}
}

func Transactions() []model.Transaction {
	return []model.Transaction{
		{ID: 1, Description: "CPA Review Package (May 2025 Batch)", Amount: 15500.75, Date: "2024-08-01", Status: model.StatusUnpaid},
		{ID: 2, Description: "Review Materials & Handouts Fee", Amount: 350.00, Date: "2024-08-01", Status: model.StatusUnpaid},
		{ID: 3, Description: "Reservation Fee", Amount: 500.00, Date: "2024-06-15", Status: model.StatusPaid},
		{ID: 4, Description: "Bookstore Purchase: Reviewers", Amount: 1250.50, Date: "2024-06-20", Status: model.StatusPaid},
	}
}

func Leaderboard() []model.LeaderboardEntry {
	return []model.LeaderboardEntry{
		{ID: 1, Name: "JOY", Avatar: "https://picsum.photos/seed/1/100/100", Points: 2450},
		{ID: 4, Name: "CHEN", Avatar: "https://picsum.photos/seed/4/100/100", Points: 2100},
		{ID: 5, Name: "LEA", Avatar: "https://picsum.photos/seed/5/100/100", Points: 1850},
		{ID: 7, Name: "JOANNE", Avatar: "https://picsum.photos/seed/7/100/100", Points: 1500},
		{ID: 8, Name: "JAWAD", Avatar: "https://picsum.photos/seed/8/100/100", Points: 1200},
	}
}

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
