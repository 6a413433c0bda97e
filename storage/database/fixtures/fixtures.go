// Package fixtures holds the starter datasets of the portal.
package fixtures

import (
	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/conversation"
	"github.com/trezcool/portal/core/paper"
)

// Alumni returns the starter alumni directory, in display order.
func Alumni() []alumni.Alumnus {
	return []alumni.Alumnus{
		{ID: "1", Name: "Rahul Sharma", Batch: 2020, Department: "CSE", Company: "Google", Role: "Software Engineer", Location: "Bangalore", IsOnline: true},
		{ID: "2", Name: "Priya Patel", Batch: 2019, Department: "ECE", Company: "Microsoft", Role: "Product Manager", Location: "Hyderabad", IsOnline: true},
		{ID: "3", Name: "Amit Kumar", Batch: 2021, Department: "CSE", Company: "Amazon", Role: "SDE II", Location: "Pune"},
		{ID: "4", Name: "Sneha Gupta", Batch: 2018, Department: "ME", Company: "Tata Motors", Role: "Design Engineer", Location: "Mumbai", IsOnline: true},
		{ID: "5", Name: "Vikram Singh", Batch: 2020, Department: "EE", Company: "Tesla", Role: "Hardware Engineer", Location: "California"},
		{ID: "6", Name: "Ananya Reddy", Batch: 2022, Department: "CSE", Company: "Flipkart", Role: "Frontend Developer", Location: "Bangalore", IsOnline: true},
		{ID: "7", Name: "Karthik Nair", Batch: 2017, Department: "CE", Company: "L&T", Role: "Project Manager", Location: "Chennai"},
		{ID: "8", Name: "Neha Verma", Batch: 2021, Department: "CSE", Company: "Infosys", Role: "Data Analyst", Location: "Delhi", IsOnline: true},
	}
}

// Papers returns the starter question paper archive, in display order.
func Papers() []paper.Paper {
	return []paper.Paper{
		{ID: "1", Subject: "Data Structures", Year: 2024, Semester: "3rd", ExamType: paper.ExamEndSem, Department: "CSE"},
		{ID: "2", Subject: "Digital Electronics", Year: 2024, Semester: "3rd", ExamType: paper.ExamMidSem, Department: "ECE"},
		{ID: "3", Subject: "Engineering Mathematics III", Year: 2024, Semester: "3rd", ExamType: paper.ExamEndSem, Department: paper.DepartmentCommon},
		{ID: "4", Subject: "Database Management System", Year: 2023, Semester: "4th", ExamType: paper.ExamEndSem, Department: "CSE"},
		{ID: "5", Subject: "Computer Networks", Year: 2023, Semester: "5th", ExamType: paper.ExamEndSem, Department: "CSE"},
		{ID: "6", Subject: "Operating Systems", Year: 2023, Semester: "4th", ExamType: paper.ExamMidSem, Department: "CSE"},
		{ID: "7", Subject: "Signals and Systems", Year: 2024, Semester: "4th", ExamType: paper.ExamEndSem, Department: "ECE"},
		{ID: "8", Subject: "Control Systems", Year: 2022, Semester: "5th", ExamType: paper.ExamEndSem, Department: "EE"},
		{ID: "9", Subject: "Thermodynamics", Year: 2023, Semester: "3rd", ExamType: paper.ExamEndSem, Department: "ME"},
		{ID: "10", Subject: "Fluid Mechanics", Year: 2024, Semester: "4th", ExamType: paper.ExamMidSem, Department: "CE"},
		{ID: "11", Subject: "Machine Learning", Year: 2024, Semester: "6th", ExamType: paper.ExamEndSem, Department: "CSE"},
		{ID: "12", Subject: "Artificial Intelligence", Year: 2023, Semester: "6th", ExamType: paper.ExamEndSem, Department: "CSE"},
	}
}

// Transcript is the exchange every new conversation opens with.
func Transcript() []conversation.Line {
	return []conversation.Line{
		{Origin: conversation.OriginCounterpart, Text: "Hi! How can I help you with your career?"},
		{Origin: conversation.OriginSelf, Text: "Hello! I wanted to know about opportunities at your company."},
		{Origin: conversation.OriginCounterpart, Text: "Sure! We have openings for freshers. What's your specialization?"},
	}
}
