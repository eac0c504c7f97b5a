package seed

import appModels "github.com/hosuracademy/academy-api/internal/app/models"

// DefaultCourses is the course catalogue seeded into an empty store.
func DefaultCourses() []*appModels.Course {
	return []*appModels.Course{
		{
			ID:          "1",
			Title:       "JEE Main & Advanced",
			Description: "Comprehensive preparation for engineering entrance exams",
			Grade:       "11th-12th",
			Subject:     "Physics, Chemistry, Mathematics",
			Duration:    "2 Years",
			Price:       "₹50,000",
			Image:       "https://images.unsplash.com/photo-1509228627152-72ae9ae6848d?w=400&h=300&fit=crop",
			Features:    []string{"Live Classes", "Mock Tests", "Doubt Clearing", "Study Material"},
		},
		{
			ID:          "2",
			Title:       "NEET Preparation",
			Description: "Complete medical entrance exam preparation",
			Grade:       "11th-12th",
			Subject:     "Physics, Chemistry, Biology",
			Duration:    "2 Years",
			Price:       "₹45,000",
			Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			Features:    []string{"Expert Faculty", "Practice Tests", "Performance Analysis", "Study Notes"},
		},
		{
			ID:          "3",
			Title:       "Foundation Mathematics",
			Description: "Strong mathematical foundation for competitive exams",
			Grade:       "6th-10th",
			Subject:     "Mathematics",
			Duration:    "1 Year",
			Price:       "₹25,000",
			Image:       "https://images.unsplash.com/photo-1635372722656-389f87a941b7?w=400&h=300&fit=crop",
			Features:    []string{"Conceptual Learning", "Problem Solving", "Regular Assessment", "Doubt Support"},
		},
		{
			ID:          "4",
			Title:       "Science Olympiad",
			Description: "Prepare for national and international science competitions",
			Grade:       "6th-12th",
			Subject:     "Physics, Chemistry, Biology",
			Duration:    "6 Months",
			Price:       "₹20,000",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Features:    []string{"Competition Focus", "Advanced Topics", "Practice Sets", "Mentorship"},
		},
		{
			ID:          "5",
			Title:       "English Literature",
			Description: "Comprehensive English language and literature course",
			Grade:       "9th-12th",
			Subject:     "English",
			Duration:    "1 Year",
			Price:       "₹18,000",
			Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=300&fit=crop",
			Features:    []string{"Language Skills", "Literature Analysis", "Writing Practice", "Speaking Confidence"},
		},
		{
			ID:          "6",
			Title:       "Board Exam Preparation",
			Description: "Complete preparation for CBSE/ICSE board exams",
			Grade:       "10th-12th",
			Subject:     "All Subjects",
			Duration:    "1 Year",
			Price:       "₹30,000",
			Image:       "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=400&h=300&fit=crop",
			Features:    []string{"Subject Experts", "Previous Papers", "Mock Exams", "Result Guarantee"},
		},
	}
}

// DefaultGallery is the gallery seeded into an empty store.
func DefaultGallery() []*appModels.GalleryItem {
	return []*appModels.GalleryItem{
		{ID: "1", Title: "Interactive Classroom Session", Category: "classroom",
			Image:       "https://images.unsplash.com/photo-1577896851231-70ef18881754?w=400&h=300&fit=crop",
			Description: "Students actively participating in a physics demonstration"},
		{ID: "2", Title: "Science Laboratory", Category: "laboratory",
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400&h=300&fit=crop",
			Description: "Well-equipped chemistry lab for practical learning"},
		{ID: "3", Title: "Annual Achievement Ceremony", Category: "events",
			Image:       "https://images.unsplash.com/photo-1511376777868-611b54f68947?w=400&h=300&fit=crop",
			Description: "Celebrating our students' outstanding achievements"},
		{ID: "4", Title: "Mathematics Workshop", Category: "workshop",
			Image:       "https://images.unsplash.com/photo-1635372722656-389f87a941b7?w=400&h=300&fit=crop",
			Description: "Interactive problem-solving session"},
		{ID: "5", Title: "Study Hall", Category: "facility",
			Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=300&fit=crop",
			Description: "Quiet study environment for focused learning"},
		{ID: "6", Title: "Computer Lab", Category: "facility",
			Image:       "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8?w=400&h=300&fit=crop",
			Description: "Modern computer lab with latest technology"},
		{ID: "7", Title: "Career Counseling Session", Category: "counseling",
			Image:       "https://images.unsplash.com/photo-1556761175-4b46a572b786?w=400&h=300&fit=crop",
			Description: "Guiding students towards their career goals"},
		{ID: "8", Title: "Cultural Event", Category: "events",
			Image:       "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=400&h=300&fit=crop",
			Description: "Annual cultural celebration with students and faculty"},
	}
}

// DefaultToppers is the toppers list seeded into an empty store.
func DefaultToppers() []*appModels.Topper {
	return []*appModels.Topper{
		{
			ID: "1", Name: "Arjun Mehta", Exam: "JEE Main 2024", Rank: "AIR 42", Score: "99.8 percentile",
			Image:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
			Testimonial: "The structured approach and excellent faculty helped me achieve my dream rank.",
			Course:      "JEE Main & Advanced",
		},
		{
			ID: "2", Name: "Sneha Gupta", Exam: "NEET 2024", Rank: "AIR 158", Score: "680/720",
			Image:       "https://images.unsplash.com/photo-1494790108755-2616b332fafe?w=200&h=200&fit=crop&crop=face",
			Testimonial: "The comprehensive study material and mock tests were instrumental in my success.",
			Course:      "NEET Preparation",
		},
		{
			ID: "3", Name: "Vikram Singh", Exam: "CBSE Board 2024", Rank: "State Topper", Score: "98.2%",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
			Testimonial: "The board exam preparation strategy is unmatched. Highly recommended!",
			Course:      "Board Exam Preparation",
		},
		{
			ID: "4", Name: "Kavya Reddy", Exam: "JEE Advanced 2024", Rank: "AIR 289", Score: "95.4 percentile",
			Image:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&crop=face",
			Testimonial: "The faculty's dedication and personalized attention made all the difference.",
			Course:      "JEE Main & Advanced",
		},
	}
}
