package service

import "strings"

// Curriculum templates keyed by career track. Topic hours are base
// estimates; the generator scales them by the user's proficiency before
// computing module and path totals.

type topicTemplate struct {
	Title     string
	BaseHours float64
}

type moduleTemplate struct {
	Title       string
	Description string
	Difficulty  string
	Topics      []topicTemplate
}

type pathTemplate struct {
	Title       string
	Description string
	Modules     []moduleTemplate
}

var fullstackTemplate = pathTemplate{
	Title:       "Full Stack Developer Path",
	Description: "From programming fundamentals to deploying complete web applications.",
	Modules: []moduleTemplate{
		{
			Title:       "Programming Fundamentals",
			Description: "Core programming concepts and problem-solving",
			Difficulty:  "beginner",
			Topics: []topicTemplate{
				{Title: "Introduction to Programming", BaseHours: 5},
				{Title: "Control Structures", BaseHours: 4},
				{Title: "Functions and Scope", BaseHours: 4},
				{Title: "Data Structures Basics", BaseHours: 6},
				{Title: "Version Control with Git", BaseHours: 3},
			},
		},
		{
			Title:       "Frontend Development",
			Description: "Building user interfaces with HTML, CSS, and JavaScript",
			Difficulty:  "beginner",
			Topics: []topicTemplate{
				{Title: "HTML5 Fundamentals", BaseHours: 4},
				{Title: "CSS3 Styling", BaseHours: 6},
				{Title: "JavaScript Essentials", BaseHours: 8},
				{Title: "DOM Manipulation", BaseHours: 5},
			},
		},
		{
			Title:       "Backend Development",
			Description: "Servers, APIs, and data persistence",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "HTTP and REST APIs", BaseHours: 6},
				{Title: "Relational Databases and SQL", BaseHours: 7},
				{Title: "Authentication and Sessions", BaseHours: 5},
				{Title: "Deployment Basics", BaseHours: 4},
			},
		},
	},
}

var frontendTemplate = pathTemplate{
	Title:       "Frontend Developer Path",
	Description: "Modern user interface engineering with a component-driven workflow.",
	Modules: []moduleTemplate{
		{
			Title:       "Web Foundations",
			Description: "Semantic markup, styling, and accessibility",
			Difficulty:  "beginner",
			Topics: []topicTemplate{
				{Title: "HTML5 Fundamentals", BaseHours: 4},
				{Title: "CSS3 Styling", BaseHours: 6},
				{Title: "Responsive Design", BaseHours: 5},
				{Title: "Accessibility Essentials", BaseHours: 3},
			},
		},
		{
			Title:       "JavaScript in Depth",
			Description: "The language of the browser, from basics to async patterns",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "JavaScript Essentials", BaseHours: 8},
				{Title: "Asynchronous JavaScript", BaseHours: 6},
				{Title: "Modules and Tooling", BaseHours: 4},
			},
		},
		{
			Title:       "Component Frameworks",
			Description: "Building and testing component-based applications",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "React Fundamentals", BaseHours: 8},
				{Title: "State Management", BaseHours: 6},
				{Title: "Testing UI Components", BaseHours: 5},
			},
		},
	},
}

var backendTemplate = pathTemplate{
	Title:       "Backend Developer Path",
	Description: "Designing and operating server-side systems and APIs.",
	Modules: []moduleTemplate{
		{
			Title:       "Programming Fundamentals",
			Description: "Core programming concepts and problem-solving",
			Difficulty:  "beginner",
			Topics: []topicTemplate{
				{Title: "Introduction to Programming", BaseHours: 5},
				{Title: "Data Structures Basics", BaseHours: 6},
				{Title: "Version Control with Git", BaseHours: 3},
			},
		},
		{
			Title:       "Backend Development with Python",
			Description: "Web frameworks, request handling, and persistence",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "HTTP and REST APIs", BaseHours: 6},
				{Title: "Relational Databases and SQL", BaseHours: 7},
				{Title: "ORM and Migrations", BaseHours: 5},
				{Title: "Authentication and Sessions", BaseHours: 5},
			},
		},
		{
			Title:       "Operations and Scale",
			Description: "Running services reliably in production",
			Difficulty:  "advanced",
			Topics: []topicTemplate{
				{Title: "Containers with Docker", BaseHours: 6},
				{Title: "Caching Strategies", BaseHours: 4},
				{Title: "Observability Basics", BaseHours: 4},
			},
		},
	},
}

var datascienceTemplate = pathTemplate{
	Title:       "Data Scientist Path",
	Description: "Statistics, data wrangling, and machine learning in practice.",
	Modules: []moduleTemplate{
		{
			Title:       "Python for Data",
			Description: "The data stack: NumPy, Pandas, and notebooks",
			Difficulty:  "beginner",
			Topics: []topicTemplate{
				{Title: "Python Essentials", BaseHours: 6},
				{Title: "NumPy and Pandas", BaseHours: 8},
				{Title: "Data Visualization", BaseHours: 5},
			},
		},
		{
			Title:       "Statistics and Analysis",
			Description: "Quantitative reasoning over real datasets",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "Descriptive Statistics", BaseHours: 5},
				{Title: "Hypothesis Testing", BaseHours: 6},
				{Title: "Exploratory Data Analysis", BaseHours: 6},
			},
		},
		{
			Title:       "Machine Learning",
			Description: "Supervised and unsupervised learning with scikit-learn",
			Difficulty:  "advanced",
			Topics: []topicTemplate{
				{Title: "Regression and Classification", BaseHours: 8},
				{Title: "Model Evaluation", BaseHours: 5},
				{Title: "Clustering and Dimensionality Reduction", BaseHours: 6},
			},
		},
	},
}

var devopsTemplate = pathTemplate{
	Title:       "DevOps Engineer Path",
	Description: "Automating the path from commit to production.",
	Modules: []moduleTemplate{
		{
			Title:       "Systems Foundations",
			Description: "Linux, networking, and scripting",
			Difficulty:  "beginner",
			Topics: []topicTemplate{
				{Title: "Linux Fundamentals", BaseHours: 6},
				{Title: "Networking Basics", BaseHours: 5},
				{Title: "Shell Scripting", BaseHours: 4},
			},
		},
		{
			Title:       "Containers and Orchestration",
			Description: "Packaging and running workloads at scale",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "Containers with Docker", BaseHours: 6},
				{Title: "Kubernetes Fundamentals", BaseHours: 8},
				{Title: "Infrastructure as Code", BaseHours: 6},
			},
		},
		{
			Title:       "Delivery and Operations",
			Description: "CI/CD pipelines and production monitoring",
			Difficulty:  "advanced",
			Topics: []topicTemplate{
				{Title: "CI/CD Pipelines", BaseHours: 6},
				{Title: "Observability Basics", BaseHours: 4},
				{Title: "Incident Response", BaseHours: 4},
			},
		},
	},
}

var mobileTemplate = pathTemplate{
	Title:       "Mobile Developer Path",
	Description: "Building and shipping applications for phones and tablets.",
	Modules: []moduleTemplate{
		{
			Title:       "Programming Fundamentals",
			Description: "Core programming concepts and problem-solving",
			Difficulty:  "beginner",
			Topics: []topicTemplate{
				{Title: "Introduction to Programming", BaseHours: 5},
				{Title: "Object-Oriented Design", BaseHours: 5},
				{Title: "Version Control with Git", BaseHours: 3},
			},
		},
		{
			Title:       "Mobile UI Development",
			Description: "Screens, navigation, and platform conventions",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "Layouts and Components", BaseHours: 6},
				{Title: "Navigation Patterns", BaseHours: 4},
				{Title: "Persistence on Device", BaseHours: 5},
			},
		},
		{
			Title:       "Shipping to Stores",
			Description: "APIs, testing, and release pipelines",
			Difficulty:  "intermediate",
			Topics: []topicTemplate{
				{Title: "Consuming REST APIs", BaseHours: 5},
				{Title: "Testing Mobile Apps", BaseHours: 5},
				{Title: "Release and Distribution", BaseHours: 4},
			},
		},
	},
}

// templateForRole resolves a curriculum template from the free-text target
// role. Unrecognized roles fall back to the full-stack track.
func templateForRole(role string) pathTemplate {
	key := strings.ReplaceAll(strings.ToLower(role), " ", "_")

	switch {
	case strings.Contains(key, "frontend"):
		return frontendTemplate
	case strings.Contains(key, "backend"):
		return backendTemplate
	case strings.Contains(key, "data"), strings.Contains(key, "machine_learning"), strings.Contains(key, "ml_"), strings.Contains(key, "ai"):
		return datascienceTemplate
	case strings.Contains(key, "devops"):
		return devopsTemplate
	case strings.Contains(key, "mobile"):
		return mobileTemplate
	default:
		return fullstackTemplate
	}
}
