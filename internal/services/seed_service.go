package services

import (
	"context"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"

	"gorm.io/datatypes"
)

// SeedService loads the starter data set: the demo employers and the
// multiple-choice question bank. Both uploads are additive and meant for
// a fresh database.
type SeedService interface {
	SeedEmployers(ctx context.Context) (int, error)
	SeedQuestionBank(ctx context.Context) (int, error)
	// SeedJobs attaches a demo posting to each seeded employer; employers
	// must be seeded first.
	SeedJobs(ctx context.Context) (int, error)
}

type seedService struct {
	employerRepo repositories.EmployerRepository
	assessRepo   repositories.AssessmentRepository
	jobRepo      repositories.JobRepository
}

func NewSeedService(
	employerRepo repositories.EmployerRepository,
	assessRepo repositories.AssessmentRepository,
	jobRepo repositories.JobRepository,
) SeedService {
	return &seedService{employerRepo: employerRepo, assessRepo: assessRepo, jobRepo: jobRepo}
}

func (s *seedService) SeedEmployers(ctx context.Context) (int, error) {
	employers := []models.Employer{
		{
			Name: "Gamuda Group",
			Info: "Backed by a creative and innovative workforce, Gamuda has grown since 1976 into Malaysia's leading contractor and property developer. We deliver world-class products and solutions that connect people and cities and create sustainable transformation for an enhanced quality of life.",
			Logo: "https://image-service-cdn.seek.com.au/18e7d6b6668a4a0102c8cd7e9cedec836b922791",
		},
		{
			Name: "Google",
			Info: "Google is not a conventional company, and we don't intend to become one. True, we share attributes with the world's most successful organizations, but even as we continue to grow, we're committed to retaining a small-company feel. At Google, we know that every employee has something important to say, and that every employee is integral to our success.",
			Logo: "https://image-service-cdn.seek.com.au/3a3c4de8b2850c8f6c5c3da4e2355e7136da7657",
		},
		{
			Name: "Popular Book Company",
			Info: "Founded in 1924, we are an established brand with a wide network and strong market share in the Malaysia retail scene. Our core businesses are in retailing, publishing, and distribution, and we are now moving into a new business segment, i.e., e-learning.",
			Logo: "https://image-service-cdn.seek.com.au/3143dd9aeddc7072f47c6c5261069721199bdcb3",
		},
	}

	for i := range employers {
		if err := s.employerRepo.Create(ctx, &employers[i]); err != nil {
			return i, err
		}
	}
	return len(employers), nil
}

func (s *seedService) SeedJobs(ctx context.Context) (int, error) {
	jobs := []struct {
		employer string
		job      models.EmployerJob
	}{
		{"Gamuda Group", models.EmployerJob{
			Name:             "Software Engineer",
			Summary:          "Build internal platforms for digitalized construction workflows.",
			Description:      "You will design and ship services that digitalize construction workflows across our regional projects, working with product and site engineering teams.",
			Responsibilities: `["Design and implement backend services", "Collaborate with site engineering teams", "Maintain CI pipelines"]`,
			Skills:           `["Python", "Postgres", "Docker"]`,
			Experience:       "2+ years building backend services",
			ExperienceYears:  "2",
			JobType:          "Full time",
			WorkMode:         "Hybrid",
			Level:            "Junior",
			Location:         "Kuala Lumpur",
		}},
		{"Google", models.EmployerJob{
			Name:             "Frontend Developer",
			Summary:          "Ship user-facing features on a high-traffic product surface.",
			Description:      "Work with designers and backend engineers to deliver accessible, fast web experiences used by millions of people.",
			Responsibilities: `["Implement UI components", "Profile and fix rendering bottlenecks", "Review teammates' changes"]`,
			Skills:           `["Javascript", "Typescript", "React"]`,
			Experience:       "3+ years of production frontend work",
			ExperienceYears:  "3",
			JobType:          "Full time",
			WorkMode:         "On-site",
			Level:            "Mid",
			Location:         "Singapore",
		}},
		{"Popular Book Company", models.EmployerJob{
			Name:             "E-learning Platform Engineer",
			Summary:          "Grow our new e-learning segment from the ground up.",
			Description:      "Join a small team building the company's e-learning platform, owning features end to end from schema to screen.",
			Responsibilities: `["Own features end to end", "Model course and progress data", "Integrate payment and content providers"]`,
			Skills:           `["Python", "Javascript", "SQL"]`,
			Experience:       "Full-stack experience preferred",
			ExperienceYears:  "2",
			JobType:          "Full time",
			WorkMode:         "Remote",
			Level:            "Mid",
			Location:         "Petaling Jaya",
		}},
	}

	stored := 0
	for _, entry := range jobs {
		employers, err := s.employerRepo.FindByName(ctx, entry.employer)
		if err != nil {
			return stored, err
		}
		if len(employers) == 0 {
			continue
		}
		job := entry.job
		job.EmployerID = employers[0].ID
		if err := s.jobRepo.Create(ctx, &job); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

func (s *seedService) SeedQuestionBank(ctx context.Context) (int, error) {
	questions := questionBankSeed()
	if err := s.assessRepo.CreateBankBatch(ctx, questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}

type bankRecord struct {
	topic    string
	level    int
	question string
	options  string
	answer   string
}

func questionBankSeed() []models.SkillQuestion {
	records := []bankRecord{
		{"Python", 1, "What is the correct file extension for Python files?",
			`{"A": ".py", "B": ".python", "C": ".pt", "D": ".txt"}`, "A"},
		{"Python", 1, "How do you output text in Python?",
			`{"A": "print()", "B": "echo()", "C": "output()", "D": "write()"}`, "A"},
		{"Python", 1, "Which of the following is a valid variable name?",
			`{"A": "1variable", "B": "variable_name", "C": "variable-name", "D": "variable.name"}`, "B"},
		{"Python", 1, "Which data type is used to store True or False values?",
			`{"A": "int", "B": "float", "C": "bool", "D": "str"}`, "C"},
		{"Python", 1, "What is the output of 3 + 2 * 2?",
			`{"A": "10", "B": "7", "C": "8", "D": "9"}`, "B"},
		{"Python", 2, "Which of the following loops is used to iterate over a sequence?",
			`{"A": "for", "B": "while", "C": "do-while", "D": "loop"}`, "A"},
		{"Python", 2, "What is the output of the following code: 'print(2 ** 3)'?",
			`{"A": "6", "B": "8", "C": "9", "D": "None of the above"}`, "B"},
		{"Python", 2, "How do you handle exceptions in Python?",
			`{"A": "try...catch", "B": "try...except", "C": "try...error", "D": "try...finally"}`, "B"},
		{"Python", 3, "Which method is used to add an item to the end of a list?",
			`{"A": "append()", "B": "add()", "C": "insert()", "D": "extend()"}`, "A"},
		{"Javascript", 1, "What is the correct way to declare a variable in JavaScript?",
			`{"A": "variable x = 5", "B": "let x = 5", "C": "x = 5", "D": "#x = 5"}`, "B"},
		{"Javascript", 1, "Which operator is used for equality comparison without type checking?",
			`{"A": "===", "B": "==", "C": "=", "D": "!="}`, "B"},
		{"Javascript", 1, "How do you write a comment in JavaScript?",
			`{"A": "<!-- comment -->", "B": "/* comment */", "C": "# comment", "D": "// comment"}`, "D"},
		{"Javascript", 1, "What is the correct way to write 'Hello World' in an alert box?",
			`{"A": "alertBox(\"Hello World\")", "B": "msg(\"Hello World\")", "C": "alert(\"Hello World\")", "D": "msgBox(\"Hello World\")"}`, "C"},
		{"Javascript", 1, "Which method is used to add an element at the end of an array?",
			`{"A": "push()", "B": "add()", "C": "append()", "D": "insert()"}`, "A"},
		{"Javascript", 2, "What is the output of: typeof([1,2,3])?",
			`{"A": "\"array\"", "B": "\"object\"", "C": "\"list\"", "D": "\"number\""}`, "B"},
		{"Javascript", 2, "Which method removes the last element of an array?",
			`{"A": "pop()", "B": "last()", "C": "remove()", "D": "delete()"}`, "A"},
		{"Javascript", 2, "What is the result of 3 + \"3\"?",
			`{"A": "6", "B": "\"33\"", "C": "33", "D": "Error"}`, "B"},
		{"Javascript", 3, "What is the output of: [1,2,3].map(x => x*2)?",
			`{"A": "[1,2,3]", "B": "[2,4,6]", "C": "undefined", "D": "Error"}`, "B"},
		{"Javascript", 3, "What is closure in JavaScript?",
			`{"A": "A way to protect variables", "B": "A function with access to variables in its outer scope", "C": "A method to close browser window", "D": "A way to end loops"}`, "B"},
	}

	questions := make([]models.SkillQuestion, 0, len(records))
	for _, r := range records {
		questions = append(questions, models.SkillQuestion{
			Topic:    r.topic,
			Level:    r.level,
			Question: r.question,
			Options:  datatypes.JSON(r.options),
			Answer:   r.answer,
		})
	}
	return questions
}
