package services

// SkillCategory groups related taxonomy terms under a shared importance
// weight. The table is ordered: strengths and gaps are reported in the order
// categories are scanned, so Taxonomy must stay a slice rather than a map.
type SkillCategory struct {
	Name   string
	Terms  []string
	Weight float64
}

// Taxonomy is the static skill lookup used by the deterministic engine.
// Loaded once, never mutated, safe for unlimited concurrent readers.
var Taxonomy = []SkillCategory{
	{
		Name: "programming_languages",
		Terms: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "go",
			"rust", "ruby", "php", "swift", "kotlin", "scala", "r", "matlab",
		},
		Weight: 1.5,
	},
	{
		Name: "frontend_frameworks",
		Terms: []string{
			"react", "vue", "angular", "svelte", "next.js", "nuxt", "gatsby",
			"html5", "css3", "sass", "less", "tailwind", "bootstrap", "material-ui",
		},
		Weight: 1.3,
	},
	{
		Name: "backend_frameworks",
		Terms: []string{
			"fastapi", "django", "flask", "nodejs", "express", "nestjs",
			"spring boot", "spring", "asp.net", "rails", "laravel", "symfony",
		},
		Weight: 1.4,
	},
	{
		Name: "mobile_development",
		Terms: []string{
			"react native", "flutter", "ios development", "android development",
			"swift", "kotlin", "xamarin", "ionic", "cordova",
		},
		Weight: 1.3,
	},
	{
		Name: "databases",
		Terms: []string{
			"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
			"cassandra", "dynamodb", "sql", "nosql", "oracle", "sql server",
		},
		Weight: 1.3,
	},
	{
		Name: "cloud_platforms",
		Terms: []string{
			"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
			"vercel", "netlify", "cloudflare",
		},
		Weight: 1.4,
	},
	{
		Name: "devops_tools",
		Terms: []string{
			"docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
			"circleci", "travis ci", "terraform", "ansible", "puppet", "chef",
		},
		Weight: 1.2,
	},
	{
		Name: "data_science",
		Terms: []string{
			"machine learning", "deep learning", "tensorflow", "pytorch",
			"scikit-learn", "pandas", "numpy", "matplotlib", "jupyter",
			"data analysis", "nlp", "computer vision",
		},
		Weight: 1.5,
	},
	{
		Name: "testing",
		Terms: []string{
			"jest", "pytest", "junit", "selenium", "cypress", "testing",
			"unit testing", "integration testing", "tdd", "bdd",
		},
		Weight: 1.1,
	},
	{
		Name: "version_control",
		Terms: []string{
			"git", "github", "gitlab", "bitbucket", "svn", "version control",
		},
		Weight: 1.0,
	},
	{
		Name: "project_management",
		Terms: []string{
			"agile", "scrum", "kanban", "jira", "confluence", "trello",
			"asana", "project management",
		},
		Weight: 1.0,
	},
	{
		Name: "architecture",
		Terms: []string{
			"microservices", "rest api", "graphql", "websockets", "grpc",
			"event-driven", "serverless", "monolithic", "distributed systems",
		},
		Weight: 1.3,
	},
	{
		Name: "security",
		Terms: []string{
			"oauth", "jwt", "security", "authentication", "authorization",
			"encryption", "ssl", "tls", "penetration testing",
		},
		Weight: 1.2,
	},
	{
		Name: "soft_skills",
		Terms: []string{
			"leadership", "team lead", "management", "communication",
			"problem solving", "analytical", "teamwork", "collaboration",
			"mentoring", "presentation", "stakeholder management",
		},
		Weight: 1.1,
	},
	{
		Name: "methodologies",
		Terms: []string{
			"ci/cd", "continuous integration", "continuous deployment",
			"devops", "design patterns", "solid principles", "clean code",
		},
		Weight: 1.0,
	},
}
