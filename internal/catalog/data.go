package catalog

// defaultRoles is the reference catalog. Skills are lower-cased because the
// skill extractor works on case-folded text.
var defaultRoles = []Role{
	{"Software Engineer", []string{"python", "java", "c++", "sql", "git", "algorithms", "docker", "linux", "debugging", "oop"}},
	{"Data Scientist", []string{"python", "r", "sql", "pandas", "tensorflow", "statistics", "numpy", "matplotlib", "machine learning", "data visualization"}},
	{"Frontend Developer", []string{"javascript", "html", "css", "react", "angular", "typescript", "responsive design", "ui/ux", "webpack", "redux"}},
	{"Backend Developer", []string{"python", "java", "node.js", "django", "spring", "rest api", "microservices", "database design", "aws", "docker"}},
	{"DevOps Engineer", []string{"aws", "docker", "kubernetes", "ci/cd", "terraform", "ansible", "linux", "bash scripting", "monitoring", "cloud computing"}},
	{"Data Engineer", []string{"python", "sql", "etl", "hadoop", "spark", "airflow", "data warehousing", "nosql", "aws", "big data"}},
	{"Machine Learning Engineer", []string{"python", "tensorflow", "pytorch", "machine learning", "deep learning", "nlp", "computer vision", "scikit-learn", "data pipelines", "model deployment"}},
	{"Product Manager", []string{"product strategy", "market research", "agile", "scrum", "user stories", "roadmapping", "stakeholder management", "metrics analysis", "prototyping", "customer development"}},
	{"UX Designer", []string{"user research", "wireframing", "prototyping", "figma", "sketch", "usability testing", "interaction design", "information architecture", "ui design", "user personas"}},
	{"Cybersecurity Analyst", []string{"network security", "vulnerability assessment", "siem", "firewalls", "incident response", "penetration testing", "security compliance", "threat intelligence", "encryption", "risk assessment"}},
	{"Cloud Architect", []string{"aws", "azure", "google cloud", "cloud migration", "infrastructure as code", "serverless", "security architecture", "scalability", "cost optimization", "devops"}},
	{"Full Stack Developer", []string{"javascript", "python", "react", "node.js", "express", "mongodb", "rest api", "html/css", "git", "aws"}},
	{"QA Engineer", []string{"test automation", "selenium", "junit", "testng", "manual testing", "qa methodologies", "bug tracking", "performance testing", "security testing", "continuous integration"}},
	{"Business Analyst", []string{"requirements gathering", "process modeling", "data analysis", "sql", "power bi", "stakeholder management", "use cases", "user stories", "gap analysis", "uml"}},
	{"Technical Writer", []string{"documentation", "technical communication", "markdown", "git", "api documentation", "user manuals", "content strategy", "information architecture", "editing", "tools documentation"}},
	{"Systems Administrator", []string{"linux", "windows server", "networking", "active directory", "virtualization", "backup solutions", "monitoring", "scripting", "it security", "troubleshooting"}},
	{"Mobile Developer", []string{"swift", "kotlin", "react native", "flutter", "mobile ui", "rest api", "firebase", "performance optimization", "app store", "ci/cd"}},
	{"Database Administrator", []string{"sql", "database design", "performance tuning", "backup/recovery", "nosql", "data modeling", "etl", "security", "cloud databases", "replication"}},
	{"Network Engineer", []string{"cisco", "routing", "switching", "vpn", "wan", "lan", "network security", "tcp/ip", "firewalls", "sdn"}},
	{"AI Research Scientist", []string{"python", "machine learning", "deep learning", "research", "pytorch", "tensorflow", "mathematics", "publications", "nlp", "reinforcement learning"}},
}

// defaultWeights adjusts the weighted score for in-demand skills. Skills
// without an entry count as 1.0.
var defaultWeights = map[string]float64{
	"python": 1.5, "tensorflow": 2.0, "aws": 1.8, "docker": 1.7,
	"kubernetes": 2.2, "sql": 1.3, "machine learning": 2.1, "react": 1.6,
	"javascript": 1.4, "pytorch": 2.0, "ci/cd": 1.7, "terraform": 1.9,
	"data pipelines": 1.8, "security": 1.9, "cloud computing": 1.8,
	"deep learning": 2.2, "nlp": 2.1, "spark": 1.9, "airflow": 1.8,
}
