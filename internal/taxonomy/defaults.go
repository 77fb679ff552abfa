package taxonomy

// DefaultSource returns the bundled reference data. A fresh copy is returned
// on every call.
func DefaultSource() Source {
	return Source{
		Synonyms:   defaultSynonyms(),
		Categories: defaultCategories(),
		Industries: defaultIndustries(),
		Seniority:  defaultSeniority(),
		Countries:  defaultCountries(),
		Education:  defaultEducation(),
	}
}

func defaultSynonyms() []SynonymSet {
	return []SynonymSet{
		{Canonical: "JavaScript", Variants: []string{"js", "javascript", "ecmascript", "es6", "es2015"}},
		{Canonical: "TypeScript", Variants: []string{"ts", "typescript"}},
		{Canonical: "Python", Variants: []string{"python", "python3", "py"}},
		{Canonical: "Go", Variants: []string{"go", "golang", "go lang"}},
		{Canonical: "Java", Variants: []string{"java", "java se", "java ee", "j2ee"}},
		{Canonical: "C#", Variants: []string{"c#", "csharp", "c sharp"}},
		{Canonical: "C++", Variants: []string{"c++", "cpp", "cplusplus"}},
		{Canonical: "Ruby", Variants: []string{"ruby"}},
		{Canonical: "PHP", Variants: []string{"php"}},
		{Canonical: "Kotlin", Variants: []string{"kotlin"}},
		{Canonical: "Swift", Variants: []string{"swift"}},
		{Canonical: "Rust", Variants: []string{"rust", "rustlang"}},
		{Canonical: "React", Variants: []string{"react", "react.js", "reactjs", "react js"}},
		{Canonical: "Angular", Variants: []string{"angular", "angular.js", "angularjs"}},
		{Canonical: "Vue.js", Variants: []string{"vue", "vuejs", "vue.js", "vue js"}},
		{Canonical: "Next.js", Variants: []string{"next", "nextjs", "next.js"}},
		{Canonical: "Node.js", Variants: []string{"node", "nodejs", "node.js", "node js"}},
		{Canonical: "Express", Variants: []string{"express", "express.js", "expressjs"}},
		{Canonical: "Django", Variants: []string{"django"}},
		{Canonical: "Flask", Variants: []string{"flask"}},
		{Canonical: "Spring Boot", Variants: []string{"spring", "spring boot", "springboot"}},
		{Canonical: ".NET", Variants: []string{".net", "dotnet", "asp.net", ".net core"}},
		{Canonical: "Ruby on Rails", Variants: []string{"rails", "ruby on rails", "ror"}},
		{Canonical: "HTML", Variants: []string{"html", "html5"}},
		{Canonical: "CSS", Variants: []string{"css", "css3"}},
		{Canonical: "Tailwind CSS", Variants: []string{"tailwind", "tailwindcss"}},
		{Canonical: "SQL", Variants: []string{"sql"}},
		{Canonical: "PostgreSQL", Variants: []string{"postgres", "postgresql", "psql"}},
		{Canonical: "MySQL", Variants: []string{"mysql"}},
		{Canonical: "MongoDB", Variants: []string{"mongo", "mongodb"}},
		{Canonical: "Redis", Variants: []string{"redis"}},
		{Canonical: "Elasticsearch", Variants: []string{"elasticsearch", "elastic search", "elk"}},
		{Canonical: "Amazon Web Services", Variants: []string{"aws", "amazon web services"}},
		{Canonical: "Google Cloud Platform", Variants: []string{"gcp", "google cloud", "google cloud platform"}},
		{Canonical: "Microsoft Azure", Variants: []string{"azure", "microsoft azure"}},
		{Canonical: "Docker", Variants: []string{"docker", "containers"}},
		{Canonical: "Kubernetes", Variants: []string{"k8s", "kubernetes", "kube"}},
		{Canonical: "Terraform", Variants: []string{"terraform", "tf"}},
		{Canonical: "CI/CD", Variants: []string{"ci/cd", "cicd", "ci cd", "continuous integration", "continuous delivery"}},
		{Canonical: "Git", Variants: []string{"git", "github", "gitlab"}},
		{Canonical: "GraphQL", Variants: []string{"graphql", "gql"}},
		{Canonical: "REST APIs", Variants: []string{"rest", "rest api", "restful", "restful apis", "rest apis"}},
		{Canonical: "Machine Learning", Variants: []string{"ml", "machine learning"}},
		{Canonical: "Deep Learning", Variants: []string{"dl", "deep learning"}},
		{Canonical: "Artificial Intelligence", Variants: []string{"ai", "artificial intelligence"}},
		{Canonical: "Natural Language Processing", Variants: []string{"nlp", "natural language processing"}},
		{Canonical: "TensorFlow", Variants: []string{"tensorflow", "tf2"}},
		{Canonical: "PyTorch", Variants: []string{"pytorch", "torch"}},
		{Canonical: "Pandas", Variants: []string{"pandas"}},
		{Canonical: "Data Analysis", Variants: []string{"data analysis", "data analytics"}},
		{Canonical: "Microsoft Excel", Variants: []string{"excel", "ms excel", "microsoft excel"}},
		{Canonical: "Power BI", Variants: []string{"power bi", "powerbi"}},
		{Canonical: "Tableau", Variants: []string{"tableau"}},
		{Canonical: "Figma", Variants: []string{"figma"}},
		{Canonical: "UI/UX Design", Variants: []string{"ui/ux", "ux/ui", "ui ux", "ux", "ui design", "ux design", "user experience"}},
		{Canonical: "Adobe Photoshop", Variants: []string{"photoshop", "adobe photoshop"}},
		{Canonical: "Agile", Variants: []string{"agile", "agile methodology"}},
		{Canonical: "Scrum", Variants: []string{"scrum"}},
		{Canonical: "Project Management", Variants: []string{"project management", "pm", "project mgmt"}},
		{Canonical: "Search Engine Optimization", Variants: []string{"seo", "search engine optimization"}},
		{Canonical: "Communication", Variants: []string{"communication", "communication skills", "communications"}},
		{Canonical: "Leadership", Variants: []string{"leadership", "team leadership"}},
		{Canonical: "iOS Development", Variants: []string{"ios", "ios development"}},
		{Canonical: "Android Development", Variants: []string{"android", "android development"}},
		{Canonical: "React Native", Variants: []string{"react native", "react-native"}},
		{Canonical: "Flutter", Variants: []string{"flutter"}},
		{Canonical: "Linux", Variants: []string{"linux", "unix"}},
		{Canonical: "Kafka", Variants: []string{"kafka", "apache kafka"}},
		{Canonical: "Salesforce", Variants: []string{"salesforce", "sfdc"}},
	}
}

func defaultCategories() []Category {
	return []Category{
		{Name: "programming languages", Skills: []string{"JavaScript", "TypeScript", "Python", "Go", "Java", "C#", "C++", "Ruby", "PHP", "Kotlin", "Swift", "Rust"}},
		{Name: "frontend", Skills: []string{"React", "Angular", "Vue.js", "Next.js", "HTML", "CSS", "Tailwind CSS", "JavaScript", "TypeScript"}},
		{Name: "backend frameworks", Skills: []string{"Node.js", "Express", "Django", "Flask", "Spring Boot", ".NET", "Ruby on Rails", "GraphQL", "REST APIs"}},
		{Name: "databases", Skills: []string{"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch"}},
		{Name: "cloud", Skills: []string{"Amazon Web Services", "Google Cloud Platform", "Microsoft Azure"}},
		{Name: "devops", Skills: []string{"Docker", "Kubernetes", "Terraform", "CI/CD", "Git", "Linux", "Kafka"}},
		{Name: "data and machine learning", Skills: []string{"Machine Learning", "Deep Learning", "Artificial Intelligence", "Natural Language Processing", "TensorFlow", "PyTorch", "Pandas", "Data Analysis", "Python"}},
		{Name: "business intelligence", Skills: []string{"Microsoft Excel", "Power BI", "Tableau", "Data Analysis", "SQL"}},
		{Name: "mobile", Skills: []string{"iOS Development", "Android Development", "React Native", "Flutter", "Kotlin", "Swift"}},
		{Name: "design", Skills: []string{"Figma", "UI/UX Design", "Adobe Photoshop"}},
		{Name: "delivery", Skills: []string{"Agile", "Scrum", "Project Management"}},
		{Name: "marketing", Skills: []string{"Search Engine Optimization", "Salesforce"}},
		{Name: "soft skills", Skills: []string{"Communication", "Leadership"}},
	}
}

func defaultIndustries() []IndustryRelation {
	return []IndustryRelation{
		{Industry: "technology", Related: []string{"software", "saas", "it services", "internet", "telecommunications"}},
		{Industry: "software", Related: []string{"technology", "saas", "it services", "internet"}},
		{Industry: "saas", Related: []string{"software", "technology", "cloud"}},
		{Industry: "fintech", Related: []string{"finance", "banking", "payments", "technology"}},
		{Industry: "finance", Related: []string{"banking", "fintech", "insurance", "investment", "accounting"}},
		{Industry: "banking", Related: []string{"finance", "fintech", "insurance", "payments"}},
		{Industry: "insurance", Related: []string{"finance", "banking", "insurtech"}},
		{Industry: "healthcare", Related: []string{"pharmaceutical", "biotech", "medical devices", "hospital", "health"}},
		{Industry: "pharmaceutical", Related: []string{"biotech", "healthcare", "life sciences"}},
		{Industry: "e-commerce", Related: []string{"retail", "marketplace", "logistics", "technology"}},
		{Industry: "retail", Related: []string{"e-commerce", "consumer goods", "fashion", "wholesale"}},
		{Industry: "education", Related: []string{"edtech", "e-learning", "training", "university"}},
		{Industry: "marketing", Related: []string{"advertising", "media", "public relations", "digital marketing"}},
		{Industry: "advertising", Related: []string{"marketing", "media", "adtech"}},
		{Industry: "media", Related: []string{"entertainment", "publishing", "advertising", "broadcasting"}},
		{Industry: "gaming", Related: []string{"entertainment", "media", "software"}},
		{Industry: "manufacturing", Related: []string{"automotive", "industrial", "engineering", "supply chain"}},
		{Industry: "automotive", Related: []string{"manufacturing", "mobility", "transportation"}},
		{Industry: "logistics", Related: []string{"supply chain", "transportation", "shipping", "warehousing"}},
		{Industry: "telecommunications", Related: []string{"technology", "networking", "internet"}},
		{Industry: "consulting", Related: []string{"professional services", "advisory", "management consulting"}},
		{Industry: "energy", Related: []string{"oil and gas", "utilities", "renewable energy"}},
		{Industry: "real estate", Related: []string{"construction", "property management", "proptech"}},
		{Industry: "hospitality", Related: []string{"tourism", "travel", "food and beverage"}},
		{Industry: "government", Related: []string{"public sector", "defense", "non-profit"}},
	}
}

func defaultSeniority() []SeniorityKeyword {
	return []SeniorityKeyword{
		{Keyword: "intern", Rank: 1},
		{Keyword: "internship", Rank: 1},
		{Keyword: "trainee", Rank: 1},
		{Keyword: "apprentice", Rank: 1},
		{Keyword: "junior", Rank: 2},
		{Keyword: "jr", Rank: 2},
		{Keyword: "entry level", Rank: 2},
		{Keyword: "graduate", Rank: 2},
		{Keyword: "associate", Rank: 2},
		{Keyword: "mid level", Rank: 3},
		{Keyword: "intermediate", Rank: 3},
		{Keyword: "senior", Rank: 4},
		{Keyword: "sr", Rank: 4},
		{Keyword: "lead", Rank: 5},
		{Keyword: "team lead", Rank: 5},
		{Keyword: "staff", Rank: 5},
		{Keyword: "principal", Rank: 6},
		{Keyword: "architect", Rank: 6},
		{Keyword: "manager", Rank: 6},
		{Keyword: "senior manager", Rank: 7},
		{Keyword: "head", Rank: 7},
		{Keyword: "director", Rank: 7},
		{Keyword: "vice president", Rank: 8},
		{Keyword: "vp", Rank: 8},
		{Keyword: "svp", Rank: 9},
		{Keyword: "evp", Rank: 9},
		{Keyword: "president", Rank: 9},
		{Keyword: "chief", Rank: 10},
		{Keyword: "ceo", Rank: 10},
		{Keyword: "cto", Rank: 10},
		{Keyword: "cfo", Rank: 10},
		{Keyword: "coo", Rank: 10},
		{Keyword: "cio", Rank: 10},
		{Keyword: "founder", Rank: 10},
	}
}

func defaultCountries() []Country {
	return []Country{
		{Name: "United States", Aliases: []string{"usa", "us", "u.s.", "u.s.a.", "america", "new york", "san francisco", "seattle", "austin", "boston", "chicago", "los angeles", "california", "texas"}},
		{Name: "United Kingdom", Aliases: []string{"uk", "u.k.", "great britain", "britain", "england", "scotland", "wales", "london", "manchester", "edinburgh", "birmingham"}},
		{Name: "Canada", Aliases: []string{"toronto", "vancouver", "montreal", "ottawa", "calgary"}},
		{Name: "Germany", Aliases: []string{"deutschland", "berlin", "munich", "münchen", "hamburg", "frankfurt", "cologne"}},
		{Name: "France", Aliases: []string{"paris", "lyon", "marseille", "toulouse"}},
		{Name: "Netherlands", Aliases: []string{"holland", "the netherlands", "amsterdam", "rotterdam", "utrecht", "eindhoven"}},
		{Name: "Spain", Aliases: []string{"españa", "madrid", "barcelona", "valencia"}},
		{Name: "Italy", Aliases: []string{"italia", "rome", "milan", "turin"}},
		{Name: "Poland", Aliases: []string{"polska", "warsaw", "krakow", "kraków", "wroclaw"}},
		{Name: "Ireland", Aliases: []string{"dublin", "cork"}},
		{Name: "India", Aliases: []string{"bangalore", "bengaluru", "mumbai", "delhi", "new delhi", "hyderabad", "pune", "chennai"}},
		{Name: "Indonesia", Aliases: []string{"jakarta", "bandung", "surabaya", "bali", "yogyakarta"}},
		{Name: "Singapore", Aliases: []string{"sg"}},
		{Name: "Malaysia", Aliases: []string{"kuala lumpur", "penang"}},
		{Name: "Australia", Aliases: []string{"sydney", "melbourne", "brisbane", "perth", "new south wales"}},
		{Name: "Japan", Aliases: []string{"tokyo", "osaka", "kyoto"}},
		{Name: "China", Aliases: []string{"beijing", "shanghai", "shenzhen", "hangzhou"}},
		{Name: "Brazil", Aliases: []string{"brasil", "são paulo", "sao paulo", "rio de janeiro"}},
		{Name: "United Arab Emirates", Aliases: []string{"uae", "dubai", "abu dhabi"}},
		{Name: "Russia", Aliases: []string{"russian federation", "moscow", "saint petersburg", "st petersburg"}},
	}
}

func defaultEducation() []EducationKeyword {
	return []EducationKeyword{
		{Keyword: "high school", Level: 1},
		{Keyword: "secondary school", Level: 1},
		{Keyword: "ged", Level: 1},
		{Keyword: "a levels", Level: 1},
		{Keyword: "associate", Level: 2},
		{Keyword: "associates", Level: 2},
		{Keyword: "diploma", Level: 2},
		{Keyword: "hnd", Level: 2},
		{Keyword: "bachelor", Level: 3},
		{Keyword: "bachelors", Level: 3},
		{Keyword: "undergraduate", Level: 3},
		{Keyword: "university degree", Level: 3},
		{Keyword: "bsc", Level: 3},
		{Keyword: "b.sc", Level: 3},
		{Keyword: "b.s", Level: 3},
		{Keyword: "bs", Level: 3},
		{Keyword: "ba", Level: 3},
		{Keyword: "b.a", Level: 3},
		{Keyword: "beng", Level: 3},
		{Keyword: "b.tech", Level: 3},
		{Keyword: "btech", Level: 3},
		{Keyword: "s1", Level: 3},
		{Keyword: "master", Level: 4},
		{Keyword: "masters", Level: 4},
		{Keyword: "postgraduate", Level: 4},
		{Keyword: "msc", Level: 4},
		{Keyword: "m.sc", Level: 4},
		{Keyword: "ms", Level: 4},
		{Keyword: "m.s", Level: 4},
		{Keyword: "ma", Level: 4},
		{Keyword: "mba", Level: 4},
		{Keyword: "meng", Level: 4},
		{Keyword: "m.tech", Level: 4},
		{Keyword: "s2", Level: 4},
		{Keyword: "doctorate", Level: 5},
		{Keyword: "doctoral", Level: 5},
		{Keyword: "phd", Level: 5},
		{Keyword: "ph.d", Level: 5},
		{Keyword: "dphil", Level: 5},
		{Keyword: "s3", Level: 5},
	}
}
