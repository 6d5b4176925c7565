package content

var personalInfo = Person{
	Name:     "Gafar Ajao",
	Title:    "Senior Frontend Engineer",
	Tagline:  "Crafting exceptional digital experiences with 8+ years of expertise",
	Email:    "hello@gafarajao.com",
	Location: "Available Worldwide",
	Summary: `Frontend Engineer with over 8 years of experience in frontend, mobile, and backend development
	using modern technologies. Designed and implemented atomic-structure-based component libraries, collaborated
	on projects that increased bookings, reduced cart abandonment, and boosted user engagement significantly.`,
}

var experiences = []Experience{
	{
		ID:       "noema",
		Role:     "Senior Frontend Engineer",
		Company:  "Noema",
		Location: "Doha, Qatar",
		Period:   "Feb 2025 - Present",
		Highlights: []string{
			"Building highly functional frontend applications using React, GraphQL for enterprise-scale banking systems",
			"Improved dashboard usability by 60% through seamless UX collaboration",
			"Developing in-house UI library with 30+ reusable, performant components",
		},
		Technologies: []string{"React", "GraphQL", "TypeScript", "React Router", "React Hook Forms"},
	},
	{
		ID:       "rb2",
		Role:     "Senior Full Stack Engineer",
		Company:  "Rb2",
		Location: "Netherlands",
		Period:   "Jan 2022 - Sep 2025",
		Highlights: []string{
			"Developed high-performance apps using React (Next.js, Remix), Vue (Nuxt), and Svelte",
			"Increased customer engagement by 40% through seamless UX",
			"Integrated GraphQL APIs with Node.js and PostgreSQL, enhancing efficiency by 30%",
			"Implemented CI/CD pipelines cutting deployment time by 50%",
		},
		Technologies: []string{"Next.js", "Remix", "Nuxt", "Svelte", "GraphQL", "PostgreSQL", "GitHub Actions"},
	},
	{
		ID:       "podcreator",
		Role:     "Senior Frontend Engineer",
		Company:  "PodCreator UG",
		Location: "Berlin, Germany",
		Period:   "May 2024 - Jul 2024",
		Highlights: []string{
			"Initiated development of Gistable, driving user engagement 30% above estimates",
			"Authored 40+ reusable UI components using Atomic Design principles",
			"Reduced frontend development time by 40% with scalable architecture",
		},
		Technologies: []string{"React", "Redux", "Vite", "TailwindCSS", "Atomic Design"},
	},
	{
		ID:       "codevillage",
		Role:     "Senior Mobile Engineer",
		Company:  "CodeVillage LLC",
		Location: "Nigeria",
		Period:   "Feb 2024 - May 2024",
		Highlights: []string{
			"Led development of PIF mobile app with React Native, achieving 30% performance gain",
			"Complete codebase restructure improving stability and eliminating crashes",
			"Achieved 95% test coverage with automated testing pipelines",
		},
		Technologies: []string{"React Native", "Sentry", "Automated Testing"},
	},
	{
		ID:       "fluidangle",
		Role:     "Lead Mobile Engineer",
		Company:  "Fluidangle LLC",
		Location: "Boston, MA, USA",
		Period:   "Sep 2021 - Dec 2021",
		Highlights: []string{
			"Coordinated frontend architecture for cross-platform mobile apps using Flutter",
			"Optimized code structure reducing app crashes",
			"Increased task completion rates by 35%",
		},
		Technologies: []string{"Flutter", "Dart", "UI/UX", "Responsive Design"},
	},
	{
		ID:       "aitechma",
		Role:     "Senior Frontend Engineer",
		Company:  "Aitechma",
		Location: "Lagos, Nigeria",
		Period:   "Jun 2021 - Sep 2021",
		Highlights: []string{
			"Engineered Zabira crypto & gift cards trading app, achieving 30% faster development",
			"Increased user engagement by 25% through optimized transaction flows",
			"Improved user retention by 15% through better UX alignment",
		},
		Technologies: []string{"Angular", "TailwindCSS", "Crypto APIs"},
	},
	{
		ID:       "footprint",
		Role:     "Software Engineering Manager",
		Company:  "Footprint Intelligence",
		Location: "Munich, Germany",
		Period:   "Sep 2020 - Jan 2022",
		Highlights: []string{
			"Led cross-functional team developing carbon emissions tracking application",
			"Achieved 35% rise in daily interactions through gamification",
			"Reduced database query times by 25% with Firebase and MongoDB optimization",
		},
		Technologies: []string{"Vue.js", "Flutter", "Firebase", "MongoDB Realm", "TailwindCSS"},
	},
	{
		ID:       "anyskills",
		Role:     "Frontend Engineer",
		Company:  "Anyskills Inc.",
		Location: "Birmingham, UK",
		Period:   "Jul 2019 - Aug 2020",
		Highlights: []string{
			"Maintained high-performance Vue.js application with BFF architecture",
			"Boosted frontend data-fetching efficiency by 35%",
			"Built 35+ robust Vue.js components with Vuex and Vuetify",
		},
		Technologies: []string{"Vue.js", "Vuex", "Vuetify", "REST API"},
	},
	{
		ID:       "override",
		Role:     "Mobile & Full Stack Developer",
		Company:  "Override Digital Agency",
		Location: "Ilorin, Nigeria",
		Period:   "Jul 2017 - Jun 2019",
		Highlights: []string{
			"Integrated four payment gateway APIs and crypto transfer endpoints",
			"Reduced transaction latency by 50% with serverless functions",
			"Increased client conversion rates by 35% through accessibility improvements",
		},
		Technologies: []string{"Ether.js", "Serverless", "Payment APIs", "Crypto"},
	},
}

var projects = []Project{
	{
		ID:           "europarcs",
		Title:        "EuroParcs",
		Description:  "Vacation booking platform optimization",
		Impact:       "Increased bookings by 30%",
		Technologies: []string{"React", "Next.js", "GraphQL"},
	},
	{
		ID:           "wovar",
		Title:        "Wovar",
		Description:  "E-commerce product search and checkout optimization",
		Impact:       "Reduced cart abandonment by 15%",
		Technologies: []string{"Vue.js", "Nuxt", "PostgreSQL"},
	},
	{
		ID:           "bijenkorf",
		Title:        "De Bijenkorf",
		Description:  "Premium retail digital experience",
		Impact:       "Boosted engagement by 35%",
		Technologies: []string{"React", "Node.js", "GraphQL"},
	},
	{
		ID:           "paccar",
		Title:        "Paccar",
		Description:  "Inventory management automation system",
		Impact:       "Reduced data entry errors by 30%",
		Technologies: []string{"Svelte", "TypeScript", "REST APIs"},
	},
	{
		ID:           "gistable",
		Title:        "Gistable",
		Description:  "Content creation and sharing platform MVP",
		Impact:       "30% above engagement estimates",
		Technologies: []string{"React", "Redux", "Vite", "TailwindCSS"},
	},
	{
		ID:           "coreconnect",
		Title:        "Core Connect",
		Description:  "SaaS framework landing page",
		Impact:       "Increased lead conversions by 40%",
		Technologies: []string{"Next.js", "TailwindCSS", "Vercel"},
	},
}

var skills = []SkillGroup{
	{Category: "Frontend", Items: []string{"React", "Vue", "Angular", "Svelte", "Next.js", "Remix", "Nuxt", "Electron"}},
	{Category: "Backend", Items: []string{"Node.js", "NestJS", "Meteor", "Firebase", "GraphQL", "REST APIs", "Microservices"}},
	{Category: "Mobile", Items: []string{"Flutter", "React Native", "Android (Dart)"}},
	{Category: "Database", Items: []string{"PostgreSQL", "MongoDB", "MySQL"}},
	{Category: "DevOps", Items: []string{"GitHub Actions", "Docker", "CI/CD", "AWS", "Firebase"}},
	{Category: "Design", Items: []string{"Figma", "Zeplin", "TailwindCSS", "UI/UX"}},
}

var education = Education{
	Degree:      "Bachelor of Science (BSc)",
	Field:       "Telecommunication Science",
	Institution: "University of Ilorin",
	Location:    "Ilorin, Nigeria",
	Period:      "Mar 2016 - Aug 2021",
}

var stats = []Stat{
	{Value: "8+", Label: "Years Experience"},
	{Value: "60+", Label: "Components Built"},
	{Value: "40%", Label: "Avg. Engagement Boost"},
	{Value: "15+", Label: "Projects Delivered"},
}

var socialLinks = []SocialLink{
	{Name: "GitHub", URL: "https://github.com/gafarajao"},
	{Name: "LinkedIn", URL: "https://linkedin.com/in/gafarajao"},
	{Name: "Twitter", URL: "https://twitter.com/gafarajao"},
}
