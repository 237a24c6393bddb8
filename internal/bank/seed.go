package bank

// seedEntries is the embedded question bank: eight roles with HR,
// technical and scenario questions, each carrying a model answer and the
// keywords the fallback evaluator scores against.
var seedEntries = []Entry{
	// Software Developer
	{
		Role:        "Software Developer",
		Question:    "Tell me about yourself and your technical background.",
		Category:    CategoryHR,
		IdealAnswer: "A strong answer includes: educational background, relevant technical skills, key projects or work experience, passion for software development, and career goals. Should be concise (2-3 minutes) and highlight achievements with specific examples.",
		Keywords:    []string{"education", "experience", "skills", "projects", "passion", "goals"},
	},
	{
		Role:        "Software Developer",
		Question:    "Why do you want to work for our company?",
		Category:    CategoryHR,
		IdealAnswer: "Research-based answer showing knowledge of company's products, culture, and values. Mention specific technologies they use, recent achievements, or projects that align with your interests.",
		Keywords:    []string{"research", "company", "culture", "products", "alignment", "enthusiasm"},
	},
	{
		Role:        "Software Developer",
		Question:    "Explain the difference between REST and GraphQL APIs.",
		Category:    CategoryTechnical,
		IdealAnswer: "REST uses multiple endpoints with standard HTTP methods. GraphQL uses a single endpoint where clients specify exactly what data they need. GraphQL prevents over-fetching and under-fetching, has strong typing through schemas.",
		Keywords:    []string{"endpoints", "HTTP methods", "query", "over-fetching", "schema", "flexibility"},
	},
	{
		Role:        "Software Developer",
		Question:    "What is the difference between synchronous and asynchronous programming?",
		Category:    CategoryTechnical,
		IdealAnswer: "Synchronous programming executes code sequentially, blocking until each operation completes. Asynchronous programming allows multiple operations to run concurrently without blocking using callbacks, promises, or async/await patterns.",
		Keywords:    []string{"blocking", "concurrent", "promises", "async", "callbacks", "performance"},
	},
	{
		Role:        "Software Developer",
		Question:    "You discover a critical bug in production. How do you handle it?",
		Category:    CategoryScenario,
		IdealAnswer: "Assess severity, notify team lead, check logs, implement rollback if needed, reproduce bug, identify root cause, implement fix, test thoroughly, deploy, conduct post-mortem, document learnings.",
		Keywords:    []string{"assess", "notify", "rollback", "reproduce", "root cause", "fix", "test", "communication"},
	},

	// Data Analyst
	{
		Role:        "Data Analyst",
		Question:    "Tell me about your experience with data analysis.",
		Category:    CategoryHR,
		IdealAnswer: "Strong answer includes: educational background in statistics/analytics, experience with data tools (Excel, SQL, Python/R, visualization tools), specific projects where data insights drove decisions.",
		Keywords:    []string{"education", "tools", "SQL", "Python", "visualization", "insights", "projects"},
	},
	{
		Role:        "Data Analyst",
		Question:    "Explain the difference between correlation and causation.",
		Category:    CategoryTechnical,
		IdealAnswer: "Correlation means two variables move together statistically, but doesn't imply one causes the other. Causation means one variable directly influences another. Need controlled experiments to establish causation.",
		Keywords:    []string{"correlation", "causation", "confounding", "experiment", "statistical", "relationship"},
	},
	{
		Role:        "Data Analyst",
		Question:    "How would you handle missing data in a dataset?",
		Category:    CategoryTechnical,
		IdealAnswer: "Approach depends on amount and pattern of missing data. Methods include deletion, imputation (mean/median/mode), forward/backward fill, or predictive imputation. Always document approach and assess impact.",
		Keywords:    []string{"missing data", "deletion", "imputation", "mean", "median", "pattern", "impact"},
	},
	{
		Role:        "Data Analyst",
		Question:    "Your analysis contradicts stakeholder expectations. How do you present this?",
		Category:    CategoryScenario,
		IdealAnswer: "Verify analysis thoroughly, understand stakeholder expectations, prepare clear visualizations, present data objectively with context, explain methodology, discuss reasons for unexpected results, provide recommendations.",
		Keywords:    []string{"verify", "visualizations", "objective", "methodology", "context", "recommendations"},
	},

	// Data Scientist
	{
		Role:        "Data Scientist",
		Question:    "What motivated you to pursue data science?",
		Category:    CategoryHR,
		IdealAnswer: "Discuss passion for solving problems with data, interest in machine learning and statistics, specific projects or experiences that sparked interest, career goals in data science.",
		Keywords:    []string{"passion", "machine learning", "statistics", "problem solving", "projects", "goals"},
	},
	{
		Role:        "Data Scientist",
		Question:    "Explain the bias-variance tradeoff in machine learning.",
		Category:    CategoryTechnical,
		IdealAnswer: "Bias is error from overly simplistic models (underfitting). Variance is error from overly complex models (overfitting). Goal is to find balance that minimizes total error on new data.",
		Keywords:    []string{"bias", "variance", "underfitting", "overfitting", "tradeoff", "generalization"},
	},
	{
		Role:        "Data Scientist",
		Question:    "What is cross-validation and why is it important?",
		Category:    CategoryTechnical,
		IdealAnswer: "Cross-validation splits data into training and validation sets multiple times to assess model performance. Helps prevent overfitting and provides more reliable performance estimates than single train-test split.",
		Keywords:    []string{"cross-validation", "training", "validation", "overfitting", "k-fold", "performance"},
	},
	{
		Role:        "Data Scientist",
		Question:    "Your model performs well in training but poorly in production. What do you do?",
		Category:    CategoryScenario,
		IdealAnswer: "Check for data drift, verify feature engineering pipeline, examine training vs production data distributions, review model assumptions, implement monitoring, retrain with recent data if needed.",
		Keywords:    []string{"data drift", "production", "monitoring", "features", "distribution", "retrain"},
	},

	// Product Manager
	{
		Role:        "Product Manager",
		Question:    "Why do you want to be a Product Manager?",
		Category:    CategoryHR,
		IdealAnswer: "Discuss passion for building products that solve user problems, interest in bridging technical and business aspects, experience working with cross-functional teams, strategic thinking skills.",
		Keywords:    []string{"product", "user problems", "cross-functional", "strategy", "business", "technical"},
	},
	{
		Role:        "Product Manager",
		Question:    "How do you prioritize features in a product roadmap?",
		Category:    CategoryTechnical,
		IdealAnswer: "Use frameworks like RICE (Reach, Impact, Confidence, Effort) or value vs effort matrix. Consider user needs, business goals, technical feasibility, competitive landscape, and resource constraints.",
		Keywords:    []string{"prioritization", "RICE", "roadmap", "user needs", "business goals", "feasibility"},
	},
	{
		Role:        "Product Manager",
		Question:    "Explain how you would measure product success.",
		Category:    CategoryTechnical,
		IdealAnswer: "Define clear KPIs aligned with business goals (user engagement, retention, revenue, NPS). Use analytics tools, A/B testing, user feedback, and cohort analysis to track metrics over time.",
		Keywords:    []string{"KPIs", "metrics", "analytics", "A/B testing", "engagement", "retention", "success"},
	},
	{
		Role:        "Product Manager",
		Question:    "Engineering says a feature will take 6 months but stakeholders want it in 2 months. How do you handle this?",
		Category:    CategoryScenario,
		IdealAnswer: "Understand technical constraints, identify MVP scope, negotiate on features vs timeline, communicate tradeoffs clearly to stakeholders, explore alternative solutions, set realistic expectations.",
		Keywords:    []string{"negotiation", "MVP", "tradeoffs", "communication", "stakeholders", "realistic"},
	},

	// Marketing Manager
	{
		Role:        "Marketing Manager",
		Question:    "Describe your marketing experience and key achievements.",
		Category:    CategoryHR,
		IdealAnswer: "Highlight campaigns managed, channels used (digital, social, content), measurable results (ROI, conversions, engagement), team leadership experience, strategic planning skills.",
		Keywords:    []string{"campaigns", "digital marketing", "ROI", "conversions", "strategy", "leadership"},
	},
	{
		Role:        "Marketing Manager",
		Question:    "How do you measure marketing campaign effectiveness?",
		Category:    CategoryTechnical,
		IdealAnswer: "Track metrics like CTR, conversion rate, CAC, LTV, ROI. Use analytics tools (Google Analytics, social media insights), attribution models, A/B testing, and cohort analysis.",
		Keywords:    []string{"metrics", "CTR", "conversion", "CAC", "LTV", "ROI", "analytics", "attribution"},
	},
	{
		Role:        "Marketing Manager",
		Question:    "Explain your approach to content marketing strategy.",
		Category:    CategoryTechnical,
		IdealAnswer: "Define target audience, create buyer personas, develop content pillars, plan content calendar, optimize for SEO, distribute across channels, measure engagement and conversions.",
		Keywords:    []string{"content strategy", "audience", "personas", "SEO", "engagement", "distribution"},
	},
	{
		Role:        "Marketing Manager",
		Question:    "Your marketing budget was cut by 30%. How do you adapt your strategy?",
		Category:    CategoryScenario,
		IdealAnswer: "Analyze ROI of current channels, focus on high-performing channels, leverage organic/owned media, optimize existing campaigns, explore partnerships, get creative with low-cost tactics.",
		Keywords:    []string{"budget", "ROI", "optimization", "organic", "partnerships", "efficiency"},
	},

	// UI/UX Designer
	{
		Role:        "UI/UX Designer",
		Question:    "What inspired you to become a UI/UX designer?",
		Category:    CategoryHR,
		IdealAnswer: "Discuss passion for creating user-friendly experiences, interest in psychology and design, portfolio highlights, design philosophy, continuous learning in design trends.",
		Keywords:    []string{"user experience", "design", "portfolio", "psychology", "creativity", "trends"},
	},
	{
		Role:        "UI/UX Designer",
		Question:    "Explain your design process from research to final design.",
		Category:    CategoryTechnical,
		IdealAnswer: "User research, personas, user flows, wireframes, prototypes, usability testing, iterate based on feedback, high-fidelity designs, handoff to developers, post-launch evaluation.",
		Keywords:    []string{"research", "personas", "wireframes", "prototypes", "testing", "iteration", "handoff"},
	},
	{
		Role:        "UI/UX Designer",
		Question:    "How do you ensure your designs are accessible?",
		Category:    CategoryTechnical,
		IdealAnswer: "Follow WCAG guidelines, ensure proper color contrast, provide alt text, keyboard navigation, screen reader compatibility, test with accessibility tools, consider diverse user needs.",
		Keywords:    []string{"accessibility", "WCAG", "contrast", "alt text", "keyboard", "screen reader", "inclusive"},
	},
	{
		Role:        "UI/UX Designer",
		Question:    "Stakeholders want to add many features but you believe it will hurt UX. How do you handle this?",
		Category:    CategoryScenario,
		IdealAnswer: "Present user research data, show usability testing results, explain design principles, propose phased approach, create prototypes to demonstrate impact, find compromise that balances business and user needs.",
		Keywords:    []string{"user research", "data", "principles", "compromise", "prototypes", "balance"},
	},

	// DevOps Engineer
	{
		Role:        "DevOps Engineer",
		Question:    "What interests you about DevOps?",
		Category:    CategoryHR,
		IdealAnswer: "Discuss passion for automation, improving development workflows, bridging dev and ops, experience with CI/CD, infrastructure as code, monitoring and reliability.",
		Keywords:    []string{"automation", "CI/CD", "infrastructure", "workflows", "reliability", "monitoring"},
	},
	{
		Role:        "DevOps Engineer",
		Question:    "Explain the concept of Infrastructure as Code.",
		Category:    CategoryTechnical,
		IdealAnswer: "IaC manages infrastructure through code rather than manual processes. Benefits include version control, reproducibility, automation, consistency. Tools include Terraform, CloudFormation, Ansible.",
		Keywords:    []string{"IaC", "automation", "version control", "Terraform", "reproducibility", "consistency"},
	},
	{
		Role:        "DevOps Engineer",
		Question:    "How do you approach monitoring and alerting?",
		Category:    CategoryTechnical,
		IdealAnswer: "Define key metrics (latency, error rates, throughput), set up logging and monitoring tools (Prometheus, Grafana), create meaningful alerts, establish on-call procedures, implement observability.",
		Keywords:    []string{"monitoring", "metrics", "alerts", "logging", "Prometheus", "observability", "SLA"},
	},
	{
		Role:        "DevOps Engineer",
		Question:    "Production is down and you need to restore service quickly. Walk through your approach.",
		Category:    CategoryScenario,
		IdealAnswer: "Check monitoring dashboards, review recent deployments, check logs, identify root cause, implement rollback if needed, communicate with team, restore service, conduct post-mortem, implement preventive measures.",
		Keywords:    []string{"incident", "monitoring", "rollback", "logs", "communication", "post-mortem", "recovery"},
	},

	// Business Analyst
	{
		Role:        "Business Analyst",
		Question:    "What makes you a good Business Analyst?",
		Category:    CategoryHR,
		IdealAnswer: "Strong analytical skills, ability to bridge business and technical teams, experience gathering requirements, creating documentation, stakeholder management, problem-solving abilities.",
		Keywords:    []string{"analytical", "requirements", "stakeholders", "documentation", "problem solving", "communication"},
	},
	{
		Role:        "Business Analyst",
		Question:    "How do you gather and document requirements?",
		Category:    CategoryTechnical,
		IdealAnswer: "Conduct stakeholder interviews, workshops, surveys, analyze existing systems, create user stories, use cases, process flows, maintain requirements traceability matrix, validate with stakeholders.",
		Keywords:    []string{"requirements", "interviews", "user stories", "documentation", "validation", "stakeholders"},
	},
	{
		Role:        "Business Analyst",
		Question:    "Explain how you perform gap analysis.",
		Category:    CategoryTechnical,
		IdealAnswer: "Understand current state, define desired future state, identify gaps between them, analyze root causes, prioritize gaps, recommend solutions, create implementation roadmap.",
		Keywords:    []string{"gap analysis", "current state", "future state", "solutions", "roadmap", "prioritization"},
	},
	{
		Role:        "Business Analyst",
		Question:    "Stakeholders have conflicting requirements. How do you resolve this?",
		Category:    CategoryScenario,
		IdealAnswer: "Facilitate meetings to understand each perspective, identify common goals, analyze business impact, present data-driven recommendations, negotiate compromises, document decisions and rationale.",
		Keywords:    []string{"conflict resolution", "facilitation", "negotiation", "compromise", "documentation", "alignment"},
	},
}
