package validation

// Entity kinds with an insert schema.
const (
	KindUser          = "user"
	KindSkill         = "skill"
	KindExperience    = "experience"
	KindEducation     = "education"
	KindPortfolioItem = "portfolioItem"
	KindService       = "service"
	KindJob           = "job"
	KindProposal      = "proposal"
)

// Insert schemas are purely structural: required/optional and types. Owner
// IDs arrive through the path for user-owned entities, so they are absent
// here; cross-entity checks live in storage.
var schemaDocs = map[string]string{
	KindUser: `{
		"type": "object",
		"required": ["username", "password", "email", "firstName", "lastName"],
		"properties": {
			"username": {"type": "string", "minLength": 1},
			"password": {"type": "string", "minLength": 1},
			"email": {"type": "string", "minLength": 1},
			"firstName": {"type": "string", "minLength": 1},
			"lastName": {"type": "string", "minLength": 1},
			"professionalTitle": {"type": ["string", "null"]},
			"bio": {"type": ["string", "null"]},
			"country": {"type": ["string", "null"]},
			"city": {"type": ["string", "null"]},
			"avatarUrl": {"type": ["string", "null"]}
		}
	}`,

	KindSkill: `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1}
		}
	}`,

	KindExperience: `{
		"type": "object",
		"required": ["title", "company", "startDate"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"company": {"type": "string", "minLength": 1},
			"startDate": {"type": "string"},
			"endDate": {"type": ["string", "null"]},
			"currentlyWorking": {"type": ["boolean", "null"]},
			"description": {"type": ["string", "null"]}
		}
	}`,

	KindEducation: `{
		"type": "object",
		"required": ["degree", "institution", "startYear"],
		"properties": {
			"degree": {"type": "string", "minLength": 1},
			"institution": {"type": "string", "minLength": 1},
			"startYear": {"type": "integer"},
			"endYear": {"type": ["integer", "null"]},
			"currentlyStudying": {"type": ["boolean", "null"]}
		}
	}`,

	KindPortfolioItem: `{
		"type": "object",
		"required": ["title"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"description": {"type": ["string", "null"]},
			"imageUrl": {"type": ["string", "null"]},
			"projectUrl": {"type": ["string", "null"]},
			"skills": {"type": ["array", "null"], "items": {"type": "string"}}
		}
	}`,

	KindService: `{
		"type": "object",
		"required": ["title", "hourlyRate"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"description": {"type": ["string", "null"]},
			"hourlyRate": {"type": "integer"}
		}
	}`,

	KindJob: `{
		"type": "object",
		"required": ["title", "description", "payRate"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1},
			"payRate": {"type": "string", "minLength": 1},
			"duration": {"type": ["string", "null"]},
			"location": {"type": ["string", "null"]},
			"skills": {"type": ["array", "null"], "items": {"type": "string"}},
			"postedDate": {"type": ["string", "null"]},
			"companyName": {"type": ["string", "null"]}
		}
	}`,

	KindProposal: `{
		"type": "object",
		"required": ["userId", "jobId", "content"],
		"properties": {
			"userId": {"type": "integer"},
			"jobId": {"type": "integer"},
			"content": {"type": "string", "minLength": 1}
		}
	}`,
}
