package skill

type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserSkill links a user to a skill. At most one link exists per
// (UserID, SkillID) pair.
type UserSkill struct {
	ID      int `json:"id"`
	UserID  int `json:"userId"`
	SkillID int `json:"skillId"`
}
