package domain

import "time"

// Resume 主档（每个用户最多一份，userId 唯一）
type Resume struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	UserID        string `gorm:"uniqueIndex;size:36;not null" json:"userId"`
	FullName      string `gorm:"size:128" json:"fullName"`
	Position      string `gorm:"size:128" json:"position"`
	Address       string `gorm:"size:255" json:"address"`
	Phone         string `gorm:"size:64" json:"phone"`
	Email         string `gorm:"size:255" json:"email"`
	Linkedin      string `gorm:"size:255" json:"linkedin"`
	Github        string `gorm:"size:255" json:"github"`
	ProfileImage  string `gorm:"type:text" json:"profileImage"`  // data URI 或外链
	CareerSummary string `gorm:"type:text" json:"careerSummary"` // 富文本纯文本化后的简介

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Experiences  []Experience    `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"experiences"`
	Educations   []Education     `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"educations"`
	Skills       []Skill         `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"skills"`
	Certificates []Certificate   `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"certificates"`
	Languages    []LanguageSkill `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"languages"`
	References   []Reference     `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"references"`
}

func (Resume) TableName() string { return "resumes" }

// Experience 工作经历。Description 的外部存储格式是分号/换行分隔的要点串，
// 业务侧一律通过 Bullets() 取解析后的列表。
type Experience struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	ResumeID    string `gorm:"index;size:36;not null" json:"resumeId"`
	UserID      string `gorm:"index;size:36;not null" json:"userId"`
	Title       string `gorm:"size:128" json:"title" binding:"required"`
	Company     string `gorm:"size:128" json:"company" binding:"required"`
	StartDate   string `gorm:"size:32" json:"startDate"` // 显示用标签，不做日期解析
	EndDate     string `gorm:"size:32" json:"endDate"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Experience) TableName() string { return "experiences" }

func (e Experience) Bullets() []string { return SplitBullets(e.Description) }

type Education struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	ResumeID   string `gorm:"index;size:36;not null" json:"resumeId"`
	UserID     string `gorm:"index;size:36;not null" json:"userId"`
	Degree     string `gorm:"size:128" json:"degree" binding:"required"`
	University string `gorm:"size:128" json:"university" binding:"required"`
	StartYear  string `gorm:"size:16" json:"startYear"`
	EndYear    string `gorm:"size:16" json:"endYear"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Education) TableName() string { return "educations" }

// Skill 一条记录是一个分类下的若干技能，SkillName 用分号分隔多个技能词条。
type Skill struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ResumeID  string `gorm:"index;size:36;not null" json:"resumeId"`
	UserID    string `gorm:"index;size:36;not null" json:"userId"`
	SkillName string `gorm:"size:512" json:"skillName" binding:"required"`
	SkillType string `gorm:"size:64" json:"skillType"` // Technical / Soft / Tools / Languages

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Skill) TableName() string { return "skills" }

func (s Skill) Tokens() []string { return SplitTokens(s.SkillName) }

type Certificate struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	ResumeID   string `gorm:"index;size:36;not null" json:"resumeId"`
	UserID     string `gorm:"index;size:36;not null" json:"userId"`
	CertName   string `gorm:"size:255" json:"certName" binding:"required"`
	IssuedBy   string `gorm:"size:128" json:"issuedBy" binding:"required"`
	IssuedDate string `gorm:"size:32" json:"issuedDate"`
	ExpiryDate string `gorm:"size:32" json:"expiryDate"` // 可填 "N/A"

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Certificate) TableName() string { return "certificates" }

type LanguageSkill struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	ResumeID    string `gorm:"index;size:36;not null" json:"resumeId"`
	UserID      string `gorm:"index;size:36;not null" json:"userId"`
	Language    string `gorm:"size:64" json:"language" binding:"required"`
	Proficiency string `gorm:"size:32" json:"proficiency" binding:"required"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (LanguageSkill) TableName() string { return "language_skills" }

// 语言熟练度枚举
const (
	ProficiencyNative       = "Native"
	ProficiencyFluent       = "Fluent"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyBasic        = "Basic"
)

func ValidProficiency(p string) bool {
	switch p {
	case ProficiencyNative, ProficiencyFluent, ProficiencyIntermediate, ProficiencyBasic:
		return true
	}
	return false
}

type Reference struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ResumeID string `gorm:"index;size:36;not null" json:"resumeId"`
	UserID   string `gorm:"index;size:36;not null" json:"userId"`
	RefName  string `gorm:"size:128" json:"refName" binding:"required"`
	Position string `gorm:"size:128" json:"position"`
	Company  string `gorm:"size:128" json:"company"`
	PhoneNo  string `gorm:"size:64" json:"phoneNo"`
	Email    string `gorm:"size:255" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Reference) TableName() string { return "references" }

// GeneratedResume 导出历史，只追加不修改
type GeneratedResume struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"userId"`
	ResumeID    string    `gorm:"size:36;not null" json:"resumeId"`
	Theme       string    `gorm:"size:32;not null" json:"theme"`
	JSONContent string    `gorm:"column:json_content;type:text" json:"jsonContent"` // 导出时刻的 JSON Resume 快照
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (GeneratedResume) TableName() string { return "generated_resumes" }
