// Package jsonresume 把简历聚合映射成 JSON Resume (jsonresume.org) 文档。
package jsonresume

import (
	"strings"

	"go-resume-builder/internal/domain"
)

type Location struct {
	Address string `json:"address,omitempty"`
}

type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url"`
}

type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Image    string    `json:"image,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles"`
}

type Work struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Highlights []string `json:"highlights"`
}

type Education struct {
	Institution string `json:"institution"`
	StudyType   string `json:"studyType"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

type SkillEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type CertificateEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

type LanguageEntry struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

type ReferenceEntry struct {
	Name      string `json:"name"`
	Reference string `json:"reference,omitempty"`
}

// Document 是 JSON Resume 顶层结构（schema v1.0.0 的子集）
type Document struct {
	Schema       string             `json:"$schema"`
	Basics       Basics             `json:"basics"`
	Work         []Work             `json:"work"`
	Education    []Education        `json:"education"`
	Skills       []SkillEntry       `json:"skills"`
	Certificates []CertificateEntry `json:"certificates"`
	Languages    []LanguageEntry    `json:"languages"`
	References   []ReferenceEntry   `json:"references"`
}

const schemaURL = "https://raw.githubusercontent.com/jsonresume/resume-schema/v1.0.0/schema.json"

// Map 把聚合转成 JSON Resume 文档。切片字段保证非 nil，序列化始终是数组。
func Map(r *domain.Resume) Document {
	doc := Document{
		Schema:       schemaURL,
		Work:         []Work{},
		Education:    []Education{},
		Skills:       []SkillEntry{},
		Certificates: []CertificateEntry{},
		Languages:    []LanguageEntry{},
		References:   []ReferenceEntry{},
	}
	if r == nil {
		doc.Basics.Profiles = []Profile{}
		return doc
	}

	doc.Basics = Basics{
		Name:     r.FullName,
		Label:    r.Position,
		Image:    r.ProfileImage,
		Email:    r.Email,
		Phone:    r.Phone,
		Summary:  r.CareerSummary,
		Profiles: []Profile{},
	}
	if r.Address != "" {
		doc.Basics.Location = &Location{Address: r.Address}
	}
	if r.Linkedin != "" {
		doc.Basics.Profiles = append(doc.Basics.Profiles, Profile{Network: "LinkedIn", URL: r.Linkedin})
	}
	if r.Github != "" {
		doc.Basics.Profiles = append(doc.Basics.Profiles, Profile{Network: "GitHub", URL: r.Github})
	}

	for _, e := range r.Experiences {
		doc.Work = append(doc.Work, Work{
			Name:       e.Company,
			Position:   e.Title,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			Highlights: e.Bullets(),
		})
	}
	for _, e := range r.Educations {
		doc.Education = append(doc.Education, Education{
			Institution: e.University,
			StudyType:   e.Degree,
			StartDate:   e.StartYear,
			EndDate:     e.EndYear,
		})
	}
	for _, s := range r.Skills {
		name := s.SkillType
		if name == "" {
			name = "Skills"
		}
		doc.Skills = append(doc.Skills, SkillEntry{Name: name, Keywords: s.Tokens()})
	}
	for _, c := range r.Certificates {
		doc.Certificates = append(doc.Certificates, CertificateEntry{
			Name:   c.CertName,
			Issuer: c.IssuedBy,
			Date:   c.IssuedDate,
		})
	}
	for _, l := range r.Languages {
		doc.Languages = append(doc.Languages, LanguageEntry{Language: l.Language, Fluency: l.Proficiency})
	}
	for _, ref := range r.References {
		doc.References = append(doc.References, ReferenceEntry{
			Name:      ref.RefName,
			Reference: referenceLine(ref),
		})
	}
	return doc
}

// referenceLine 把职位/公司/联系方式拼成一行说明
func referenceLine(r domain.Reference) string {
	var parts []string
	if r.Position != "" {
		parts = append(parts, r.Position)
	}
	if r.Company != "" {
		parts = append(parts, r.Company)
	}
	if r.PhoneNo != "" {
		parts = append(parts, r.PhoneNo)
	}
	if r.Email != "" {
		parts = append(parts, r.Email)
	}
	return strings.Join(parts, ", ")
}
