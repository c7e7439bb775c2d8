package render

import (
	"fmt"

	"go-resume-builder/internal/domain"
)

type Theme string

const (
	ThemeModern       Theme = "modern"
	ThemeMinimal      Theme = "minimal"
	ThemeProfessional Theme = "professional"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeModern, ThemeMinimal, ThemeProfessional:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// 文档块模型：Build 产出的纯数据，主题模板只做样式和排布

type Contact struct {
	FullName     string
	Position     string
	Address      string
	Phone        string
	Email        string
	Linkedin     string
	Github       string
	ProfileImage string
}

type ExperienceEntry struct {
	Company   string
	Title     string
	StartDate string
	EndDate   string
	Bullets   []string
}

type EducationEntry struct {
	Degree     string
	University string
	StartYear  string
	EndYear    string
}

type SkillGroup struct {
	Type   string
	Tokens []string // 已去重，保持录入顺序
}

type CertificateEntry struct {
	CertName   string
	IssuedBy   string
	IssuedDate string
	ExpiryDate string
}

type LanguageEntry struct {
	Language    string
	Proficiency string
}

type ReferenceEntry struct {
	RefName  string
	Position string
	Company  string
	PhoneNo  string
	Email    string
}

// Document 是渲染输入。集合为空 ⇒ 对应章节整体缺席（严格条件渲染，
// 不渲染空壳）；Summary 为空串同理。
type Document struct {
	Contact      Contact
	Summary      string
	Experiences  []ExperienceEntry
	Educations   []EducationEntry
	SkillGroups  []SkillGroup
	Certificates []CertificateEntry
	Languages    []LanguageEntry
	References   []ReferenceEntry
}

// 八个逻辑章节的规范名
const (
	SectionHeader       = "header"
	SectionSummary      = "summary"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionCertificates = "certificates"
	SectionLanguages    = "languages"
	SectionReferences   = "references"
)

// Sections 返回当前文档会渲染出的章节列表（header 恒在）
func (d Document) Sections() []string {
	out := []string{SectionHeader}
	if d.Summary != "" {
		out = append(out, SectionSummary)
	}
	if len(d.Experiences) > 0 {
		out = append(out, SectionExperience)
	}
	if len(d.Educations) > 0 {
		out = append(out, SectionEducation)
	}
	if len(d.SkillGroups) > 0 {
		out = append(out, SectionSkills)
	}
	if len(d.Certificates) > 0 {
		out = append(out, SectionCertificates)
	}
	if len(d.Languages) > 0 {
		out = append(out, SectionLanguages)
	}
	if len(d.References) > 0 {
		out = append(out, SectionReferences)
	}
	return out
}

// Build 把聚合映射成文档块。纯函数，无副作用。
// res 为 nil 时给一份全空文档（交互预览容错），不 panic。
func Build(res *domain.Resume) Document {
	if res == nil {
		return Document{}
	}

	doc := Document{
		Contact: Contact{
			FullName:     res.FullName,
			Position:     res.Position,
			Address:      res.Address,
			Phone:        res.Phone,
			Email:        res.Email,
			Linkedin:     res.Linkedin,
			Github:       res.Github,
			ProfileImage: res.ProfileImage,
		},
		Summary: res.CareerSummary,
	}

	for _, e := range res.Experiences {
		end := e.EndDate
		if end == "" {
			end = "Present"
		}
		doc.Experiences = append(doc.Experiences, ExperienceEntry{
			Company:   e.Company,
			Title:     e.Title,
			StartDate: e.StartDate,
			EndDate:   end,
			Bullets:   e.Bullets(),
		})
	}

	for _, e := range res.Educations {
		doc.Educations = append(doc.Educations, EducationEntry{
			Degree:     e.Degree,
			University: e.University,
			StartYear:  e.StartYear,
			EndYear:    e.EndYear,
		})
	}

	doc.SkillGroups = groupSkills(res.Skills)

	for _, c := range res.Certificates {
		doc.Certificates = append(doc.Certificates, CertificateEntry{
			CertName:   c.CertName,
			IssuedBy:   c.IssuedBy,
			IssuedDate: c.IssuedDate,
			ExpiryDate: c.ExpiryDate,
		})
	}

	for _, l := range res.Languages {
		doc.Languages = append(doc.Languages, LanguageEntry{
			Language:    l.Language,
			Proficiency: l.Proficiency,
		})
	}

	for _, r := range res.References {
		doc.References = append(doc.References, ReferenceEntry{
			RefName:  r.RefName,
			Position: r.Position,
			Company:  r.Company,
			PhoneNo:  r.PhoneNo,
			Email:    r.Email,
		})
	}

	return doc
}

// groupSkills 把每条技能记录的分号词条拍平，按分类聚合，
// 组内保序去重。分类为空归入 "Skills"。组顺序 = 分类首次出现顺序。
func groupSkills(skills []domain.Skill) []SkillGroup {
	var order []string
	byType := map[string][]string{}

	for _, s := range skills {
		typ := s.SkillType
		if typ == "" {
			typ = "Skills"
		}
		if _, ok := byType[typ]; !ok {
			order = append(order, typ)
		}
		byType[typ] = append(byType[typ], s.Tokens()...)
	}

	out := make([]SkillGroup, 0, len(order))
	for _, typ := range order {
		tokens := domain.DedupTokens(byType[typ])
		if len(tokens) == 0 {
			continue
		}
		out = append(out, SkillGroup{Type: typ, Tokens: tokens})
	}
	return out
}
