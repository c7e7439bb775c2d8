package render

import (
	"reflect"
	"strings"
	"testing"

	"go-resume-builder/internal/domain"
)

func sampleResume() *domain.Resume {
	return &domain.Resume{
		ID:            "r1",
		UserID:        "u1",
		FullName:      "Jane Doe",
		Position:      "Backend Engineer",
		Email:         "jane@example.com",
		CareerSummary: "Seasoned backend engineer.",
		Experiences: []domain.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "2020", Description: "Built API; Mentored juniors; Cut latency 40%"},
		},
		Educations: []domain.Education{
			{Degree: "BSc CS", University: "MIT", StartYear: "2014", EndYear: "2018"},
		},
		Skills: []domain.Skill{
			{SkillName: "Go;PostgreSQL", SkillType: "Technical"},
			{SkillName: "Go;Redis", SkillType: "Technical"},
			{SkillName: "Mentoring"},
		},
		Certificates: []domain.Certificate{
			{CertName: "CKA", IssuedBy: "CNCF", IssuedDate: "2022"},
		},
		Languages: []domain.LanguageSkill{
			{Language: "English", Proficiency: domain.ProficiencyFluent},
		},
		References: []domain.Reference{
			{RefName: "John Smith", Company: "Acme"},
		},
	}
}

func TestParseTheme(t *testing.T) {
	for _, s := range []string{"modern", "minimal", "professional"} {
		if _, err := ParseTheme(s); err != nil {
			t.Errorf("ParseTheme(%q) err = %v", s, err)
		}
	}
	if _, err := ParseTheme("fancy"); err == nil {
		t.Error("ParseTheme(fancy) should fail")
	}
}

func TestBuildFull(t *testing.T) {
	doc := Build(sampleResume())

	want := []string{
		SectionHeader, SectionSummary, SectionExperience, SectionEducation,
		SectionSkills, SectionCertificates, SectionLanguages, SectionReferences,
	}
	if got := doc.Sections(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections = %v, want %v", got, want)
	}

	if len(doc.Experiences) != 1 {
		t.Fatalf("experiences = %d", len(doc.Experiences))
	}
	exp := doc.Experiences[0]
	if len(exp.Bullets) != 3 {
		t.Fatalf("bullets = %v", exp.Bullets)
	}
	// 未填结束时间显示 Present
	if exp.EndDate != "Present" {
		t.Errorf("EndDate = %q, want Present", exp.EndDate)
	}
}

func TestBuildSkillGrouping(t *testing.T) {
	doc := Build(sampleResume())

	if len(doc.SkillGroups) != 2 {
		t.Fatalf("groups = %+v", doc.SkillGroups)
	}
	// 组顺序 = 分类首次出现顺序；组内保序去重；无分类归入 Skills
	if doc.SkillGroups[0].Type != "Technical" || doc.SkillGroups[1].Type != "Skills" {
		t.Fatalf("group order = %+v", doc.SkillGroups)
	}
	want := []string{"Go", "PostgreSQL", "Redis"}
	if got := doc.SkillGroups[0].Tokens; !reflect.DeepEqual(got, want) {
		t.Fatalf("technical tokens = %v, want %v", got, want)
	}
}

func TestBuildEmpty(t *testing.T) {
	doc := Build(nil)
	if got := doc.Sections(); !reflect.DeepEqual(got, []string{SectionHeader}) {
		t.Fatalf("Sections = %v, want header only", got)
	}

	// 有主档但子集合全空 ⇒ 同样只有 header
	doc = Build(&domain.Resume{ID: "r1", UserID: "u1", FullName: "Jane"})
	if got := doc.Sections(); !reflect.DeepEqual(got, []string{SectionHeader}) {
		t.Fatalf("Sections = %v, want header only", got)
	}
}

func TestHTMLThemes(t *testing.T) {
	doc := Build(sampleResume())
	for _, theme := range []Theme{ThemeModern, ThemeMinimal, ThemeProfessional} {
		html, err := HTML(doc, theme)
		if err != nil {
			t.Fatalf("HTML(%s): %v", theme, err)
		}
		for _, frag := range []string{"Jane Doe", "Acme", "MIT", "CKA", "English", "John Smith", "size: A4"} {
			if !strings.Contains(html, frag) {
				t.Errorf("theme %s: missing %q", theme, frag)
			}
		}
	}
}

func TestHTMLStrictConditional(t *testing.T) {
	doc := Build(&domain.Resume{FullName: "Jane Doe"})
	for _, theme := range []Theme{ThemeModern, ThemeMinimal, ThemeProfessional} {
		html, err := HTML(doc, theme)
		if err != nil {
			t.Fatalf("HTML(%s): %v", theme, err)
		}
		// 空集合不渲染空壳章节
		for _, frag := range []string{"Experience", "Education", "Certifi", "Language", "Reference"} {
			if strings.Contains(html, frag) {
				t.Errorf("theme %s: empty doc should not contain %q", theme, frag)
			}
		}
	}
}
